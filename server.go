package driftwatch

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/driftlab/driftwatch/config"
	"github.com/driftlab/driftwatch/render"
	"github.com/driftlab/driftwatch/track"
)

// Server exposes the reconstruction engine over HTTP for the map frontend.
type Server struct {
	cfg    config.AppConfig
	engine *Engine
	cache  *responseCache
	http   *http.Server

	lastSnapshotEpoch atomic.Int64
}

// NewServer builds the HTTP layer around an engine.
func NewServer(cfg config.AppConfig, engine *Engine) *Server {
	s := &Server{
		cfg:    cfg,
		engine: engine,
		cache:  newResponseCache(time.Duration(cfg.Cache.TTLSeconds) * time.Second),
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/tracks.json", s.handleTracks).Methods(http.MethodGet)
	r.HandleFunc("/api/proximity.json", s.handleProximity).Methods(http.MethodGet)

	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Start begins serving in a background goroutine.
func (s *Server) Start() {
	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", s.http.Addr)
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM, then drains the
// server.
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	} else {
		log.Printf("server shut down successfully")
	}
}

func (s *Server) handleTracks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cutoffHours, err := parseNonNegativeInt("cutoff_hours", q.Get("cutoff_hours"), s.cfg.Analysis.CutoffHours)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	maxHopKM, err := parsePositiveFloat("max_hop_km", q.Get("max_hop_km"), s.cfg.Analysis.MaxHopKM)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := memoKey("tracks", strconv.Itoa(cutoffHours), strconv.FormatFloat(maxHopKM, 'g', -1, 64))
	if buf, ok := s.cache.get(key); ok {
		writeRaw(w, buf)
		return
	}

	tracks := s.engine.Reconstruct(r.Context())
	s.noteSnapshotEpoch(tracks)
	cutoffTS := time.Now().Add(-time.Duration(cutoffHours) * time.Hour).Unix()

	resp := TracksResponse{
		GeneratedAt: iso8601Now(),
		WindowHours: s.cfg.Telemetry.WindowHours,
		Tracks:      make([]TrackView, 0, len(tracks)),
	}
	for _, t := range tracks {
		resp.Tracks = append(resp.Tracks, TrackView{
			ID:       t.ID,
			LastSeen: iso8601FromUnixSeconds(t.Last().TS),
			Points:   t.Points,
			Segments: render.Segment(t.Points, cutoffTS, maxHopKM),
		})
	}
	if buf := writeJSON(w, http.StatusOK, resp); buf != nil {
		s.cache.put(key, buf)
	}
}

func (s *Server) handleProximity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	thresholdKM, err := parsePositiveFloat("threshold_km", q.Get("threshold_km"), s.cfg.Analysis.ThresholdKM)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := memoKey("proximity", strconv.FormatFloat(thresholdKM, 'g', -1, 64))
	if buf, ok := s.cache.get(key); ok {
		writeRaw(w, buf)
		return
	}

	tracks := s.engine.Reconstruct(r.Context())
	s.noteSnapshotEpoch(tracks)
	dets := s.engine.Detections(r.Context())
	stats := proximityStats(tracks, dets, thresholdKM)

	resp := ProximityResponse{
		GeneratedAt: iso8601Now(),
		ThresholdKM: thresholdKM,
		Detections:  len(dets),
		Stats:       stats,
	}
	if buf := writeJSON(w, http.StatusOK, resp); buf != nil {
		s.cache.put(key, buf)
	}
}

// noteSnapshotEpoch records the newest point timestamp seen, surfaced by the
// health endpoint.
func (s *Server) noteSnapshotEpoch(tracks []track.Track) {
	var latest int64
	for _, t := range tracks {
		if n := len(t.Points); n > 0 && t.Points[n-1].TS > latest {
			latest = t.Points[n-1].TS
		}
	}
	if latest > s.lastSnapshotEpoch.Load() {
		s.lastSnapshotEpoch.Store(latest)
	}
}
