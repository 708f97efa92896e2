package driftwatch

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/paulmach/orb"

	"github.com/driftlab/driftwatch/events"
	"github.com/driftlab/driftwatch/proximity"
	"github.com/driftlab/driftwatch/track"
)

// TrackView is the wire shape of a reconstructed track, optionally carrying
// the polyline segments the map layer plots.
type TrackView struct {
	ID       string           `json:"id"`
	LastSeen string           `json:"last_seen"`
	Points   []track.Point    `json:"points"`
	Segments []orb.LineString `json:"segments,omitempty"`
}

// TracksResponse is the document served by /api/tracks.json.
type TracksResponse struct {
	GeneratedAt string      `json:"generated_at"`
	WindowHours int         `json:"window_hours"`
	Tracks      []TrackView `json:"tracks"`
}

// StatView is the wire shape of a proximity stat. ClosestKM is null when no
// comparison was possible; the sentinel is never coerced to zero.
type StatView struct {
	TrackID   string   `json:"track_id"`
	ClosestKM *float64 `json:"closest_km"`
	NearCount int      `json:"near_count"`
	ClosestTS *int64   `json:"closest_ts,omitempty"`
}

// ProximityResponse is the document served by /api/proximity.json.
type ProximityResponse struct {
	GeneratedAt string     `json:"generated_at"`
	ThresholdKM float64    `json:"threshold_km"`
	Detections  int        `json:"detections"`
	Stats       []StatView `json:"stats"`
}

// proximityStats runs the analyzer and shapes its output for the wire.
func proximityStats(tracks []track.Track, dets []events.Detection, thresholdKM float64) []StatView {
	stats := proximity.Analyze(tracks, dets, thresholdKM)
	views := make([]StatView, 0, len(stats))
	for _, st := range stats {
		views = append(views, statView(st))
	}
	return views
}

func statView(st proximity.Stat) StatView {
	view := StatView{TrackID: st.TrackID, NearCount: st.NearCount}
	if !math.IsInf(st.ClosestKM, 1) {
		km := st.ClosestKM
		view.ClosestKM = &km
	}
	if st.HasClosest {
		ts := st.ClosestTS
		view.ClosestTS = &ts
	}
	return view
}

func writeJSON(w http.ResponseWriter, status int, v any) []byte {
	buf, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf)
	return buf
}

func writeRaw(w http.ResponseWriter, buf []byte) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
