package driftwatch

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/driftlab/driftwatch/config"
	"github.com/driftlab/driftwatch/events"
	"github.com/driftlab/driftwatch/feed"
	"github.com/driftlab/driftwatch/normalize"
	"github.com/driftlab/driftwatch/track"
)

// FetchFunc returns the raw payload for an hour index (0 = most recent hour)
// or false when that hour is unavailable.
type FetchFunc func(hourIdx int) (string, bool)

// ReconstructTracks runs the normalize, link, and post-process pipeline over
// one snapshot window. The call always succeeds: hours missing from the feed
// contribute no observations, and a window with no usable hours yields an
// empty track set rather than an error.
func ReconstructTracks(hours int, fetch FetchFunc) []track.Track {
	if hours <= 0 {
		hours = feed.WindowHours
	}
	byHour := make([][]track.Observation, hours)
	for h := 0; h < hours; h++ {
		raw, ok := fetch(h)
		if !ok {
			continue
		}
		byHour[h] = normalize.Observations(raw, h)
	}
	return track.Link(byHour)
}

// Engine wires the snapshot feed, the detection feed, and the reconstruction
// pipeline together for the serving layer. The pipeline itself is stateless
// between calls; the only state the engine holds is the fetch-layer cache.
type Engine struct {
	cfg      config.AppConfig
	snaps    *feed.Client
	eventsHC *http.Client
}

// NewEngine builds an engine from loaded configuration. When a Redis address
// is configured the snapshot cache is shared across instances; otherwise an
// in-process cache is used.
func NewEngine(cfg config.AppConfig) *Engine {
	snaps := feed.NewClient(cfg.Telemetry.SnapshotURLTemplate,
		time.Duration(cfg.Telemetry.TimeoutMS)*time.Millisecond)

	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	if cfg.Cache.RedisAddr != "" {
		rc, err := feed.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB, ttl)
		if err != nil {
			log.Printf("redis cache unavailable, falling back to in-process cache: %v", err)
			snaps.WithCache(feed.NewMemoryCache(ttl))
		} else {
			snaps.WithCache(rc)
		}
	} else {
		snaps.WithCache(feed.NewMemoryCache(ttl))
	}

	return &Engine{
		cfg:      cfg,
		snaps:    snaps,
		eventsHC: &http.Client{Timeout: time.Duration(cfg.Events.TimeoutMS) * time.Millisecond},
	}
}

// Reconstruct fetches the snapshot window and rebuilds the track set.
func (e *Engine) Reconstruct(ctx context.Context) []track.Track {
	window := e.snaps.FetchWindow(ctx, e.cfg.Telemetry.WindowHours)
	return ReconstructTracks(len(window), func(h int) (string, bool) {
		if window[h] == "" {
			return "", false
		}
		return window[h], true
	})
}

// Detections retrieves the detection feed. An unreachable feed is absent
// data, not a failure: proximity stats then carry their sentinel values.
func (e *Engine) Detections(ctx context.Context) []events.Detection {
	dets, err := events.Fetch(ctx, e.eventsHC, e.cfg.Events.FeedURL)
	if err != nil {
		log.Printf("detection feed unavailable: %v", err)
		return nil
	}
	return dets
}
