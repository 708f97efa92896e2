package driftwatch

import (
	"context"
	"encoding/json"
	"time"

	"github.com/driftlab/driftwatch/config"
	"github.com/driftlab/driftwatch/render"
)

// OneshotResponse is the combined document printed by the CLI's oneshot
// mode: the reconstructed tracks with their render segments plus the
// proximity stats, in one pass.
type OneshotResponse struct {
	GeneratedAt string      `json:"generated_at"`
	WindowHours int         `json:"window_hours"`
	ThresholdKM float64     `json:"threshold_km"`
	Detections  int         `json:"detections"`
	Tracks      []TrackView `json:"tracks"`
	Stats       []StatView  `json:"stats"`
}

// Oneshot runs one full reconstruction and proximity analysis and returns
// the combined document as JSON.
func Oneshot(ctx context.Context, cfg config.AppConfig, engine *Engine) ([]byte, error) {
	tracks := engine.Reconstruct(ctx)
	dets := engine.Detections(ctx)
	cutoffTS := time.Now().Add(-time.Duration(cfg.Analysis.CutoffHours) * time.Hour).Unix()

	resp := OneshotResponse{
		GeneratedAt: iso8601Now(),
		WindowHours: cfg.Telemetry.WindowHours,
		ThresholdKM: cfg.Analysis.ThresholdKM,
		Detections:  len(dets),
		Tracks:      make([]TrackView, 0, len(tracks)),
		Stats:       proximityStats(tracks, dets, cfg.Analysis.ThresholdKM),
	}
	for _, t := range tracks {
		resp.Tracks = append(resp.Tracks, TrackView{
			ID:       t.ID,
			LastSeen: iso8601FromUnixSeconds(t.Last().TS),
			Points:   t.Points,
			Segments: render.Segment(t.Points, cutoffTS, cfg.Analysis.MaxHopKM),
		})
	}
	return json.MarshalIndent(resp, "", "  ")
}
