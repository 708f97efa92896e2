package driftwatch

import (
	"fmt"
	"testing"
	"time"
)

func TestReconstructTracksAllHoursMissing(t *testing.T) {
	tracks := ReconstructTracks(24, func(int) (string, bool) { return "", false })
	if len(tracks) != 0 {
		t.Fatalf("expected empty track set, got %d tracks", len(tracks))
	}
}

func TestReconstructTracksEndToEnd(t *testing.T) {
	// Six hourly snapshots of one object drifting east at ~50 km/h. The
	// payloads are bare pair arrays, so timestamps come from the hour-index
	// fallback and land an hour apart.
	fetch := func(h int) (string, bool) {
		lon := 0.45 * float64(5-h)
		return fmt.Sprintf(`[[0.0,%g]]`, lon), true
	}

	tracks := ReconstructTracks(6, fetch)
	if len(tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(tracks))
	}
	if len(tracks[0].Points) != 6 {
		t.Fatalf("expected 6 points, got %d", len(tracks[0].Points))
	}
}

func TestReconstructTracksSurvivesGarbageHours(t *testing.T) {
	fetch := func(h int) (string, bool) {
		switch h {
		case 0:
			return `[[0.0,0.45]]`, true
		case 1:
			return `[[0.0,0.0]]`, true
		case 2:
			return `<html>upstream error</html>`, true
		default:
			return "", false
		}
	}

	tracks := ReconstructTracks(24, fetch)
	if len(tracks) != 1 {
		t.Fatalf("expected 1 track despite garbage hours, got %d", len(tracks))
	}
	if len(tracks[0].Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(tracks[0].Points))
	}
}

func TestReconstructTracksRecordPayloadsWithTimestamps(t *testing.T) {
	// Payloads that carry their own timestamps override the hour-index
	// fallback; the linker still sees hourly cadence.
	base := time.Now().Unix()
	fetch := func(h int) (string, bool) {
		ts := base - int64(h)*3600
		lon := 0.45 * float64(3-h)
		return fmt.Sprintf(`{"data": {"lat": 10.0, "lon": %g, "ts": %d}}`, lon, ts), true
	}

	tracks := ReconstructTracks(4, fetch)
	if len(tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(tracks))
	}
	pts := tracks[0].Points
	if len(pts) != 4 {
		t.Fatalf("expected 4 points, got %d", len(pts))
	}
	if pts[0].TS != base-3*3600 || pts[3].TS != base {
		t.Errorf("timestamps not taken from payload: first %d, last %d", pts[0].TS, pts[3].TS)
	}
}
