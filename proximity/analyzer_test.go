package proximity

import (
	"math"
	"testing"

	"github.com/driftlab/driftwatch/events"
	"github.com/driftlab/driftwatch/track"
)

func TestAnalyzeColocatedPoint(t *testing.T) {
	tracks := []track.Track{{
		ID:     "1",
		Points: []track.Point{{ID: "1", TS: 1000, Lat: 40, Lon: -120}},
	}}
	dets := []events.Detection{{Lat: 40, Lon: -120}}

	stats := Analyze(tracks, dets, DefaultThresholdKM)
	if len(stats) != 1 {
		t.Fatalf("expected 1 stat, got %d", len(stats))
	}
	st := stats[0]
	if st.ClosestKM > 0.001 {
		t.Errorf("ClosestKM = %v, want ~0", st.ClosestKM)
	}
	if st.NearCount != 1 {
		t.Errorf("NearCount = %d, want 1", st.NearCount)
	}
	if !st.HasClosest || st.ClosestTS != 1000 {
		t.Errorf("ClosestTS = (%d, %v), want (1000, true)", st.ClosestTS, st.HasClosest)
	}
}

func TestAnalyzeEmptyDetectionsYieldsSentinel(t *testing.T) {
	tracks := []track.Track{
		{ID: "1", Points: []track.Point{{ID: "1", TS: 1, Lat: 0, Lon: 0}}},
		{ID: "2", Points: []track.Point{{ID: "2", TS: 2, Lat: 10, Lon: 10}}},
	}
	stats := Analyze(tracks, nil, DefaultThresholdKM)
	if len(stats) != 2 {
		t.Fatalf("expected 2 stats, got %d", len(stats))
	}
	for _, st := range stats {
		if !math.IsInf(st.ClosestKM, 1) {
			t.Errorf("track %s: ClosestKM = %v, want +Inf", st.TrackID, st.ClosestKM)
		}
		if st.NearCount != 0 {
			t.Errorf("track %s: NearCount = %d, want 0", st.TrackID, st.NearCount)
		}
		if st.HasClosest {
			t.Errorf("track %s: ClosestTS must be unset", st.TrackID)
		}
	}
}

func TestAnalyzeCountsPairsNotDistinctEvents(t *testing.T) {
	// Two identical detections and two nearby track points: 4 pairs.
	tracks := []track.Track{{
		ID: "1",
		Points: []track.Point{
			{ID: "1", TS: 1, Lat: 0, Lon: 0},
			{ID: "1", TS: 2, Lat: 0, Lon: 0.1},
		},
	}}
	dets := []events.Detection{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 0}}

	stats := Analyze(tracks, dets, DefaultThresholdKM)
	if stats[0].NearCount != 4 {
		t.Errorf("NearCount = %d, want 4 (pairs, not distinct events)", stats[0].NearCount)
	}
}

func TestAnalyzeSortedByClosest(t *testing.T) {
	tracks := []track.Track{
		{ID: "far", Points: []track.Point{{ID: "far", TS: 1, Lat: 0, Lon: 50}}},
		{ID: "near", Points: []track.Point{{ID: "near", TS: 1, Lat: 0, Lon: 1}}},
	}
	dets := []events.Detection{{Lat: 0, Lon: 0}}

	stats := Analyze(tracks, dets, DefaultThresholdKM)
	if stats[0].TrackID != "near" || stats[1].TrackID != "far" {
		t.Errorf("stats not sorted ascending by distance: %v, %v", stats[0].TrackID, stats[1].TrackID)
	}
}

func TestAnalyzeClosestTimestampTracksMinimum(t *testing.T) {
	tracks := []track.Track{{
		ID: "1",
		Points: []track.Point{
			{ID: "1", TS: 100, Lat: 0, Lon: 5},
			{ID: "1", TS: 200, Lat: 0, Lon: 1}, // closest approach
			{ID: "1", TS: 300, Lat: 0, Lon: 3},
		},
	}}
	dets := []events.Detection{{Lat: 0, Lon: 0}}

	stats := Analyze(tracks, dets, DefaultThresholdKM)
	if stats[0].ClosestTS != 200 {
		t.Errorf("ClosestTS = %d, want 200", stats[0].ClosestTS)
	}
}
