package track

import (
	"strconv"

	"github.com/driftlab/driftwatch/geo"
)

const (
	// MinGapSeconds and MaxGapSeconds bound the elapsed time between two
	// observations considered consecutive on the same track: roughly one
	// hour plus or minus thirty minutes, which tolerates an occasional
	// duplicate or slightly late snapshot while still requiring hourly
	// cadence. The window is fixed, not relative to track staleness, so a
	// missing hour terminates the track rather than bridging the gap.
	MinGapSeconds = 1800
	MaxGapSeconds = 5400

	// MaxSpeedKMH is the fastest plausible drift speed. The distance gate
	// scales with actual elapsed time: allowedKM = MaxSpeedKMH * dtHours.
	MaxSpeedKMH = 200.0
)

// Link reconstructs tracks from hourly observation sets. hours[0] is the
// most recent hour, hours[len-1] the oldest; processing runs oldest to
// newest. Matching is greedy: each observation claims the nearest open track
// passing the time and speed gates, and a claimed track is unavailable to
// later observations within the same hour. Unmatched observations seed new
// tracks. Tracks with fewer than two points are discarded before return;
// survivors are post-processed.
func Link(hours [][]Observation) []Track {
	var open []*Track
	nextID := 1

	for h := len(hours) - 1; h >= 0; h-- {
		claimed := make(map[*Track]bool)
		for _, obs := range hours[h] {
			best := match(open, claimed, obs)
			if best != nil {
				best.Points = append(best.Points, obs.point(best.ID))
				claimed[best] = true
				continue
			}
			t := &Track{ID: strconv.Itoa(nextID)}
			nextID++
			t.Points = append(t.Points, obs.point(t.ID))
			open = append(open, t)
		}
	}

	out := make([]Track, 0, len(open))
	for _, t := range open {
		if len(t.Points) < 2 {
			continue
		}
		t.Points = PostProcess(t.Points)
		if len(t.Points) < 2 {
			continue
		}
		out = append(out, *t)
	}
	return out
}

// match finds the unclaimed open track whose last point is nearest to obs
// among those passing the gating window and the velocity cap. Returns nil
// when no track qualifies.
func match(open []*Track, claimed map[*Track]bool, obs Observation) *Track {
	var best *Track
	var bestKM float64
	for _, t := range open {
		if claimed[t] {
			continue
		}
		last := t.Last()
		dt := obs.TS - last.TS
		if dt < MinGapSeconds || dt > MaxGapSeconds {
			continue
		}
		km := geo.DistanceKM(last.Lat, last.Lon, obs.Lat, obs.Lon)
		if km > MaxSpeedKMH*float64(dt)/3600 {
			continue
		}
		if best == nil || km < bestKM {
			best = t
			bestKM = km
		}
	}
	return best
}
