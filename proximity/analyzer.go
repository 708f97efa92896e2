package proximity

import (
	"math"
	"sort"

	"github.com/driftlab/driftwatch/events"
	"github.com/driftlab/driftwatch/geo"
	"github.com/driftlab/driftwatch/track"
)

// DefaultThresholdKM is the encounter radius used when a caller does not
// supply one.
const DefaultThresholdKM = 100.0

// Stat is the per-track proximity summary against a detection set.
// ClosestKM is +Inf when no comparison was possible (empty track or empty
// detection list); the sentinel must be preserved so callers can tell
// "no data" from "zero distance". HasClosest reports whether ClosestTS is
// meaningful.
type Stat struct {
	TrackID    string
	ClosestKM  float64
	NearCount  int
	ClosestTS  int64
	HasClosest bool
}

// Analyze scores every track against every detection over the full cartesian
// product of track points and detections. NearCount counts (point,
// detection) pairs within thresholdKM, so duplicate detections and track
// revisits each contribute separately. Stats are recomputed fresh on every
// call and returned sorted ascending by ClosestKM.
func Analyze(tracks []track.Track, dets []events.Detection, thresholdKM float64) []Stat {
	if thresholdKM <= 0 {
		thresholdKM = DefaultThresholdKM
	}
	stats := make([]Stat, 0, len(tracks))
	for _, t := range tracks {
		st := Stat{TrackID: t.ID, ClosestKM: math.Inf(1)}
		for _, p := range t.Points {
			for _, d := range dets {
				km := geo.DistanceKM(p.Lat, p.Lon, d.Lat, d.Lon)
				if km < st.ClosestKM {
					st.ClosestKM = km
					st.ClosestTS = p.TS
					st.HasClosest = true
				}
				if km <= thresholdKM {
					st.NearCount++
				}
			}
		}
		stats = append(stats, st)
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].ClosestKM < stats[j].ClosestKM })
	return stats
}
