package render

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/driftlab/driftwatch/geo"
	"github.com/driftlab/driftwatch/track"
)

// DefaultMaxHopKM bounds the distance between consecutive rendered points.
// It is intentionally tighter than the linker's own velocity gate so that a
// flat map never shows a visually implausible long segment.
const DefaultMaxHopKM = 800.0

// Segment splits a track's points into independently plottable polylines.
// Points older than cutoffTS are dropped; a new segment starts whenever
// consecutive points cross the antimeridian (longitude difference over 180
// degrees in magnitude) or hop farther than maxHopKM. Segments with fewer
// than two points are discarded. Coordinates follow GeoJSON axis order,
// longitude first.
func Segment(points []track.Point, cutoffTS int64, maxHopKM float64) []orb.LineString {
	if maxHopKM <= 0 {
		maxHopKM = DefaultMaxHopKM
	}
	recent := points[:0:0]
	for _, p := range points {
		if p.TS >= cutoffTS {
			recent = append(recent, p)
		}
	}

	var segs []orb.LineString
	var cur orb.LineString
	flush := func() {
		if len(cur) >= 2 {
			segs = append(segs, cur)
		}
		cur = nil
	}
	for i, p := range recent {
		if i > 0 {
			prev := recent[i-1]
			if math.Abs(p.Lon-prev.Lon) > 180 ||
				geo.DistanceKM(prev.Lat, prev.Lon, p.Lat, p.Lon) > maxHopKM {
				flush()
			}
		}
		cur = append(cur, orb.Point{p.Lon, p.Lat})
	}
	flush()
	return segs
}
