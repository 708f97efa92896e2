package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"

	"github.com/driftlab/driftwatch/track"
)

func pts(coords ...[3]float64) []track.Point {
	out := make([]track.Point, 0, len(coords))
	for _, c := range coords {
		out = append(out, track.Point{ID: "1", TS: int64(c[0]), Lat: c[1], Lon: c[2]})
	}
	return out
}

func TestSegmentAntimeridianSplit(t *testing.T) {
	points := pts(
		[3]float64{100, 10, 178},
		[3]float64{200, 10, 179},
		[3]float64{300, 10, -179}, // wraparound, not a real 358-degree hop
		[3]float64{400, 10, -178},
	)
	segs := Segment(points, 0, DefaultMaxHopKM)
	want := []orb.LineString{
		{{178, 10}, {179, 10}},
		{{-179, 10}, {-178, 10}},
	}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Errorf("unexpected segments (-want +got):\n%s", diff)
	}
}

func TestSegmentExcessiveHopSplit(t *testing.T) {
	points := pts(
		[3]float64{100, 0, 0},
		[3]float64{200, 0, 1},
		[3]float64{300, 0, 20}, // ~2100 km hop
		[3]float64{400, 0, 21},
	)
	segs := Segment(points, 0, DefaultMaxHopKM)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
}

func TestSegmentCutoffFiltersOldPoints(t *testing.T) {
	points := pts(
		[3]float64{100, 0, 0},
		[3]float64{200, 0, 1},
		[3]float64{300, 0, 2},
	)
	segs := Segment(points, 200, DefaultMaxHopKM)
	want := []orb.LineString{{{1, 0}, {2, 0}}}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Errorf("unexpected segments (-want +got):\n%s", diff)
	}
}

func TestSegmentDropsShortSegments(t *testing.T) {
	// The middle point is isolated by two breaks and must not survive as a
	// one-point segment.
	points := pts(
		[3]float64{100, 0, 0},
		[3]float64{200, 0, 40},
		[3]float64{300, 0, 80},
	)
	segs := Segment(points, 0, DefaultMaxHopKM)
	if len(segs) != 0 {
		t.Fatalf("expected no segments, got %d", len(segs))
	}
}

func TestSegmentEmptyInput(t *testing.T) {
	if segs := Segment(nil, 0, DefaultMaxHopKM); len(segs) != 0 {
		t.Errorf("expected no segments, got %v", segs)
	}
	if segs := Segment(pts([3]float64{100, 0, 0}), 500, DefaultMaxHopKM); len(segs) != 0 {
		t.Errorf("expected no segments after cutoff filter, got %v", segs)
	}
}
