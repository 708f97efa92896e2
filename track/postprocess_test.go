package track

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPostProcessSortsAndDedupes(t *testing.T) {
	in := []Point{
		{ID: "1", TS: 300, Lat: 1.000001, Lon: 2},
		{ID: "1", TS: 100, Lat: 1, Lon: 2},
		{ID: "1", TS: 100, Lat: 1.0000001, Lon: 2}, // same at 5dp: duplicate
		{ID: "1", TS: 200, Lat: 1.5, Lon: 2.5},
	}
	want := []Point{
		{ID: "1", TS: 100, Lat: 1, Lon: 2},
		{ID: "1", TS: 200, Lat: 1.5, Lon: 2.5},
		{ID: "1", TS: 300, Lat: 1.000001, Lon: 2},
	}
	got := PostProcess(in)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected result (-want +got):\n%s", diff)
	}
}

func TestPostProcessDropsNonFinite(t *testing.T) {
	in := []Point{
		{ID: "1", TS: 100, Lat: math.NaN(), Lon: 2},
		{ID: "1", TS: 200, Lat: 1, Lon: math.Inf(1)},
		{ID: "1", TS: 300, Lat: 1, Lon: 2},
	}
	got := PostProcess(in)
	if len(got) != 1 || got[0].TS != 300 {
		t.Fatalf("expected only the finite point to survive, got %v", got)
	}
}

func TestPostProcessIdempotent(t *testing.T) {
	in := []Point{
		{ID: "7", TS: 50, Lat: -11.2, Lon: 177.9},
		{ID: "7", TS: 10, Lat: -11.1, Lon: 177.5},
		{ID: "7", TS: 10, Lat: -11.1, Lon: 177.5},
		{ID: "7", TS: 30, Lat: -11.15, Lon: 177.7},
	}
	once := PostProcess(in)
	twice := PostProcess(once)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("not idempotent (-once +twice):\n%s", diff)
	}
}

func TestPostProcessEmpty(t *testing.T) {
	if got := PostProcess(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
