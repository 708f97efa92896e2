package track

import (
	"fmt"
	"math"
	"sort"
)

// PostProcess drops points with a non-finite coordinate, removes duplicates
// keyed on (id, ts, lat and lon rounded to 5 decimal places), and returns
// the survivors sorted ascending by timestamp. Idempotent: applying it twice
// yields the same result as once.
func PostProcess(points []Point) []Point {
	seen := make(map[string]bool, len(points))
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if !finite(p.Lat) || !finite(p.Lon) {
			continue
		}
		key := fmt.Sprintf("%s|%d|%.5f|%.5f", p.ID, p.TS, p.Lat, p.Lon)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TS < out[j].TS })
	return out
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
