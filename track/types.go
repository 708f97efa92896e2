package track

// Observation is a single decoded telemetry reading before track assignment.
// Alt is nil when the payload carried no altitude.
type Observation struct {
	TS  int64    `json:"ts"`
	Lat float64  `json:"lat"`
	Lon float64  `json:"lon"`
	Alt *float64 `json:"alt,omitempty"`
}

// Point is an Observation attached to a track. ID is a back-reference to the
// owning track, assigned at link time; it is not intrinsic to the reading.
type Point struct {
	ID  string   `json:"id"`
	TS  int64    `json:"ts"`
	Lat float64  `json:"lat"`
	Lon float64  `json:"lon"`
	Alt *float64 `json:"alt,omitempty"`
}

// Track is a chronologically ordered sequence of points believed to belong
// to the same physical object. IDs are opaque, monotonically assigned
// integers-as-strings scoped to a single reconstruction run; they carry no
// meaning across runs.
type Track struct {
	ID     string  `json:"id"`
	Points []Point `json:"points"`
}

func (o Observation) point(id string) Point {
	return Point{ID: id, TS: o.TS, Lat: o.Lat, Lon: o.Lon, Alt: o.Alt}
}

// Last returns the most recently appended point.
func (t *Track) Last() Point {
	return t.Points[len(t.Points)-1]
}
