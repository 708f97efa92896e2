package events

// Detection is a geotagged event point consumed for proximity scoring. Only
// the coordinates matter to the analysis; the remaining fields are metadata
// carried through for display.
type Detection struct {
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Confidence string  `json:"confidence,omitempty"`
	FRP        float64 `json:"frp,omitempty"`
	Acquired   int64   `json:"acquired,omitempty"`
	Source     string  `json:"source,omitempty"`
}
