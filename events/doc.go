// Package events ingests the geotagged detection feed (wildfire detections
// in the deployed service) that tracks are scored against. The core analysis
// only consumes coordinates; this package owns the CSV wire format.
package events
