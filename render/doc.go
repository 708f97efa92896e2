// Package render prepares reconstructed tracks for flat-map display by
// splitting them into polyline segments that never wrap the antimeridian or
// contain implausibly long hops.
package render
