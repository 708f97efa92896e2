// Package proximity cross-references reconstructed tracks against a
// reference set of geotagged detections and derives per-track
// closest-approach statistics.
//
// The scan is a full pairwise product with no spatial index; cost grows as
// O(tracks x points-per-track x detections). At the detection volumes this
// service sees that is fine, and keeping the scan exact makes the output
// directly comparable across runs. A grid or k-d tree over detections is
// the natural acceleration point if the reference set grows.
package proximity
