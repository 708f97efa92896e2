// Package track reconstructs continuous movement tracks from hourly
// observation sets.
//
// This package handles:
// - Greedy nearest-neighbor linking of per-hour observations under a fixed
//   elapsed-time gating window and a velocity cap
// - Assignment of opaque, run-scoped track identifiers
// - Deduplication and chronological ordering of each track's points
//
// Linking is intentionally greedy rather than globally optimal: within an
// hour, earlier observations in iteration order claim tracks first, and a
// claimed track is removed from candidacy for the rest of that hour.
package track
