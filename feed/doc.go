// Package feed retrieves the hourly snapshot payloads published by the
// telemetry feed. Fetches are fully parallel across the window, each bounded
// by its own timeout; a failed hour is absent data, not an error. An
// optional cache (Redis or in-process) sits in front of the fetches so
// repeated reconstruction calls within the feed cadence do not re-hit the
// upstream.
package feed
