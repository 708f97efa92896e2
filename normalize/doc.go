// Package normalize performs best-effort recovery of point observations
// from arbitrarily-shaped, occasionally malformed snapshot payloads.
//
// Recovery and extraction are composed in sequence: Recover repairs and
// parses raw text into a generic document, and Extract runs an ordered list
// of shape strategies over that document until one yields observations.
// Neither step ever fails hard; garbage in means zero observations out.
package normalize
