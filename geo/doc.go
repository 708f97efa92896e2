// Package geo provides the great-circle distance math shared by the
// tracking, proximity, and rendering packages.
package geo
