package driftwatch

import (
	"time"
)

func iso8601Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func iso8601FromUnixSeconds(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}
