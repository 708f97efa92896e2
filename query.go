package driftwatch

import (
	"math"
	"strconv"
	"strings"
)

// QueryError reports an invalid query parameter; handlers surface it as a
// 400 rather than a server fault.
type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

func parsePositiveFloat(name, s string, def float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, &QueryError{Msg: name + " must be a positive number."}
	}
	return v, nil
}

func parseNonNegativeInt(name, s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, &QueryError{Msg: name + " must be a non-negative integer."}
	}
	return v, nil
}
