package normalize

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/driftlab/driftwatch/track"
)

// strategy is a pure function from a recovered document to zero or more
// observations. def is the fallback timestamp for readings that carry none.
type strategy func(doc any, def int64) []track.Observation

// strategies are tried in order; the first one to yield results wins.
var strategies = []strategy{extractPairs, extractRecords, extractWalk}

// Key synonyms the feed has been observed to use. Lookup is exact-match over
// the listed variants rather than case folding every key.
var (
	latKeys = []string{"lat", "latitude", "y", "Lat", "Latitude", "Y"}
	lonKeys = []string{"lon", "lng", "long", "longitude", "x", "Lon", "Lng", "Long", "Longitude", "X"}
	altKeys = []string{"alt", "altitude", "z", "Alt", "Altitude", "Z", "height", "elevation"}
	tsKeys  = []string{"ts", "time", "timestamp", "t", "epoch", "updated_at", "date", "Ts", "Time", "Timestamp"}
)

// Observations recovers a document from raw text and extracts the readings
// it contains. hourIdx is the snapshot's age in hours (0 = most recent); it
// seeds the fallback timestamp now - hourIdx*3600 for payloads that omit
// one. Unusable input yields nil, never an error.
func Observations(raw string, hourIdx int) []track.Observation {
	doc, ok := Recover(raw)
	if !ok {
		return nil
	}
	return Extract(doc, hourIdx)
}

// Extract produces observations from a recovered document. Every strategy is
// tried in order until one yields results. Observations with a non-finite
// latitude or longitude are dropped silently.
func Extract(doc any, hourIdx int) []track.Observation {
	def := time.Now().Unix() - int64(hourIdx)*3600
	for _, s := range strategies {
		if obs := s(doc, def); len(obs) > 0 {
			return obs
		}
	}
	return nil
}

// extractPairs handles a sequence of sequences: index 0 latitude, index 1
// longitude, optional index 2 altitude.
func extractPairs(doc any, def int64) []track.Observation {
	arr, ok := doc.([]any)
	if !ok {
		return nil
	}
	var out []track.Observation
	for _, el := range arr {
		pair, ok := el.([]any)
		if !ok || len(pair) < 2 {
			continue
		}
		lat, okLat := toFloat(pair[0])
		lon, okLon := toFloat(pair[1])
		if !okLat || !okLon || !finite(lat) || !finite(lon) {
			continue
		}
		obs := track.Observation{TS: def, Lat: lat, Lon: lon}
		if len(pair) >= 3 {
			if alt, ok := toFloat(pair[2]); ok && finite(alt) {
				obs.Alt = &alt
			}
		}
		out = append(out, obs)
	}
	return out
}

// extractRecords handles a sequence of keyed records. Records missing the
// coordinate keys are skipped; siblings are still processed.
func extractRecords(doc any, def int64) []track.Observation {
	arr, ok := doc.([]any)
	if !ok {
		return nil
	}
	var out []track.Observation
	for _, el := range arr {
		rec, ok := el.(map[string]any)
		if !ok {
			continue
		}
		if obs, ok := coordsFromRecord(rec, def, false); ok {
			out = append(out, obs)
		}
	}
	return out
}

// extractWalk recursively walks the document, arrays depth-first and objects
// by value depth-first, attempting the coordinate lookup at every object and
// additionally searching for a timestamp. Matches anywhere in the tree are
// collected.
func extractWalk(doc any, def int64) []track.Observation {
	var out []track.Observation
	var walk func(node any)
	walk = func(node any) {
		switch v := node.(type) {
		case []any:
			for _, el := range v {
				walk(el)
			}
		case map[string]any:
			if obs, ok := coordsFromRecord(v, def, true); ok {
				out = append(out, obs)
			}
			// sorted keys keep extraction order deterministic
			keys := make([]string, 0, len(v))
			for k := range v {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				walk(v[k])
			}
		}
	}
	walk(doc)
	return out
}

func coordsFromRecord(rec map[string]any, def int64, withTS bool) (track.Observation, bool) {
	lat, okLat := lookupFloat(rec, latKeys)
	lon, okLon := lookupFloat(rec, lonKeys)
	if !okLat || !okLon || !finite(lat) || !finite(lon) {
		return track.Observation{}, false
	}
	obs := track.Observation{TS: def, Lat: lat, Lon: lon}
	if alt, ok := lookupFloat(rec, altKeys); ok && finite(alt) {
		obs.Alt = &alt
	}
	if withTS {
		for _, k := range tsKeys {
			if v, present := rec[k]; present {
				if ts, ok := coerceTimestamp(v); ok {
					obs.TS = ts
					break
				}
			}
		}
	}
	return obs, true
}

func lookupFloat(rec map[string]any, keys []string) (float64, bool) {
	for _, k := range keys {
		if v, ok := rec[k]; ok {
			if f, ok := toFloat(v); ok {
				return f, true
			}
		}
	}
	return 0, false
}

// coerceTimestamp interprets a value as epoch seconds. Numerics above 1e11
// are taken as milliseconds; strings are tried as numerics first, then as
// calendar date/time text.
func coerceTimestamp(v any) (int64, bool) {
	switch t := v.(type) {
	case float64:
		if !finite(t) {
			return 0, false
		}
		return epochFromNumeric(t), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && finite(f) {
			return epochFromNumeric(f), true
		}
		for _, layout := range []string{
			time.RFC3339,
			"2006-01-02T15:04:05",
			"2006-01-02 15:04:05",
			"2006-01-02",
		} {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts.Unix(), true
			}
		}
	}
	return 0, false
}

func epochFromNumeric(f float64) int64 {
	if f > 1e11 {
		return int64(f / 1000)
	}
	return int64(f)
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	}
	return 0, false
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
