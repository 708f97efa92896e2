package events

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Fixed column names of the detection feed. The feed's schema is stable;
// there is no field-name guessing here.
const (
	colLatitude   = "latitude"
	colLongitude  = "longitude"
	colConfidence = "confidence"
	colFRP        = "frp"
	colAcqDate    = "acq_date"
	colAcqTime    = "acq_time"
	colSatellite  = "satellite"
)

// LoadCSV parses a detection feed in CSV form. Rows with a missing or
// unparseable coordinate are skipped; their siblings are still processed.
func LoadCSV(r io.Reader) ([]Detection, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("detection csv header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	latI, okLat := idx[colLatitude]
	lonI, okLon := idx[colLongitude]
	if !okLat || !okLon {
		return nil, errors.New("detection csv missing latitude/longitude columns")
	}

	var out []Detection
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		lat, errLat := strconv.ParseFloat(field(rec, latI), 64)
		lon, errLon := strconv.ParseFloat(field(rec, lonI), 64)
		if errLat != nil || errLon != nil || !finite(lat) || !finite(lon) {
			continue
		}
		d := Detection{Lat: lat, Lon: lon}
		if i, ok := idx[colConfidence]; ok {
			d.Confidence = field(rec, i)
		}
		if i, ok := idx[colFRP]; ok {
			if f, err := strconv.ParseFloat(field(rec, i), 64); err == nil && finite(f) {
				d.FRP = f
			}
		}
		if i, ok := idx[colSatellite]; ok {
			d.Source = field(rec, i)
		}
		if di, ok := idx[colAcqDate]; ok {
			ti := -1
			if j, ok := idx[colAcqTime]; ok {
				ti = j
			}
			d.Acquired = parseAcquired(field(rec, di), field(rec, ti))
		}
		out = append(out, d)
	}
	return out, nil
}

// Fetch retrieves the detection feed over HTTP and parses it. A local file
// path is accepted in place of a URL. An empty URL yields no detections.
func Fetch(ctx context.Context, client *http.Client, url string) ([]Detection, error) {
	if url == "" {
		return nil, nil
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		f, err := os.Open(url)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		return LoadCSV(f)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	return LoadCSV(resp.Body)
}

// parseAcquired combines the feed's acq_date (YYYY-MM-DD) and acq_time
// (HHMM) columns into epoch seconds. Zero when the date is unusable.
func parseAcquired(date, hhmm string) int64 {
	date = strings.TrimSpace(date)
	if date == "" {
		return 0
	}
	hour, minute := 0, 0
	if hhmm = strings.TrimSpace(hhmm); len(hhmm) >= 3 {
		if v, err := strconv.Atoi(hhmm); err == nil {
			hour, minute = v/100, v%100
		}
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0
	}
	return t.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute).Unix()
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
