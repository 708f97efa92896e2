package feed

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

// WindowHours is the number of hourly snapshots the upstream feed publishes.
const WindowHours = 24

// DefaultTimeout bounds a single snapshot fetch.
const DefaultTimeout = 8 * time.Second

// Client fetches hourly snapshot payloads from the telemetry feed. The URL
// template must contain a %02d slot for the hour index (0 = most recent).
// Local file paths are accepted in place of URLs, which keeps oneshot runs
// and tests independent of the network.
type Client struct {
	httpClient  *http.Client
	urlTemplate string
	cache       Cache
}

// NewClient creates a snapshot client. A non-positive timeout falls back to
// DefaultTimeout.
func NewClient(urlTemplate string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		urlTemplate: urlTemplate,
	}
}

// WithCache attaches a snapshot cache consulted before each fetch.
func (c *Client) WithCache(cache Cache) *Client {
	c.cache = cache
	return c
}

// FetchHour retrieves the raw payload for one hour index.
func (c *Client) FetchHour(ctx context.Context, hour int) (string, error) {
	target := fmt.Sprintf(c.urlTemplate, hour)
	if c.cache != nil {
		if raw, ok := c.cache.Get(ctx, target); ok {
			return raw, nil
		}
	}
	raw, err := c.fetch(ctx, target)
	if err != nil {
		return "", err
	}
	if c.cache != nil {
		c.cache.Set(ctx, target, raw)
	}
	return raw, nil
}

func (c *Client) fetch(ctx context.Context, target string) (string, error) {
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		b, err := os.ReadFile(target)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", target, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d from %s", resp.StatusCode, target)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FetchWindow retrieves all hours of the window concurrently. Hours fail
// independently: a timeout, transport error, or bad status becomes an empty
// slot, never an error for the window. The join waits for every fetch to
// complete regardless of outcome.
func (c *Client) FetchWindow(ctx context.Context, hours int) []string {
	if hours <= 0 {
		hours = WindowHours
	}
	out := make([]string, hours)
	var wg sync.WaitGroup
	for h := 0; h < hours; h++ {
		wg.Add(1)
		go func(h int) {
			defer wg.Done()
			raw, err := c.FetchHour(ctx, h)
			if err != nil {
				log.Printf("snapshot hour %02d unavailable: %v", h, err)
				return
			}
			out[h] = raw
		}(h)
	}
	wg.Wait()
	return out
}
