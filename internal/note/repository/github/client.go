package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client fetches raw note Markdown from the content host. Stored references
// point at the web UI (github.com/.../blob/...); RawURL rewrites them into
// their raw-content form before fetching.
type Client struct {
	rawHost    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Config holds the raw content client parameters.
type Config struct {
	RawHost        string
	RequestTimeout time.Duration
	RatePerSecond  float64
	RateBurst      int
}

// NewClient creates a new raw content client.
func NewClient(cfg Config) *Client {
	rawHost := cfg.RawHost
	if rawHost == "" {
		rawHost = "raw.githubusercontent.com"
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	perSecond := cfg.RatePerSecond
	if perSecond <= 0 {
		perSecond = 5
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 5
	}

	return &Client{
		rawHost:    rawHost,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// RawURL rewrites a web UI reference into its raw-content form: host
// substitution plus dropping the /blob/ path segment.
func (c *Client) RawURL(ref string) string {
	raw := strings.Replace(ref, "github.com", c.rawHost, 1)
	return strings.Replace(raw, "/blob/", "/", 1)
}

// FetchRaw GETs the raw-content form of ref and returns the body text.
func (c *Client) FetchRaw(ctx context.Context, ref string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.RawURL(ref), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build note content request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call note content host: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("note content error %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read note content response: %w", err)
	}
	return string(body), nil
}
