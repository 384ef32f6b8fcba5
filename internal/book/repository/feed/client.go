package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"funbook/internal/model"
)

// Client fetches the book catalog from the remote JSON feed.
type Client struct {
	feedURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Config holds the feed client parameters.
type Config struct {
	FeedURL        string
	RequestTimeout time.Duration
	RatePerSecond  float64
	RateBurst      int
}

// NewClient creates a new catalog feed client.
func NewClient(cfg Config) *Client {
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
		feedURL:    cfg.FeedURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// FetchCatalog GETs the feed URL and decodes the JSON array of book records.
func (c *Client) FetchCatalog(ctx context.Context) ([]model.Book, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog feed request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call catalog feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("catalog feed error %d: %s", resp.StatusCode, string(raw))
	}

	var books []model.Book
	if err := json.NewDecoder(resp.Body).Decode(&books); err != nil {
		return nil, fmt.Errorf("failed to decode catalog feed response: %w", err)
	}
	return books, nil
}
