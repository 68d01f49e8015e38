package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	SearchURL = "https://serpapi.com/search"
	UserAgent = "event-finder/1.0 (github.com/pfrederiksen/event-finder)"
	Timeout   = 30 * time.Second
	Language  = "en"
)

// Client is a client for the SerpApi search endpoint
type Client struct {
	apiKey string
	url    string
	http   *resty.Client
}

// Option configures a Client
type Option func(*Client)

// WithURL overrides the search endpoint
func WithURL(url string) Option {
	return func(c *Client) {
		c.url = url
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.http.SetHeader("User-Agent", ua)
	}
}

// NewClient creates a new SerpApi client. Requests are never retried.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey: apiKey,
		url:    SearchURL,
		http: resty.New().
			SetTimeout(Timeout).
			SetRetryCount(0).
			SetHeader("User-Agent", UserAgent).
			SetHeader("Accept", "application/json"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch runs a single search query scoped to a location.
// Transport errors, non-2xx statuses and non-JSON bodies are returned as
// errors. A 200 response carrying only an error message (SerpApi's way of
// saying "no results") is a valid Result without events.
func (c *Client) Fetch(ctx context.Context, query, location string) (*Result, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":        query,
			"location": location,
			"hl":       Language,
			"api_key":  c.apiKey,
		}).
		Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}

	var result Result
	decodeErr := json.Unmarshal(resp.Body(), &result)

	if resp.IsError() {
		if decodeErr == nil && result.Error != "" {
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode(), result.Error)
		}
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode())
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("parsing response: %w", decodeErr)
	}

	return &result, nil
}
