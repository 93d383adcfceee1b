// Package catfact fetches a random cat fact from a public API.
package catfact

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/folio-arcade/internal/logging"
)

// DefaultEndpoint is the public fact API.
const DefaultEndpoint = "https://catfact.ninja/fact"

// Fallback is returned whenever a fact cannot be loaded.
const Fallback = "Failed to load a cat fact!"

// Client fetches facts. The zero value is not usable; use New.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the fact API URL.
func WithEndpoint(url string) Option {
	return func(c *Client) { c.endpoint = url }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the client's logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client with a 10 second timeout.
func New(opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.Discard()
	}
	return c
}

type factResponse struct {
	Fact string `json:"fact"`
}

// Fetch returns one fact, or Fallback on any failure. There is no retry.
func (c *Client) Fetch(ctx context.Context) string {
	fact, err := c.fetch(ctx)
	if err != nil {
		c.logger.Warn("cat fact unavailable", "error", err)
		return Fallback
	}
	return fact
}

func (c *Client) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("catfact: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("catfact: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("catfact: unexpected status %s", resp.Status)
	}

	var body factResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("catfact: decode: %w", err)
	}
	fact := strings.TrimSpace(body.Fact)
	if fact == "" {
		return "", fmt.Errorf("catfact: empty fact")
	}
	return fact, nil
}
