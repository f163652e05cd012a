// Package httpclient provides the single-shot HTTP client used by probes.
// Probes are opportunistic one-shot requests with a bounded timeout, not a
// resilient client stack: there are no retries and no rate limiting here.
package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"intelprobe/internal/platform/errors"
	"intelprobe/internal/platform/logx"
)

// Client performs one-shot HTTP requests with a bounded timeout.
type Client struct {
	httpClient *http.Client
	logger     logx.Logger
	config     Config
}

// Config holds the configuration for the HTTP client.
type Config struct {
	// Timeout is the request timeout duration.
	// Default: 10 seconds
	Timeout time.Duration

	// UserAgent is the User-Agent header value.
	// Default: "intelprobe/1.0"
	UserAgent string

	// FollowRedirects controls redirect handling.
	// Default: true
	FollowRedirects bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		UserAgent:       "intelprobe/1.0",
		FollowRedirects: true,
	}
}

// New creates a new HTTP client with the given configuration.
func New(config Config, logger logx.Logger) *Client {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = "intelprobe/1.0"
	}

	httpClient := &http.Client{
		Timeout: config.Timeout,
	}
	if !config.FollowRedirects {
		httpClient.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		httpClient: httpClient,
		logger:     logger.With("component", "httpclient"),
		config:     config,
	}
}

// Get performs a single GET request. The response body remains open; the
// caller owns closing it.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create request for %s", url)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)

	c.logger.Debug("HTTP request", "method", http.MethodGet, "url", url)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Warn("HTTP request failed",
			"url", url,
			"error", err.Error(),
			"duration_ms", duration.Milliseconds(),
		)
		return nil, err
	}

	c.logger.Debug("HTTP response received",
		"url", url,
		"status", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	)

	return resp, nil
}

// String returns a human-readable representation of the client configuration.
func (c *Client) String() string {
	return fmt.Sprintf("HTTPClient{timeout=%s, user_agent=%s}", c.config.Timeout, c.config.UserAgent)
}
