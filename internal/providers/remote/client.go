// Package remote fetches datasets over HTTP from a static file host, the way the
// browser visualisations loaded them.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"worldcup-stats-service/internal/providers"
)

// Config controls how the client reaches the dataset host.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client is a providers.Source backed by GET {BaseURL}/{file}.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) (*Client, error) {
	base := normalizeBaseURL(cfg.BaseURL)
	if base == "" {
		return nil, errors.New("remote: base url is required")
	}
	return &Client{
		baseURL:    base,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}, nil
}

// Open downloads one dataset file.
func (c *Client) Open(ctx context.Context, name string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+name, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("remote: %w: %s", providers.ErrNotFound, name)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &providers.RateLimitError{
			Provider:   "remote",
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Message:    "remote: rate limited fetching " + name,
		}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorSnippetBytes))
		return nil, fmt.Errorf("remote: unexpected status %d for %s: %s", resp.StatusCode, name, strings.TrimSpace(string(body)))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxBodyBytes {
		return nil, fmt.Errorf("remote: %s exceeds %d bytes", name, maxBodyBytes)
	}
	return data, nil
}
