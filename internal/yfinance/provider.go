// Package yfinance is a small client for the public Yahoo Finance endpoints
// used by symbol resolution and news fallback: v7 quote, v8 chart metadata
// and v1 search (quotes and news).
//
// Yahoo Finance needs no API key. Responses are best effort: any endpoint
// may be rate limited or change shape, so callers treat errors as "no data".
package yfinance

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/seenimoa/tickerpulse/internal/infra"
)

// DefaultBaseURL is the Yahoo Finance API host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// newsCount is how many news entries are requested from the search endpoint.
const newsCount = 20

// Client talks to Yahoo Finance. It holds no mutable state and is safe
// for concurrent use.
type Client struct {
	http    *infra.Client
	baseURL string
}

// New creates a client. An empty baseURL means DefaultBaseURL.
func New(httpClient *infra.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func jsonHeaders() map[string]string {
	return map[string]string{"Accept": "application/json"}
}

// fetchJSON performs a GET request and decodes the response into dest.
func (c *Client) fetchJSON(ctx context.Context, url string, dest any) error {
	data, err := c.http.GetBytes(ctx, url, jsonHeaders())
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}
	return nil
}

// coalesce returns the first non-empty string, trimmed.
func coalesce(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
