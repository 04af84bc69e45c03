package news

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/seenimoa/tickerpulse/internal/infra"
	"github.com/seenimoa/tickerpulse/pkg/models"
)

// DefaultGoogleNewsURL is the Google News RSS search endpoint.
const DefaultGoogleNewsURL = "https://news.google.com/rss/search"

// GoogleNews searches Google News RSS for the symbol and company name.
type GoogleNews struct {
	feeds   feedClient
	baseURL string
}

// NewGoogleNews creates the Google News fetcher. An empty baseURL means
// DefaultGoogleNewsURL.
func NewGoogleNews(httpClient *infra.Client, baseURL string, logger *slog.Logger) *GoogleNews {
	if baseURL == "" {
		baseURL = DefaultGoogleNewsURL
	}
	return &GoogleNews{feeds: newFeedClient(httpClient, logger), baseURL: baseURL}
}

// Name implements Fetcher.
func (g *GoogleNews) Name() string { return SourceGoogle }

// Fetch implements Fetcher.
func (g *GoogleNews) Fetch(ctx context.Context, symbol, name string) []models.NewsItem {
	v := url.Values{}
	v.Set("q", GoogleQuery(symbol, name))
	v.Set("hl", "en-US")
	v.Set("gl", "US")
	v.Set("ceid", "US:en")
	return g.feeds.fetch(ctx, SourceGoogle, g.baseURL+"?"+v.Encode())
}

// GoogleQuery builds the search expression, e.g.
// `NVDA OR "NVIDIA" OR "NVIDIA" stock OR NVIDIA ticker`.
// Only the symbol is used when name is empty.
func GoogleQuery(symbol, name string) string {
	parts := []string{symbol}
	if name = strings.TrimSpace(name); name != "" {
		parts = append(parts,
			`"`+name+`"`,
			`"`+name+`" stock`,
			name+" ticker",
		)
	}
	return strings.Join(parts, " OR ")
}
