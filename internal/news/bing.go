package news

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/seenimoa/tickerpulse/internal/infra"
	"github.com/seenimoa/tickerpulse/pkg/models"
)

// DefaultBingNewsURL is the Bing News search endpoint; RSS output is
// selected with format=RSS.
const DefaultBingNewsURL = "https://www.bing.com/news/search"

// BingNews searches Bing News RSS for "symbol name".
type BingNews struct {
	feeds   feedClient
	baseURL string
}

// NewBingNews creates the Bing News fetcher.
func NewBingNews(httpClient *infra.Client, baseURL string, logger *slog.Logger) *BingNews {
	if baseURL == "" {
		baseURL = DefaultBingNewsURL
	}
	return &BingNews{feeds: newFeedClient(httpClient, logger), baseURL: baseURL}
}

func (b *BingNews) Name() string { return SourceBing }

func (b *BingNews) Fetch(ctx context.Context, symbol, name string) []models.NewsItem {
	v := url.Values{}
	v.Set("q", strings.TrimSpace(symbol+" "+name))
	v.Set("format", "RSS")
	return b.feeds.fetch(ctx, SourceBing, b.baseURL+"?"+v.Encode())
}
