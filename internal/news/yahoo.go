package news

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/seenimoa/tickerpulse/internal/infra"
	"github.com/seenimoa/tickerpulse/pkg/models"
)

// SymbolPlaceholder is replaced with the URL-escaped symbol in Yahoo RSS
// URL templates.
const SymbolPlaceholder = "{symbol}"

// DefaultYahooRSSURLs are tried in order until one yields entries.
var DefaultYahooRSSURLs = []string{
	"https://feeds.finance.yahoo.com/rss/2.0/headline?s={symbol}&lang=en-US",
	"https://feeds.finance.yahoo.com/rss/2.0/headline?s={symbol}&region=US&lang=en-US",
}

// YahooRSS reads the Yahoo Finance headline feed for a symbol.
type YahooRSS struct {
	feeds     feedClient
	templates []string
}

// NewYahooRSS creates the Yahoo Finance RSS fetcher. Empty templates
// means DefaultYahooRSSURLs.
func NewYahooRSS(httpClient *infra.Client, templates []string, logger *slog.Logger) *YahooRSS {
	if len(templates) == 0 {
		templates = DefaultYahooRSSURLs
	}
	return &YahooRSS{feeds: newFeedClient(httpClient, logger), templates: templates}
}

func (y *YahooRSS) Name() string { return SourceYahooRSS }

// Fetch ignores name: the feed is keyed by symbol only.
func (y *YahooRSS) Fetch(ctx context.Context, symbol, _ string) []models.NewsItem {
	escaped := url.QueryEscape(symbol)
	for _, tmpl := range y.templates {
		if ctx.Err() != nil {
			return nil
		}
		u := strings.ReplaceAll(tmpl, SymbolPlaceholder, escaped)
		if items := y.feeds.fetch(ctx, SourceYahooRSS, u); len(items) > 0 {
			return items
		}
	}
	return nil
}

// NewsLister returns a provider's raw news records for a symbol.
// *yfinance.Client satisfies it.
type NewsLister interface {
	News(ctx context.Context, symbol string) ([]map[string]any, error)
}

// Candidate field names for provider news records, in priority order.
var (
	titleFields     = []string{"title", "headline"}
	linkFields      = []string{"link", "url"}
	publisherFields = []string{"publisher", "source"}
	timeFields      = []string{"providerPublishTime", "published_at"}
)

// ProviderNews is the market-data provider's own news list. It is the
// last resort in the default cascade: it is usually sparser than the feeds.
type ProviderNews struct {
	lister NewsLister
	logger *slog.Logger
}

// NewProviderNews creates the provider news fetcher.
func NewProviderNews(lister NewsLister, logger *slog.Logger) *ProviderNews {
	return &ProviderNews{lister: lister, logger: infra.OrDefault(logger)}
}

func (p *ProviderNews) Name() string { return SourceYahooNews }

func (p *ProviderNews) Fetch(ctx context.Context, symbol, _ string) []models.NewsItem {
	records, err := p.lister.News(ctx, symbol)
	if err != nil {
		p.logger.Debug("provider news failed", "source", SourceYahooNews, "symbol", symbol, "err", err)
		return nil
	}
	return ItemsFromRecords(records)
}

// ItemsFromRecords extracts NewsItems from loosely-typed provider records.
// Records without a title, link or numeric timestamp are dropped.
func ItemsFromRecords(records []map[string]any) []models.NewsItem {
	items := make([]models.NewsItem, 0, len(records))
	for _, rec := range records {
		ts, ok := timestampField(rec, timeFields)
		if !ok {
			continue
		}
		item, ok := newItem(
			stringField(rec, titleFields),
			stringField(rec, linkFields),
			stringField(rec, publisherFields),
			ts,
		)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items
}

// stringField returns the first candidate holding a non-blank string.
func stringField(rec map[string]any, candidates []string) string {
	for _, key := range candidates {
		if s, ok := rec[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// timestampField returns the first present candidate as epoch seconds.
// Numbers and numeric strings are accepted; fractional seconds are
// truncated. A present but non-numeric value rejects the record.
func timestampField(rec map[string]any, candidates []string) (int64, bool) {
	for _, key := range candidates {
		v, ok := rec[key]
		if !ok || isZero(v) {
			continue
		}
		var f float64
		switch x := v.(type) {
		case float64:
			f = x
		case int64:
			f = float64(x)
		case int:
			f = float64(x)
		case json.Number:
			n, err := x.Float64()
			if err != nil {
				return 0, false
			}
			f = n
		case string:
			n, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
			if err != nil {
				return 0, false
			}
			f = n
		default:
			return 0, false
		}
		if f <= 0 {
			return 0, false
		}
		return int64(f), true
	}
	return 0, false
}

// isZero reports whether v is absent-like: nil, "", 0 or false.
func isZero(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case float64:
		return x == 0
	case int:
		return x == 0
	case int64:
		return x == 0
	case bool:
		return !x
	}
	return false
}
