// Package news gathers recent headlines for a symbol from several
// independent sources.
//
// Each source is a Fetcher. Fetchers never fail loudly: a network error,
// an unparseable payload or an empty feed all come back as an empty slice,
// so a Cascade can move on to the next source. The Cascade tries sources
// in order and keeps the first non-empty result; results from different
// sources are never merged.
package news

import (
	"context"
	"strings"

	"github.com/seenimoa/tickerpulse/pkg/models"
)

// Fetcher retrieves headlines for a symbol from one source.
type Fetcher interface {
	// Name identifies the source, e.g. "google".
	Name() string
	// Fetch returns the source's items for symbol. name is the display
	// name of the instrument and may be empty. Failures yield nil.
	Fetch(ctx context.Context, symbol, name string) []models.NewsItem
}

// Source names understood by Build.
const (
	SourceGoogle    = "google"
	SourceBing      = "bing"
	SourceYahooRSS  = "yahoo-rss"
	SourceYahooNews = "yahoo-news"
)

// DefaultOrder is the default cascade priority, strongest source first.
var DefaultOrder = []string{SourceGoogle, SourceBing, SourceYahooRSS, SourceYahooNews}

// newItem builds a NewsItem with trimmed text fields. ok is false when
// title, link or timestamp is missing.
func newItem(title, link, publisher string, ts int64) (models.NewsItem, bool) {
	title = strings.TrimSpace(title)
	link = strings.TrimSpace(link)
	if title == "" || link == "" || ts == 0 {
		return models.NewsItem{}, false
	}
	return models.NewsItem{
		Title:       title,
		Link:        link,
		Publisher:   strings.TrimSpace(publisher),
		PublishedAt: ts,
	}, true
}
