package news

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/seenimoa/tickerpulse/internal/infra"
)

// Endpoints holds the source URLs. Zero values select the defaults.
type Endpoints struct {
	GoogleURL    string
	BingURL      string
	YahooRSSURLs []string
}

// Build creates fetchers for the named sources, in the given order.
// An empty list means DefaultOrder. lister backs the "yahoo-news" source.
func Build(names []string, httpClient *infra.Client, ep Endpoints, lister NewsLister, logger *slog.Logger) ([]Fetcher, error) {
	if len(names) == 0 {
		names = DefaultOrder
	}

	fetchers := make([]Fetcher, 0, len(names))
	for _, raw := range names {
		switch n := strings.ToLower(strings.TrimSpace(raw)); n {
		case SourceGoogle:
			fetchers = append(fetchers, NewGoogleNews(httpClient, ep.GoogleURL, logger))
		case SourceBing:
			fetchers = append(fetchers, NewBingNews(httpClient, ep.BingURL, logger))
		case SourceYahooRSS:
			fetchers = append(fetchers, NewYahooRSS(httpClient, ep.YahooRSSURLs, logger))
		case SourceYahooNews:
			if lister == nil {
				return nil, fmt.Errorf("news source %q needs a market-data client", n)
			}
			fetchers = append(fetchers, NewProviderNews(lister, logger))
		default:
			return nil, fmt.Errorf("unknown news source %q", raw)
		}
	}
	return fetchers, nil
}
