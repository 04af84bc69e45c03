// Package resolver maps a free-form query (ticker or company name) to a
// canonical market symbol and, when available, its display name.
package resolver

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/seenimoa/tickerpulse/internal/infra"
	"github.com/seenimoa/tickerpulse/pkg/models"
)

var tickerPattern = regexp.MustCompile(`^[A-Z0-9]{1,6}([.\-][A-Z0-9]{1,4})?$`)

// MarketData is the subset of a market-data provider the resolver needs.
// *yfinance.Client satisfies it.
type MarketData interface {
	QuoteName(ctx context.Context, symbol string) (string, error)
	FastInfoName(ctx context.Context, symbol string) (string, error)
	Search(ctx context.Context, query string) ([]models.SymbolMatch, error)
}

// Resolver resolves queries against a MarketData provider. Lookup failures
// never surface: they only degrade the result to a missing name.
type Resolver struct {
	md     MarketData
	cache  *infra.Cache[models.ResolvedSymbol]
	logger *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCache memoizes named resolutions for ttl. Results without a display
// name are never cached so a transient lookup failure is retried.
func WithCache(ttl time.Duration) Option {
	return func(r *Resolver) {
		if ttl > 0 {
			r.cache = infra.NewCache[models.ResolvedSymbol](ttl)
		}
	}
}

// New creates a Resolver. A nil logger means slog.Default().
func New(md MarketData, logger *slog.Logger, opts ...Option) *Resolver {
	r := &Resolver{md: md, logger: infra.OrDefault(logger)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IsLikelyTicker reports whether q looks like a ticker such as "NVDA" or
// "RY.TO". The match is case-sensitive: "nvidia" is a company name.
func IsLikelyTicker(q string) bool {
	return tickerPattern.MatchString(strings.TrimSpace(q))
}

// Resolve returns the symbol for query. Uppercase ticker-shaped queries are
// taken as is; anything else, lowercase tickers included, goes through
// symbol search, preferring equities.
func (r *Resolver) Resolve(ctx context.Context, query string) models.ResolvedSymbol {
	key := strings.TrimSpace(query)
	if r.cache != nil {
		if res, ok := r.cache.Get(key); ok {
			return res
		}
	}

	res := r.resolve(ctx, query)
	if r.cache != nil && res.Name != "" {
		r.cache.Set(key, res)
	}
	return res
}

func (r *Resolver) resolve(ctx context.Context, query string) models.ResolvedSymbol {
	q := strings.TrimSpace(query)
	upper := strings.ToUpper(q)

	if tickerPattern.MatchString(q) {
		return models.ResolvedSymbol{Symbol: upper, Name: r.LookupName(ctx, upper)}
	}

	matches, err := r.md.Search(ctx, q)
	if err != nil {
		r.logger.Debug("symbol search failed", "query", q, "err", err)
	}
	best, ok := pickMatch(matches)
	if !ok {
		return models.ResolvedSymbol{Symbol: upper, Name: r.LookupName(ctx, upper)}
	}

	symbol := strings.ToUpper(strings.TrimSpace(best.Symbol))
	if symbol == "" {
		symbol = upper
	}
	name := firstNonEmpty(best.LongName, best.ShortName)
	if name == "" {
		name = r.LookupName(ctx, symbol)
	}
	return models.ResolvedSymbol{Symbol: symbol, Name: name}
}

// LookupName returns the display name for symbol, trying the quote info
// endpoint first and the chart metadata second. It returns "" when neither
// has one.
func (r *Resolver) LookupName(ctx context.Context, symbol string) string {
	name, err := r.md.QuoteName(ctx, symbol)
	if err == nil && strings.TrimSpace(name) != "" {
		return strings.TrimSpace(name)
	}
	if err != nil {
		r.logger.Debug("quote name lookup failed", "symbol", symbol, "err", err)
	}

	name, err = r.md.FastInfoName(ctx, symbol)
	if err != nil {
		r.logger.Debug("fast info name lookup failed", "symbol", symbol, "err", err)
		return ""
	}
	return strings.TrimSpace(name)
}

// pickMatch returns the first equity, else the first match.
func pickMatch(matches []models.SymbolMatch) (models.SymbolMatch, bool) {
	if len(matches) == 0 {
		return models.SymbolMatch{}, false
	}
	for _, m := range matches {
		if strings.EqualFold(m.QuoteType, "EQUITY") {
			return m, true
		}
	}
	return matches[0], true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
