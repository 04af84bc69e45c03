package news

import (
	"context"
	"log/slog"

	"github.com/seenimoa/tickerpulse/internal/infra"
	"github.com/seenimoa/tickerpulse/pkg/models"
)

// Cascade tries fetchers in priority order and returns the first
// non-empty result.
type Cascade struct {
	fetchers []Fetcher
	metrics  *Metrics
	logger   *slog.Logger
}

// CascadeOption configures a Cascade.
type CascadeOption func(*Cascade)

// WithMetrics records per-source attempts and hits.
func WithMetrics(m *Metrics) CascadeOption {
	return func(c *Cascade) { c.metrics = m }
}

// WithLogger sets the cascade logger.
func WithLogger(l *slog.Logger) CascadeOption {
	return func(c *Cascade) { c.logger = l }
}

// NewCascade creates a cascade over fetchers, tried in the given order.
func NewCascade(fetchers []Fetcher, opts ...CascadeOption) *Cascade {
	c := &Cascade{fetchers: fetchers}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = infra.OrDefault(c.logger)
	return c
}

// Sources returns the fetcher names in cascade order.
func (c *Cascade) Sources() []string {
	names := make([]string, len(c.fetchers))
	for i, f := range c.fetchers {
		names[i] = f.Name()
	}
	return names
}

// FetchAll returns the items of the first fetcher that produced any,
// together with that fetcher's name. Later fetchers are not called once
// one succeeds. If every fetcher comes back empty, or ctx is done, it
// returns nil and "".
func (c *Cascade) FetchAll(ctx context.Context, symbol, name string) ([]models.NewsItem, string) {
	for _, f := range c.fetchers {
		if ctx.Err() != nil {
			return nil, ""
		}
		src := f.Name()
		c.metrics.attempt(src)

		items := f.Fetch(ctx, symbol, name)
		if len(items) == 0 {
			c.logger.Debug("source returned no items", "source", src, "symbol", symbol)
			continue
		}

		c.metrics.hit(src, len(items))
		c.logger.Debug("source hit", "source", src, "symbol", symbol, "items", len(items))
		return items, src
	}
	c.metrics.miss()
	return nil, ""
}
