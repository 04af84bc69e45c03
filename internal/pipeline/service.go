// Package pipeline runs a sentiment query end to end: resolve the symbol,
// fetch headlines through the source cascade, dedupe, score and summarize.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seenimoa/tickerpulse/internal/infra"
	"github.com/seenimoa/tickerpulse/internal/news"
	"github.com/seenimoa/tickerpulse/internal/sentiment"
	"github.com/seenimoa/tickerpulse/pkg/models"
)

// Limit bounds.
const (
	MinLimit     = 1
	MaxLimit     = 100
	DefaultLimit = 20
)

// Resolver maps a query to a symbol. *resolver.Resolver satisfies it.
type Resolver interface {
	Resolve(ctx context.Context, query string) models.ResolvedSymbol
}

// NewsSource returns headlines for a symbol and the name of the source
// that produced them. *news.Cascade satisfies it.
type NewsSource interface {
	FetchAll(ctx context.Context, symbol, name string) ([]models.NewsItem, string)
}

// Service answers sentiment queries. It holds no per-request state and is
// safe for concurrent use.
type Service struct {
	resolver Resolver
	news     NewsSource
	scorer   *sentiment.Scorer
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithClock overrides the snapshot timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a Service. A nil scorer scores headlines only with the
// built-in lexicon.
func New(r Resolver, src NewsSource, scorer *sentiment.Scorer, opts ...Option) *Service {
	if scorer == nil {
		scorer = sentiment.NewScorer(nil)
	}
	s := &Service{resolver: r, news: src, scorer: scorer, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = infra.OrDefault(s.logger)
	return s
}

// BodyAvailable reports whether article text can be used for scoring.
func (s *Service) BodyAvailable() bool { return s.scorer.HasBody() }

// Sources returns the news source names in the order they are tried, or
// nil when the configured source does not report them.
func (s *Service) Sources() []string {
	if l, ok := s.news.(interface{ Sources() []string }); ok {
		return l.Sources()
	}
	return nil
}

// ClampLimit forces limit into [MinLimit, MaxLimit].
func ClampLimit(limit int) int {
	switch {
	case limit < MinLimit:
		return MinLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

// ValidateLimit rejects limits outside [MinLimit, MaxLimit].
func ValidateLimit(limit int) error {
	if limit < MinLimit || limit > MaxLimit {
		return fmt.Errorf("%w: got %d", ErrLimitOutOfRange, limit)
	}
	return nil
}

// FetchSentiment resolves query, gathers up to limit recent headlines and
// scores them. limit is clamped to [1, 100]. useBody is ignored when no
// article fetcher is configured.
//
// An empty query returns ErrEmptyQuery before any lookup is made. A query
// that resolves to no symbol returns *ResolutionError; failures after
// resolution, including cancellation, return *FetchError. Finding no news
// is not an error: the snapshot simply has no rows.
func (s *Service) FetchSentiment(ctx context.Context, query string, limit int, useBody bool) (*models.Snapshot, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, ErrEmptyQuery
	}
	limit = ClampLimit(limit)
	useBody = useBody && s.scorer.HasBody()

	resolved, err := s.resolve(ctx, q)
	if err != nil {
		s.logger.Warn("symbol resolution failed", "query", q, "err", err)
		return nil, err
	}

	rows, source, err := s.collect(ctx, resolved, limit, useBody)
	if err != nil {
		s.logger.Warn("sentiment fetch failed", "symbol", resolved.Symbol, "err", err)
		return nil, err
	}

	snap := &models.Snapshot{
		ID:             uuid.NewString(),
		Symbol:         resolved.Symbol,
		Name:           resolved.Name,
		RequestedLimit: limit,
		UsedBody:       useBody,
		Source:         source,
		Summary:        sentiment.Summarize(rows),
		Rows:           rows,
		GeneratedAt:    s.now(),
	}
	s.logger.Info("sentiment snapshot",
		"id", snap.ID, "symbol", snap.Symbol, "source", source, "items", len(rows))
	return snap, nil
}

func (s *Service) resolve(ctx context.Context, q string) (res models.ResolvedSymbol, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ResolutionError{Query: q, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	res = s.resolver.Resolve(ctx, q)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, &ResolutionError{Query: q, Err: ctxErr}
	}
	if strings.TrimSpace(res.Symbol) == "" {
		return res, &ResolutionError{Query: q, Err: errors.New("no symbol")}
	}
	return res, nil
}

func (s *Service) collect(ctx context.Context, sym models.ResolvedSymbol, limit int, useBody bool) (rows []models.ScoredRow, source string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &FetchError{Symbol: sym.Symbol, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	items, source := s.news.FetchAll(ctx, sym.Symbol, sym.Name)
	items = news.Truncate(news.DedupeAndSort(items), limit)

	rows = s.scorer.Score(ctx, items, useBody)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, "", &FetchError{Symbol: sym.Symbol, Err: ctxErr}
	}
	if rows == nil {
		rows = []models.ScoredRow{}
	}
	return rows, source, nil
}
