package sentiment

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/seenimoa/tickerpulse/internal/infra"
	"github.com/seenimoa/tickerpulse/pkg/models"
)

// PublishedLayout is the display format of ScoredRow.Published.
const PublishedLayout = "2006-01-02 15:04"

// DefaultBodyMaxChars caps the scored text when article bodies are used.
const DefaultBodyMaxChars = 2000

// BodyFetcher returns the readable text of a linked article.
// *article.Fetcher satisfies it.
type BodyFetcher interface {
	Body(ctx context.Context, link string) (string, error)
}

// Scorer turns news items into scored rows.
type Scorer struct {
	analyzer *Analyzer
	body     BodyFetcher
	maxChars int
	loc      *time.Location
	logger   *slog.Logger
}

// ScorerOption configures a Scorer.
type ScorerOption func(*Scorer)

// WithBodyFetcher enables scoring on article text.
func WithBodyFetcher(b BodyFetcher) ScorerOption {
	return func(s *Scorer) { s.body = b }
}

// WithMaxChars sets the maximum number of characters scored per item when
// article text is used.
func WithMaxChars(n int) ScorerOption {
	return func(s *Scorer) {
		if n > 0 {
			s.maxChars = n
		}
	}
}

// WithLocation sets the time zone of ScoredRow.Published. Default is local.
func WithLocation(loc *time.Location) ScorerOption {
	return func(s *Scorer) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithScorerLogger sets the logger.
func WithScorerLogger(l *slog.Logger) ScorerOption {
	return func(s *Scorer) { s.logger = l }
}

// NewScorer creates a Scorer. A nil analyzer uses the built-in lexicon.
func NewScorer(a *Analyzer, opts ...ScorerOption) *Scorer {
	if a == nil {
		a = NewAnalyzer(nil)
	}
	s := &Scorer{analyzer: a, maxChars: DefaultBodyMaxChars, loc: time.Local}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = infra.OrDefault(s.logger)
	return s
}

// HasBody reports whether article text can be used.
func (s *Scorer) HasBody() bool { return s.body != nil }

// Score returns one row per item, in input order. With useBody, each item
// is scored on its article text when that can be fetched, and on its
// title otherwise.
func (s *Scorer) Score(ctx context.Context, items []models.NewsItem, useBody bool) []models.ScoredRow {
	useBody = useBody && s.HasBody()

	rows := make([]models.ScoredRow, 0, len(items))
	for _, it := range items {
		text := it.Title
		if useBody {
			text = s.bodyText(ctx, it)
		}

		comp := s.analyzer.Compound(text)
		rows = append(rows, models.ScoredRow{
			Published: time.Unix(it.PublishedAt, 0).In(s.loc).Format(PublishedLayout),
			Publisher: it.Publisher,
			Title:     it.Title,
			Link:      it.Link,
			Compound:  comp,
			Label:     Classify(comp),
		})
	}
	return rows
}

func (s *Scorer) bodyText(ctx context.Context, it models.NewsItem) string {
	body, err := s.body.Body(ctx, it.Link)
	if err != nil {
		s.logger.Debug("scoring headline only", "link", it.Link, "err", err)
		return it.Title
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return it.Title
	}
	return truncateRunes(body, s.maxChars)
}

func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
