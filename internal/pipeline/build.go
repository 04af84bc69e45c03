package pipeline

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/seenimoa/tickerpulse/internal/article"
	"github.com/seenimoa/tickerpulse/internal/config"
	"github.com/seenimoa/tickerpulse/internal/infra"
	"github.com/seenimoa/tickerpulse/internal/news"
	"github.com/seenimoa/tickerpulse/internal/resolver"
	"github.com/seenimoa/tickerpulse/internal/sentiment"
	"github.com/seenimoa/tickerpulse/internal/yfinance"
)

// NewFromConfig wires the production service: Yahoo Finance for symbol
// lookup and provider news, the configured RSS cascade, and article
// extraction when enabled. Cascade metrics are registered with reg when
// it is non-nil.
func NewFromConfig(cfg *config.Config, reg prometheus.Registerer, logger *slog.Logger) (*Service, error) {
	logger = infra.OrDefault(logger)
	httpClient := infra.NewClient(time.Duration(cfg.News.TimeoutSec)*time.Second, cfg.News.UserAgent)

	yf := yfinance.New(httpClient, cfg.News.YahooAPIURL)

	fetchers, err := news.Build(cfg.News.Sources, httpClient, news.Endpoints{
		GoogleURL:    cfg.News.GoogleURL,
		BingURL:      cfg.News.BingURL,
		YahooRSSURLs: cfg.News.YahooRSSURLs,
	}, yf, logger)
	if err != nil {
		return nil, fmt.Errorf("build news sources: %w", err)
	}

	var metrics *news.Metrics
	if reg != nil {
		metrics = news.NewMetrics(reg)
	}
	cascade := news.NewCascade(fetchers, news.WithMetrics(metrics), news.WithLogger(logger))

	scorerOpts := []sentiment.ScorerOption{
		sentiment.WithMaxChars(cfg.Sentiment.BodyMaxChars),
		sentiment.WithScorerLogger(logger),
	}
	if cfg.Sentiment.BodyEnabled {
		scorerOpts = append(scorerOpts, sentiment.WithBodyFetcher(article.NewFetcher(httpClient, logger)))
	}
	scorer := sentiment.NewScorer(sentiment.NewAnalyzer(nil), scorerOpts...)

	res := resolver.New(yf, logger, resolver.WithCache(time.Duration(cfg.News.ResolveCacheSec)*time.Second))
	return New(res, cascade, scorer, WithLogger(logger)), nil
}
