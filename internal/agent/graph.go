// Package agent turns a natural-language request into a sentiment
// snapshot. It runs two stages in order: ParseInput extracts the company
// and headline count, SearchNews runs the sentiment pipeline.
package agent

import (
	"context"
	"log/slog"

	"github.com/seenimoa/tickerpulse/internal/agent/prompts"
	"github.com/seenimoa/tickerpulse/internal/infra"
	"github.com/seenimoa/tickerpulse/pkg/models"
)

const routeNewsDone = prompts.RouteNewsDone

// SentimentService is the pipeline entry point used by SearchNews.
// *pipeline.Service satisfies it.
type SentimentService interface {
	FetchSentiment(ctx context.Context, query string, limit int, useBody bool) (*models.Snapshot, error)
}

// NewsAgent runs the parse and search stages.
type NewsAgent struct {
	extractor *Extractor
	service   SentimentService
	useBody   bool
	logger    *slog.Logger
}

// NewNewsAgent creates a NewsAgent. useBody is passed through to the
// pipeline on every search.
func NewNewsAgent(extractor *Extractor, service SentimentService, useBody bool, logger *slog.Logger) *NewsAgent {
	if extractor == nil {
		extractor = NewExtractor(nil, nil, logger)
	}
	return &NewsAgent{extractor: extractor, service: service, useBody: useBody, logger: infra.OrDefault(logger)}
}

// ParseInput fills Company and Items from Prompt. A state that already
// carries Items keeps it when the prompt names no count.
func (a *NewsAgent) ParseInput(ctx context.Context, st NewsState) NewsState {
	company, items := a.extractor.Extract(ctx, st.Prompt)

	if items <= 0 {
		items = st.Items
	}
	if items <= 0 {
		items = DefaultItems
	}
	st.Company = company
	st.Items = items

	a.logger.Debug("parsed request", "stage", prompts.StageParseInput, "company", company, "items", items)
	return st
}

// SearchNews runs the pipeline for st.Company. On success Company becomes
// the resolved display name when one exists and Items the number of rows.
func (a *NewsAgent) SearchNews(ctx context.Context, st NewsState) NewsState {
	if st.Company == "" {
		st.Err = ErrNoCompanyProvided
		return st
	}

	limit := st.Items
	if limit <= 0 {
		limit = DefaultItems
	}

	snap, err := a.service.FetchSentiment(ctx, st.Company, limit, a.useBody)
	if err != nil {
		a.logger.Warn("news search failed", "stage", prompts.StageSearchNews, "company", st.Company, "err", err)
		st.Err = err
		return st
	}

	if snap.Name != "" {
		st.Company = snap.Name
	}
	st.Items = len(snap.Rows)
	st.Symbol = snap.Symbol
	st.Name = snap.Name
	st.Rows = snap.Rows
	st.Summary = snap.Summary
	st.Snapshot = snap
	st.Err = nil
	return st
}

// Run executes ParseInput then SearchNews.
func (a *NewsAgent) Run(ctx context.Context, st NewsState) NewsState {
	return a.SearchNews(ctx, a.ParseInput(ctx, st))
}

// RunPrompt is a convenience wrapper that runs the agent for a single
// prompt inside a fresh parent state.
func (a *NewsAgent) RunPrompt(ctx context.Context, prompt string) AgentState {
	parent := AgentState{Prompt: prompt}
	return OutOfNewsState(parent, a.Run(ctx, IntoNewsState(parent)))
}
