package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/tickerpulse/internal/agent"
	"github.com/seenimoa/tickerpulse/internal/pipeline"
	"github.com/seenimoa/tickerpulse/internal/report"
	"github.com/seenimoa/tickerpulse/pkg/models"
)

// MaxBatchQueries caps POST /api/v1/sentiment/batch.
const MaxBatchQueries = 10

const defaultBatchConcurrency = 4

// ============================================================
// Request / Response types
// ============================================================

// BatchRequest is the body for POST /api/v1/sentiment/batch.
type BatchRequest struct {
	Queries []string `json:"queries"`
	Limit   *int     `json:"limit,omitempty"`
	UseBody bool     `json:"use_body,omitempty"`
}

// BatchResult is one entry of the batch response, in request order.
type BatchResult struct {
	Query    string           `json:"query"`
	Snapshot *models.Snapshot `json:"snapshot,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// AskRequest is the body for POST /api/v1/ask.
type AskRequest struct {
	Prompt string `json:"prompt"`
}

// AskResponse is returned by POST /api/v1/ask.
type AskResponse struct {
	Company  string           `json:"company"`
	Items    int              `json:"items"`
	Snapshot *models.Snapshot `json:"snapshot"`
}

// SnapshotEvent is the WebSocket payload of a completed snapshot.
type SnapshotEvent struct {
	ID          string   `json:"id"`
	Symbol      string   `json:"symbol"`
	Count       int      `json:"count"`
	AvgCompound *float64 `json:"avg_compound"`
}

// ============================================================
// Handlers
// ============================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":     "ok",
			"version":    Version,
			"ws_clients": s.wsHub.ClientCount(),
			"time":       time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// handleSentiment serves GET /api/v1/sentiment?query=&limit=&use_body=.
func (s *Server) handleSentiment(w http.ResponseWriter, r *http.Request) {
	query, limit, useBody, err := s.sentimentParams(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, err := s.svc.FetchSentiment(r.Context(), query, limit, useBody)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.broadcastSnapshot(snap)
	s.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    snap,
	})
}

// handleSentimentReport serves GET /api/v1/sentiment/report. It takes the
// same parameters as /sentiment plus format=text|html.
func (s *Server) handleSentimentReport(w http.ResponseWriter, r *http.Request) {
	format, err := report.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	query, limit, useBody, err := s.sentimentParams(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, err := s.svc.FetchSentiment(r.Context(), query, limit, useBody)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.broadcastSnapshot(snap)

	out, err := report.Generate(snap, report.DefaultConfig(), format)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if format == report.FormatHTML {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(out)) //nolint:errcheck
}

// handleSentimentBatch runs up to MaxBatchQueries queries concurrently.
// A failed query is reported in its own entry and does not fail the batch.
func (s *Server) handleSentimentBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Queries) == 0 {
		s.writeError(w, http.StatusBadRequest, "queries is required")
		return
	}
	if len(req.Queries) > MaxBatchQueries {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("at most %d queries per batch", MaxBatchQueries))
		return
	}

	limit := s.defaultLimit()
	if req.Limit != nil {
		limit = *req.Limit
	}
	if err := pipeline.ValidateLimit(limit); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	concurrency := s.cfg.Sentiment.BatchConcurrency
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	results := make([]BatchResult, len(req.Queries))
	g, gctx := errgroup.WithContext(r.Context())
	g.SetLimit(concurrency)
	for i, q := range req.Queries {
		i, q := i, q
		g.Go(func() error {
			results[i] = s.runBatchQuery(gctx, q, limit, req.UseBody)
			return nil // per-query failures are reported inline
		})
	}
	_ = g.Wait()

	s.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    results,
	})
}

func (s *Server) runBatchQuery(ctx context.Context, q string, limit int, useBody bool) BatchResult {
	res := BatchResult{Query: q}
	snap, err := s.svc.FetchSentiment(ctx, q, limit, useBody)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	s.broadcastSnapshot(snap)
	res.Snapshot = snap
	return res
}

// handleAsk runs the news agent on a natural-language prompt.
func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if s.agent == nil {
		s.writeError(w, http.StatusServiceUnavailable, "news agent not configured")
		return
	}

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		s.writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	st := s.agent.Run(r.Context(), agent.NewsState{Prompt: req.Prompt})
	if st.Err != nil {
		if errors.Is(st.Err, agent.ErrNoCompanyProvided) {
			s.writeError(w, http.StatusBadRequest, st.Err.Error())
			return
		}
		s.writeServiceError(w, st.Err)
		return
	}

	s.broadcastSnapshot(st.Snapshot)
	s.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: AskResponse{
			Company:  st.Company,
			Items:    st.Items,
			Snapshot: st.Snapshot,
		},
	})
}

// ============================================================
// Helpers
// ============================================================

func (s *Server) defaultLimit() int {
	if n := s.cfg.Sentiment.DefaultLimit; n > 0 {
		return n
	}
	return pipeline.DefaultLimit
}

// sentimentParams reads query, limit and use_body. Out-of-range or
// malformed values are rejected rather than clamped.
func (s *Server) sentimentParams(r *http.Request) (query string, limit int, useBody bool, err error) {
	v := r.URL.Query()

	query = strings.TrimSpace(v.Get("query"))
	if query == "" {
		return "", 0, false, pipeline.ErrEmptyQuery
	}

	limit = s.defaultLimit()
	if raw := v.Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			return "", 0, false, errors.New("limit must be an integer")
		}
	}
	if err := pipeline.ValidateLimit(limit); err != nil {
		return "", 0, false, err
	}

	if raw := v.Get("use_body"); raw != "" {
		if useBody, err = strconv.ParseBool(raw); err != nil {
			return "", 0, false, errors.New("use_body must be a boolean")
		}
	}
	return query, limit, useBody, nil
}

// writeServiceError maps pipeline errors to HTTP statuses.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case pipeline.IsValidation(err):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case pipeline.IsUpstream(err):
		s.writeError(w, http.StatusBadGateway, err.Error())
	default:
		s.logger.Error("sentiment request failed", "err", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) broadcastSnapshot(snap *models.Snapshot) {
	if snap == nil {
		return
	}
	s.wsHub.Broadcast(WSMessage{
		Type: "sentiment_complete",
		Data: SnapshotEvent{
			ID:          snap.ID,
			Symbol:      snap.Symbol,
			Count:       snap.Summary.Count,
			AvgCompound: snap.Summary.AvgCompound,
		},
	})
}
