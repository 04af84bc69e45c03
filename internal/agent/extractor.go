package agent

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/seenimoa/tickerpulse/internal/agent/prompts"
	"github.com/seenimoa/tickerpulse/internal/infra"
	"github.com/seenimoa/tickerpulse/internal/llm"
)

// DefaultItems is used when the prompt names no headline count.
const DefaultItems = 20

var (
	tickerToken = regexp.MustCompile(`\b[A-Z]{1,5}(?:\.[A-Z]{1,3})?\b`)
	countToken  = regexp.MustCompile(`\b(\d{1,3})\b`)
)

// Extractor pulls a company and a headline count out of free text.
type Extractor struct {
	provider llm.Provider
	opts     *llm.ChatOptions
	logger   *slog.Logger
}

// NewExtractor creates an Extractor. provider may be nil, in which case
// only the pattern fallbacks run. opts may be nil.
func NewExtractor(provider llm.Provider, opts *llm.ChatOptions, logger *slog.Logger) *Extractor {
	if opts == nil {
		opts = &llm.ChatOptions{MaxTokens: 64}
	}
	o := *opts
	o.JSON = true
	return &Extractor{provider: provider, opts: &o, logger: infra.OrDefault(logger)}
}

// Extract returns the company named in prompt and the requested number of
// items. items is 0 when no positive count was found; company is "" only
// for a blank prompt.
func (e *Extractor) Extract(ctx context.Context, prompt string) (company string, items int) {
	if e.provider != nil {
		company, items = e.ask(ctx, prompt)
	}

	if company == "" {
		if m := tickerToken.FindString(prompt); m != "" {
			company = m
		} else {
			company = strings.TrimSpace(prompt)
		}
	}
	if items <= 0 {
		items = firstCount(prompt)
	}
	return company, items
}

func (e *Extractor) ask(ctx context.Context, prompt string) (string, int) {
	resp, err := e.provider.Chat(ctx, []llm.Message{
		llm.SystemMessage(prompts.ExtractorSystemPrompt),
		llm.UserMessage(prompts.ExtractorUserPrompt(prompt)),
	}, e.opts)
	if err != nil {
		e.logger.Debug("llm extraction failed", "provider", e.provider.Name(), "err", err)
		return "", 0
	}
	if resp.FinishReason == llm.FinishLength {
		e.logger.Warn("llm extraction truncated, raise llm.max_tokens", "response", resp.String())
	} else {
		e.logger.Debug("llm extraction", "response", resp.String())
	}
	return parseExtraction(resp.Content)
}

// parseExtraction reads the first '{' through the last '}' of raw as JSON.
// Missing, null or mistyped fields yield zero values.
func parseExtraction(raw string) (string, int) {
	start, end := strings.Index(raw, "{"), strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return "", 0
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &obj); err != nil {
		return "", 0
	}

	var company string
	if c, ok := obj["company"].(string); ok {
		company = strings.TrimSpace(c)
	}

	var items int
	if n, ok := obj["items"].(float64); ok && n > 0 && n == math.Trunc(n) && n <= math.MaxInt32 {
		items = int(n)
	}
	return company, items
}

func firstCount(prompt string) int {
	m := countToken.FindStringSubmatch(prompt)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
