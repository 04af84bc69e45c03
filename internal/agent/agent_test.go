package agent

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/seenimoa/tickerpulse/internal/llm"
	"github.com/seenimoa/tickerpulse/pkg/models"
)

// ── fakes ──

type fakeProvider struct {
	content string
	finish  llm.FinishReason
	err     error
	got     []llm.Message
	opts    *llm.ChatOptions
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Chat(_ context.Context, msgs []llm.Message, opts *llm.ChatOptions) (*llm.Response, error) {
	f.got = msgs
	f.opts = opts
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Response{Content: f.content, Provider: "fake", FinishReason: f.finish}, nil
}

type fakeService struct {
	snap    *models.Snapshot
	err     error
	query   string
	limit   int
	useBody bool
	calls   int
}

func (f *fakeService) FetchSentiment(_ context.Context, q string, limit int, useBody bool) (*models.Snapshot, error) {
	f.calls++
	f.query, f.limit, f.useBody = q, limit, useBody
	return f.snap, f.err
}

// ── Extractor ──

func TestExtractWithLLM(t *testing.T) {
	p := &fakeProvider{content: "Sure! {\"company\":\"Apple\",\"items\":7} done"}
	e := NewExtractor(p, nil, nil)

	company, items := e.Extract(context.Background(), "latest on the iphone company")
	if company != "Apple" || items != 7 {
		t.Fatalf("Extract() = (%q, %d), want (Apple, 7)", company, items)
	}
	if len(p.got) != 2 || p.got[0].Role != llm.RoleSystem || !strings.Contains(p.got[1].Content, "iphone company") {
		t.Errorf("messages = %+v", p.got)
	}
	if p.opts == nil || !p.opts.JSON {
		t.Error("extractor should request JSON output")
	}
}

func TestExtractTruncatedResponse(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	p := &fakeProvider{content: `{"company":"NVDA","ite`, finish: llm.FinishLength}

	company, items := NewExtractor(p, nil, logger).Extract(context.Background(), "give me 8 headlines on NVDA")
	if company != "NVDA" || items != 8 {
		t.Errorf("Extract() = (%q, %d), want fallbacks (NVDA, 8)", company, items)
	}
	if !strings.Contains(logs.String(), "truncated") {
		t.Errorf("expected truncation warning, logs = %q", logs.String())
	}
}

func TestExtractFallbacks(t *testing.T) {
	tests := []struct {
		name        string
		llmContent  string
		llmErr      error
		prompt      string
		wantCompany string
		wantItems   int
	}{
		{"llm error", "", errors.New("down"), "show 5 headlines for NVDA", "NVDA", 5},
		{"garbage output", "I cannot help", nil, "RY.TO news please", "RY.TO", 0},
		{"null company", `{"company":null,"items":3}`, nil, "whats up with AAPL", "AAPL", 3},
		{"blank company", `{"company":"  ","items":null}`, nil, "tell me about nvidia 12", "tell me about nvidia 12", 12},
		{"fractional items", `{"company":"Tesla","items":2.5}`, nil, "tesla", "Tesla", 0},
		{"negative items", `{"company":"Tesla","items":-4}`, nil, "tesla 9", "Tesla", 9},
		{"zero in prompt", `{}`, nil, "apple 0", "apple 0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExtractor(&fakeProvider{content: tt.llmContent, err: tt.llmErr}, nil, nil)
			company, items := e.Extract(context.Background(), tt.prompt)
			if company != tt.wantCompany || items != tt.wantItems {
				t.Errorf("Extract(%q) = (%q, %d), want (%q, %d)", tt.prompt, company, items, tt.wantCompany, tt.wantItems)
			}
		})
	}
}

func TestExtractWithoutProvider(t *testing.T) {
	e := NewExtractor(nil, nil, nil)
	company, items := e.Extract(context.Background(), "  top 15 stories on SHOP.TO  ")
	if company != "SHOP.TO" || items != 15 {
		t.Errorf("Extract() = (%q, %d)", company, items)
	}

	company, items = e.Extract(context.Background(), "   ")
	if company != "" || items != 0 {
		t.Errorf("blank prompt: Extract() = (%q, %d)", company, items)
	}
}

func TestParseExtraction(t *testing.T) {
	tests := []struct {
		raw         string
		wantCompany string
		wantItems   int
	}{
		{`{"company":"NVDA","items":5}`, "NVDA", 5},
		{"```json\n{\"company\":\"MSFT\"}\n```", "MSFT", 0},
		{`{"company":42,"items":"5"}`, "", 0},
		{`no json here`, "", 0},
		{`} backwards {`, "", 0},
		{`{"company":"X",`, "", 0},
	}
	for _, tt := range tests {
		c, n := parseExtraction(tt.raw)
		if c != tt.wantCompany || n != tt.wantItems {
			t.Errorf("parseExtraction(%q) = (%q, %d), want (%q, %d)", tt.raw, c, n, tt.wantCompany, tt.wantItems)
		}
	}
}

// ── Stages ──

func nvdaSnapshot() *models.Snapshot {
	avg := 0.3
	return &models.Snapshot{
		ID:     "snap-1",
		Symbol: "NVDA",
		Name:   "NVIDIA Corporation",
		Rows: []models.ScoredRow{
			{Title: "Nvidia soars", Compound: 0.5, Label: models.LabelPositive},
			{Title: "Nvidia dips", Compound: -0.1, Label: models.LabelNegative},
		},
		Summary: models.Summary{Count: 2, AvgCompound: &avg, Pos: 1, Neg: 1},
	}
}

func TestParseInputDefaults(t *testing.T) {
	a := NewNewsAgent(nil, &fakeService{}, false, nil)

	st := a.ParseInput(context.Background(), NewsState{Prompt: "news for NVDA"})
	if st.Company != "NVDA" || st.Items != DefaultItems {
		t.Errorf("ParseInput() = %+v", st)
	}

	st = a.ParseInput(context.Background(), NewsState{Prompt: "news for NVDA", Items: 8})
	if st.Items != 8 {
		t.Errorf("existing Items should be kept, got %d", st.Items)
	}

	st = a.ParseInput(context.Background(), NewsState{Prompt: "3 on NVDA", Items: 8})
	if st.Items != 3 {
		t.Errorf("prompt count should win, got %d", st.Items)
	}
}

func TestSearchNewsNoCompany(t *testing.T) {
	svc := &fakeService{}
	a := NewNewsAgent(nil, svc, false, nil)

	st := a.SearchNews(context.Background(), NewsState{Prompt: "x"})
	if !errors.Is(st.Err, ErrNoCompanyProvided) {
		t.Fatalf("Err = %v, want ErrNoCompanyProvided", st.Err)
	}
	if svc.calls != 0 {
		t.Error("service should not be called without a company")
	}
}

func TestSearchNewsSuccess(t *testing.T) {
	svc := &fakeService{snap: nvdaSnapshot()}
	a := NewNewsAgent(nil, svc, true, nil)

	in := NewsState{Prompt: "p", Company: "nvidia", Items: 5}
	st := a.SearchNews(context.Background(), in)

	if st.Err != nil {
		t.Fatalf("Err = %v", st.Err)
	}
	if svc.query != "nvidia" || svc.limit != 5 || !svc.useBody {
		t.Errorf("service called with (%q, %d, %v)", svc.query, svc.limit, svc.useBody)
	}
	if st.Company != "NVIDIA Corporation" || st.Symbol != "NVDA" || st.Items != 2 || len(st.Rows) != 2 {
		t.Errorf("state = %+v", st)
	}
	if st.Snapshot == nil || st.Summary.Count != 2 {
		t.Errorf("snapshot/summary not attached: %+v", st)
	}
	if in.Company != "nvidia" || in.Rows != nil {
		t.Error("input state was modified")
	}
}

func TestSearchNewsServiceError(t *testing.T) {
	boom := errors.New("upstream down")
	a := NewNewsAgent(nil, &fakeService{err: boom}, false, nil)

	st := a.SearchNews(context.Background(), NewsState{Company: "NVDA", Items: 3})
	if !errors.Is(st.Err, boom) || st.Rows != nil {
		t.Errorf("state = %+v", st)
	}
}

func TestRun(t *testing.T) {
	svc := &fakeService{snap: nvdaSnapshot()}
	a := NewNewsAgent(NewExtractor(&fakeProvider{content: `{"company":"Nvidia","items":4}`}, nil, nil), svc, false, nil)

	st := a.Run(context.Background(), NewsState{Prompt: "four headlines on nvidia"})
	if st.Err != nil || svc.query != "Nvidia" || svc.limit != 4 {
		t.Errorf("Run() = %+v, service (%q, %d)", st, svc.query, svc.limit)
	}
}

// ── Adapters ──

func TestStateAdapters(t *testing.T) {
	parent := AgentState{Prompt: "NVDA news", RouteTaken: []string{"classify"}}

	child := IntoNewsState(parent)
	if child.Prompt != "NVDA news" {
		t.Errorf("IntoNewsState prompt = %q", child.Prompt)
	}

	child.Symbol = "NVDA"
	out := OutOfNewsState(parent, child)
	if out.NewsResult == nil || out.NewsResult.Symbol != "NVDA" {
		t.Errorf("NewsResult = %+v", out.NewsResult)
	}
	if len(out.RouteTaken) != 2 || out.RouteTaken[1] != "news_agent_done" {
		t.Errorf("RouteTaken = %v", out.RouteTaken)
	}
	if len(parent.RouteTaken) != 1 || parent.NewsResult != nil {
		t.Error("parent state was modified")
	}
}

func TestRunPrompt(t *testing.T) {
	a := NewNewsAgent(nil, &fakeService{snap: nvdaSnapshot()}, false, nil)
	out := a.RunPrompt(context.Background(), "2 on NVDA")
	if out.Prompt != "2 on NVDA" || out.NewsResult == nil || out.NewsResult.Symbol != "NVDA" {
		t.Errorf("RunPrompt() = %+v", out)
	}
	if len(out.RouteTaken) != 1 {
		t.Errorf("RouteTaken = %v", out.RouteTaken)
	}
}
