package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/seenimoa/tickerpulse/internal/config"
)

func TestMessageConstructors(t *testing.T) {
	if m := SystemMessage("sys"); m.Role != RoleSystem || m.Content != "sys" {
		t.Errorf("SystemMessage = %+v", m)
	}
	if m := UserMessage("hi"); m.Role != RoleUser || m.Content != "hi" {
		t.Errorf("UserMessage = %+v", m)
	}
}

func TestResponseString(t *testing.T) {
	r := &Response{Content: strings.Repeat("x", 150), Provider: "openai", Model: "gpt-4o-mini", Latency: time.Second}
	s := r.String()
	if !strings.Contains(s, "openai/gpt-4o-mini") || !strings.Contains(s, "...") {
		t.Errorf("String() = %q", s)
	}
}

func TestOpenAIProviderNew(t *testing.T) {
	if _, err := NewOpenAIProvider(""); !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("expected ErrNoAPIKey, got: %v", err)
	}

	p, err := NewOpenAIProvider("sk-test", WithOpenAIModel("gpt-4"), WithOpenAIBaseURL("http://custom/"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Name() != "openai" || p.model != "gpt-4" || p.baseURL != "http://custom" {
		t.Fatalf("unexpected config: %+v", p)
	}
}

func TestOpenAIChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			t.Error("missing auth header")
		}

		var req openAIChatRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Model != "gpt-4o-mini" {
			t.Errorf("unexpected model: %s", req.Model)
		}
		if len(req.Messages) != 2 {
			t.Errorf("expected 2 messages, got %d", len(req.Messages))
		}
		if req.Temperature == nil || *req.Temperature != 0 {
			t.Error("temperature 0 should be sent explicitly")
		}
		if req.ResponseFormat == nil || req.ResponseFormat.Type != "json_object" {
			t.Errorf("response_format = %+v", req.ResponseFormat)
		}

		json.NewEncoder(w).Encode(openAIChatResponse{
			ID: "chatcmpl-123",
			Choices: []openAIChoice{{
				Message:      Message{Role: RoleAssistant, Content: `{"company":"NVDA","items":5}`},
				FinishReason: "stop",
			}},
			Usage: Usage{PromptTokens: 20, CompletionTokens: 10, TotalTokens: 30},
			Model: "gpt-4o-mini",
		})
	}))
	defer server.Close()

	p, _ := NewOpenAIProvider("sk-test", WithOpenAIBaseURL(server.URL))
	resp, err := p.Chat(context.Background(),
		[]Message{SystemMessage("Return JSON."), UserMessage("5 headlines on nvidia")},
		&ChatOptions{Temperature: 0, MaxTokens: 64, JSON: true})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Content != `{"company":"NVDA","items":5}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if resp.Provider != "openai" || resp.Usage.TotalTokens != 30 || resp.FinishReason != FinishStop {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestOpenAIErrorHandling(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		want       error
	}{
		{"unauthorized", 401, `{"error":{"message":"Invalid key","code":"invalid_api_key"}}`, ErrNoAPIKey},
		{"rate_limit", 429, `{"error":{"message":"Rate limit exceeded"}}`, ErrRateLimit},
		{"context_length", 400, `{"error":{"message":"Too many tokens","code":"context_length_exceeded"}}`, ErrContextLength},
		{"model_not_found", 404, `{"error":{"message":"Model not found","code":"model_not_found"}}`, ErrInvalidModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			p, _ := NewOpenAIProvider("sk-test", WithOpenAIBaseURL(server.URL))
			_, err := p.Chat(context.Background(), []Message{UserMessage("test")}, nil)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got: %v", tt.want, err)
			}
		})
	}
}

func TestOpenAIProviderDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	p, _ := NewOpenAIProvider("sk-test", WithOpenAIBaseURL(url))
	if _, err := p.Chat(context.Background(), []Message{UserMessage("x")}, nil); !errors.Is(err, ErrProviderDown) {
		t.Fatalf("expected ErrProviderDown, got %v", err)
	}
}

func TestOllamaChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var req ollamaChatRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Stream {
			t.Error("stream should be false")
		}
		if req.Format != "json" {
			t.Errorf("format = %q", req.Format)
		}
		if req.Model != "llama3" {
			t.Errorf("model = %q", req.Model)
		}
		json.NewEncoder(w).Encode(ollamaChatResponse{
			Model:           "llama3",
			Message:         Message{Role: RoleAssistant, Content: `{"company":"Apple","items":10}`},
			Done:            true,
			PromptEvalCount: 12,
			EvalCount:       8,
		})
	}))
	defer server.Close()

	p := NewOllamaProvider(server.URL, WithOllamaModel("llama3"))
	resp, err := p.Chat(context.Background(), []Message{UserMessage("apple news")}, &ChatOptions{JSON: true})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Content != `{"company":"Apple","items":10}` || resp.Usage.TotalTokens != 20 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if p.Name() != "ollama" {
		t.Errorf("Name() = %q", p.Name())
	}
}

func TestOllamaHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	if _, err := NewOllamaProvider(server.URL).Chat(context.Background(), []Message{UserMessage("x")}, nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewFromConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LLMConfig
		want    string
		wantErr error
	}{
		{"openai", config.LLMConfig{Primary: "openai", OpenAIKey: "sk-test"}, ProviderOpenAI, nil},
		{"openai without key", config.LLMConfig{Primary: "openai"}, "", ErrNoAPIKey},
		{"ollama", config.LLMConfig{Primary: "Ollama"}, ProviderOllama, nil},
		{"disabled", config.LLMConfig{Primary: "none"}, "", ErrDisabled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewFromConfig(tt.cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if p.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.want)
			}
		})
	}

	if _, err := NewFromConfig(config.LLMConfig{Primary: "gemini"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}
