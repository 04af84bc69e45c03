package llm

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/seenimoa/tickerpulse/internal/config"
)

// NewFromConfig builds the configured provider. It returns ErrDisabled
// for primary "none" and ErrNoAPIKey when OpenAI is selected without a
// key; callers treat both as "no LLM available".
func NewFromConfig(cfg config.LLMConfig) (Provider, error) {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	client := &http.Client{Timeout: timeout}

	switch name := strings.ToLower(strings.TrimSpace(cfg.Primary)); name {
	case "", ProviderOpenAI:
		p, err := NewOpenAIProvider(cfg.OpenAIKey,
			WithOpenAIBaseURL(cfg.BaseURL),
			WithOpenAIModel(cfg.Model),
			WithOpenAIHTTPClient(client),
		)
		if err != nil {
			return nil, err
		}
		return p, nil
	case ProviderOllama:
		return NewOllamaProvider(cfg.OllamaURL,
			WithOllamaModel(cfg.Model),
			WithOllamaHTTPClient(client),
		), nil
	case ProviderNone:
		return nil, ErrDisabled
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Primary)
	}
}
