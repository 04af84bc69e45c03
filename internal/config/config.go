// Package config handles configuration loading for tickerpulse.
// It supports YAML config files, a .env file and environment variable
// overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "TICKERPULSE"

// Config represents the complete application configuration.
type Config struct {
	News      NewsConfig      `mapstructure:"news" yaml:"news" json:"news"`
	Sentiment SentimentConfig `mapstructure:"sentiment" yaml:"sentiment" json:"sentiment"`
	LLM       LLMConfig       `mapstructure:"llm" yaml:"llm" json:"llm"`
	API       APIConfig       `mapstructure:"api" yaml:"api" json:"api"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging" json:"logging"`

	file string // config file that was read, "" for defaults only
}

// Source returns the path of the config file that was loaded, or "" when
// only defaults and environment variables were used.
func (c *Config) Source() string { return c.file }

// NewsConfig holds news source settings.
type NewsConfig struct {
	TimeoutSec      int      `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
	UserAgent       string   `mapstructure:"user_agent" yaml:"user_agent" json:"user_agent"`
	GoogleURL       string   `mapstructure:"google_url" yaml:"google_url" json:"google_url"`
	BingURL         string   `mapstructure:"bing_url" yaml:"bing_url" json:"bing_url"`
	YahooRSSURLs    []string `mapstructure:"yahoo_rss_urls" yaml:"yahoo_rss_urls" json:"yahoo_rss_urls"` // "{symbol}" is substituted
	YahooAPIURL     string   `mapstructure:"yahoo_api_url" yaml:"yahoo_api_url" json:"yahoo_api_url"`
	Sources         []string `mapstructure:"sources" yaml:"sources" json:"sources"`                               // cascade order
	ResolveCacheSec int      `mapstructure:"resolve_cache_sec" yaml:"resolve_cache_sec" json:"resolve_cache_sec"` // 0 disables
}

// SentimentConfig holds scoring and request limits.
type SentimentConfig struct {
	DefaultLimit     int  `mapstructure:"default_limit" yaml:"default_limit" json:"default_limit"`
	MaxLimit         int  `mapstructure:"max_limit" yaml:"max_limit" json:"max_limit"`
	BodyMaxChars     int  `mapstructure:"body_max_chars" yaml:"body_max_chars" json:"body_max_chars"`
	BodyEnabled      bool `mapstructure:"body_enabled" yaml:"body_enabled" json:"body_enabled"`
	BatchConcurrency int  `mapstructure:"batch_concurrency" yaml:"batch_concurrency" json:"batch_concurrency"`
}

// LLMConfig holds LLM provider configuration for prompt parsing.
type LLMConfig struct {
	Primary     string  `mapstructure:"primary" yaml:"primary" json:"primary"` // "openai", "ollama" or "none"
	OpenAIKey   string  `mapstructure:"openai_key" yaml:"openai_key" json:"-"`
	BaseURL     string  `mapstructure:"base_url" yaml:"base_url" json:"base_url"`
	OllamaURL   string  `mapstructure:"ollama_url" yaml:"ollama_url" json:"ollama_url"`
	Model       string  `mapstructure:"model" yaml:"model" json:"model"`
	Temperature float64 `mapstructure:"temperature" yaml:"temperature" json:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens" yaml:"max_tokens" json:"max_tokens"`
	TimeoutSec  int     `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Host        string   `mapstructure:"host" yaml:"host" json:"host"`
	Port        int      `mapstructure:"port" yaml:"port" json:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins" json:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`    // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format" json:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.tickerpulse/config.yaml (home directory)
//  3. /etc/tickerpulse/config.yaml (system)
//
// A .env file in the working directory is loaded first; variables already
// set in the environment win over it. Environment variables override config
// file values. Format: TICKERPULSE_<SECTION>_<KEY>, e.g. TICKERPULSE_LLM_OPENAI_KEY.
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".tickerpulse"))
	v.AddConfigPath("/etc/tickerpulse")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.file = v.ConfigFileUsed()
	overrideFromEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadDotEnv loads path into the process environment. A missing file is
// not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// News defaults
	v.SetDefault("news.timeout_sec", 10)
	v.SetDefault("news.user_agent", "")
	v.SetDefault("news.google_url", "https://news.google.com/rss/search")
	v.SetDefault("news.bing_url", "https://www.bing.com/news/search")
	v.SetDefault("news.yahoo_rss_urls", []string{
		"https://feeds.finance.yahoo.com/rss/2.0/headline?s={symbol}&lang=en-US",
		"https://feeds.finance.yahoo.com/rss/2.0/headline?s={symbol}&region=US&lang=en-US",
	})
	v.SetDefault("news.yahoo_api_url", "https://query1.finance.yahoo.com")
	v.SetDefault("news.sources", []string{"google", "bing", "yahoo-rss", "yahoo-news"})
	v.SetDefault("news.resolve_cache_sec", 0)

	// Sentiment defaults
	v.SetDefault("sentiment.default_limit", 20)
	v.SetDefault("sentiment.max_limit", 100)
	v.SetDefault("sentiment.body_max_chars", 2000)
	v.SetDefault("sentiment.body_enabled", true)
	v.SetDefault("sentiment.batch_concurrency", 4)

	// LLM defaults
	v.SetDefault("llm.primary", "openai")
	v.SetDefault("llm.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.ollama_url", "http://localhost:11434")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.temperature", 0.0)
	v.SetDefault("llm.max_tokens", 64)
	v.SetDefault("llm.timeout_sec", 20)

	// API defaults
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"*"})

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// overrideFromEnv explicitly reads sensitive keys from environment variables.
// OPENAI_API_KEY is honoured when the prefixed variable is unset.
func overrideFromEnv(cfg *Config) {
	if key := os.Getenv(EnvPrefix + "_LLM_OPENAI_KEY"); key != "" {
		cfg.LLM.OpenAIKey = key
	} else if key := os.Getenv("OPENAI_API_KEY"); key != "" && cfg.LLM.OpenAIKey == "" {
		cfg.LLM.OpenAIKey = key
	}
}

// Validate checks limits that the rest of the application relies on.
func (c *Config) Validate() error {
	s := c.Sentiment
	if s.MaxLimit < 1 {
		return fmt.Errorf("config: sentiment.max_limit must be >= 1, got %d", s.MaxLimit)
	}
	if s.DefaultLimit < 1 || s.DefaultLimit > s.MaxLimit {
		return fmt.Errorf("config: sentiment.default_limit must be in 1..%d, got %d", s.MaxLimit, s.DefaultLimit)
	}
	if c.News.TimeoutSec < 1 {
		return fmt.Errorf("config: news.timeout_sec must be >= 1, got %d", c.News.TimeoutSec)
	}
	if c.API.Port < 0 || c.API.Port > 65535 {
		return fmt.Errorf("config: api.port out of range: %d", c.API.Port)
	}
	return nil
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
