// File path: internal/genai/config.go
package genai

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dkoushik/prepwell/internal/recommend"
)

// Config is the tunable surface of the external question generator.
type Config struct {
	Enabled     bool
	APIKey      string
	Model       string
	MaxTokens   int64
	Temperature float64
	Timeout     time.Duration

	CacheEnabled bool
	CacheTTL     time.Duration
}

// DefaultConfig returns generator settings used when the environment provides
// no overrides.
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		Model:        "gpt-4o-mini",
		MaxTokens:    2000,
		Temperature:  0.7,
		Timeout:      30 * time.Second,
		CacheEnabled: true,
		CacheTTL:     recommend.DefaultCacheTTL,
	}
}

// LoadConfig reads generator settings from the environment on top of the
// defaults.
func LoadConfig() Config {
	cfg := DefaultConfig()
	cfg.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if v := strings.TrimSpace(os.Getenv("OPENAI_CHAT_MODEL")); v != "" {
		cfg.Model = v
	}
	if v := strings.TrimSpace(os.Getenv("PREPWELL_AI_ENABLED")); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = parsed
		}
	}
	if v := strings.TrimSpace(os.Getenv("PREPWELL_AI_MAX_TOKENS")); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			cfg.MaxTokens = parsed
		}
	}
	if v := strings.TrimSpace(os.Getenv("PREPWELL_AI_TEMPERATURE")); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			cfg.Temperature = parsed
		}
	}
	if v := strings.TrimSpace(os.Getenv("PREPWELL_AI_TIMEOUT")); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			cfg.Timeout = parsed
		}
	}
	if v := strings.TrimSpace(os.Getenv("PREPWELL_AI_CACHE")); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			cfg.CacheEnabled = parsed
		}
	}
	if v := strings.TrimSpace(os.Getenv("PREPWELL_AI_CACHE_TTL")); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			cfg.CacheTTL = parsed
		}
	}
	return cfg
}

// Active reports whether generation can run at all: the feature flag must be
// on and a credential configured.
func (c Config) Active() bool {
	return c.Enabled && c.APIKey != ""
}
