package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvGeminiAPIKey          = "LATINTA_GEMINI_API_KEY"
	EnvGeminiAPIKeyFallback  = "GEMINI_API_KEY"
	EnvGeminiModel           = "LATINTA_GEMINI_MODEL"
	EnvGeminiMaxOutputTokens = "LATINTA_GEMINI_MAX_OUTPUT_TOKENS"
	EnvGeminiTimeout         = "LATINTA_GEMINI_TIMEOUT"
)

// GeminiConfig configures the text improvement proxy. Without an API key the
// proxy runs in simulated mode.
type GeminiConfig struct {
	APIKey          string `toml:"api_key"`
	Model           string `toml:"model"`
	MaxOutputTokens int32  `toml:"max_output_tokens"`
	Timeout         string `toml:"timeout"`
}

// Live reports whether an API key is configured.
func (c *GeminiConfig) Live() bool {
	return c.APIKey != ""
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *GeminiConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *GeminiConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *GeminiConfig) Merge(overlay *GeminiConfig) {
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.MaxOutputTokens != 0 {
		c.MaxOutputTokens = overlay.MaxOutputTokens
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *GeminiConfig) loadDefaults() {
	if c.Model == "" {
		c.Model = "gemini-3-flash-preview"
	}
	if c.MaxOutputTokens == 0 {
		c.MaxOutputTokens = 1024
	}
	if c.Timeout == "" {
		c.Timeout = "60s"
	}
}

func (c *GeminiConfig) loadEnv() {
	if v := os.Getenv(EnvGeminiAPIKeyFallback); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvGeminiAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvGeminiModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvGeminiMaxOutputTokens); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			c.MaxOutputTokens = int32(n)
		}
	}
	if v := os.Getenv(EnvGeminiTimeout); v != "" {
		c.Timeout = v
	}
}

func (c *GeminiConfig) validate() error {
	if c.MaxOutputTokens < 1 {
		return fmt.Errorf("invalid max_output_tokens: %d", c.MaxOutputTokens)
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
