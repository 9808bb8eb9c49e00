package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

const (
	EnvChatWebhookURL = "LATINTA_CHAT_WEBHOOK_URL"
	EnvChatTimeout    = "LATINTA_CHAT_TIMEOUT"
)

// ChatConfig points the chat relay at the automation workflow's webhook.
// An empty WebhookURL disables the relay.
type ChatConfig struct {
	WebhookURL string `toml:"webhook_url"`
	Timeout    string `toml:"timeout"`
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *ChatConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ChatConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *ChatConfig) Merge(overlay *ChatConfig) {
	if overlay.WebhookURL != "" {
		c.WebhookURL = overlay.WebhookURL
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *ChatConfig) loadDefaults() {
	if c.Timeout == "" {
		c.Timeout = "30s"
	}
}

func (c *ChatConfig) loadEnv() {
	if v := os.Getenv(EnvChatWebhookURL); v != "" {
		c.WebhookURL = v
	}
	if v := os.Getenv(EnvChatTimeout); v != "" {
		c.Timeout = v
	}
}

func (c *ChatConfig) validate() error {
	if c.WebhookURL != "" {
		u, err := url.Parse(c.WebhookURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid webhook_url: %q", c.WebhookURL)
		}
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
