package config

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/latinta/dashboard/pkg/middleware"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "LATINTA_CORS_ENABLED",
	Origins:          "LATINTA_CORS_ORIGINS",
	AllowedMethods:   "LATINTA_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "LATINTA_CORS_ALLOWED_HEADERS",
	AllowCredentials: "LATINTA_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "LATINTA_CORS_MAX_AGE",
}

const defaultMaxUploadSize = 10 * 1024 * 1024

// APIConfig holds API routing, upload limits, and CORS settings.
type APIConfig struct {
	BasePath      string                `toml:"base_path"`
	MaxUploadSize string                `toml:"max_upload_size"`
	CORS          middleware.CORSConfig `toml:"cors"`
}

// MaxUploadSizeBytes returns MaxUploadSize in bytes, falling back to 10MiB.
// Sizes follow humanize: "MB" is decimal, "MiB" is binary.
func (c *APIConfig) MaxUploadSizeBytes() int64 {
	size, err := humanize.ParseBytes(c.MaxUploadSize)
	if err != nil || size == 0 {
		return defaultMaxUploadSize
	}
	return int64(size)
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS config.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}

	c.CORS.Merge(&overlay.CORS)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "10MiB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("LATINTA_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("LATINTA_API_MAX_UPLOAD_SIZE"); v != "" {
		c.MaxUploadSize = v
	}
}

func (c *APIConfig) validate() error {
	if _, err := humanize.ParseBytes(c.MaxUploadSize); err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	return nil
}
