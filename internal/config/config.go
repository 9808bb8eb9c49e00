package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/latinta/dashboard/pkg/database"
	"github.com/latinta/dashboard/pkg/storage"
	"github.com/pelletier/go-toml/v2"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvLatintaEnv             = "LATINTA_ENV"
	EnvLatintaShutdownTimeout = "LATINTA_SHUTDOWN_TIMEOUT"
	EnvLatintaVersion         = "LATINTA_VERSION"
)

var databaseEnv = &database.Env{
	Host:            "LATINTA_DB_HOST",
	Port:            "LATINTA_DB_PORT",
	Name:            "LATINTA_DB_NAME",
	User:            "LATINTA_DB_USER",
	Password:        "LATINTA_DB_PASSWORD",
	SSLMode:         "LATINTA_DB_SSL_MODE",
	MaxOpenConns:    "LATINTA_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "LATINTA_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "LATINTA_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "LATINTA_DB_CONN_TIMEOUT",
}

var storageEnv = &storage.Env{
	Dir:              "LATINTA_STORAGE_DIR",
	ContainerName:    "LATINTA_STORAGE_CONTAINER_NAME",
	ConnectionString: "LATINTA_STORAGE_CONNECTION_STRING",
	AccountURL:       "LATINTA_STORAGE_ACCOUNT_URL",
}

// Config is the root configuration for the dashboard service.
type Config struct {
	Server          ServerConfig    `toml:"server"`
	Database        database.Config `toml:"database"`
	Storage         storage.Config  `toml:"storage"`
	API             APIConfig       `toml:"api"`
	Prices          PricesConfig    `toml:"prices"`
	Gemini          GeminiConfig    `toml:"gemini"`
	Chat            ChatConfig      `toml:"chat"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Version         string          `toml:"version"`
}

// Env returns the LATINTA_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvLatintaEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	return LoadFrom(BaseConfigFile)
}

// LoadFrom is Load with an explicit base config path. The overlay is looked
// up next to the base file.
func LoadFrom(base string) (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(base); err == nil {
		loaded, err := load(base)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(base); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Storage.Merge(&overlay.Storage)
	c.API.Merge(&overlay.API)
	c.Prices.Merge(&overlay.Prices)
	c.Gemini.Merge(&overlay.Gemini)
	c.Chat.Merge(&overlay.Chat)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Prices.Finalize(); err != nil {
		return fmt.Errorf("prices: %w", err)
	}
	if err := c.Gemini.Finalize(); err != nil {
		return fmt.Errorf("gemini: %w", err)
	}
	if err := c.Chat.Finalize(); err != nil {
		return fmt.Errorf("chat: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvLatintaShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvLatintaVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath(base string) string {
	env := os.Getenv(EnvLatintaEnv)
	if env == "" {
		return ""
	}
	path := filepath.Join(filepath.Dir(base), fmt.Sprintf(OverlayConfigPattern, env))
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
