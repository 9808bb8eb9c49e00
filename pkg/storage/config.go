package storage

import (
	"fmt"
	"os"
)

// Backend names reported by System.Source.
const (
	BackendLocal = "local"
	BackendAzure = "azure-blob"
)

// Config selects and parameterizes the storage backend. Azure Blob Storage is
// used when a connection string or account URL is set; otherwise blobs live as
// files under Dir.
type Config struct {
	Dir              string `toml:"dir"`
	ContainerName    string `toml:"container_name"`
	ConnectionString string `toml:"connection_string"`
	AccountURL       string `toml:"account_url"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Dir              string
	ContainerName    string
	ConnectionString string
	AccountURL       string
}

// Backend returns the backend name implied by the config.
func (c *Config) Backend() string {
	if c.ConnectionString != "" || c.AccountURL != "" {
		return BackendAzure
	}
	return BackendLocal
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Dir != "" {
		c.Dir = overlay.Dir
	}
	if overlay.ContainerName != "" {
		c.ContainerName = overlay.ContainerName
	}
	if overlay.ConnectionString != "" {
		c.ConnectionString = overlay.ConnectionString
	}
	if overlay.AccountURL != "" {
		c.AccountURL = overlay.AccountURL
	}
}

func (c *Config) loadDefaults() {
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.ContainerName == "" {
		c.ContainerName = "latinta"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Dir != "" {
		if v := os.Getenv(env.Dir); v != "" {
			c.Dir = v
		}
	}
	if env.ContainerName != "" {
		if v := os.Getenv(env.ContainerName); v != "" {
			c.ContainerName = v
		}
	}
	if env.ConnectionString != "" {
		if v := os.Getenv(env.ConnectionString); v != "" {
			c.ConnectionString = v
		}
	}
	if env.AccountURL != "" {
		if v := os.Getenv(env.AccountURL); v != "" {
			c.AccountURL = v
		}
	}
}

func (c *Config) validate() error {
	if c.ConnectionString != "" && c.AccountURL != "" {
		return fmt.Errorf("connection_string and account_url are mutually exclusive")
	}
	if c.Backend() == BackendAzure && c.ContainerName == "" {
		return fmt.Errorf("container_name required")
	}
	return nil
}
