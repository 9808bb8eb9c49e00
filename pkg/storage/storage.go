// Package storage provides keyed blob storage with a local directory
// implementation and an Azure Blob Storage implementation.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/latinta/dashboard/pkg/lifecycle"
)

// System manages blob storage operations and lifecycle coordination.
type System interface {
	// Start registers startup hooks and readiness with the lifecycle coordinator.
	Start(lc *lifecycle.Coordinator) error
	// Ready reports whether the directory or container has been prepared.
	Ready() bool
	// Upload replaces the blob at key with the contents of reader.
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) error
	// Download returns a stream for the blob at the given key. The caller must close the reader.
	// Returns ErrNotFound if the blob does not exist.
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	// Source names the backend ("local" or "azure-blob").
	Source() string
}

// New creates the storage system selected by cfg.
// No connection is made until Start is called.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	if cfg.Backend() == BackendAzure {
		return newAzure(cfg, logger)
	}
	return newLocal(cfg, logger), nil
}

func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if strings.Contains(key, "..") || strings.HasPrefix(key, "/") {
		return ErrInvalidKey
	}
	return nil
}
