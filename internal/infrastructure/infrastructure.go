// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, storage, documents) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/latinta/dashboard/internal/config"
	"github.com/latinta/dashboard/pkg/database"
	"github.com/latinta/dashboard/pkg/docstore"
	"github.com/latinta/dashboard/pkg/lifecycle"
	"github.com/latinta/dashboard/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
// Database is nil when no database is configured; Docstore then keeps
// documents in process memory.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
	Docstore  docstore.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	return NewWithLogger(cfg, slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

// NewWithLogger is New with a caller-supplied logger.
func NewWithLogger(cfg *config.Config, logger *slog.Logger) (*Infrastructure, error) {
	lc := lifecycle.New()

	var (
		db   database.System
		docs docstore.System
	)
	if cfg.Database.Enabled() {
		var err error
		db, err = database.New(&cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
		docs = docstore.NewPostgres(db.Connection(), logger)
	} else {
		docs = docstore.NewMemory(logger)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	logger.Info(
		"infrastructure initialized",
		"storage", store.Source(),
		"docstore", docs.Source(),
	)

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Storage:   store,
		Docstore:  docs,
	}, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if i.Database != nil {
		if err := i.Database.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("database start failed: %w", err)
		}
	}
	if err := i.Storage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	return nil
}
