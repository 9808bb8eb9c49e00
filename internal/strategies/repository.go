package strategies

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/latinta/dashboard/pkg/docstore"
)

const collection = "strategies"

type repo struct {
	docs   docstore.System
	logger *slog.Logger
}

// New creates a strategy store over the given document store.
func New(docs docstore.System, logger *slog.Logger) System {
	return &repo{
		docs:   docs,
		logger: logger.With("system", "strategies"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Source() string {
	return r.docs.Source()
}

func (r *repo) Get(ctx context.Context) (*Snapshot, error) {
	var list []Strategy
	at, err := r.docs.Get(ctx, collection, docstore.MainID, &list)
	if errors.Is(err, docstore.ErrNotFound) {
		return &Snapshot{Strategies: Seed()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load strategies: %w", err)
	}
	return &Snapshot{Strategies: list, UpdatedAt: &at}, nil
}

func (r *repo) Set(ctx context.Context, list []Strategy) (time.Time, error) {
	if err := Validate(list); err != nil {
		return time.Time{}, err
	}

	at, err := r.docs.Put(ctx, collection, docstore.MainID, list)
	if err != nil {
		return time.Time{}, fmt.Errorf("save strategies: %w", err)
	}

	r.logger.Info("strategies saved", "source", r.docs.Source(), "count", len(list), "active", len(Active(list)))
	return at, nil
}

func (r *repo) Reset(ctx context.Context) error {
	err := r.docs.Delete(ctx, collection, docstore.MainID)
	if err != nil && !errors.Is(err, docstore.ErrNotFound) {
		return fmt.Errorf("reset strategies: %w", err)
	}

	r.logger.Info("strategies reset to seed", "source", r.docs.Source())
	return nil
}

// Validate rejects empty or repeated ids and unknown colors.
func Validate(list []Strategy) error {
	seen := make(map[string]struct{}, len(list))
	for i, s := range list {
		id := strings.TrimSpace(s.ID)
		if id == "" {
			return fmt.Errorf("%w: la estrategia %d no tiene id", ErrInvalidStrategies, i+1)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: id repetido %q", ErrInvalidStrategies, id)
		}
		seen[id] = struct{}{}
		if s.Color != "" && !s.Color.Valid() {
			return fmt.Errorf("%w: color desconocido %q", ErrInvalidStrategies, s.Color)
		}
	}
	return nil
}
