package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/latinta/dashboard/pkg/lifecycle"
)

type local struct {
	dir    string
	logger *slog.Logger
	ready  atomic.Bool
}

func newLocal(cfg *Config, logger *slog.Logger) System {
	return &local{
		dir:    cfg.Dir,
		logger: logger.With("system", "storage", "backend", BackendLocal),
	}
}

func (l *local) Source() string {
	return BackendLocal
}

func (l *local) Ready() bool {
	return l.ready.Load()
}

func (l *local) Start(lc *lifecycle.Coordinator) error {
	lc.Track("storage", l)

	lc.OnStartup(func() {
		if err := os.MkdirAll(l.dir, 0o755); err != nil {
			l.logger.Error("storage directory initialization failed", "dir", l.dir, "error", err)
			return
		}
		l.ready.Store(true)
		l.logger.Info("storage directory ready", "dir", l.dir)
	})

	return nil
}

// Upload writes to a temporary sibling file and renames it over the target,
// so readers never observe a partially written blob.
func (l *local) Upload(ctx context.Context, key string, reader io.Reader, _ string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	target := l.path(key)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create blob dir %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("upload blob %s: %w", key, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, reader); err != nil {
		tmp.Close()
		return fmt.Errorf("upload blob %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("upload blob %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("upload blob %s: %w", key, err)
	}

	return nil
}

func (l *local) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("download blob %s: %w", key, err)
	}

	return f, nil
}

func (l *local) path(key string) string {
	return filepath.Join(l.dir, filepath.FromSlash(key))
}
