package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/latinta/dashboard/pkg/repository"
)

// errConflict reports a unique or serialization failure from a concurrent writer.
var errConflict = errors.New("document write conflict")

type postgres struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgres creates a store backed by the documents table.
func NewPostgres(db *sql.DB, logger *slog.Logger) System {
	return &postgres{
		db:     db,
		logger: logger.With("system", "docstore", "backend", SourcePostgres),
	}
}

type stored struct {
	payload   []byte
	updatedAt time.Time
}

func scanStored(s repository.Scanner) (stored, error) {
	var d stored
	err := s.Scan(&d.payload, &d.updatedAt)
	return d, err
}

func scanTime(s repository.Scanner) (time.Time, error) {
	var t time.Time
	err := s.Scan(&t)
	return t, err
}

func (p *postgres) Source() string {
	return SourcePostgres
}

func (p *postgres) Get(ctx context.Context, collection, id string, dest any) (time.Time, error) {
	q := `
		SELECT payload, updated_at
		FROM documents
		WHERE collection = $1 AND id = $2`

	d, err := repository.One(ctx, p.db, scanStored, q, collection, id)
	if err != nil {
		return time.Time{}, repository.MapError(err, ErrNotFound, errConflict)
	}

	if err := json.Unmarshal(d.payload, dest); err != nil {
		return time.Time{}, fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}
	return d.updatedAt.UTC(), nil
}

func (p *postgres) Put(ctx context.Context, collection, id string, value any) (time.Time, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("encode %s/%s: %w", collection, id, err)
	}

	q := `
		INSERT INTO documents(collection, id, payload, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (collection, id)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
		RETURNING updated_at`

	updatedAt, err := repository.InTx(ctx, p.db, func(tx *sql.Tx) (time.Time, error) {
		return repository.One(ctx, tx, scanTime, q, collection, id, payload)
	})
	if err != nil {
		return time.Time{}, repository.MapError(err, ErrNotFound, errConflict)
	}

	p.logger.Info("document stored", "collection", collection, "id", id, "bytes", len(payload))
	return updatedAt.UTC(), nil
}

func (p *postgres) Delete(ctx context.Context, collection, id string) error {
	q := `
		DELETE FROM documents
		WHERE collection = $1 AND id = $2`

	if err := repository.ExecOne(ctx, p.db, q, collection, id); err != nil {
		return repository.MapError(err, ErrNotFound, errConflict)
	}

	p.logger.Info("document deleted", "collection", collection, "id", id)
	return nil
}
