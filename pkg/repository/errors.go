package repository

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes that map onto a write conflict.
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
)

// SQLState returns the PostgreSQL error code carried by err, or "".
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// MapError turns sql.ErrNoRows into notFound and unique or serialization
// failures into conflict. Anything else is returned as is.
func MapError(err error, notFound, conflict error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	switch SQLState(err) {
	case codeUniqueViolation, codeSerializationFailure:
		return conflict
	}
	return err
}
