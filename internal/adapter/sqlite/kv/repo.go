// Package kv implements the key-value store behind the personal collection
// using SQLite.
package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

const table = "kv_entries"

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// Repo stores opaque values by key in the kv_entries table.
type Repo struct {
	db *sql.DB
}

// New creates a new kv repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Get returns the value stored under key.
// Returns domain.ErrNotFound if the key has never been written.
func (r *Repo) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := builder.
		Select("value").
		From(table).
		Where(sq.Eq{"key": key}).
		RunWith(r.db).
		QueryRowContext(ctx).
		Scan(&value)
	if err != nil {
		return nil, mapError(err, key)
	}
	return value, nil
}

// Set upserts the value under key.
func (r *Repo) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}

	_, err := builder.
		Insert(table).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		RunWith(r.db).
		ExecContext(ctx)
	if err != nil {
		return mapError(err, key)
	}
	return nil
}

// Ping checks database connectivity.
func (r *Repo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// mapError converts database/sql and sqlite3 errors to domain errors.
// Context errors pass through.
func mapError(err error, key string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("kv %s: %w", key, domain.ErrNotFound)
	}

	var sqErr sqlite3.Error
	if errors.As(err, &sqErr) {
		switch sqErr.ExtendedCode {
		case sqlite3.ErrConstraintCheck:
			return fmt.Errorf("kv %s: %w: %w", key, domain.ErrValidation, err)
		case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
			return fmt.Errorf("kv %s: %w: %w", key, domain.ErrAlreadyExists, err)
		}
	}

	return fmt.Errorf("kv %s: %w", key, err)
}
