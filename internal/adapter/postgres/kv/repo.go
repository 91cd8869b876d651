// Package kv implements the key-value store behind the personal collection
// using PostgreSQL.
package kv

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table  = "kv_entries"
	entity = "kv"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo stores opaque values by key in the kv_entries table.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new kv repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the value stored under key.
// Returns domain.ErrNotFound if the key has never been written.
func (r *Repo) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psql.
		Select("value").
		From(table).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("kv: build select: %w", err)
	}

	var value []byte
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		return nil, mapError(err, entity, key)
	}
	return value, nil
}

// Set upserts the value under key.
func (r *Repo) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}

	query, args, err := psql.
		Insert(table).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("now()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("kv: build upsert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return mapError(err, entity, key)
	}
	return nil
}

// Ping checks database connectivity.
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
