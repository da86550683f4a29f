// Package postgres stores categories and products in PostgreSQL tables
// created by the migrations in internal/database.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/catalogapp/catalog/internal/query"
	"github.com/catalogapp/catalog/internal/repository"
)

// DB is the query surface the repositories need. *pgxkit.DB and
// *pgxpool.Pool both satisfy it.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const uniqueViolation = "23505"

// Ping runs a trivial query.
func Ping(ctx context.Context, db DB) error {
	var one int
	return db.QueryRow(ctx, `SELECT 1`).Scan(&one)
}

func translateError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrDuplicate
	}
	return err
}

// listWhere builds the WHERE clause shared by list and count queries. The
// returned args are numbered from $1.
func listWhere(search string) (string, []any) {
	if search == "" {
		return `WHERE NOT is_deleted`, nil
	}
	return `WHERE NOT is_deleted AND (name ILIKE $1 ESCAPE '\' OR description ILIKE $1 ESCAPE '\')`,
		[]any{query.LikePattern(search)}
}
