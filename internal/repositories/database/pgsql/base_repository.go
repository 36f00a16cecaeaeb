package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/Theakashprasad/practice-tool-client/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// queryRow is a helper method to execute a query that returns a single row
func (r *BaseRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return r.Pool.QueryRow(ctx, sql, args...)
}

// exec is a helper method to execute a query that doesn't return rows
func (r *BaseRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return r.Pool.Exec(ctx, sql, args...)
}

// wrapErr maps pgx errors onto apperrors.
func wrapErr(err error, message string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperrors.NewConflictError(message)
	}
	return apperrors.NewAppError(http.StatusInternalServerError, message, err)
}
