package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/SscSPs/monthly_ledger/internal/apperrors"
	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/monthly_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// queryArgs collects positional arguments while a query is being assembled.
type queryArgs []any

// add appends v and returns its placeholder.
func (a *queryArgs) add(v any) string {
	*a = append(*a, v)
	return "$" + strconv.Itoa(len(*a))
}

// ownerFilter restricts a query to one owner. Workplace data is matched by
// workplace alone; user data must also have no workplace.
func ownerFilter(owner domain.OwnerContext, alias string, args *queryArgs) string {
	col := func(name string) string {
		if alias == "" {
			return name
		}
		return alias + "." + name
	}
	if owner.IsWorkplace() {
		return col("workplace_id") + " = " + args.add(owner.WorkplaceID)
	}
	return col("workplace_id") + " IS NULL AND " + col("user_id") + " = " + args.add(owner.UserID)
}

// mapWriteError translates constraint violations into application errors.
func mapWriteError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return apperrors.NewAppError(409, msg, apperrors.ErrDuplicate)
		case "23503": // foreign_key_violation
			return apperrors.NewAppError(404, msg, apperrors.ErrNotFound)
		case "23514", "22003": // check_violation, numeric_value_out_of_range
			return apperrors.NewAppError(400, msg, apperrors.ErrValidation)
		}
	}
	return apperrors.NewAppError(500, msg, err)
}
