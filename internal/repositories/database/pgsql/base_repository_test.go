package pgsql

import (
	"errors"
	"testing"

	"github.com/SscSPs/monthly_ledger/internal/apperrors"
	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestOwnerFilter(t *testing.T) {
	var args queryArgs
	args.add("item-1")

	clause := ownerFilter(domain.UserOwner("user-1"), "li", &args)

	assert.Equal(t, "li.workplace_id IS NULL AND li.user_id = $2", clause)
	assert.Equal(t, []any{"item-1", "user-1"}, []any(args))

	var wpArgs queryArgs
	clause = ownerFilter(domain.WorkplaceOwner("wp-1", "user-1"), "", &wpArgs)

	assert.Equal(t, "workplace_id = $1", clause)
	assert.Equal(t, []any{"wp-1"}, []any(wpArgs))
}

func TestMapWriteError(t *testing.T) {
	err := mapWriteError(&pgconn.PgError{Code: "23505"}, "dup")
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	err = mapWriteError(&pgconn.PgError{Code: "23503"}, "fk")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = mapWriteError(&pgconn.PgError{Code: "23514"}, "check")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	err = mapWriteError(&pgconn.PgError{Code: "22003"}, "overflow")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	err = mapWriteError(errors.New("boom"), "other")
	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.Code)
}
