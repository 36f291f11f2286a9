package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/monthly_ledger/internal/apperrors"
	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/monthly_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/monthly_ledger/internal/models"
	"github.com/SscSPs/monthly_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWorkplaceRepository struct {
	BaseRepository
}

// newPgxWorkplaceRepository creates a new repository for workplace data.
func newPgxWorkplaceRepository(pool *pgxpool.Pool) portsrepo.WorkplaceRepositoryFacade {
	return &PgxWorkplaceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxWorkplaceRepository implements portsrepo.WorkplaceRepositoryFacade
var _ portsrepo.WorkplaceRepositoryFacade = (*PgxWorkplaceRepository)(nil)

const workplaceSelectQuery = `
SELECT
	w.workplace_id, w.name, w.description, w.is_active,
	w.created_at, w.created_by, w.last_updated_at, w.last_updated_by
FROM workplaces w
`

const upsertMemberQuery = `
	INSERT INTO workplace_members (user_id, workplace_id, role, joined_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (user_id, workplace_id) DO UPDATE SET role = EXCLUDED.role;
`

// getWorkplaces private func to get workplaces from the select query filters
func (r *PgxWorkplaceRepository) getWorkplaces(ctx context.Context, filterQuery string, args ...any) ([]domain.Workplace, error) {
	rows, err := r.Pool.Query(ctx, workplaceSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query workplaces", err)
	}
	defer rows.Close()

	modelWorkplaces, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Workplace])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect workplace rows", err)
	}

	workplaces := make([]domain.Workplace, len(modelWorkplaces))
	for i, m := range modelWorkplaces {
		workplaces[i] = mapping.ToDomainWorkplace(m)
	}
	return workplaces, nil
}

// SaveWorkplace inserts the workplace and its creator's membership in one transaction.
func (r *PgxWorkplaceRepository) SaveWorkplace(ctx context.Context, workplace domain.Workplace, creator domain.WorkplaceMember) error {
	m := mapping.ToModelWorkplace(workplace)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO workplaces (
			workplace_id, name, description, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, query,
		m.WorkplaceID, m.Name, m.Description, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "failed to save workplace "+workplace.WorkplaceID)
	}

	_, err = tx.Exec(ctx, upsertMemberQuery, creator.UserID, creator.WorkplaceID, string(creator.Role), creator.JoinedAt)
	if err != nil {
		return mapWriteError(err, "failed to add creator to workplace "+workplace.WorkplaceID)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxWorkplaceRepository) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	workplaces, err := r.getWorkplaces(ctx, `WHERE w.workplace_id = $1`, workplaceID)
	if err != nil {
		return nil, err
	}
	if len(workplaces) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &workplaces[0], nil
}

// ListWorkplacesByUserID lists the active workplaces the user is a member of.
func (r *PgxWorkplaceRepository) ListWorkplacesByUserID(ctx context.Context, userID string) ([]domain.Workplace, error) {
	query := `JOIN workplace_members wm ON w.workplace_id = wm.workplace_id
		WHERE wm.user_id = $1 AND w.is_active = true
		ORDER BY w.name;`
	return r.getWorkplaces(ctx, query, userID)
}

// AddMember adds the user or updates their role if they already belong to the workplace.
func (r *PgxWorkplaceRepository) AddMember(ctx context.Context, membership domain.WorkplaceMember) error {
	_, err := r.Pool.Exec(ctx, upsertMemberQuery,
		membership.UserID,
		membership.WorkplaceID,
		string(membership.Role),
		membership.JoinedAt,
	)
	if err != nil {
		return mapWriteError(err, "failed to add user "+membership.UserID+" to workplace "+membership.WorkplaceID)
	}
	return nil
}

func (r *PgxWorkplaceRepository) FindMember(ctx context.Context, userID, workplaceID string) (*domain.WorkplaceMember, error) {
	query := `
		SELECT user_id, workplace_id, role, joined_at
		FROM workplace_members
		WHERE user_id = $1 AND workplace_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, workplaceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query membership of "+userID, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.WorkplaceMember])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find membership of "+userID+" in "+workplaceID, err)
	}
	member := mapping.ToDomainWorkplaceMember(m)
	return &member, nil
}
