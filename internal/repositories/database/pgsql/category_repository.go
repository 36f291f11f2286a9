package pgsql

import (
	"context"

	"github.com/SscSPs/monthly_ledger/internal/apperrors"
	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/monthly_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/monthly_ledger/internal/models"
	"github.com/SscSPs/monthly_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categorySelectQuery = `
SELECT
	c.category_id, c.user_id, c.workplace_id, c.name, c.kind, c.color,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
FROM categories c
`

func (r *PgxCategoryRepository) getCategories(ctx context.Context, filterQuery string, args ...any) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx, categorySelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories", err)
	}
	defer rows.Close()

	modelCategories, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect category rows", err)
	}

	categories := make([]domain.Category, len(modelCategories))
	for i, m := range modelCategories {
		categories[i] = mapping.ToDomainCategory(m)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, owner domain.OwnerContext, categoryID string) (*domain.Category, error) {
	var args queryArgs
	filter := "WHERE c.category_id = " + args.add(categoryID) + " AND " + ownerFilter(owner, "c", &args)
	categories, err := r.getCategories(ctx, filter, args...)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &categories[0], nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, owner domain.OwnerContext, kind *domain.LineItemKind) ([]domain.Category, error) {
	var args queryArgs
	filter := "WHERE " + ownerFilter(owner, "c", &args)
	if kind != nil {
		filter += " AND c.kind = " + args.add(string(*kind))
	}
	filter += " ORDER BY c.kind, c.name"
	return r.getCategories(ctx, filter, args...)
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
		INSERT INTO categories (
			category_id, user_id, workplace_id, name, kind, color,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID, m.UserID, m.WorkplaceID, m.Name, m.Kind, m.Color,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "failed to save category "+category.Name)
	}
	return nil
}

// DeleteCategory removes the category and unsets it on every line item that used it.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, owner domain.OwnerContext, categoryID string) error {
	var args queryArgs
	query := `
		WITH deleted AS (
			DELETE FROM categories c
			WHERE c.category_id = ` + args.add(categoryID) + ` AND ` + ownerFilter(owner, "c", &args) + `
			RETURNING c.category_id
		), cleared AS (
			UPDATE line_items li SET category_id = NULL
			FROM deleted d
			WHERE li.category_id = d.category_id
		)
		SELECT count(*) FROM deleted;
	`

	var count int
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return apperrors.NewAppError(500, "failed to delete category "+categoryID, err)
	}
	if count == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
