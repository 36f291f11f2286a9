package pgsql

import (
	"context"
	"strings"
	"time"

	"github.com/SscSPs/monthly_ledger/internal/apperrors"
	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/monthly_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/monthly_ledger/internal/models"
	"github.com/SscSPs/monthly_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLineItemRepository struct {
	BaseRepository
}

// newPgxLineItemRepository creates a new repository for line item data.
func newPgxLineItemRepository(pool *pgxpool.Pool) portsrepo.LineItemRepositoryFacade {
	return &PgxLineItemRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxLineItemRepository implements portsrepo.LineItemRepositoryFacade
var _ portsrepo.LineItemRepositoryFacade = (*PgxLineItemRepository)(nil)

const lineItemColumns = `
	li.line_item_id, li.user_id, li.workplace_id, li.kind, li.name, li.amount, li.period,
	li.scheduled_day, li.due_date, li.completed, li.parent_id, li.is_group, li.valuation_mode,
	li.series_id, li.category_id, li.notes,
	li.created_at, li.created_by, li.last_updated_at, li.last_updated_by`

const insertLineItemQuery = `
	INSERT INTO line_items (
		line_item_id, user_id, workplace_id, kind, name, amount, period,
		scheduled_day, due_date, completed, parent_id, is_group, valuation_mode,
		series_id, category_id, notes,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);`

// getLineItems runs a select over line_items aliased as li with the given filter.
func (r *PgxLineItemRepository) getLineItems(ctx context.Context, filterQuery string, args ...any) ([]domain.LineItem, error) {
	query := "SELECT " + lineItemColumns + " FROM line_items li " + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query line items", err)
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LineItem])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect line item rows", err)
	}

	items, err := mapping.ToDomainLineItems(modelItems)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map line item rows", err)
	}
	return items, nil
}

func lineItemInsertArgs(item domain.LineItem) []any {
	m := mapping.ToModelLineItem(item)
	return []any{
		m.LineItemID, m.UserID, m.WorkplaceID, m.Kind, m.Name, m.Amount, m.Period,
		m.ScheduledDay, m.DueDate, m.Completed, m.ParentID, m.IsGroup, m.ValuationMode,
		m.SeriesID, m.CategoryID, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

func (r *PgxLineItemRepository) FindLineItemByID(ctx context.Context, owner domain.OwnerContext, itemID string) (*domain.LineItem, error) {
	var args queryArgs
	filter := "WHERE li.line_item_id = " + args.add(itemID) + " AND " + ownerFilter(owner, "li", &args)
	items, err := r.getLineItems(ctx, filter, args...)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &items[0], nil
}

func (r *PgxLineItemRepository) ListRootLineItems(ctx context.Context, owner domain.OwnerContext, period domain.Period) ([]domain.LineItem, error) {
	var args queryArgs
	filter := "WHERE li.parent_id IS NULL AND li.period = " + args.add(period.String()) +
		" AND " + ownerFilter(owner, "li", &args) +
		" ORDER BY li.created_at, li.line_item_id"
	return r.getLineItems(ctx, filter, args...)
}

func (r *PgxLineItemRepository) ListChildLineItems(ctx context.Context, owner domain.OwnerContext, parentIDs []string) ([]domain.LineItem, error) {
	if len(parentIDs) == 0 {
		return []domain.LineItem{}, nil
	}
	var args queryArgs
	filter := "WHERE li.parent_id = ANY(" + args.add(parentIDs) + ") AND " + ownerFilter(owner, "li", &args) +
		" ORDER BY li.created_at, li.line_item_id"
	return r.getLineItems(ctx, filter, args...)
}

func (r *PgxLineItemRepository) CountChildren(ctx context.Context, owner domain.OwnerContext, parentID string) (int, error) {
	var args queryArgs
	query := "SELECT count(*) FROM line_items li WHERE li.parent_id = " + args.add(parentID) +
		" AND " + ownerFilter(owner, "li", &args)

	var count int
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count children of "+parentID, err)
	}
	return count, nil
}

func (r *PgxLineItemRepository) ListSeriesLineItems(ctx context.Context, owner domain.OwnerContext, seriesID string) ([]domain.LineItem, error) {
	var args queryArgs
	filter := "WHERE li.series_id = " + args.add(seriesID) + " AND " + ownerFilter(owner, "li", &args) +
		" ORDER BY li.period, li.created_at"
	return r.getLineItems(ctx, filter, args...)
}

func (r *PgxLineItemRepository) CountSeriesChildren(ctx context.Context, owner domain.OwnerContext, seriesID string, filter domain.SeriesFilter) (int, error) {
	var args queryArgs
	query := `SELECT count(*) FROM line_items c
		JOIN line_items li ON c.parent_id = li.line_item_id
		WHERE ` + seriesFilter(owner, seriesID, filter, &args)

	var count int
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count children of series "+seriesID, err)
	}
	return count, nil
}

// seriesFilter matches the items of a series, owned by owner, that pass filter.
func seriesFilter(owner domain.OwnerContext, seriesID string, filter domain.SeriesFilter, args *queryArgs) string {
	clause := "li.series_id = " + args.add(seriesID) + " AND " + ownerFilter(owner, "li", args)
	if filter.FromPeriod != nil {
		clause += " AND li.period >= " + args.add(filter.FromPeriod.String())
	}
	return clause
}

func (r *PgxLineItemRepository) SaveLineItem(ctx context.Context, item domain.LineItem) error {
	if _, err := r.Pool.Exec(ctx, insertLineItemQuery, lineItemInsertArgs(item)...); err != nil {
		return mapWriteError(err, "failed to save line item "+item.ID)
	}
	return nil
}

// SaveLineItems inserts every item in one batch inside a transaction, so a
// series is stored completely or not at all.
func (r *PgxLineItemRepository) SaveLineItems(ctx context.Context, items []domain.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(insertLineItemQuery, lineItemInsertArgs(item)...)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapWriteError(err, "failed to save line item batch")
	}

	return r.Commit(ctx, tx)
}

// patchSet renders the SET clause of a patch. With projectDueDate the due
// date keeps only its day of month and lands in each row's own period.
func patchSet(patch domain.LineItemPatch, actor string, updatedAt time.Time, args *queryArgs, projectDueDate bool) string {
	sets := make([]string, 0, 16)
	set := func(col string, v any) {
		sets = append(sets, col+" = "+args.add(v))
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Amount != nil {
		set("amount", *patch.Amount)
	}
	if patch.Period != nil {
		set("period", patch.Period.String())
	}
	switch {
	case patch.ClearScheduledDay:
		sets = append(sets, "scheduled_day = NULL")
	case patch.ScheduledDay != nil:
		set("scheduled_day", int32(*patch.ScheduledDay))
	}
	switch {
	case patch.ClearDueDate:
		sets = append(sets, "due_date = NULL")
	case patch.DueDate != nil && projectDueDate:
		day := args.add(patch.DueDate.Day())
		sets = append(sets, "due_date = LEAST(to_date(period, 'YYYY-MM') + ("+day+"::int - 1), "+
			"(to_date(period, 'YYYY-MM') + interval '1 month' - interval '1 day')::date)")
	case patch.DueDate != nil:
		set("due_date", *patch.DueDate)
	}
	if patch.Completed != nil {
		set("completed", *patch.Completed)
	}
	if patch.IsGroup != nil {
		set("is_group", *patch.IsGroup)
	}
	if patch.ValuationMode != nil {
		set("valuation_mode", string(*patch.ValuationMode))
	}
	switch {
	case patch.ClearCategory:
		sets = append(sets, "category_id = NULL")
	case patch.CategoryID != nil:
		set("category_id", *patch.CategoryID)
	}
	if patch.Notes != nil {
		set("notes", *patch.Notes)
	}
	if patch.ParentID != nil {
		set("parent_id", *patch.ParentID)
	}
	set("last_updated_at", updatedAt)
	set("last_updated_by", actor)

	return strings.Join(sets, ", ")
}

// UpdateLineItem patches one item. When the period changes, the item's
// children are moved along in the same statement.
func (r *PgxLineItemRepository) UpdateLineItem(ctx context.Context, owner domain.OwnerContext, itemID string, patch domain.LineItemPatch, updatedAt time.Time) error {
	var args queryArgs
	setClause := patchSet(patch, owner.UserID, updatedAt, &args, false)
	update := "UPDATE line_items li SET " + setClause +
		" WHERE li.line_item_id = " + args.add(itemID) + " AND " + ownerFilter(owner, "li", &args) +
		" RETURNING li.line_item_id, li.period"

	query := "WITH updated AS (" + update + ")"
	if patch.Period != nil {
		query += `, moved AS (
			UPDATE line_items c SET period = u.period
			FROM updated u
			WHERE c.parent_id = u.line_item_id AND c.period <> u.period
		)`
	}
	query += " SELECT count(*) FROM updated"

	var count int
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return mapWriteError(err, "failed to update line item "+itemID)
	}
	if count == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLineItemRepository) UpdateSeriesLineItems(ctx context.Context, owner domain.OwnerContext, seriesID string, filter domain.SeriesFilter, patch domain.LineItemPatch, updatedAt time.Time) ([]domain.Period, error) {
	var args queryArgs
	setClause := patchSet(patch, owner.UserID, updatedAt, &args, true)
	query := "UPDATE line_items li SET " + setClause +
		" WHERE " + seriesFilter(owner, seriesID, filter, &args) +
		" RETURNING li.period"

	return r.collectPeriods(ctx, query, args, "failed to update series "+seriesID)
}

func (r *PgxLineItemRepository) DeleteLineItem(ctx context.Context, owner domain.OwnerContext, itemID string) error {
	var args queryArgs
	query := "DELETE FROM line_items li WHERE li.line_item_id = " + args.add(itemID) +
		" AND " + ownerFilter(owner, "li", &args)

	tag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete line item "+itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLineItemRepository) DeleteSeriesLineItems(ctx context.Context, owner domain.OwnerContext, seriesID string, filter domain.SeriesFilter) ([]domain.Period, error) {
	var args queryArgs
	query := "DELETE FROM line_items li WHERE " + seriesFilter(owner, seriesID, filter, &args) +
		" RETURNING li.period"

	return r.collectPeriods(ctx, query, args, "failed to delete series "+seriesID)
}

// collectPeriods runs a statement returning one period per touched row.
func (r *PgxLineItemRepository) collectPeriods(ctx context.Context, query string, args queryArgs, msg string) ([]domain.Period, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapWriteError(err, msg)
	}
	raw, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, mapWriteError(err, msg)
	}

	periods := make([]domain.Period, 0, len(raw))
	for _, s := range raw {
		p, err := domain.ParsePeriod(s)
		if err != nil {
			return nil, apperrors.NewAppError(500, msg, err)
		}
		periods = append(periods, p)
	}
	return periods, nil
}
