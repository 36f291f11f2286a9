package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/monthly_ledger/internal/core/domain"
)

// LineItemReader defines read operations for line items. Every method is
// scoped to the given owner; items of other owners are invisible.
type LineItemReader interface {
	// FindLineItemByID retrieves a single item. Returns apperrors.ErrNotFound when missing.
	FindLineItemByID(ctx context.Context, owner domain.OwnerContext, itemID string) (*domain.LineItem, error)

	// ListRootLineItems retrieves the items of a period that have no parent.
	ListRootLineItems(ctx context.Context, owner domain.OwnerContext, period domain.Period) ([]domain.LineItem, error)

	// ListChildLineItems retrieves the children of the given groups in one query.
	ListChildLineItems(ctx context.Context, owner domain.OwnerContext, parentIDs []string) ([]domain.LineItem, error)

	// CountChildren returns how many children a group currently has.
	CountChildren(ctx context.Context, owner domain.OwnerContext, parentID string) (int, error)

	// ListSeriesLineItems retrieves every item sharing seriesID, ordered by period.
	ListSeriesLineItems(ctx context.Context, owner domain.OwnerContext, seriesID string) ([]domain.LineItem, error)

	// CountSeriesChildren counts the children hanging off the series items matched by filter.
	CountSeriesChildren(ctx context.Context, owner domain.OwnerContext, seriesID string, filter domain.SeriesFilter) (int, error)
}

// LineItemWriter defines write operations for line items.
type LineItemWriter interface {
	// SaveLineItem persists a new item.
	SaveLineItem(ctx context.Context, item domain.LineItem) error

	// SaveLineItems persists a generated batch in a single round trip.
	SaveLineItems(ctx context.Context, items []domain.LineItem) error

	// UpdateLineItem applies a patch to one item. The owner's user is recorded as the updater.
	UpdateLineItem(ctx context.Context, owner domain.OwnerContext, itemID string, patch domain.LineItemPatch, updatedAt time.Time) error

	// UpdateSeriesLineItems applies a patch to every series item matched by filter in one
	// statement and returns the period of each touched row.
	UpdateSeriesLineItems(ctx context.Context, owner domain.OwnerContext, seriesID string, filter domain.SeriesFilter, patch domain.LineItemPatch, updatedAt time.Time) ([]domain.Period, error)

	// DeleteLineItem removes an item; a group's children go with it in the same statement.
	DeleteLineItem(ctx context.Context, owner domain.OwnerContext, itemID string) error

	// DeleteSeriesLineItems removes every series item matched by filter in one statement
	// and returns the period of each removed row.
	DeleteSeriesLineItems(ctx context.Context, owner domain.OwnerContext, seriesID string, filter domain.SeriesFilter) ([]domain.Period, error)
}

// LineItemRepositoryFacade combines all line item repository interfaces.
type LineItemRepositoryFacade interface {
	LineItemReader
	LineItemWriter
}
