package services

import (
	"context"

	"github.com/SscSPs/monthly_ledger/internal/core/domain"
)

// LineItemReaderSvc defines read operations over a month of line items.
type LineItemReaderSvc interface {
	// ListMonth returns the resolved view of one period: roots, attached children and totals.
	ListMonth(ctx context.Context, owner domain.OwnerContext, period domain.Period) (*domain.MonthSnapshot, error)
}

// LineItemWriterSvc defines single-item mutations. Each returns the refreshed
// snapshot of the period the change landed in.
type LineItemWriterSvc interface {
	// Create persists a new standalone item.
	Create(ctx context.Context, owner domain.OwnerContext, draft domain.LineItemDraft) (*domain.MonthSnapshot, error)

	// Update applies a patch, refusing to ungroup a group that still has children.
	Update(ctx context.Context, owner domain.OwnerContext, itemID string, patch domain.LineItemPatch) (*domain.MonthSnapshot, error)

	// ToggleCompleted flips the completed flag of a root item.
	ToggleCompleted(ctx context.Context, owner domain.OwnerContext, itemID string) (*domain.MonthSnapshot, error)

	// Delete removes an item. A group with children is only removed when force is set.
	Delete(ctx context.Context, owner domain.OwnerContext, itemID string, force bool) (*domain.MonthSnapshot, error)
}

// LineItemGroupSvc defines operations on groups and their children.
type LineItemGroupSvc interface {
	// CreateChild adds a child to a group. The child takes the group's period and kind.
	CreateChild(ctx context.Context, owner domain.OwnerContext, groupID string, draft domain.LineItemDraft) (*domain.MonthSnapshot, error)

	// MoveChild reassigns a child to another group of the same kind and period.
	MoveChild(ctx context.Context, owner domain.OwnerContext, childID, groupID string) (*domain.MonthSnapshot, error)
}

// LineItemSeriesSvc defines operations over recurring series.
type LineItemSeriesSvc interface {
	// CreateRecurringSeries generates and persists every occurrence in one batch.
	CreateRecurringSeries(ctx context.Context, owner domain.OwnerContext, spec domain.SeriesSpec) (*domain.SeriesCreationResult, error)

	// GetSeriesInfo summarizes the series an item belongs to.
	GetSeriesInfo(ctx context.Context, owner domain.OwnerContext, itemID string) (*domain.SeriesInfo, error)

	// UpdateSeries applies a patch to the part of the series selected by scope.
	UpdateSeries(ctx context.Context, owner domain.OwnerContext, itemID string, scope domain.SeriesScope, patch domain.LineItemPatch) (*domain.SeriesMutationResult, error)

	// DeleteSeries removes the part of the series selected by scope.
	DeleteSeries(ctx context.Context, owner domain.OwnerContext, itemID string, scope domain.SeriesScope) (*domain.SeriesMutationResult, error)
}

// LineItemSvcFacade combines all line item service interfaces.
type LineItemSvcFacade interface {
	LineItemReaderSvc
	LineItemWriterSvc
	LineItemGroupSvc
	LineItemSeriesSvc
}
