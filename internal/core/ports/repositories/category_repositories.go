package repositories

import (
	"context"

	"github.com/SscSPs/monthly_ledger/internal/core/domain"
)

// CategoryReader defines read operations for user-defined categories.
type CategoryReader interface {
	// FindCategoryByID retrieves a category of the owner. Returns apperrors.ErrNotFound when missing.
	FindCategoryByID(ctx context.Context, owner domain.OwnerContext, categoryID string) (*domain.Category, error)

	// ListCategories retrieves the owner's categories, optionally filtered by kind.
	ListCategories(ctx context.Context, owner domain.OwnerContext, kind *domain.LineItemKind) ([]domain.Category, error)
}

// CategoryWriter defines write operations for user-defined categories.
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category and clears it from the owner's line items.
	DeleteCategory(ctx context.Context, owner domain.OwnerContext, categoryID string) error
}

// CategoryRepositoryFacade combines all category repository interfaces.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
