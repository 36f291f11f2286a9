package services

import (
	"context"

	"github.com/SscSPs/monthly_ledger/internal/core/domain"
)

// CategoryResolverSvc checks category references made by line items.
type CategoryResolverSvc interface {
	// ResolveCategory returns the built-in or owner category with the given id.
	// An unknown id is reported as apperrors.ErrValidation.
	ResolveCategory(ctx context.Context, owner domain.OwnerContext, categoryID string) (*domain.Category, error)
}

// CategorySvcFacade combines all category service interfaces.
type CategorySvcFacade interface {
	CategoryResolverSvc

	// ListCategories returns the built-in catalog followed by the owner's categories.
	ListCategories(ctx context.Context, owner domain.OwnerContext, kind *domain.LineItemKind) ([]domain.Category, error)

	// CreateCategory persists a new owner category.
	CreateCategory(ctx context.Context, owner domain.OwnerContext, draft domain.CategoryDraft) (*domain.Category, error)

	// DeleteCategory removes an owner category. Built-in categories cannot be deleted.
	DeleteCategory(ctx context.Context, owner domain.OwnerContext, categoryID string) error
}
