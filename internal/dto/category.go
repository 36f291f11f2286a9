package dto

import (
	"github.com/SscSPs/monthly_ledger/internal/core/domain"
)

// --- Category DTOs ---

// CreateCategoryRequest defines data for creating a user-defined category.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=50"`
	Kind  string `json:"kind" binding:"required,oneof=income expense"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

// ToDraft converts the request into a domain draft.
func (r CreateCategoryRequest) ToDraft() domain.CategoryDraft {
	return domain.CategoryDraft{
		Name:  r.Name,
		Kind:  domain.LineItemKind(r.Kind),
		Color: r.Color,
	}
}

// CategoryResponse defines data returned for a category.
type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Color     string `json:"color,omitempty"`
	IsDefault bool   `json:"isDefault"`
}

// ToCategoryResponse converts domain.Category to DTO.
func ToCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.CategoryID,
		Name:      c.Name,
		Kind:      string(c.Kind),
		Color:     c.Color,
		IsDefault: c.IsDefault,
	}
}

// ListCategoriesResponse wraps a list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToListCategoriesResponse converts a slice of domain.Category to DTO.
func ToListCategoriesResponse(cs []domain.Category) ListCategoriesResponse {
	list := make([]CategoryResponse, len(cs))
	for i, c := range cs {
		list[i] = ToCategoryResponse(c)
	}
	return ListCategoriesResponse{Categories: list}
}
