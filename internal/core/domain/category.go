package domain

import (
	"strings"
)

// Category labels line items. Built-in categories are shared by every owner and
// cannot be changed; the rest belong to one owner.
type Category struct {
	CategoryID string       `json:"id"`
	Owner      OwnerContext `json:"-"`
	Name       string       `json:"name"`
	Kind       LineItemKind `json:"kind"`
	Color      string       `json:"color,omitempty"`
	IsDefault  bool         `json:"isDefault"`
	AuditFields
}

// CategoryDraft is the validated input for a user-defined category.
type CategoryDraft struct {
	Name  string       `validate:"required,max=50"`
	Kind  LineItemKind `validate:"required,oneof=income expense"`
	Color string       `validate:"omitempty,hexcolor"`
}

// Validate trims and checks the draft.
func (d CategoryDraft) Validate() error {
	d.Name = strings.TrimSpace(d.Name)
	return validateStruct(d)
}

// defaultCategoryPrefix marks the ids of built-in categories.
const defaultCategoryPrefix = "default-"

var defaultCategories = []Category{
	{CategoryID: "default-salary", Name: "Salary", Kind: Income, Color: "#2E7D32", IsDefault: true},
	{CategoryID: "default-freelance", Name: "Freelance", Kind: Income, Color: "#388E3C", IsDefault: true},
	{CategoryID: "default-investments", Name: "Investments", Kind: Income, Color: "#43A047", IsDefault: true},
	{CategoryID: "default-other-income", Name: "Other income", Kind: Income, Color: "#66BB6A", IsDefault: true},
	{CategoryID: "default-housing", Name: "Housing", Kind: Expense, Color: "#C62828", IsDefault: true},
	{CategoryID: "default-food", Name: "Food", Kind: Expense, Color: "#EF6C00", IsDefault: true},
	{CategoryID: "default-transport", Name: "Transport", Kind: Expense, Color: "#F9A825", IsDefault: true},
	{CategoryID: "default-health", Name: "Health", Kind: Expense, Color: "#AD1457", IsDefault: true},
	{CategoryID: "default-education", Name: "Education", Kind: Expense, Color: "#6A1B9A", IsDefault: true},
	{CategoryID: "default-leisure", Name: "Leisure", Kind: Expense, Color: "#1565C0", IsDefault: true},
	{CategoryID: "default-credit-card", Name: "Credit card", Kind: Expense, Color: "#37474F", IsDefault: true},
	{CategoryID: "default-other-expense", Name: "Other expenses", Kind: Expense, Color: "#757575", IsDefault: true},
}

// DefaultCategories returns a copy of the built-in catalog, optionally filtered by kind.
func DefaultCategories(kind *LineItemKind) []Category {
	out := make([]Category, 0, len(defaultCategories))
	for _, c := range defaultCategories {
		if kind != nil && c.Kind != *kind {
			continue
		}
		out = append(out, c)
	}
	return out
}

// IsDefaultCategoryID reports whether id names a built-in category.
func IsDefaultCategoryID(id string) bool {
	return strings.HasPrefix(id, defaultCategoryPrefix)
}

// FindDefaultCategory looks up a built-in category by id.
func FindDefaultCategory(id string) (Category, bool) {
	for _, c := range defaultCategories {
		if c.CategoryID == id {
			return c, true
		}
	}
	return Category{}, false
}
