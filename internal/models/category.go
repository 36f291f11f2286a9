package models

// Category is the row layout of the categories table.
type Category struct {
	CategoryID  string  `db:"category_id"`
	UserID      string  `db:"user_id"`
	WorkplaceID *string `db:"workplace_id"`
	Name        string  `db:"name"`
	Kind        string  `db:"kind"`
	Color       string  `db:"color"`
	AuditFields
}
