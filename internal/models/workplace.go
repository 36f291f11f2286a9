package models

import "time"

// Workplace is the row layout of the workplaces table.
type Workplace struct {
	WorkplaceID string `db:"workplace_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}

// WorkplaceMember is the row layout of the workplace_members table.
type WorkplaceMember struct {
	UserID      string    `db:"user_id"`
	WorkplaceID string    `db:"workplace_id"`
	Role        string    `db:"role"`
	JoinedAt    time.Time `db:"joined_at"`
}
