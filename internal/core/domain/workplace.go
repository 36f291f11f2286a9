package domain

import (
	"strings"
	"time"
)

// Workplace is a shared ledger. Its line items and categories are owned by the
// workplace instead of a single user.
type Workplace struct {
	WorkplaceID string `json:"workplaceID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}

// WorkplaceRole defines the possible roles a user can have within a workplace.
type WorkplaceRole string

const (
	RoleAdmin    WorkplaceRole = "ADMIN"
	RoleMember   WorkplaceRole = "MEMBER"
	RoleReadOnly WorkplaceRole = "READONLY" // can read the ledger but not change it
)

// IsValid reports whether the role is one of the known values.
func (r WorkplaceRole) IsValid() bool {
	return r == RoleAdmin || r == RoleMember || r == RoleReadOnly
}

func (r WorkplaceRole) rank() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleMember:
		return 2
	case RoleReadOnly:
		return 1
	default:
		return 0
	}
}

// Satisfies reports whether a member holding r may perform an action requiring required.
func (r WorkplaceRole) Satisfies(required WorkplaceRole) bool {
	return r.rank() > 0 && r.rank() >= required.rank()
}

// WorkplaceMember is the membership of a user in a workplace.
type WorkplaceMember struct {
	UserID      string        `json:"userID"`
	WorkplaceID string        `json:"workplaceID"`
	Role        WorkplaceRole `json:"role"`
	JoinedAt    time.Time     `json:"joinedAt"`
}

// WorkplaceDraft is the validated input for creating a workplace.
type WorkplaceDraft struct {
	Name        string `validate:"required,max=100"`
	Description string `validate:"max=500"`
}

// Validate trims and checks the draft.
func (d WorkplaceDraft) Validate() error {
	d.Name = strings.TrimSpace(d.Name)
	return validateStruct(d)
}
