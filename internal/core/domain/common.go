package domain

import (
	"time"

	"github.com/SscSPs/monthly_ledger/internal/apperrors"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// NewAuditFields stamps creation and update fields with the same actor and time.
func NewAuditFields(actor string, now time.Time) AuditFields {
	return AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor,
		LastUpdatedAt: now,
		LastUpdatedBy: actor,
	}
}

// OwnerContext is the data isolation boundary for every read and write.
//
// UserID is always the acting user. When WorkplaceID is set the data belongs to
// that workplace; otherwise it belongs to the user directly (legacy ownership).
type OwnerContext struct {
	UserID      string `json:"userID"`
	WorkplaceID string `json:"workplaceID,omitempty"`
}

// UserOwner builds a legacy owner context scoped to a single user.
func UserOwner(userID string) OwnerContext {
	return OwnerContext{UserID: userID}
}

// WorkplaceOwner builds an owner context scoped to a workplace, acted on by userID.
func WorkplaceOwner(workplaceID, userID string) OwnerContext {
	return OwnerContext{UserID: userID, WorkplaceID: workplaceID}
}

// IsWorkplace reports whether data is scoped to a workplace rather than a user.
func (o OwnerContext) IsWorkplace() bool {
	return o.WorkplaceID != ""
}

// Validate ensures the context can scope a query.
func (o OwnerContext) Validate() error {
	if o.UserID == "" {
		return apperrors.Validationf("owner context requires a user")
	}
	return nil
}

func (o OwnerContext) String() string {
	if o.IsWorkplace() {
		return "workplace:" + o.WorkplaceID
	}
	return "user:" + o.UserID
}
