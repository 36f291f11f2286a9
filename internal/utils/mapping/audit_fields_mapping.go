package mapping

import (
	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	"github.com/SscSPs/monthly_ledger/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// ToModelOwner splits an owner context into the user and nullable workplace columns.
func ToModelOwner(o domain.OwnerContext) (userID string, workplaceID *string) {
	if o.IsWorkplace() {
		wp := o.WorkplaceID
		return o.UserID, &wp
	}
	return o.UserID, nil
}

// ToDomainOwner rebuilds an owner context from the user and workplace columns.
func ToDomainOwner(userID string, workplaceID *string) domain.OwnerContext {
	if workplaceID != nil && *workplaceID != "" {
		return domain.WorkplaceOwner(*workplaceID, userID)
	}
	return domain.UserOwner(userID)
}
