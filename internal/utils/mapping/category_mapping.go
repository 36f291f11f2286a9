package mapping

import (
	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	"github.com/SscSPs/monthly_ledger/internal/models"
)

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	userID, workplaceID := ToModelOwner(d.Owner)
	return models.Category{
		CategoryID:  d.CategoryID,
		UserID:      userID,
		WorkplaceID: workplaceID,
		Name:        d.Name,
		Kind:        string(d.Kind),
		Color:       d.Color,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		Owner:       ToDomainOwner(m.UserID, m.WorkplaceID),
		Name:        m.Name,
		Kind:        domain.LineItemKind(m.Kind),
		Color:       m.Color,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
