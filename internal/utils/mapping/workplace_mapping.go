package mapping

import (
	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	"github.com/SscSPs/monthly_ledger/internal/models"
)

// ToModelWorkplace converts a domain Workplace to a model Workplace
func ToModelWorkplace(d domain.Workplace) models.Workplace {
	return models.Workplace{
		WorkplaceID: d.WorkplaceID,
		Name:        d.Name,
		Description: d.Description,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWorkplace converts a model Workplace to a domain Workplace
func ToDomainWorkplace(m models.Workplace) domain.Workplace {
	return domain.Workplace{
		WorkplaceID: m.WorkplaceID,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWorkplaceMember converts a model WorkplaceMember to a domain WorkplaceMember
func ToDomainWorkplaceMember(m models.WorkplaceMember) domain.WorkplaceMember {
	return domain.WorkplaceMember{
		UserID:      m.UserID,
		WorkplaceID: m.WorkplaceID,
		Role:        domain.WorkplaceRole(m.Role),
		JoinedAt:    m.JoinedAt,
	}
}
