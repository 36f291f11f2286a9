package mapping

import (
	"fmt"

	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	"github.com/SscSPs/monthly_ledger/internal/models"
)

// ToModelLineItem converts a domain LineItem to a model LineItem
func ToModelLineItem(d domain.LineItem) models.LineItem {
	userID, workplaceID := ToModelOwner(d.Owner)
	m := models.LineItem{
		LineItemID:    d.ID,
		UserID:        userID,
		WorkplaceID:   workplaceID,
		Kind:          string(d.Kind),
		Name:          d.Name,
		Amount:        d.Amount,
		Period:        d.Period.String(),
		DueDate:       d.DueDate,
		Completed:     d.Completed,
		ParentID:      d.ParentID,
		IsGroup:       d.IsGroup,
		ValuationMode: string(d.ValuationMode),
		SeriesID:      d.SeriesID,
		CategoryID:    d.CategoryID,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.ScheduledDay != nil {
		day := int32(*d.ScheduledDay)
		m.ScheduledDay = &day
	}
	return m
}

// ToDomainLineItem converts a model LineItem to a domain LineItem.
// It fails only when the stored period is malformed.
func ToDomainLineItem(m models.LineItem) (domain.LineItem, error) {
	period, err := domain.ParsePeriod(m.Period)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("line item %s has a malformed period: %w", m.LineItemID, err)
	}
	d := domain.LineItem{
		ID:            m.LineItemID,
		Owner:         ToDomainOwner(m.UserID, m.WorkplaceID),
		Kind:          domain.LineItemKind(m.Kind),
		Name:          m.Name,
		Amount:        m.Amount,
		Period:        period,
		DueDate:       m.DueDate,
		Completed:     m.Completed,
		ParentID:      m.ParentID,
		IsGroup:       m.IsGroup,
		ValuationMode: domain.ValuationMode(m.ValuationMode),
		SeriesID:      m.SeriesID,
		CategoryID:    m.CategoryID,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.ScheduledDay != nil {
		day := int(*m.ScheduledDay)
		d.ScheduledDay = &day
	}
	return d, nil
}

// ToDomainLineItems converts a slice of model LineItems, stopping at the first malformed row.
func ToDomainLineItems(ms []models.LineItem) ([]domain.LineItem, error) {
	items := make([]domain.LineItem, 0, len(ms))
	for _, m := range ms {
		d, err := ToDomainLineItem(m)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, nil
}
