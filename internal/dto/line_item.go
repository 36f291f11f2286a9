package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/monthly_ledger/internal/apperrors"
	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of due dates.
const DateLayout = "2006-01-02"

// --- Line item DTOs ---

// CreateLineItemRequest defines data for creating a standalone line item.
type CreateLineItemRequest struct {
	Kind          string          `json:"kind" binding:"required,oneof=income expense"`
	Name          string          `json:"name" binding:"required,max=100"`
	Amount        decimal.Decimal `json:"amount"`
	Period        string          `json:"period" binding:"required"` // YYYY-MM
	ScheduledDay  *int            `json:"scheduledDay" binding:"omitempty,min=1,max=31"`
	DueDate       *string         `json:"dueDate"` // YYYY-MM-DD
	Completed     bool            `json:"completed"`
	IsGroup       bool            `json:"isGroup"`
	ValuationMode string          `json:"valuationMode" binding:"omitempty,oneof=sum fixed"`
	CategoryID    *string         `json:"categoryId"`
	Notes         string          `json:"notes" binding:"max=500"`
}

// ToDraft converts the request into a domain draft.
func (r CreateLineItemRequest) ToDraft() (domain.LineItemDraft, error) {
	period, err := domain.ParsePeriod(r.Period)
	if err != nil {
		return domain.LineItemDraft{}, err
	}
	dueDate, err := parseDate(r.DueDate)
	if err != nil {
		return domain.LineItemDraft{}, err
	}
	return domain.LineItemDraft{
		Kind:          domain.LineItemKind(r.Kind),
		Name:          r.Name,
		Amount:        r.Amount,
		Period:        period,
		ScheduledDay:  r.ScheduledDay,
		DueDate:       dueDate,
		Completed:     r.Completed,
		IsGroup:       r.IsGroup,
		ValuationMode: domain.ValuationMode(r.ValuationMode),
		CategoryID:    nonEmpty(r.CategoryID),
		Notes:         r.Notes,
	}, nil
}

// CreateChildRequest defines data for adding a child to a group. The child
// inherits kind and period from the group.
type CreateChildRequest struct {
	Name         string          `json:"name" binding:"required,max=100"`
	Amount       decimal.Decimal `json:"amount"`
	ScheduledDay *int            `json:"scheduledDay" binding:"omitempty,min=1,max=31"`
	DueDate      *string         `json:"dueDate"`
	Completed    bool            `json:"completed"`
	CategoryID   *string         `json:"categoryId"`
	Notes        string          `json:"notes" binding:"max=500"`
}

// ToDraft converts the request into a domain draft without kind or period.
func (r CreateChildRequest) ToDraft() (domain.LineItemDraft, error) {
	dueDate, err := parseDate(r.DueDate)
	if err != nil {
		return domain.LineItemDraft{}, err
	}
	return domain.LineItemDraft{
		Name:         r.Name,
		Amount:       r.Amount,
		ScheduledDay: r.ScheduledDay,
		DueDate:      dueDate,
		Completed:    r.Completed,
		CategoryID:   nonEmpty(r.CategoryID),
		Notes:        r.Notes,
	}, nil
}

// UpdateLineItemRequest defines a partial update. Absent fields are left
// unchanged; the clear flags remove optional values.
type UpdateLineItemRequest struct {
	Name              *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Amount            *decimal.Decimal `json:"amount"`
	Period            *string          `json:"period"`
	ScheduledDay      *int             `json:"scheduledDay" binding:"omitempty,min=1,max=31"`
	ClearScheduledDay bool             `json:"clearScheduledDay"`
	DueDate           *string          `json:"dueDate"`
	ClearDueDate      bool             `json:"clearDueDate"`
	Completed         *bool            `json:"completed"`
	IsGroup           *bool            `json:"isGroup"`
	ValuationMode     *string          `json:"valuationMode" binding:"omitempty,oneof=sum fixed"`
	CategoryID        *string          `json:"categoryId"`
	ClearCategory     bool             `json:"clearCategory"`
	Notes             *string          `json:"notes" binding:"omitempty,max=500"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateLineItemRequest) ToPatch() (domain.LineItemPatch, error) {
	patch := domain.LineItemPatch{
		Name:              r.Name,
		Amount:            r.Amount,
		ScheduledDay:      r.ScheduledDay,
		ClearScheduledDay: r.ClearScheduledDay,
		ClearDueDate:      r.ClearDueDate,
		Completed:         r.Completed,
		IsGroup:           r.IsGroup,
		CategoryID:        nonEmpty(r.CategoryID),
		ClearCategory:     r.ClearCategory,
		Notes:             r.Notes,
	}
	if r.Period != nil {
		period, err := domain.ParsePeriod(*r.Period)
		if err != nil {
			return domain.LineItemPatch{}, err
		}
		patch.Period = &period
	}
	dueDate, err := parseDate(r.DueDate)
	if err != nil {
		return domain.LineItemPatch{}, err
	}
	patch.DueDate = dueDate
	if r.ValuationMode != nil {
		mode := domain.ValuationMode(*r.ValuationMode)
		patch.ValuationMode = &mode
	}
	return patch, nil
}

// MoveChildRequest names the group a child moves to.
type MoveChildRequest struct {
	GroupID string `json:"groupId" binding:"required"`
}

// CreateSeriesRequest defines a recurring series: the first occurrence plus
// how it repeats.
type CreateSeriesRequest struct {
	CreateLineItemRequest
	Mode  string `json:"mode" binding:"required,oneof=monthly installments"`
	Count int    `json:"count" binding:"required,min=1"`
}

// ToSpec converts the request into a domain series spec.
func (r CreateSeriesRequest) ToSpec() (domain.SeriesSpec, error) {
	base, err := r.CreateLineItemRequest.ToDraft()
	if err != nil {
		return domain.SeriesSpec{}, err
	}
	return domain.SeriesSpec{
		Base: base,
		Recurrence: domain.Recurrence{
			Mode:  domain.RecurrenceMode(r.Mode),
			Count: r.Count,
		},
	}, nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(*s))
	if err != nil {
		return nil, apperrors.Validationf("date %q must use the YYYY-MM-DD format", *s)
	}
	return &t, nil
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
