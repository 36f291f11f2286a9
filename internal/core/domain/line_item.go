package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/monthly_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// LineItemKind separates money coming in from money going out.
type LineItemKind string

const (
	Income  LineItemKind = "income"
	Expense LineItemKind = "expense"
)

// IsValid reports whether the kind is one of the known values.
func (k LineItemKind) IsValid() bool {
	return k == Income || k == Expense
}

// ValuationMode decides how a group's effective amount is derived.
type ValuationMode string

const (
	// ValuationSum values a group as the sum of its children.
	ValuationSum ValuationMode = "sum"
	// ValuationFixed values a group at its own stored amount.
	ValuationFixed ValuationMode = "fixed"
)

// IsValid reports whether the mode is one of the known values.
func (m ValuationMode) IsValid() bool {
	return m == ValuationSum || m == ValuationFixed
}

// MaxNameLength is the longest name accepted when an item is created.
const MaxNameLength = 100

// LineItem is a single income or expense entry for a month.
type LineItem struct {
	ID            string           `json:"id"`
	Owner         OwnerContext     `json:"-"`
	Kind          LineItemKind     `json:"kind"`
	Name          string           `json:"name"`
	Amount        decimal.Decimal  `json:"amount"`
	Period        Period           `json:"period"`
	ScheduledDay  *int             `json:"scheduledDay,omitempty"`
	DueDate       *time.Time       `json:"dueDate,omitempty"`
	Completed     bool             `json:"completed"`
	ParentID      *string          `json:"parentId,omitempty"`
	IsGroup       bool             `json:"isGroup"`
	ValuationMode ValuationMode    `json:"valuationMode"`
	SeriesID      *string          `json:"seriesId,omitempty"`
	CategoryID    *string          `json:"categoryId,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	AuditFields
	// Children is populated only when a group is read together with its children.
	Children []LineItem `json:"children,omitempty"`
}

// IsChild reports whether the item belongs to a group.
func (i LineItem) IsChild() bool {
	return i.ParentID != nil
}

// InSeries reports whether the item was generated as part of a recurring series.
func (i LineItem) InSeries() bool {
	return i.SeriesID != nil && *i.SeriesID != ""
}

// ScheduledDate combines the scheduled day with the period. Nil when no day is set.
func (i LineItem) ScheduledDate() *time.Time {
	if i.ScheduledDay == nil {
		return nil
	}
	d := i.Period.DateOn(*i.ScheduledDay)
	return &d
}

// LineItemDraft is the validated input for creating a line item.
type LineItemDraft struct {
	Kind          LineItemKind    `validate:"required,oneof=income expense"`
	Name          string          `validate:"required,max=100"`
	Amount        decimal.Decimal `validate:"-"`
	Period        Period          `validate:"-"`
	ScheduledDay  *int            `validate:"omitempty,min=1,max=31"`
	DueDate       *time.Time
	Completed     bool
	IsGroup       bool
	ValuationMode ValuationMode `validate:"omitempty,oneof=sum fixed"`
	CategoryID    *string       `validate:"omitempty,min=1"`
	Notes         string        `validate:"max=500"`
}

// Normalize trims the name and fills the default valuation mode.
func (d LineItemDraft) Normalize() LineItemDraft {
	d.Name = strings.TrimSpace(d.Name)
	if d.ValuationMode == "" {
		d.ValuationMode = ValuationSum
	}
	return d
}

// Validate checks the draft after normalization.
func (d LineItemDraft) Validate() error {
	d = d.Normalize()
	if err := validateStruct(d); err != nil {
		return err
	}
	if err := validateAmount(d.Amount); err != nil {
		return err
	}
	if d.Period.IsZero() {
		return apperrors.Validationf("period is required")
	}
	return nil
}

// maxAmount is the smallest value that no longer fits the NUMERIC(14,2) amount column.
var maxAmount = decimal.New(1, 12)

func validateAmount(amount decimal.Decimal) error {
	switch {
	case amount.IsNegative():
		return apperrors.Validationf("amount must not be negative")
	case !amount.Equal(amount.Round(2)):
		return apperrors.Validationf("amount %s has more than 2 decimal places", amount)
	case amount.GreaterThanOrEqual(maxAmount):
		return apperrors.Validationf("amount %s exceeds the maximum of %s", amount, maxAmount.Sub(decimal.New(1, -2)).StringFixed(2))
	}
	return nil
}

// NewLineItem materializes a normalized draft into a record ready for storage.
func (d LineItemDraft) NewLineItem(id string, owner OwnerContext, now time.Time) LineItem {
	d = d.Normalize()
	return LineItem{
		ID:            id,
		Owner:         owner,
		Kind:          d.Kind,
		Name:          d.Name,
		Amount:        d.Amount,
		Period:        d.Period,
		ScheduledDay:  d.ScheduledDay,
		DueDate:       d.DueDate,
		Completed:     d.Completed,
		IsGroup:       d.IsGroup,
		ValuationMode: d.ValuationMode,
		CategoryID:    d.CategoryID,
		Notes:         d.Notes,
		AuditFields:   NewAuditFields(owner.UserID, now),
	}
}

// LineItemPatch lists the fields an update may change. Nil means "leave as is";
// the Clear* flags null out optional fields.
type LineItemPatch struct {
	Name              *string          `validate:"omitempty,min=1,max=100"`
	Amount            *decimal.Decimal `validate:"-"`
	Period            *Period          `validate:"-"`
	ScheduledDay      *int             `validate:"omitempty,min=1,max=31"`
	ClearScheduledDay bool
	DueDate           *time.Time
	ClearDueDate      bool
	Completed         *bool
	IsGroup           *bool
	ValuationMode     *ValuationMode `validate:"omitempty,oneof=sum fixed"`
	CategoryID        *string        `validate:"omitempty,min=1"`
	ClearCategory     bool
	Notes             *string `validate:"omitempty,max=500"`

	// ParentID is set only by the service when moving a child between groups.
	ParentID *string `validate:"-"`
}

// IsEmpty reports whether the patch changes nothing.
func (p LineItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Amount == nil && p.Period == nil &&
		p.ScheduledDay == nil && !p.ClearScheduledDay &&
		p.DueDate == nil && !p.ClearDueDate &&
		p.Completed == nil && p.IsGroup == nil && p.ValuationMode == nil &&
		p.CategoryID == nil && !p.ClearCategory && p.Notes == nil &&
		p.ParentID == nil
}

// Validate checks field formats of a patch.
func (p LineItemPatch) Validate() error {
	if p.Name != nil {
		trimmed := strings.TrimSpace(*p.Name)
		p.Name = &trimmed
	}
	if err := validateStruct(p); err != nil {
		return err
	}
	if p.Amount != nil {
		if err := validateAmount(*p.Amount); err != nil {
			return err
		}
	}
	if p.Period != nil && p.Period.IsZero() {
		return apperrors.Validationf("period must not be empty")
	}
	if p.ScheduledDay != nil && p.ClearScheduledDay {
		return apperrors.Validationf("scheduledDay cannot be set and cleared at once")
	}
	if p.DueDate != nil && p.ClearDueDate {
		return apperrors.Validationf("dueDate cannot be set and cleared at once")
	}
	if p.CategoryID != nil && p.ClearCategory {
		return apperrors.Validationf("categoryId cannot be set and cleared at once")
	}
	return nil
}

// Normalized returns the patch with a trimmed name.
func (p LineItemPatch) Normalized() LineItemPatch {
	if p.Name != nil {
		trimmed := strings.TrimSpace(*p.Name)
		p.Name = &trimmed
	}
	return p
}
