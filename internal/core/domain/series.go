package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/monthly_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// RecurrenceMode says how the occurrences of a series relate to each other.
type RecurrenceMode string

const (
	// RecurrenceMonthly repeats the same item every month.
	RecurrenceMonthly RecurrenceMode = "monthly"
	// RecurrenceInstallments numbers each occurrence as "i/count".
	RecurrenceInstallments RecurrenceMode = "installments"
)

// Recurrence describes how many occurrences to generate and how to name them.
type Recurrence struct {
	Mode  RecurrenceMode `validate:"required,oneof=monthly installments"`
	Count int
}

// Validate enforces the count bounds of each mode.
func (r Recurrence) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	minCount := 1
	if r.Mode == RecurrenceInstallments {
		minCount = MinInstallments
	}
	if r.Count < minCount || r.Count > MaxSeriesCount {
		return apperrors.Validationf("%s count must be between %d and %d, got %d", r.Mode, minCount, MaxSeriesCount, r.Count)
	}
	return nil
}

// SeriesSpec is the input for generating a recurring series. Base.Period is the
// first occurrence's period.
type SeriesSpec struct {
	Base       LineItemDraft
	Recurrence Recurrence
}

// Validate checks the base draft and the recurrence together.
func (s SeriesSpec) Validate() error {
	if err := s.Base.Validate(); err != nil {
		return err
	}
	return s.Recurrence.Validate()
}

// SeriesBatch is the flat, ready-to-persist output of GenerateSeries.
type SeriesBatch struct {
	SeriesID string
	Items    []LineItem
}

// GenerateSeries drafts every occurrence of a series. newID supplies fresh
// identifiers; its first call produces the series id.
//
// Each occurrence repeats the full base amount, installments included. Groups
// valued by sum start at zero since their children fill them in later.
func GenerateSeries(spec SeriesSpec, owner OwnerContext, newID func() string, now time.Time) (SeriesBatch, error) {
	if err := spec.Validate(); err != nil {
		return SeriesBatch{}, err
	}
	base := spec.Base.Normalize()

	periods, err := SequencePeriods(base.Period, spec.Recurrence.Count)
	if err != nil {
		return SeriesBatch{}, err
	}

	seriesID := newID()
	amount := base.Amount
	if base.IsGroup && base.ValuationMode == ValuationSum {
		amount = decimal.Zero
	}

	items := make([]LineItem, 0, len(periods))
	for i, period := range periods {
		draft := base
		draft.Period = period
		draft.Amount = amount
		if spec.Recurrence.Mode == RecurrenceInstallments {
			draft.Name = fmt.Sprintf("%s (%d/%d)", base.Name, i+1, spec.Recurrence.Count)
		}
		if base.ScheduledDay != nil {
			day := *base.ScheduledDay
			draft.ScheduledDay = &day
		}
		if base.DueDate != nil {
			due := period.DateOn(base.DueDate.Day())
			draft.DueDate = &due
		}

		item := draft.NewLineItem(newID(), owner, now)
		sid := seriesID
		item.SeriesID = &sid
		items = append(items, item)
	}

	return SeriesBatch{SeriesID: seriesID, Items: items}, nil
}
