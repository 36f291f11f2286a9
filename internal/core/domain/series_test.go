package domain_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/monthly_ledger/internal/apperrors"
	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestRecurrence_Validate(t *testing.T) {
	tests := []struct {
		name    string
		r       domain.Recurrence
		wantErr bool
	}{
		{name: "monthly single", r: domain.Recurrence{Mode: domain.RecurrenceMonthly, Count: 1}},
		{name: "monthly max", r: domain.Recurrence{Mode: domain.RecurrenceMonthly, Count: domain.MaxSeriesCount}},
		{name: "monthly zero", r: domain.Recurrence{Mode: domain.RecurrenceMonthly, Count: 0}, wantErr: true},
		{name: "installments two", r: domain.Recurrence{Mode: domain.RecurrenceInstallments, Count: 2}},
		{name: "installments one", r: domain.Recurrence{Mode: domain.RecurrenceInstallments, Count: 1}, wantErr: true},
		{name: "installments too many", r: domain.Recurrence{Mode: domain.RecurrenceInstallments, Count: 61}, wantErr: true},
		{name: "unknown mode", r: domain.Recurrence{Mode: "weekly", Count: 3}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGenerateSeries_Installments(t *testing.T) {
	owner := domain.UserOwner("user-1")
	now := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	due := time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)
	spec := domain.SeriesSpec{
		Base: domain.LineItemDraft{
			Kind:    domain.Expense,
			Name:    "  Notebook ",
			Amount:  dec("300"),
			Period:  domain.MustParsePeriod("2025-11"),
			DueDate: &due,
		},
		Recurrence: domain.Recurrence{Mode: domain.RecurrenceInstallments, Count: 4},
	}

	batch, err := domain.GenerateSeries(spec, owner, sequentialIDs(), now)
	require.NoError(t, err)

	assert.Equal(t, "id-1", batch.SeriesID)
	require.Len(t, batch.Items, 4)

	wantPeriods := []string{"2025-11", "2025-12", "2026-01", "2026-02"}
	wantDue := []string{"2025-11-30", "2025-12-30", "2026-01-30", "2026-02-28"}
	for i, item := range batch.Items {
		assert.Equal(t, fmt.Sprintf("id-%d", i+2), item.ID)
		assert.Equal(t, fmt.Sprintf("Notebook (%d/4)", i+1), item.Name)
		assert.Equal(t, wantPeriods[i], item.Period.String())
		assert.True(t, dec("300").Equal(item.Amount))
		require.NotNil(t, item.SeriesID)
		assert.Equal(t, "id-1", *item.SeriesID)
		require.NotNil(t, item.DueDate)
		assert.Equal(t, wantDue[i], item.DueDate.Format("2006-01-02"))
		assert.Equal(t, owner, item.Owner)
		assert.Equal(t, "user-1", item.CreatedBy)
		assert.Equal(t, now, item.CreatedAt)
		assert.Nil(t, item.ParentID)
	}
}

func TestGenerateSeries_MonthlyKeepsNameAndDay(t *testing.T) {
	day := 10
	spec := domain.SeriesSpec{
		Base: domain.LineItemDraft{
			Kind:         domain.Income,
			Name:         "Salary",
			Amount:       dec("5000"),
			Period:       domain.MustParsePeriod("2025-12"),
			ScheduledDay: &day,
		},
		Recurrence: domain.Recurrence{Mode: domain.RecurrenceMonthly, Count: 3},
	}

	batch, err := domain.GenerateSeries(spec, domain.UserOwner("u"), sequentialIDs(), time.Now())
	require.NoError(t, err)
	require.Len(t, batch.Items, 3)

	for _, item := range batch.Items {
		assert.Equal(t, "Salary", item.Name)
		require.NotNil(t, item.ScheduledDay)
		assert.Equal(t, 10, *item.ScheduledDay)
	}
	assert.Equal(t, "2026-02", batch.Items[2].Period.String())

	*batch.Items[0].ScheduledDay = 20
	assert.Equal(t, 10, *batch.Items[1].ScheduledDay, "occurrences must not share pointers")
}

func TestGenerateSeries_SumGroupStartsAtZero(t *testing.T) {
	spec := domain.SeriesSpec{
		Base: domain.LineItemDraft{
			Kind:    domain.Expense,
			Name:    "Credit card",
			Amount:  dec("900"),
			Period:  domain.MustParsePeriod("2025-01"),
			IsGroup: true,
		},
		Recurrence: domain.Recurrence{Mode: domain.RecurrenceMonthly, Count: 2},
	}

	batch, err := domain.GenerateSeries(spec, domain.UserOwner("u"), sequentialIDs(), time.Now())
	require.NoError(t, err)

	for _, item := range batch.Items {
		assert.True(t, item.IsGroup)
		assert.Equal(t, domain.ValuationSum, item.ValuationMode)
		assert.True(t, item.Amount.IsZero())
	}
}

func TestGenerateSeries_FixedGroupKeepsAmount(t *testing.T) {
	spec := domain.SeriesSpec{
		Base: domain.LineItemDraft{
			Kind:          domain.Expense,
			Name:          "Market",
			Amount:        dec("800"),
			Period:        domain.MustParsePeriod("2025-01"),
			IsGroup:       true,
			ValuationMode: domain.ValuationFixed,
		},
		Recurrence: domain.Recurrence{Mode: domain.RecurrenceMonthly, Count: 2},
	}

	batch, err := domain.GenerateSeries(spec, domain.UserOwner("u"), sequentialIDs(), time.Now())
	require.NoError(t, err)
	assert.True(t, dec("800").Equal(batch.Items[1].Amount))
}

func TestGenerateSeries_RejectsInvalidInput(t *testing.T) {
	base := domain.LineItemDraft{Kind: domain.Expense, Name: "Gym", Amount: dec("90"), Period: domain.MustParsePeriod("2025-01")}

	_, err := domain.GenerateSeries(domain.SeriesSpec{Base: base, Recurrence: domain.Recurrence{Mode: domain.RecurrenceMonthly, Count: 61}}, domain.UserOwner("u"), sequentialIDs(), time.Now())
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	subCent := base
	subCent.Amount = dec("29.999")
	_, err = domain.GenerateSeries(domain.SeriesSpec{Base: subCent, Recurrence: domain.Recurrence{Mode: domain.RecurrenceInstallments, Count: 3}}, domain.UserOwner("u"), sequentialIDs(), time.Now())
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	base.Name = "   "
	_, err = domain.GenerateSeries(domain.SeriesSpec{Base: base, Recurrence: domain.Recurrence{Mode: domain.RecurrenceMonthly, Count: 2}}, domain.UserOwner("u"), sequentialIDs(), time.Now())
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
