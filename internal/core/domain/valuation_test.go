package domain_test

import (
	"testing"

	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string { return &s }

func child(id, parentID, amount string, completed bool) domain.LineItem {
	return domain.LineItem{
		ID:        id,
		Kind:      domain.Expense,
		Name:      id,
		Amount:    dec(amount),
		Period:    domain.MustParsePeriod("2025-01"),
		ParentID:  strPtr(parentID),
		Completed: completed,
	}
}

func TestEffectiveAmount(t *testing.T) {
	children := []domain.LineItem{
		child("c1", "g", "100.50", false),
		child("c2", "g", "49.50", true),
	}

	tests := []struct {
		name string
		item domain.LineItem
		want string
	}{
		{
			name: "plain item uses its amount",
			item: domain.LineItem{Amount: dec("42.10")},
			want: "42.1",
		},
		{
			name: "sum group ignores its own amount",
			item: domain.LineItem{IsGroup: true, ValuationMode: domain.ValuationSum, Amount: dec("999"), Children: children},
			want: "150",
		},
		{
			name: "empty sum group is zero",
			item: domain.LineItem{IsGroup: true, ValuationMode: domain.ValuationSum, Amount: dec("10")},
			want: "0",
		},
		{
			name: "fixed group uses its own amount",
			item: domain.LineItem{IsGroup: true, ValuationMode: domain.ValuationFixed, Amount: dec("120"), Children: children},
			want: "120",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.EffectiveAmount(tt.item)
			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestEnrich_FixedGroupDifference(t *testing.T) {
	group := domain.LineItem{
		ID:            "g",
		IsGroup:       true,
		ValuationMode: domain.ValuationFixed,
		Amount:        dec("120"),
		Children:      []domain.LineItem{child("c1", "g", "100", false), child("c2", "g", "50", false)},
	}

	enriched := domain.Enrich(group)

	assert.True(t, dec("120").Equal(enriched.EffectiveAmount))
	assert.True(t, dec("150").Equal(enriched.ChildrenTotal))
	assert.Equal(t, 2, enriched.ChildCount)
	require.NotNil(t, enriched.Difference)
	assert.True(t, dec("-30").Equal(*enriched.Difference))
}

func TestEnrich_SumGroupHasNoDifference(t *testing.T) {
	group := domain.LineItem{
		ID:            "g",
		IsGroup:       true,
		ValuationMode: domain.ValuationSum,
		Children:      []domain.LineItem{child("c1", "g", "10", false)},
	}

	enriched := domain.Enrich(group)

	assert.Nil(t, enriched.Difference)
	assert.True(t, dec("10").Equal(enriched.EffectiveAmount))
}

func TestEnrich_ScheduledDate(t *testing.T) {
	day := 31
	item := domain.LineItem{Period: domain.MustParsePeriod("2025-02"), ScheduledDay: &day, Amount: dec("1")}

	enriched := domain.Enrich(item)

	require.NotNil(t, enriched.ScheduledDate)
	assert.Equal(t, "2025-02-28", enriched.ScheduledDate.Format("2006-01-02"))
}
