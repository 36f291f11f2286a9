package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EnrichedLineItem is a line item with its resolved values, as shown in a month view.
type EnrichedLineItem struct {
	LineItem
	EffectiveAmount decimal.Decimal `json:"effectiveAmount"`
	ChildrenTotal   decimal.Decimal `json:"childrenTotal"`
	ChildCount      int             `json:"childCount"`
	// Difference is amount minus the children's total, for fixed-mode groups only.
	Difference    *decimal.Decimal `json:"difference,omitempty"`
	ScheduledDate *time.Time       `json:"scheduledDate,omitempty"`
}

// ChildrenTotal sums the raw amounts of children. Children are never groups,
// so no nested resolution happens here.
func ChildrenTotal(children []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, child := range children {
		total = total.Add(child.Amount)
	}
	return total
}

// EffectiveAmount resolves the value an item contributes to totals.
func EffectiveAmount(item LineItem) decimal.Decimal {
	if !item.IsGroup {
		return item.Amount
	}
	if item.ValuationMode == ValuationFixed {
		return item.Amount
	}
	return ChildrenTotal(item.Children)
}

// Enrich resolves the effective amount and display figures for an item whose
// children, if any, are already attached.
func Enrich(item LineItem) EnrichedLineItem {
	enriched := EnrichedLineItem{
		LineItem:        item,
		EffectiveAmount: EffectiveAmount(item),
		ChildrenTotal:   ChildrenTotal(item.Children),
		ChildCount:      len(item.Children),
		ScheduledDate:   item.ScheduledDate(),
	}
	if item.IsGroup && item.ValuationMode == ValuationFixed {
		diff := item.Amount.Sub(enriched.ChildrenTotal)
		enriched.Difference = &diff
	}
	return enriched
}
