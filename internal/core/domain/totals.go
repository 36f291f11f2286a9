package domain

import (
	"github.com/shopspring/decimal"
)

// Totals summarizes a month. Every figure is built from effective amounts.
type Totals struct {
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	ReceivedIncome decimal.Decimal `json:"receivedIncome"`
	PendingIncome  decimal.Decimal `json:"pendingIncome"`
	TotalExpense   decimal.Decimal `json:"totalExpense"`
	PaidExpense    decimal.Decimal `json:"paidExpense"`
	PendingExpense decimal.Decimal `json:"pendingExpense"`
	Balance        decimal.Decimal `json:"balance"`
}

// MonthSnapshot is the consistent view of one period returned after reads and mutations.
type MonthSnapshot struct {
	Period  Period             `json:"period"`
	Income  []EnrichedLineItem `json:"income"`
	Expense []EnrichedLineItem `json:"expense"`
	// Groups repeats the group items of Income and Expense for convenience.
	Groups []EnrichedLineItem `json:"groups"`
	Totals Totals             `json:"totals"`
}

func sumEffective(items []EnrichedLineItem) (total, completed decimal.Decimal) {
	total, completed = decimal.Zero, decimal.Zero
	for _, item := range items {
		total = total.Add(item.EffectiveAmount)
		if item.Completed {
			completed = completed.Add(item.EffectiveAmount)
		}
	}
	return total, completed
}

// ComputeTotals folds the enriched income and expense items of a month.
func ComputeTotals(income, expense []EnrichedLineItem) Totals {
	totalIncome, receivedIncome := sumEffective(income)
	totalExpense, paidExpense := sumEffective(expense)
	return Totals{
		TotalIncome:    totalIncome,
		ReceivedIncome: receivedIncome,
		PendingIncome:  totalIncome.Sub(receivedIncome),
		TotalExpense:   totalExpense,
		PaidExpense:    paidExpense,
		PendingExpense: totalExpense.Sub(paidExpense),
		Balance:        totalIncome.Sub(totalExpense),
	}
}

// BuildMonthSnapshot attaches children to their groups, resolves every root and
// partitions the result by kind. Roots keep the order they were given in.
func BuildMonthSnapshot(period Period, roots []LineItem, children []LineItem) MonthSnapshot {
	byParent := make(map[string][]LineItem, len(roots))
	for _, child := range children {
		if child.ParentID == nil {
			continue
		}
		byParent[*child.ParentID] = append(byParent[*child.ParentID], child)
	}

	snapshot := MonthSnapshot{
		Period:  period,
		Income:  []EnrichedLineItem{},
		Expense: []EnrichedLineItem{},
		Groups:  []EnrichedLineItem{},
	}
	for _, root := range roots {
		if root.IsGroup {
			root.Children = byParent[root.ID]
		}
		enriched := Enrich(root)
		switch root.Kind {
		case Income:
			snapshot.Income = append(snapshot.Income, enriched)
		case Expense:
			snapshot.Expense = append(snapshot.Expense, enriched)
		}
		if root.IsGroup {
			snapshot.Groups = append(snapshot.Groups, enriched)
		}
	}
	snapshot.Totals = ComputeTotals(snapshot.Income, snapshot.Expense)
	return snapshot
}

// GroupIDs returns the ids of the group items among roots.
func GroupIDs(roots []LineItem) []string {
	ids := make([]string, 0)
	for _, root := range roots {
		if root.IsGroup {
			ids = append(ids, root.ID)
		}
	}
	return ids
}
