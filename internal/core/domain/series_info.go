package domain

import (
	"sort"

	"github.com/SscSPs/monthly_ledger/internal/apperrors"
)

// SeriesScope is the breadth of a batch operation over a series.
type SeriesScope string

const (
	// ScopeThisOnly touches only the anchor item.
	ScopeThisOnly SeriesScope = "apenas_este"
	// ScopeThisAndNext touches the anchor and every later occurrence.
	ScopeThisAndNext SeriesScope = "este_e_proximos"
	// ScopeAll touches the whole series.
	ScopeAll SeriesScope = "todos"
)

// ParseSeriesScope validates a scope value. An empty value means ScopeThisOnly.
func ParseSeriesScope(s string) (SeriesScope, error) {
	switch scope := SeriesScope(s); scope {
	case "":
		return ScopeThisOnly, nil
	case ScopeThisOnly, ScopeThisAndNext, ScopeAll:
		return scope, nil
	default:
		return "", apperrors.Validationf("unknown scope %q", s)
	}
}

// SeriesFilter narrows a batch operation to part of a series.
// A nil FromPeriod matches every occurrence.
type SeriesFilter struct {
	FromPeriod *Period
}

// FilterForScope builds the period filter for a multi-item scope anchored at period.
func FilterForScope(scope SeriesScope, anchor Period) SeriesFilter {
	if scope == ScopeThisAndNext {
		p := anchor
		return SeriesFilter{FromPeriod: &p}
	}
	return SeriesFilter{}
}

// Matches reports whether a period passes the filter.
func (f SeriesFilter) Matches(p Period) bool {
	return f.FromPeriod == nil || !p.Before(*f.FromPeriod)
}

// ScopeCounts says how many items each scope would touch.
type ScopeCounts struct {
	ThisOnly    int `json:"apenas_este"`
	ThisAndNext int `json:"este_e_proximos"`
	All         int `json:"todos"`
}

// SeriesInfo summarizes a series for confirmation prompts before batch operations.
type SeriesInfo struct {
	ItemID         string      `json:"itemId"`
	SeriesID       *string     `json:"seriesId,omitempty"`
	IsSeries       bool        `json:"isSeries"`
	TotalCount     int         `json:"totalCount"`
	CompletedCount int         `json:"completedCount"`
	PendingCount   int         `json:"pendingCount"`
	FirstPeriod    Period      `json:"firstPeriod"`
	LastPeriod     Period      `json:"lastPeriod"`
	AnchorPeriod   Period      `json:"anchorPeriod"`
	Position       int         `json:"position"`
	Scopes         ScopeCounts `json:"scopes"`
}

// SingleItemInfo is the trivial summary of an item outside any series.
func SingleItemInfo(item LineItem) SeriesInfo {
	completed := 0
	if item.Completed {
		completed = 1
	}
	return SeriesInfo{
		ItemID:         item.ID,
		IsSeries:       false,
		TotalCount:     1,
		CompletedCount: completed,
		PendingCount:   1 - completed,
		FirstPeriod:    item.Period,
		LastPeriod:     item.Period,
		AnchorPeriod:   item.Period,
		Position:       1,
		Scopes:         ScopeCounts{ThisOnly: 1, ThisAndNext: 1, All: 1},
	}
}

// SortByPeriod orders items by period ascending, keeping the input order for ties.
func SortByPeriod(items []LineItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Period.Before(items[j].Period)
	})
}

// SummarizeSeries reports on the series anchored at anchor. items must be every
// item sharing anchor's series id; the slice is not modified.
func SummarizeSeries(anchor LineItem, items []LineItem) SeriesInfo {
	if !anchor.InSeries() || len(items) == 0 {
		return SingleItemInfo(anchor)
	}

	sorted := make([]LineItem, len(items))
	copy(sorted, items)
	SortByPeriod(sorted)

	info := SeriesInfo{
		ItemID:       anchor.ID,
		SeriesID:     anchor.SeriesID,
		IsSeries:     true,
		TotalCount:   len(sorted),
		FirstPeriod:  sorted[0].Period,
		LastPeriod:   sorted[len(sorted)-1].Period,
		AnchorPeriod: anchor.Period,
	}
	filter := FilterForScope(ScopeThisAndNext, anchor.Period)
	for i, item := range sorted {
		if item.Completed {
			info.CompletedCount++
		}
		if filter.Matches(item.Period) {
			info.Scopes.ThisAndNext++
		}
		if item.ID == anchor.ID {
			info.Position = i + 1
		}
	}
	info.PendingCount = info.TotalCount - info.CompletedCount
	info.Scopes.ThisOnly = 1
	info.Scopes.All = info.TotalCount
	return info
}

// SeriesMutationResult reports what a scoped update or delete touched.
type SeriesMutationResult struct {
	AffectedCount   int      `json:"affectedCount"`
	AffectedPeriods []Period `json:"affectedPeriods"`
}

// NewSeriesMutationResult deduplicates and sorts the touched periods.
func NewSeriesMutationResult(periods []Period) SeriesMutationResult {
	seen := make(map[Period]struct{}, len(periods))
	unique := make([]Period, 0, len(periods))
	for _, p := range periods {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i].Before(unique[j]) })
	return SeriesMutationResult{AffectedCount: len(periods), AffectedPeriods: unique}
}

// SeriesCreationResult reports a newly generated series.
type SeriesCreationResult struct {
	Created  int    `json:"created"`
	SeriesID string `json:"seriesId"`
}
