package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is the row layout of the line_items table.
// Period is stored as YYYY-MM text so that lexical order is chronological.
type LineItem struct {
	LineItemID    string          `db:"line_item_id"`
	UserID        string          `db:"user_id"`
	WorkplaceID   *string         `db:"workplace_id"` // NULL for user-owned items
	Kind          string          `db:"kind"`
	Name          string          `db:"name"`
	Amount        decimal.Decimal `db:"amount"`
	Period        string          `db:"period"`
	ScheduledDay  *int32          `db:"scheduled_day"`
	DueDate       *time.Time      `db:"due_date"`
	Completed     bool            `db:"completed"`
	ParentID      *string         `db:"parent_id"`
	IsGroup       bool            `db:"is_group"`
	ValuationMode string          `db:"valuation_mode"`
	SeriesID      *string         `db:"series_id"`
	CategoryID    *string         `db:"category_id"`
	Notes         string          `db:"notes"`
	AuditFields
}
