package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/monthly_ledger/internal/apperrors"
)

const periodLayout = "2006-01"

// MaxSeriesCount bounds how many months a single sequence or series may span.
const MaxSeriesCount = 60

// MinInstallments is the fewest occurrences an installment series may have.
const MinInstallments = 2

// Period is a calendar year-month, rendered as YYYY-MM.
type Period struct {
	Year  int
	Month time.Month
}

// NewPeriod builds a Period without validation.
func NewPeriod(year int, month time.Month) Period {
	return Period{Year: year, Month: month}
}

// PeriodOf returns the period containing t.
func PeriodOf(t time.Time) Period {
	return NewPeriod(t.Year(), t.Month())
}

// ParsePeriod parses a strict YYYY-MM string.
func ParsePeriod(s string) (Period, error) {
	if len(s) != len(periodLayout) || s[4] != '-' {
		return Period{}, apperrors.Validationf("period %q must use the YYYY-MM format", s)
	}
	t, err := time.Parse(periodLayout, s)
	if err != nil {
		return Period{}, apperrors.Validationf("period %q must use the YYYY-MM format", s)
	}
	return PeriodOf(t), nil
}

// MustParsePeriod is ParsePeriod for constants and tests.
func MustParsePeriod(s string) Period {
	p, err := ParsePeriod(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// IsZero reports whether the period was never set.
func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

func (p Period) index() int {
	return p.Year*12 + int(p.Month) - 1
}

// AddMonths moves the period by n calendar months, rolling over year boundaries.
func (p Period) AddMonths(n int) Period {
	idx := p.index() + n
	return NewPeriod(idx/12, time.Month(idx%12+1))
}

// Compare returns -1, 0 or 1 when p is before, equal to or after o.
func (p Period) Compare(o Period) int {
	switch a, b := p.index(), o.index(); {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether p is strictly earlier than o.
func (p Period) Before(o Period) bool {
	return p.Compare(o) < 0
}

// DaysIn returns the number of days in the period's month.
func (p Period) DaysIn() int {
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateOn projects a day-of-month onto the period. Days past the end of a short
// month land on its last day, so day 31 in February becomes the 28th or 29th.
func (p Period) DateOn(day int) time.Time {
	if day < 1 {
		day = 1
	}
	if last := p.DaysIn(); day > last {
		day = last
	}
	return time.Date(p.Year, p.Month, day, 0, 0, 0, 0, time.UTC)
}

// MarshalText renders the period as YYYY-MM.
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses YYYY-MM.
func (p *Period) UnmarshalText(text []byte) error {
	parsed, err := ParsePeriod(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// SequencePeriods returns count consecutive periods starting at start (inclusive).
func SequencePeriods(start Period, count int) ([]Period, error) {
	if start.IsZero() || start.Month < time.January || start.Month > time.December {
		return nil, apperrors.Validationf("a valid starting period is required")
	}
	if count < 1 || count > MaxSeriesCount {
		return nil, apperrors.Validationf("period count must be between 1 and %d, got %d", MaxSeriesCount, count)
	}
	periods := make([]Period, count)
	for i := range periods {
		periods[i] = start.AddMonths(i)
	}
	return periods, nil
}
