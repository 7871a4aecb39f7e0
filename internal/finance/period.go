// Package finance is the financial metrics engine: pure functions that turn
// already-fetched transaction, account, goal, income and budget records into
// the aggregates the front end displays.
//
// Nothing in this package performs I/O or reads the clock. Callers pass the
// records for one user and, where it matters, the period and "now" to use.
package finance

import (
	"fmt"
	"sort"
	"time"

	"github.com/sanchez1595/Personal-finance/internal/domain"
)

// Period is a calendar month, the unit of aggregation.
type Period struct {
	Year  int
	Month time.Month
}

// NewPeriod validates and builds a Period.
func NewPeriod(year int, month time.Month) (Period, error) {
	if month < time.January || month > time.December {
		return Period{}, fmt.Errorf("invalid month %d", month)
	}
	if year < 1 || year > 9999 {
		return Period{}, fmt.Errorf("invalid year %d", year)
	}
	return Period{Year: year, Month: month}, nil
}

// PeriodOf returns the calendar month containing t, in t's own location.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// ParsePeriod parses a YYYY-MM string.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q: expected YYYY-MM", s)
	}
	return NewPeriod(t.Year(), t.Month())
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Previous is the calendar month immediately before p.
func (p Period) Previous() Period {
	if p.Month == time.January {
		return Period{Year: p.Year - 1, Month: time.December}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

// Next is the calendar month immediately after p.
func (p Period) Next() Period {
	if p.Month == time.December {
		return Period{Year: p.Year + 1, Month: time.January}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// Start is the first day of the month.
func (p Period) Start() domain.Date {
	return domain.NewDate(p.Year, p.Month, 1)
}

// End is the last day of the month.
func (p Period) End() domain.Date {
	return domain.NewDate(p.Year, p.Month, DaysIn(p.Year, p.Month))
}

// Contains reports whether d falls inside the month.
func (p Period) Contains(d domain.Date) bool {
	return d.Year() == p.Year && d.Month() == p.Month
}

// Before reports whether p is an earlier month than o.
func (p Period) Before(o Period) bool {
	if p.Year != o.Year {
		return p.Year < o.Year
	}
	return p.Month < o.Month
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if isLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// AvailablePeriods lists the distinct months that have at least one
// transaction, newest first.
func AvailablePeriods(transactions []domain.Transaction) []Period {
	seen := make(map[Period]struct{})
	periods := make([]Period, 0)
	for _, tx := range transactions {
		if tx.Date.IsZero() {
			continue
		}
		p := Period{Year: tx.Date.Year(), Month: tx.Date.Month()}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[j].Before(periods[i]) })
	return periods
}

// InPeriod keeps the transactions dated inside p.
func InPeriod(transactions []domain.Transaction, p Period) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if p.Contains(tx.Date) {
			out = append(out, tx)
		}
	}
	return out
}
