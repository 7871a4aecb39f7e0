package finance

import (
	"github.com/sanchez1595/Personal-finance/internal/domain"

	"github.com/shopspring/decimal"
)

// Compare builds the month-over-month comparison of two period totals.
// ChangePercent is 0 whenever previous is 0, whatever current is.
func Compare(current, previous decimal.Decimal) domain.MonthlyComparison {
	change := current.Sub(previous)
	return domain.MonthlyComparison{
		Current:       current,
		Previous:      previous,
		Change:        change,
		ChangePercent: Percent(change, previous),
	}
}

// CompareByType compares the total of one transaction type between the rows
// of two periods.
func CompareByType(current, previous []domain.Transaction, t domain.TransactionType) domain.MonthlyComparison {
	return Compare(SumByType(current, t), SumByType(previous, t))
}
