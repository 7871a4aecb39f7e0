package finance

import (
	"time"

	"github.com/sanchez1595/Personal-finance/internal/domain"

	"github.com/shopspring/decimal"
)

// Utilization thresholds, in percent of the budget amount.
const (
	OverBudgetThreshold = 100
	NearLimitThreshold  = 80
	WatchThreshold      = 60
)

// Utilization is the share of the budget already spent, in percent.
// A zero budget yields 0.
func Utilization(amount, spent decimal.Decimal) float64 {
	return Percent(spent, amount)
}

// StatusFor bands a utilization percentage for display.
func StatusFor(percentage float64) domain.BudgetStatus {
	switch {
	case percentage >= OverBudgetThreshold:
		return domain.BudgetOverBudget
	case percentage >= NearLimitThreshold:
		return domain.BudgetNearLimit
	case percentage >= WatchThreshold:
		return domain.BudgetWatch
	default:
		return domain.BudgetOnTrack
	}
}

// ActiveIn reports whether the budget's window overlaps the period.
func ActiveIn(b domain.Budget, p Period) bool {
	if b.StartDate.After(p.End()) {
		return false
	}
	return b.EndDate == nil || !b.EndDate.Before(p.Start())
}

// Spent sums the expenses of the budget's category dated inside both the
// budget's window and the period.
func Spent(b domain.Budget, transactions []domain.Transaction, p Period) decimal.Decimal {
	from, to := p.Start(), p.End()
	if b.StartDate.After(from) {
		from = b.StartDate
	}
	if b.EndDate != nil && b.EndDate.Before(to) {
		to = *b.EndDate
	}

	spent := decimal.Zero
	for _, tx := range transactions {
		if tx.Type != domain.TransactionExpense || tx.CategoryID != b.CategoryID {
			continue
		}
		if tx.Date.Before(from) || tx.Date.After(to) {
			continue
		}
		spent = spent.Add(tx.Amount)
	}
	return spent
}

// Usage computes spent, percentage and status of a budget for the period.
func Usage(b domain.Budget, categoryName string, transactions []domain.Transaction, p Period) domain.BudgetUsage {
	spent := Spent(b, transactions, p)
	pct := Utilization(b.Amount, spent)
	if categoryName == "" {
		categoryName = domain.UncategorizedLabel
	}
	return domain.BudgetUsage{
		Budget:       b,
		CategoryName: categoryName,
		Spent:        spent,
		Percentage:   pct,
		Status:       StatusFor(pct),
	}
}

// BudgetWindow returns the start and optional end of a budget created at now.
// Monthly budgets start on the first of the month and never end; weekly
// budgets run Sunday to Saturday of the current week.
func BudgetWindow(period domain.BudgetPeriod, now time.Time) (domain.Date, *domain.Date) {
	if period == domain.BudgetWeekly {
		start := domain.NewDate(now.Year(), now.Month(), now.Day()-int(now.Weekday()))
		end := domain.NewDate(start.Year(), start.Month(), start.Day()+6)
		return start, &end
	}
	return domain.NewDate(now.Year(), now.Month(), 1), nil
}
