package finance

import "github.com/sanchez1595/Personal-finance/internal/domain"

// Spending insight thresholds, in percent.
const (
	ConcentrationThreshold = 40
	IncreaseThreshold      = 20
	DecreaseThreshold      = -10
)

// SpendingInsights derives the analysis hints from a sorted category
// breakdown (as returned by AggregateByCategory) and the month-over-month
// expense comparison.
func SpendingInsights(categories []domain.CategoryExpense, expenses domain.MonthlyComparison) domain.SpendingInsights {
	var in domain.SpendingInsights
	if len(categories) > 0 && categories[0].Percentage > ConcentrationThreshold {
		top := categories[0]
		in.TopCategory = &top
	}
	in.SpendingIncrease = expenses.ChangePercent > IncreaseThreshold
	in.SpendingDecrease = expenses.ChangePercent < DecreaseThreshold
	if len(categories) >= 3 {
		for _, c := range categories[:3] {
			in.TopThreeShare += c.Percentage
		}
	}
	return in
}
