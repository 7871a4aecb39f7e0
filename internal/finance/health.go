package finance

import (
	"github.com/sanchez1595/Personal-finance/internal/domain"

	"github.com/shopspring/decimal"
)

// EmergencyFundMonths is how many months of expenses the available balance
// must cover to count as an emergency fund.
const EmergencyFundMonths = 3

const (
	maxScore = 100
	minScore = 0
)

// Score computes the 0-100 financial health score.
//
//	savings rate (percent)      >=20: 40  >=10: 30  >0: 20  else 0
//	emergency fund              yes: 30   no: 10
//	savings / income (ratio)    >=0.2: 30 >=0.1: 20 >0: 10  else 0
func Score(savingsRate float64, hasEmergencyFund bool, savingsToIncomeRatio float64) int {
	score := 0

	switch {
	case savingsRate >= 20:
		score += 40
	case savingsRate >= 10:
		score += 30
	case savingsRate > 0:
		score += 20
	}

	// A baseline of 10 is always granted.
	if hasEmergencyFund {
		score += 30
	} else {
		score += 10
	}

	switch {
	case savingsToIncomeRatio >= 0.2:
		score += 30
	case savingsToIncomeRatio >= 0.1:
		score += 20
	case savingsToIncomeRatio > 0:
		score += 10
	}

	return clamp(score, minScore, maxScore)
}

// HasEmergencyFund reports whether available covers EmergencyFundMonths
// times the period's expenses. With no expenses any non-negative balance
// qualifies.
func HasEmergencyFund(available, periodExpenses decimal.Decimal) bool {
	return available.GreaterThanOrEqual(periodExpenses.Mul(decimal.NewFromInt(EmergencyFundMonths)))
}

// Band maps a score to its display band.
func Band(score int) domain.HealthBand {
	switch {
	case score >= 80:
		return domain.HealthExcellent
	case score >= 60:
		return domain.HealthGood
	case score >= 40:
		return domain.HealthNeedsAttention
	default:
		return domain.HealthCritical
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
