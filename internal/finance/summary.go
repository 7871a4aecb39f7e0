package finance

import (
	"math"

	"github.com/sanchez1595/Personal-finance/internal/domain"

	"github.com/shopspring/decimal"
)

// LowSavingsRateThreshold is the savings rate (percent) under which the
// dashboard nudges the user to save more.
const LowSavingsRateThreshold = 10

// SumByType totals the amounts of one transaction type.
func SumByType(transactions []domain.Transaction, t domain.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Type == t {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// AvailableBalance sums the balances of the active accounts.
func AvailableBalance(accounts []domain.Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		if a.IsActive {
			total = total.Add(a.Balance)
		}
	}
	return total
}

// Summarize derives the period totals, savings ratios, emergency-fund coverage
// and health score from one period's transactions and the user's accounts.
//
// Every active account counts towards the available balance, including
// credit and investment accounts.
func Summarize(transactions []domain.Transaction, accounts []domain.Account) domain.PeriodSummary {
	income := SumByType(transactions, domain.TransactionIncome)
	expenses := SumByType(transactions, domain.TransactionExpense)
	savings := income.Sub(expenses)
	available := AvailableBalance(accounts)

	rate := Percent(savings, income)
	ratio := Ratio(savings, income)
	hasFund := HasEmergencyFund(available, expenses)
	score := Score(rate, hasFund, ratio)

	return domain.PeriodSummary{
		Income:               income,
		Expenses:             expenses,
		Savings:              savings,
		SavingsRate:          rate,
		SavingsToIncomeRatio: ratio,
		Available:            available,
		EmergencyFundMonths:  Ratio(available, expenses),
		HasEmergencyFund:     hasFund,
		HealthScore:          score,
		HealthBand:           Band(score),
	}
}

// Insights derives the dashboard hints from a summary.
func Insights(s domain.PeriodSummary) domain.DashboardInsights {
	return domain.DashboardInsights{
		NoActivity:     s.Income.IsZero() && s.Expenses.IsZero(),
		LowSavingsRate: s.Income.IsPositive() && math.Round(s.SavingsRate) < LowSavingsRateThreshold,
	}
}

// MonthlyIncomeTotal sums the active income sources paid monthly.
func MonthlyIncomeTotal(sources []domain.IncomeSource) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sources {
		if s.IsActive && s.Frequency == domain.FrequencyMonthly {
			total = total.Add(s.Amount)
		}
	}
	return total
}
