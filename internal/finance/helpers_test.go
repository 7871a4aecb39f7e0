package finance

import (
	"time"

	"github.com/sanchez1595/Personal-finance/internal/domain"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func expense(category, name, amount string, d domain.Date) domain.Transaction {
	return domain.Transaction{
		CategoryID:   category,
		CategoryName: name,
		Amount:       dec(amount),
		Type:         domain.TransactionExpense,
		Date:         d,
	}
}

func income(amount string, d domain.Date) domain.Transaction {
	return domain.Transaction{
		CategoryID:   "salary",
		CategoryName: "Salary",
		Amount:       dec(amount),
		Type:         domain.TransactionIncome,
		Date:         d,
	}
}

func day(y int, m time.Month, d int) domain.Date {
	return domain.NewDate(y, m, d)
}
