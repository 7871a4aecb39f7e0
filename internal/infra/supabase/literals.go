package supabase

import "github.com/sanchez1595/Personal-finance/internal/domain"

// literals maps a domain enum to the value stored in the database.
type literals[T ~string] struct {
	toStore  map[T]string
	toDomain map[string]T
}

func newLiterals[T ~string](pairs map[T]string) literals[T] {
	l := literals[T]{toStore: pairs, toDomain: make(map[string]T, len(pairs))}
	for d, s := range pairs {
		l.toDomain[s] = d
	}
	return l
}

func (l literals[T]) store(v T) string {
	if s, ok := l.toStore[v]; ok {
		return s
	}
	return string(v)
}

// domain translates a stored literal, returning fallback when it is unknown.
func (l literals[T]) domain(s string, fallback T) T {
	if v, ok := l.toDomain[s]; ok {
		return v
	}
	return fallback
}

var (
	transactionTypes = newLiterals(map[domain.TransactionType]string{
		domain.TransactionIncome:  "ingreso",
		domain.TransactionExpense: "gasto",
	})

	accountTypes = newLiterals(map[domain.AccountType]string{
		domain.AccountCash:       "efectivo",
		domain.AccountSavings:    "ahorro",
		domain.AccountChecking:   "corriente",
		domain.AccountCredit:     "credito",
		domain.AccountDebit:      "debito",
		domain.AccountPrepaid:    "prepago",
		domain.AccountInvestment: "inversion",
		domain.AccountBank:       "banco",
		domain.AccountCard:       "tarjeta",
		domain.AccountOther:      "otro",
	})

	incomeTypes = newLiterals(map[domain.IncomeType]string{
		domain.IncomeFixed:    "fijo",
		domain.IncomeVariable: "variable",
	})

	incomeFrequencies = newLiterals(map[domain.IncomeFrequency]string{
		domain.FrequencyMonthly:  "mensual",
		domain.FrequencyBiweekly: "quincenal",
		domain.FrequencyWeekly:   "semanal",
		domain.FrequencyOneOff:   "unico",
	})

	goalTypes = newLiterals(map[domain.GoalType]string{
		domain.GoalEmergency: "emergencia",
		domain.GoalPurchase:  "compra",
		domain.GoalDebt:      "deuda",
		domain.GoalSavings:   "ahorro",
		domain.GoalCustom:    "personalizada",
	})

	goalStatuses = newLiterals(map[domain.GoalStatus]string{
		domain.GoalActive:    "activa",
		domain.GoalPaused:    "pausada",
		domain.GoalCompleted: "completada",
	})

	budgetPeriods = newLiterals(map[domain.BudgetPeriod]string{
		domain.BudgetMonthly: "mensual",
		domain.BudgetWeekly:  "semanal",
	})
)
