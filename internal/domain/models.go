package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UncategorizedLabel is shown for transactions whose category is missing.
const UncategorizedLabel = "Uncategorized"

// ============================================================
// Transactions
// ============================================================

// TransactionType carries the direction of a transaction. Amounts are always
// non-negative; income and expense are told apart by this field only.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Valid reports whether t is income or expense.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction is a single income or expense record.
type Transaction struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	AccountID      string          `json:"account_id"`
	AccountName    string          `json:"account_name,omitempty"`
	CategoryID     string          `json:"category_id"`
	CategoryName   string          `json:"category_name,omitempty"`
	IncomeSourceID *string         `json:"income_source_id,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Type           TransactionType `json:"type"`
	Date           Date            `json:"date"`
	Description    string          `json:"description"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// TransactionInput is the create payload for a transaction.
type TransactionInput struct {
	AccountID      string          `json:"account_id"`
	CategoryID     string          `json:"category_id"`
	IncomeSourceID *string         `json:"income_source_id,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Type           TransactionType `json:"type"`
	Date           Date            `json:"date"`
	Description    string          `json:"description"`
	Notes          string          `json:"notes,omitempty"`
}

// ============================================================
// Categories
// ============================================================

// Category groups transactions. A nil UserID marks a global category shared
// by every user.
type Category struct {
	ID               string  `json:"id"`
	UserID           *string `json:"user_id,omitempty"`
	Name             string  `json:"name"`
	Icon             string  `json:"icon"`
	Color            string  `json:"color"`
	ParentCategoryID *string `json:"parent_category_id,omitempty"`
	IsFixedExpense   bool    `json:"is_fixed_expense"`
}

// ============================================================
// Income sources
// ============================================================

// IncomeType distinguishes fixed salaries from variable earnings.
type IncomeType string

const (
	IncomeFixed    IncomeType = "fixed"
	IncomeVariable IncomeType = "variable"
)

// Valid reports whether t is a known income type.
func (t IncomeType) Valid() bool {
	return t == IncomeFixed || t == IncomeVariable
}

// IncomeFrequency is how often an income source pays out.
type IncomeFrequency string

const (
	FrequencyMonthly  IncomeFrequency = "monthly"
	FrequencyBiweekly IncomeFrequency = "biweekly"
	FrequencyWeekly   IncomeFrequency = "weekly"
	FrequencyOneOff   IncomeFrequency = "one-off"
)

// Valid reports whether f is a known frequency.
func (f IncomeFrequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyBiweekly, FrequencyWeekly, FrequencyOneOff:
		return true
	}
	return false
}

// IncomeSource is a recurring or one-off origin of income.
type IncomeSource struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Type        IncomeType      `json:"type"`
	Frequency   IncomeFrequency `json:"frequency"`
	Description string          `json:"description,omitempty"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}

// IncomeSourceInput is the create/update payload for an income source.
type IncomeSourceInput struct {
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Type        IncomeType      `json:"type"`
	Frequency   IncomeFrequency `json:"frequency"`
	Description string          `json:"description,omitempty"`
}

// ============================================================
// Goals
// ============================================================

// GoalType is the purpose of a savings goal.
type GoalType string

const (
	GoalEmergency GoalType = "emergency"
	GoalPurchase  GoalType = "purchase"
	GoalDebt      GoalType = "debt"
	GoalSavings   GoalType = "savings"
	GoalCustom    GoalType = "custom"
)

// Valid reports whether t is a known goal type.
func (t GoalType) Valid() bool {
	switch t {
	case GoalEmergency, GoalPurchase, GoalDebt, GoalSavings, GoalCustom:
		return true
	}
	return false
}

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalPaused    GoalStatus = "paused"
	GoalCompleted GoalStatus = "completed"
)

// Goal is a savings target. CurrentAmount only grows through contributions;
// a goal becomes completed once CurrentAmount reaches TargetAmount and the
// user confirms it.
type Goal struct {
	ID                  string          `json:"id"`
	UserID              string          `json:"user_id"`
	Name                string          `json:"name"`
	Type                GoalType        `json:"type"`
	TargetAmount        decimal.Decimal `json:"target_amount"`
	CurrentAmount       decimal.Decimal `json:"current_amount"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	Deadline            Date            `json:"deadline"`
	Status              GoalStatus      `json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
}

// GoalInput is the create/update payload for a goal.
type GoalInput struct {
	Name                string          `json:"name"`
	Type                GoalType        `json:"type"`
	TargetAmount        decimal.Decimal `json:"target_amount"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	Deadline            Date            `json:"deadline"`
}

// GoalContribution records money put towards a goal.
type GoalContribution struct {
	ID               string          `json:"id"`
	GoalID           string          `json:"goal_id"`
	UserID           string          `json:"user_id"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description,omitempty"`
	ContributionDate Date            `json:"contribution_date"`
}

// ContributionInput is the payload for POST /goals/{id}/contributions.
type ContributionInput struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// ============================================================
// Budgets
// ============================================================

// BudgetPeriod is the recurrence of a budget.
type BudgetPeriod string

const (
	BudgetMonthly BudgetPeriod = "monthly"
	BudgetWeekly  BudgetPeriod = "weekly"
)

// Valid reports whether p is monthly or weekly.
func (p BudgetPeriod) Valid() bool {
	return p == BudgetMonthly || p == BudgetWeekly
}

// Budget caps spending in one category. A nil EndDate means open-ended.
type Budget struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	CategoryID string          `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Period     BudgetPeriod    `json:"period"`
	StartDate  Date            `json:"start_date"`
	EndDate    *Date           `json:"end_date,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// BudgetInput is the create/update payload for a budget.
type BudgetInput struct {
	CategoryID string          `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Period     BudgetPeriod    `json:"period"`
}
