package domain

import "github.com/shopspring/decimal"

// ============================================================
// Derived views (computed, never persisted)
// ============================================================

// CategoryExpense is the spending of one category within a period.
type CategoryExpense struct {
	CategoryID       string          `json:"category_id"`
	CategoryName     string          `json:"category_name"`
	Total            decimal.Decimal `json:"total"`
	Percentage       float64         `json:"percentage"`
	TransactionCount int             `json:"transaction_count"`
}

// MonthlyComparison compares a figure against the previous calendar month.
type MonthlyComparison struct {
	Current       decimal.Decimal `json:"current"`
	Previous      decimal.Decimal `json:"previous"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent float64         `json:"changePercent"`
}

// HealthBand is the display label for a health score.
type HealthBand string

const (
	HealthExcellent      HealthBand = "excellent"
	HealthGood           HealthBand = "good"
	HealthNeedsAttention HealthBand = "needs_attention"
	HealthCritical       HealthBand = "critical"
)

// PeriodSummary holds the totals and derived ratios of one month.
type PeriodSummary struct {
	Income               decimal.Decimal `json:"income"`
	Expenses             decimal.Decimal `json:"expenses"`
	Savings              decimal.Decimal `json:"savings"`
	SavingsRate          float64         `json:"savings_rate"`
	SavingsToIncomeRatio float64         `json:"savings_to_income_ratio"`
	Available            decimal.Decimal `json:"available"`
	EmergencyFundMonths  float64         `json:"emergency_fund_months"`
	HasEmergencyFund     bool            `json:"has_emergency_fund"`
	HealthScore          int             `json:"health_score"`
	HealthBand           HealthBand      `json:"health_band"`
}

// DashboardInsights are the hints the dashboard shows above the fold.
type DashboardInsights struct {
	NoActivity     bool `json:"no_activity"`
	LowSavingsRate bool `json:"low_savings_rate"`
}

// Dashboard is returned by GET /v1/dashboard.
type Dashboard struct {
	Period             string            `json:"period"`
	Summary            PeriodSummary     `json:"summary"`
	MonthlyIncome      decimal.Decimal   `json:"monthly_income"`
	Insights           DashboardInsights `json:"insights"`
	RecentTransactions []Transaction     `json:"recent_transactions"`
	ActiveGoals        []GoalProgress    `json:"active_goals"`
}

// SpendingInsights flags patterns in a month's category breakdown.
type SpendingInsights struct {
	// TopCategory is set when the largest category exceeds the
	// concentration threshold.
	TopCategory      *CategoryExpense `json:"top_category,omitempty"`
	SpendingIncrease bool             `json:"spending_increase"`
	SpendingDecrease bool             `json:"spending_decrease"`
	// TopThreeShare is the percentage of spending in the three largest
	// categories, or 0 with fewer than three.
	TopThreeShare float64 `json:"top_three_share"`
}

// Analysis is returned by GET /v1/analysis.
type Analysis struct {
	Period         string            `json:"period"`
	PreviousPeriod string            `json:"previous_period"`
	TotalExpenses  decimal.Decimal   `json:"total_expenses"`
	Categories     []CategoryExpense `json:"categories"`
	Expenses       MonthlyComparison `json:"expenses"`
	Income         MonthlyComparison `json:"income"`
	Insights       SpendingInsights  `json:"insights"`
}

// GoalProgress decorates a goal with its computed progress.
type GoalProgress struct {
	Goal
	Progress        float64 `json:"progress"`
	MonthsRemaining int     `json:"months_remaining"`
}

// GoalSummary aggregates the active goals.
type GoalSummary struct {
	TotalSaved        decimal.Decimal `json:"total_saved"`
	TotalTarget       decimal.Decimal `json:"total_target"`
	MonthlyCommitment decimal.Decimal `json:"monthly_commitment"`
	Active            int             `json:"active"`
	Paused            int             `json:"paused"`
	Completed         int             `json:"completed"`
}

// GoalsOverview is returned by GET /v1/goals.
type GoalsOverview struct {
	Goals   []GoalProgress `json:"goals"`
	Summary GoalSummary    `json:"summary"`
}

// ContributionResult is returned after a contribution is recorded.
// ReachesTarget tells the caller to offer completing the goal.
type ContributionResult struct {
	Goal          *Goal             `json:"goal"`
	Contribution  *GoalContribution `json:"contribution"`
	ReachesTarget bool              `json:"reaches_target"`
}

// BudgetStatus is the display banding of budget utilization.
type BudgetStatus string

const (
	BudgetOnTrack    BudgetStatus = "on_track"
	BudgetWatch      BudgetStatus = "watch"
	BudgetNearLimit  BudgetStatus = "near_limit"
	BudgetOverBudget BudgetStatus = "over_budget"
)

// BudgetUsage decorates a budget with its spending in a period.
type BudgetUsage struct {
	Budget
	CategoryName string          `json:"category_name"`
	Spent        decimal.Decimal `json:"spent"`
	Percentage   float64         `json:"percentage"`
	Status       BudgetStatus    `json:"status"`
}

// BudgetsOverview is returned by GET /v1/budgets.
type BudgetsOverview struct {
	Period  string        `json:"period"`
	Budgets []BudgetUsage `json:"budgets"`
}

// IncomeOverview is returned by GET /v1/income-sources.
type IncomeOverview struct {
	Sources      []IncomeSource  `json:"sources"`
	MonthlyTotal decimal.Decimal `json:"monthly_total"`
}

// TransactionsOverview is returned by GET /v1/transactions.
type TransactionsOverview struct {
	Period        string          `json:"period,omitempty"`
	Transactions  []Transaction   `json:"transactions"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
}

// AccountsOverview is returned by GET /v1/accounts.
type AccountsOverview struct {
	Accounts     []Account       `json:"accounts"`
	TotalBalance decimal.Decimal `json:"total_balance"`
}
