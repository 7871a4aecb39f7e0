package port

import (
	"context"

	"github.com/sanchez1595/Personal-finance/internal/domain"
)

// BudgetStore handles budget operations. Spending against a budget is
// derived from transactions and never stored.
type BudgetStore interface {
	ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error)
	GetBudget(ctx context.Context, userID, budgetID string) (*domain.Budget, error)
	CreateBudget(ctx context.Context, b *domain.Budget) (*domain.Budget, error)
	UpdateBudget(ctx context.Context, userID, budgetID string, in *domain.BudgetInput) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, userID, budgetID string) error
}
