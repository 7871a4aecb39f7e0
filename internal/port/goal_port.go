package port

import (
	"context"

	"github.com/sanchez1595/Personal-finance/internal/domain"
)

// GoalStore handles savings goals and their contributions.
type GoalStore interface {
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
	GetGoal(ctx context.Context, userID, goalID string) (*domain.Goal, error)
	CreateGoal(ctx context.Context, userID string, in *domain.GoalInput) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, userID, goalID string, in *domain.GoalInput) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID string) error

	UpdateGoalStatus(ctx context.Context, userID, goalID string, status domain.GoalStatus) error

	// AddContribution records c and raises the goal's current_amount by
	// c.Amount as one step, returning the goal as stored afterwards.
	AddContribution(ctx context.Context, c *domain.GoalContribution) (*domain.Goal, error)
}
