package service

import (
	"context"
	"strings"

	"github.com/sanchez1595/Personal-finance/internal/domain"
	"github.com/sanchez1595/Personal-finance/internal/finance"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Goals
// ============================================================

// ListGoals returns every goal decorated with progress, plus the totals of
// the active ones.
func (s *FinanceService) ListGoals(ctx context.Context, userID string) (*domain.GoalsOverview, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.ListGoals")
	defer span.End()

	goals, err := s.store.ListGoals(ctx, userID)
	if err != nil {
		return nil, s.storeErr(ctx, "list_goals", err)
	}

	now := s.now()
	decorated := make([]domain.GoalProgress, len(goals))
	for i, g := range goals {
		decorated[i] = finance.DecorateGoal(g, now)
	}
	return &domain.GoalsOverview{
		Goals:   decorated,
		Summary: finance.SummarizeGoals(goals),
	}, nil
}

// CreateGoal opens a new active goal with nothing saved yet. The deadline
// must be after today.
func (s *FinanceService) CreateGoal(ctx context.Context, userID string, in *domain.GoalInput) (*domain.Goal, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.CreateGoal")
	defer span.End()

	if err := s.validateGoal(in); err != nil {
		return nil, err
	}
	if !in.Deadline.After(s.today()) {
		return nil, s.invalid("deadline", "must be in the future")
	}
	goal, err := s.store.CreateGoal(ctx, userID, in)
	if err != nil {
		return nil, s.storeErr(ctx, "create_goal", err)
	}
	return goal, nil
}

// UpdateGoal edits a goal's definition. Saved amount and status are untouched.
func (s *FinanceService) UpdateGoal(ctx context.Context, userID, goalID string, in *domain.GoalInput) (*domain.Goal, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.UpdateGoal")
	defer span.End()

	if err := s.validateGoal(in); err != nil {
		return nil, err
	}
	goal, err := s.store.UpdateGoal(ctx, userID, goalID, in)
	if err != nil {
		return nil, s.storeErr(ctx, "update_goal", err)
	}
	return goal, nil
}

func (s *FinanceService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	ctx, span := tracer.Start(ctx, "FinanceService.DeleteGoal")
	defer span.End()

	if err := s.store.DeleteGoal(ctx, userID, goalID); err != nil {
		return s.storeErr(ctx, "delete_goal", err)
	}
	return nil
}

// Contribute records money put towards a goal and raises its saved amount.
// Reaching the target does not complete the goal; the result only says
// whether completion can be offered.
func (s *FinanceService) Contribute(ctx context.Context, userID, goalID string, in *domain.ContributionInput) (*domain.ContributionResult, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.Contribute")
	defer span.End()
	span.SetAttributes(attribute.String("goal.id", goalID))

	goal, err := s.store.GetGoal(ctx, userID, goalID)
	if err != nil {
		return nil, s.storeErr(ctx, "get_goal", err)
	}
	if goal.Status == domain.GoalCompleted {
		return nil, &domain.ErrConflict{Message: "goal is already completed"}
	}

	if _, err := finance.Contribute(*goal, in.Amount); err != nil {
		s.metrics.IncrValidationFailure("amount")
		return nil, err
	}

	contribution := &domain.GoalContribution{
		ID:               uuid.NewString(),
		GoalID:           goal.ID,
		UserID:           userID,
		Amount:           in.Amount,
		Description:      strings.TrimSpace(in.Description),
		ContributionDate: s.today(),
	}
	// The store adds to the saved amount; concurrent contributions each count.
	updated, err := s.store.AddContribution(ctx, contribution)
	if err != nil {
		return nil, s.storeErr(ctx, "add_contribution", err)
	}
	s.metrics.IncrGoalContribution()

	reaches := finance.CanComplete(*updated)
	s.logger.Info("goal contribution recorded",
		zap.String("user_id", userID),
		zap.String("goal_id", updated.ID),
		zap.String("amount", in.Amount.String()),
		zap.String("current_amount", updated.CurrentAmount.String()),
		zap.Bool("reaches_target", reaches),
	)
	return &domain.ContributionResult{
		Goal:          updated,
		Contribution:  contribution,
		ReachesTarget: reaches,
	}, nil
}

// CompleteGoal marks a goal completed once its target is reached.
// Completing an already completed goal is a no-op.
func (s *FinanceService) CompleteGoal(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.CompleteGoal")
	defer span.End()

	goal, err := s.store.GetGoal(ctx, userID, goalID)
	if err != nil {
		return nil, s.storeErr(ctx, "get_goal", err)
	}
	if goal.Status == domain.GoalCompleted {
		return goal, nil
	}
	if !finance.CanComplete(*goal) {
		return nil, &domain.ErrConflict{Message: "goal has not reached its target"}
	}
	if err := s.store.UpdateGoalStatus(ctx, userID, goalID, domain.GoalCompleted); err != nil {
		return nil, s.storeErr(ctx, "update_goal_status", err)
	}
	s.metrics.IncrGoalCompletion()
	goal.Status = domain.GoalCompleted
	return goal, nil
}

// TogglePause flips a goal between active and paused.
func (s *FinanceService) TogglePause(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.TogglePause")
	defer span.End()

	goal, err := s.store.GetGoal(ctx, userID, goalID)
	if err != nil {
		return nil, s.storeErr(ctx, "get_goal", err)
	}

	next := domain.GoalPaused
	switch goal.Status {
	case domain.GoalCompleted:
		return nil, &domain.ErrConflict{Message: "completed goals cannot be paused"}
	case domain.GoalPaused:
		next = domain.GoalActive
	}
	if err := s.store.UpdateGoalStatus(ctx, userID, goalID, next); err != nil {
		return nil, s.storeErr(ctx, "update_goal_status", err)
	}
	goal.Status = next
	return goal, nil
}

// validateGoal defaults a missing type to custom.
func (s *FinanceService) validateGoal(in *domain.GoalInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return s.invalid("name", "name is required")
	}
	if in.Type == "" {
		in.Type = domain.GoalCustom
	}
	if !in.Type.Valid() {
		return s.invalid("type", "unknown goal type")
	}
	if !in.TargetAmount.IsPositive() {
		return s.invalid("target_amount", "must be greater than 0")
	}
	if in.Deadline.IsZero() {
		return s.invalid("deadline", "deadline is required")
	}
	if !in.MonthlyContribution.IsPositive() {
		return s.invalid("monthly_contribution", "must be greater than 0")
	}
	return nil
}
