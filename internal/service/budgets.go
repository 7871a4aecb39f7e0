package service

import (
	"context"

	"github.com/sanchez1595/Personal-finance/internal/domain"
	"github.com/sanchez1595/Personal-finance/internal/finance"
	"github.com/sanchez1595/Personal-finance/internal/port"

	"golang.org/x/sync/errgroup"
)

// ============================================================
// Budgets
// ============================================================

// ListBudgets returns the budgets whose window overlaps the month, each with
// its spending, utilization and status.
func (s *FinanceService) ListBudgets(ctx context.Context, userID, month string) (*domain.BudgetsOverview, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.ListBudgets")
	defer span.End()

	period, err := s.resolvePeriod(month)
	if err != nil {
		return nil, err
	}

	var (
		budgets      []domain.Budget
		transactions []domain.Transaction
		categories   []domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		budgets, err = s.store.ListBudgets(gctx, userID)
		if err != nil {
			return s.storeErr(ctx, "list_budgets", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		transactions, err = s.store.ListTransactions(gctx, userID, port.TransactionFilter{From: period.Start(), To: period.End()})
		if err != nil {
			return s.storeErr(ctx, "list_transactions", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = s.Categories(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := categoryNames(categories)
	usage := make([]domain.BudgetUsage, 0, len(budgets))
	for _, b := range budgets {
		if !finance.ActiveIn(b, period) {
			continue
		}
		usage = append(usage, finance.Usage(b, names[b.CategoryID], transactions, period))
	}
	return &domain.BudgetsOverview{Period: period.String(), Budgets: usage}, nil
}

// CreateBudget opens a budget starting in the current month, or the current
// week for weekly budgets.
func (s *FinanceService) CreateBudget(ctx context.Context, userID string, in *domain.BudgetInput) (*domain.Budget, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.CreateBudget")
	defer span.End()

	if err := s.validateBudget(ctx, userID, in); err != nil {
		return nil, err
	}

	start, end := finance.BudgetWindow(in.Period, s.now())
	b, err := s.store.CreateBudget(ctx, &domain.Budget{
		UserID:     userID,
		CategoryID: in.CategoryID,
		Amount:     in.Amount,
		Period:     in.Period,
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		return nil, s.storeErr(ctx, "create_budget", err)
	}
	return b, nil
}

// UpdateBudget changes category, amount or period. The window is kept.
func (s *FinanceService) UpdateBudget(ctx context.Context, userID, budgetID string, in *domain.BudgetInput) (*domain.Budget, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.UpdateBudget")
	defer span.End()

	if err := s.validateBudget(ctx, userID, in); err != nil {
		return nil, err
	}
	b, err := s.store.UpdateBudget(ctx, userID, budgetID, in)
	if err != nil {
		return nil, s.storeErr(ctx, "update_budget", err)
	}
	return b, nil
}

func (s *FinanceService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	ctx, span := tracer.Start(ctx, "FinanceService.DeleteBudget")
	defer span.End()

	if err := s.store.DeleteBudget(ctx, userID, budgetID); err != nil {
		return s.storeErr(ctx, "delete_budget", err)
	}
	return nil
}

func (s *FinanceService) validateBudget(ctx context.Context, userID string, in *domain.BudgetInput) error {
	if !in.Amount.IsPositive() {
		return s.invalid("amount", "must be greater than 0")
	}
	if in.Period == "" {
		in.Period = domain.BudgetMonthly
	}
	if !in.Period.Valid() {
		return s.invalid("period", "must be monthly or weekly")
	}
	return s.requireCategory(ctx, userID, in.CategoryID)
}
