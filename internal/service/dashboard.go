package service

import (
	"context"
	"time"

	"github.com/sanchez1595/Personal-finance/internal/domain"
	"github.com/sanchez1595/Personal-finance/internal/finance"
	"github.com/sanchez1595/Personal-finance/internal/port"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	recentTransactions = 5
	dashboardGoals     = 4
)

// Dashboard builds the month summary: totals, savings, health score, the
// most recent transactions and a few active goals.
//
// The four collections are fetched concurrently; any failure aborts the
// whole view.
func (s *FinanceService) Dashboard(ctx context.Context, userID, month string) (*domain.Dashboard, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.Dashboard")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", userID))
	defer s.observe("dashboard", time.Now())

	period, err := s.resolvePeriod(month)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("period", period.String()))

	var (
		accounts     []domain.Account
		transactions []domain.Transaction
		goals        []domain.Goal
		sources      []domain.IncomeSource
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		accounts, err = s.store.ListAccounts(gctx, userID)
		if err != nil {
			return s.storeErr(ctx, "list_accounts", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		transactions, err = s.store.ListTransactions(gctx, userID, port.TransactionFilter{
			From: period.Start(),
			To:   period.End(),
		})
		if err != nil {
			return s.storeErr(ctx, "list_transactions", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		goals, err = s.store.ListGoals(gctx, userID)
		if err != nil {
			return s.storeErr(ctx, "list_goals", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		sources, err = s.store.ListIncomeSources(gctx, userID)
		if err != nil {
			return s.storeErr(ctx, "list_income_sources", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("dashboard fetch failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	summary := finance.Summarize(transactions, accounts)
	s.metrics.ObserveHealthScore(summary.HealthScore)

	now := s.now()
	active := make([]domain.GoalProgress, 0, dashboardGoals)
	for _, goal := range goals {
		if goal.Status != domain.GoalActive {
			continue
		}
		active = append(active, finance.DecorateGoal(goal, now))
		if len(active) == dashboardGoals {
			break
		}
	}

	return &domain.Dashboard{
		Period:             period.String(),
		Summary:            summary,
		MonthlyIncome:      finance.MonthlyIncomeTotal(sources),
		Insights:           finance.Insights(summary),
		RecentTransactions: transactions[:min(recentTransactions, len(transactions))],
		ActiveGoals:        active,
	}, nil
}

// Analysis breaks the month's expenses down by category and compares
// expenses and income with the previous month.
func (s *FinanceService) Analysis(ctx context.Context, userID, month string) (*domain.Analysis, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.Analysis")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", userID))
	defer s.observe("analysis", time.Now())

	period, err := s.resolvePeriod(month)
	if err != nil {
		return nil, err
	}
	previous := period.Previous()

	var current, prior []domain.Transaction

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.store.ListTransactions(gctx, userID, port.TransactionFilter{From: period.Start(), To: period.End()})
		if err != nil {
			return s.storeErr(ctx, "list_transactions", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		prior, err = s.store.ListTransactions(gctx, userID, port.TransactionFilter{From: previous.Start(), To: previous.End()})
		if err != nil {
			return s.storeErr(ctx, "list_transactions", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	categories := finance.AggregateByCategory(current)
	expenses := finance.CompareByType(current, prior, domain.TransactionExpense)

	return &domain.Analysis{
		Period:         period.String(),
		PreviousPeriod: previous.String(),
		TotalExpenses:  finance.SumByType(current, domain.TransactionExpense),
		Categories:     categories,
		Expenses:       expenses,
		Income:         finance.CompareByType(current, prior, domain.TransactionIncome),
		Insights:       finance.SpendingInsights(categories, expenses),
	}, nil
}

// AvailablePeriods lists the months (YYYY-MM) holding at least one
// transaction, newest first.
func (s *FinanceService) AvailablePeriods(ctx context.Context, userID string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.AvailablePeriods")
	defer span.End()

	txs, err := s.store.ListTransactions(ctx, userID, port.TransactionFilter{})
	if err != nil {
		return nil, s.storeErr(ctx, "list_transactions", err)
	}

	periods := finance.AvailablePeriods(txs)
	out := make([]string, len(periods))
	for i, p := range periods {
		out[i] = p.String()
	}
	return out, nil
}
