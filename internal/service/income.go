package service

import (
	"context"
	"strings"

	"github.com/sanchez1595/Personal-finance/internal/domain"
	"github.com/sanchez1595/Personal-finance/internal/finance"
)

// ============================================================
// Income sources
// ============================================================

// ListIncomeSources returns the active sources and the monthly income they add up to.
func (s *FinanceService) ListIncomeSources(ctx context.Context, userID string) (*domain.IncomeOverview, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.ListIncomeSources")
	defer span.End()

	sources, err := s.store.ListIncomeSources(ctx, userID)
	if err != nil {
		return nil, s.storeErr(ctx, "list_income_sources", err)
	}
	return &domain.IncomeOverview{
		Sources:      sources,
		MonthlyTotal: finance.MonthlyIncomeTotal(sources),
	}, nil
}

func (s *FinanceService) CreateIncomeSource(ctx context.Context, userID string, in *domain.IncomeSourceInput) (*domain.IncomeSource, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.CreateIncomeSource")
	defer span.End()

	if err := s.validateIncome(in); err != nil {
		return nil, err
	}
	src, err := s.store.CreateIncomeSource(ctx, userID, in)
	if err != nil {
		return nil, s.storeErr(ctx, "create_income_source", err)
	}
	return src, nil
}

func (s *FinanceService) UpdateIncomeSource(ctx context.Context, userID, sourceID string, in *domain.IncomeSourceInput) (*domain.IncomeSource, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.UpdateIncomeSource")
	defer span.End()

	if err := s.validateIncome(in); err != nil {
		return nil, err
	}
	src, err := s.store.UpdateIncomeSource(ctx, userID, sourceID, in)
	if err != nil {
		return nil, s.storeErr(ctx, "update_income_source", err)
	}
	return src, nil
}

// DeleteIncomeSource deactivates the source; past transactions keep their link.
func (s *FinanceService) DeleteIncomeSource(ctx context.Context, userID, sourceID string) error {
	ctx, span := tracer.Start(ctx, "FinanceService.DeleteIncomeSource")
	defer span.End()

	if err := s.store.DeactivateIncomeSource(ctx, userID, sourceID); err != nil {
		return s.storeErr(ctx, "deactivate_income_source", err)
	}
	return nil
}

// validateIncome defaults a missing type to fixed and a missing frequency
// to monthly.
func (s *FinanceService) validateIncome(in *domain.IncomeSourceInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return s.invalid("name", "name is required")
	}
	if !in.Amount.IsPositive() {
		return s.invalid("amount", "must be greater than 0")
	}
	if in.Type == "" {
		in.Type = domain.IncomeFixed
	}
	if !in.Type.Valid() {
		return s.invalid("type", "must be fixed or variable")
	}
	if in.Frequency == "" {
		in.Frequency = domain.FrequencyMonthly
	}
	if !in.Frequency.Valid() {
		return s.invalid("frequency", "unknown frequency")
	}
	return nil
}
