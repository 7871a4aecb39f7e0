package service

import (
	"context"
	"strings"

	"github.com/sanchez1595/Personal-finance/internal/domain"
	"github.com/sanchez1595/Personal-finance/internal/finance"

	"go.opentelemetry.io/otel/attribute"
)

// ============================================================
// Accounts
// ============================================================

// ListAccounts returns the user's active accounts and their total balance.
func (s *FinanceService) ListAccounts(ctx context.Context, userID string) (*domain.AccountsOverview, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.ListAccounts")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", userID))

	accounts, err := s.store.ListAccounts(ctx, userID)
	if err != nil {
		return nil, s.storeErr(ctx, "list_accounts", err)
	}
	return &domain.AccountsOverview{
		Accounts:     accounts,
		TotalBalance: finance.AvailableBalance(accounts),
	}, nil
}

func (s *FinanceService) CreateAccount(ctx context.Context, userID string, in *domain.AccountInput) (*domain.Account, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.CreateAccount")
	defer span.End()

	if err := s.validateAccount(in); err != nil {
		return nil, err
	}
	acc, err := s.store.CreateAccount(ctx, userID, in)
	if err != nil {
		return nil, s.storeErr(ctx, "create_account", err)
	}
	return acc, nil
}

func (s *FinanceService) UpdateAccount(ctx context.Context, userID, accountID string, in *domain.AccountInput) (*domain.Account, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.UpdateAccount")
	defer span.End()

	if err := s.validateAccount(in); err != nil {
		return nil, err
	}
	acc, err := s.store.UpdateAccount(ctx, userID, accountID, in)
	if err != nil {
		return nil, s.storeErr(ctx, "update_account", err)
	}
	return acc, nil
}

// DeleteAccount soft-deletes the account. Its transactions stay in place.
func (s *FinanceService) DeleteAccount(ctx context.Context, userID, accountID string) error {
	ctx, span := tracer.Start(ctx, "FinanceService.DeleteAccount")
	defer span.End()

	if err := s.store.DeactivateAccount(ctx, userID, accountID); err != nil {
		return s.storeErr(ctx, "deactivate_account", err)
	}
	return nil
}

// validateAccount normalizes the input in place. A missing type means cash.
func (s *FinanceService) validateAccount(in *domain.AccountInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return s.invalid("name", "name is required")
	}
	if in.Type == "" {
		in.Type = domain.AccountCash
	}
	if !in.Type.Valid() {
		return s.invalid("type", "unknown account type")
	}
	return nil
}
