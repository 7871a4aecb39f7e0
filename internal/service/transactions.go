package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sanchez1595/Personal-finance/internal/domain"
	"github.com/sanchez1595/Personal-finance/internal/finance"
	"github.com/sanchez1595/Personal-finance/internal/port"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Transactions
// ============================================================

// ListTransactions returns the user's transactions, newest first, with
// income and expense totals. An empty month lists everything.
func (s *FinanceService) ListTransactions(ctx context.Context, userID, month string) (*domain.TransactionsOverview, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.ListTransactions")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", userID))

	var (
		filter port.TransactionFilter
		label  string
	)
	if strings.TrimSpace(month) != "" {
		p, err := s.resolvePeriod(month)
		if err != nil {
			return nil, err
		}
		filter = port.TransactionFilter{From: p.Start(), To: p.End()}
		label = p.String()
	}

	txs, err := s.store.ListTransactions(ctx, userID, filter)
	if err != nil {
		return nil, s.storeErr(ctx, "list_transactions", err)
	}
	return &domain.TransactionsOverview{
		Period:        label,
		Transactions:  txs,
		TotalIncome:   finance.SumByType(txs, domain.TransactionIncome),
		TotalExpenses: finance.SumByType(txs, domain.TransactionExpense),
	}, nil
}

// CreateTransaction records an income or expense. The account must be one
// of the user's and the category must be in the user's catalog.
func (s *FinanceService) CreateTransaction(ctx context.Context, userID string, in *domain.TransactionInput) (*domain.Transaction, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.CreateTransaction")
	defer span.End()

	if err := s.validateTransaction(in); err != nil {
		return nil, err
	}

	if _, err := s.store.GetAccount(ctx, userID, in.AccountID); err != nil {
		var nf *domain.ErrNotFound
		if errors.As(err, &nf) {
			return nil, s.invalid("account_id", "unknown account")
		}
		return nil, s.storeErr(ctx, "get_account", err)
	}
	if err := s.requireCategory(ctx, userID, in.CategoryID); err != nil {
		return nil, err
	}

	tx, err := s.store.CreateTransaction(ctx, userID, in)
	if err != nil {
		return nil, s.storeErr(ctx, "create_transaction", err)
	}
	s.logger.Debug("transaction created",
		zap.String("user_id", userID),
		zap.String("transaction_id", tx.ID),
		zap.String("type", string(tx.Type)),
	)
	return tx, nil
}

func (s *FinanceService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	ctx, span := tracer.Start(ctx, "FinanceService.DeleteTransaction")
	defer span.End()

	if err := s.store.DeleteTransaction(ctx, userID, transactionID); err != nil {
		return s.storeErr(ctx, "delete_transaction", err)
	}
	return nil
}

func (s *FinanceService) validateTransaction(in *domain.TransactionInput) error {
	in.Description = strings.TrimSpace(in.Description)
	switch {
	case strings.TrimSpace(in.AccountID) == "":
		return s.invalid("account_id", "account is required")
	case strings.TrimSpace(in.CategoryID) == "":
		return s.invalid("category_id", "category is required")
	case !in.Amount.IsPositive():
		return s.invalid("amount", "must be greater than 0")
	case in.Description == "":
		return s.invalid("description", "description is required")
	case !in.Type.Valid():
		return s.invalid("type", "must be income or expense")
	}
	if in.Date.IsZero() {
		in.Date = s.today()
	}
	return nil
}
