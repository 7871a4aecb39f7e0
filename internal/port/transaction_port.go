package port

import (
	"context"

	"github.com/sanchez1595/Personal-finance/internal/domain"
)

// TransactionFilter narrows a transaction listing. Zero values mean
// unbounded.
type TransactionFilter struct {
	From  domain.Date // inclusive
	To    domain.Date // inclusive
	Limit int
}

// TransactionStore handles transaction history operations.
type TransactionStore interface {
	// ListTransactions returns the user's transactions, newest first, with
	// category and account names resolved.
	ListTransactions(ctx context.Context, userID string, f TransactionFilter) ([]domain.Transaction, error)
	CreateTransaction(ctx context.Context, userID string, in *domain.TransactionInput) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// CategoryStore reads the category catalog.
type CategoryStore interface {
	// ListCategories returns the global categories plus the user's own.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
}
