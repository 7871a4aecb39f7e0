package port

import (
	"context"

	"github.com/sanchez1595/Personal-finance/internal/domain"
)

// AccountStore handles account data operations.
type AccountStore interface {
	// ListAccounts returns the user's active accounts, oldest first.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
	GetAccount(ctx context.Context, userID, accountID string) (*domain.Account, error)
	CreateAccount(ctx context.Context, userID string, in *domain.AccountInput) (*domain.Account, error)
	UpdateAccount(ctx context.Context, userID, accountID string, in *domain.AccountInput) (*domain.Account, error)
	// DeactivateAccount soft-deletes the account (is_active = false).
	DeactivateAccount(ctx context.Context, userID, accountID string) error
}
