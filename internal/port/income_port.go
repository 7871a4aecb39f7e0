package port

import (
	"context"

	"github.com/sanchez1595/Personal-finance/internal/domain"
)

// IncomeStore handles income source operations.
type IncomeStore interface {
	// ListIncomeSources returns the user's active income sources.
	ListIncomeSources(ctx context.Context, userID string) ([]domain.IncomeSource, error)
	GetIncomeSource(ctx context.Context, userID, sourceID string) (*domain.IncomeSource, error)
	CreateIncomeSource(ctx context.Context, userID string, in *domain.IncomeSourceInput) (*domain.IncomeSource, error)
	UpdateIncomeSource(ctx context.Context, userID, sourceID string, in *domain.IncomeSourceInput) (*domain.IncomeSource, error)
	// DeactivateIncomeSource soft-deletes the source (is_active = false).
	DeactivateIncomeSource(ctx context.Context, userID, sourceID string) error
}
