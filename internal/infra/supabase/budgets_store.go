package supabase

import (
	"context"
	"time"

	"github.com/sanchez1595/Personal-finance/internal/domain"

	"github.com/shopspring/decimal"
)

type budgetRow struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	CategoryID string          `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Period     string          `json:"period"`
	StartDate  domain.Date     `json:"start_date"`
	EndDate    *domain.Date    `json:"end_date"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (r budgetRow) toDomain() domain.Budget {
	b := domain.Budget{
		ID:         r.ID,
		UserID:     r.UserID,
		CategoryID: r.CategoryID,
		Amount:     r.Amount,
		Period:     budgetPeriods.domain(r.Period, domain.BudgetMonthly),
		StartDate:  r.StartDate,
		CreatedAt:  r.CreatedAt,
	}
	if r.EndDate != nil && !r.EndDate.IsZero() {
		end := *r.EndDate
		b.EndDate = &end
	}
	return b
}

func firstBudget(body []byte, id string) (*domain.Budget, error) {
	rows, err := decodeRows[budgetRow](body, "budget")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &domain.ErrNotFound{Resource: "budget", ID: id}
	}
	b := rows[0].toDomain()
	return &b, nil
}

func (c *Client) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	var out []domain.Budget
	err := c.call(ctx, "ListBudgets", userID, func(ctx context.Context) error {
		body, err := c.doGet(ctx, "budgets", newQuery().eq("user_id", userID).order("created_at.desc"))
		if err != nil {
			return err
		}
		rows, err := decodeRows[budgetRow](body, "budgets")
		if err != nil {
			return err
		}
		out = make([]domain.Budget, 0, len(rows))
		for _, r := range rows {
			out = append(out, r.toDomain())
		}
		return nil
	})
	return out, err
}

func (c *Client) GetBudget(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	var out *domain.Budget
	err := c.call(ctx, "GetBudget", userID, func(ctx context.Context) error {
		body, err := c.doGet(ctx, "budgets", newQuery().eq("user_id", userID).eq("id", budgetID).limit(1))
		if err != nil {
			return err
		}
		out, err = firstBudget(body, budgetID)
		return err
	})
	return out, err
}

func (c *Client) CreateBudget(ctx context.Context, b *domain.Budget) (*domain.Budget, error) {
	var out *domain.Budget
	err := c.callOnce(ctx, "CreateBudget", b.UserID, func(ctx context.Context) error {
		data := map[string]any{
			"user_id":     b.UserID,
			"category_id": b.CategoryID,
			"amount":      num(b.Amount),
			"period":      budgetPeriods.store(b.Period),
			"start_date":  b.StartDate.String(),
			"end_date":    nil,
		}
		if b.EndDate != nil {
			data["end_date"] = b.EndDate.String()
		}
		body, err := c.doPost(ctx, "budgets", nil, data)
		if err != nil {
			return err
		}
		out, err = firstBudget(body, "")
		return err
	})
	return out, err
}

// UpdateBudget changes category, amount and period. The window set at
// creation is kept.
func (c *Client) UpdateBudget(ctx context.Context, userID, budgetID string, in *domain.BudgetInput) (*domain.Budget, error) {
	var out *domain.Budget
	err := c.call(ctx, "UpdateBudget", userID, func(ctx context.Context) error {
		data := map[string]any{
			"category_id": in.CategoryID,
			"amount":      num(in.Amount),
			"period":      budgetPeriods.store(in.Period),
		}
		body, err := c.doPatch(ctx, "budgets", newQuery().eq("user_id", userID).eq("id", budgetID), data)
		if err != nil {
			return err
		}
		out, err = firstBudget(body, budgetID)
		return err
	})
	return out, err
}

func (c *Client) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	return c.call(ctx, "DeleteBudget", userID, func(ctx context.Context) error {
		body, err := c.doDelete(ctx, "budgets", newQuery().eq("user_id", userID).eq("id", budgetID))
		if err != nil {
			return err
		}
		_, err = firstBudget(body, budgetID)
		return err
	})
}
