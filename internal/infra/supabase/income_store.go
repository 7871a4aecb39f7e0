package supabase

import (
	"context"
	"strings"
	"time"

	"github.com/sanchez1595/Personal-finance/internal/domain"

	"github.com/shopspring/decimal"
)

type incomeRow struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Frequency   string          `json:"frequency"`
	Description *string         `json:"description"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (r incomeRow) toDomain() domain.IncomeSource {
	src := domain.IncomeSource{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Amount:    r.Amount,
		Type:      incomeTypes.domain(r.Type, domain.IncomeVariable),
		Frequency: incomeFrequencies.domain(r.Frequency, domain.FrequencyOneOff),
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
	}
	if r.Description != nil {
		src.Description = *r.Description
	}
	return src
}

func incomePayload(in *domain.IncomeSourceInput) map[string]any {
	data := map[string]any{
		"name":        strings.TrimSpace(in.Name),
		"amount":      num(in.Amount),
		"type":        incomeTypes.store(in.Type),
		"frequency":   incomeFrequencies.store(in.Frequency),
		"description": nil,
	}
	if d := strings.TrimSpace(in.Description); d != "" {
		data["description"] = d
	}
	return data
}

func firstIncome(body []byte, id string) (*domain.IncomeSource, error) {
	rows, err := decodeRows[incomeRow](body, "income source")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &domain.ErrNotFound{Resource: "income_source", ID: id}
	}
	src := rows[0].toDomain()
	return &src, nil
}

func (c *Client) ListIncomeSources(ctx context.Context, userID string) ([]domain.IncomeSource, error) {
	var out []domain.IncomeSource
	err := c.call(ctx, "ListIncomeSources", userID, func(ctx context.Context) error {
		q := newQuery().eq("user_id", userID).eq("is_active", "true").order("created_at.desc")
		body, err := c.doGet(ctx, "income_sources", q)
		if err != nil {
			return err
		}
		rows, err := decodeRows[incomeRow](body, "income sources")
		if err != nil {
			return err
		}
		out = make([]domain.IncomeSource, 0, len(rows))
		for _, r := range rows {
			out = append(out, r.toDomain())
		}
		return nil
	})
	return out, err
}

func (c *Client) GetIncomeSource(ctx context.Context, userID, sourceID string) (*domain.IncomeSource, error) {
	var out *domain.IncomeSource
	err := c.call(ctx, "GetIncomeSource", userID, func(ctx context.Context) error {
		body, err := c.doGet(ctx, "income_sources", newQuery().eq("user_id", userID).eq("id", sourceID).limit(1))
		if err != nil {
			return err
		}
		out, err = firstIncome(body, sourceID)
		return err
	})
	return out, err
}

func (c *Client) CreateIncomeSource(ctx context.Context, userID string, in *domain.IncomeSourceInput) (*domain.IncomeSource, error) {
	var out *domain.IncomeSource
	err := c.callOnce(ctx, "CreateIncomeSource", userID, func(ctx context.Context) error {
		data := incomePayload(in)
		data["user_id"] = userID
		data["is_active"] = true
		body, err := c.doPost(ctx, "income_sources", nil, data)
		if err != nil {
			return err
		}
		out, err = firstIncome(body, "")
		return err
	})
	return out, err
}

func (c *Client) UpdateIncomeSource(ctx context.Context, userID, sourceID string, in *domain.IncomeSourceInput) (*domain.IncomeSource, error) {
	var out *domain.IncomeSource
	err := c.call(ctx, "UpdateIncomeSource", userID, func(ctx context.Context) error {
		body, err := c.doPatch(ctx, "income_sources", newQuery().eq("user_id", userID).eq("id", sourceID), incomePayload(in))
		if err != nil {
			return err
		}
		out, err = firstIncome(body, sourceID)
		return err
	})
	return out, err
}

func (c *Client) DeactivateIncomeSource(ctx context.Context, userID, sourceID string) error {
	return c.call(ctx, "DeactivateIncomeSource", userID, func(ctx context.Context) error {
		body, err := c.doPatch(ctx, "income_sources", newQuery().eq("user_id", userID).eq("id", sourceID), map[string]any{"is_active": false})
		if err != nil {
			return err
		}
		_, err = firstIncome(body, sourceID)
		return err
	})
}
