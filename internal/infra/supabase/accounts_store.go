package supabase

import (
	"context"
	"strings"
	"time"

	"github.com/sanchez1595/Personal-finance/internal/domain"

	"github.com/shopspring/decimal"
)

// ============================================================
// Accounts: CRUD via PostgREST
// ============================================================

type accountRow struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	BankID    *string         `json:"bank_id"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
}

func (r accountRow) toDomain() domain.Account {
	return domain.Account{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Type:      accountTypes.domain(r.Type, domain.AccountOther),
		Balance:   r.Balance,
		BankID:    r.BankID,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
	}
}

func accountPayload(in *domain.AccountInput) map[string]any {
	data := map[string]any{
		"name":    strings.TrimSpace(in.Name),
		"type":    accountTypes.store(in.Type),
		"balance": num(in.Balance),
	}
	if in.BankID != nil {
		data["bank_id"] = *in.BankID
	}
	return data
}

func (c *Client) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	var out []domain.Account
	err := c.call(ctx, "ListAccounts", userID, func(ctx context.Context) error {
		q := newQuery().eq("user_id", userID).eq("is_active", "true").order("created_at.asc")
		body, err := c.doGet(ctx, "accounts", q)
		if err != nil {
			return err
		}
		rows, err := decodeRows[accountRow](body, "accounts")
		if err != nil {
			return err
		}
		out = make([]domain.Account, 0, len(rows))
		for _, r := range rows {
			out = append(out, r.toDomain())
		}
		return nil
	})
	return out, err
}

func (c *Client) GetAccount(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	var out *domain.Account
	err := c.call(ctx, "GetAccount", userID, func(ctx context.Context) error {
		body, err := c.doGet(ctx, "accounts", newQuery().eq("user_id", userID).eq("id", accountID).limit(1))
		if err != nil {
			return err
		}
		out, err = firstAccount(body, accountID)
		return err
	})
	return out, err
}

func (c *Client) CreateAccount(ctx context.Context, userID string, in *domain.AccountInput) (*domain.Account, error) {
	var out *domain.Account
	err := c.callOnce(ctx, "CreateAccount", userID, func(ctx context.Context) error {
		data := accountPayload(in)
		data["user_id"] = userID
		data["is_active"] = true
		body, err := c.doPost(ctx, "accounts", nil, data)
		if err != nil {
			return err
		}
		out, err = firstAccount(body, "")
		return err
	})
	return out, err
}

func (c *Client) UpdateAccount(ctx context.Context, userID, accountID string, in *domain.AccountInput) (*domain.Account, error) {
	var out *domain.Account
	err := c.call(ctx, "UpdateAccount", userID, func(ctx context.Context) error {
		body, err := c.doPatch(ctx, "accounts", newQuery().eq("user_id", userID).eq("id", accountID), accountPayload(in))
		if err != nil {
			return err
		}
		out, err = firstAccount(body, accountID)
		return err
	})
	return out, err
}

func (c *Client) DeactivateAccount(ctx context.Context, userID, accountID string) error {
	return c.call(ctx, "DeactivateAccount", userID, func(ctx context.Context) error {
		body, err := c.doPatch(ctx, "accounts", newQuery().eq("user_id", userID).eq("id", accountID), map[string]any{"is_active": false})
		if err != nil {
			return err
		}
		_, err = firstAccount(body, accountID)
		return err
	})
}

func firstAccount(body []byte, id string) (*domain.Account, error) {
	rows, err := decodeRows[accountRow](body, "account")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &domain.ErrNotFound{Resource: "account", ID: id}
	}
	a := rows[0].toDomain()
	return &a, nil
}
