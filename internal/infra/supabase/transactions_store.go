package supabase

import (
	"context"
	"strings"
	"time"

	"github.com/sanchez1595/Personal-finance/internal/domain"
	"github.com/sanchez1595/Personal-finance/internal/port"

	"github.com/shopspring/decimal"
)

// ============================================================
// Transactions & categories
// ============================================================

// transactionSelect embeds the category and account names so the engine
// never needs a second lookup.
const transactionSelect = "*,category:categories(name),account:accounts(name)"

type nameRef struct {
	Name string `json:"name"`
}

type transactionRow struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	AccountID      string          `json:"account_id"`
	CategoryID     *string         `json:"category_id"`
	IncomeSourceID *string         `json:"income_source_id"`
	Amount         decimal.Decimal `json:"amount"`
	Type           string          `json:"type"`
	Description    string          `json:"description"`
	Notes          *string         `json:"notes"`
	Date           domain.Date     `json:"date"`
	CreatedAt      time.Time       `json:"created_at"`
	Category       *nameRef        `json:"category"`
	Account        *nameRef        `json:"account"`
}

func (r transactionRow) toDomain() domain.Transaction {
	tx := domain.Transaction{
		ID:             r.ID,
		UserID:         r.UserID,
		AccountID:      r.AccountID,
		IncomeSourceID: r.IncomeSourceID,
		Amount:         r.Amount,
		Type:           transactionTypes.domain(r.Type, domain.TransactionType(r.Type)),
		Date:           r.Date,
		Description:    r.Description,
		CreatedAt:      r.CreatedAt,
	}
	if r.CategoryID != nil {
		tx.CategoryID = *r.CategoryID
	}
	if r.Category != nil {
		tx.CategoryName = r.Category.Name
	}
	if r.Account != nil {
		tx.AccountName = r.Account.Name
	}
	if r.Notes != nil {
		tx.Notes = *r.Notes
	}
	return tx
}

func (c *Client) ListTransactions(ctx context.Context, userID string, f port.TransactionFilter) ([]domain.Transaction, error) {
	var out []domain.Transaction
	err := c.call(ctx, "ListTransactions", userID, func(ctx context.Context) error {
		q := newQuery().
			set("select", transactionSelect).
			eq("user_id", userID).
			order("date.desc,created_at.desc").
			limit(f.Limit)
		if !f.From.IsZero() {
			q.gte("date", f.From.String())
		}
		if !f.To.IsZero() {
			q.lte("date", f.To.String())
		}

		body, err := c.doGet(ctx, "transactions", q)
		if err != nil {
			return err
		}
		rows, err := decodeRows[transactionRow](body, "transactions")
		if err != nil {
			return err
		}
		out = make([]domain.Transaction, 0, len(rows))
		for _, r := range rows {
			out = append(out, r.toDomain())
		}
		return nil
	})
	return out, err
}

func (c *Client) CreateTransaction(ctx context.Context, userID string, in *domain.TransactionInput) (*domain.Transaction, error) {
	var out *domain.Transaction
	err := c.callOnce(ctx, "CreateTransaction", userID, func(ctx context.Context) error {
		data := map[string]any{
			"user_id":       userID,
			"account_id":    in.AccountID,
			"category_id":   in.CategoryID,
			"amount":        num(in.Amount),
			"type":          transactionTypes.store(in.Type),
			"description":   strings.TrimSpace(in.Description),
			"date":          in.Date.String(),
			"ocr_processed": false,
		}
		if notes := strings.TrimSpace(in.Notes); notes != "" {
			data["notes"] = notes
		}
		if in.IncomeSourceID != nil {
			data["income_source_id"] = *in.IncomeSourceID
		}

		body, err := c.doPost(ctx, "transactions", newQuery().set("select", transactionSelect), data)
		if err != nil {
			return err
		}
		rows, err := decodeRows[transactionRow](body, "transaction")
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return &domain.ErrNotFound{Resource: "transaction"}
		}
		tx := rows[0].toDomain()
		out = &tx
		return nil
	})
	return out, err
}

func (c *Client) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	return c.call(ctx, "DeleteTransaction", userID, func(ctx context.Context) error {
		body, err := c.doDelete(ctx, "transactions", newQuery().eq("user_id", userID).eq("id", transactionID))
		if err != nil {
			return err
		}
		rows, err := decodeRows[transactionRow](body, "transaction")
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return &domain.ErrNotFound{Resource: "transaction", ID: transactionID}
		}
		return nil
	})
}

func (c *Client) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	var out []domain.Category
	err := c.call(ctx, "ListCategories", userID, func(ctx context.Context) error {
		q := newQuery().
			or("(user_id.is.null,user_id.eq." + userID + ")").
			order("name.asc")
		body, err := c.doGet(ctx, "categories", q)
		if err != nil {
			return err
		}
		out, err = decodeRows[domain.Category](body, "categories")
		return err
	})
	return out, err
}
