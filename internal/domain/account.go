package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ============================================================
// Accounts
// ============================================================

// AccountType classifies where the money is held.
type AccountType string

const (
	AccountCash       AccountType = "cash"
	AccountSavings    AccountType = "savings"
	AccountChecking   AccountType = "checking"
	AccountCredit     AccountType = "credit"
	AccountDebit      AccountType = "debit"
	AccountPrepaid    AccountType = "prepaid"
	AccountInvestment AccountType = "investment"
	AccountBank       AccountType = "bank" // deprecated: use savings/checking
	AccountCard       AccountType = "card" // deprecated: use credit/debit
	AccountOther      AccountType = "other"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	switch t {
	case AccountCash, AccountSavings, AccountChecking, AccountCredit, AccountDebit,
		AccountPrepaid, AccountInvestment, AccountBank, AccountCard, AccountOther:
		return true
	}
	return false
}

// Account is a place where the user keeps money (bank account, wallet, card).
// Only active accounts contribute to totals.
type Account struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Name      string          `json:"name"`
	Type      AccountType     `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	BankID    *string         `json:"bank_id,omitempty"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
}

// AccountInput is the create/update payload for an account.
type AccountInput struct {
	Name    string          `json:"name"`
	Type    AccountType     `json:"type"`
	Balance decimal.Decimal `json:"balance"`
	BankID  *string         `json:"bank_id,omitempty"`
}
