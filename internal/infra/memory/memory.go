// Package memory is an in-process FinanceStore used for local development
// (USE_SUPABASE=false) and tests. Data lives only as long as the process.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sanchez1595/Personal-finance/internal/domain"
	"github.com/sanchez1595/Personal-finance/internal/port"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var _ port.FinanceStore = (*Store)(nil)

// DefaultCategories seed the global catalog when New gets none.
var DefaultCategories = []domain.Category{
	{ID: "cat-food", Name: "Food", Icon: "utensils", Color: "#f97316"},
	{ID: "cat-transport", Name: "Transport", Icon: "car", Color: "#3b82f6"},
	{ID: "cat-housing", Name: "Housing", Icon: "home", Color: "#8b5cf6", IsFixedExpense: true},
	{ID: "cat-utilities", Name: "Utilities", Icon: "bolt", Color: "#eab308", IsFixedExpense: true},
	{ID: "cat-health", Name: "Health", Icon: "heart", Color: "#ef4444"},
	{ID: "cat-entertainment", Name: "Entertainment", Icon: "film", Color: "#ec4899"},
	{ID: "cat-education", Name: "Education", Icon: "book", Color: "#14b8a6"},
	{ID: "cat-shopping", Name: "Shopping", Icon: "bag", Color: "#a855f7"},
	{ID: "cat-salary", Name: "Salary", Icon: "briefcase", Color: "#22c55e"},
	{ID: "cat-other", Name: "Other", Icon: "dots", Color: "#6b7280"},
}

// Store keeps every record in maps guarded by a single mutex.
type Store struct {
	mu            sync.Mutex
	now           func() time.Time
	categories    []domain.Category
	accounts      map[string]domain.Account
	transactions  map[string]domain.Transaction
	incomes       map[string]domain.IncomeSource
	goals         map[string]domain.Goal
	contributions []domain.GoalContribution
	budgets       map[string]domain.Budget
}

// New builds an empty store seeded with the given global categories, or
// DefaultCategories when none are passed.
func New(categories ...domain.Category) *Store {
	if len(categories) == 0 {
		categories = DefaultCategories
	}
	return &Store{
		now:          time.Now,
		categories:   append([]domain.Category(nil), categories...),
		accounts:     make(map[string]domain.Account),
		transactions: make(map[string]domain.Transaction),
		incomes:      make(map[string]domain.IncomeSource),
		goals:        make(map[string]domain.Goal),
		budgets:      make(map[string]domain.Budget),
	}
}

func (s *Store) Ping(_ context.Context) error { return nil }

func newID() string { return uuid.NewString() }

// ============================================================
// Accounts
// ============================================================

func (s *Store) ListAccounts(_ context.Context, userID string) ([]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Account, 0)
	for _, a := range s.accounts {
		if a.UserID == userID && a.IsActive {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) GetAccount(_ context.Context, userID, accountID string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[accountID]
	if !ok || a.UserID != userID {
		return nil, &domain.ErrNotFound{Resource: "account", ID: accountID}
	}
	return &a, nil
}

func (s *Store) CreateAccount(_ context.Context, userID string, in *domain.AccountInput) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := domain.Account{
		ID:        newID(),
		UserID:    userID,
		Name:      in.Name,
		Type:      in.Type,
		Balance:   in.Balance,
		BankID:    in.BankID,
		IsActive:  true,
		CreatedAt: s.now(),
	}
	s.accounts[a.ID] = a
	return &a, nil
}

func (s *Store) UpdateAccount(_ context.Context, userID, accountID string, in *domain.AccountInput) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[accountID]
	if !ok || a.UserID != userID {
		return nil, &domain.ErrNotFound{Resource: "account", ID: accountID}
	}
	a.Name, a.Type, a.Balance = in.Name, in.Type, in.Balance
	if in.BankID != nil {
		a.BankID = in.BankID
	}
	s.accounts[accountID] = a
	return &a, nil
}

func (s *Store) DeactivateAccount(_ context.Context, userID, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[accountID]
	if !ok || a.UserID != userID {
		return &domain.ErrNotFound{Resource: "account", ID: accountID}
	}
	a.IsActive = false
	s.accounts[accountID] = a
	return nil
}

// ============================================================
// Transactions & categories
// ============================================================

func (s *Store) ListTransactions(_ context.Context, userID string, f port.TransactionFilter) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Transaction, 0)
	for _, tx := range s.transactions {
		if tx.UserID != userID {
			continue
		}
		if !f.From.IsZero() && tx.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && tx.Date.After(f.To) {
			continue
		}
		tx.CategoryName = s.categoryNameLocked(tx.CategoryID)
		if a, ok := s.accounts[tx.AccountID]; ok {
			tx.AccountName = a.Name
		}
		out = append(out, tx)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s *Store) CreateTransaction(_ context.Context, userID string, in *domain.TransactionInput) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := domain.Transaction{
		ID:             newID(),
		UserID:         userID,
		AccountID:      in.AccountID,
		CategoryID:     in.CategoryID,
		IncomeSourceID: in.IncomeSourceID,
		Amount:         in.Amount,
		Type:           in.Type,
		Date:           in.Date,
		Description:    in.Description,
		Notes:          in.Notes,
		CreatedAt:      s.now(),
	}
	s.transactions[tx.ID] = tx
	tx.CategoryName = s.categoryNameLocked(tx.CategoryID)
	return &tx, nil
}

func (s *Store) DeleteTransaction(_ context.Context, userID, transactionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.transactions[transactionID]
	if !ok || tx.UserID != userID {
		return &domain.ErrNotFound{Resource: "transaction", ID: transactionID}
	}
	delete(s.transactions, transactionID)
	return nil
}

func (s *Store) ListCategories(_ context.Context, userID string) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		if c.UserID == nil || *c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) categoryNameLocked(id string) string {
	for _, c := range s.categories {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

// ============================================================
// Income sources
// ============================================================

func (s *Store) ListIncomeSources(_ context.Context, userID string) ([]domain.IncomeSource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.IncomeSource, 0)
	for _, src := range s.incomes {
		if src.UserID == userID && src.IsActive {
			out = append(out, src)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) GetIncomeSource(_ context.Context, userID, sourceID string) (*domain.IncomeSource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	src, ok := s.incomes[sourceID]
	if !ok || src.UserID != userID {
		return nil, &domain.ErrNotFound{Resource: "income_source", ID: sourceID}
	}
	return &src, nil
}

func (s *Store) CreateIncomeSource(_ context.Context, userID string, in *domain.IncomeSourceInput) (*domain.IncomeSource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	src := domain.IncomeSource{
		ID:          newID(),
		UserID:      userID,
		Name:        in.Name,
		Amount:      in.Amount,
		Type:        in.Type,
		Frequency:   in.Frequency,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   s.now(),
	}
	s.incomes[src.ID] = src
	return &src, nil
}

func (s *Store) UpdateIncomeSource(_ context.Context, userID, sourceID string, in *domain.IncomeSourceInput) (*domain.IncomeSource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	src, ok := s.incomes[sourceID]
	if !ok || src.UserID != userID {
		return nil, &domain.ErrNotFound{Resource: "income_source", ID: sourceID}
	}
	src.Name, src.Amount, src.Type, src.Frequency, src.Description = in.Name, in.Amount, in.Type, in.Frequency, in.Description
	s.incomes[sourceID] = src
	return &src, nil
}

func (s *Store) DeactivateIncomeSource(_ context.Context, userID, sourceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	src, ok := s.incomes[sourceID]
	if !ok || src.UserID != userID {
		return &domain.ErrNotFound{Resource: "income_source", ID: sourceID}
	}
	src.IsActive = false
	s.incomes[sourceID] = src
	return nil
}

// ============================================================
// Goals
// ============================================================

func (s *Store) ListGoals(_ context.Context, userID string) ([]domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Goal, 0)
	for _, g := range s.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) GetGoal(_ context.Context, userID, goalID string) (*domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.goals[goalID]
	if !ok || g.UserID != userID {
		return nil, &domain.ErrNotFound{Resource: "goal", ID: goalID}
	}
	return &g, nil
}

func (s *Store) CreateGoal(_ context.Context, userID string, in *domain.GoalInput) (*domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := domain.Goal{
		ID:                  newID(),
		UserID:              userID,
		Name:                in.Name,
		Type:                in.Type,
		TargetAmount:        in.TargetAmount,
		CurrentAmount:       decimal.Zero,
		MonthlyContribution: in.MonthlyContribution,
		Deadline:            in.Deadline,
		Status:              domain.GoalActive,
		CreatedAt:           s.now(),
	}
	s.goals[g.ID] = g
	return &g, nil
}

func (s *Store) UpdateGoal(_ context.Context, userID, goalID string, in *domain.GoalInput) (*domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.goals[goalID]
	if !ok || g.UserID != userID {
		return nil, &domain.ErrNotFound{Resource: "goal", ID: goalID}
	}
	g.Name, g.Type, g.TargetAmount, g.MonthlyContribution, g.Deadline = in.Name, in.Type, in.TargetAmount, in.MonthlyContribution, in.Deadline
	s.goals[goalID] = g
	return &g, nil
}

func (s *Store) DeleteGoal(_ context.Context, userID, goalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.goals[goalID]
	if !ok || g.UserID != userID {
		return &domain.ErrNotFound{Resource: "goal", ID: goalID}
	}
	delete(s.goals, goalID)
	kept := s.contributions[:0]
	for _, c := range s.contributions {
		if c.GoalID != goalID {
			kept = append(kept, c)
		}
	}
	s.contributions = kept
	return nil
}

func (s *Store) UpdateGoalStatus(_ context.Context, userID, goalID string, status domain.GoalStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.goals[goalID]
	if !ok || g.UserID != userID {
		return &domain.ErrNotFound{Resource: "goal", ID: goalID}
	}
	g.Status = status
	s.goals[goalID] = g
	return nil
}

// AddContribution appends the contribution and raises the goal's saved
// amount under the same lock.
func (s *Store) AddContribution(_ context.Context, c *domain.GoalContribution) (*domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.goals[c.GoalID]
	if !ok || g.UserID != c.UserID {
		return nil, &domain.ErrNotFound{Resource: "goal", ID: c.GoalID}
	}
	out := *c
	if out.ID == "" {
		out.ID = newID()
	}
	s.contributions = append(s.contributions, out)
	g.CurrentAmount = g.CurrentAmount.Add(c.Amount)
	s.goals[c.GoalID] = g
	return &g, nil
}

// Contributions returns the recorded contributions of a goal, oldest first.
func (s *Store) Contributions(goalID string) []domain.GoalContribution {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.GoalContribution, 0)
	for _, c := range s.contributions {
		if c.GoalID == goalID {
			out = append(out, c)
		}
	}
	return out
}

// ============================================================
// Budgets
// ============================================================

func (s *Store) ListBudgets(_ context.Context, userID string) ([]domain.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Budget, 0)
	for _, b := range s.budgets {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) GetBudget(_ context.Context, userID, budgetID string) (*domain.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.budgets[budgetID]
	if !ok || b.UserID != userID {
		return nil, &domain.ErrNotFound{Resource: "budget", ID: budgetID}
	}
	return &b, nil
}

func (s *Store) CreateBudget(_ context.Context, b *domain.Budget) (*domain.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := *b
	out.ID = newID()
	out.CreatedAt = s.now()
	s.budgets[out.ID] = out
	return &out, nil
}

func (s *Store) UpdateBudget(_ context.Context, userID, budgetID string, in *domain.BudgetInput) (*domain.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.budgets[budgetID]
	if !ok || b.UserID != userID {
		return nil, &domain.ErrNotFound{Resource: "budget", ID: budgetID}
	}
	b.CategoryID, b.Amount, b.Period = in.CategoryID, in.Amount, in.Period
	s.budgets[budgetID] = b
	return &b, nil
}

func (s *Store) DeleteBudget(_ context.Context, userID, budgetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.budgets[budgetID]
	if !ok || b.UserID != userID {
		return &domain.ErrNotFound{Resource: "budget", ID: budgetID}
	}
	delete(s.budgets, budgetID)
	return nil
}
