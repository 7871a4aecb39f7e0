package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sanchez1595/Personal-finance/internal/domain"
	"github.com/sanchez1595/Personal-finance/internal/port"

	"github.com/shopspring/decimal"
)

func tickingClock() func() time.Time {
	t := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newTestStore() *Store {
	s := New()
	s.now = tickingClock()
	return s
}

func isNotFound(err error) bool {
	var nf *domain.ErrNotFound
	return errors.As(err, &nf)
}

func TestAccountsScopedAndSoftDeleted(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	a, err := s.CreateAccount(ctx, "u1", &domain.AccountInput{Name: "Wallet", Type: domain.AccountCash, Balance: decimal.NewFromInt(50)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.CreateAccount(ctx, "u2", &domain.AccountInput{Name: "Other", Type: domain.AccountCash}); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, _ := s.ListAccounts(ctx, "u1")
	if len(list) != 1 || list[0].ID != a.ID || !list[0].IsActive {
		t.Fatalf("unexpected list: %+v", list)
	}

	if _, err := s.GetAccount(ctx, "u2", a.ID); !isNotFound(err) {
		t.Fatalf("expected not found for other user, got %v", err)
	}

	if err := s.DeactivateAccount(ctx, "u1", a.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	list, _ = s.ListAccounts(ctx, "u1")
	if len(list) != 0 {
		t.Fatalf("expected inactive account hidden, got %+v", list)
	}
	got, err := s.GetAccount(ctx, "u1", a.ID)
	if err != nil || got.IsActive {
		t.Fatalf("expected inactive account still readable: %+v err=%v", got, err)
	}
}

func TestListTransactionsFiltersAndResolvesNames(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	acc, _ := s.CreateAccount(ctx, "u1", &domain.AccountInput{Name: "Bank", Type: domain.AccountChecking})

	add := func(date domain.Date, category string) {
		t.Helper()
		_, err := s.CreateTransaction(ctx, "u1", &domain.TransactionInput{
			AccountID:   acc.ID,
			CategoryID:  category,
			Amount:      decimal.NewFromInt(10),
			Type:        domain.TransactionExpense,
			Date:        date,
			Description: "x",
		})
		if err != nil {
			t.Fatalf("create tx: %v", err)
		}
	}
	add(domain.NewDate(2024, time.February, 28), "cat-food")
	add(domain.NewDate(2024, time.March, 1), "cat-food")
	add(domain.NewDate(2024, time.March, 31), "deleted-category")
	add(domain.NewDate(2024, time.April, 1), "cat-food")

	got, err := s.ListTransactions(ctx, "u1", port.TransactionFilter{
		From: domain.NewDate(2024, time.March, 1),
		To:   domain.NewDate(2024, time.March, 31),
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows in March, got %d", len(got))
	}
	if got[0].Date.Day() != 31 || got[0].CategoryName != "" {
		t.Fatalf("expected newest first with empty name for missing category: %+v", got[0])
	}
	if got[1].CategoryName != "Food" || got[1].AccountName != "Bank" {
		t.Fatalf("expected resolved names: %+v", got[1])
	}

	limited, _ := s.ListTransactions(ctx, "u1", port.TransactionFilter{Limit: 3})
	if len(limited) != 3 || limited[0].Date.Month() != time.April {
		t.Fatalf("unexpected limited list: %+v", limited)
	}
}

func TestGoalLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	g, err := s.CreateGoal(ctx, "u1", &domain.GoalInput{
		Name:                "Trip",
		Type:                domain.GoalPurchase,
		TargetAmount:        decimal.NewFromInt(1000),
		MonthlyContribution: decimal.NewFromInt(100),
		Deadline:            domain.NewDate(2025, time.January, 1),
	})
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}
	if g.Status != domain.GoalActive || !g.CurrentAmount.IsZero() {
		t.Fatalf("unexpected new goal: %+v", g)
	}

	updated, err := s.AddContribution(ctx, &domain.GoalContribution{GoalID: g.ID, UserID: "u1", Amount: decimal.NewFromInt(300)})
	if err != nil {
		t.Fatalf("contribute: %v", err)
	}
	if !updated.CurrentAmount.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected returned goal to hold 300, got %s", updated.CurrentAmount)
	}
	if _, err := s.AddContribution(ctx, &domain.GoalContribution{GoalID: g.ID, UserID: "u2", Amount: decimal.NewFromInt(1)}); !isNotFound(err) {
		t.Fatalf("expected not found for foreign goal, got %v", err)
	}
	if err := s.UpdateGoalStatus(ctx, "u1", g.ID, domain.GoalPaused); err != nil {
		t.Fatalf("update status: %v", err)
	}

	got, _ := s.GetGoal(ctx, "u1", g.ID)
	if !got.CurrentAmount.Equal(decimal.NewFromInt(300)) || got.Status != domain.GoalPaused {
		t.Fatalf("unexpected goal: %+v", got)
	}
	if n := len(s.Contributions(g.ID)); n != 1 {
		t.Fatalf("expected 1 contribution, got %d", n)
	}

	if err := s.DeleteGoal(ctx, "u1", g.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(s.Contributions(g.ID)) != 0 {
		t.Fatalf("expected contributions removed with goal")
	}
	if _, err := s.GetGoal(ctx, "u1", g.ID); !isNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestAddContribution_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	g, err := s.CreateGoal(ctx, "u1", &domain.GoalInput{
		Name:                "House",
		Type:                domain.GoalSavings,
		TargetAmount:        decimal.NewFromInt(100000),
		MonthlyContribution: decimal.NewFromInt(500),
		Deadline:            domain.NewDate(2030, time.January, 1),
	})
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.AddContribution(ctx, &domain.GoalContribution{GoalID: g.ID, UserID: "u1", Amount: decimal.NewFromInt(10)}); err != nil {
				t.Errorf("contribute: %v", err)
			}
		}()
	}
	wg.Wait()

	got, _ := s.GetGoal(ctx, "u1", g.ID)
	if !got.CurrentAmount.Equal(decimal.NewFromInt(10 * workers)) {
		t.Fatalf("expected %d saved, got %s", 10*workers, got.CurrentAmount)
	}
	if n := len(s.Contributions(g.ID)); n != workers {
		t.Fatalf("expected %d contributions, got %d", workers, n)
	}
}

func TestCategoriesGlobalAndOwn(t *testing.T) {
	owner := "u1"
	s := New(
		domain.Category{ID: "g", Name: "Global"},
		domain.Category{ID: "own", Name: "Mine", UserID: &owner},
	)

	mine, _ := s.ListCategories(context.Background(), "u1")
	theirs, _ := s.ListCategories(context.Background(), "u2")
	if len(mine) != 2 || len(theirs) != 1 {
		t.Fatalf("unexpected catalogs: mine=%v theirs=%v", mine, theirs)
	}
}

func TestBudgetsAndIncomeSources(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	b, err := s.CreateBudget(ctx, &domain.Budget{UserID: "u1", CategoryID: "cat-food", Amount: decimal.NewFromInt(200), Period: domain.BudgetMonthly})
	if err != nil || b.ID == "" {
		t.Fatalf("create budget: %+v %v", b, err)
	}
	upd, err := s.UpdateBudget(ctx, "u1", b.ID, &domain.BudgetInput{CategoryID: "cat-health", Amount: decimal.NewFromInt(50), Period: domain.BudgetWeekly})
	if err != nil || upd.CategoryID != "cat-health" || upd.Period != domain.BudgetWeekly {
		t.Fatalf("update budget: %+v %v", upd, err)
	}
	if err := s.DeleteBudget(ctx, "u2", b.ID); !isNotFound(err) {
		t.Fatalf("expected not found for foreign delete, got %v", err)
	}

	src, _ := s.CreateIncomeSource(ctx, "u1", &domain.IncomeSourceInput{Name: "Salary", Amount: decimal.NewFromInt(3000), Type: domain.IncomeFixed, Frequency: domain.FrequencyMonthly})
	if err := s.DeactivateIncomeSource(ctx, "u1", src.ID); err != nil {
		t.Fatalf("deactivate income: %v", err)
	}
	if list, _ := s.ListIncomeSources(ctx, "u1"); len(list) != 0 {
		t.Fatalf("expected inactive source hidden, got %+v", list)
	}
}
