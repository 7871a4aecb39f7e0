// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the service layer
// from the concrete stores (Supabase PostgREST, in-memory).
package port

import "context"

// Cache provides generic caching with TTL.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
}

// FinanceStore is every data operation the finance service needs. All
// methods are scoped to one user: a record owned by somebody else behaves
// exactly like a missing one.
type FinanceStore interface {
	AccountStore
	TransactionStore
	CategoryStore
	IncomeStore
	GoalStore
	BudgetStore

	// Ping checks the store is reachable. Used by /readyz.
	Ping(ctx context.Context) error
}
