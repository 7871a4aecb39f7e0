package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/sanchez1595/Personal-finance/internal/domain"
	"github.com/sanchez1595/Personal-finance/internal/infra/resilience"
	"github.com/sanchez1595/Personal-finance/internal/infra/supabase"
	"github.com/sanchez1595/Personal-finance/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// postgrestRows maps a table path to the JSON rows the fake returns.
var postgrestRows = map[string]string{
	"/rest/v1/accounts": `[{"id":"a1","user_id":"user-1","name":"Checking","type":"corriente","balance":6000,
		"is_active":true,"created_at":"2024-01-01T00:00:00Z"}]`,
	"/rest/v1/transactions": `[
		{"id":"t2","user_id":"user-1","account_id":"a1","category_id":"c-food","amount":2000,"type":"gasto",
		 "description":"Groceries","date":"2024-05-10","created_at":"2024-05-10T10:00:00Z",
		 "category":{"name":"Alimentación"},"account":{"name":"Checking"}},
		{"id":"t1","user_id":"user-1","account_id":"a1","category_id":"c-salary","amount":4000,"type":"ingreso",
		 "description":"Salary","date":"2024-05-01","created_at":"2024-05-01T10:00:00Z",
		 "category":{"name":"Salario"},"account":{"name":"Checking"}}]`,
	"/rest/v1/goals": `[{"id":"g1","user_id":"user-1","name":"Trip","type":"compra","target_amount":1000,
		"current_amount":250,"monthly_contribution":100,"deadline":"2024-12-01","status":"activa",
		"created_at":"2024-02-01T00:00:00Z"}]`,
	"/rest/v1/income_sources": `[{"id":"i1","user_id":"user-1","name":"Job","amount":4000,"type":"fijo",
		"frequency":"mensual","is_active":true,"created_at":"2024-01-01T00:00:00Z"}]`,
}

// TestIntegration_DashboardOverSupabase runs a dashboard request through the
// router, the service and the PostgREST client against a fake backend.
func TestIntegration_DashboardOverSupabase(t *testing.T) {
	var (
		mu      sync.Mutex
		userIDs []string
	)
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		userIDs = append(userIDs, r.URL.Query().Get("user_id"))
		mu.Unlock()

		rows, ok := postgrestRows[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, rows)
	}))
	defer backend.Close()

	router := newRouter(t, newSupabase(backend), false)
	token := signToken(t, "user-1")

	rec := do(router, http.MethodGet, "/v1/dashboard?month=2024-05", "", map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	d := decode[domain.Dashboard](t, rec.Body.Bytes())
	assert.Equal(t, 100, d.Summary.HealthScore)
	assert.Equal(t, domain.HealthExcellent, d.Summary.HealthBand)
	assert.True(t, d.MonthlyIncome.Equal(d.Summary.Income))
	require.Len(t, d.RecentTransactions, 2)
	assert.Equal(t, "Alimentación", d.RecentTransactions[0].CategoryName)
	require.Len(t, d.ActiveGoals, 1)
	assert.InDelta(t, 25.0, d.ActiveGoals[0].Progress, 1e-9)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, userIDs, 4)
	for _, id := range userIDs {
		assert.Equal(t, "eq.user-1", id)
	}
}

func TestIntegration_BackendDown(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer backend.Close()

	router := newRouter(t, newSupabase(backend), true)

	rec := do(router, http.MethodGet, "/v1/dashboard?month=2024-05", "", asUser)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error":"data backend error"}`, rec.Body.String())
}

func newSupabase(backend *httptest.Server) *supabase.Client {
	guard := resilience.NewGuard("supabase", resilience.Config{
		MaxRetries:     1,
		InitialBackoff: time.Millisecond,
		MaxConcurrency: 8,
	})
	return supabase.NewClient(backend.Client(), backend.URL, "anon", "service", guard, zap.NewNop())
}

func signToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := service.NewTokenVerifier(testSecret).Sign(userID, time.Hour)
	require.NoError(t, err)
	return token
}
