package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/sanchez1595/Personal-finance/internal/domain"
	"github.com/sanchez1595/Personal-finance/internal/infra/memory"
	"github.com/sanchez1595/Personal-finance/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var asUser = map[string]string{"X-User-ID": "user-1"}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return v
}

func TestAuth(t *testing.T) {
	token, err := service.NewTokenVerifier(testSecret).Sign("user-1", time.Hour)
	require.NoError(t, err)
	foreign, err := service.NewTokenVerifier("other").Sign("user-1", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		devAuth bool
		headers map[string]string
		want    int
	}{
		{"no credentials", true, nil, http.StatusUnauthorized},
		{"dev header", true, asUser, http.StatusOK},
		{"dev header disabled", false, asUser, http.StatusUnauthorized},
		{"bearer token", false, map[string]string{"Authorization": "Bearer " + token}, http.StatusOK},
		{"foreign token", false, map[string]string{"Authorization": "Bearer " + foreign}, http.StatusUnauthorized},
		{"basic scheme", false, map[string]string{"Authorization": "Basic dXNlcjpwdw=="}, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, memory.New(), tt.devAuth)
			rec := do(router, http.MethodGet, "/v1/accounts", "", tt.headers)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestAPI_DashboardFlow(t *testing.T) {
	router := newRouter(t, memory.New(), true)

	rec := do(router, http.MethodPost, "/v1/accounts", `{"name":"Checking","type":"checking","balance":6000}`, asUser)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	account := decode[domain.Account](t, rec.Body.Bytes())

	rec = do(router, http.MethodPost, "/v1/transactions",
		`{"account_id":"`+account.ID+`","category_id":"cat-salary","amount":4000,"type":"income","date":"2024-05-01","description":"May salary"}`, asUser)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(router, http.MethodPost, "/v1/transactions",
		`{"account_id":"`+account.ID+`","category_id":"cat-food","amount":"2000","type":"expense","date":"2024-05-10","description":"Groceries"}`, asUser)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(router, http.MethodGet, "/v1/dashboard?month=2024-05", "", asUser)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	dashboard := decode[domain.Dashboard](t, rec.Body.Bytes())
	assert.Equal(t, 100, dashboard.Summary.HealthScore)
	assert.Len(t, dashboard.RecentTransactions, 2)

	rec = do(router, http.MethodGet, "/v1/analysis?month=2024-05", "", asUser)
	require.Equal(t, http.StatusOK, rec.Code)
	analysis := decode[domain.Analysis](t, rec.Body.Bytes())
	require.Len(t, analysis.Categories, 1)
	assert.Equal(t, "Food", analysis.Categories[0].CategoryName)

	rec = do(router, http.MethodGet, "/v1/analysis/months", "", asUser)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"months":["2024-05"]}`, rec.Body.String())

	rec = do(router, http.MethodGet, "/v1/transactions?month=2024-05", "", asUser)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[domain.TransactionsOverview](t, rec.Body.Bytes()).Transactions, 2)

	// Another user sees nothing.
	rec = do(router, http.MethodGet, "/v1/transactions", "", map[string]string{"X-User-ID": "user-2"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[domain.TransactionsOverview](t, rec.Body.Bytes()).Transactions)
}

func TestAPI_GoalFlow(t *testing.T) {
	router := newRouter(t, memory.New(), true)

	rec := do(router, http.MethodPost, "/v1/goals",
		`{"name":"Trip","target_amount":1000,"monthly_contribution":100,"deadline":"2024-01-01"}`, asUser)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"must be in the future","field":"deadline"}`, rec.Body.String())

	rec = do(router, http.MethodPost, "/v1/goals",
		`{"name":"Trip","type":"purchase","target_amount":1000,"monthly_contribution":100,"deadline":"2024-12-01"}`, asUser)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	goal := decode[domain.Goal](t, rec.Body.Bytes())
	base := "/v1/goals/" + goal.ID

	rec = do(router, http.MethodPost, base+"/complete", "", asUser)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(router, http.MethodPost, base+"/contributions", `{"amount":1000,"description":"bonus"}`, asUser)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	result := decode[domain.ContributionResult](t, rec.Body.Bytes())
	assert.True(t, result.ReachesTarget)
	assert.Equal(t, domain.GoalActive, result.Goal.Status)

	rec = do(router, http.MethodPost, base+"/complete", "", asUser)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.GoalCompleted, decode[domain.Goal](t, rec.Body.Bytes()).Status)

	rec = do(router, http.MethodPost, base+"/toggle-pause", "", asUser)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(router, http.MethodGet, "/v1/goals", "", asUser)
	require.Equal(t, http.StatusOK, rec.Code)
	overview := decode[domain.GoalsOverview](t, rec.Body.Bytes())
	assert.Equal(t, 1, overview.Summary.Completed)

	rec = do(router, http.MethodDelete, base, "", asUser)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = do(router, http.MethodDelete, base, "", asUser)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_Budgets(t *testing.T) {
	router := newRouter(t, memory.New(), true)

	rec := do(router, http.MethodPost, "/v1/budgets", `{"category_id":"cat-food","amount":500}`, asUser)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	budget := decode[domain.Budget](t, rec.Body.Bytes())

	rec = do(router, http.MethodGet, "/v1/budgets", "", asUser)
	require.Equal(t, http.StatusOK, rec.Code)
	overview := decode[domain.BudgetsOverview](t, rec.Body.Bytes())
	require.Len(t, overview.Budgets, 1)
	assert.Equal(t, domain.BudgetOnTrack, overview.Budgets[0].Status)

	rec = do(router, http.MethodPut, "/v1/budgets/"+budget.ID, `{"category_id":"cat-food","amount":0}`, asUser)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_BadRequests(t *testing.T) {
	router := newRouter(t, memory.New(), true)

	tests := []struct {
		name, method, path, body string
		want                     int
	}{
		{"bad month", http.MethodGet, "/v1/dashboard?month=May", "", http.StatusBadRequest},
		{"malformed json", http.MethodPost, "/v1/accounts", `{"name":`, http.StatusBadRequest},
		{"unknown field", http.MethodPost, "/v1/accounts", `{"name":"x","owner":"me"}`, http.StatusBadRequest},
		{"missing transaction", http.MethodDelete, "/v1/transactions/nope", "", http.StatusNotFound},
		{"missing goal", http.MethodPost, "/v1/goals/nope/toggle-pause", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(router, tt.method, tt.path, tt.body, asUser)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestAPI_BackendErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"external", &domain.ErrExternalService{Service: "supabase/list_accounts", Err: errors.New("503")}, http.StatusBadGateway},
		{"circuit open", &domain.ErrCircuitOpen{Service: "supabase"}, http.StatusServiceUnavailable},
		{"timeout", &domain.ErrTimeout{Operation: "supabase/ListAccounts"}, http.StatusGatewayTimeout},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, downStore{Store: memory.New(), err: tt.err}, true)
			rec := do(router, http.MethodGet, "/v1/accounts", "", asUser)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
