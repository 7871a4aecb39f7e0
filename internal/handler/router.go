package handler

import (
	"net/http"
	"time"

	"github.com/sanchez1595/Personal-finance/internal/domain"
	"github.com/sanchez1595/Personal-finance/internal/infra/observability"
	"github.com/sanchez1595/Personal-finance/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// NewRouter creates the HTTP router with all routes and middleware.
// auth guards every /v1 route and must put the user id in the request
// context (see AuthMiddleware).
func NewRouter(svc *service.FinanceService, auth func(http.Handler) http.Handler, metrics *observability.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger, metrics))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler(svc))
	r.Get("/readyz", readyzHandler(svc, logger))
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {
		r.Use(auth)

		r.Get("/dashboard", dashboardHandler(svc, logger))
		r.Get("/analysis", analysisHandler(svc, logger))
		r.Get("/analysis/months", availableMonthsHandler(svc, logger))

		r.Get("/accounts", listAccountsHandler(svc, logger))
		r.Post("/accounts", createAccountHandler(svc, logger))
		r.Put("/accounts/{accountId}", updateAccountHandler(svc, logger))
		r.Delete("/accounts/{accountId}", deleteAccountHandler(svc, logger))

		r.Get("/transactions", listTransactionsHandler(svc, logger))
		r.Post("/transactions", createTransactionHandler(svc, logger))
		r.Delete("/transactions/{transactionId}", deleteTransactionHandler(svc, logger))

		r.Get("/categories", listCategoriesHandler(svc, logger))

		r.Get("/income-sources", listIncomeSourcesHandler(svc, logger))
		r.Post("/income-sources", createIncomeSourceHandler(svc, logger))
		r.Put("/income-sources/{sourceId}", updateIncomeSourceHandler(svc, logger))
		r.Delete("/income-sources/{sourceId}", deleteIncomeSourceHandler(svc, logger))

		r.Get("/goals", listGoalsHandler(svc, logger))
		r.Post("/goals", createGoalHandler(svc, logger))
		r.Put("/goals/{goalId}", updateGoalHandler(svc, logger))
		r.Delete("/goals/{goalId}", deleteGoalHandler(svc, logger))
		r.Post("/goals/{goalId}/contributions", contributeHandler(svc, logger))
		r.Post("/goals/{goalId}/complete", completeGoalHandler(svc, logger))
		r.Post("/goals/{goalId}/toggle-pause", togglePauseHandler(svc, logger))

		r.Get("/budgets", listBudgetsHandler(svc, logger))
		r.Post("/budgets", createBudgetHandler(svc, logger))
		r.Put("/budgets/{budgetId}", updateBudgetHandler(svc, logger))
		r.Delete("/budgets/{budgetId}", deleteBudgetHandler(svc, logger))
	})

	return r
}

// ============================================================
// Operational
// ============================================================

func healthzHandler(svc *service.FinanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().Format(time.RFC3339)

		services := []domain.ServiceHealth{
			{Name: "finance-bfa", Status: "healthy", LatencyMs: 0, LastChecked: now},
		}

		if svc != nil {
			start := time.Now()
			err := svc.Ping(r.Context())
			status := "healthy"
			if err != nil {
				status = "degraded"
			}
			services = append(services, domain.ServiceHealth{
				Name: "store", Status: status, LatencyMs: time.Since(start).Milliseconds(), LastChecked: now,
			})
		}

		overallStatus := "healthy"
		for _, s := range services {
			if s.Status == "unhealthy" {
				overallStatus = "unhealthy"
				break
			}
			if s.Status == "degraded" {
				overallStatus = "degraded"
			}
		}

		writeJSON(w, http.StatusOK, domain.HealthStatus{
			Status:   overallStatus,
			Services: services,
		})
	}
}

func readyzHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc != nil {
			if err := svc.Ping(r.Context()); err != nil {
				logger.Warn("readiness check failed", zap.Error(err))
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
