package handler

import (
	"net/http"

	"github.com/sanchez1595/Personal-finance/internal/domain"
	"github.com/sanchez1595/Personal-finance/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func listBudgetsHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /budgets")
		defer span.End()
		overview, err := svc.ListBudgets(ctx, UserIDFromContext(ctx), r.URL.Query().Get("month"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, overview)
	}
}

func createBudgetHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /budgets")
		defer span.End()
		var in domain.BudgetInput
		if !decodeJSON(w, r, &in) {
			return
		}
		budget, err := svc.CreateBudget(ctx, UserIDFromContext(ctx), &in)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, budget)
	}
}

func updateBudgetHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /budgets/{budgetId}")
		defer span.End()
		var in domain.BudgetInput
		if !decodeJSON(w, r, &in) {
			return
		}
		budget, err := svc.UpdateBudget(ctx, UserIDFromContext(ctx), chi.URLParam(r, "budgetId"), &in)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, budget)
	}
}

func deleteBudgetHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /budgets/{budgetId}")
		defer span.End()
		id := chi.URLParam(r, "budgetId")
		if err := svc.DeleteBudget(ctx, UserIDFromContext(ctx), id); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, domain.SuccessResponse{Message: "budget deleted", ID: id})
	}
}
