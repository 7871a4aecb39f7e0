package handler

import (
	"net/http"

	"github.com/sanchez1595/Personal-finance/internal/domain"
	"github.com/sanchez1595/Personal-finance/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func listIncomeSourcesHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /income-sources")
		defer span.End()
		overview, err := svc.ListIncomeSources(ctx, UserIDFromContext(ctx))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, overview)
	}
}

func createIncomeSourceHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /income-sources")
		defer span.End()
		var in domain.IncomeSourceInput
		if !decodeJSON(w, r, &in) {
			return
		}
		src, err := svc.CreateIncomeSource(ctx, UserIDFromContext(ctx), &in)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, src)
	}
}

func updateIncomeSourceHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /income-sources/{sourceId}")
		defer span.End()
		var in domain.IncomeSourceInput
		if !decodeJSON(w, r, &in) {
			return
		}
		src, err := svc.UpdateIncomeSource(ctx, UserIDFromContext(ctx), chi.URLParam(r, "sourceId"), &in)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, src)
	}
}

func deleteIncomeSourceHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /income-sources/{sourceId}")
		defer span.End()
		id := chi.URLParam(r, "sourceId")
		if err := svc.DeleteIncomeSource(ctx, UserIDFromContext(ctx), id); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, domain.SuccessResponse{Message: "income source deactivated", ID: id})
	}
}
