package handler

import (
	"net/http"

	"github.com/sanchez1595/Personal-finance/internal/domain"
	"github.com/sanchez1595/Personal-finance/internal/service"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Goals Handlers
// ============================================================

func listGoalsHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /goals")
		defer span.End()
		overview, err := svc.ListGoals(ctx, UserIDFromContext(ctx))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, overview)
	}
}

func createGoalHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /goals")
		defer span.End()
		var in domain.GoalInput
		if !decodeJSON(w, r, &in) {
			return
		}
		goal, err := svc.CreateGoal(ctx, UserIDFromContext(ctx), &in)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, goal)
	}
}

func updateGoalHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /goals/{goalId}")
		defer span.End()
		var in domain.GoalInput
		if !decodeJSON(w, r, &in) {
			return
		}
		goal, err := svc.UpdateGoal(ctx, UserIDFromContext(ctx), chi.URLParam(r, "goalId"), &in)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, goal)
	}
}

func deleteGoalHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /goals/{goalId}")
		defer span.End()
		id := chi.URLParam(r, "goalId")
		if err := svc.DeleteGoal(ctx, UserIDFromContext(ctx), id); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, domain.SuccessResponse{Message: "goal deleted", ID: id})
	}
}

func contributeHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /goals/{goalId}/contributions")
		defer span.End()
		goalID := chi.URLParam(r, "goalId")
		span.SetAttributes(attribute.String("goal.id", goalID))

		var in domain.ContributionInput
		if !decodeJSON(w, r, &in) {
			return
		}
		result, err := svc.Contribute(ctx, UserIDFromContext(ctx), goalID, &in)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, result)
	}
}

func completeGoalHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /goals/{goalId}/complete")
		defer span.End()
		goal, err := svc.CompleteGoal(ctx, UserIDFromContext(ctx), chi.URLParam(r, "goalId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, goal)
	}
}

func togglePauseHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /goals/{goalId}/toggle-pause")
		defer span.End()
		goal, err := svc.TogglePause(ctx, UserIDFromContext(ctx), chi.URLParam(r, "goalId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, goal)
	}
}
