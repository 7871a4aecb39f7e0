// Package service provides the business logic layer (use cases).
// FinanceService validates input, fetches a user's records through the
// FinanceStore port and hands them to the metrics engine in internal/finance.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sanchez1595/Personal-finance/internal/domain"
	"github.com/sanchez1595/Personal-finance/internal/finance"
	"github.com/sanchez1595/Personal-finance/internal/infra/observability"
	"github.com/sanchez1595/Personal-finance/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("service/finance")

// FinanceService orchestrates all personal-finance use cases for one store.
type FinanceService struct {
	store      port.FinanceStore
	categories port.Cache[[]domain.Category]
	metrics    *observability.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// NewFinanceService creates the finance service with all dependencies injected.
func NewFinanceService(
	store port.FinanceStore,
	categories port.Cache[[]domain.Category],
	metrics *observability.Metrics,
	logger *zap.Logger,
) *FinanceService {
	return &FinanceService{
		store:      store,
		categories: categories,
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}
}

// SetClock overrides the wall clock used for "today" and the default month.
func (s *FinanceService) SetClock(now func() time.Time) {
	s.now = now
}

// Ping checks the backing store.
func (s *FinanceService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *FinanceService) today() domain.Date {
	return domain.DateOf(s.now())
}

// resolvePeriod parses ?month=YYYY-MM, defaulting to the current month.
func (s *FinanceService) resolvePeriod(month string) (finance.Period, error) {
	month = strings.TrimSpace(month)
	if month == "" {
		return finance.PeriodOf(s.now()), nil
	}
	p, err := finance.ParsePeriod(month)
	if err != nil {
		return finance.Period{}, s.invalid("month", "expected YYYY-MM")
	}
	return p, nil
}

func (s *FinanceService) invalid(field, message string) error {
	s.metrics.IncrValidationFailure(field)
	return &domain.ErrValidation{Field: field, Message: message}
}

// storeErr wraps a store failure with the operation name. Not-found and
// validation errors are the caller's fault and are not counted.
func (s *FinanceService) storeErr(ctx context.Context, op string, err error) error {
	var nf *domain.ErrNotFound
	var ve *domain.ErrValidation
	if !errors.As(err, &nf) && !errors.As(err, &ve) {
		s.metrics.IncrStoreError(op)
		s.logger.Warn("store call failed", zap.String("operation", op), zap.Error(err))
		span := trace.SpanFromContext(ctx)
		span.RecordError(err)
		span.SetStatus(codes.Error, op)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (s *FinanceService) observe(op string, start time.Time) {
	s.metrics.RecordDuration(op, time.Since(start))
}

// ============================================================
// Categories
// ============================================================

// Categories returns the global catalog plus the user's own categories.
// The list is cached per user.
func (s *FinanceService) Categories(ctx context.Context, userID string) ([]domain.Category, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.Categories")
	defer span.End()

	cacheKey := "categories:" + userID
	if cached, ok := s.categories.Get(cacheKey); ok {
		s.metrics.IncrCacheHit("categories")
		return cached, nil
	}
	s.metrics.IncrCacheMiss("categories")

	cats, err := s.store.ListCategories(ctx, userID)
	if err != nil {
		return nil, s.storeErr(ctx, "list_categories", err)
	}
	s.categories.Set(cacheKey, cats)
	return cats, nil
}

func categoryNames(cats []domain.Category) map[string]string {
	names := make(map[string]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}
	return names
}

// requireCategory checks that id names a category visible to the user.
func (s *FinanceService) requireCategory(ctx context.Context, userID, id string) error {
	if strings.TrimSpace(id) == "" {
		return s.invalid("category_id", "category is required")
	}
	cats, err := s.Categories(ctx, userID)
	if err != nil {
		return err
	}
	if _, ok := categoryNames(cats)[id]; !ok {
		return s.invalid("category_id", "unknown category")
	}
	return nil
}
