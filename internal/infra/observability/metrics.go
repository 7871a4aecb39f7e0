package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the BFA.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	operationDuration  *prometheus.HistogramVec
	storeErrors        *prometheus.CounterVec
	cacheHits          *prometheus.CounterVec
	cacheMisses        *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	healthScores       prometheus.Histogram
	goalContributions  prometheus.Counter
	goalCompletions    prometheus.Counter
	validationFailures *prometheus.CounterVec
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finance_operation_duration_seconds",
				Help:    "Duration of service operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		storeErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_store_errors_total",
				Help: "Total errors returned by the data store.",
			},
			[]string{"operation"},
		),
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_cache_hits_total",
				Help: "Total cache hits.",
			},
			[]string{"cache"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_cache_misses_total",
				Help: "Total cache misses.",
			},
			[]string{"cache"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_http_requests_total",
				Help: "Total HTTP requests by route and status class.",
			},
			[]string{"route", "status"},
		),
		healthScores: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "finance_health_score",
				Help:    "Distribution of computed financial health scores.",
				Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
			},
		),
		goalContributions: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "finance_goal_contributions_total",
				Help: "Total contributions recorded against goals.",
			},
		),
		goalCompletions: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "finance_goal_completions_total",
				Help: "Total goals marked as completed.",
			},
		),
		validationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_validation_failures_total",
				Help: "Rejected inputs by field.",
			},
			[]string{"field"},
		),
	}
}

// RecordDuration records the duration of a service operation.
func (m *Metrics) RecordDuration(operation string, d time.Duration) {
	m.operationDuration.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *Metrics) IncrStoreError(operation string) {
	m.storeErrors.WithLabelValues(operation).Inc()
}

func (m *Metrics) IncrCacheHit(cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
}

func (m *Metrics) IncrCacheMiss(cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
}

// IncrHTTPRequest counts a request by chi route pattern and status class
// ("2xx", "4xx", ...).
func (m *Metrics) IncrHTTPRequest(route, status string) {
	m.httpRequests.WithLabelValues(route, status).Inc()
}

func (m *Metrics) ObserveHealthScore(score int) {
	m.healthScores.Observe(float64(score))
}

func (m *Metrics) IncrGoalContribution() {
	m.goalContributions.Inc()
}

func (m *Metrics) IncrGoalCompletion() {
	m.goalCompletions.Inc()
}

func (m *Metrics) IncrValidationFailure(field string) {
	m.validationFailures.WithLabelValues(field).Inc()
}
