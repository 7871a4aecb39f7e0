// Package supabase is the FinanceStore backed by Supabase PostgREST.
//
// Every call goes through a resilience.Guard (bulkhead, circuit breaker,
// retry). Enum columns hold the literals the web app writes (ingreso,
// gasto, activa, ...); they are translated at this boundary.
package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sanchez1595/Personal-finance/internal/domain"
	"github.com/sanchez1595/Personal-finance/internal/infra/resilience"
	"github.com/sanchez1595/Personal-finance/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("supabase")

var _ port.FinanceStore = (*Client)(nil)

// Client wraps HTTP calls to Supabase PostgREST API.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	serviceRoleKey string
	guard          *resilience.Guard
	logger         *zap.Logger
}

// NewClient creates a Supabase client. The service role key bypasses row
// level security, so every query filters on user_id explicitly.
func NewClient(httpClient *http.Client, baseURL, apiKey, serviceRoleKey string, guard *resilience.Guard, logger *zap.Logger) *Client {
	if apiKey == "" {
		apiKey = serviceRoleKey
	}
	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         apiKey,
		serviceRoleKey: serviceRoleKey,
		guard:          guard,
		logger:         logger,
	}
}

// statusError is a non-2xx PostgREST response.
type statusError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("supabase %s %s returned %d: %s", e.Method, e.Path, e.Status, e.Body)
}

// classify turns a PostgREST status into an error. Client errors other
// than timeouts and rate limiting are not retried.
func classify(e *statusError) error {
	switch {
	case e.Status == http.StatusConflict:
		return &domain.ErrConflict{Message: "conflicting record: " + e.Body}
	case e.Status == http.StatusRequestTimeout, e.Status == http.StatusTooManyRequests:
		return e
	case e.Status >= 400 && e.Status < 500:
		return resilience.Permanent(e)
	}
	return e
}

// call runs fn under the guard inside a span named Supabase.<op>, retrying
// transient failures. Domain errors pass through, a blown deadline becomes
// ErrTimeout and everything else becomes ErrExternalService.
func (c *Client) call(ctx context.Context, op, userID string, fn func(ctx context.Context) error) error {
	return c.run(ctx, op, userID, true, fn)
}

// callOnce is call without retries. Inserts use it: a POST whose response
// is lost may already have committed.
func (c *Client) callOnce(ctx context.Context, op, userID string, fn func(ctx context.Context) error) error {
	return c.run(ctx, op, userID, false, fn)
}

func (c *Client) run(ctx context.Context, op, userID string, idempotent bool, fn func(ctx context.Context) error) error {
	ctx, span := tracer.Start(ctx, "Supabase."+op)
	defer span.End()
	span.SetAttributes(attribute.Bool("supabase.retryable", idempotent))
	if userID != "" {
		span.SetAttributes(attribute.String("user.id", userID))
	}

	do := c.guard.Do
	if !idempotent {
		do = c.guard.DoOnce
	}
	err := do(ctx, func() error { return fn(ctx) })
	if err == nil {
		return nil
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	var (
		nf   *domain.ErrNotFound
		conf *domain.ErrConflict
		open *domain.ErrCircuitOpen
		val  *domain.ErrValidation
	)
	switch {
	case errors.As(err, &nf), errors.As(err, &conf), errors.As(err, &open), errors.As(err, &val):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return &domain.ErrTimeout{Operation: "supabase/" + op}
	}
	return &domain.ErrExternalService{Service: "supabase/" + op, Err: err}
}

// Ping checks PostgREST answers with the configured keys.
func (c *Client) Ping(ctx context.Context) error {
	return c.call(ctx, "Ping", "", func(ctx context.Context) error {
		_, err := c.doGet(ctx, "categories", newQuery().set("select", "id").limit(1))
		return err
	})
}
