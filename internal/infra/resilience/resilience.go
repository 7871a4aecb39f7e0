// Package resilience provides fault-tolerance patterns for calls to the
// data backend: retry with exponential backoff, circuit breaker and
// bulkhead.
package resilience

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/sanchez1595/Personal-finance/internal/domain"

	"github.com/sony/gobreaker"
)

// Config holds resilience parameters.
type Config struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxConcurrency int
}

// permanentError marks a failure that retrying cannot fix.
type permanentError struct {
	err error
}

func (p *permanentError) Error() string { return p.err.Error() }
func (p *permanentError) Unwrap() error { return p.err }

// Permanent wraps err so RetryWithBackoff gives up immediately.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// Retryable reports whether another attempt could succeed. Caller errors
// (validation, not found, conflict) and cancellations are final.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	var (
		perm *permanentError
		nf   *domain.ErrNotFound
		val  *domain.ErrValidation
		conf *domain.ErrConflict
	)
	switch {
	case errors.As(err, &perm), errors.As(err, &nf), errors.As(err, &val), errors.As(err, &conf):
		return false
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	}
	return true
}

// RetryWithBackoff executes fn with exponential backoff + jitter until it
// succeeds, fails permanently, or MaxRetries is exhausted. It respects
// context cancellation. Permanent wrappers are removed from the result.
func RetryWithBackoff(ctx context.Context, cfg Config, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !Retryable(lastErr) {
			break
		}

		if attempt < cfg.MaxRetries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff(cfg.InitialBackoff, attempt)):
			}
		}
	}

	return unwrapPermanent(lastErr)
}

func unwrapPermanent(err error) error {
	var perm *permanentError
	if errors.As(err, &perm) {
		return perm.err
	}
	return err
}

func backoff(initial time.Duration, attempt int) time.Duration {
	base := time.Duration(math.Pow(2, float64(attempt))) * initial
	if base <= 1 {
		return base
	}
	return base + time.Duration(rand.Int63n(int64(base/2)))
}

// NewCircuitBreaker creates a circuit breaker with sensible defaults.
// Caller errors do not count as failures.
func NewCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,                // half-open: allow 3 requests
		Interval:    30 * time.Second, // closed: reset counters every 30s
		Timeout:     10 * time.Second, // open -> half-open after 10s
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !Retryable(err)
		},
	})
}

// Bulkhead limits concurrent access to a resource.
type Bulkhead struct {
	sem chan struct{}
}

// NewBulkhead creates a bulkhead with the given max concurrency. Values
// below 1 are treated as 1.
func NewBulkhead(maxConcurrency int) *Bulkhead {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &Bulkhead{sem: make(chan struct{}, maxConcurrency)}
}

// Acquire blocks until a slot is available or context is cancelled.
func (b *Bulkhead) Acquire(ctx context.Context) error {
	select {
	case b.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees a slot.
func (b *Bulkhead) Release() {
	<-b.sem
}

// Guard runs every call through a bulkhead slot, the circuit breaker and
// the retry loop, in that order.
type Guard struct {
	name string
	cfg  Config
	cb   *gobreaker.CircuitBreaker
	bulk *Bulkhead
}

// NewGuard builds a Guard for the named dependency.
func NewGuard(name string, cfg Config) *Guard {
	return &Guard{
		name: name,
		cfg:  cfg,
		cb:   NewCircuitBreaker(name),
		bulk: NewBulkhead(cfg.MaxConcurrency),
	}
}

// State exposes the breaker state for health reporting.
func (g *Guard) State() gobreaker.State {
	return g.cb.State()
}

// Do executes fn with retries. An open breaker is reported as
// *domain.ErrCircuitOpen.
func (g *Guard) Do(ctx context.Context, fn func() error) error {
	return g.run(ctx, fn, true)
}

// DoOnce is Do without the retry loop, for writes that must not be
// replayed (inserts whose response may be lost after they commit).
func (g *Guard) DoOnce(ctx context.Context, fn func() error) error {
	return g.run(ctx, fn, false)
}

func (g *Guard) run(ctx context.Context, fn func() error, retry bool) error {
	if err := g.bulk.Acquire(ctx); err != nil {
		return err
	}
	defer g.bulk.Release()

	_, err := g.cb.Execute(func() (any, error) {
		if !retry {
			return nil, unwrapPermanent(fn())
		}
		return nil, RetryWithBackoff(ctx, g.cfg, fn)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &domain.ErrCircuitOpen{Service: g.name}
	}
	return err
}
