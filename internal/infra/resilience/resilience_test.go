package resilience_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sanchez1595/Personal-finance/internal/domain"
	"github.com/sanchez1595/Personal-finance/internal/infra/resilience"
)

func TestRetryWithBackoff_Success(t *testing.T) {
	cfg := resilience.Config{MaxRetries: 3, InitialBackoff: 10 * time.Millisecond}

	callCount := 0
	err := resilience.RetryWithBackoff(context.Background(), cfg, func() error {
		callCount++
		return nil
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if callCount != 1 {
		t.Errorf("expected 1 call, got %d", callCount)
	}
}

func TestRetryWithBackoff_RetriesOnFailure(t *testing.T) {
	cfg := resilience.Config{MaxRetries: 3, InitialBackoff: 10 * time.Millisecond}

	callCount := 0
	err := resilience.RetryWithBackoff(context.Background(), cfg, func() error {
		callCount++
		if callCount < 3 {
			return errors.New("temporary error")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if callCount != 3 {
		t.Errorf("expected 3 calls, got %d", callCount)
	}
}

func TestRetryWithBackoff_ExhaustsRetries(t *testing.T) {
	cfg := resilience.Config{MaxRetries: 2, InitialBackoff: time.Millisecond}

	callCount := 0
	err := resilience.RetryWithBackoff(context.Background(), cfg, func() error {
		callCount++
		return errors.New("persistent error")
	})

	if err == nil {
		t.Fatal("expected error after retries exhausted")
	}
	if callCount != 3 {
		t.Errorf("expected 3 calls, got %d", callCount)
	}
}

func TestRetryWithBackoff_StopsOnCallerErrors(t *testing.T) {
	cfg := resilience.Config{MaxRetries: 5, InitialBackoff: time.Millisecond}

	for _, final := range []error{
		&domain.ErrNotFound{Resource: "goal", ID: "g1"},
		&domain.ErrValidation{Field: "amount", Message: "must be greater than 0"},
		resilience.Permanent(errors.New("bad request")),
	} {
		callCount := 0
		err := resilience.RetryWithBackoff(context.Background(), cfg, func() error {
			callCount++
			return final
		})
		if callCount != 1 {
			t.Errorf("%v: expected a single attempt, got %d", final, callCount)
		}
		if err == nil || err.Error() != final.Error() {
			t.Errorf("expected %v, got %v", final, err)
		}
	}
}

func TestRetryWithBackoff_UnwrapsPermanent(t *testing.T) {
	inner := errors.New("bad request")
	err := resilience.RetryWithBackoff(context.Background(), resilience.Config{}, func() error {
		return resilience.Permanent(inner)
	})
	if err != inner {
		t.Fatalf("expected the wrapped error back, got %#v", err)
	}
}

func TestRetryWithBackoff_RespectsContext(t *testing.T) {
	cfg := resilience.Config{MaxRetries: 5, InitialBackoff: time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := resilience.RetryWithBackoff(ctx, cfg, func() error {
		return errors.New("error")
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestBulkhead_AcquireRelease(t *testing.T) {
	bh := resilience.NewBulkhead(2)

	if err := bh.Acquire(context.Background()); err != nil {
		t.Fatalf("expected acquire, got %v", err)
	}
	if err := bh.Acquire(context.Background()); err != nil {
		t.Fatalf("expected acquire, got %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := bh.Acquire(ctx); err == nil {
		t.Fatal("expected timeout on third acquire")
	}

	bh.Release()

	if err := bh.Acquire(context.Background()); err != nil {
		t.Fatalf("expected acquire after release, got %v", err)
	}
}

func TestGuard_OpensAfterFailures(t *testing.T) {
	g := resilience.NewGuard("supabase", resilience.Config{MaxRetries: 0, MaxConcurrency: 2})

	for i := 0; i < 5; i++ {
		_ = g.Do(context.Background(), func() error { return errors.New("503") })
	}

	calls := 0
	err := g.Do(context.Background(), func() error {
		calls++
		return nil
	})

	var open *domain.ErrCircuitOpen
	if !errors.As(err, &open) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if calls != 0 {
		t.Errorf("expected call to be short-circuited")
	}
}

func TestGuard_CallerErrorsKeepCircuitClosed(t *testing.T) {
	g := resilience.NewGuard("supabase", resilience.Config{MaxRetries: 0, MaxConcurrency: 1})

	for i := 0; i < 10; i++ {
		_ = g.Do(context.Background(), func() error {
			return &domain.ErrNotFound{Resource: "goal", ID: "x"}
		})
	}

	if err := g.Do(context.Background(), func() error { return nil }); err != nil {
		t.Fatalf("expected closed circuit, got %v", err)
	}
}

func TestGuard_DoOnceDoesNotRetry(t *testing.T) {
	g := resilience.NewGuard("supabase", resilience.Config{MaxRetries: 3, InitialBackoff: time.Millisecond, MaxConcurrency: 1})

	calls := 0
	err := g.DoOnce(context.Background(), func() error {
		calls++
		return errors.New("502 bad gateway")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("expected exactly 1 attempt, got %d", calls)
	}

	err = g.DoOnce(context.Background(), func() error {
		return resilience.Permanent(&domain.ErrNotFound{Resource: "goal", ID: "x"})
	})
	var nf *domain.ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected unwrapped ErrNotFound, got %v", err)
	}
}
