package pool

import (
	"testing"
	"time"
)

func TestRateLimit_ThrottlesExecution(t *testing.T) {
	// 50 tasks/sec with burst 1 means 10 tasks need at least ~180ms even
	// with more workers than tasks.
	p, err := New(4, WithRateLimit(50, 1))
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}

	start := time.Now()
	for _n := 0; _n < 10; _n++ {
		if _, err := Submit(p, func() (struct{}, error) {
			return struct{}{}, nil
		}); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	if err := p.Shutdown(10 * time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
	elapsed := time.Since(start)

	if elapsed < 100*time.Millisecond {
		t.Errorf("10 tasks at 50/sec finished in %v, limiter not applied", elapsed)
	}
}

func TestRateLimit_NoLimiterByDefault(t *testing.T) {
	p, err := New(4)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}

	start := time.Now()
	for _n := 0; _n < 100; _n++ {
		if _, err := Submit(p, func() (struct{}, error) {
			return struct{}{}, nil
		}); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	if err := p.Shutdown(10 * time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}

	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("100 trivial tasks took %v without a limiter", elapsed)
	}
}
