package pool

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// Every pool in this package must be fully joined by the time its test
	// returns; a leaked worker goroutine fails the run.
	goleak.VerifyTestMain(m)
}

func TestPool_Shutdown(t *testing.T) {
	t.Run("waits for in-flight tasks", func(t *testing.T) {
		p, err := New(2)
		if err != nil {
			t.Fatalf("failed to create pool: %v", err)
		}

		var completed atomic.Int32

		const n = 6
		for _n := 0; _n < n; _n++ {
			_, err := Submit(p, func() (struct{}, error) {
				time.Sleep(50 * time.Millisecond)
				completed.Add(1)
				return struct{}{}, nil
			})
			if err != nil {
				t.Fatalf("submit failed: %v", err)
			}
		}

		if err := p.Shutdown(5 * time.Second); err != nil {
			t.Fatalf("shutdown failed: %v", err)
		}

		if got := completed.Load(); got != n {
			t.Errorf("expected %d completed tasks after shutdown, got %d", n, got)
		}
	})

	t.Run("double shutdown fails", func(t *testing.T) {
		p, err := New(2)
		if err != nil {
			t.Fatalf("failed to create pool: %v", err)
		}

		if err := p.Shutdown(time.Second); err != nil {
			t.Fatalf("first shutdown failed: %v", err)
		}

		if err := p.Shutdown(time.Second); !errors.Is(err, ErrPoolClosed) {
			t.Errorf("expected ErrPoolClosed on second shutdown, got %v", err)
		}
	})

	t.Run("zero timeout waits forever", func(t *testing.T) {
		p, err := New(2)
		if err != nil {
			t.Fatalf("failed to create pool: %v", err)
		}

		for _n := 0; _n < 5; _n++ {
			_, _ = Submit(p, func() (struct{}, error) {
				time.Sleep(10 * time.Millisecond)
				return struct{}{}, nil
			})
		}

		if err := p.Shutdown(0); err != nil {
			t.Errorf("shutdown with zero timeout should succeed: %v", err)
		}
	})

	t.Run("timeout expires while tasks drain", func(t *testing.T) {
		p, err := New(1)
		if err != nil {
			t.Fatalf("failed to create pool: %v", err)
		}

		release := make(chan struct{})
		f, err := Submit(p, func() (struct{}, error) {
			<-release
			return struct{}{}, nil
		})
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}

		if err := p.Shutdown(20 * time.Millisecond); !errors.Is(err, ErrShutdownTimeout) {
			t.Errorf("expected ErrShutdownTimeout, got %v", err)
		}

		// Draining continues in the background: the task still executes.
		close(release)
		if _, err := f.Get(); err != nil {
			t.Errorf("task should still complete after timeout: %v", err)
		}

		// Let the workers exit before the leak check.
		select {
		case <-p.done:
		case <-time.After(2 * time.Second):
			t.Fatal("workers did not terminate after drain")
		}
	})
}
