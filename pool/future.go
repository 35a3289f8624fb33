package pool

import (
	"context"
	"sync"
	"sync/atomic"
)

// Future holds the eventual outcome of one submitted task.
//
// A future is a write-once cell: the worker that executes the bound task
// stores exactly one outcome, either a value or an error, and every read
// afterwards observes that same outcome. It is safe to read a future from
// any number of goroutines, before or after resolution.
type Future[R any] struct {
	done  chan struct{}
	once  sync.Once
	ready atomic.Bool
	value R
	err   error
}

func newFuture[R any]() *Future[R] {
	return &Future[R]{done: make(chan struct{})}
}

// resolve stores the outcome and wakes every reader. Only the first call
// has any effect, which enforces the write-once contract on the producer
// side.
func (f *Future[R]) resolve(value R, err error) {
	f.once.Do(func() {
		f.value = value
		f.err = err
		f.ready.Store(true)
		close(f.done)
	})
}

// Get blocks until the task has executed, then returns its value or error.
// Calling Get after resolution is fine; repeated calls return the same
// outcome.
func (f *Future[R]) Get() (R, error) {
	<-f.done
	return f.value, f.err
}

// GetWithContext behaves like Get but gives up once ctx is done, returning
// the context's error. Giving up only abandons the wait: the task itself
// still runs to completion and the future can be read again later.
func (f *Future[R]) GetWithContext(ctx context.Context) (R, error) {
	select {
	case <-f.done:
		return f.value, f.err
	default:
	}

	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// TryGet returns the outcome without blocking. The boolean reports whether
// the future is resolved; until then the value and error are zero.
func (f *Future[R]) TryGet() (R, error, bool) {
	select {
	case <-f.done:
		return f.value, f.err, true
	default:
		var zero R
		return zero, nil, false
	}
}

// Done returns a channel that is closed once the outcome is available,
// for use in select statements.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// IsReady reports whether the outcome is available without blocking.
func (f *Future[R]) IsReady() bool {
	return f.ready.Load()
}
