package pool

import (
	"golang.org/x/time/rate"
)

// Option is a functional option for configuring a Pool.
type Option func(*config)

type config struct {
	queueCapacity   int
	rateLimiter     *rate.Limiter
	beforeTaskStart func(id int64)
	onTaskEnd       func(id int64, err error)
}

func defaultConfig() *config {
	return &config{
		queueCapacity: 64,
	}
}

// WithQueueCapacity sets the initial capacity hint for the task queue.
// The queue stays unbounded regardless; this only pre-sizes its backing
// storage to avoid early reallocation under bursty submission.
func WithQueueCapacity(capacity int) Option {
	return func(cfg *config) {
		if capacity > 0 {
			cfg.queueCapacity = capacity
		}
	}
}

// WithRateLimit sets a rate limiter for controlling task throughput.
// tasksPerSecond specifies the maximum number of tasks to start per second
// and burst the number that may start back-to-back. This is useful for
// preventing overwhelming external services or APIs. If not specified, no
// rate limiting is applied.
//
// Example:
//
//	WithRateLimit(10, 5) // Allow 10 tasks/sec with burst of 5
func WithRateLimit(tasksPerSecond float64, burst int) Option {
	return func(cfg *config) {
		if tasksPerSecond > 0 && burst > 0 {
			cfg.rateLimiter = rate.NewLimiter(rate.Limit(tasksPerSecond), burst)
		}
	}
}

// WithBeforeTaskStart registers a hook invoked just before a submitted
// task begins executing on a worker. Tasks are type-erased inside the
// pool, so the hook receives the task id assigned at submission.
func WithBeforeTaskStart(hook func(id int64)) Option {
	return func(cfg *config) {
		cfg.beforeTaskStart = hook
	}
}

// WithOnTaskEnd registers a hook invoked after a submitted task finishes,
// with the error the task resolved with: nil on success, the returned
// error, or the converted panic. The hook runs before the task's future
// becomes readable.
func WithOnTaskEnd(hook func(id int64, err error)) Option {
	return func(cfg *config) {
		cfg.onTaskEnd = hook
	}
}
