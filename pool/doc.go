// Package pool provides a small, generic fixed-size worker pool with
// future-style result handles.
//
// The primary type is Pool: a bounded set of workers draining one shared
// FIFO queue. Tasks are submitted asynchronously as callables; each
// submission returns a Future that resolves to the task's value or error
// once a worker has executed it. Because the pool is heterogeneous (any
// submission may carry its own result type), Submit is a generic function
// rather than a method.
//
// # Basic Usage
//
//	p, err := pool.New(4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Shutdown(0)
//
//	future, err := pool.Submit(p, func() (int, error) {
//	    return 6 * 7, nil
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	answer, err := future.Get()
//
// # Ordering and Shutdown
//
// Tasks are dequeued in strict submission order across the whole pool,
// though tasks running concurrently on different workers may complete in
// any order. Shutdown drains the queue before terminating workers: every
// task accepted before Shutdown began is guaranteed to execute, and
// Shutdown returns only after the last worker has exited. Submissions made
// after Shutdown has begun are rejected with ErrPoolClosed.
//
// # Error Handling
//
// A task failure, whether a returned error or a recovered panic, is
// delivered only through that task's own Future. It never stops a worker,
// affects sibling tasks, or surfaces anywhere else; the pool itself does
// no logging.
//
// # Configuration Options
//
//   - WithQueueCapacity(n): Pre-size the task queue backing storage
//   - WithRateLimit(tasksPerSecond, burst): Throttle task execution
//   - WithBeforeTaskStart(hook): Observe tasks as they begin executing
//   - WithOnTaskEnd(hook): Observe task completion and failure
//
// The package is designed to be small and idiomatic for Go 1.18+ (generics).
package pool
