package pool

import "errors"

var (
	// ErrInvalidWorkerCount is returned by New when the requested worker
	// count is zero or negative.
	ErrInvalidWorkerCount = errors.New("worker count must be positive")

	// ErrPoolClosed is returned by Submit once Shutdown has begun, and by
	// Shutdown itself when called more than once.
	ErrPoolClosed = errors.New("pool is closed")

	// ErrShutdownTimeout is returned by Shutdown when the pool could not
	// drain and terminate within the given timeout.
	ErrShutdownTimeout = errors.New("error in shutting down: timeout reached")
)
