package pool

import "context"

// waitUntil blocks until d is closed or ctx expires. It is used during
// graceful shutdown to wait for workers to finish; completion wins when
// both are ready.
func waitUntil(d <-chan struct{}, ctx context.Context) error {
	select {
	case <-d:
		return nil
	default:
	}

	select {
	case <-d:
		return nil
	case <-ctx.Done():
		return ErrShutdownTimeout
	}
}
