package pool

import (
	"context"
	"fmt"
	"runtime"
)

// worker is the run loop of one execution agent.
//
// The loop waits on the pool's condition variable while the queue is empty
// and no termination has been requested. The predicate is re-checked in a
// loop under mu on every wakeup, so a spurious or stale signal never leads
// to dequeuing from an empty queue. A worker exits only once the
// termination flag is set and the queue has nothing left to drain; until
// then every queued task stays reachable.
func (p *Pool) worker() error {
	for {
		p.mu.Lock()
		for !p.stopping && p.tasks.Empty() {
			p.cond.Wait()
		}
		stopping := p.stopping
		p.mu.Unlock()

		t, ok := p.tasks.Pop()
		if !ok {
			if stopping {
				return nil
			}
			// Another worker won the race for the only queued task;
			// go back to waiting.
			continue
		}

		p.execute(t)
	}
}

// execute runs one dequeued task. The task resolves its own future and
// reports its own outcome; nothing that happens inside it stops the
// worker or touches the queue.
func (p *Pool) execute(t task) {
	if p.conf.rateLimiter != nil {
		_ = p.conf.rateLimiter.Wait(context.Background())
	}

	_ = t.run()
}

// runWithRecovery executes the bound callable with panic recovery. A panic
// is converted to an error carrying the stack trace so a failing task
// resolves its own future instead of crashing the worker.
func runWithRecovery[R any](fn func() (R, error)) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("task panic: %v\nstack trace:\n%s", r, buf[:n])
		}
	}()

	return fn()
}
