package pool

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AnonymousGithub5/taskpool/internal/queue"
)

// task is the type-erased unit of work held by the queue. The submitted
// callable, its future, and the surrounding hooks are bound into a single
// nullary run function at submission time; run returns the error the task
// resolved with so the worker never needs to know the result type.
type task struct {
	id  int64
	run func() error
}

// Pool is a fixed-size worker pool. Its workers are spawned at
// construction and drain one shared FIFO queue until Shutdown completes.
//
// All state, the queue, the termination flag, and the condition variable,
// is scoped to the Pool instance: independent pools coexist without
// sharing anything.
type Pool struct {
	conf *config

	tasks   *queue.Queue[task]
	workers int

	// mu guards stopping and backs cond. The condition-wait predicate in
	// the worker loop must be re-checked under mu on every wakeup.
	mu       sync.Mutex
	cond     *sync.Cond
	stopping bool

	// stateMu serializes submissions against shutdown initiation, so a
	// racing Submit either lands its task before the drain sentinel or is
	// rejected.
	stateMu sync.RWMutex
	closing bool

	taskIDs atomic.Int64
	done    chan struct{} // closed once every worker has returned

	submitted atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
}

// Stats is a point-in-time snapshot of pool activity. Queued is
// approximate while submissions are in flight.
type Stats struct {
	Submitted int64
	Completed int64
	Failed    int64
	Queued    int
}

// New creates a pool with workerCount workers and starts them immediately.
// workerCount must be positive; otherwise ErrInvalidWorkerCount is
// returned and no pool exists.
//
// Example:
//
//	p, err := pool.New(8, pool.WithQueueCapacity(256))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Shutdown(0)
func New(workerCount int, opts ...Option) (*Pool, error) {
	if workerCount <= 0 {
		return nil, ErrInvalidWorkerCount
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	p := &Pool{
		conf:    cfg,
		tasks:   queue.New[task](cfg.queueCapacity),
		workers: workerCount,
		done:    make(chan struct{}),
	}
	p.cond = sync.NewCond(&p.mu)

	var g errgroup.Group
	for _n := 0; _n < workerCount; _n++ {
		g.Go(p.worker)
	}

	go func() {
		_ = g.Wait()
		close(p.done)
	}()

	return p, nil
}

// Submit binds fn into a type-erased task, enqueues it, and wakes one
// waiting worker. It returns immediately with a Future that resolves to
// fn's value or error once a worker has executed it; the submitter is
// never blocked on execution. After Shutdown has begun, Submit rejects
// with ErrPoolClosed.
//
// Submit is a function rather than a method so every call site can pick
// its own result type against the same heterogeneous pool.
//
// Example:
//
//	future, err := pool.Submit(p, func() (string, error) {
//	    return fetchPage(url)
//	})
//	if err != nil {
//	    return err
//	}
//	page, err := future.Get()
func Submit[R any](p *Pool, fn func() (R, error)) (*Future[R], error) {
	f := newFuture[R]()
	id := p.taskIDs.Add(1)

	run := func() error {
		if p.conf.beforeTaskStart != nil {
			p.conf.beforeTaskStart(id)
		}

		value, err := runWithRecovery(fn)
		if err != nil {
			p.failed.Add(1)
		} else {
			p.completed.Add(1)
		}

		if p.conf.onTaskEnd != nil {
			p.conf.onTaskEnd(id, err)
		}

		f.resolve(value, err)
		return err
	}

	if err := p.enqueue(task{id: id, run: run}); err != nil {
		return nil, err
	}
	return f, nil
}

// enqueue pushes t through the shared submission path. The read lock lets
// concurrent submitters proceed in parallel while guaranteeing that none
// of them can slip a task in after Shutdown has marked the pool closing.
func (p *Pool) enqueue(t task) error {
	p.stateMu.RLock()
	defer p.stateMu.RUnlock()

	if p.closing {
		return ErrPoolClosed
	}

	p.submitted.Add(1)
	p.push(t)
	return nil
}

// push appends t to the queue and signals one waiting worker. The signal
// is raised under mu: a worker that just found the queue empty is either
// already blocked in Wait, or still holds mu and will observe the new
// item on its re-check. Shutdown uses push directly to enqueue the drain
// sentinel past the closing check.
func (p *Pool) push(t task) {
	p.tasks.Push(t)

	p.mu.Lock()
	p.cond.Signal()
	p.mu.Unlock()
}

// Shutdown drains the pool and terminates the workers. It is safe to call
// from any goroutine, once; later calls return ErrPoolClosed.
//
// The protocol is drain-then-flag. A no-op sentinel task is pushed through
// the ordinary queue and its future awaited first: under strict FIFO the
// sentinel resolving proves every task accepted before Shutdown began has
// been dequeued. Only then is the termination flag set and every worker
// woken. Setting the flag before the drain could strand queued tasks
// behind workers that observe the flag and exit.
//
// timeout bounds the whole call; 0 means wait forever. On expiry
// ErrShutdownTimeout is returned while the workers keep draining in the
// background, so no accepted task is ever dropped.
func (p *Pool) Shutdown(timeout time.Duration) error {
	p.stateMu.Lock()
	if p.closing {
		p.stateMu.Unlock()
		return ErrPoolClosed
	}
	p.closing = true
	p.stateMu.Unlock()

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	sentinel := newFuture[struct{}]()
	p.push(task{
		id: p.taskIDs.Add(1),
		run: func() error {
			sentinel.resolve(struct{}{}, nil)
			return nil
		},
	})
	drained := func() bool {
		_, err := sentinel.GetWithContext(ctx)
		return err == nil
	}()

	p.mu.Lock()
	p.stopping = true
	p.mu.Unlock()
	p.cond.Broadcast()

	if !drained {
		return ErrShutdownTimeout
	}
	return waitUntil(p.done, ctx)
}

// Stats returns a snapshot of pool activity.
func (p *Pool) Stats() Stats {
	return Stats{
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
		Failed:    p.failed.Load(),
		Queued:    p.tasks.Len(),
	}
}

// WorkerCount returns the fixed number of workers the pool was created
// with.
func (p *Pool) WorkerCount() int {
	return p.workers
}

// QueueLen returns the number of tasks waiting to be dequeued.
func (p *Pool) QueueLen() int {
	return p.tasks.Len()
}
