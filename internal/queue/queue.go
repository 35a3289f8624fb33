// Package queue provides the thread-safe FIFO queue shared by a pool and
// its workers.
package queue

import "sync"

// Queue is an unbounded FIFO queue safe for concurrent use.
//
// Mutating operations take the write lock; Empty and Len take the read lock
// so concurrent observers do not serialize against each other. No operation
// blocks waiting for items: callers that need to sleep until work arrives
// coordinate through their own condition variable.
type Queue[T any] struct {
	mu    sync.RWMutex
	items []T
	head  int
}

// New creates an empty queue. capacity is an initial allocation hint for
// the backing storage; the queue itself grows without bound.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T]{items: make([]T, 0, capacity)}
}

// Push appends t to the tail of the queue.
func (q *Queue[T]) Push(t T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, t)
}

// Pop removes and returns the head of the queue. The second return value is
// false when the queue is empty; emptiness is an ordinary outcome here, not
// an error.
func (q *Queue[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var zero T
	if q.head == len(q.items) {
		return zero, false
	}

	t := q.items[q.head]
	q.items[q.head] = zero // drop the reference so it can be collected
	q.head++

	// Reclaim the drained prefix once the queue empties out.
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}

	return t, true
}

// Empty reports whether the queue currently holds no items.
func (q *Queue[T]) Empty() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.head == len(q.items)
}

// Len returns the number of items currently in the queue.
func (q *Queue[T]) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.items) - q.head
}
