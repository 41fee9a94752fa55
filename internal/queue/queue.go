// Package queue provides an unbounded many-producer, single-consumer FIFO
// used to carry draw events from producer goroutines into the render loop.
//
// Push never blocks, so producers are never slowed down by a busy or stalled
// render loop. The consumer drains whatever is queued once per loop tick.
package queue

import (
	"errors"
	"sync"
)

// ErrClosed is returned by Push after Close.
var ErrClosed = errors.New("queue: closed")

// Queue is an unbounded FIFO. Push is safe from any number of goroutines;
// Drain must only be called from the single consumer.
type Queue[T any] struct {
	mu     sync.Mutex
	items  []T
	spare  []T
	closed bool
	ready  chan struct{}
}

// New returns an empty open queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{ready: make(chan struct{}, 1)}
}

// Push appends v. It returns ErrClosed if the queue was closed.
func (q *Queue[T]) Push(v T) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	q.items = append(q.items, v)
	q.mu.Unlock()

	// Coalesce wake-ups: one pending notification is enough.
	select {
	case q.ready <- struct{}{}:
	default:
	}
	return nil
}

// Drain calls fn for every item queued at the time of the call, in push
// order, and returns how many were delivered. Items pushed while fn runs
// are left for the next Drain. fn runs without the lock held.
func (q *Queue[T]) Drain(fn func(T)) int {
	q.mu.Lock()
	items := q.items
	q.items = q.spare[:0]
	q.mu.Unlock()

	for i := range items {
		fn(items[i])
	}

	var zero T
	for i := range items {
		items[i] = zero
	}

	q.mu.Lock()
	q.spare = items[:0]
	q.mu.Unlock()
	return len(items)
}

// Ready returns a channel that receives after a Push. Notifications are
// coalesced, so one receive may stand for many pushes.
func (q *Queue[T]) Ready() <-chan struct{} {
	return q.ready
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close rejects further pushes. Items already queued can still be drained.
// Close is idempotent.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
}

// Closed reports whether Close has been called.
func (q *Queue[T]) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}
