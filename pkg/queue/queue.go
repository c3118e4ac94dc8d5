package queue

import (
	"sync"

	"github.com/eapache/queue"

	srvErrors "github.com/kubev2v/hello-pool/pkg/errors"
)

// Queue is an unbounded FIFO shared by many producers and many consumers.
// Every pushed item is delivered to exactly one Pop caller.
type Queue[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  *queue.Queue
	closed bool
}

func New[T any]() *Queue[T] {
	q := &Queue[T]{items: queue.New()}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends v to the tail of the queue. It never waits for a consumer.
func (q *Queue[T]) Push(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return srvErrors.NewQueueClosedError()
	}

	q.items.Add(v)
	q.cond.Signal()
	return nil
}

// Pop blocks until an item is available or the queue is closed and drained.
// The second return value is false only in the latter case.
func (q *Queue[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.items.Length() == 0 {
		if q.closed {
			var zero T
			return zero, false
		}
		q.cond.Wait()
	}

	return q.items.Remove().(T), true
}

// Close stops accepting new items and wakes every blocked consumer.
// Items already queued are still handed out by Pop.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.cond.Broadcast()
}

func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Length()
}

func (q *Queue[T]) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}
