package pool

import (
	"github.com/google/uuid"
)

// Job is a unit of work run exactly once by one worker.
type Job func()

// Work is a job that produces a result, see SubmitWork.
type Work[T any] func() (T, error)

type Result[T any] struct {
	Data T
	Err  error
}

// Future receives the single Result of a Work submitted with SubmitWork.
type Future[T any] struct {
	id    uuid.UUID
	input chan Result[T]
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		id:    uuid.New(),
		input: make(chan Result[T], 1),
	}
}

func (f *Future[T]) ID() uuid.UUID {
	return f.id
}

func (f *Future[T]) C() <-chan Result[T] {
	return f.input
}

type WorkerState int32

const (
	WorkerIdle WorkerState = iota
	WorkerRunning
	WorkerStopped
)

func (s WorkerState) String() string {
	switch s {
	case WorkerIdle:
		return "idle"
	case WorkerRunning:
		return "running"
	case WorkerStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Stats is a point-in-time snapshot of the pool.
type Stats struct {
	Workers    int
	Idle       int
	Running    int
	Stopped    int
	QueueDepth int
	Submitted  uint64
	Completed  uint64
	Failed     uint64
	Closed     bool
}

// task is the queue item. report, when set, receives the fault of a
// panicking job.
type task struct {
	run    Job
	report func(error)
}
