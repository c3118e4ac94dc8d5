package errors

import (
	"errors"
	"fmt"
)

// ErrNilJob is returned when a nil job is submitted to the pool.
var ErrNilJob = errors.New("job is nil")

type InvalidPoolSizeError struct {
	Size int
}

func NewInvalidPoolSizeError(size int) *InvalidPoolSizeError {
	return &InvalidPoolSizeError{Size: size}
}

func (e *InvalidPoolSizeError) Error() string {
	return fmt.Sprintf("invalid pool size %d: must be at least 1", e.Size)
}

func IsInvalidPoolSizeError(err error) bool {
	var e *InvalidPoolSizeError
	return errors.As(err, &e)
}

type QueueClosedError struct{}

func NewQueueClosedError() *QueueClosedError {
	return &QueueClosedError{}
}

func (e *QueueClosedError) Error() string {
	return "queue is closed"
}

func IsQueueClosedError(err error) bool {
	var e *QueueClosedError
	return errors.As(err, &e)
}

// JobPanicError is reported when a job panics inside a worker.
type JobPanicError struct {
	WorkerID int
	Value    any
	Stack    []byte
}

func NewJobPanicError(workerID int, value any, stack []byte) *JobPanicError {
	return &JobPanicError{WorkerID: workerID, Value: value, Stack: stack}
}

func (e *JobPanicError) Error() string {
	return fmt.Sprintf("worker %d panicked: %v", e.WorkerID, e.Value)
}

// Unwrap exposes the panic value when the job panicked with an error.
func (e *JobPanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func IsJobPanicError(err error) bool {
	var e *JobPanicError
	return errors.As(err, &e)
}

// JobExitError is reported when a job ends its goroutine with
// runtime.Goexit instead of returning.
type JobExitError struct {
	WorkerID int
}

func NewJobExitError(workerID int) *JobExitError {
	return &JobExitError{WorkerID: workerID}
}

func (e *JobExitError) Error() string {
	return fmt.Sprintf("worker %d: job called runtime.Goexit", e.WorkerID)
}

func IsJobExitError(err error) bool {
	var e *JobExitError
	return errors.As(err, &e)
}
