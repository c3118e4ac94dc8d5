// Package pool implements a fixed-size worker pool for fire-and-forget jobs.
//
// The pool starts N long-lived workers at construction. Producers hand jobs
// to Submit, which queues them and returns immediately; idle workers compete
// for the next queued job and run it to completion before going back to the
// queue.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                              Pool                                   │
//	│                                                                     │
//	│  ┌──────────────┐      ┌──────────────┐      ┌──────────────┐       │
//	│  │   Worker 0   │      │   Worker 1   │      │  Worker N-1  │       │
//	│  └──────────────┘      └──────────────┘      └──────────────┘       │
//	│         ▲                     ▲                     ▲               │
//	│         │      Pop()          │      Pop()          │  Pop()        │
//	│         └─────────────────────┼─────────────────────┘               │
//	│                               │                                     │
//	│  ┌────────────────────────────┴────────────────────────────┐        │
//	│  │                 Job Queue (pkg/queue)                   │        │
//	│  │  [job1] [job2] [job3] ...                               │        │
//	│  └─────────────────────────────────────────────────────────┘        │
//	│                               ▲                                     │
//	│                               │                                     │
//	│                          Submit(job)                                │
//	└─────────────────────────────────────────────────────────────────────┘
//
// # Core Components
//
// Pool:
//   - Owns exactly N workers, fixed at construction
//   - Owns the producer side of the job queue
//   - Supports graceful shutdown via Close()
//
// Worker:
//   - Blocks on the queue, claims one job, runs it, repeats
//   - Recovers from panics, logs them with its id and keeps running
//   - Exits when the queue is closed and drained
//
// Future:
//   - Optional result slot for work submitted with SubmitWork
//   - Receives exactly one Result on C()
//
// # Worker Lifecycle
//
//	┌───────────┐      Pop() returns job     ┌───────────┐
//	│   Idle    │ ─────────────────────────► │  Running  │
//	│ (in Pop)  │                            │           │
//	└─────┬─────┘                            └─────┬─────┘
//	      │  ▲          job returns/panics         │
//	      │  └─────────────────────────────────────┘
//	      │
//	      │ queue closed and drained
//	      ▼
//	┌───────────┐
//	│  Stopped  │
//	└───────────┘
//
// # Errors
//
//   - New(0) returns an InvalidPoolSizeError and starts nothing
//   - Submit after Close returns a QueueClosedError and the job never runs
//   - A panicking job is reported as a JobPanicError in the logs (and on
//     the Future when submitted with SubmitWork); it never reaches Submit
//   - A job that calls runtime.Goexit is reported as a JobExitError and
//     its worker is restarted on a new goroutine, so the pool keeps size
//     workers
//
// # Graceful Shutdown
//
// Close() performs:
//
//  1. Closes the queue, so every later Submit fails
//  2. Workers keep draining jobs queued before the close
//  3. Each worker exits once the queue is empty
//  4. Close() returns after every worker goroutine has exited
//
// Close() is idempotent (uses sync.Once).
//
// # Usage Example
//
//	p, err := pool.New(4)
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	if err := p.Submit(func() { handle(conn) }); err != nil {
//	    conn.Close()
//	}
//
//	future, err := pool.SubmitWork(p, func() (int, error) {
//	    return compute(), nil
//	})
//	if err != nil {
//	    return err
//	}
//	result := <-future.C()
package pool
