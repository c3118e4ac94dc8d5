package pool

import (
	"runtime/debug"
	"sync/atomic"

	srvErrors "github.com/kubev2v/hello-pool/pkg/errors"
)

type worker struct {
	id    int
	pool  *Pool
	state atomic.Int32
}

func newWorker(id int, p *Pool) *worker {
	return &worker{id: id, pool: p}
}

func (w *worker) State() WorkerState {
	return WorkerState(w.state.Load())
}

func (w *worker) run() {
	for {
		t, ok := w.pool.queue.Pop()
		if !ok {
			w.state.Store(int32(WorkerStopped))
			w.pool.log.Debugw("worker stopped", "worker", w.id)
			return
		}

		w.state.Store(int32(WorkerRunning))
		w.execute(t)
		w.state.Store(int32(WorkerIdle))
	}
}

// execute runs a single task. A panic is contained here so the worker
// keeps serving the queue. A job that calls runtime.Goexit takes the
// goroutine with it, so the worker is restarted on a fresh one.
func (w *worker) execute(t task) {
	finished := false
	defer func() {
		rec := recover()
		if finished {
			w.pool.completed.Add(1)
			return
		}

		var err error
		if rec != nil {
			panicErr := srvErrors.NewJobPanicError(w.id, rec, debug.Stack())
			w.pool.log.Errorw("job panicked", "worker", w.id, "error", panicErr, "stack", string(panicErr.Stack))
			err = panicErr
		} else {
			err = srvErrors.NewJobExitError(w.id)
			w.pool.log.Errorw("job exited its worker goroutine", "worker", w.id, "error", err)
		}
		w.pool.failed.Add(1)

		if t.report != nil {
			t.report(err)
		}

		if rec == nil {
			w.state.Store(int32(WorkerIdle))
			w.pool.spawn(w, nil)
		}
	}()

	t.run()
	finished = true
}
