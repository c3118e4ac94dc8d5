package pool

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	srvErrors "github.com/kubev2v/hello-pool/pkg/errors"
	"github.com/kubev2v/hello-pool/pkg/queue"
)

type Option func(*Pool)

func WithLogger(l *zap.SugaredLogger) Option {
	return func(p *Pool) {
		p.log = l
	}
}

func WithName(name string) Option {
	return func(p *Pool) {
		p.name = name
	}
}

type Pool struct {
	name    string
	queue   *queue.Queue[task]
	workers []*worker
	log     *zap.SugaredLogger
	wg      sync.WaitGroup
	once    sync.Once

	submitted atomic.Uint64
	completed atomic.Uint64
	failed    atomic.Uint64
}

// New starts a pool of size workers. It returns once every worker
// goroutine is running.
func New(size int, opts ...Option) (*Pool, error) {
	if size < 1 {
		return nil, srvErrors.NewInvalidPoolSizeError(size)
	}

	p := &Pool{
		name:    "default",
		queue:   queue.New[task](),
		workers: make([]*worker, size),
		log:     zap.S().Named("pool"),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With("pool", p.name)

	var started sync.WaitGroup
	started.Add(size)
	for i := range size {
		w := newWorker(i, p)
		p.workers[i] = w
		p.spawn(w, &started)
	}
	started.Wait()

	p.log.Infow("pool started", "workers", size)
	return p, nil
}

// spawn runs w on a new goroutine tracked by Close. started, when set, is
// released once the goroutine is running.
func (p *Pool) spawn(w *worker, started *sync.WaitGroup) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if started != nil {
			started.Done()
		}
		w.run()
	}()
}

// Submit queues job and returns without waiting for it to run.
func (p *Pool) Submit(job Job) error {
	if job == nil {
		return srvErrors.ErrNilJob
	}
	return p.push(task{run: job})
}

// SubmitWork queues w and returns a Future that receives its result. A
// panic in w is delivered as a JobPanicError, a runtime.Goexit as a
// JobExitError.
func SubmitWork[T any](p *Pool, w Work[T]) (*Future[T], error) {
	if w == nil {
		return nil, srvErrors.ErrNilJob
	}

	f := newFuture[T]()
	t := task{
		run: func() {
			v, err := w()
			f.input <- Result[T]{Data: v, Err: err}
		},
		report: func(err error) {
			f.input <- Result[T]{Err: err}
		},
	}

	if err := p.push(t); err != nil {
		return nil, err
	}

	p.log.Debugw("work submitted", "id", f.ID())
	return f, nil
}

func (p *Pool) push(t task) error {
	// counted first so Completed never overtakes Submitted
	p.submitted.Add(1)
	if err := p.queue.Push(t); err != nil {
		p.submitted.Add(^uint64(0))
		return err
	}
	return nil
}

// Close stops accepting jobs, lets the workers drain the queue and waits
// for all of them to exit. It is safe to call more than once.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.log.Infow("closing pool", "pending", p.queue.Len())
		p.queue.Close()
		p.wg.Wait()
		p.log.Infow("pool closed", "completed", p.completed.Load(), "failed", p.failed.Load())
	})
}

func (p *Pool) Closed() bool {
	return p.queue.Closed()
}

func (p *Pool) Size() int {
	return len(p.workers)
}

func (p *Pool) Name() string {
	return p.name
}

func (p *Pool) Stats() Stats {
	s := Stats{
		Workers:    len(p.workers),
		QueueDepth: p.queue.Len(),
		Submitted:  p.submitted.Load(),
		Completed:  p.completed.Load(),
		Failed:     p.failed.Load(),
		Closed:     p.queue.Closed(),
	}
	for _, w := range p.workers {
		switch w.State() {
		case WorkerIdle:
			s.Idle++
		case WorkerRunning:
			s.Running++
		case WorkerStopped:
			s.Stopped++
		}
	}
	return s
}
