package hello

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"github.com/kubev2v/hello-pool/pkg/pool"
)

type Submitter interface {
	Submit(job pool.Job) error
}

// Listener accepts TCP connections and submits one job per connection.
type Listener struct {
	addr    string
	pool    Submitter
	handler *Handler
	log     *zap.SugaredLogger

	mu        sync.Mutex
	ln        net.Listener
	ready     chan struct{}
	readyOnce sync.Once
}

func NewListener(addr string, p Submitter, h *Handler) *Listener {
	return &Listener{
		addr:    addr,
		pool:    p,
		handler: h,
		log:     zap.S().Named("hello"),
		ready:   make(chan struct{}),
	}
}

// Ready is closed once Serve has bound the socket or failed to. Addr
// stays nil after a failed bind.
func (l *Listener) Ready() <-chan struct{} {
	return l.ready
}

// Addr returns the bound address, or nil if the listener is not bound.
func (l *Listener) Addr() net.Addr {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.ln == nil {
		return nil
	}
	return l.ln.Addr()
}

// Serve blocks accepting connections until ctx is done. It returns nil on
// cancellation.
func (l *Listener) Serve(ctx context.Context) error {
	defer l.markReady()

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", l.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", l.addr, err)
	}
	defer ln.Close()

	l.mu.Lock()
	l.ln = ln
	l.mu.Unlock()
	l.markReady()

	stop := context.AfterFunc(ctx, func() { _ = ln.Close() })
	defer stop()

	l.log.Infow("hello listener started", "address", ln.Addr().String())

	b := backoff.NewExponentialBackOff()
	b.MaxInterval = time.Second

	for {
		conn, err := backoff.Retry(ctx, func() (net.Conn, error) {
			c, err := ln.Accept()
			if errors.Is(err, net.ErrClosed) {
				return nil, backoff.Permanent(err)
			}
			return c, err
		},
			backoff.WithBackOff(b),
			backoff.WithNotify(func(err error, d time.Duration) {
				l.log.Warnw("accept failed, retrying", "error", err, "retry_in", d)
			}),
		)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				l.log.Info("hello listener stopped")
				return nil
			}
			return fmt.Errorf("failed to accept connection: %w", err)
		}

		if err := l.pool.Submit(l.job(conn)); err != nil {
			_ = conn.Close()
			return fmt.Errorf("failed to submit connection: %w", err)
		}
	}
}

func (l *Listener) markReady() {
	l.readyOnce.Do(func() { close(l.ready) })
}

func (l *Listener) job(conn net.Conn) pool.Job {
	return func() {
		if err := l.handler.Handle(conn); err != nil {
			l.log.Warnw("failed to handle connection", "remote", conn.RemoteAddr().String(), "error", err)
		}
	}
}
