package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	v1 "github.com/kubev2v/hello-pool/api/v1"
	"github.com/kubev2v/hello-pool/internal/handlers"
	"github.com/kubev2v/hello-pool/internal/hello"
	"github.com/kubev2v/hello-pool/internal/metrics"
	"github.com/kubev2v/hello-pool/internal/server"
	"github.com/kubev2v/hello-pool/internal/services"
	"github.com/kubev2v/hello-pool/pkg/pool"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the hello listener and the admin API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	defer func() { _ = logger.Sync() }()

	zap.S().Infow("configuration loaded", "config", cfg.DebugMap(), "version", version)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, err := pool.New(cfg.Pool.NumWorkers, pool.WithName("hello"))
	if err != nil {
		return fmt.Errorf("failed to create pool: %w", err)
	}
	defer p.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if err := metrics.Register(reg, p); err != nil {
		return err
	}

	handler := handlers.New(services.NewPoolService(p))
	srv := server.NewServer(cfg, reg, func(router *gin.RouterGroup) {
		v1.RegisterHandlers(router, handler)
	})

	listener := hello.NewListener(
		cfg.Hello.Address,
		p,
		hello.NewHandler(cfg.Hello.ContentFile, cfg.Hello.ReadBufferSize, cfg.Hello.ReadTimeout),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return listener.Serve(gctx)
	})
	g.Go(func() error {
		return srv.Start(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		// restore default signal handling so a second interrupt kills the process
		stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(shutdownCtx)
	})

	err = g.Wait()

	zap.S().Infow("shutting down, draining pool", "pending", p.Stats().QueueDepth)
	p.Close()

	return err
}
