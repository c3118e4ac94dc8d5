// Package server provides the admin HTTP server for hello-pool.
//
// The server uses the Gin web framework. It exposes the pool status API
// and the Prometheus metrics of the process; it never serves the hello
// traffic itself (see package hello).
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                      Admin HTTP Server                        │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Logger (ginzap.Ginzap, "http" logger)                  │  │
//	│  │  Recovery (ginzap.RecoveryWithZap, with stack)          │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│  /metrics          promhttp handler over the given Gatherer   │
//	│  /api/v1/*         handlers registered via callback           │
//	│  everything else   404 JSON error                             │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Modes
//
//   - dev: Gin runs in debug mode
//   - prod: Gin runs in release mode
//
// # Usage Example
//
//	srv := server.NewServer(cfg, registry, func(router *gin.RouterGroup) {
//	    v1.RegisterHandlers(router, handler)
//	})
//
//	go func() {
//	    if err := srv.Start(ctx); err != nil {
//	        log.Printf("server error: %v", err)
//	    }
//	}()
//
//	<-ctx.Done()
//	srv.Stop(shutdownCtx)
package server
