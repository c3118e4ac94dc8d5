// Package handlers implements the admin HTTP API of hello-pool.
//
// Handlers delegate to the services layer and only deal with response
// formatting and HTTP status codes.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Model-to-API conversion                                      │
//	│  - Status code mapping                                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Services Layer                             │
//	│  PoolService                                                    │
//	└─────────────────────────────────────────────────────────────────┘
//
// The Handler implements v1.ServerInterface and is registered with:
//
//	v1.RegisterHandlers(router, handler)
//
// # API Endpoints
//
//	┌────────┬──────────┬─────────────────────────────────────────────┐
//	│ Method │ Endpoint │ Description                                 │
//	├────────┼──────────┼─────────────────────────────────────────────┤
//	│ GET    │ /pool    │ Worker states, queue depth, job counters    │
//	│ GET    │ /health  │ 200 while the pool is open, 503 after close │
//	└────────┴──────────┴─────────────────────────────────────────────┘
//
// # Pool Handler
//
// GET /pool:
//
//	{
//	    "name": "hello",
//	    "state": "running",     // running|closed
//	    "workers": 4,
//	    "idle": 3,
//	    "busy": 1,
//	    "stopped": 0,
//	    "queueDepth": 0,
//	    "submitted": 12,
//	    "completed": 11,
//	    "failed": 0
//	}
package handlers
