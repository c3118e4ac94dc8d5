// Package services implements the business logic layer behind the admin API.
//
// # Service Dependency Graph
//
//	Handlers (HTTP endpoints)
//	    │
//	    ▼
//	Services Layer
//	    └── PoolService ──► pool.Pool (through StatsProvider)
//
// # PoolService
//
// PoolService turns a pool.Stats snapshot into a models.PoolStatus:
//
//	┌──────────┐  Closed == false  ┌─────────┐
//	│  Stats   │ ────────────────► │ running │
//	│ snapshot │  Closed == true   ├─────────┤
//	│          │ ────────────────► │ closed  │
//	└──────────┘                   └─────────┘
//
// Healthy reports whether the pool still accepts jobs.
//
// Usage:
//
//	svc := services.NewPoolService(p)
//	status := svc.Status()
package services
