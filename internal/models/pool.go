package models

type PoolState string

const (
	PoolStateRunning PoolState = "running"
	PoolStateClosed  PoolState = "closed"
)

// PoolStatus is the admin view of the worker pool.
type PoolStatus struct {
	Name       string
	State      PoolState
	Workers    int
	Idle       int
	Busy       int
	Stopped    int
	QueueDepth int
	Submitted  uint64
	Completed  uint64
	Failed     uint64
}
