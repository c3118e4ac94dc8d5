package v1

// PoolStatusState defines model for PoolStatus.State.
type PoolStatusState string

const (
	PoolStatusStateRunning PoolStatusState = "running"
	PoolStatusStateClosed  PoolStatusState = "closed"
)

// PoolStatus defines model for PoolStatus.
type PoolStatus struct {
	Name       string          `json:"name"`
	State      PoolStatusState `json:"state"`
	Workers    int             `json:"workers"`
	Idle       int             `json:"idle"`
	Busy       int             `json:"busy"`
	Stopped    int             `json:"stopped"`
	QueueDepth int             `json:"queueDepth"`
	Submitted  uint64          `json:"submitted"`
	Completed  uint64          `json:"completed"`
	Failed     uint64          `json:"failed"`
}

// Health defines model for Health.
type Health struct {
	Status string `json:"status"`
}
