package v1

import (
	"github.com/kubev2v/hello-pool/internal/models"
)

// NewPoolStatusFromModel converts a models.PoolStatus to an API PoolStatus.
func NewPoolStatusFromModel(m models.PoolStatus) PoolStatus {
	var state PoolStatusState
	switch m.State {
	case models.PoolStateClosed:
		state = PoolStatusStateClosed
	default:
		state = PoolStatusStateRunning
	}

	return PoolStatus{
		Name:       m.Name,
		State:      state,
		Workers:    m.Workers,
		Idle:       m.Idle,
		Busy:       m.Busy,
		Stopped:    m.Stopped,
		QueueDepth: m.QueueDepth,
		Submitted:  m.Submitted,
		Completed:  m.Completed,
		Failed:     m.Failed,
	}
}
