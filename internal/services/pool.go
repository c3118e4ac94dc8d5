package services

import (
	"github.com/kubev2v/hello-pool/internal/models"
	"github.com/kubev2v/hello-pool/pkg/pool"
)

type StatsProvider interface {
	Name() string
	Stats() pool.Stats
}

type PoolService struct {
	pool StatsProvider
}

func NewPoolService(p StatsProvider) *PoolService {
	return &PoolService{pool: p}
}

func (s *PoolService) Status() models.PoolStatus {
	stats := s.pool.Stats()

	state := models.PoolStateRunning
	if stats.Closed {
		state = models.PoolStateClosed
	}

	return models.PoolStatus{
		Name:       s.pool.Name(),
		State:      state,
		Workers:    stats.Workers,
		Idle:       stats.Idle,
		Busy:       stats.Running,
		Stopped:    stats.Stopped,
		QueueDepth: stats.QueueDepth,
		Submitted:  stats.Submitted,
		Completed:  stats.Completed,
		Failed:     stats.Failed,
	}
}

func (s *PoolService) Healthy() bool {
	return !s.pool.Stats().Closed
}
