package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kubev2v/hello-pool/pkg/pool"
)

const namespace = "hello_pool"

type StatsSource interface {
	Stats() pool.Stats
}

// Register installs the pool collectors on reg. Every collector reads a
// fresh pool.Stats snapshot at scrape time.
func Register(reg prometheus.Registerer, src StatsSource) error {
	collectors := []prometheus.Collector{
		// Worker pool
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "workers",
				Help:      "Number of pool workers",
			},
			func() float64 { return float64(src.Stats().Workers) },
		),
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "workers_busy",
				Help:      "Number of workers running a job",
			},
			func() float64 { return float64(src.Stats().Running) },
		),
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "queue_depth",
				Help:      "Current job queue depth",
			},
			func() float64 { return float64(src.Stats().QueueDepth) },
		),

		// Jobs
		prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "jobs_submitted_total",
				Help:      "Total jobs accepted by the pool",
			},
			func() float64 { return float64(src.Stats().Submitted) },
		),
		prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "jobs_completed_total",
				Help:      "Total jobs that returned normally",
			},
			func() float64 { return float64(src.Stats().Completed) },
		),
		prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "jobs_failed_total",
				Help:      "Total jobs that panicked",
			},
			func() float64 { return float64(src.Stats().Failed) },
		),
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("failed to register pool metrics: %w", err)
		}
	}
	return nil
}
