package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// kernelMetrics records launches of one shtool run. shtool is a batch job, so
// metrics are written once to a node-exporter textfile rather than served.
type kernelMetrics struct {
	registry *prometheus.Registry
	launches *prometheus.CounterVec
	threads  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newKernelMetrics() *kernelMetrics {
	m := &kernelMetrics{
		registry: prometheus.NewRegistry(),
		launches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shtool",
			Name:      "kernel_launches_total",
			Help:      "Number of kernel launches by kernel.",
		}, []string{"kernel", "precision"}),
		threads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shtool",
			Name:      "kernel_threads_total",
			Help:      "Number of in-bounds kernel threads by kernel.",
		}, []string{"kernel", "precision"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "shtool",
			Name:      "kernel_duration_seconds",
			Help:      "Wall-clock time of kernel launches, including waiting for completion.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, []string{"kernel", "precision"}),
	}
	m.registry.MustRegister(m.launches, m.threads, m.duration)
	return m
}

// observe records one completed launch of kernel covering threads work items.
func (m *kernelMetrics) observe(kernel, precision string, threads int, start time.Time) time.Duration {
	elapsed := time.Since(start)
	m.launches.WithLabelValues(kernel, precision).Inc()
	m.threads.WithLabelValues(kernel, precision).Add(float64(threads))
	m.duration.WithLabelValues(kernel, precision).Observe(elapsed.Seconds())
	return elapsed
}

func (m *kernelMetrics) writeTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return errors.Wrapf(err, "write metrics to %s", path)
	}
	return nil
}
