// Package metrics holds the Prometheus collectors of a docpipe run.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all run metrics. A nil *Metrics records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	FilesDiscovered prometheus.Counter
	FilesProcessed  prometheus.Counter
	FilesWritten    prometheus.Counter
	FilesFailed     *prometheus.CounterVec
	ParamRows       prometheus.Counter
	FileDuration    prometheus.Histogram
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		FilesDiscovered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "docpipe_files_discovered_total",
			Help: "Total number of source files found by discovery",
		}),
		FilesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "docpipe_files_processed_total",
			Help: "Total number of source files rendered successfully",
		}),
		FilesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "docpipe_files_written_total",
			Help: "Total number of output files written",
		}),
		FilesFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "docpipe_files_failed_total",
			Help: "Total number of source files that failed, by error kind",
		}, []string{"kind"}),
		ParamRows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "docpipe_param_rows_total",
			Help: "Total number of parameter table rows rendered",
		}),
		FileDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "docpipe_file_duration_seconds",
			Help:    "Time spent processing one source file",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}
	m.Registry.MustRegister(
		m.FilesDiscovered,
		m.FilesProcessed,
		m.FilesWritten,
		m.FilesFailed,
		m.ParamRows,
		m.FileDuration,
	)
	return m
}

// Discovered records n discovered files.
func (m *Metrics) Discovered(n int) {
	if m == nil {
		return
	}
	m.FilesDiscovered.Add(float64(n))
}

// Processed records one successfully processed file.
func (m *Metrics) Processed(d time.Duration, paramRows int) {
	if m == nil {
		return
	}
	m.FilesProcessed.Inc()
	m.ParamRows.Add(float64(paramRows))
	m.FileDuration.Observe(d.Seconds())
}

// Failed records one failed file.
func (m *Metrics) Failed(kind string) {
	if m == nil {
		return
	}
	m.FilesFailed.WithLabelValues(kind).Inc()
}

// Written records one written output file.
func (m *Metrics) Written() {
	if m == nil {
		return
	}
	m.FilesWritten.Inc()
}

// WriteTextfile writes the registry in the text exposition format, for the
// node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
