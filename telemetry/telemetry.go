// SPDX-License-Identifier: MIT
// Package telemetry counts experiment samples and sequence steps in a
// private prometheus registry, which the spectral command exports in the
// node_exporter textfile format after a run.
//
// A nil *Recorder is valid and records nothing.
package telemetry

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

// Recorder owns the collectors of one process.
type Recorder struct {
	reg      *prometheus.Registry
	samples  *prometheus.CounterVec
	steps    *prometheus.CounterVec
	length   *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

// NewRecorder registers the collectors on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		samples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spectral_samples_total",
			Help: "Perturbation sequences run, by family, kind and outcome",
		}, []string{"family", "kind", "outcome"}),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spectral_steps_total",
			Help: "Perturbation steps applied, by family and kind",
		}, []string{"family", "kind"}),
		length: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "spectral_sequence_length",
			Help:    "Trace length of completed sequences",
			Buckets: prometheus.ExponentialBuckets(2, 2, 12),
		}, []string{"kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "spectral_sample_duration_seconds",
			Help:    "Wall time of one sample",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"kind"}),
	}
	r.reg.MustRegister(r.samples, r.steps, r.length, r.duration)

	return r
}

// ObserveSample records one finished sample. traceLen is the number of
// snapshots, so steps = traceLen-1.
func (r *Recorder) ObserveSample(family, kind string, traceLen int, d time.Duration, err error) {
	if r == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeFailed
	}
	r.samples.WithLabelValues(family, kind, outcome).Inc()
	if traceLen > 1 {
		r.steps.WithLabelValues(family, kind).Add(float64(traceLen - 1))
	}
	if err == nil {
		r.length.WithLabelValues(kind).Observe(float64(traceLen))
	}
	r.duration.WithLabelValues(kind).Observe(d.Seconds())
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.reg
}

// WriteTextfile writes every collector to path in the text exposition
// format. It is a no-op on a nil Recorder.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("telemetry: write %s: %w", path, err)
	}
	return nil
}
