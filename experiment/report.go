// SPDX-License-Identifier: MIT
// File: report.go
// Role: per-sample results of one experiment.

package experiment

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/spectral/sequence"
)

// SampleResult is the outcome of one sample.
//
// Sinks always receive the Trace. In a Report it is nil unless
// Config.KeepTraces is set; Steps and the metric series are filled in
// either way. Trace may be partial (or nil) when Err is set.
type SampleResult struct {
	Index    int
	Seed     int64
	Trace    *sequence.Trace
	Steps    int
	RSS      []float64
	ISD      []float64
	TSS      []float64
	Duration time.Duration
	Err      error
}

// Report collects every sample of an experiment, in index order.
type Report struct {
	Info     Info
	Results  []SampleResult
	Failures int
}

// Succeeded returns the samples that finished without error.
func (r *Report) Succeeded() []SampleResult {
	out := make([]SampleResult, 0, len(r.Results)-r.Failures)
	for _, res := range r.Results {
		if res.Err == nil {
			out = append(out, res)
		}
	}

	return out
}

// Err joins every sample failure, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s sample %d (seed %d): %w", r.Info.Name, res.Index, res.Seed, res.Err))
		}
	}

	return errors.Join(errs...)
}

// Curves gathers the metric series of the successful samples.
func (r *Report) Curves() Curves {
	var c Curves
	for _, res := range r.Succeeded() {
		c.RSS = append(c.RSS, res.RSS)
		c.ISD = append(c.ISD, res.ISD)
		c.TSS = append(c.TSS, res.TSS)
	}

	return c
}
