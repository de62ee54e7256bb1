// SPDX-License-Identifier: MIT
// File: commit.go
// Role: in-order hand-off of finished samples to sinks, telemetry and the report.

package experiment

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// committer receives samples in completion order and commits them in index
// order: sample i is written to every sink as soon as samples 0..i are done.
// Only samples that finished ahead of a slower predecessor wait in pending.
type committer struct {
	mu      sync.Mutex
	next    int
	pending map[int]SampleResult

	ctx    context.Context
	info   Info
	opts   options
	keep   bool
	logger zerolog.Logger
	rep    *Report
}

func newCommitter(ctx context.Context, info Info, o options, keep bool, n int, logger zerolog.Logger) *committer {
	return &committer{
		pending: make(map[int]SampleResult),
		// finished samples are persisted even when the batch is cancelled
		ctx:    context.WithoutCancel(ctx),
		info:   info,
		opts:   o,
		keep:   keep,
		logger: logger,
		rep:    &Report{Info: info, Results: make([]SampleResult, n)},
	}
}

// done records res and commits every sample that is now next in line.
func (c *committer) done(res SampleResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending[res.Index] = res
	for {
		r, ok := c.pending[c.next]
		if !ok {
			return
		}
		delete(c.pending, c.next)
		c.commit(&r)
		c.rep.Results[c.next] = r
		c.next++
	}
}

func (c *committer) commit(res *SampleResult) {
	if res.Err == nil {
		for _, s := range c.opts.sinks {
			if err := s.WriteSample(c.ctx, c.info, *res); err != nil {
				res.Err = fmt.Errorf("write sample: %w", err)
				break
			}
		}
	}
	if res.Trace != nil {
		res.Steps = res.Trace.Len() - 1
		res.RSS, res.ISD, res.TSS = res.Trace.RSS(), res.Trace.ISD(), res.Trace.TSS()
		if !c.keep {
			res.Trace = nil
		}
	}
	c.opts.recorder.ObserveSample(c.info.Name, c.info.Kind.String(), res.Steps+1, res.Duration, res.Err)

	if res.Err != nil {
		c.rep.Failures++
		c.logger.Error().Err(res.Err).Int("sample", res.Index).Int64("seed", res.Seed).Msg("sample failed")
		return
	}
	c.logger.Info().
		Int("sample", res.Index).
		Int64("seed", res.Seed).
		Int("steps", res.Steps).
		Dur("took", res.Duration).
		Msg("sample done")
}
