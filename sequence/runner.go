// SPDX-License-Identifier: MIT
// File: runner.go
// Role: the Active/Degenerate state machine.

package sequence

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/spectral/model"
	"github.com/katalvlaran/spectral/perturb"
	"github.com/katalvlaran/spectral/spectral"
	"github.com/rs/zerolog"
)

// ErrNotActive indicates Step was called on a finished sequence.
var ErrNotActive = errors.New("sequence: runner is not active")

// State is the runner's lifecycle state.
type State int

const (
	Active State = iota + 1
	Degenerate
)

// String returns "active" or "degenerate".
func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "degenerate"
}

// Runner executes one perturbation sequence over a model.
// A Runner is not safe for concurrent use.
type Runner struct {
	model    *model.Model
	engine   *perturb.Engine
	analyzer *spectral.Analyzer
	logger   zerolog.Logger
	ctx      context.Context

	state State
	steps int
	trace *Trace
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger attaches a logger; steps are logged at debug level.
func WithLogger(l zerolog.Logger) Option { return func(r *Runner) { r.logger = l } }

// WithContext makes RunSequence stop with ctx.Err() when ctx is done.
func WithContext(ctx context.Context) Option {
	return func(r *Runner) {
		if ctx != nil {
			r.ctx = ctx
		}
	}
}

// New returns a Runner that has already been Reset. A nil analyzer selects
// the model's own.
func New(m *model.Model, engine *perturb.Engine, analyzer *spectral.Analyzer, opts ...Option) *Runner {
	if analyzer == nil {
		analyzer = m.Analyzer()
	}
	r := &Runner{
		model:    m,
		engine:   engine,
		analyzer: analyzer,
		logger:   zerolog.Nop(),
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.Reset()

	return r
}

// Reset restores the working copy and starts a new trace with the target's
// self-comparison.
func (r *Runner) Reset() {
	r.model.ResetWorkingCopy()
	r.trace = &Trace{}
	r.trace.append(r.model.Reference().Self())
	r.state = Active
	r.steps = 0
}

// State returns the current lifecycle state.
func (r *Runner) State() State { return r.state }

// Steps returns the number of Step calls that changed the trace since Reset.
func (r *Runner) Steps() int { return r.steps }

// Trace returns the trace recorded so far.
func (r *Runner) Trace() *Trace { return r.trace }

// Step applies one perturbation of kind and records the result.
//
// Errors:
//   - ErrNotActive once the runner is Degenerate.
//   - perturb.ErrInvalidPerturbationKind (state unchanged).
//   - analyzer failures, wrapped.
func (r *Runner) Step(kind perturb.Kind) error {
	if r.state != Active {
		return fmt.Errorf("Step: %w", ErrNotActive)
	}
	res, err := r.engine.Apply(r.model, kind)
	if err != nil {
		return fmt.Errorf("Step: %w", err)
	}
	r.steps++
	working := r.model.Working()
	if res.Outcome == perturb.Aborted || model.IsDegenerate(working) {
		r.trace.append(spectral.Sentinel())
		r.state = Degenerate
		r.logger.Debug().Int("step", r.steps).Str("kind", kind.String()).Msg("degenerate")
		return nil
	}
	snap, err := r.analyzer.Assess(r.model.Reference(), working)
	if err != nil {
		return fmt.Errorf("Step %d: %w", r.steps, err)
	}
	r.trace.append(snap)
	r.logger.Debug().
		Int("step", r.steps).
		Str("kind", kind.String()).
		Ints("removed", res.Removed).
		Int("nodes", snap.Nodes).
		Int("edges", snap.Edges).
		Float64("tss", snap.TSS).
		Msg("perturbed")

	return nil
}

// RunSequence resets the runner and steps until Degenerate.
func (r *Runner) RunSequence(kind perturb.Kind) (*Trace, error) {
	if kind != perturb.Node && kind != perturb.Edge {
		return nil, fmt.Errorf("RunSequence(%v): %w", kind, perturb.ErrInvalidPerturbationKind)
	}
	r.Reset()
	for r.state == Active {
		if err := r.ctx.Err(); err != nil {
			return r.trace, err
		}
		if err := r.Step(kind); err != nil {
			return r.trace, err
		}
	}

	return r.trace, nil
}
