// SPDX-License-Identifier: MIT
// File: experiment.go
// Role: batch configuration, sinks and the parallel sample driver.

package experiment

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/model"
	"github.com/katalvlaran/spectral/perturb"
	"github.com/katalvlaran/spectral/sequence"
	"github.com/katalvlaran/spectral/spectral"
	"github.com/katalvlaran/spectral/telemetry"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Sentinel errors.
var (
	ErrInvalidConfig  = errors.New("experiment: invalid configuration")
	ErrNotEnoughSeeds = errors.New("experiment: fewer seeds than samples")
	ErrNilSpec        = errors.New("experiment: nil family spec")
)

// CustomFamily is the Info.Family of experiments over hand-built graphs.
const CustomFamily = "custom"

// Info identifies an experiment; sinks key their output on it.
type Info struct {
	Family        string
	Name          string
	Kind          perturb.Kind
	ExpectedNodes float64
	ExpectedEdges float64
}

// InfoFor describes spec perturbed by kind.
func InfoFor(spec builder.Spec, kind perturb.Kind) Info {
	return Info{
		Family:        spec.Family().String(),
		Name:          spec.Name(),
		Kind:          kind,
		ExpectedNodes: spec.ExpectedNodes(),
		ExpectedEdges: spec.ExpectedEdges(),
	}
}

// Divisor is the expected count of the perturbed element, the unit of the
// fractional step axis.
func (i Info) Divisor() float64 {
	if i.Kind == perturb.Edge {
		return i.ExpectedEdges
	}
	return i.ExpectedNodes
}

// Config sizes a batch.
//
// When Seeds is non-empty sample i uses Seeds[i] and Samples defaults to
// len(Seeds); otherwise sample i uses BaseSeed+i. Workers <= 0 means one
// worker per CPU. Unless KeepTraces is set, each sample's trace is released
// once the sinks have it and the Report keeps only its metric series.
type Config struct {
	Samples    int
	Seeds      []int64
	BaseSeed   int64
	Workers    int
	KeepTraces bool
}

func (c Config) seeds() ([]int64, error) {
	if c.Samples < 0 {
		return nil, fmt.Errorf("samples=%d: %w", c.Samples, ErrInvalidConfig)
	}
	if len(c.Seeds) > 0 {
		n := c.Samples
		if n == 0 {
			n = len(c.Seeds)
		}
		if n > len(c.Seeds) {
			return nil, fmt.Errorf("%d samples, %d seeds: %w", n, len(c.Seeds), ErrNotEnoughSeeds)
		}
		return c.Seeds[:n], nil
	}
	out := make([]int64, c.Samples)
	for i := range out {
		out[i] = c.BaseSeed + int64(i)
	}

	return out, nil
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// Sink persists finished samples. Prepare is called once before any sample
// runs. WriteSample is called for each successful sample in index order,
// one call at a time, as soon as every earlier sample has finished; its
// context is not cancelled when the batch is.
type Sink interface {
	Prepare(ctx context.Context, info Info) error
	WriteSample(ctx context.Context, info Info, res SampleResult) error
}

// Option configures Run, RunModel and RunGrid.
type Option func(*options)

type options struct {
	logger   zerolog.Logger
	recorder *telemetry.Recorder
	analyzer *spectral.Analyzer
	sinks    []Sink
}

// WithLogger logs samples at info and failures at error; sequences log their
// steps at debug through the same logger.
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.logger = l } }

// WithRecorder counts samples and steps.
func WithRecorder(r *telemetry.Recorder) Option { return func(o *options) { o.recorder = r } }

// WithAnalyzer selects the analyzer (and so the eigen solver) for models
// built by Run.
func WithAnalyzer(a *spectral.Analyzer) Option { return func(o *options) { o.analyzer = a } }

// WithSinks appends persistence sinks.
func WithSinks(sinks ...Sink) Option {
	return func(o *options) { o.sinks = append(o.sinks, sinks...) }
}

func resolveOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o options) modelOptions() []model.Option {
	mopts := []model.Option{model.WithLogger(o.logger)}
	if o.analyzer != nil {
		mopts = append(mopts, model.WithAnalyzer(o.analyzer))
	}

	return mopts
}

type modelFactory func(seed int64) (*model.Model, error)

// Run executes an experiment over spec.
//
// The returned error covers setup only (invalid kind or config, family
// parameters out of range, a deterministic family that cannot be built, a
// failing Sink.Prepare) and
// context cancellation; per-sample failures are reported in the Report.
func Run(ctx context.Context, spec builder.Spec, kind perturb.Kind, cfg Config, opts ...Option) (*Report, error) {
	if spec == nil {
		return nil, fmt.Errorf("experiment.Run: %w", ErrNilSpec)
	}
	o := resolveOptions(opts)
	info := InfoFor(spec, kind)

	var newModel modelFactory
	if spec.Family().Stochastic() {
		if v, ok := spec.(builder.Validator); ok {
			if err := v.Validate(); err != nil {
				return nil, fmt.Errorf("experiment.Run(%s): %w", info.Name, err)
			}
		}
		newModel = func(seed int64) (*model.Model, error) {
			mopts := append(o.modelOptions(), model.WithBuilderOptions(builder.WithSeed(seed)))
			return model.New(spec, mopts...)
		}
	} else {
		base, err := model.New(spec, o.modelOptions()...)
		if err != nil {
			return nil, fmt.Errorf("experiment.Run(%s): %w", info.Name, err)
		}
		newModel = func(int64) (*model.Model, error) { return base.Fork(), nil }
	}

	return run(ctx, info, cfg, o, newModel)
}

// RunModel executes an experiment over an existing model; every sample runs
// on a fork of m. Experiments over models without a Spec are reported under
// CustomFamily with the target's node and edge counts as expectations.
func RunModel(ctx context.Context, m *model.Model, kind perturb.Kind, cfg Config, opts ...Option) (*Report, error) {
	var info Info
	if spec := m.Spec(); spec != nil {
		info = InfoFor(spec, kind)
	} else {
		ref := m.Reference()
		info = Info{
			Family:        CustomFamily,
			Name:          m.Name(),
			Kind:          kind,
			ExpectedNodes: float64(ref.Nodes),
			ExpectedEdges: float64(ref.Edges),
		}
	}

	return run(ctx, info, cfg, resolveOptions(opts), func(int64) (*model.Model, error) { return m.Fork(), nil })
}

func run(ctx context.Context, info Info, cfg Config, o options, newModel modelFactory) (*Report, error) {
	if info.Kind != perturb.Node && info.Kind != perturb.Edge {
		return nil, fmt.Errorf("experiment %s: %w", info.Name, perturb.ErrInvalidPerturbationKind)
	}
	seeds, err := cfg.seeds()
	if err != nil {
		return nil, fmt.Errorf("experiment %s: %w", info.Name, err)
	}
	for _, s := range o.sinks {
		if err := s.Prepare(ctx, info); err != nil {
			return nil, fmt.Errorf("experiment %s: prepare sink: %w", info.Name, err)
		}
	}

	logger := o.logger.With().Str("experiment", info.Name).Str("kind", info.Kind.String()).Logger()
	logger.Info().Int("samples", len(seeds)).Int("workers", cfg.workers()).Msg("experiment started")

	c := newCommitter(ctx, info, o, cfg.KeepTraces, len(seeds), logger)
	var g errgroup.Group
	g.SetLimit(cfg.workers())
	for i, seed := range seeds {
		g.Go(func() error {
			c.done(runSample(ctx, i, seed, info.Kind, newModel, logger))
			return nil
		})
	}
	_ = g.Wait()

	rep := c.rep
	logger.Info().Int("failures", rep.Failures).Msg("experiment finished")

	if err := ctx.Err(); err != nil {
		return rep, err
	}
	return rep, nil
}

func runSample(ctx context.Context, idx int, seed int64, kind perturb.Kind, newModel modelFactory, logger zerolog.Logger) SampleResult {
	res := SampleResult{Index: idx, Seed: seed}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	start := time.Now()
	m, err := newModel(seed)
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}
	r := sequence.New(m, perturb.NewSeededEngine(seed), nil,
		sequence.WithLogger(logger.With().Int("sample", idx).Logger()),
		sequence.WithContext(ctx),
	)
	res.Trace, res.Err = r.RunSequence(kind)
	res.Duration = time.Since(start)

	return res
}
