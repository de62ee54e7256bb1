// SPDX-License-Identifier: MIT
package experiment_test

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/config"
	"github.com/katalvlaran/spectral/core"
	"github.com/katalvlaran/spectral/experiment"
	"github.com/katalvlaran/spectral/model"
	"github.com/katalvlaran/spectral/perturb"
	"github.com/katalvlaran/spectral/spectral"
	"github.com/katalvlaran/spectral/telemetry"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSink struct {
	mu         sync.Mutex
	prepared   []string
	written    []int
	failOn     int
	prepareErr error
}

func newMemSink() *memSink { return &memSink{failOn: -1} }

func (s *memSink) Prepare(_ context.Context, info experiment.Info) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prepareErr != nil {
		return s.prepareErr
	}
	s.prepared = append(s.prepared, info.Name+"/"+info.Kind.String())
	return nil
}

func (s *memSink) WriteSample(_ context.Context, _ experiment.Info, res experiment.SampleResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res.Index == s.failOn {
		return errors.New("disk full")
	}
	s.written = append(s.written, res.Index)
	return nil
}

func TestRun_CompleteNode(t *testing.T) {
	t.Parallel()

	sink := newMemSink()
	rec := telemetry.NewRecorder()
	rep, err := experiment.Run(context.Background(), builder.CompleteSpec{Nodes: 5}, perturb.Node,
		experiment.Config{Samples: 6, BaseSeed: 100, Workers: 3},
		experiment.WithSinks(sink), experiment.WithRecorder(rec))
	require.NoError(t, err)
	require.NoError(t, rep.Err())

	assert.Equal(t, 0, rep.Failures)
	assert.Equal(t, "K_5", rep.Info.Name)
	assert.Equal(t, "complete", rep.Info.Family)
	require.Len(t, rep.Results, 6)
	for i, res := range rep.Results {
		assert.Equal(t, i, res.Index)
		assert.Equal(t, int64(100+i), res.Seed)
		// self, K4, K3, K2, sentinel
		assert.Equal(t, 4, res.Steps)
		require.Len(t, res.TSS, 5)
		assert.Equal(t, spectral.Sentinel().TSS, res.TSS[4])
		assert.Equal(t, spectral.Sentinel().ISD, res.ISD[4])
		assert.Nil(t, res.Trace)
	}
	assert.Equal(t, []string{"K_5/node"}, sink.prepared)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, sink.written)

	n, err := testutil.GatherAndCount(rec.Registry(), "spectral_samples_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRun_DeterministicForSeeds(t *testing.T) {
	t.Parallel()

	cfg := experiment.Config{Seeds: []int64{7, 8, 9}, Workers: 2, KeepTraces: true}
	spec := builder.RandomBinomialSpec{Nodes: 14, Prob: 0.35}
	a, err := experiment.Run(context.Background(), spec, perturb.Edge, cfg)
	require.NoError(t, err)
	b, err := experiment.Run(context.Background(), spec, perturb.Edge, cfg)
	require.NoError(t, err)

	require.Len(t, a.Results, 3)
	for i := range a.Results {
		require.NoError(t, a.Results[i].Err)
		assert.Equal(t, cfg.Seeds[i], a.Results[i].Seed)
		assert.Equal(t, a.Results[i].Trace.BulkIndices(), b.Results[i].Trace.BulkIndices())
		assert.Equal(t, a.Results[i].Trace.TSS(), b.Results[i].Trace.TSS())
	}
}

func TestRun_ConfigErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, err := experiment.Run(ctx, builder.PathSpec{Nodes: 4}, perturb.Node, experiment.Config{Samples: 3, Seeds: []int64{1, 2}})
	require.ErrorIs(t, err, experiment.ErrNotEnoughSeeds)

	_, err = experiment.Run(ctx, builder.PathSpec{Nodes: 4}, perturb.Node, experiment.Config{Samples: -1})
	require.ErrorIs(t, err, experiment.ErrInvalidConfig)

	_, err = experiment.Run(ctx, builder.PathSpec{Nodes: 4}, perturb.Kind(5), experiment.Config{Samples: 1})
	require.ErrorIs(t, err, perturb.ErrInvalidPerturbationKind)

	_, err = experiment.Run(ctx, builder.PathSpec{Nodes: 1}, perturb.Node, experiment.Config{Samples: 1})
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = experiment.Run(ctx, nil, perturb.Node, experiment.Config{Samples: 1})
	require.ErrorIs(t, err, experiment.ErrNilSpec)

	sink := newMemSink()
	sink.prepareErr = errors.New("read-only")
	rep, err := experiment.Run(ctx, builder.PathSpec{Nodes: 4}, perturb.Node, experiment.Config{Samples: 1}, experiment.WithSinks(sink))
	require.Error(t, err)
	assert.Nil(t, rep)
}

func TestRun_SampleFailuresAreCounted(t *testing.T) {
	t.Parallel()

	// p = 0 leaves every node isolated, so no instance can be built.
	sink := newMemSink()
	rep, err := experiment.Run(context.Background(), builder.RandomBinomialSpec{Nodes: 6, Prob: 0}, perturb.Node,
		experiment.Config{Samples: 3}, experiment.WithSinks(sink))
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Failures)
	assert.Empty(t, rep.Succeeded())
	require.ErrorIs(t, rep.Err(), builder.ErrConstructFailed)
	assert.Empty(t, sink.written)
	assert.Empty(t, experiment.Summarize(rep.Info, rep.Curves()).RSS)
}

func TestRun_SinkFailureMarksSample(t *testing.T) {
	t.Parallel()

	sink := newMemSink()
	sink.failOn = 1
	rep, err := experiment.Run(context.Background(), builder.CycleSpec{Nodes: 5}, perturb.Edge,
		experiment.Config{Samples: 3, Workers: 1}, experiment.WithSinks(sink))
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Failures)
	assert.Equal(t, []int{0, 2}, sink.written)
	assert.Len(t, rep.Succeeded(), 2)
	assert.ErrorContains(t, rep.Err(), "disk full")
}

// cancelSink cancels the batch on its first write and records what it saw.
type cancelSink struct {
	memSink
	cancel  context.CancelFunc
	ctxErrs []error
	steps   []int
}

func (s *cancelSink) WriteSample(ctx context.Context, info experiment.Info, res experiment.SampleResult) error {
	s.cancel()
	s.mu.Lock()
	s.ctxErrs = append(s.ctxErrs, ctx.Err())
	s.steps = append(s.steps, res.Trace.Len()-1)
	s.mu.Unlock()

	return s.memSink.WriteSample(ctx, info, res)
}

func TestRun_SamplesReachSinksAsTheyFinish(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sink := &cancelSink{memSink: memSink{failOn: -1}, cancel: cancel}
	rep, err := experiment.Run(ctx, builder.CompleteSpec{Nodes: 6}, perturb.Edge,
		experiment.Config{Samples: 4, Workers: 1}, experiment.WithSinks(sink))
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, rep)

	// sample 0 was written before sample 1 started, so only it succeeded
	assert.Equal(t, []int{0}, sink.written)
	assert.Equal(t, []error{nil}, sink.ctxErrs)
	assert.Equal(t, 3, rep.Failures)
	require.NoError(t, rep.Results[0].Err)
	assert.Equal(t, sink.steps[0], rep.Results[0].Steps)
	for _, res := range rep.Results[1:] {
		require.ErrorIs(t, res.Err, context.Canceled)
	}
}

func TestRun_InOrderCommitWithManyWorkers(t *testing.T) {
	t.Parallel()

	sink := newMemSink()
	rep, err := experiment.Run(context.Background(), builder.RandomBinomialSpec{Nodes: 12, Prob: 0.4}, perturb.Node,
		experiment.Config{Samples: 16, BaseSeed: 5, Workers: 4}, experiment.WithSinks(sink))
	require.NoError(t, err)
	want := make([]int, 0, 16)
	for i, res := range rep.Results {
		assert.Equal(t, i, res.Index)
		if res.Err == nil {
			want = append(want, i)
			assert.Len(t, res.RSS, res.Steps+1)
		}
	}
	assert.Equal(t, want, sink.written)
}

func TestRun_StochasticParamsCheckedOnce(t *testing.T) {
	t.Parallel()

	sink := newMemSink()
	rep, err := experiment.Run(context.Background(), builder.RandomBinomialSpec{Nodes: 10, Prob: 2}, perturb.Edge,
		experiment.Config{Samples: 5}, experiment.WithSinks(sink))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
	assert.Nil(t, rep)
	assert.Empty(t, sink.prepared)
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep, err := experiment.Run(ctx, builder.CompleteSpec{Nodes: 6}, perturb.Node, experiment.Config{Samples: 4})
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, rep)
	assert.Equal(t, 4, rep.Failures)
}

func TestRunModel_Custom(t *testing.T) {
	t.Parallel()

	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	m, err := model.FromGraph("tri-path", g)
	require.NoError(t, err)

	rep, err := experiment.RunModel(context.Background(), m, perturb.Edge, experiment.Config{Samples: 2})
	require.NoError(t, err)
	assert.Equal(t, experiment.CustomFamily, rep.Info.Family)
	assert.Equal(t, 2.0, rep.Info.Divisor())
	for _, res := range rep.Results {
		require.NoError(t, res.Err)
		// self, P2, sentinel
		assert.Equal(t, 2, res.Steps)
	}
	// the caller's model is untouched
	assert.Equal(t, 3, m.Working().NodeCount())
}

func TestSummarize_Padding(t *testing.T) {
	t.Parallel()

	info := experiment.Info{Name: "S_3", Kind: perturb.Node, ExpectedNodes: 4, ExpectedEdges: 3}
	s := experiment.Summarize(info, experiment.Curves{
		RSS: [][]float64{{1, 0.5, 0.2}, {1}},
		ISD: [][]float64{{0, 0.2, 0.4}, {0}},
		TSS: [][]float64{{1, 0.4, 0.12}, {1}},
	})
	assert.Equal(t, 2, s.Samples)
	assert.InDeltaSlice(t, []float64{1, 0.25, 0.1}, s.RSS, 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0.6, 0.7}, s.ISD, 1e-12)
	assert.InDeltaSlice(t, []float64{1, 0.2, 0.06}, s.TSS, 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5}, s.Axis, 1e-12)

	info.Kind = perturb.Edge
	s = experiment.Summarize(info, experiment.Curves{RSS: [][]float64{{1, 1, 1, 1}}})
	assert.InDeltaSlice(t, []float64{0, 1.0 / 3, 2.0 / 3, 1}, s.Axis, 1e-12)
}

func TestRunGrid_ContinuesPastBadEntries(t *testing.T) {
	t.Parallel()

	grid := &config.Grid{
		Samples: 2,
		Seed:    3,
		Experiments: []config.GridEntry{
			{Family: "path"},
			{Family: "star", Params: builder.Params{NumLeaves: 3}, Kinds: []string{"edge"}},
			{Family: "cycle", Params: builder.Params{NumNodes: 4}, Samples: 1},
		},
	}
	sink := newMemSink()
	reports, err := experiment.RunGrid(context.Background(), grid, experiment.Config{Workers: 2}, experiment.WithSinks(sink))
	require.ErrorIs(t, err, builder.ErrMissingParam)
	require.Len(t, reports, 3)
	assert.Equal(t, []string{"S_3/edge", "C_4/node", "C_4/edge"}, sink.prepared)
	assert.Len(t, reports[0].Results, 2)
	assert.Equal(t, int64(3), reports[0].Results[0].Seed)
	assert.Len(t, reports[1].Results, 1)
}

func TestGenerateSeeds(t *testing.T) {
	t.Parallel()

	a := experiment.GenerateSeeds(rand.New(rand.NewSource(1)), 50)
	b := experiment.GenerateSeeds(rand.New(rand.NewSource(1)), 50)
	assert.Equal(t, a, b)
	for _, s := range a {
		assert.GreaterOrEqual(t, s, int64(0))
		assert.Less(t, s, int64(experiment.MaxSeed))
	}
}
