// SPDX-License-Identifier: MIT
package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/experiment"
	"github.com/katalvlaran/spectral/perturb"
	"github.com/katalvlaran/spectral/spectral"
	"github.com/katalvlaran/spectral/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runStar(t *testing.T, sinks ...experiment.Sink) *experiment.Report {
	t.Helper()
	rep, err := experiment.Run(context.Background(), builder.StarSpec{Leaves: 3}, perturb.Edge,
		experiment.Config{Samples: 2, BaseSeed: 4, Workers: 2, KeepTraces: true}, experiment.WithSinks(sinks...))
	require.NoError(t, err)
	require.NoError(t, rep.Err())

	return rep
}

func TestCSVSink_Layout(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sink := store.NewCSVSink(root)
	rep := runStar(t, sink)

	dir := filepath.Join(root, "star", "edge", "S_3")
	assert.Equal(t, dir, sink.Dir(rep.Info))
	for _, name := range []string{
		store.RSSFile, store.ISDFile, store.TSSFile, store.BulkIndicesFile,
		"spectra_sample_0.csv", "spectra_sample_1.csv",
		"normalized_eigencentralities_sample_0.csv", "normalized_eigencentralities_sample_1.csv",
	} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	bulk, err := store.ReadRows(filepath.Join(dir, store.BulkIndicesFile))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 2, 1, 0}, {3, 2, 1, 0}}, bulk)

	spectra, err := store.ReadRows(filepath.Join(dir, "spectra_sample_0.csv"))
	require.NoError(t, err)
	require.Len(t, spectra, 4)
	assert.InDeltaSlice(t, []float64{4, 1, 1, 0}, spectra[0], 1e-9)
	assert.Equal(t, []float64{0}, spectra[3])
}

func TestCSVSink_PrepareTruncatesAppendFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sink := store.NewCSVSink(root)
	runStar(t, sink)
	rep := runStar(t, sink)

	c, err := store.LoadCurves(root, rep.Info)
	require.NoError(t, err)
	assert.Len(t, c.RSS, 2)
	assert.Len(t, c.ISD, 2)
	assert.Len(t, c.TSS, 2)
	assert.InDeltaSlice(t, rep.Results[1].Trace.TSS(), c.TSS[1], 1e-12)

	want := experiment.Summarize(rep.Info, rep.Curves())
	got := experiment.Summarize(rep.Info, c)
	assert.InDeltaSlice(t, want.RSS, got.RSS, 1e-12)
	assert.InDeltaSlice(t, want.Axis, got.Axis, 1e-12)
}

func TestReadRows_Ragged(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rss.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,0.5,0.25\n1,0.5\n"), 0o644))
	rows, err := store.ReadRows(path)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0.5, 0.25}, {1, 0.5}}, rows)

	require.NoError(t, os.WriteFile(path, []byte("1,x\n"), 0o644))
	_, err = store.ReadRows(path)
	require.Error(t, err)

	_, err = store.LoadCurves(t.TempDir(), experiment.Info{Family: "path", Name: "P_3", Kind: perturb.Node})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSeeds_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seeds.csv")
	seeds := []int64{9, 1234567, 0}
	require.NoError(t, store.WriteSeeds(path, seeds))
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "9\n1234567\n0\n", string(body))

	got, err := store.ReadSeeds(path)
	require.NoError(t, err)
	assert.Equal(t, seeds, got)

	require.NoError(t, os.WriteFile(path, []byte("5,6\n7\n"), 0o644))
	got, err = store.ReadSeeds(path)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 6, 7}, got)
}

func TestSQLiteSink(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := store.OpenSQLite(filepath.Join(t.TempDir(), "db", "spectral.db"))
	require.NoError(t, err)
	defer db.Close()

	runStar(t, db)
	rep := runStar(t, db)

	samples, err := db.Samples(ctx, rep.Info)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, 0, samples[0].Index)
	assert.Equal(t, int64(4), samples[0].Seed)
	assert.Equal(t, 3, samples[0].Steps)

	snaps, err := db.Snapshots(ctx, rep.Info, 1)
	require.NoError(t, err)
	want := rep.Results[1].Trace.Snapshots()
	require.Len(t, snaps, len(want))
	for i := range want {
		assert.Equal(t, want[i].BulkIndex, snaps[i].BulkIndex)
		assert.InDelta(t, want[i].TSS, snaps[i].TSS, 1e-12)
		assert.InDeltaSlice(t, want[i].Spectrum, snaps[i].Spectrum, 1e-12)
		assert.Equal(t, want[i].Degenerate, snaps[i].Degenerate)
		assert.Equal(t, want[i].Components, snaps[i].Components)
	}
	assert.Equal(t, spectral.Sentinel(), snaps[len(snaps)-1])

	c, err := db.Curves(ctx, rep.Info)
	require.NoError(t, err)
	assert.Len(t, c.RSS, 2)
	assert.InDeltaSlice(t, rep.Results[0].Trace.ISD(), c.ISD[0], 1e-12)
}

func TestSQLiteSink_WriteWithoutPrepare(t *testing.T) {
	t.Parallel()

	db, err := store.OpenSQLite(filepath.Join(t.TempDir(), "spectral.db"))
	require.NoError(t, err)
	defer db.Close()

	rep := runStar(t)
	err = db.WriteSample(context.Background(), rep.Info, rep.Results[0])
	require.Error(t, err)
}
