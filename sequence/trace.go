// SPDX-License-Identifier: MIT
// File: trace.go
// Role: append-only, read-only-to-callers record of a perturbation sequence.

package sequence

import "github.com/katalvlaran/spectral/spectral"

// Trace is the ordered list of snapshots of one sequence. Index 0 is the
// target compared with itself; a finished sequence ends with the sentinel.
type Trace struct {
	snapshots []spectral.Snapshot
}

func (t *Trace) append(s spectral.Snapshot) { t.snapshots = append(t.snapshots, s) }

// Len returns the number of snapshots.
func (t *Trace) Len() int { return len(t.snapshots) }

// At returns snapshot i. Panics if i is out of range.
func (t *Trace) At(i int) spectral.Snapshot { return t.snapshots[i] }

// Last returns the final snapshot and false if the trace is empty.
func (t *Trace) Last() (spectral.Snapshot, bool) {
	if len(t.snapshots) == 0 {
		return spectral.Snapshot{}, false
	}
	return t.snapshots[len(t.snapshots)-1], true
}

// Snapshots returns a copy of the snapshot slice.
func (t *Trace) Snapshots() []spectral.Snapshot {
	out := make([]spectral.Snapshot, len(t.snapshots))
	copy(out, t.snapshots)

	return out
}

// Spectra returns each step's spectrum.
func (t *Trace) Spectra() [][]float64 {
	out := make([][]float64, len(t.snapshots))
	for i, s := range t.snapshots {
		out[i] = s.Spectrum
	}

	return out
}

// Centralities returns each step's normalized eigencentrality.
func (t *Trace) Centralities() [][]float64 {
	out := make([][]float64, len(t.snapshots))
	for i, s := range t.snapshots {
		out[i] = s.Centrality
	}

	return out
}

// BulkIndices returns each step's bulk index.
func (t *Trace) BulkIndices() []int {
	out := make([]int, len(t.snapshots))
	for i, s := range t.snapshots {
		out[i] = s.BulkIndex
	}

	return out
}

// RSS returns each step's reduced spectral similarity.
func (t *Trace) RSS() []float64 { return t.column(func(s spectral.Snapshot) float64 { return s.RSS }) }

// ISD returns each step's irreconcilable spectral difference.
func (t *Trace) ISD() []float64 { return t.column(func(s spectral.Snapshot) float64 { return s.ISD }) }

// TSS returns each step's total spectral similarity.
func (t *Trace) TSS() []float64 { return t.column(func(s spectral.Snapshot) float64 { return s.TSS }) }

// Entropies returns each step's normalized centrality entropy.
func (t *Trace) Entropies() []float64 {
	return t.column(func(s spectral.Snapshot) float64 { return s.Entropy })
}

func (t *Trace) column(f func(spectral.Snapshot) float64) []float64 {
	out := make([]float64, len(t.snapshots))
	for i, s := range t.snapshots {
		out[i] = f(s)
	}

	return out
}
