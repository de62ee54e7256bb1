// SPDX-License-Identifier: MIT
// File: snapshot.go
// Role: per-step and target spectral summaries.

package spectral

// Snapshot is the spectral summary recorded for one graph state.
type Snapshot struct {
	Spectrum   []float64
	Centrality []float64
	BulkIndex  int
	RSS        float64
	ISD        float64
	TSS        float64

	// Structural and distributional extras.
	Nodes      int
	Edges      int
	Components int
	Entropy    float64
	KL         float64

	// Degenerate marks the sentinel entry.
	Degenerate bool
}

// Sentinel returns the fixed snapshot recorded once a graph has fewer than
// two nodes: spectrum [0], centrality [0], bulk 0, RSS 0, ISD 1, TSS 0.
func Sentinel() Snapshot {
	return Snapshot{
		Spectrum:   []float64{0},
		Centrality: []float64{0},
		BulkIndex:  0,
		RSS:        0,
		ISD:        1,
		TSS:        0,
		Degenerate: true,
	}
}

// Reference caches what every step compares against.
type Reference struct {
	Spectrum   []float64
	BulkIndex  int
	Centrality []float64
	Norm       float64
	Nodes      int
	Edges      int
	Components int
}

// Self returns the snapshot of the target compared with itself: RSS over the
// target bulk index, ISD over the whole target spectrum (hence 0).
func (r Reference) Self() Snapshot {
	rss := RSS(r.Spectrum, r.Spectrum, r.BulkIndex)
	isd := ISD(r.Spectrum, len(r.Spectrum))

	return Snapshot{
		Spectrum:   cloneFloats(r.Spectrum),
		Centrality: cloneFloats(r.Centrality),
		BulkIndex:  r.BulkIndex,
		RSS:        rss,
		ISD:        isd,
		TSS:        TSS(isd, rss),
		Nodes:      r.Nodes,
		Edges:      r.Edges,
		Components: r.Components,
		Entropy:    NormalizedEntropy(r.Centrality),
		KL:         KLFromUniform(r.Centrality),
	}
}

func cloneFloats(s []float64) []float64 {
	if s == nil {
		return nil
	}
	out := make([]float64, len(s))
	copy(out, s)

	return out
}
