// SPDX-License-Identifier: MIT
// File: summary.go
// Role: mean metric curves over the samples of an experiment.

package experiment

import "github.com/katalvlaran/spectral/perturb"

// Padding for samples that degenerated earlier than the longest one.
const (
	PadRSS = 0.0
	PadISD = 1.0
	PadTSS = 0.0
)

// Curves holds one row per sample; rows may differ in length.
type Curves struct {
	RSS [][]float64
	ISD [][]float64
	TSS [][]float64
}

// Summary is the per-step mean of each metric. Axis[j] is step j divided by
// the expected count of nodes (or edges) of the family.
type Summary struct {
	Name    string
	Kind    perturb.Kind
	Samples int
	Axis    []float64
	RSS     []float64
	ISD     []float64
	TSS     []float64
}

// Summarize averages c column by column after padding short rows.
func Summarize(info Info, c Curves) Summary {
	s := Summary{
		Name:    info.Name,
		Kind:    info.Kind,
		Samples: len(c.RSS),
		RSS:     meanPadded(c.RSS, PadRSS),
		ISD:     meanPadded(c.ISD, PadISD),
		TSS:     meanPadded(c.TSS, PadTSS),
	}
	div := info.Divisor()
	s.Axis = make([]float64, len(s.RSS))
	for j := range s.Axis {
		if div > 0 {
			s.Axis[j] = float64(j) / div
		} else {
			s.Axis[j] = float64(j)
		}
	}

	return s
}

func meanPadded(rows [][]float64, pad float64) []float64 {
	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	if width == 0 {
		return []float64{}
	}
	out := make([]float64, width)
	for _, r := range rows {
		for j := range out {
			if j < len(r) {
				out[j] += r[j]
			} else {
				out[j] += pad
			}
		}
	}
	for j := range out {
		out[j] /= float64(len(rows))
	}

	return out
}
