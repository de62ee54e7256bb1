// SPDX-License-Identifier: MIT
package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/model"
	"github.com/katalvlaran/spectral/perturb"
	"github.com/katalvlaran/spectral/sequence"
)

// ExampleRunner_RunSequence removes random edges from the star S_3.
//
// Scenario:
//
//	Every edge removal isolates a leaf, which is dropped with the edge, so
//	the star shrinks S_3 → S_2 → S_1 and then degenerates. All leaves are
//	alike, hence the trace is the same for every seed:
//
//	  step 0: target vs itself, TSS = 1
//	  step 1: spectrum [3 1 0] vs [4 1 1 0]
//	  step 2: spectrum [2 0]
//	  step 3: sentinel
func ExampleRunner_RunSequence() {
	m, err := model.New(builder.StarSpec{Leaves: 3})
	if err != nil {
		fmt.Println(err)
		return
	}
	r := sequence.New(m, perturb.NewSeededEngine(42), nil)
	tr, err := r.RunSequence(perturb.Edge)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("bulk:", tr.BulkIndices())
	fmt.Printf("rss:  %.3f\n", tr.RSS())
	fmt.Printf("tss:  %.3f\n", tr.TSS())
	fmt.Println("state:", r.State())
	// Output:
	// bulk: [3 2 1 0]
	// rss:  [1.000 0.757 0.500 0.000]
	// tss:  [1.000 0.736 0.471 0.000]
	// state: degenerate
}
