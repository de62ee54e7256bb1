// SPDX-License-Identifier: MIT
package spectral_test

import (
	"fmt"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/matrix"
	"github.com/katalvlaran/spectral/spectral"
)

// ExampleAnalyzer_Spectrum inspects the complete graph K4.
//
// Scenario:
//
//	The Laplacian of K_n has eigenvalue n with multiplicity n-1 and a single
//	zero. The bulk index is the shortest prefix of the descending spectrum
//	holding more than 95% of its mass: for K4 the three 4s (12 of 12). Every
//	node is equally central.
func ExampleAnalyzer_Spectrum() {
	g, _, err := builder.Build(builder.CompleteSpec{Nodes: 4})
	if err != nil {
		fmt.Println(err)
		return
	}
	a := spectral.NewAnalyzer()

	spectrum, err := a.Spectrum(g, matrix.Laplacian)
	if err != nil {
		fmt.Println(err)
		return
	}
	centrality, err := a.EigenCentrality(g)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("spectrum:   %.2f\n", spectrum)
	fmt.Printf("bulk index: %d\n", spectral.BulkIndex(spectrum))
	fmt.Printf("centrality: %.2f\n", centrality)
	// Output:
	// spectrum:   [4.00 4.00 4.00 0.00]
	// bulk index: 3
	// centrality: [0.25 0.25 0.25 0.25]
}
