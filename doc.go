// Package spectral measures how stable a graph's Laplacian spectrum is when
// the graph is taken apart at random, one node or one edge at a time.
//
// 🚀 What does it do?
//
//	Starting from a member of a classic family (complete, complete
//	bipartite, star, path, cycle, hypercube, wheel, random binomial), it
//	repeatedly removes a random node or edge, drops any node left without
//	neighbors, and compares the perturbed spectrum with the starting one until
//	fewer than two nodes remain:
//		• RSS - reduced spectral similarity over the bulk of the spectrum
//		• ISD - irreconcilable spectral difference, the mass outside the bulk
//		• TSS - total spectral similarity, (1 − ISD) · RSS
//		• bulk index and normalized eigenvector centrality at every step
//
// Under the hood, everything is organized in subpackages:
//
//	core/       - undirected simple graph over dense int ids (roaring bitmap node set)
//	builder/    - graph families, their names and expected sizes
//	matrix/     - Laplacian & adjacency matrices, symmetric eigen solvers
//	bfs/        - breadth-first search and connected components
//	spectral/   - spectra, bulk index, centrality, RSS/ISD/TSS
//	model/      - immutable target graph + mutable working copy
//	perturb/    - random node and edge removal
//	sequence/   - one perturbation sequence and its trace
//	experiment/ - parallel samples, grids, mean curves
//	store/      - CSV and SQLite persistence, seed files
//	converters/ - GML and edge-list export
//	config/, logging/, telemetry/ - runtime configuration, zerolog, prometheus
//	cmd/spectral - the command-line tool
//
// Quick example (S_3, edge removal):
//
//	  1            1
//	  │            │
//	  C──2   →     C──2   →   C──2   →   (degenerate)
//	  │
//	  3
//
//	m, _ := model.New(builder.StarSpec{Leaves: 3})
//	r := sequence.New(m, perturb.NewSeededEngine(42), nil)
//	tr, _ := r.RunSequence(perturb.Edge)
//	fmt.Println(tr.BulkIndices()) // [3 2 1 0]
package spectral
