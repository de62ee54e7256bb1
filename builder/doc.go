// Package builder constructs the canonical graph families used as targets
// for perturbation experiments.
//
// Every family is available two ways:
//
//   - As a Constructor closure (Complete(n), Star(leaves), ...) that writes
//     into a core.LabeledGraph. Compose them with BuildGraph.
//   - As a parameter struct (builder.Complete{Nodes: 10}, builder.Star{Leaves: 5})
//     implementing Spec. A Spec knows its Family, its display Name
//     ("K_10", "S_5"), and the node/edge counts expected for it.
//
// Families and their tags:
//
//	complete            K_n        n ≥ 2
//	complete_bipartite  K_n1_n2    n1, n2 ≥ 1, labels "L<i>"/"R<j>"
//	star                S_L        L ≥ 1 leaves, hub "Center" first
//	path                P_n        n ≥ 2
//	cycle               C_n        n ≥ 3
//	hyper_cube          Q_d        d ≥ 1, labels are d-bit binary strings
//	random_binomial     B_n_p      n ≥ 2, p ∈ [0,1], isolated nodes dropped
//	wheel               W_n        n ≥ 4 total nodes, hub "Center" first
//
// Decoded configuration records are mapped to a Spec with Resolve(tag, Params).
// Unknown tags yield ErrInvalidFamily.
//
// Determinism: for identical parameters and seed, labels and edges are
// emitted in the same order, so canonical ids are stable across runs.
package builder
