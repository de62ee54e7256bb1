// Package spectral quantifies how spectrally similar a perturbed graph is to
// its unperturbed form.
//
// For a spectrum s sorted descending:
//
//	BulkIndex(s)   shortest prefix length whose sum exceeds 0.95·Σs (len(s) if none)
//	RSS(p, t, b)   1 − ‖p[:b] − t[:b]‖ / ‖t[:b]‖        (0 when ‖t[:b]‖ = 0)
//	ISD(t, b)      1 − ‖t[:b]‖ / ‖t‖                    (0 when ‖t‖ = 0)
//	TSS(isd, rss)  (1 − isd) · rss
//
// ISD depends only on the target spectrum and the bulk index it is given; the
// perturbed spectrum enters through that bulk index alone.
//
// Eigencentrality is the principal adjacency eigenvector, absolute values
// normalized to sum 1, or the fixed pair [0.5, 0.5] for graphs with fewer
// than two edges.
//
// An Analyzer binds a matrix.Solver and produces a Reference for the target
// and one Snapshot per perturbation step. Sentinel() is the fixed snapshot
// recorded once a graph has become degenerate.
package spectral
