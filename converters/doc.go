// SPDX-License-Identifier: MIT

// Package converters exports core graphs to formats read by graph
// visualization and analysis tools:
//   - GML (Gephi, Cytoscape, networkx.read_gml)
//   - whitespace-separated edge lists (networkx.read_edgelist)
//
// When labels are given (as returned by builder.Build), node i is written
// with labels[i]; otherwise the dense id is used.
package converters
