// Package core provides a thread-safe, undirected simple Graph over dense
// integer node identifiers, tuned for repeated destructive sampling.
//
// The Graph G = (V,E) keeps:
//
//   - a roaring bitmap of live node ids (sorted iteration, O(log n) rank/select),
//   - per-node adjacency sets adj[id] = {neighbor: struct{}},
//   - per-node degree counters maintained on every mutation,
//   - a running edge count.
//
// Node ids live in [0, Capacity()). A graph is created with every id present
// (NewGraph(n)); nodes can only be removed afterwards, never re-added, which
// matches the lifecycle of a perturbed working copy.
//
// Why dense ids?
//
//   - Matrix construction maps the live node set onto 0..k-1 via Index (rank),
//     without rebuilding a lookup table on each step.
//   - Uniform random node selection is NodeAt(rng.Intn(NodeCount())) (select).
//
// Labeled construction:
//
//	lg := core.NewLabeledGraph()
//	_ = lg.AddEdge("Center", "1")
//	g, labels, err := lg.Canonical() // ids follow label insertion order
//
// Core Methods:
//
//	// Node lifecycle
//	HasNode(id int) bool                    // O(1)
//	RemoveNode(id int) ([]int, error)       // O(deg(v)); returns neighbor snapshot
//	Degree(id int) (int, error)             // O(1)
//	Neighbors(id int) ([]int, error)        // O(deg log deg), sorted
//
//	// Edge lifecycle
//	AddEdge(u, v int) error                 // O(1)
//	RemoveEdge(u, v int) error              // O(1)
//	HasEdge(u, v int) bool                  // O(1)
//	Edges() []Edge                          // O(E log E), sorted by (U,V)
//
//	// Dense index space
//	Nodes() []int, Index(id) (int, bool), NodeAt(i) (int, error)
//
//	// Cloning
//	Clone() *Graph                          // deep copy, O(V+E)
//
// Errors:
//
//	ErrNegativeSize        - NewGraph called with n < 0.
//	ErrNodeNotFound        - id outside capacity or already removed.
//	ErrEdgeNotFound        - RemoveEdge on a missing edge.
//	ErrLoopNotAllowed      - AddEdge(v, v).
//	ErrMultiEdgeNotAllowed - AddEdge on an existing edge.
//	ErrEmptyLabel          - LabeledGraph given an empty label.
package core
