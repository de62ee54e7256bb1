// Package bfs provides breadth-first traversal over a core.Graph and
// connected-component counting.
//
// BFS explores nodes in increasing hop distance from a start node, with an
// optional depth limit and context cancellation. Components partitions the
// live node set; a perturbed graph that has split reports more than one.
package bfs
