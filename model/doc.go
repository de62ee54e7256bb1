// Package model holds a graph family member in two copies: the immutable
// target built once from a builder.Spec, and a working copy that
// perturbations mutate.
//
// A Model also keeps an auxiliary edge list over the working copy so that a
// uniformly random edge can be drawn and removed in O(1) (PopEdge swaps the
// chosen entry with the last one).
//
// Fork returns a Model sharing the target and its spectral Reference but
// owning a fresh working copy; parallel samples each use their own fork.
package model
