// Package sequence drives a model from its target state to degeneracy one
// perturbation at a time, recording a spectral Snapshot after each step.
//
// A Runner is either Active or Degenerate:
//
//	Reset()   → Active, trace = [target compared with itself]
//	Step(k)   Active → Active      (snapshot appended)
//	          Active → Degenerate  (sentinel appended, exactly once)
//	          Degenerate → error ErrNotActive
//
// RunSequence resets and steps until Degenerate, returning the Trace.
package sequence
