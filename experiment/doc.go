// SPDX-License-Identifier: MIT

// Package experiment drives batches of perturbation sequences.
//
// An experiment is one graph family instance (builder.Spec) combined with one
// perturbation kind. Run executes Config.Samples independent samples, in
// parallel on a bounded errgroup, each with its own seed, its own model
// working copy and its own random source. Deterministic families share one
// immutable target across samples (model.Fork); stochastic families build a
// fresh instance per sample from that sample's seed.
//
// Every sample yields an explicit SampleResult. Failures never stop the
// batch: they are counted in Report.Failures, logged at error level, and
// joined by Report.Err. Successful traces are handed to every Sink in sample
// order once the batch finishes, so append-style sinks see deterministic row
// order regardless of scheduling.
//
// Summarize averages RSS, ISD and TSS per step across samples, padding
// shorter traces (0 for RSS and TSS, 1 for ISD) and projecting the step
// index onto the expected fraction of nodes or edges removed.
package experiment
