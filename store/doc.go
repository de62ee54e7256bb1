// SPDX-License-Identifier: MIT

// Package store persists experiment samples.
//
// CSVSink writes the directory layout
//
//	<root>/<family>/<kind>/<name>/
//	    rss.csv, isd.csv, tss.csv, bulk_indices.csv   one row per sample (append)
//	    spectra_sample_<i>.csv                        one row per step
//	    normalized_eigencentralities_sample_<i>.csv   one row per step
//
// and LoadCurves reads the metric files back for summarizing. The append
// files are removed when an experiment is prepared; per-sample files are
// overwritten.
//
// SQLiteSink stores the same data, plus per-step node, edge and component
// counts, in a single SQLite database.
//
// WriteSeeds and ReadSeeds handle seed files with one seed per line.
package store
