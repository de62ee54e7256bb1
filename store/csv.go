// SPDX-License-Identifier: MIT
// File: csv.go
// Role: CSV experiment layout, writer and reader.

package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/spectral/experiment"
)

// File names inside an experiment directory.
const (
	RSSFile          = "rss.csv"
	ISDFile          = "isd.csv"
	TSSFile          = "tss.csv"
	BulkIndicesFile  = "bulk_indices.csv"
	SpectraPrefix    = "spectra_sample_"
	CentralityPrefix = "normalized_eigencentralities_sample_"
)

// CSVSink writes experiments under a root directory.
type CSVSink struct {
	root string
}

// NewCSVSink returns a sink rooted at root; directories are created lazily.
func NewCSVSink(root string) *CSVSink { return &CSVSink{root: root} }

// Dir returns the directory of info's experiment.
func (s *CSVSink) Dir(info experiment.Info) string { return ExperimentDir(s.root, info) }

// ExperimentDir returns <root>/<family>/<kind>/<name>.
func ExperimentDir(root string, info experiment.Info) string {
	return filepath.Join(root, info.Family, info.Kind.String(), info.Name)
}

// Prepare creates the experiment directory and removes the append files of
// a previous run.
func (s *CSVSink) Prepare(_ context.Context, info experiment.Info) error {
	dir := s.Dir(info)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	for _, name := range []string{RSSFile, ISDFile, TSSFile, BulkIndicesFile} {
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", name, err)
		}
	}

	return nil
}

// WriteSample appends the sample's metric rows and writes its spectra and
// centralities files.
func (s *CSVSink) WriteSample(_ context.Context, info experiment.Info, res experiment.SampleResult) error {
	dir := s.Dir(info)
	tr := res.Trace
	bulk := make([]float64, 0, tr.Len())
	for _, b := range tr.BulkIndices() {
		bulk = append(bulk, float64(b))
	}
	appends := []struct {
		name string
		row  []float64
	}{
		{RSSFile, tr.RSS()},
		{ISDFile, tr.ISD()},
		{TSSFile, tr.TSS()},
		{BulkIndicesFile, bulk},
	}
	for _, a := range appends {
		if err := appendRow(filepath.Join(dir, a.name), a.row); err != nil {
			return err
		}
	}
	if err := writeRows(filepath.Join(dir, fmt.Sprintf("%s%d.csv", SpectraPrefix, res.Index)), tr.Spectra()); err != nil {
		return err
	}

	return writeRows(filepath.Join(dir, fmt.Sprintf("%s%d.csv", CentralityPrefix, res.Index)), tr.Centralities())
}

func formatRow(row []float64) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return out
}

func appendRow(path string, row []float64) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(formatRow(row)); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}

func writeRows(path string, rows [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	for _, row := range rows {
		if err := w.Write(formatRow(row)); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}

// ReadRows reads a CSV file of floats; rows may differ in length.
func ReadRows(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	out := make([][]float64, len(records))
	for i, rec := range records {
		row := make([]float64, 0, len(rec))
		for _, field := range rec {
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", path, i+1, err)
			}
			row = append(row, v)
		}
		out[i] = row
	}

	return out, nil
}

// LoadCurves reads the RSS, ISD and TSS files of info's experiment.
func LoadCurves(root string, info experiment.Info) (experiment.Curves, error) {
	dir := ExperimentDir(root, info)
	var (
		c   experiment.Curves
		err error
	)
	if c.RSS, err = ReadRows(filepath.Join(dir, RSSFile)); err != nil {
		return experiment.Curves{}, err
	}
	if c.ISD, err = ReadRows(filepath.Join(dir, ISDFile)); err != nil {
		return experiment.Curves{}, err
	}
	if c.TSS, err = ReadRows(filepath.Join(dir, TSSFile)); err != nil {
		return experiment.Curves{}, err
	}

	return c, nil
}
