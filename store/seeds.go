// SPDX-License-Identifier: MIT

package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// WriteSeeds writes one seed per line.
func WriteSeeds(path string, seeds []int64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	for _, s := range seeds {
		if err := w.Write([]string{strconv.FormatInt(s, 10)}); err != nil {
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

// ReadSeeds reads a seeds file. Every field of every line is a seed, so
// comma-separated files are accepted too.
func ReadSeeds(path string) ([]int64, error) {
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
	var seeds []int64
	for i, rec := range records {
		for _, field := range rec {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			s, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", path, i+1, err)
			}
			seeds = append(seeds, s)
		}
	}

	return seeds, nil
}
