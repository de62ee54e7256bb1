// SPDX-License-Identifier: MIT
// File: sqlite.go
// Role: SQLite experiment store (modernc.org/sqlite, no cgo).

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/katalvlaran/spectral/experiment"
	"github.com/katalvlaran/spectral/spectral"
	_ "modernc.org/sqlite" // SQLite driver
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS experiments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    family TEXT NOT NULL,
    kind TEXT NOT NULL,
    name TEXT NOT NULL,
    expected_nodes REAL NOT NULL,
    expected_edges REAL NOT NULL,
    prepared_at TEXT NOT NULL,
    UNIQUE (family, kind, name)
);

CREATE TABLE IF NOT EXISTS samples (
    experiment_id INTEGER NOT NULL REFERENCES experiments(id) ON DELETE CASCADE,
    sample INTEGER NOT NULL,
    seed INTEGER NOT NULL,
    steps INTEGER NOT NULL,
    duration_ms INTEGER NOT NULL,
    PRIMARY KEY (experiment_id, sample)
);

CREATE TABLE IF NOT EXISTS steps (
    experiment_id INTEGER NOT NULL,
    sample INTEGER NOT NULL,
    step INTEGER NOT NULL,
    bulk_index INTEGER NOT NULL,
    rss REAL NOT NULL,
    isd REAL NOT NULL,
    tss REAL NOT NULL,
    nodes INTEGER NOT NULL,
    edges INTEGER NOT NULL,
    components INTEGER NOT NULL,
    entropy REAL NOT NULL,
    kl REAL NOT NULL,
    degenerate INTEGER NOT NULL,
    spectrum TEXT NOT NULL,    -- JSON array
    centrality TEXT NOT NULL,  -- JSON array
    PRIMARY KEY (experiment_id, sample, step),
    FOREIGN KEY (experiment_id, sample) REFERENCES samples(experiment_id, sample) ON DELETE CASCADE
);
`

// SQLiteSink stores experiments in a SQLite database.
type SQLiteSink struct {
	mu sync.Mutex
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and applies
// the schema.
func OpenSQLite(path string) (*SQLiteSink, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteSink{db: db}, nil
}

// Close closes the database.
func (s *SQLiteSink) Close() error { return s.db.Close() }

func (s *SQLiteSink) experimentID(ctx context.Context, q interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
}, info experiment.Info) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx,
		`SELECT id FROM experiments WHERE family = ? AND kind = ? AND name = ?`,
		info.Family, info.Kind.String(), info.Name).Scan(&id)
	return id, err
}

// Prepare registers the experiment and drops the samples of a previous run.
func (s *SQLiteSink) Prepare(ctx context.Context, info experiment.Info) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO experiments (family, kind, name, expected_nodes, expected_edges, prepared_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (family, kind, name) DO UPDATE SET
			expected_nodes = excluded.expected_nodes,
			expected_edges = excluded.expected_edges,
			prepared_at = excluded.prepared_at`,
		info.Family, info.Kind.String(), info.Name, info.ExpectedNodes, info.ExpectedEdges,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to register experiment %s: %w", info.Name, err)
	}
	id, err := s.experimentID(ctx, tx, info)
	if err != nil {
		return fmt.Errorf("failed to look up experiment %s: %w", info.Name, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM samples WHERE experiment_id = ?`, id); err != nil {
		return fmt.Errorf("failed to clear samples of %s: %w", info.Name, err)
	}

	return tx.Commit()
}

// WriteSample stores the sample and every snapshot of its trace in one
// transaction.
func (s *SQLiteSink) WriteSample(ctx context.Context, info experiment.Info, res experiment.SampleResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := s.experimentID(ctx, tx, info)
	if err != nil {
		return fmt.Errorf("experiment %s not prepared: %w", info.Name, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO samples (experiment_id, sample, seed, steps, duration_ms) VALUES (?, ?, ?, ?, ?)`,
		id, res.Index, res.Seed, res.Trace.Len()-1, res.Duration.Milliseconds()); err != nil {
		return fmt.Errorf("failed to insert sample %d: %w", res.Index, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO steps (experiment_id, sample, step, bulk_index, rss, isd, tss, nodes, edges,
			components, entropy, kl, degenerate, spectrum, centrality)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare step insert: %w", err)
	}
	defer stmt.Close()

	for step, snap := range res.Trace.Snapshots() {
		spectrum, err := json.Marshal(snap.Spectrum)
		if err != nil {
			return fmt.Errorf("failed to encode spectrum: %w", err)
		}
		centrality, err := json.Marshal(snap.Centrality)
		if err != nil {
			return fmt.Errorf("failed to encode centrality: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, id, res.Index, step, snap.BulkIndex, snap.RSS, snap.ISD, snap.TSS,
			snap.Nodes, snap.Edges, snap.Components, snap.Entropy, snap.KL, snap.Degenerate,
			string(spectrum), string(centrality)); err != nil {
			return fmt.Errorf("failed to insert step %d of sample %d: %w", step, res.Index, err)
		}
	}

	return tx.Commit()
}

// SampleRecord is one stored sample.
type SampleRecord struct {
	Index    int
	Seed     int64
	Steps    int
	Duration time.Duration
}

// Samples lists the stored samples of info's experiment in index order.
func (s *SQLiteSink) Samples(ctx context.Context, info experiment.Info) ([]SampleRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.sample, s.seed, s.steps, s.duration_ms
		FROM samples s JOIN experiments e ON e.id = s.experiment_id
		WHERE e.family = ? AND e.kind = ? AND e.name = ?
		ORDER BY s.sample`,
		info.Family, info.Kind.String(), info.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to query samples: %w", err)
	}
	defer rows.Close()

	var out []SampleRecord
	for rows.Next() {
		var (
			r  SampleRecord
			ms int64
		)
		if err := rows.Scan(&r.Index, &r.Seed, &r.Steps, &ms); err != nil {
			return nil, fmt.Errorf("failed to scan sample: %w", err)
		}
		r.Duration = time.Duration(ms) * time.Millisecond
		out = append(out, r)
	}

	return out, rows.Err()
}

// Snapshots returns the stored trace of one sample.
func (s *SQLiteSink) Snapshots(ctx context.Context, info experiment.Info, sample int) ([]spectral.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT st.bulk_index, st.rss, st.isd, st.tss, st.nodes, st.edges, st.components,
			st.entropy, st.kl, st.degenerate, st.spectrum, st.centrality
		FROM steps st JOIN experiments e ON e.id = st.experiment_id
		WHERE e.family = ? AND e.kind = ? AND e.name = ? AND st.sample = ?
		ORDER BY st.step`,
		info.Family, info.Kind.String(), info.Name, sample)
	if err != nil {
		return nil, fmt.Errorf("failed to query steps: %w", err)
	}
	defer rows.Close()

	var out []spectral.Snapshot
	for rows.Next() {
		var (
			snap                 spectral.Snapshot
			spectrum, centrality string
		)
		if err := rows.Scan(&snap.BulkIndex, &snap.RSS, &snap.ISD, &snap.TSS, &snap.Nodes, &snap.Edges,
			&snap.Components, &snap.Entropy, &snap.KL, &snap.Degenerate, &spectrum, &centrality); err != nil {
			return nil, fmt.Errorf("failed to scan step: %w", err)
		}
		if err := json.Unmarshal([]byte(spectrum), &snap.Spectrum); err != nil {
			return nil, fmt.Errorf("failed to decode spectrum: %w", err)
		}
		if err := json.Unmarshal([]byte(centrality), &snap.Centrality); err != nil {
			return nil, fmt.Errorf("failed to decode centrality: %w", err)
		}
		out = append(out, snap)
	}

	return out, rows.Err()
}

// Curves returns the RSS, ISD and TSS rows of every stored sample.
func (s *SQLiteSink) Curves(ctx context.Context, info experiment.Info) (experiment.Curves, error) {
	samples, err := s.Samples(ctx, info)
	if err != nil {
		return experiment.Curves{}, err
	}
	var c experiment.Curves
	for _, rec := range samples {
		snaps, err := s.Snapshots(ctx, info, rec.Index)
		if err != nil {
			return experiment.Curves{}, err
		}
		rss := make([]float64, len(snaps))
		isd := make([]float64, len(snaps))
		tss := make([]float64, len(snaps))
		for i, snap := range snaps {
			rss[i], isd[i], tss[i] = snap.RSS, snap.ISD, snap.TSS
		}
		c.RSS = append(c.RSS, rss)
		c.ISD = append(c.ISD, isd)
		c.TSS = append(c.TSS, tss)
	}

	return c, nil
}
