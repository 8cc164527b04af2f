// SPDX-License-Identifier: MIT

// Package store persists experiment runs in SQLite: the run parameters,
// the structure's edge list and every effect series, with CSV export.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/sigma/goods"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates an unknown run ID.
	ErrNotFound = errors.New("store: run not found")

	// ErrLengthMismatch indicates a series whose rates and values differ in length.
	ErrLengthMismatch = errors.New("store: rates and values differ in length")

	// ErrUnknownKind indicates a series kind other than Exact or Simulation.
	ErrUnknownKind = errors.New("store: unknown series kind")
)

// Kind tells exact series from rescaled simulation series.
type Kind string

const (
	// Exact series hold f'(0) on the exact grid.
	Exact Kind = "exact"
	// Simulation series hold (mean frequency − ½)/δ on the simulation grid.
	Simulation Kind = "simulation"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	uuid       TEXT    NOT NULL UNIQUE,
	name       TEXT    NOT NULL,
	graph      TEXT    NOT NULL,
	nodes      INTEGER NOT NULL,
	cost       REAL    NOT NULL,
	delta      REAL    NOT NULL,
	steps      INTEGER NOT NULL,
	solver     TEXT    NOT NULL,
	seed       INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS run_edges (
	run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	u      INTEGER NOT NULL,
	v      INTEGER NOT NULL,
	PRIMARY KEY (run_id, u, v)
);
CREATE TABLE IF NOT EXISTS effects (
	run_id        INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	benefit       REAL    NOT NULL,
	good          TEXT    NOT NULL,
	kind          TEXT    NOT NULL,
	idx           INTEGER NOT NULL,
	mutation_rate REAL    NOT NULL,
	value         REAL    NOT NULL,
	PRIMARY KEY (run_id, benefit, good, kind, idx)
);
`

// Run describes one experiment over one structure.
type Run struct {
	ID        int64
	UUID      string
	Name      string
	Graph     string
	Nodes     int
	Edges     [][2]int
	Cost      float64
	Delta     float64
	Steps     int
	Solver    string
	Seed      int64
	CreatedAt time.Time
}

// Series is one effect curve: a good, a benefit and a kind over a rate grid.
type Series struct {
	Benefit float64
	Good    goods.Good
	Kind    Kind
	Rates   []float64
	Values  []float64
}

// Store is a SQLite-backed results database. It is safe for concurrent use.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One writer keeps SQLite from returning SQLITE_BUSY under the sweep workers.
	sqlDB.SetMaxOpenConns(1)
	if err = sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err = sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}

	return s.sqlDB.Close()
}

// CreateRun inserts r and its edge list atomically and returns the new ID.
// A zero CreatedAt is stamped with the current time and an empty UUID
// with a fresh random one.
func (s *Store) CreateRun(ctx context.Context, r Run) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	if r.UUID == "" {
		r.UUID = uuid.NewString()
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
INSERT INTO runs (uuid, name, graph, nodes, cost, delta, steps, solver, seed, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, r.UUID, r.Name, r.Graph, r.Nodes, r.Cost, r.Delta, r.Steps, r.Solver, r.Seed, r.CreatedAt.UTC().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO run_edges (run_id, u, v) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare edges: %w", err)
	}
	defer stmt.Close()
	for _, e := range r.Edges {
		if _, err = stmt.ExecContext(ctx, id, e[0], e[1]); err != nil {
			return 0, fmt.Errorf("insert edge %v: %w", e, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit run: %w", err)
	}

	return id, nil
}

// SaveSeries stores one series under runID, replacing any earlier series
// with the same benefit, good and kind.
func (s *Store) SaveSeries(ctx context.Context, runID int64, sr Series) error {
	if len(sr.Rates) != len(sr.Values) {
		return fmt.Errorf("SaveSeries: %d rates, %d values: %w", len(sr.Rates), len(sr.Values), ErrLengthMismatch)
	}
	if sr.Kind != Exact && sr.Kind != Simulation {
		return fmt.Errorf("SaveSeries: %q: %w", sr.Kind, ErrUnknownKind)
	}
	if err := sr.Good.Validate(); err != nil {
		return fmt.Errorf("SaveSeries: %w", err)
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE id = ?`, runID).Scan(&exists); err != nil {
		return fmt.Errorf("lookup run: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("SaveSeries: run %d: %w", runID, ErrNotFound)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM effects WHERE run_id = ? AND benefit = ? AND good = ? AND kind = ?`,
		runID, sr.Benefit, sr.Good.Short(), string(sr.Kind)); err != nil {
		return fmt.Errorf("clear series: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO effects (run_id, benefit, good, kind, idx, mutation_rate, value)
VALUES (?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return fmt.Errorf("prepare series: %w", err)
	}
	defer stmt.Close()
	for i := range sr.Rates {
		if _, err = stmt.ExecContext(ctx, runID, sr.Benefit, sr.Good.Short(), string(sr.Kind), i, sr.Rates[i], sr.Values[i]); err != nil {
			return fmt.Errorf("insert point %d: %w", i, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit series: %w", err)
	}

	return nil
}

// Run loads the run with the given ID, edges included.
func (s *Store) Run(ctx context.Context, id int64) (Run, error) {
	var (
		r       Run
		created int64
	)
	err := s.sqlDB.QueryRowContext(ctx, `
SELECT id, uuid, name, graph, nodes, cost, delta, steps, solver, seed, created_at
FROM runs WHERE id = ?
`, id).Scan(&r.ID, &r.UUID, &r.Name, &r.Graph, &r.Nodes, &r.Cost, &r.Delta, &r.Steps, &r.Solver, &r.Seed, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("run %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("load run: %w", err)
	}
	r.CreatedAt = time.UnixMilli(created).UTC()

	rows, err := s.sqlDB.QueryContext(ctx, `SELECT u, v FROM run_edges WHERE run_id = ? ORDER BY u, v`, id)
	if err != nil {
		return Run{}, fmt.Errorf("load edges: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e [2]int
		if err = rows.Scan(&e[0], &e[1]); err != nil {
			return Run{}, fmt.Errorf("scan edge: %w", err)
		}
		r.Edges = append(r.Edges, e)
	}
	if err = rows.Err(); err != nil {
		return Run{}, fmt.Errorf("iterate edges: %w", err)
	}

	return r, nil
}

// Runs lists run headers (without edges), newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, uuid, name, graph, nodes, cost, delta, steps, solver, seed, created_at
FROM runs ORDER BY created_at DESC, id DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r       Run
			created int64
		)
		if err = rows.Scan(&r.ID, &r.UUID, &r.Name, &r.Graph, &r.Nodes, &r.Cost, &r.Delta, &r.Steps, &r.Solver, &r.Seed, &created); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.CreatedAt = time.UnixMilli(created).UTC()
		out = append(out, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return out, nil
}

// Series returns every series of runID ordered by benefit, good and kind.
func (s *Store) Series(ctx context.Context, runID int64) ([]Series, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT benefit, good, kind, mutation_rate, value
FROM effects WHERE run_id = ?
ORDER BY benefit, good, kind, idx
`, runID)
	if err != nil {
		return nil, fmt.Errorf("load series: %w", err)
	}
	defer rows.Close()

	var (
		out []Series
		cur *Series
	)
	for rows.Next() {
		var (
			benefit, rate, value float64
			good, kind           string
		)
		if err = rows.Scan(&benefit, &good, &kind, &rate, &value); err != nil {
			return nil, fmt.Errorf("scan point: %w", err)
		}
		g, err := goods.Parse(good)
		if err != nil {
			return nil, fmt.Errorf("load series: %w", err)
		}
		if cur == nil || cur.Benefit != benefit || cur.Good != g || cur.Kind != Kind(kind) {
			out = append(out, Series{Benefit: benefit, Good: g, Kind: Kind(kind)})
			cur = &out[len(out)-1]
		}
		cur.Rates = append(cur.Rates, rate)
		cur.Values = append(cur.Values, value)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate series: %w", err)
	}

	return out, nil
}
