// Package history handles SQLite persistence of measurement reports.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver.

	"github.com/soletrace/footscan/report"
)

// Store wraps SQLite access for report history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS reports (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			symmetry_pct REAL,
			severity TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS foot_measurements (
			report_id TEXT NOT NULL,
			side TEXT NOT NULL,
			length_mm REAL NOT NULL,
			width_mm REAL NOT NULL,
			height_mm REAL NOT NULL,
			confidence TEXT NOT NULL,
			foot_type TEXT NOT NULL,
			arch_type TEXT NOT NULL,
			vertex_count INTEGER NOT NULL,
			fallback INTEGER NOT NULL,
			PRIMARY KEY (report_id, side)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports(created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Save persists one report and its per-foot measurements.
func (s *Store) Save(r *report.Report) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	var symmetry sql.NullFloat64
	var severity sql.NullString
	if r.Comparison != nil {
		symmetry = sql.NullFloat64{Float64: r.Comparison.SymmetryScorePct, Valid: true}
		severity = sql.NullString{String: r.Comparison.Severity, Valid: true}
	}
	if _, err := tx.Exec(
		`INSERT INTO reports (id, created_at, symmetry_pct, severity) VALUES (?, ?, ?, ?)`,
		r.ID.String(), r.CreatedAt.Format(time.RFC3339), symmetry, severity,
	); err != nil {
		return fmt.Errorf("inserting report: %w", err)
	}

	for _, f := range []*report.FootSummary{r.Left, r.Right} {
		if f == nil {
			continue
		}
		if _, err := tx.Exec(
			`INSERT INTO foot_measurements
				(report_id, side, length_mm, width_mm, height_mm, confidence, foot_type, arch_type, vertex_count, fallback)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID.String(), f.Side, f.LengthMm, f.WidthMm, f.HeightMm,
			f.Confidence, f.FootType, f.ArchType, f.VertexCount, boolToInt(f.Fallback),
		); err != nil {
			return fmt.Errorf("inserting %s measurement: %w", f.Side, err)
		}
	}

	return tx.Commit()
}

// Entry is one row of report history.
type Entry struct {
	ID          string
	CreatedAt   time.Time
	Side        string
	LengthMm    float64
	WidthMm     float64
	HeightMm    float64
	FootType    string
	ArchType    string
	SymmetryPct *float64
}

// Recent returns the most recent per-foot entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT r.id, r.created_at, m.side, m.length_mm, m.width_mm, m.height_mm,
			m.foot_type, m.arch_type, r.symmetry_pct
		FROM foot_measurements m
		JOIN reports r ON r.id = m.report_id
		ORDER BY r.created_at DESC, m.side ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		var symmetry sql.NullFloat64
		if err := rows.Scan(&e.ID, &createdAt, &e.Side, &e.LengthMm, &e.WidthMm, &e.HeightMm,
			&e.FootType, &e.ArchType, &symmetry); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			e.CreatedAt = t
		}
		if symmetry.Valid {
			v := symmetry.Float64
			e.SymmetryPct = &v
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
