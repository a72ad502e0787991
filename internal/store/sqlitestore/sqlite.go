// Package sqlitestore persists generated tiles to a SQLite database.
package sqlitestore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"mad-terrain/internal/core"
	"mad-terrain/internal/store"
)

func init() {
	core.RegisterSink("sqlite", func(cfg map[string]string) (core.SinkCloser, error) {
		return Open(cfg["path"], cfg["run_id"])
	})
}

// Run describes one stored world.
type Run struct {
	ID        string
	CreatedAt string
	Cells     int
}

// Store is a core.Sink writing into one run of a SQLite database. Writes are
// buffered and persisted by Flush and Close. The first error is kept and
// reported by Close.
type Store struct {
	db    *sql.DB
	runID string
	buf   *store.Buffer
	err   error
}

// Open opens or creates the database at path. An empty runID gets a fresh
// random one.
func Open(path, runID string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if runID == "" {
		runID = uuid.NewString()
	}
	return &Store{db: db, runID: runID, buf: store.NewBuffer()}, nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		`CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			cells INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS tiles (
			run_id TEXT NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			fg INTEGER NOT NULL,
			bg INTEGER NOT NULL,
			PRIMARY KEY (run_id, x, y)
		);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// RunID identifies the run this store writes.
func (s *Store) RunID() string { return s.runID }

// SetForeground implements core.Sink.
func (s *Store) SetForeground(x, y int, t core.Tile) { s.buf.SetForeground(x, y, t) }

// SetBackground implements core.Sink.
func (s *Store) SetBackground(x, y int, t core.Tile) { s.buf.SetBackground(x, y, t) }

// ClearForeground implements core.Sink.
func (s *Store) ClearForeground() { s.buf.ClearForeground() }

// ClearBackground implements core.Sink.
func (s *Store) ClearBackground() { s.buf.ClearBackground() }

// Flush replaces the stored run with the buffered state.
func (s *Store) Flush() error {
	if s.err != nil {
		return s.err
	}
	s.err = s.flush()
	return s.err
}

func (s *Store) flush() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM tiles WHERE run_id=?`, s.runID); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO tiles(run_id,x,y,fg,bg) VALUES(?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	err = s.buf.Each(func(c store.Cell, p store.Pair) error {
		_, err := stmt.Exec(s.runID, c.X, c.Y, int(p.FG), int(p.BG))
		return err
	})
	if err != nil {
		return fmt.Errorf("insert tiles: %w", err)
	}
	_, err = tx.Exec(`INSERT INTO runs(run_id,created_at,cells) VALUES(?,?,?)
		ON CONFLICT(run_id) DO UPDATE SET cells=excluded.cells`,
		s.runID, time.Now().UTC().Format(time.RFC3339), s.buf.Len())
	if err != nil {
		return err
	}
	return tx.Commit()
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	err := s.Flush()
	if cerr := s.db.Close(); err == nil {
		err = cerr
	}
	return err
}

// Runs lists the stored runs, oldest first.
func (s *Store) Runs() ([]Run, error) {
	rows, err := s.db.Query(`SELECT run_id,created_at,cells FROM runs ORDER BY created_at,run_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Cells); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Load clears dst and writes the tiles of runID into it.
func (s *Store) Load(runID string, dst core.Sink) error {
	rows, err := s.db.Query(`SELECT x,y,fg,bg FROM tiles WHERE run_id=? ORDER BY y,x`, runID)
	if err != nil {
		return err
	}
	defer rows.Close()

	dst.ClearForeground()
	dst.ClearBackground()
	for rows.Next() {
		var x, y, fg, bg int
		if err := rows.Scan(&x, &y, &fg, &bg); err != nil {
			return err
		}
		if bg != 0 {
			dst.SetBackground(x, y, core.Tile(bg))
		}
		if fg != 0 {
			dst.SetForeground(x, y, core.Tile(fg))
		}
	}
	return rows.Err()
}
