// Package index persists a flat search index of catalog files in SQLite.
// It backs the `docsite search` command and the serve API; the browser-side
// search never touches it.
package index

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Entry is one indexed file.
type Entry struct {
	Path     string `json:"path"`
	Name     string `json:"name"`
	Folder   string `json:"folder"`
	Language string `json:"language"`
	Summary  string `json:"summary"`
}

// Store wraps a sql.DB holding the search index.
type Store struct {
	*sql.DB
	path string
}

// Open creates or opens the index database at the given path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging index: %w", err)
	}

	s := &Store{DB: sqlDB, path: path}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// OpenMemory creates an in-memory index (useful for testing).
func OpenMemory() (*Store, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory index: %w", err)
	}
	s := &Store{DB: sqlDB, path: ":memory:"}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.Exec(schema)
	return err
}

// schema contains the full index schema. The id column preserves catalog
// insertion order so ties in folder-name length keep their source order.
const schema = `
CREATE TABLE IF NOT EXISTS files (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    path TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    folder TEXT NOT NULL,
    language TEXT NOT NULL DEFAULT 'unknown',
    summary TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_files_folder ON files(folder);
`

// Rebuild replaces the whole index with the given entries, preserving their
// order. The index is always rebuilt from scratch; it is derived data.
func (s *Store) Rebuild(entries []Entry) error {
	tx, err := s.Begin()
	if err != nil {
		return fmt.Errorf("beginning rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM files`); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO files (path, name, folder, language, summary) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.Path, e.Name, e.Folder, e.Language, e.Summary); err != nil {
			return fmt.Errorf("inserting %s: %w", e.Path, err)
		}
	}

	return tx.Commit()
}

// Search returns entries whose display name contains term case-insensitively,
// ordered by ascending folder-name length and then insertion order, matching
// the rendered tree. An empty term matches everything.
func (s *Store) Search(term string) ([]Entry, error) {
	rows, err := s.Query(`
		SELECT path, name, folder, language, summary
		FROM files
		WHERE ? = '' OR instr(lower(name), lower(?)) > 0
		ORDER BY length(folder) ASC, id ASC`, term, term)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Path, &e.Name, &e.Folder, &e.Language, &e.Summary); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Count returns the number of indexed files.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.QueryRow(`SELECT COUNT(*) FROM files`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return n, nil
}
