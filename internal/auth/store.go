package auth

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists the current token set so a sign-in survives process
// restarts. It holds at most one row; business data never touches it.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the SQLite session database at dir/session.db.
func OpenStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "session.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS session (
		id            INTEGER PRIMARY KEY CHECK (id = 1),
		id_token      TEXT NOT NULL,
		refresh_token TEXT NOT NULL,
		expires_at    TEXT NOT NULL,
		updated_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating session table: %w", err)
	}

	return &Store{db: db}, nil
}

// Load returns the stored token set, if any.
func (s *Store) Load() (TokenSet, bool, error) {
	var ts TokenSet
	var expires string
	err := s.db.QueryRow(
		`SELECT id_token, refresh_token, expires_at FROM session WHERE id = 1`,
	).Scan(&ts.IDToken, &ts.RefreshToken, &expires)
	if err == sql.ErrNoRows {
		return TokenSet{}, false, nil
	}
	if err != nil {
		return TokenSet{}, false, err
	}
	ts.ExpiresAt, err = time.Parse(time.RFC3339, expires)
	if err != nil {
		return TokenSet{}, false, fmt.Errorf("parsing stored expiry: %w", err)
	}
	return ts, true, nil
}

// Save replaces the stored token set.
func (s *Store) Save(ts TokenSet) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO session (id, id_token, refresh_token, expires_at) VALUES (1, ?, ?, ?)`,
		ts.IDToken, ts.RefreshToken, ts.ExpiresAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Clear removes the stored session.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM session WHERE id = 1`)
	return err
}

// Close closes the session database.
func (s *Store) Close() error {
	return s.db.Close()
}
