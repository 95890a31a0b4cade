// Package state persists the active theme selection to SQLite so the
// application restarts into the theme it was last using.
package state

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "modernc.org/sqlite"
)

// Store handles theme state persistence to SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a store at the given path. If dbPath is empty, the
// default location is used.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		var err error
		dbPath, err = defaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve state db path: %w", err)
		}
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func defaultDBPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(dir, "Tintz", "state", "theme.db"), nil
	default:
		return filepath.Join(dir, "tintz", "state", "theme.db"), nil
	}
}

func (s *Store) ensureSchema(ctx context.Context) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS theme_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			theme TEXT NOT NULL DEFAULT 'light',
			toggles INTEGER NOT NULL DEFAULT 0,
			updated_at INTEGER NOT NULL DEFAULT 0
		);`,
		// Ensure there's always exactly one state row
		`INSERT OR IGNORE INTO theme_state (id, theme, toggles, updated_at)
		 VALUES (1, 'light', 0, 0);`,
	}
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate theme schema: %w", err)
		}
	}
	return nil
}

// Save records the active theme name and bumps the toggle counter.
func (s *Store) Save(ctx context.Context, themeName string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE theme_state SET theme = ?, toggles = toggles + 1, updated_at = ? WHERE id = 1`,
		themeName, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("save theme state: %w", err)
	}
	return nil
}

// LoadResult contains the persisted theme state.
type LoadResult struct {
	Theme   string
	Toggles int
}

// Load reads the persisted theme state.
func (s *Store) Load(ctx context.Context) (LoadResult, error) {
	result := LoadResult{Theme: "light"}
	err := s.db.QueryRowContext(ctx,
		`SELECT theme, toggles FROM theme_state WHERE id = 1`).
		Scan(&result.Theme, &result.Toggles)
	if err != nil && err != sql.ErrNoRows {
		return result, fmt.Errorf("load theme state: %w", err)
	}
	return result, nil
}

// Clear resets the persisted state to the defaults.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE theme_state SET theme = 'light', toggles = 0, updated_at = 0 WHERE id = 1`)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
