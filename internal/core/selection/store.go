package selection

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sadopc/themekit/internal/theme"
)

// timeLayout sorts lexically in chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store persists the themes a user has selected, most recent last.
type Store struct {
	db *sql.DB
}

// NewStore creates a new selection store at the given path.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening selection db: %w", err)
	}
	// a single connection keeps ":memory:" databases shared
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS selections (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			name      TEXT NOT NULL,
			tier      INTEGER NOT NULL,
			variants  TEXT NOT NULL,
			timestamp TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_selections_timestamp ON selections(timestamp DESC);
	`)
	if err != nil {
		return fmt.Errorf("creating selections table: %w", err)
	}
	return nil
}

// Select records id with variants as the current selection.
func (s *Store) Select(id theme.ID, variants []string) (int64, error) {
	return s.add(Entry{Theme: id, Variants: variants, Timestamp: time.Now()})
}

func (s *Store) add(e Entry) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO selections (name, tier, variants, timestamp)
		VALUES (?, ?, ?, ?)`,
		e.Theme.Name, int(e.Theme.Tier), strings.Join(e.Variants, ","),
		e.Timestamp.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting selection: %w", err)
	}
	return result.LastInsertId()
}

// Current returns the most recent selection. ok is false when nothing has
// been selected yet.
func (s *Store) Current() (e Entry, ok bool, err error) {
	entries, err := s.History(1)
	if err != nil || len(entries) == 0 {
		return Entry{}, false, err
	}
	return entries[0], true, nil
}

// History returns the most recent selections, newest first.
func (s *Store) History(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, name, tier, variants, timestamp
		FROM selections
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing selections: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Forget removes every selection of a theme, e.g. after it was deleted.
func (s *Store) Forget(id theme.ID) error {
	_, err := s.db.Exec(`DELETE FROM selections WHERE name = ? COLLATE NOCASE AND tier = ?`,
		id.Name, int(id.Tier))
	if err != nil {
		return fmt.Errorf("deleting selections: %w", err)
	}
	return nil
}

// Clear removes all selections.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM selections")
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var tier int
		var variants, ts string
		if err := rows.Scan(&e.ID, &e.Theme.Name, &tier, &variants, &ts); err != nil {
			return nil, fmt.Errorf("scanning selection row: %w", err)
		}
		e.Theme.Tier = theme.Tier(tier)
		if variants != "" {
			e.Variants = strings.Split(variants, ",")
		}
		e.Timestamp, _ = time.Parse(timeLayout, ts)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
