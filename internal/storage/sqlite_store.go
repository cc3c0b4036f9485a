package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"dailycheck/internal/constants"
	"dailycheck/internal/models"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS entries (
	day       TEXT PRIMARY KEY,
	entry     TEXT NOT NULL,
	completed INTEGER NOT NULL DEFAULT 1
);
CREATE TABLE IF NOT EXISTS streak (
	id                  INTEGER PRIMARY KEY CHECK (id = 1),
	current_streak      INTEGER NOT NULL DEFAULT 0,
	best_streak         INTEGER NOT NULL DEFAULT 0,
	last_completed_date TEXT
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return &StorageError{Op: "init", Err: err}
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return &StorageError{Op: "open", Err: err}
	}
	s.db = db

	if _, err := db.Exec(schemaSQL); err != nil {
		return &StorageError{Op: "init schema", Err: err}
	}
	if _, err := db.Exec(`INSERT OR IGNORE INTO meta (key, value) VALUES ('version', ?)`,
		strconv.Itoa(constants.StoreVersion)); err != nil {
		return &StorageError{Op: "init version", Err: err}
	}
	if _, err := db.Exec(`INSERT OR IGNORE INTO streak (id) VALUES (1)`); err != nil {
		return &StorageError{Op: "init streak", Err: err}
	}

	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'dailycheck init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return &StorageError{Op: "open", Err: err}
	}
	s.db = db

	var raw string
	if err := db.QueryRow(`SELECT value FROM meta WHERE key = 'version'`).Scan(&raw); err != nil {
		return &StorageError{Op: "read version", Err: err}
	}
	version, err := strconv.Atoi(raw)
	if err != nil {
		return &StorageError{Op: "read version", Err: err}
	}
	if version > constants.StoreVersion {
		return fmt.Errorf("storage version %d is newer than supported version %d", version, constants.StoreVersion)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// GetDB exposes the underlying connection for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	if s.db == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}

	var raw string
	if err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'settings'`).Scan(&raw); err != nil {
		return Settings{}, fmt.Errorf("settings not found: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return Settings{}, &StorageError{Op: "parse settings", Err: err}
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	raw, err := json.Marshal(settings)
	if err != nil {
		return &StorageError{Op: "encode settings", Err: err}
	}
	if _, err := s.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('settings', ?)`, string(raw)); err != nil {
		return &StorageError{Op: "write settings", Err: err}
	}
	return nil
}

func (s *SQLiteStore) PutEntry(day string, entry models.DayEntry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	entry.Completed = true
	entry.SavedAt = time.Now().UTC()

	raw, err := json.Marshal(entry)
	if err != nil {
		return &StorageError{Op: "encode entry", Err: err}
	}
	if _, err := s.db.Exec(`INSERT OR REPLACE INTO entries (day, entry, completed) VALUES (?, ?, 1)`,
		day, string(raw)); err != nil {
		return &StorageError{Op: "write entry", Err: err}
	}
	return nil
}

func (s *SQLiteStore) GetEntry(day string) (models.DayEntry, error) {
	if s.db == nil {
		return models.DayEntry{}, fmt.Errorf("storage not loaded")
	}

	var raw string
	err := s.db.QueryRow(`SELECT entry FROM entries WHERE day = ?`, day).Scan(&raw)
	if err == sql.ErrNoRows {
		return models.DayEntry{}, fmt.Errorf("no entry for %s: %w", day, ErrNotFound)
	}
	if err != nil {
		return models.DayEntry{}, &StorageError{Op: "read entry", Err: err}
	}

	var entry models.DayEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return models.DayEntry{}, &StorageError{Op: "parse entry", Err: err}
	}
	return entry, nil
}

func (s *SQLiteStore) DeleteEntry(day string) (bool, error) {
	if s.db == nil {
		return false, fmt.Errorf("storage not loaded")
	}

	res, err := s.db.Exec(`DELETE FROM entries WHERE day = ?`, day)
	if err != nil {
		return false, &StorageError{Op: "delete entry", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, &StorageError{Op: "delete entry", Err: err}
	}
	return n > 0, nil
}

func (s *SQLiteStore) AllEntries() (map[string]models.DayEntry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`SELECT day, entry FROM entries`)
	if err != nil {
		return nil, &StorageError{Op: "read entries", Err: err}
	}
	defer rows.Close()

	entries := make(map[string]models.DayEntry)
	for rows.Next() {
		var day, raw string
		if err := rows.Scan(&day, &raw); err != nil {
			return nil, &StorageError{Op: "read entries", Err: err}
		}
		var entry models.DayEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, &StorageError{Op: "parse entry", Err: err}
		}
		entries[day] = entry
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) CompletedDates() ([]string, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`SELECT day FROM entries WHERE completed = 1`)
	if err != nil {
		return nil, &StorageError{Op: "read dates", Err: err}
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, &StorageError{Op: "read dates", Err: err}
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

func (s *SQLiteStore) GetStreak() (models.StreakState, error) {
	if s.db == nil {
		return models.StreakState{}, fmt.Errorf("storage not loaded")
	}

	var streak models.StreakState
	var last sql.NullString
	err := s.db.QueryRow(`SELECT current_streak, best_streak, last_completed_date FROM streak WHERE id = 1`).
		Scan(&streak.CurrentStreak, &streak.BestStreak, &last)
	if err == sql.ErrNoRows {
		return models.StreakState{}, nil
	}
	if err != nil {
		return models.StreakState{}, &StorageError{Op: "read streak", Err: err}
	}
	if last.Valid {
		streak.LastCompletedDate = &last.String
	}
	return streak, nil
}

func (s *SQLiteStore) SaveStreak(streak models.StreakState) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	var last interface{}
	if streak.LastCompletedDate != nil {
		last = *streak.LastCompletedDate
	}
	if _, err := s.db.Exec(`INSERT OR REPLACE INTO streak (id, current_streak, best_streak, last_completed_date) VALUES (1, ?, ?, ?)`,
		streak.CurrentStreak, streak.BestStreak, last); err != nil {
		return &StorageError{Op: "write streak", Err: err}
	}
	return nil
}

// ReplaceAll swaps in the imported entries and streak state in one
// transaction, so a reader never observes a half-written store.
func (s *SQLiteStore) ReplaceAll(entries map[string]models.DayEntry, streak models.StreakState) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return &StorageError{Op: "replace", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return &StorageError{Op: "replace", Err: err}
	}
	for day, entry := range entries {
		raw, err := json.Marshal(entry)
		if err != nil {
			return &StorageError{Op: "encode entry", Err: err}
		}
		completed := 0
		if entry.Completed {
			completed = 1
		}
		if _, err := tx.Exec(`INSERT INTO entries (day, entry, completed) VALUES (?, ?, ?)`,
			day, string(raw), completed); err != nil {
			return &StorageError{Op: "replace", Err: err}
		}
	}

	var last interface{}
	if streak.LastCompletedDate != nil {
		last = *streak.LastCompletedDate
	}
	if _, err := tx.Exec(`INSERT OR REPLACE INTO streak (id, current_streak, best_streak, last_completed_date) VALUES (1, ?, ?, ?)`,
		streak.CurrentStreak, streak.BestStreak, last); err != nil {
		return &StorageError{Op: "replace", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "replace", Err: err}
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
