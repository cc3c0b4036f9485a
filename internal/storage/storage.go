package storage

import (
	"errors"
	"fmt"

	"dailycheck/internal/constants"
	"dailycheck/internal/models"
)

// Settings holds the persisted user preferences.
type Settings struct {
	// DefaultWindow is the stats window used when none is given
	// (last-7, last-30 or lifetime).
	DefaultWindow string `json:"default_window"`
	// MaxBackups is the export-file retention limit.
	MaxBackups int `json:"max_backups"`
}

func DefaultSettings() Settings {
	return Settings{
		DefaultWindow: "last-7",
		MaxBackups:    constants.DefaultMaxBackups,
	}
}

// ErrNotFound reports a lookup for a day with no stored entry.
var ErrNotFound = errors.New("entry not found")

// StorageError wraps a persistence failure. A failed write leaves the
// previously loaded state untouched; there is no retry.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// streakRecord is the persisted shape of the streak state. It tolerates
// the legacy field names (current/best/lastDate) on read and always
// writes the canonical shape.
type streakRecord struct {
	CurrentStreak     int     `json:"currentStreak"`
	BestStreak        int     `json:"bestStreak"`
	LastCompletedDate *string `json:"lastCompletedDate"`

	LegacyCurrent  *int    `json:"current,omitempty"`
	LegacyBest     *int    `json:"best,omitempty"`
	LegacyLastDate *string `json:"lastDate,omitempty"`
}

// normalize folds legacy field values into the canonical shape.
// Canonical fields win when both are present.
func (r streakRecord) normalize() models.StreakState {
	s := models.StreakState{
		CurrentStreak:     r.CurrentStreak,
		BestStreak:        r.BestStreak,
		LastCompletedDate: r.LastCompletedDate,
	}
	if s.CurrentStreak == 0 && r.LegacyCurrent != nil {
		s.CurrentStreak = *r.LegacyCurrent
	}
	if s.BestStreak == 0 && r.LegacyBest != nil {
		s.BestStreak = *r.LegacyBest
	}
	if s.LastCompletedDate == nil && r.LegacyLastDate != nil {
		s.LastCompletedDate = r.LegacyLastDate
	}
	return s
}

func canonicalRecord(s models.StreakState) streakRecord {
	return streakRecord{
		CurrentStreak:     s.CurrentStreak,
		BestStreak:        s.BestStreak,
		LastCompletedDate: s.LastCompletedDate,
	}
}
