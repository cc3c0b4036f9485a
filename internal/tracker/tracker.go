// Package tracker is the application core: it owns the flow between
// the day-entry store, the streak engine, the statistics aggregator
// and the backup codec. The CLI and TUI never touch the store's
// contents except through it.
package tracker

import (
	"fmt"
	"time"

	"dailycheck/internal/backup"
	"dailycheck/internal/dates"
	"dailycheck/internal/models"
	"dailycheck/internal/stats"
	"dailycheck/internal/storage"
	"dailycheck/internal/streak"
)

type Tracker struct {
	store storage.Provider
}

func New(store storage.Provider) *Tracker {
	return &Tracker{store: store}
}

// RecordDay stores a day's answers and advances the streak
// incrementally. The entry is always stored as completed.
func (t *Tracker) RecordDay(day string, entry models.DayEntry) (models.StreakState, error) {
	if !dates.IsValid(day) {
		return models.StreakState{}, fmt.Errorf("invalid day key: %q", day)
	}

	if err := t.store.PutEntry(day, entry); err != nil {
		return models.StreakState{}, err
	}

	prev, err := t.store.GetStreak()
	if err != nil {
		return models.StreakState{}, err
	}
	next := streak.Advance(prev, day)
	if err := t.store.SaveStreak(next); err != nil {
		return models.StreakState{}, err
	}
	return next, nil
}

// DeleteDay removes the entry for a day and rebuilds the streak from
// what remains; incremental update cannot apply after a removal.
func (t *Tracker) DeleteDay(day string) (bool, error) {
	removed, err := t.store.DeleteEntry(day)
	if err != nil || !removed {
		return removed, err
	}

	completed, err := t.store.CompletedDates()
	if err != nil {
		return true, err
	}
	next := streak.Recompute(completed, dates.Today())
	return true, t.store.SaveStreak(next)
}

func (t *Tracker) GetDay(day string) (models.DayEntry, error) {
	return t.store.GetEntry(day)
}

func (t *Tracker) Streak() (models.StreakState, error) {
	return t.store.GetStreak()
}

// Stats computes a fresh snapshot over the store's current contents.
func (t *Tracker) Stats(w stats.Window) (stats.Snapshot, error) {
	entries, err := t.store.AllEntries()
	if err != nil {
		return stats.Snapshot{}, err
	}
	return stats.Compute(entries, w), nil
}

// ExportBackup snapshots the store and streak state into payload bytes.
func (t *Tracker) ExportBackup() ([]byte, error) {
	entries, err := t.store.AllEntries()
	if err != nil {
		return nil, err
	}
	st, err := t.store.GetStreak()
	if err != nil {
		return nil, err
	}
	return backup.Encode(entries, st, time.Now())
}

// ImportBackup validates raw payload bytes and, only on success,
// replaces the store and streak state wholesale. A payload that fails
// validation leaves everything untouched.
func (t *Tracker) ImportBackup(raw []byte) error {
	p, err := backup.Decode(raw)
	if err != nil {
		return err
	}
	return t.store.ReplaceAll(p.Data, p.Streak)
}

// ReconcileStreak recomputes the streak from the completed-date set
// and compares it with the persisted state. When apply is set and the
// two disagree, the recomputed state is saved. Full recomputation is
// the source of truth; the incremental path is only an optimization.
func (t *Tracker) ReconcileStreak(apply bool) (persisted, recomputed models.StreakState, err error) {
	persisted, err = t.store.GetStreak()
	if err != nil {
		return
	}
	completed, err := t.store.CompletedDates()
	if err != nil {
		return
	}
	recomputed = streak.Recompute(completed, dates.Today())

	if apply && !persisted.Equal(recomputed) {
		err = t.store.SaveStreak(recomputed)
	}
	return
}
