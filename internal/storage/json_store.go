package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"dailycheck/internal/constants"
	"dailycheck/internal/models"
)

// storeFile is the on-disk layout of the JSON backend: one file with
// the day-entry map and the streak record as independent top-level
// members.
type storeFile struct {
	Version  int                        `json:"version"`
	Settings Settings                   `json:"settings"`
	Data     map[string]models.DayEntry `json:"data"`
	Streak   streakRecord               `json:"streak"`
}

type JSONStore struct {
	path  string
	store *storeFile
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return &StorageError{Op: "init", Err: err}
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.commit(&storeFile{
		Version:  constants.StoreVersion,
		Settings: DefaultSettings(),
		Data:     make(map[string]models.DayEntry),
	})
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'dailycheck init' first")
		}
		return &StorageError{Op: "read", Err: err}
	}

	store := &storeFile{}
	if err := json.Unmarshal(data, store); err != nil {
		return &StorageError{Op: "parse", Err: err}
	}

	if store.Version > constants.StoreVersion {
		return fmt.Errorf("storage version %d is newer than supported version %d", store.Version, constants.StoreVersion)
	}
	if store.Data == nil {
		store.Data = make(map[string]models.DayEntry)
	}
	if store.Settings == (Settings{}) {
		store.Settings = DefaultSettings()
	}
	// Fold any legacy streak field names into the canonical shape; the
	// next save writes canonical only.
	store.Streak = canonicalRecord(store.Streak.normalize())

	s.store = store
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// commit serializes next to a uniquely named temp file and renames it
// over the store path. On any failure the previous file and the
// previously loaded state both survive untouched.
func (s *JSONStore) commit(next *storeFile) error {
	data, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return &StorageError{Op: "encode", Err: err}
	}

	tmp := fmt.Sprintf("%s.tmp-%s", s.path, uuid.NewString())
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return &StorageError{Op: "write", Err: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &StorageError{Op: "write", Err: err}
	}

	s.store = next
	return nil
}

// clone copies the loaded state so mutations can be committed
// all-or-nothing.
func (s *JSONStore) clone() *storeFile {
	next := *s.store
	next.Data = make(map[string]models.DayEntry, len(s.store.Data))
	for day, entry := range s.store.Data {
		next.Data[day] = entry
	}
	return &next
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.store == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	next := s.clone()
	next.Settings = settings
	return s.commit(next)
}

// PutEntry inserts or wholesale-replaces the entry for a day. The
// stored entry is always completed and freshly stamped; fields from a
// prior entry for the same day are never merged in.
func (s *JSONStore) PutEntry(day string, entry models.DayEntry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	entry.Completed = true
	entry.SavedAt = time.Now().UTC()

	next := s.clone()
	next.Data[day] = entry
	return s.commit(next)
}

func (s *JSONStore) GetEntry(day string) (models.DayEntry, error) {
	if s.store == nil {
		return models.DayEntry{}, fmt.Errorf("storage not loaded")
	}

	entry, ok := s.store.Data[day]
	if !ok {
		return models.DayEntry{}, fmt.Errorf("no entry for %s: %w", day, ErrNotFound)
	}
	return entry, nil
}

func (s *JSONStore) DeleteEntry(day string) (bool, error) {
	if s.store == nil {
		return false, fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Data[day]; !ok {
		return false, nil
	}

	next := s.clone()
	delete(next.Data, day)
	if err := s.commit(next); err != nil {
		return false, err
	}
	return true, nil
}

// AllEntries returns a snapshot copy; callers can never mutate the
// store through it.
func (s *JSONStore) AllEntries() (map[string]models.DayEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	entries := make(map[string]models.DayEntry, len(s.store.Data))
	for day, entry := range s.store.Data {
		entries[day] = entry
	}
	return entries, nil
}

func (s *JSONStore) CompletedDates() ([]string, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	days := make([]string, 0, len(s.store.Data))
	for day, entry := range s.store.Data {
		if entry.Completed {
			days = append(days, day)
		}
	}
	return days, nil
}

func (s *JSONStore) GetStreak() (models.StreakState, error) {
	if s.store == nil {
		return models.StreakState{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Streak.normalize(), nil
}

func (s *JSONStore) SaveStreak(streak models.StreakState) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	next := s.clone()
	next.Streak = canonicalRecord(streak)
	return s.commit(next)
}

func (s *JSONStore) ReplaceAll(entries map[string]models.DayEntry, streak models.StreakState) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	next := s.clone()
	next.Data = make(map[string]models.DayEntry, len(entries))
	for day, entry := range entries {
		next.Data[day] = entry
	}
	next.Streak = canonicalRecord(streak)
	return s.commit(next)
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
