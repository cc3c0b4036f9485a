package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"dailycheck/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "dailycheck.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return store
}

func TestJSONStore_InitRefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dailycheck.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("expected error when initializing over an existing file")
	}
}

func TestJSONStore_LoadWithoutInit(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err == nil {
		t.Error("expected error loading uninitialized storage")
	}
}

func TestJSONStore_EntryCRUD(t *testing.T) {
	store := newTestJSONStore(t)

	entry := models.DayEntry{Water: true, WaterNote: "2.5L", SleepHours: 7.5, Rating: 8}
	if err := store.PutEntry("2025-03-10", entry); err != nil {
		t.Fatalf("PutEntry failed: %v", err)
	}

	got, err := store.GetEntry("2025-03-10")
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if !got.Completed {
		t.Error("stored entry not marked completed")
	}
	if got.SavedAt.IsZero() {
		t.Error("stored entry has zero SavedAt")
	}
	if got.WaterNote != "2.5L" || got.SleepHours != 7.5 || got.Rating != 8 {
		t.Errorf("entry fields not preserved: %+v", got)
	}

	// Re-saving replaces wholesale, never merges.
	if err := store.PutEntry("2025-03-10", models.DayEntry{Reading: true}); err != nil {
		t.Fatalf("PutEntry failed: %v", err)
	}
	got, _ = store.GetEntry("2025-03-10")
	if got.Water || got.WaterNote != "" {
		t.Errorf("re-save merged old fields: %+v", got)
	}
	if !got.Reading {
		t.Error("re-save lost new fields")
	}

	removed, err := store.DeleteEntry("2025-03-10")
	if err != nil || !removed {
		t.Fatalf("DeleteEntry = (%v, %v), want (true, nil)", removed, err)
	}
	removed, err = store.DeleteEntry("2025-03-10")
	if err != nil || removed {
		t.Fatalf("second DeleteEntry = (%v, %v), want (false, nil)", removed, err)
	}

	if _, err := store.GetEntry("2025-03-10"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetEntry after delete = %v, want ErrNotFound", err)
	}
}

func TestJSONStore_CompletedDates(t *testing.T) {
	store := newTestJSONStore(t)

	for _, day := range []string{"2025-03-08", "2025-03-09", "2025-03-10"} {
		if err := store.PutEntry(day, models.DayEntry{}); err != nil {
			t.Fatalf("PutEntry failed: %v", err)
		}
	}

	days, err := store.CompletedDates()
	if err != nil {
		t.Fatalf("CompletedDates failed: %v", err)
	}
	if len(days) != 3 {
		t.Errorf("got %d completed dates, want 3", len(days))
	}
}

func TestJSONStore_StreakRoundTrip(t *testing.T) {
	store := newTestJSONStore(t)

	st, err := store.GetStreak()
	if err != nil {
		t.Fatalf("GetStreak failed: %v", err)
	}
	if st.CurrentStreak != 0 || st.LastCompletedDate != nil {
		t.Errorf("fresh store streak = %+v, want zero state", st)
	}

	last := "2025-03-10"
	want := models.StreakState{CurrentStreak: 4, BestStreak: 9, LastCompletedDate: &last}
	if err := store.SaveStreak(want); err != nil {
		t.Fatalf("SaveStreak failed: %v", err)
	}

	// Reopen from disk.
	reopened := NewJSONStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got, err := reopened.GetStreak()
	if err != nil {
		t.Fatalf("GetStreak failed: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("streak after reopen = %+v, want %+v", got, want)
	}
}

func TestJSONStore_NormalizesLegacyStreakFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dailycheck.json")
	raw := `{
  "version": 1,
  "data": {},
  "streak": {"current": 3, "best": 6, "lastDate": "2025-03-10"}
}`
	if err := os.WriteFile(path, []byte(raw), 0600); err != nil {
		t.Fatalf("failed to write legacy file: %v", err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	st, err := store.GetStreak()
	if err != nil {
		t.Fatalf("GetStreak failed: %v", err)
	}
	if st.CurrentStreak != 3 || st.BestStreak != 6 {
		t.Errorf("got current=%d best=%d, want 3/6", st.CurrentStreak, st.BestStreak)
	}
	if st.LastCompletedDate == nil || *st.LastCompletedDate != "2025-03-10" {
		t.Errorf("LastCompletedDate = %v, want 2025-03-10", st.LastCompletedDate)
	}
}

func TestJSONStore_CanonicalFieldsWinOverLegacy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dailycheck.json")
	raw := `{
  "version": 1,
  "data": {},
  "streak": {"currentStreak": 5, "bestStreak": 8, "lastCompletedDate": "2025-03-11", "current": 3, "best": 6, "lastDate": "2025-03-10"}
}`
	if err := os.WriteFile(path, []byte(raw), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	st, _ := store.GetStreak()
	if st.CurrentStreak != 5 || st.BestStreak != 8 || *st.LastCompletedDate != "2025-03-11" {
		t.Errorf("canonical fields did not win: %+v", st)
	}
}

func TestJSONStore_RejectsNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dailycheck.json")
	if err := os.WriteFile(path, []byte(`{"version": 99, "data": {}}`), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if err := NewJSONStore(path).Load(); err == nil {
		t.Error("expected error for newer store version")
	}
}

func TestJSONStore_ReplaceAll(t *testing.T) {
	store := newTestJSONStore(t)
	if err := store.PutEntry("2025-01-01", models.DayEntry{Water: true}); err != nil {
		t.Fatalf("PutEntry failed: %v", err)
	}

	last := "2025-03-10"
	entries := map[string]models.DayEntry{
		"2025-03-09": {Completed: true},
		"2025-03-10": {Completed: true},
	}
	streak := models.StreakState{CurrentStreak: 2, BestStreak: 2, LastCompletedDate: &last}
	if err := store.ReplaceAll(entries, streak); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	all, err := store.AllEntries()
	if err != nil {
		t.Fatalf("AllEntries failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d entries, want 2", len(all))
	}
	if _, ok := all["2025-01-01"]; ok {
		t.Error("old entry survived ReplaceAll")
	}

	st, _ := store.GetStreak()
	if !st.Equal(streak) {
		t.Errorf("streak = %+v, want %+v", st, streak)
	}
}

func TestJSONStore_AllEntriesIsACopy(t *testing.T) {
	store := newTestJSONStore(t)
	if err := store.PutEntry("2025-03-10", models.DayEntry{}); err != nil {
		t.Fatalf("PutEntry failed: %v", err)
	}

	all, _ := store.AllEntries()
	delete(all, "2025-03-10")

	if _, err := store.GetEntry("2025-03-10"); err != nil {
		t.Error("mutating AllEntries result leaked into the store")
	}
}

func TestJSONStore_NoTempFilesLeftBehind(t *testing.T) {
	store := newTestJSONStore(t)
	if err := store.PutEntry("2025-03-10", models.DayEntry{}); err != nil {
		t.Fatalf("PutEntry failed: %v", err)
	}

	dir := filepath.Dir(store.GetConfigPath())
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, de := range dirEntries {
		if de.Name() != filepath.Base(store.GetConfigPath()) {
			t.Errorf("unexpected file left behind: %s", de.Name())
		}
	}
}
