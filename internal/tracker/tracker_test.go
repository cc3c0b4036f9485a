package tracker

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"dailycheck/internal/backup"
	"dailycheck/internal/dates"
	"dailycheck/internal/models"
	"dailycheck/internal/stats"
	"dailycheck/internal/storage"
)

func newTestTracker(t *testing.T) (*Tracker, storage.Provider) {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "dailycheck.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return New(store), store
}

func TestRecordDay_AdvancesStreak(t *testing.T) {
	trk, _ := newTestTracker(t)

	st, err := trk.RecordDay("2025-03-09", models.DayEntry{Water: true, Rating: 7})
	if err != nil {
		t.Fatalf("RecordDay failed: %v", err)
	}
	if st.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", st.CurrentStreak)
	}

	st, err = trk.RecordDay("2025-03-10", models.DayEntry{Rating: 6})
	if err != nil {
		t.Fatalf("RecordDay failed: %v", err)
	}
	if st.CurrentStreak != 2 || st.BestStreak != 2 {
		t.Errorf("got current=%d best=%d, want 2/2", st.CurrentStreak, st.BestStreak)
	}

	entry, err := trk.GetDay("2025-03-09")
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}
	if !entry.Completed || !entry.Water {
		t.Errorf("stored entry = %+v", entry)
	}
}

func TestRecordDay_RejectsInvalidDay(t *testing.T) {
	trk, _ := newTestTracker(t)

	if _, err := trk.RecordDay("03/10/2025", models.DayEntry{}); err == nil {
		t.Error("expected error for invalid day key")
	}
}

func TestDeleteDay_RecomputesStreak(t *testing.T) {
	trk, _ := newTestTracker(t)

	today := dates.Today()
	yesterday, _ := dates.Previous(today)
	dayBefore, _ := dates.Previous(yesterday)

	for _, day := range []string{dayBefore, yesterday, today} {
		if _, err := trk.RecordDay(day, models.DayEntry{Rating: 5}); err != nil {
			t.Fatalf("RecordDay failed: %v", err)
		}
	}

	removed, err := trk.DeleteDay(yesterday)
	if err != nil || !removed {
		t.Fatalf("DeleteDay = (%v, %v), want (true, nil)", removed, err)
	}

	st, err := trk.Streak()
	if err != nil {
		t.Fatalf("Streak failed: %v", err)
	}
	// The run through yesterday is gone; recomputation reflects only
	// what remains in the store, never the stale three-day best.
	if st.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1 after deleting the middle day", st.CurrentStreak)
	}
	if st.BestStreak != 1 {
		t.Errorf("BestStreak = %d, want 1 after deleting the middle day", st.BestStreak)
	}

	removed, err = trk.DeleteDay("1999-01-01")
	if err != nil || removed {
		t.Errorf("DeleteDay of absent day = (%v, %v), want (false, nil)", removed, err)
	}
}

func TestStats_UsesCompletedEntries(t *testing.T) {
	trk, _ := newTestTracker(t)

	if _, err := trk.RecordDay("2025-03-09", models.DayEntry{Water: true, SleepHours: 8, Rating: 8}); err != nil {
		t.Fatalf("RecordDay failed: %v", err)
	}
	if _, err := trk.RecordDay("2025-03-10", models.DayEntry{SleepHours: 6, Rating: 6}); err != nil {
		t.Fatalf("RecordDay failed: %v", err)
	}

	snap, err := trk.Stats(stats.Lifetime)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if snap.TotalDays != 2 {
		t.Errorf("TotalDays = %d, want 2", snap.TotalDays)
	}
	if snap.AvgSleepHours != 7 {
		t.Errorf("AvgSleepHours = %v, want 7", snap.AvgSleepHours)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	trk, _ := newTestTracker(t)

	if _, err := trk.RecordDay("2025-03-09", models.DayEntry{Reading: true, Rating: 7}); err != nil {
		t.Fatalf("RecordDay failed: %v", err)
	}
	if _, err := trk.RecordDay("2025-03-10", models.DayEntry{Rating: 8}); err != nil {
		t.Fatalf("RecordDay failed: %v", err)
	}

	raw, err := trk.ExportBackup()
	if err != nil {
		t.Fatalf("ExportBackup failed: %v", err)
	}

	// Import into a fresh store.
	other, otherStore := newTestTracker(t)
	if err := other.ImportBackup(raw); err != nil {
		t.Fatalf("ImportBackup failed: %v", err)
	}

	entries, err := otherStore.AllEntries()
	if err != nil {
		t.Fatalf("AllEntries failed: %v", err)
	}
	wantEntries, _ := trk.store.AllEntries()
	if !reflect.DeepEqual(entries, wantEntries) {
		t.Errorf("imported entries mismatch:\n got %+v\nwant %+v", entries, wantEntries)
	}

	st, _ := other.Streak()
	want, _ := trk.Streak()
	if !st.Equal(want) {
		t.Errorf("imported streak = %+v, want %+v", st, want)
	}
}

func TestImportBackup_InvalidPayloadLeavesStoreUntouched(t *testing.T) {
	trk, store := newTestTracker(t)

	if _, err := trk.RecordDay("2025-03-10", models.DayEntry{Rating: 9}); err != nil {
		t.Fatalf("RecordDay failed: %v", err)
	}

	// Missing streak member: validation must reject before any write.
	err := trk.ImportBackup([]byte(`{"schemaVersion":1,"data":{}}`))
	if err == nil {
		t.Fatal("expected import to fail")
	}
	var verr *backup.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	entries, _ := store.AllEntries()
	if len(entries) != 1 {
		t.Errorf("failed import changed the store: %d entries", len(entries))
	}
	st, _ := trk.Streak()
	if st.CurrentStreak == 0 && st.LastCompletedDate == nil {
		t.Error("failed import reset the streak")
	}
}

func TestReconcileStreak(t *testing.T) {
	trk, store := newTestTracker(t)

	today := dates.Today()
	yesterday, _ := dates.Previous(today)
	if _, err := trk.RecordDay(yesterday, models.DayEntry{Rating: 5}); err != nil {
		t.Fatalf("RecordDay failed: %v", err)
	}
	if _, err := trk.RecordDay(today, models.DayEntry{Rating: 5}); err != nil {
		t.Fatalf("RecordDay failed: %v", err)
	}

	// Corrupt the persisted state behind the tracker's back.
	if err := store.SaveStreak(models.StreakState{CurrentStreak: 99, BestStreak: 99}); err != nil {
		t.Fatalf("SaveStreak failed: %v", err)
	}

	persisted, recomputed, err := trk.ReconcileStreak(false)
	if err != nil {
		t.Fatalf("ReconcileStreak failed: %v", err)
	}
	if persisted.Equal(recomputed) {
		t.Fatal("expected a mismatch")
	}
	if recomputed.CurrentStreak != 2 {
		t.Errorf("recomputed CurrentStreak = %d, want 2", recomputed.CurrentStreak)
	}

	// Dry run must not write.
	st, _ := trk.Streak()
	if st.CurrentStreak != 99 {
		t.Errorf("dry run overwrote the persisted streak: %+v", st)
	}

	if _, _, err := trk.ReconcileStreak(true); err != nil {
		t.Fatalf("ReconcileStreak(apply) failed: %v", err)
	}
	st, _ = trk.Streak()
	if !st.Equal(recomputed) {
		t.Errorf("streak after fix = %+v, want %+v", st, recomputed)
	}
}
