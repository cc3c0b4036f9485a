package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestManager(t *testing.T, maxBackups int) *Manager {
	storePath := filepath.Join(t.TempDir(), "dailycheck.json")
	return NewManager(storePath, maxBackups)
}

func TestManagerWriteAndList(t *testing.T) {
	mgr := newTestManager(t, 14)

	path, err := mgr.Write([]byte(`{"schemaVersion":1}`))
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("got %d backups, want 1", len(backups))
	}
	if backups[0].Path != path {
		t.Errorf("Path = %s, want %s", backups[0].Path, path)
	}
	if backups[0].Size == 0 {
		t.Error("backup size is zero")
	}
}

func TestManagerWrite_SameSecondGetsUniqueName(t *testing.T) {
	mgr := newTestManager(t, 14)

	first, err := mgr.Write([]byte("a"))
	if err != nil {
		t.Fatalf("first Write failed: %v", err)
	}
	second, err := mgr.Write([]byte("b"))
	if err != nil {
		t.Fatalf("second Write failed: %v", err)
	}
	if first == second {
		t.Errorf("both writes produced %s", first)
	}
}

func TestManagerRotation(t *testing.T) {
	mgr := newTestManager(t, 3)

	for i := 0; i < 5; i++ {
		if _, err := mgr.Write([]byte("x")); err != nil {
			t.Fatalf("Write %d failed: %v", i, err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Errorf("got %d backups after rotation, want 3", len(backups))
	}
}

func TestManagerList_EmptyDirectory(t *testing.T) {
	mgr := newTestManager(t, 14)

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("got %d backups, want 0", len(backups))
	}
}

func TestManagerList_IgnoresForeignFiles(t *testing.T) {
	mgr := newTestManager(t, 14)
	if _, err := mgr.Write([]byte("x")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), "notes.txt"), []byte("hi"), 0600); err != nil {
		t.Fatalf("failed to plant foreign file: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("got %d backups, want 1", len(backups))
	}
}
