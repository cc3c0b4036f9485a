package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// BackupDirName is the name of the backup directory, created next
	// to the storage file.
	BackupDirName = "backups"
	// BackupFilePrefix is the prefix for exported payload files.
	BackupFilePrefix = "dailycheck-backup_"
	// BackupFileSuffix is the suffix for exported payload files.
	BackupFileSuffix = ".json"
)

// BackupInfo describes one exported payload file.
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager writes exported payloads to timestamped files and rotates
// old ones beyond the retention limit.
type Manager struct {
	backupDir  string
	maxBackups int
}

// NewManager creates a backup manager for the given storage path.
// maxBackups bounds retention; values below 1 disable rotation.
func NewManager(storePath string, maxBackups int) *Manager {
	return &Manager{
		backupDir:  filepath.Join(filepath.Dir(storePath), BackupDirName),
		maxBackups: maxBackups,
	}
}

// GetBackupDir returns the backup directory path.
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// Write stores payload bytes under a filename embedding the export
// timestamp and rotates old backups.
func (m *Manager) Write(payload []byte) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	name := BackupFilePrefix + timestamp + BackupFileSuffix
	path := filepath.Join(m.backupDir, name)

	// Same-second exports get a counter suffix.
	counter := 1
	for {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		name = fmt.Sprintf("%s%s-%d%s", BackupFilePrefix, timestamp, counter, BackupFileSuffix)
		path = filepath.Join(m.backupDir, name)
		counter++
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
	}

	if err := os.WriteFile(path, payload, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if err := m.rotate(); err != nil {
		// Rotation failure should not fail the export itself.
		fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
	}

	return path, nil
}

// ListBackups returns all exported payloads, newest first.
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}

	dirEntries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		if !strings.HasPrefix(name, BackupFilePrefix) || !strings.HasSuffix(name, BackupFileSuffix) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, BackupFilePrefix), BackupFileSuffix)
		// Strip a counter suffix when present.
		if parts := strings.Split(stamp, "-"); len(parts) == 3 {
			stamp = strings.Join(parts[:2], "-")
		}
		ts, err := time.Parse("20060102-150405", stamp)
		if err != nil {
			continue
		}

		info, err := de.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: ts,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

func (m *Manager) rotate() error {
	if m.maxBackups < 1 {
		return nil
	}

	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) <= m.maxBackups {
		return nil
	}

	for i := m.maxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}
