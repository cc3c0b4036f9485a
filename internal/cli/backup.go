package cli

import (
	"fmt"
	"path/filepath"

	"dailycheck/internal/backup"
	"dailycheck/internal/constants"
)

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	maxBackups := constants.DefaultMaxBackups
	if settings, err := ctx.Store.GetSettings(); err == nil && settings.MaxBackups > 0 {
		maxBackups = settings.MaxBackups
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath(), maxBackups)
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", mgr.GetBackupDir())
		return nil
	}

	fmt.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), maxBackups)
	for _, b := range backups {
		sizeKB := float64(b.Size) / 1024.0
		fmt.Printf("  %s  %s  (%.1f KB)\n",
			b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), sizeKB)
	}
	fmt.Printf("\nBackup directory: %s\n", mgr.GetBackupDir())

	return nil
}
