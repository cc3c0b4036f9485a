package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"dailycheck/internal/backup"
	"dailycheck/internal/constants"
)

type ExportCmd struct {
	Output string `short:"o" help:"Write the payload to this path instead of the backup directory."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	payload, err := ctx.Tracker.ExportBackup()
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if c.Output != "" {
		if err := os.WriteFile(c.Output, payload, 0600); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		color.Green("✓ Exported to %s", c.Output)
		return nil
	}

	maxBackups := constants.DefaultMaxBackups
	if settings, err := ctx.Store.GetSettings(); err == nil && settings.MaxBackups > 0 {
		maxBackups = settings.MaxBackups
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath(), maxBackups)
	path, err := mgr.Write(payload)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	color.Green("✓ Exported to %s", filepath.Base(path))
	fmt.Printf("Backup directory: %s\n", mgr.GetBackupDir())
	return nil
}
