package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"dailycheck/internal/storage"
)

type DebugCmd struct {
	DBPath     *DebugDBPathCmd     `cmd:"" help:"Show storage path."`
	DumpDay    *DebugDumpDayCmd    `cmd:"" help:"Dump a day entry as JSON."`
	DumpStreak *DebugDumpStreakCmd `cmd:"" help:"Dump the streak state as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	// Output in machine-readable format
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpDayCmd struct {
	Date string `arg:"" help:"Day to dump (YYYY-MM-DD, 'today' or 'yesterday')."`
}

func (cmd *DebugDumpDayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	day, err := resolveDate(cmd.Date)
	if err != nil {
		return err
	}

	entry, err := ctx.Store.GetEntry(day)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no entry for %s", day)
		}
		return err
	}

	jsonBytes, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpStreakCmd struct{}

func (cmd *DebugDumpStreakCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	streak, err := ctx.Store.GetStreak()
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(streak, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal streak: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}
