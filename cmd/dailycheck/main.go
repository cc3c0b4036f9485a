package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"dailycheck/internal/cli"
	"dailycheck/internal/storage"
	"dailycheck/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path." type:"path" default:"~/.config/dailycheck/dailycheck.db"`

	Init    cli.InitCmd    `cmd:"" help:"Initialize dailycheck storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Log     cli.LogCmd     `cmd:"" help:"Record a day's answers."`
	Day     cli.DayCmd     `cmd:"" help:"Show a recorded day."`
	Delete  cli.DeleteCmd  `cmd:"" help:"Delete a recorded day."`
	Streak  cli.StreakCmd  `cmd:"" help:"Show the current and best streak."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show completion statistics."`
	History cli.HistoryCmd `cmd:"" help:"List recent recorded days."`
	Export  cli.ExportCmd  `cmd:"" help:"Export all data as a JSON backup."`
	Import  cli.ImportCmd  `cmd:"" help:"Import a JSON backup, replacing all data."`
	Backup  struct {
		List cli.BackupListCmd `cmd:"" help:"List available backups."`
	} `cmd:"" help:"Manage backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
	Debug  cli.DebugCmd  `cmd:"" help:"Inspect raw storage state."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("dailycheck"),
		kong.Description("Personal daily habit tracker with streaks and statistics"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:   store,
		Tracker: tracker.New(store),
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
