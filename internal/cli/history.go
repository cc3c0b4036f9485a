package cli

import (
	"fmt"
)

type HistoryCmd struct {
	Window string `short:"w" help:"Window to show (last-7|last-30|lifetime). Defaults to the configured window."`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	window, err := resolveWindow(ctx, c.Window)
	if err != nil {
		return err
	}

	snap, err := ctx.Tracker.Stats(window)
	if err != nil {
		return err
	}

	if snap.TotalDays == 0 {
		fmt.Println("No completed days yet.")
		return nil
	}

	entries, err := ctx.Store.AllEntries()
	if err != nil {
		return err
	}

	fmt.Printf("Recent days (%s):\n\n", window)
	for _, day := range snap.RecentDays {
		entry := entries[day]
		fmt.Printf("  %s  rating %2d/10  sleep %.1fh  water %s  steps %s\n",
			day, entry.Rating, entry.SleepHours,
			yesNo(entry.Water), yesNo(entry.Steps))
	}
	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
