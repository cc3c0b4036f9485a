package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	statNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(24)

	statBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	statTrackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)

const statBarWidth = 20

type StatsCmd struct {
	Window string `short:"w" help:"Window to aggregate (last-7|last-30|lifetime). Defaults to the configured window."`
}

func (c *StatsCmd) Run(ctx *Context) error {
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

	fmt.Printf("Statistics (%s):\n\n", window)
	fmt.Printf("  Completed days: %d\n", snap.TotalDays)
	fmt.Printf("  Avg sleep:      %.1fh\n", snap.AvgSleepHours)
	fmt.Printf("  Avg rating:     %.1f/10\n", snap.AvgRating)
	if snap.TotalDays > 0 {
		fmt.Printf("  Sleep range:    %.1fh - %.1fh\n", snap.MinSleepHours, snap.MaxSleepHours)
		fmt.Printf("  Rating range:   %d - %d\n", snap.MinRating, snap.MaxRating)
	}
	fmt.Println()

	for _, h := range snap.Habits {
		fmt.Printf("  %s %s %3d%% (%d/%d)\n",
			statNameStyle.Render(h.Label),
			renderBar(h.Percent),
			h.Percent, h.Count, snap.TotalDays)
	}
	return nil
}

func renderBar(percent int) string {
	filled := percent * statBarWidth / 100
	if filled > statBarWidth {
		filled = statBarWidth
	}
	return statBarStyle.Render(strings.Repeat("█", filled)) +
		statTrackStyle.Render(strings.Repeat("░", statBarWidth-filled))
}
