package cli

import (
	"fmt"

	"dailycheck/internal/dates"
	"dailycheck/internal/stats"
	"dailycheck/internal/storage"
	"dailycheck/internal/tracker"
)

type Context struct {
	Store   storage.Provider
	Tracker *tracker.Tracker
}

// resolveDate turns a date argument into a day key, accepting the
// 'today' and 'yesterday' shorthands.
func resolveDate(arg string) (string, error) {
	switch arg {
	case "", "today":
		return dates.Today(), nil
	case "yesterday":
		return dates.Previous(dates.Today())
	}
	if !dates.IsValid(arg) {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD, 'today' or 'yesterday': %s", arg)
	}
	return arg, nil
}

// resolveWindow picks the stats window, falling back to the persisted
// default when the flag is empty.
func resolveWindow(ctx *Context, arg string) (stats.Window, error) {
	if arg == "" {
		settings, err := ctx.Store.GetSettings()
		if err == nil && settings.DefaultWindow != "" {
			arg = settings.DefaultWindow
		} else {
			arg = string(stats.Last7)
		}
	}
	return stats.ParseWindow(arg)
}

func formatLastCompleted(last *string) string {
	if last == nil {
		return "never"
	}
	return *last
}
