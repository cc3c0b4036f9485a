package cli

import (
	"errors"
	"fmt"

	"dailycheck/internal/models"
	"dailycheck/internal/storage"
)

type DayCmd struct {
	Date string `arg:"" help:"Day to show (YYYY-MM-DD, 'today' or 'yesterday')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	entry, err := ctx.Tracker.GetDay(day)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Printf("No entry recorded for %s.\n", day)
			return nil
		}
		return err
	}

	fmt.Printf("Entry for %s:\n\n", day)
	for _, f := range models.HabitFields {
		answer := "no"
		if entry.Habit(f) {
			answer = "yes"
		}
		line := fmt.Sprintf("  %-22s %s", models.HabitLabels[f], answer)
		if note := entry.HabitNote(f); note != "" {
			line += fmt.Sprintf("  (%s)", note)
		}
		fmt.Println(line)
	}
	fmt.Printf("\n  %-22s %.1fh\n", "Sleep", entry.SleepHours)
	fmt.Printf("  %-22s %d/10\n", "Rating", entry.Rating)
	if !entry.SavedAt.IsZero() {
		fmt.Printf("  %-22s %s\n", "Saved at", entry.SavedAt.Local().Format("2006-01-02 15:04"))
	}

	return nil
}
