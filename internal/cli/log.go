package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"

	"dailycheck/internal/models"
	"dailycheck/internal/storage"
	"dailycheck/internal/tui"
	"dailycheck/internal/validation"
)

type LogCmd struct {
	Date string `arg:"" help:"Day to record (YYYY-MM-DD, 'today' or 'yesterday')." default:"today"`

	Water       bool    `help:"Drank enough water." negatable:""`
	Steps       bool    `help:"Hit the step goal." negatable:""`
	Exercise    bool    `help:"Exercised." negatable:""`
	Stretching  bool    `help:"Stretched / did core work." negatable:""`
	Supplements bool    `help:"Took supplements." negatable:""`
	Reading     bool    `help:"Read." negatable:""`
	Skill       bool    `help:"Worked on a skill." negatable:""`
	Sleep       float64 `help:"Hours slept."`
	Rating      int     `help:"Day rating (1-10). Supplying this skips the interactive form."`
}

func (c *LogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	var entry models.DayEntry
	if c.Rating != 0 {
		// Non-interactive: everything comes from flags.
		entry = models.DayEntry{
			Water:         c.Water,
			Steps:         c.Steps,
			Exercise:      c.Exercise,
			Stretching:    c.Stretching,
			Supplements:   c.Supplements,
			Reading:       c.Reading,
			SkillBuilding: c.Skill,
			SleepHours:    c.Sleep,
			Rating:        c.Rating,
		}
	} else {
		// Interactive: pre-fill the form from any existing entry so
		// re-saving a day starts from what was recorded.
		existing, err := ctx.Store.GetEntry(day)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		fm := tui.NewEntryFormModel(existing)
		if err := tui.NewEntryForm(fm, day).Run(); err != nil {
			return fmt.Errorf("form cancelled: %w", err)
		}
		entry, err = fm.Entry()
		if err != nil {
			return err
		}
	}

	result := validation.New().ValidateEntry(day, entry)
	if result.HasConflicts() {
		fmt.Println(result.FormatReport())
		return fmt.Errorf("entry not saved")
	}

	streak, err := ctx.Tracker.RecordDay(day, entry)
	if err != nil {
		return err
	}

	color.Green("✓ Saved %s", day)
	fmt.Printf("Current streak: %d day(s)  •  Best streak: %d day(s)\n",
		streak.CurrentStreak, streak.BestStreak)
	return nil
}
