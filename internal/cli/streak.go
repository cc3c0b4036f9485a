package cli

import "fmt"

type StreakCmd struct{}

func (c *StreakCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	streak, err := ctx.Tracker.Streak()
	if err != nil {
		return err
	}

	fmt.Printf("Current streak: %d day(s)\n", streak.CurrentStreak)
	fmt.Printf("Best streak:    %d day(s)\n", streak.BestStreak)
	fmt.Printf("Last completed: %s\n", formatLastCompleted(streak.LastCompletedDate))
	return nil
}
