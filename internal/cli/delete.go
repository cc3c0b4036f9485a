package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

type DeleteCmd struct {
	Date  string `arg:"" help:"Day to delete (YYYY-MM-DD, 'today' or 'yesterday')."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	if !c.Force {
		fmt.Printf("Delete the entry for %s? The streak will be recomputed. [y/N]: ", day)
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	removed, err := ctx.Tracker.DeleteDay(day)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Printf("No entry recorded for %s.\n", day)
		return nil
	}

	streak, err := ctx.Tracker.Streak()
	if err != nil {
		return err
	}

	color.Green("✓ Deleted %s", day)
	fmt.Printf("Current streak: %d day(s)  •  Best streak: %d day(s)\n",
		streak.CurrentStreak, streak.BestStreak)
	return nil
}
