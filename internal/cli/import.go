package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

type ImportCmd struct {
	File  string `arg:"" help:"Path to the backup payload to import."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Reading the file is the single asynchronous boundary; everything
	// after it is synchronous and all-or-nothing.
	raw, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	if !c.Force {
		fmt.Println("⚠️  Importing will overwrite all recorded days and the streak state.")
		fmt.Print("Continue? [y/N]: ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Import cancelled.")
			return nil
		}
	}

	if err := ctx.Tracker.ImportBackup(raw); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	streak, err := ctx.Tracker.Streak()
	if err != nil {
		return err
	}

	color.Green("✓ Imported %s", c.File)
	fmt.Printf("Current streak: %d day(s)  •  Best streak: %d day(s)\n",
		streak.CurrentStreak, streak.BestStreak)
	return nil
}
