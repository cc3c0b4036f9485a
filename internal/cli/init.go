package cli

import "github.com/fatih/color"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	color.Green("✓ Storage initialized at %s", ctx.Store.GetConfigPath())
	return nil
}
