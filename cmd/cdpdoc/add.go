package main

import (
	"fmt"

	"github.com/cdpdoc/cdpdoc"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	cdp := &cdpdoc.CDP{
		ID:      c.ID,
		Name:    c.Name,
		BaseURL: c.BaseURL,
	}

	if err := deps.CDPs.CreateCDP(deps.Ctx, cdp); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Registered CDP %q (%s)\n", cdp.Name, cdp.ID)
	return nil
}
