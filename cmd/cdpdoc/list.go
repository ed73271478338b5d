package main

import (
	"fmt"

	"github.com/cdpdoc/cdpdoc"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	cdps, err := deps.CDPs.FindCDPs(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
		return err
	}

	if len(cdps) == 0 {
		fmt.Fprintln(deps.Stdout, "No CDPs registered. Use 'cdpdoc add' to register one.")
		return nil
	}

	for _, cdp := range cdps {
		count, err := deps.Pages.CountDocuments(deps.Ctx, cdp.ID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "%-12s %-12s %4d docs  %s\n", cdp.ID, cdp.Name, count, cdp.BaseURL)
	}

	return nil
}
