package main

import (
	"fmt"

	"github.com/cdpdoc/cdpdoc"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return cdpdoc.Errorf(cdpdoc.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.CDPs.DeleteCDP(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted CDP %q and its documents\n", c.ID)
	return nil
}
