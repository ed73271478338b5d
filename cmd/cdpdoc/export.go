package main

import (
	"fmt"

	"github.com/cdpdoc/cdpdoc"
	"github.com/cdpdoc/cdpdoc/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	cdps, err := deps.CDPs.FindCDPs(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
		return err
	}

	writer := fs.NewWriter(c.Dir)
	exported := 0
	for _, cdp := range cdps {
		docs, err := deps.Pages.Documents(deps.Ctx, cdpdoc.DocumentFilter{CDPID: &cdp.ID})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
			return err
		}
		if len(docs) == 0 {
			continue
		}

		if err := writer.WriteDocuments(deps.Ctx, cdp.ID, docs); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
			return err
		}

		fmt.Fprintf(deps.Stdout, "Exported %d documents for %s\n", len(docs), cdp.ID)
		exported += len(docs)
	}

	if exported == 0 {
		fmt.Fprintln(deps.Stdout, "Nothing to export. Crawl or import documents first.")
	}
	return nil
}
