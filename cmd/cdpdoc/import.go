package main

import (
	"context"
	"fmt"

	"github.com/cdpdoc/cdpdoc"
	"github.com/cdpdoc/cdpdoc/fs"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	imported, err := importDocuments(deps.Ctx, fs.NewSource(c.Dir), deps.Pages)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d documents from %s\n", imported, c.Dir)
	return nil
}

// importDocuments drains a document source into the page store. Documents
// with no extractable text are skipped, matching crawl behavior.
func importDocuments(ctx context.Context, source cdpdoc.DocumentSource, pages cdpdoc.PageStore) (int, error) {
	imported := 0
	err := source.Documents(ctx, func(doc *cdpdoc.Document) error {
		if _, err := pages.Put(ctx, doc); err != nil {
			if cdpdoc.ErrorCode(err) == cdpdoc.EEMPTYDOC {
				return nil
			}
			return err
		}
		imported++
		return nil
	})
	return imported, err
}
