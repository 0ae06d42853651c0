package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Maikl76/legislativa"
	"github.com/Maikl76/legislativa/scrape"
)

// maxURLWidth bounds the URL column of the status table.
const maxURLWidth = 60

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Catalog.Reload(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", legislativa.ErrorMessage(err))
		return err
	}

	if len(catalog.Documents) == 0 {
		fmt.Fprintf(deps.Stdout, "No documents found in %d sources.\n", len(catalog.Sources))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Status", "Name", "Size", "URL"})
	for _, doc := range catalog.Documents {
		t.AppendRow(table.Row{
			string(catalog.Status[doc.Name]),
			doc.Name,
			scrape.FormatSize(len(doc.Content)),
			scrape.ShortenURL(doc.FileURL, maxURLWidth),
		})
	}
	t.Render()

	fmt.Fprintf(deps.Stdout, "\n%d documents from %d sources\n", len(catalog.Documents), len(catalog.Sources))
	return nil
}
