package main

import (
	"fmt"
	"strings"

	"github.com/Maikl76/legislativa"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	question := strings.TrimSpace(c.Question)
	if question == "" {
		fmt.Fprintln(deps.Stderr, "error: question required")
		return legislativa.Errorf(legislativa.EINVALID, "question required")
	}

	if _, err := deps.Catalog.Reload(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", legislativa.ErrorMessage(err))
		return err
	}

	answer, err := deps.Asker.Ask(deps.Ctx, question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", legislativa.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
