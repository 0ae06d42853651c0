package main

import (
	"fmt"
	"net"

	"github.com/Maikl76/legislativa"
	lhttp "github.com/Maikl76/legislativa/http"
)

// Run executes the serve command. The catalog is loaded once before the
// server starts listening.
func (c *ServeCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Catalog.Reload(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", legislativa.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Loaded %d documents from %d sources\n", len(catalog.Documents), len(catalog.Sources))

	server := lhttp.NewServer(deps.Asker, deps.Catalog, deps.Logger)
	if err := server.Open(net.JoinHostPort(c.Host, c.Port)); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Listening on %s\n", server.Addr())

	select {
	case <-deps.Ctx.Done():
	case err := <-server.Err():
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	return server.Close()
}
