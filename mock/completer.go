package mock

import (
	"context"

	"github.com/Maikl76/legislativa"
)

var _ legislativa.Completer = (*Completer)(nil)

// Completer is a mock implementation of legislativa.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, req *legislativa.CompletionRequest) (string, error)
}

func (c *Completer) Complete(ctx context.Context, req *legislativa.CompletionRequest) (string, error) {
	return c.CompleteFn(ctx, req)
}
