package mock

import (
	"context"

	"github.com/Maikl76/legislativa"
)

var _ legislativa.Asker = (*Asker)(nil)

// Asker is a mock implementation of legislativa.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	return a.AskFn(ctx, question)
}
