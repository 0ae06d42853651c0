package mock

import (
	"context"

	"github.com/Maikl76/legislativa"
)

var _ legislativa.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of legislativa.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) ([]byte, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.FetchFn(ctx, url)
}
