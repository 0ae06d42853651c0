package mock

import (
	"context"

	"github.com/Maikl76/legislativa"
)

var _ legislativa.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is a mock implementation of legislativa.HistoryStore.
type HistoryStore struct {
	LoadFn func(ctx context.Context, name string) (string, error)
	SaveFn func(ctx context.Context, name, text string) error
}

func (s *HistoryStore) Load(ctx context.Context, name string) (string, error) {
	return s.LoadFn(ctx, name)
}

func (s *HistoryStore) Save(ctx context.Context, name, text string) error {
	return s.SaveFn(ctx, name, text)
}

var _ legislativa.SourceLoader = (*SourceLoader)(nil)

// SourceLoader is a mock implementation of legislativa.SourceLoader.
type SourceLoader struct {
	LoadSourcesFn func(ctx context.Context) ([]string, error)
}

func (l *SourceLoader) LoadSources(ctx context.Context) ([]string, error) {
	return l.LoadSourcesFn(ctx)
}
