package legislativa

import "context"

// HistoryStore keeps the last observed text of each document by name.
type HistoryStore interface {
	// Load returns the stored text for name, or an empty string if the
	// document has never been observed.
	Load(ctx context.Context, name string) (string, error)

	// Save replaces the stored text for name.
	Save(ctx context.Context, name, text string) error
}

// SourceLoader reads the list of source page URLs.
type SourceLoader interface {
	LoadSources(ctx context.Context) ([]string, error)
}
