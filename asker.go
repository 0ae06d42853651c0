package legislativa

import "context"

// Asker answers natural language questions over the catalog.
type Asker interface {
	// Ask answers a question using the text of recently scraped documents.
	// Returns EINVALID if the question is blank.
	Ask(ctx context.Context, question string) (string, error)
}

// CompletionRequest is a single request to a language model.
type CompletionRequest struct {
	System    string
	User      string
	MaxTokens int
}

// Completer sends one prompt to a language model and returns its reply.
type Completer interface {
	Complete(ctx context.Context, req *CompletionRequest) (string, error)
}
