package legislativa

import "context"

// Fetcher retrieves the raw body of a URL.
type Fetcher interface {
	// Fetch performs a single GET request and returns the body.
	// Any status other than 200 is an EFETCH error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
