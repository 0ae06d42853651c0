package legislativa

import "context"

// RateLimiter throttles outgoing requests per server.
type RateLimiter interface {
	// Wait blocks until a request to rawURL may be sent.
	// Returns an error if the context is canceled first or rawURL has no host.
	Wait(ctx context.Context, rawURL string) error
}
