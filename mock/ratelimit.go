package mock

import (
	"context"

	"github.com/Maikl76/legislativa"
)

var _ legislativa.RateLimiter = (*RateLimiter)(nil)

// RateLimiter is a mock implementation of legislativa.RateLimiter.
type RateLimiter struct {
	WaitFn func(ctx context.Context, rawURL string) error
}

func (l *RateLimiter) Wait(ctx context.Context, rawURL string) error {
	return l.WaitFn(ctx, rawURL)
}
