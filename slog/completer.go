package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Maikl76/legislativa"
)

// Ensure LoggingCompleter implements legislativa.Completer.
var _ legislativa.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer and logs every call.
type LoggingCompleter struct {
	next   legislativa.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next legislativa.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete delegates to the wrapped completer and logs prompt and reply sizes.
func (c *LoggingCompleter) Complete(ctx context.Context, req *legislativa.CompletionRequest) (reply string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("completion",
			"prompt_chars", len(req.User),
			"reply_chars", len(reply),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Complete(ctx, req)
}
