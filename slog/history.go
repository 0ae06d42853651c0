package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Maikl76/legislativa"
)

// Ensure LoggingHistoryStore implements legislativa.HistoryStore.
var _ legislativa.HistoryStore = (*LoggingHistoryStore)(nil)

// LoggingHistoryStore wraps a HistoryStore with debug logging.
type LoggingHistoryStore struct {
	next   legislativa.HistoryStore
	logger *slog.Logger
}

// NewLoggingHistoryStore creates a new LoggingHistoryStore.
func NewLoggingHistoryStore(next legislativa.HistoryStore, logger *slog.Logger) *LoggingHistoryStore {
	return &LoggingHistoryStore{next: next, logger: logger}
}

// Load delegates to the wrapped store.
func (s *LoggingHistoryStore) Load(ctx context.Context, name string) (text string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("history load",
			"name", name,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx, name)
}

// Save delegates to the wrapped store.
func (s *LoggingHistoryStore) Save(ctx context.Context, name, text string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("history save",
			"name", name,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, name, text)
}
