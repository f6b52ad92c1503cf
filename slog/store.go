package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/skillsync"
)

// Ensure LoggingStore implements skillsync.Store.
var _ skillsync.Store = (*LoggingStore)(nil)

// LoggingStore wraps a Store with debug logging.
type LoggingStore struct {
	next   skillsync.Store
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next skillsync.Store, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Read delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Read(ctx context.Context, path string) (content string, exists bool, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("read",
			"path", path,
			"exists", exists,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Read(ctx, path)
}

// Write delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Write(ctx context.Context, path string, content string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("write",
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Write(ctx, path, content)
}
