package shamir

import (
	"context"
	"log/slog"
)

// logDebug emits a debug-level structured event if logger is non-nil.
// Generate and Recover thread an optional *slog.Logger through their
// options rather than relying on a package-level logger, so concurrent
// callers with different loggers never interfere with each other.
func logDebug(logger *slog.Logger, msg string, attrs ...slog.Attr) {
	if logger == nil {
		return
	}
	logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

// logError emits an error-level structured event if logger is non-nil.
func logError(logger *slog.Logger, msg string, attrs ...slog.Attr) {
	if logger == nil {
		return
	}
	logger.LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
}
