package logging

import (
	"context"
	"log/slog"
)

var _ Logger = (*SlogLogger)(nil)

// SlogLogger satisfies the Logger contract by forwarding messages to a
// *slog.Logger at a fixed level. It bridges the capability-style contract
// onto the structured logger the rest of the library uses for its own
// diagnostics.
type SlogLogger struct {
	logger *slog.Logger
	level  slog.Level
}

// SlogOption configures a SlogLogger.
type SlogOption func(*SlogLogger)

// WithSlogLevel sets the level messages are emitted at. Default is Info.
func WithSlogLevel(level slog.Level) SlogOption {
	return func(l *SlogLogger) {
		l.level = level
	}
}

// NewSlogLogger creates a Logger backed by logger.
// A nil logger falls back to slog.Default().
func NewSlogLogger(logger *slog.Logger, opts ...SlogOption) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	l := &SlogLogger{logger: logger, level: slog.LevelInfo}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Log emits message at the configured level.
func (l *SlogLogger) Log(message string) error {
	l.logger.Log(context.Background(), l.level, message)
	return nil
}
