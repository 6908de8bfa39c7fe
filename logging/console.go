package logging

import (
	"fmt"
	"io"
	"os"
)

// Ensure implementations satisfy the interface.
var _ Logger = (*ConsoleLogger)(nil)

// ConsoleLogger writes messages verbatim to standard output.
type ConsoleLogger struct {
	out io.Writer
}

// ConsoleOption configures a ConsoleLogger.
type ConsoleOption func(*ConsoleLogger)

// WithConsoleOutput redirects the logger to w instead of stdout.
func WithConsoleOutput(w io.Writer) ConsoleOption {
	return func(l *ConsoleLogger) {
		if w != nil {
			l.out = w
		}
	}
}

// NewConsoleLogger creates a logger that writes to stdout.
func NewConsoleLogger(opts ...ConsoleOption) *ConsoleLogger {
	l := &ConsoleLogger{out: os.Stdout}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Log writes message followed by a newline.
func (l *ConsoleLogger) Log(message string) error {
	fmt.Fprintln(l.out, message)
	return nil
}
