// Package logging implements the "log" capability: a Logger contract and its
// console, file, slog and composite implementers.
package logging

// Logger writes a single message to some destination.
type Logger interface {
	// Log writes message, newline-terminated, to the logger's destination.
	// Console destinations never fail; file-backed destinations surface I/O
	// errors to the caller without retrying.
	Log(message string) error
}
