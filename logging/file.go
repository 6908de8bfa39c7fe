package logging

import (
	"os"
)

var _ Logger = (*FileLogger)(nil)

// fileLoggerConfig holds configuration for the FileLogger.
type fileLoggerConfig struct {
	filePerm os.FileMode
}

func defaultFileLoggerConfig() fileLoggerConfig {
	return fileLoggerConfig{
		filePerm: 0o600,
	}
}

// FileOption configures a FileLogger instance.
type FileOption func(*fileLoggerConfig)

// WithFilePermissions sets the permissions used when the log file is created.
func WithFilePermissions(perm os.FileMode) FileOption {
	return func(c *fileLoggerConfig) {
		c.filePerm = perm
	}
}

// FileLogger appends messages to a file, one line per call.
// The file is opened per call and released on every exit path, so the logger
// itself carries no open handle between calls.
type FileLogger struct {
	path string
	cfg  fileLoggerConfig
}

// NewFileLogger creates a logger that appends to the file at path.
// The file is created on first write if it does not exist.
func NewFileLogger(path string, opts ...FileOption) *FileLogger {
	cfg := defaultFileLoggerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FileLogger{path: path, cfg: cfg}
}

// Path returns the destination file path.
func (l *FileLogger) Path() string {
	return l.path
}

// Log appends message, newline-terminated, to the file.
// Open and write failures are surfaced to the caller; nothing is retried.
func (l *FileLogger) Log(message string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, l.cfg.filePerm)
	if err != nil {
		return &WriteError{Dest: l.path, Cause: err}
	}

	_, werr := f.WriteString(message + "\n")
	cerr := f.Close()

	if werr != nil {
		return &WriteError{Dest: l.path, Cause: werr}
	}
	if cerr != nil {
		return &WriteError{Dest: l.path, Cause: cerr}
	}
	return nil
}
