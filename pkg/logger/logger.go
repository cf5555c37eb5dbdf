// Package logger provides the logging interface shared by the winposix
// CLI and the mkcygcall generator. Backends exist for console output, for
// discarding everything, and for fanning out to several loggers at once.
package logger

import "log"

// Logger is the interface all winposix components log through.
type Logger interface {
	// Info logs an informational message (e.g. "wrote zproc_windows.go").
	Info(format string, args ...interface{})

	// Warning logs a warning message.
	Warning(format string, args ...interface{})

	// Error logs an error message.
	Error(format string, args ...interface{})

	// Close releases resources held by the logger. Safe to call multiple
	// times; returns nil for loggers without resources.
	Close() error
}

// StandardLogger wraps a stdlib *log.Logger for console or file output.
type StandardLogger struct {
	logger *log.Logger
}

// NewStandardLogger creates a logger wrapping l. A nil l wraps
// log.Default().
func NewStandardLogger(l *log.Logger) *StandardLogger {
	if l == nil {
		l = log.Default()
	}
	return &StandardLogger{logger: l}
}

// Info logs an informational message with [INFO] prefix.
func (s *StandardLogger) Info(format string, args ...interface{}) {
	s.logger.Printf("[INFO] "+format, args...)
}

// Warning logs a warning message with [WARNING] prefix.
func (s *StandardLogger) Warning(format string, args ...interface{}) {
	s.logger.Printf("[WARNING] "+format, args...)
}

// Error logs an error message with [ERROR] prefix.
func (s *StandardLogger) Error(format string, args ...interface{}) {
	s.logger.Printf("[ERROR] "+format, args...)
}

// Close is a no-op for StandardLogger.
func (s *StandardLogger) Close() error {
	return nil
}

// NopLogger discards all messages. Used by quiet mode and tests.
type NopLogger struct{}

// NewNopLogger creates a logger that discards all messages.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

// Info discards the message.
func (n *NopLogger) Info(format string, args ...interface{}) {}

// Warning discards the message.
func (n *NopLogger) Warning(format string, args ...interface{}) {}

// Error discards the message.
func (n *NopLogger) Error(format string, args ...interface{}) {}

// Close is a no-op.
func (n *NopLogger) Close() error {
	return nil
}

var (
	_ Logger = (*StandardLogger)(nil)
	_ Logger = (*NopLogger)(nil)
)
