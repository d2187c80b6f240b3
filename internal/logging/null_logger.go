package logging

// NullLogger discards all log messages. Useful as a default in tests and
// for library consumers that bring their own diagnostics.
type NullLogger struct{}

// NewNullLogger creates a logger that produces no output.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

// Verbose discards the message.
func (l *NullLogger) Verbose(format string, args ...interface{}) {}

// Info discards the message.
func (l *NullLogger) Info(format string, args ...interface{}) {}

// Error discards the message.
func (l *NullLogger) Error(format string, args ...interface{}) {}
