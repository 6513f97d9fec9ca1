// Package port contains the interfaces the application layer requires
// from the outside world. Adapters in the infrastructure layer implement
// them, so services can be tested against fakes.
package port

import "context"

// Logger defines the interface for structured logging.
//
// Example usage:
//
//	log.Info("conversion evaluated", "from", from.ID, "to", to.ID)
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keysAndValues ...any)

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keysAndValues ...any)

	// With returns a logger with additional context fields.
	With(keysAndValues ...any) Logger

	// WithContext returns a logger with context information (e.g., request ID).
	WithContext(ctx context.Context) Logger
}
