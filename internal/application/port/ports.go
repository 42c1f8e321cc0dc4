// Package port contains the port interfaces for the application layer.
// Ports define the interfaces that the application layer requires from
// external services, and the use-case contracts it offers to inbound
// adapters like the HTTP layer.
//
// In Hexagonal Architecture (ports & adapters):
//   - Ports are interfaces that define what the application needs.
//   - Adapters are implementations of these interfaces
//   - this enables loose coupling and easy testing/swapping of implementations.
package port

import (
	"context"

	"github.com/hapkiduki/parcel-go/internal/application/dto"
)

// Logger defines the interface for structured logging.
// Implementation may use zap, logrus, or the standard library.
//
// Example usage:
//
//	logger.Info("package sorted", "category", category, "volume_cm3", volume)
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keysAndValues ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keysAndValues ...interface{})

	// With return a logger with additional context fields.
	With(keysAndValues ...interface{}) Logger

	// WithContext return a logger with context information (e.g., request ID).
	WithContext(ctx context.Context) Logger
}

// PackageSorter is the inbound port for the parcel classification use case.
// Inbound adapters (HTTP handlers, CLIs) depend on this interface rather
// than on the concrete use case.
type PackageSorter interface {
	// Sort validates the raw measurements and classifies the parcel.
	// On validation failure it returns a *entity.ValidationError.
	Sort(ctx context.Context, req dto.SortRequest) (dto.SortResult, error)
}
