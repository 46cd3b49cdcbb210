// Package observability provides structured logging, metrics, and tracing
// for typesignal hubs.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds signal context to a logger.
// Returns a new logger with type and signal fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "shop.Order", "created")
//	enriched.Info("handler running") // includes type, signal
func EnrichLogger(logger *slog.Logger, typeName, signal string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("type", typeName),
		slog.String("signal", signal),
	)
}

// LogDeclare logs the declaration of signals on a type.
func LogDeclare(logger *slog.Logger, typeName string, signals []string) {
	if logger == nil {
		return
	}
	logger.Debug("signals declared",
		slog.String("type", typeName),
		slog.Any("signals", signals),
	)
}

// LogConnect logs a handler connection.
// scope is a type name or "base" for the type-agnostic tier.
func LogConnect(logger *slog.Logger, scope, signal string, transitive bool) {
	if logger == nil {
		return
	}
	logger.Debug("handler connected",
		slog.String("scope", scope),
		slog.String("signal", signal),
		slog.Bool("transitive", transitive),
	)
}

// LogEmit logs a completed emission.
func LogEmit(logger *slog.Logger, typeName, signal string, receivers int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("signal emitted",
		slog.String("type", typeName),
		slog.String("signal", signal),
		slog.Int("receivers", receivers),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogSignalNotDefined logs a connect or emit against an undeclared signal.
func LogSignalNotDefined(logger *slog.Logger, typeName, signal string) {
	if logger == nil {
		return
	}
	logger.Warn("signal not defined",
		slog.String("type", typeName),
		slog.String("signal", signal),
	)
}

// LogRecordFailure logs a journal append failure (non-fatal).
func LogRecordFailure(logger *slog.Logger, signal, emissionID string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("journal append failed",
		slog.String("signal", signal),
		slog.String("emission_id", emissionID),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

// Milliseconds converts a duration to fractional milliseconds for log fields.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
