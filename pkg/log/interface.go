// Package log provides the structured logging interface used by the tree, dataset and
// model-selection packages.
//
// The Logger interface mirrors log/slog: a message followed by alternating key/value
// fields. The default implementation is backed by zerolog (see zerolog.go); tests use
// TestLogger, which captures JSON lines in memory.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("tree.classifier").With(
//	    log.ModelNameKey, "DecisionTreeClassifier",
//	)
//	logger.Info("Training completed",
//	    log.OperationKey, log.OperationFit,
//	    log.SamplesKey, 1000,
//	    log.TreeDepthKey, 7,
//	)
package log

import (
	"context"
)

// Logger is a slog-style structured logger.
type Logger interface {
	// Debug logs diagnostic detail, usually disabled outside development.
	Debug(msg string, fields ...any)

	// Info logs normal operational events.
	Info(msg string, fields ...any)

	// Warn logs conditions that deserve attention but do not stop the operation.
	Warn(msg string, fields ...any)

	// Error logs a failure. An error value passed as the first field is recorded
	// under the "error" key.
	Error(msg string, fields ...any)

	// With returns a logger that adds fields to every record.
	With(fields ...any) Logger

	// Enabled reports whether a record at level would be emitted.
	//
	//	if logger.Enabled(ctx, log.LevelDebug) {
	//	    logger.Debug("split candidates", "count", countCandidates())
	//	}
	Enabled(ctx context.Context, level Level) bool
}

// Level is a logging level with slog-compatible values.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the upper-case level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps "debug", "info", "warn" and "error" to a Level.
func ParseLevel(s string) (Level, bool) {
	switch s {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}

// LoggerProvider creates loggers. The package-level functions GetLogger,
// GetLoggerWithName and SetLevel delegate to the default provider.
type LoggerProvider interface {
	GetLogger() Logger
	GetLoggerWithName(name string) Logger
	SetLevel(level Level)
}
