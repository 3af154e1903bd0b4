// Package log provides the structured logging interface used by the LASSO engine.
//
// The Logger interface is slog-compatible so that callers can plug in any backend.
// The default implementation is backed by zerolog; TestLogger captures records in
// memory for assertions.
//
// Example usage:
//
//	logger := log.GetLogger().With(log.ComponentKey, "linear")
//	logger.Debug("grid point solved",
//	    log.LambdaKey, 0.37,
//	    log.IterationKey, 12,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are alternating key/value pairs. Error additionally accepts an error
// value as the first field, which is logged under ErrAttrKey.
type Logger interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Warn(msg string, fields ...any)
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
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
func ParseLevel(s string) (Level, error) {
	l, err := ToLogLevel(s)
	if err != nil {
		return LevelInfo, err
	}
	return Level(l), nil
}

// normalizeFields turns a leading error value into an ErrAttrKey pair.
func normalizeFields(fields []any) []any {
	if len(fields) == 0 {
		return fields
	}
	if err, ok := fields[0].(error); ok && len(fields)%2 == 1 {
		out := make([]any, 0, len(fields)+1)
		out = append(out, ErrAttrKey, err)
		return append(out, fields[1:]...)
	}
	return fields
}
