package log

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	lerrors "github.com/YuminosukeSato/lassoviz/pkg/errors"
)

// ZerologLogger implements Logger on top of zerolog.
type ZerologLogger struct {
	zl zerolog.Logger
}

// NewZerologLogger creates a JSON zerolog logger writing to w at the given level.
func NewZerologLogger(w io.Writer, level Level) *ZerologLogger {
	return &ZerologLogger{
		zl: zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger(),
	}
}

// NewConsoleLogger creates a human-readable zerolog logger for terminals.
func NewConsoleLogger(w io.Writer, level Level) *ZerologLogger {
	cw := zerolog.ConsoleWriter{Out: w, NoColor: true}
	return &ZerologLogger{
		zl: zerolog.New(cw).Level(toZerologLevel(level)).With().Timestamp().Logger(),
	}
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

func (z *ZerologLogger) Debug(msg string, fields ...any) { emit(z.zl.Debug(), msg, fields) }
func (z *ZerologLogger) Info(msg string, fields ...any)  { emit(z.zl.Info(), msg, fields) }
func (z *ZerologLogger) Warn(msg string, fields ...any)  { emit(z.zl.Warn(), msg, fields) }
func (z *ZerologLogger) Error(msg string, fields ...any) { emit(z.zl.Error(), msg, fields) }

// With implements Logger.With.
func (z *ZerologLogger) With(fields ...any) Logger {
	ctx := z.zl.With()
	fields = normalizeFields(fields)
	for i := 0; i+1 < len(fields); i += 2 {
		key := fmt.Sprint(fields[i])
		if err, ok := fields[i+1].(error); ok {
			ctx = ctx.AnErr(key, err)
			continue
		}
		ctx = ctx.Interface(key, fields[i+1])
	}
	return &ZerologLogger{zl: ctx.Logger()}
}

// Enabled implements Logger.Enabled.
func (z *ZerologLogger) Enabled(_ context.Context, level Level) bool {
	return toZerologLevel(level) >= z.zl.GetLevel()
}

func emit(e *zerolog.Event, msg string, fields []any) {
	if e == nil {
		return
	}
	fields = normalizeFields(fields)
	for i := 0; i+1 < len(fields); i += 2 {
		key := fmt.Sprint(fields[i])
		switch v := fields[i+1].(type) {
		case error:
			e = e.AnErr(key, v)
			var obj zerolog.LogObjectMarshaler
			if errors.As(v, &obj) {
				e = e.Object(key+"_detail", obj)
			}
		case zerolog.LogObjectMarshaler:
			e = e.Object(key, v)
		case float64:
			e = e.Float64(key, v)
		case int:
			e = e.Int(key, v)
		case bool:
			e = e.Bool(key, v)
		case string:
			e = e.Str(key, v)
		default:
			e = e.Interface(key, v)
		}
	}
	e.Msg(msg)
}

// InstallWarnHook routes pkg/errors.Warn through logger at warn level.
func InstallWarnHook(logger Logger) {
	lerrors.SetZerologWarnFunc(func(w error) {
		logger.Warn("warning", "warning", w)
	})
}
