package log

import (
	"context"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	zl zerolog.Logger
}

// NewZerologLogger wraps an existing zerolog.Logger.
func NewZerologLogger(zl zerolog.Logger) Logger {
	return &zerologLogger{zl: zl}
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

// addFields appends key-value pairs to an event. An error value is attached
// via zerolog's error handling so that stack traces survive; a value without
// a preceding string key is recorded under "field".
func addFields(e *zerolog.Event, fields []any) *zerolog.Event {
	i := 0
	for i < len(fields) {
		if err, ok := fields[i].(error); ok {
			e = e.Err(err)
			i++
			continue
		}
		key, ok := fields[i].(string)
		if !ok || i+1 >= len(fields) {
			e = e.Interface("field", fields[i])
			i++
			continue
		}
		switch v := fields[i+1].(type) {
		case error:
			e = e.AnErr(key, v)
		case zerolog.LogObjectMarshaler:
			e = e.Object(key, v)
		default:
			e = e.Interface(key, v)
		}
		i += 2
	}
	return e
}

func (l *zerologLogger) Debug(msg string, fields ...any) {
	addFields(l.zl.Debug(), fields).Msg(msg)
}

func (l *zerologLogger) Info(msg string, fields ...any) {
	addFields(l.zl.Info(), fields).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, fields ...any) {
	addFields(l.zl.Warn(), fields).Msg(msg)
}

func (l *zerologLogger) Error(msg string, fields ...any) {
	addFields(l.zl.Error(), fields).Msg(msg)
}

func (l *zerologLogger) With(fields ...any) Logger {
	ctx := l.zl.With()
	i := 0
	for i+1 < len(fields) {
		key, ok := fields[i].(string)
		if !ok {
			i++
			continue
		}
		ctx = ctx.Interface(key, fields[i+1])
		i += 2
	}
	return &zerologLogger{zl: ctx.Logger()}
}

func (l *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return toZerologLevel(level) >= l.zl.GetLevel()
}

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = NewZerologLogger(
		zerolog.New(os.Stderr).With().Timestamp().Logger(),
	)
)

// GetLogger returns the process-wide default logger.
func GetLogger() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// GetLoggerWithName returns the default logger with a component field attached.
func GetLoggerWithName(name string) Logger {
	return GetLogger().With(ComponentKey, name)
}

// SetLogger replaces the process-wide default logger.
func SetLogger(logger Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// SetLevel sets the minimum level emitted by zerolog-backed loggers.
func SetLevel(level Level) {
	zerolog.SetGlobalLevel(toZerologLevel(level))
}
