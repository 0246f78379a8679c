package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog with a dynamically adjustable level.
type Logger struct {
	*slog.Logger
	levelVar *slog.LevelVar
}

func New() *Logger {
	return NewWithLevel("INFO")
}

func NewWithLevel(level string) *Logger {
	levelVar := &slog.LevelVar{}
	levelVar.Set(parseLevel(level))

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelVar,
	})

	return &Logger{
		Logger:   slog.New(handler),
		levelVar: levelVar,
	}
}

// SetLevel changes the log level at runtime.
func (l *Logger) SetLevel(level string) {
	l.levelVar.Set(parseLevel(level))
}

// GetLevel returns the current log level.
func (l *Logger) GetLevel() slog.Level {
	return l.levelVar.Level()
}

// With returns a logger that includes the given attributes in every record.
// The derived logger shares the parent's level var.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger:   l.Logger.With(args...),
		levelVar: l.levelVar,
	}
}

// Fatal logs at error level and exits.
func (l *Logger) Fatal(msg string, args ...any) {
	l.Logger.Error(msg, args...)
	os.Exit(1)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
