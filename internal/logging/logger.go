package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger interface for structured logging.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...any)
	Info(ctx context.Context, msg string, fields ...any)
	Warn(ctx context.Context, err error, msg string, fields ...any)
	Error(ctx context.Context, err error, msg string, fields ...any)

	With(fields ...any) Logger
	WithComponent(component string) Logger
}

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	Level      string // debug, info, warn, error
	Format     string // "json" or "console"
	Output     io.Writer
	TimeFormat string
	Component  string
}

// DefaultConfig returns default logger configuration.
func DefaultConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:      "info",
		Format:     "console",
		Output:     os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

// StoreLogger implements Logger on top of zerolog.
type StoreLogger struct {
	base zerolog.Logger
}

// NewLogger creates a new structured logger. An unparsable level falls back
// to info.
func NewLogger(config *LoggerConfig) *StoreLogger {
	if config == nil {
		config = DefaultConfig()
	}

	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(config.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if config.Format != "json" {
		console := zerolog.NewConsoleWriter()
		console.Out = out
		console.TimeFormat = config.TimeFormat
		if console.TimeFormat == "" {
			console.TimeFormat = time.RFC3339
		}
		out = console
	}

	ctx := zerolog.New(out).Level(level).With().Timestamp()
	if config.Component != "" {
		ctx = ctx.Str("component", config.Component)
	}

	return &StoreLogger{base: ctx.Logger()}
}

// Debug logs a debug message.
func (l *StoreLogger) Debug(ctx context.Context, msg string, fields ...any) {
	l.emit(l.base.Debug(), nil, msg, fields)
}

// Info logs an info message.
func (l *StoreLogger) Info(ctx context.Context, msg string, fields ...any) {
	l.emit(l.base.Info(), nil, msg, fields)
}

// Warn logs a warning message.
func (l *StoreLogger) Warn(ctx context.Context, err error, msg string, fields ...any) {
	l.emit(l.base.Warn(), err, msg, fields)
}

// Error logs an error message.
func (l *StoreLogger) Error(ctx context.Context, err error, msg string, fields ...any) {
	l.emit(l.base.Error(), err, msg, fields)
}

// With returns a logger that always writes the given fields.
func (l *StoreLogger) With(fields ...any) Logger {
	return &StoreLogger{base: l.base.With().Fields(pairs(fields)).Logger()}
}

// WithComponent returns a logger tagged with a component name.
func (l *StoreLogger) WithComponent(component string) Logger {
	return &StoreLogger{base: l.base.With().Str("component", component).Logger()}
}

func (l *StoreLogger) emit(event *zerolog.Event, err error, msg string, fields []any) {
	if event == nil {
		return
	}
	if err != nil {
		event = event.Err(err)
	}
	if len(fields) > 0 {
		event = event.Fields(pairs(fields))
	}
	event.Msg(msg)
}

// pairs turns alternating key/value arguments into an ordered field list.
// A dangling key is recorded under "!BADKEY" the way slog does.
func pairs(fields []any) []any {
	out := make([]any, 0, len(fields)+1)
	for i := 0; i < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			key = fmt.Sprint(fields[i])
		}
		if i+1 >= len(fields) {
			out = append(out, "!BADKEY", key)

			break
		}
		out = append(out, key, fields[i+1])
	}

	return out
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(context.Context, string, ...any)        {}
func (NopLogger) Info(context.Context, string, ...any)         {}
func (NopLogger) Warn(context.Context, error, string, ...any)  {}
func (NopLogger) Error(context.Context, error, string, ...any) {}
func (n NopLogger) With(...any) Logger                         { return n }
func (n NopLogger) WithComponent(string) Logger                { return n }

var (
	_ Logger = (*StoreLogger)(nil)
	_ Logger = NopLogger{}
)
