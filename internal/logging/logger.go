package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Field is a single structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Int64 creates an int64 field.
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

// Uint64 creates a uint64 field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Duration creates a time.Duration field.
func Duration(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Err creates a field holding an error under the "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the logging interface used across the application.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Debug(msg string, fields ...Field)
	Printf(format string, args ...any)
	Println(args ...any)
}

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// Verify interface compliance.
var _ Logger = (*ZerologAdapter)(nil)

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewDefaultLogger returns a JSON logger writing to stderr at info level.
func NewDefaultLogger() Logger {
	return NewLogger(os.Stderr, "sumbench")
}

// NewLogger returns a JSON logger writing to w, tagging every entry with the
// given component name.
func NewLogger(w io.Writer, component string) Logger {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return NewZerologAdapter(zl)
}

// NewConsoleLogger returns a human-readable logger for interactive use.
// Debug entries are emitted only when verbose is set.
func NewConsoleLogger(w io.Writer, component string, verbose bool) Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: !isTerminal(w)}
	zl := zerolog.New(cw).Level(level).With().Timestamp().Str("component", component).Logger()
	return NewZerologAdapter(zl)
}

// Info logs at info level.
func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	z.applyFields(z.logger.Info(), fields).Msg(msg)
}

// Error logs at error level with err attached under the "error" key.
func (z *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	z.applyFields(z.logger.Error().Err(err), fields).Msg(msg)
}

// Debug logs at debug level.
func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	z.applyFields(z.logger.Debug(), fields).Msg(msg)
}

// Printf logs a formatted message at info level.
func (z *ZerologAdapter) Printf(format string, args ...any) {
	z.logger.Info().Msgf(format, args...)
}

// Println logs the space-joined arguments at info level.
func (z *ZerologAdapter) Println(args ...any) {
	z.logger.Info().Msg(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

func (z *ZerologAdapter) applyFields(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case int64:
			event = event.Int64(f.Key, v)
		case uint64:
			event = event.Uint64(f.Key, v)
		case float64:
			event = event.Float64(f.Key, v)
		case bool:
			event = event.Bool(f.Key, v)
		case time.Duration:
			event = event.Dur(f.Key, v)
		case error:
			event = event.AnErr(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	return event
}

// StdLoggerAdapter implements Logger on top of the standard library logger.
type StdLoggerAdapter struct {
	logger *log.Logger
}

// Verify interface compliance.
var _ Logger = (*StdLoggerAdapter)(nil)

// NewStdLoggerAdapter wraps a *log.Logger.
func NewStdLoggerAdapter(logger *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger}
}

// Info logs with an [INFO] prefix.
func (s *StdLoggerAdapter) Info(msg string, fields ...Field) {
	s.logger.Printf("[INFO] %s%s", msg, formatFields(fields))
}

// Error logs with an [ERROR] prefix followed by the error.
func (s *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	s.logger.Printf("[ERROR] %s: %v%s", msg, err, formatFields(fields))
}

// Debug logs with a [DEBUG] prefix.
func (s *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	s.logger.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

// Printf forwards to the wrapped logger.
func (s *StdLoggerAdapter) Printf(format string, args ...any) {
	s.logger.Printf(format, args...)
}

// Println forwards to the wrapped logger.
func (s *StdLoggerAdapter) Println(args ...any) {
	s.logger.Println(args...)
}

func formatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	return b.String()
}

// NopLogger discards everything.
type NopLogger struct{}

// Verify interface compliance.
var _ Logger = NopLogger{}

func (NopLogger) Info(string, ...Field)         {}
func (NopLogger) Error(string, error, ...Field) {}
func (NopLogger) Debug(string, ...Field)        {}
func (NopLogger) Printf(string, ...any)         {}
func (NopLogger) Println(...any)                {}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
