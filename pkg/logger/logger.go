package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger keeps the printf-style call sites used across the services while
// writing structured events through zerolog.
type Logger struct {
	info  *zerolog.Logger
	warn  *zerolog.Logger
	error *zerolog.Logger
	debug *zerolog.Logger
}

type Options struct {
	Level  string
	Pretty bool
	Output io.Writer
	// Service is attached to every event as the "service" field.
	Service string
}

func New() *Logger {
	return NewWithOptions(Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Pretty: os.Getenv("APP_ENV") != "production",
	})
}

func NewWithOptions(opts Options) *Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "2006-01-02 15:04:05"}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	ctx := zerolog.New(out).Level(level).With().Timestamp()
	if opts.Service != "" {
		ctx = ctx.Str("service", opts.Service)
	}
	base := ctx.Logger()

	info := base.With().Logger()
	warn := base.With().Logger()
	errLog := base.With().Logger()
	debug := base.With().Logger()

	return &Logger{
		info:  &info,
		warn:  &warn,
		error: &errLog,
		debug: &debug,
	}
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.info.Info().Msgf(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.warn.Warn().Msgf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.error.Error().Msgf(format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.debug.Debug().Msgf(format, args...)
}

// Zerolog exposes the underlying logger for code that wants structured fields.
func (l *Logger) Zerolog() *zerolog.Logger {
	return l.info
}
