package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "console", "text":
		return FormatConsole
	default:
		return FormatJSON
	}
}

type Options struct {
	Level  string
	Format string
	App    string

	// Output defaults to os.Stdout.
	Output io.Writer
}

// New builds the process logger. Components get children via With().
func New(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if ParseFormat(opts.Format) == FormatConsole {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	ctx := zerolog.New(out).With().Timestamp()
	if app := strings.TrimSpace(opts.App); app != "" {
		ctx = ctx.Str("app", app)
	}

	return ctx.Logger().Level(ParseLevel(opts.Level))
}

// NewFromEnv reads:
// - LOG_LEVEL=debug|info|warn|error (default info)
// - LOG_FORMAT=json|console (default json)
// - APP_NAME=critter-collector (optional)
func NewFromEnv() zerolog.Logger {
	return New(Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
		App:    os.Getenv("APP_NAME"),
	})
}

// Nop is used by tests and by components built without a logger.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// FromContext returns the request logger if the middleware stored one,
// otherwise fallback.
func FromContext(ctx context.Context, fallback zerolog.Logger) zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return *l
	}
	return fallback
}
