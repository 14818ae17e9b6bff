package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the process-wide logger. Init replaces it.
var Logger = log.Logger

type Config struct {
	Level  string // debug, info, warn, error
	Format string // json or pretty
	// Output defaults to stdout.
	Output io.Writer
}

// Init configures the global logger and zerolog's own global.
func Init(cfg Config) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Format == "pretty" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	Logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
	log.Logger = Logger
}

func Debug() *zerolog.Event { return Logger.Debug() }

func Info() *zerolog.Event { return Logger.Info() }

func Warn() *zerolog.Event { return Logger.Warn() }

func Error() *zerolog.Event { return Logger.Error() }

// Fatal logs and exits the process.
func Fatal() *zerolog.Event { return Logger.Fatal() }

// WithContext stores the global logger in ctx.
func WithContext(ctx context.Context) context.Context {
	return Logger.WithContext(ctx)
}

// Ctx returns the logger carried by ctx, falling back to the global one.
func Ctx(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return &Logger
	}
	return l
}
