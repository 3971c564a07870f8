package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const simpleTimeFormat = "02-01-2006 15:04:05"

// New constructs a zerolog logger according to the runtime environment.
// Development environments get console output, everything else emits JSON.
// The level applies to the returned logger only; zerolog's global level is
// left alone.
func New(env, level string, writers ...io.Writer) (zerolog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	var output io.Writer
	switch {
	case len(writers) > 0:
		output = io.MultiWriter(writers...)
	case strings.EqualFold(env, "development") || strings.EqualFold(env, "dev"):
		cw := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: simpleTimeFormat}
		output = cw
	default:
		output = os.Stderr
	}

	return zerolog.New(output).
		Level(lvl).
		With().
		Timestamp().
		Str("lib", "infobip").
		Logger(), nil
}

// Component derives a sub-logger tagged with the given component name.
func Component(base zerolog.Logger, name string) zerolog.Logger {
	return base.With().Str("component", name).Logger()
}

// DurationField keeps exchange durations in milliseconds regardless of the
// global zerolog setting.
func DurationField(e *zerolog.Event, d time.Duration) *zerolog.Event {
	return e.Float64("duration_ms", float64(d.Microseconds())/1000)
}

func parseLevel(level string) (zerolog.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		level = zerolog.InfoLevel.String()
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, err
	}
	return lvl, nil
}
