// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	// Logger writes console-formatted lines. It discards everything until Setup runs.
	Logger = zerolog.Nop()
	// Sampled is Logger throttled for per-frame events.
	Sampled = zerolog.Nop()
)

// ParseLevel maps a case-insensitive level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Setup points Logger at out with colors, plus any files without colors.
func Setup(level string, out io.Writer, files ...io.Writer) {
	zerolog.SetGlobalLevel(ParseLevel(level))
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	writers := make([]io.Writer, 0, len(files)+1)
	if out != nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}
	for _, f := range files {
		writers = append(writers, zerolog.ConsoleWriter{Out: f, TimeFormat: time.RFC3339, NoColor: true})
	}

	Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	Sampled = Logger.With().Bool("sampled", true).Logger().Sample(&zerolog.BurstSampler{
		// 20 lines per second, then 1 in 50
		Burst:       20,
		Period:      time.Second,
		NextSampler: &zerolog.BasicSampler{N: 50},
	})

	Logger.Info().Str("loglevel", zerolog.GlobalLevel().String()).Msg("Logging set up")
}

// For returns a sub-logger tagged with component.
func For(component string) *zerolog.Logger {
	l := Logger.With().Str("component", component).Logger()
	return &l
}

// SampledFor is For on the sampled logger.
func SampledFor(component string) *zerolog.Logger {
	l := Sampled.With().Str("component", component).Logger()
	return &l
}
