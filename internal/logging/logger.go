package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration
type Config struct {
	Level  string    // debug, info, warn, error
	Pretty bool      // human-readable console output
	Output io.Writer // defaults to stderr so report output stays clean
}

// ParseLevel maps a level name to zerolog, defaulting to info
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	}
	return zerolog.InfoLevel
}

// New creates a structured logger
func New(cfg Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(output).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("app", "budgetcalc").
		Logger()
}

// EngineLogger adapts a zerolog.Logger to the printf-style calculation.Logger
type EngineLogger struct {
	log zerolog.Logger
}

// NewEngineLogger wraps l, tagging every event with the engine component
func NewEngineLogger(l zerolog.Logger) *EngineLogger {
	return &EngineLogger{log: l.With().Str("component", "engine").Logger()}
}

func (e *EngineLogger) Debugf(format string, args ...interface{}) {
	e.log.Debug().Msg(fmt.Sprintf(format, args...))
}

func (e *EngineLogger) Infof(format string, args ...interface{}) {
	e.log.Info().Msg(fmt.Sprintf(format, args...))
}

func (e *EngineLogger) Warnf(format string, args ...interface{}) {
	e.log.Warn().Msg(fmt.Sprintf(format, args...))
}

func (e *EngineLogger) Errorf(format string, args ...interface{}) {
	e.log.Error().Msg(fmt.Sprintf(format, args...))
}
