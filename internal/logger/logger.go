package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	LOG_LEVEL_DEBUG = "DEBUG"
	LOG_LEVEL_INFO  = "INFO"
	LOG_LEVEL_WARN  = "WARN"
	LOG_LEVEL_ERROR = "ERROR"
	LOG_LEVEL_FATAL = "FATAL"
	LOG_LEVEL_PANIC = "PANIC"

	LogLevelEnv = "WORDTREE_LOGLEVEL"
)

func SetupLogging() {
	zerolog.LevelFieldName = "level_name"
	zerolog.TimestampFieldName = "timestamp"
}

// NewLogger returns a stderr logger tagged with component, at the level named by
// WORDTREE_LOGLEVEL.
func NewLogger(component string) zerolog.Logger {
	return NewLoggerTo(os.Stderr, component)
}

func NewLoggerTo(w io.Writer, component string) zerolog.Logger {
	level, ok := os.LookupEnv(LogLevelEnv)
	if !ok {
		level = LOG_LEVEL_INFO
	}

	return zerolog.New(w).
		With().
		Str("component", component).
		Timestamp().
		Logger().
		Level(ParseLevel(level))
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case LOG_LEVEL_DEBUG:
		return zerolog.DebugLevel
	case LOG_LEVEL_WARN:
		return zerolog.WarnLevel
	case LOG_LEVEL_ERROR:
		return zerolog.ErrorLevel
	case LOG_LEVEL_FATAL:
		return zerolog.FatalLevel
	case LOG_LEVEL_PANIC:
		return zerolog.PanicLevel
	}
	return zerolog.InfoLevel
}
