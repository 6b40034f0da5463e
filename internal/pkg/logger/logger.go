// Package logger adapts zerolog to the ports.Logger interface.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ZeroLogger routes structured log events through zerolog's console writer.
type ZeroLogger struct {
	log zerolog.Logger
}

// New creates a ZeroLogger. Verbose enables debug-level output; otherwise
// only warnings and errors are emitted.
func New(verbose bool) *ZeroLogger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	zl := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	return &ZeroLogger{log: zl}
}

func (l *ZeroLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.log.Error().Err(err).Fields(fields).Msg(msg)
}
