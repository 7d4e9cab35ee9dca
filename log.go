package sshkit

import (
	"github.com/rs/zerolog"

	"sshkit/util"
)

// ZerologCallback adapts a zerolog logger into a [LogCallback], so
// applications with structured logging can receive session events in
// their own pipeline instead of the built-in stderr logger.
func ZerologCallback(l *zerolog.Logger) LogCallback {
	return func(_ *Session, level util.LogLevel, message string, _ any) {
		l.WithLevel(zerologLevel(level)).Msg(message)
	}
}

func zerologLevel(level util.LogLevel) zerolog.Level {
	switch level {
	case util.LogQuiet:
		return zerolog.ErrorLevel
	case util.LogNormal:
		return zerolog.InfoLevel
	case util.LogVerbose:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}
