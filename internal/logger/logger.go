// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Configure routes the global logger to w in console format. Debug lowers the
// level from warn to debug.
func Configure(w io.Writer, debug bool, color bool) {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    !color,
	}).With().Timestamp().Logger()
}
