package aoc

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
	With().
	Timestamp().
	Logger()

func configureLogger() {
	lvl, err := zerolog.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn().Str("level", flagLogLevel).Msg("unknown log level; using info")
		lvl = zerolog.InfoLevel
	}
	if flagDebug {
		lvl = zerolog.DebugLevel
	}
	logger = logger.Level(lvl)
}
