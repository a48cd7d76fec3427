package aoc

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagLogLevel   string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// envFlags maps environment variables to the flags they set defaults for.
var envFlags = map[string]string{
	"AOC_DAY":         "day",
	"AOC_PART":        "part",
	"AOC_SAMPLE":      "sample",
	"AOC_SKIP_SAMPLE": "skip-sample",
	"AOC_DEBUG":       "debug",
	"AOC_LOG_LEVEL":   "log-level",
}

// loadEnv applies flag defaults from the environment, reading a .env file
// in the working directory first if there is one. Variables already set in
// the environment take precedence over the file.
func loadEnv(fset *flag.FlagSet) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Err(err).Msg("loading .env")
	}
	for env, name := range envFlags {
		v, ok := os.LookupEnv(env)
		if !ok {
			continue
		}
		if err := fset.Set(name, v); err != nil {
			logger.Fatal().Err(err).Str("env", env).Msg("bad value")
		}
	}
}

var initFlags = sync.OnceFunc(func() {
	loadEnv(flag.CommandLine)
	flag.Parse()
	configureLogger()
})
