package runner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/sagarsuperuser/marketnav/server/settings"
)

func setupLogger(settings *settings.Settings) error {
	w, err := getLogWriter(settings)
	if err != nil {
		return err
	}

	logLevel := getLogLevel(settings)
	zerolog.SetGlobalLevel(logLevel)

	logger := zerolog.New(w).With().Timestamp().Str("service", "marketnav")
	if logLevel <= zerolog.DebugLevel {
		logger = logger.Caller()
	}

	log.Logger = logger.Logger().Level(logLevel)

	zerolog.DefaultContextLogger = &log.Logger
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	return nil
}

// getLogLevel parses LOG_LEVEL, falling back to ERROR when it is missing or
// unknown.
func getLogLevel(settings *settings.Settings) zerolog.Level {
	levelStr := strings.ToLower(settings.LogLevel)

	logLevel, err := zerolog.ParseLevel(levelStr)
	if err != nil || levelStr == "" {
		log.Error().Err(err).
			Str("logLevel", levelStr).
			Msg("Unspecified or invalid log level, setting the level to default (ERROR)...")

		logLevel = zerolog.ErrorLevel
	}

	return logLevel
}

// getLogWriter writes JSON lines in prod when LOG_FORMAT=json and uses the
// console writer otherwise.
func getLogWriter(settings *settings.Settings) (io.Writer, error) {
	format := strings.ToLower(settings.LogFormat)
	switch format {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("unknown log format %q (use text or json)", settings.LogFormat)
	}

	if format == "json" && settings.Mode == "prod" {
		return os.Stdout, nil
	}
	return zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}, nil
}
