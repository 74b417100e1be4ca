package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tzform/config"
	"tzform/shared/constant"
)

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output)
	log.Trace().Msg("Zerolog initialized.")
}

// UseStructuredOutput swaps the console writer for line-delimited JSON in production.
func UseStructuredOutput(config *config.Config, out io.Writer) {
	if config.Server.Env != constant.ServerEnvProduction {
		return
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = zerolog.New(out).With().Timestamp().Str("app", config.App.Name).Logger()
}

// Named returns a child of the global logger tagged with a component name.
func Named(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Ctx returns the global logger tagged with the request id and client ip
// that the request middleware stored on ctx.
func Ctx(ctx context.Context) *zerolog.Logger {
	logCtx := log.With()

	if requestID, ok := ctx.Value(constant.ContextKeyRequestID).(string); ok && requestID != "" {
		logCtx = logCtx.Str("request_id", requestID)
	}

	if clientIP, ok := ctx.Value(constant.ContextKeyClientIP).(string); ok && clientIP != "" {
		logCtx = logCtx.Str("client_ip", clientIP)
	}

	l := logCtx.Logger()

	return &l
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil || config.Server.LogLevel == "" {
		level = zerolog.InfoLevel
		log.Info().Str("loglevel", level.String()).Msg("No valid log level configured, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
