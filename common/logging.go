package common

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

func InitLogging() {
	zerolog.SetGlobalLevel(Config.LogLevel)

	zerolog.CallerFieldName = "line"
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		rel := strings.Split(file, "kvo/")
		return fmt.Sprintf("%s:%d", rel[len(rel)-1], line)
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	if Config.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Caller().Logger()
	}
}
