package observability

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "hobby-catalog"

// NewLogger builds the process logger on stdout. APP_ENV=dev (or development)
// gets the console writer, anything else gets JSON tagged with the service.
// An unknown or empty level means info.
func NewLogger(env, level string) zerolog.Logger {
	return newLogger(os.Stdout, env, level)
}

func newLogger(w io.Writer, env, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	switch env {
	case "dev", "development":
		cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
		return zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
	default:
		return zerolog.New(w).Level(lvl).With().Timestamp().Str("service", serviceName).Logger()
	}
}
