package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New initializes a new zerolog.Logger writing to out.
// 'devMode' enables human-readable console logging.
func New(out io.Writer, devMode bool, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var logger zerolog.Logger
	if devMode {
		// Human-readable output for local development
		consoleWriter := zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
		logger = zerolog.New(consoleWriter).With().Timestamp().Logger()
	} else {
		// Efficient JSON output for production
		logger = zerolog.New(out).With().Timestamp().Logger()
	}

	return logger.Level(lvl), nil
}
