package logger

import (
	"fmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"io"
	"os"
	"strconv"
	"strings"
)

const timeFormat = "02-01-2006 15:04:05.000"

// Init configures the global zerolog logger. Loggers pulled from a context without one
// attached fall back to it.
func Init(level string, pretty bool) error {
	l, err := New(os.Stdout, level, pretty)
	if err != nil {
		return err
	}

	zerolog.SetGlobalLevel(l.GetLevel())
	log.Logger = l
	zerolog.DefaultContextLogger = &log.Logger
	return nil
}

// New builds a logger writing to w. Pretty output uses the console writer, otherwise
// lines are JSON.
func New(w io.Writer, level string, pretty bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.DebugLevel
	}

	zerolog.CallerMarshalFunc = shortCaller

	out := w
	if pretty {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: timeFormat,
			FormatLevel: func(i interface{}) string {
				return strings.ToUpper(fmt.Sprintf("%-6s", i))
			},
		}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Caller().Logger(), nil
}

// shortCaller trims the caller down to file:line.
func shortCaller(_ uintptr, file string, line int) string {
	parts := strings.Split(file, "/")
	return parts[len(parts)-1] + ":" + strconv.Itoa(line)
}
