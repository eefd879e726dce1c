// Package logger builds the [slog.Logger] shared by the storage layer and
// the command line.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options selects the level, destination and format of log output.
type Options struct {
	Level  string `env:"LEVEL"  envDefault:"info"`
	File   string `env:"FILE"`
	Format string `env:"FORMAT" envDefault:"text"`
}

func level(option string) (slog.Leveler, bool) {
	switch strings.ToLower(option) {
	case "":
		return nil, true
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return nil, false
	}
}

// New returns a logger for options. Options that cannot be honoured are
// reset to their defaults and reported through the returned logger.
// Output goes to stderr unless File names something else; stdout belongs
// to command output. A log file stays open for the life of the process.
// A nil options selects every default.
func New(options *Options) *slog.Logger {
	return newLogger(options, os.Stderr)
}

func newLogger(options *Options, stderr io.Writer) *slog.Logger {
	if options == nil {
		options = &Options{Format: "text"}
	}
	level, ok := level(options.Level)
	if !ok {
		options.Level = ""
		logger := newLogger(options, stderr)
		logger.Warn("could not parse logger level")
		return logger
	}
	opts := slog.HandlerOptions{Level: level}

	var output io.Writer
	switch options.File {
	case "", "-":
		output = stderr
	case os.DevNull:
		return slog.New(slog.DiscardHandler)
	default:
		var err error
		output, err = os.OpenFile(options.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			options.File = ""
			logger := newLogger(options, stderr)
			logger.Warn("could not open logger file", "err", err)
			return logger
		}
	}

	switch strings.ToLower(options.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(output, &opts))
	case "text":
		return slog.New(slog.NewTextHandler(output, &opts))
	default:
		options.Format = "text"
		logger := newLogger(options, stderr)
		logger.Warn("could not parse logger format")
		return logger
	}
}
