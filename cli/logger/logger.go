package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Options struct {
	Level  string `doc:"log from debug, info, warn or error, with an optional offset such as warn+2"`
	File   string `doc:"append logs to file"`
	Format string `doc:"format logs as text or json" default:"text"`
}

func level(option string) (slog.Leveler, bool) {
	if option == "" {
		return nil, true
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(option)); err != nil {
		return nil, false
	}
	return l, true
}

func nopClose() error { return nil }

// New returns the logger described by options and a function releasing its output.
// Invalid options fall back to their defaults and the returned logger warns about them.
func New(options *Options) (*slog.Logger, func() error) {
	level, ok := level(options.Level)
	if !ok {
		bad := options.Level
		options.Level = ""
		logger, closer := New(options)
		logger.Warn("could not parse logger level", "level", bad)
		return logger, closer
	}
	opts := slog.HandlerOptions{Level: level}

	var (
		output io.Writer
		closer = nopClose
	)
	switch options.File {
	case "", "-":
		output = os.Stdout
	case os.DevNull:
		return slog.New(slog.DiscardHandler), nopClose
	default:
		f, err := os.OpenFile(options.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			options.File = ""
			logger, closer := New(options)
			logger.Warn("could not open logger file", "err", err)
			return logger, closer
		}
		output, closer = f, f.Close
	}

	switch strings.ToLower(options.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(output, &opts)), closer
	case "text":
		return slog.New(slog.NewTextHandler(output, &opts)), closer
	default:
		bad := options.Format
		options.Format = "text"
		logger := slog.New(slog.NewTextHandler(output, &opts))
		logger.Warn("could not parse logger format", "format", bad)
		return logger, closer
	}
}
