package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tom-seddon/vgm-packer/internal/logger"
)

// defaultBanks is the Master 128 sideways RAM convention.
const defaultBanks = "4567"

var (
	banksArg  string
	verbose   bool
	logLevel  string
	logFormat string
)

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "banks",
			Usage:       "banks available for use, a list of hex digits",
			Value:       defaultBanks,
			Destination: &banksArg,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Aliases:     []string{"v"},
			Usage:       "report stream sizes and the bank layout",
			Destination: &verbose,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json)",
			Value:       "pretty",
			Destination: &logFormat,
		},
	}
}

// buildLogger constructs the injected log sink from the flags.
// Verbose mode forces debug level so progress shows up regardless of
// --log-level.
func buildLogger() logger.Logger {
	level := logger.ParseLevel(logLevel)
	if verbose {
		level = slog.LevelDebug
	}
	if logFormat == "json" {
		return logger.JSON(os.Stderr, level)
	}
	return logger.Pretty(os.Stderr, level)
}
