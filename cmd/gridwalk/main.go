// Command gridwalk runs one of the grid puzzles against an input file.
//
// Usage:
//
//	gridwalk [-config file] [-day N] [-workers N] [-log-level L] [-log-format F] [input]
//
// Flags override values from the config file. Day 0 selects the latest
// registered puzzle. The input path defaults to ./input.txt.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/antenna"
	"github.com/katalvlaran/gridwalk/patrol"
	"github.com/katalvlaran/gridwalk/runner"
	"github.com/katalvlaran/gridwalk/trailhead"
	"github.com/katalvlaran/gridwalk/wordsearch"
)

func registry() runner.Registry {
	r := runner.Registry{}
	r.Register(4, func(runner.Config) runner.Runnable { return runner.Bind(wordsearch.Solver{}) })
	r.Register(6, func(cfg runner.Config) runner.Runnable {
		return runner.Bind(patrol.Solver{Workers: cfg.Workers})
	})
	r.Register(8, func(runner.Config) runner.Runnable { return runner.Bind(antenna.Solver{}) })
	r.Register(10, func(runner.Config) runner.Runnable { return runner.Bind(trailhead.Solver{}) })
	return r
}

// parseConfig builds the Config from an optional file and the command-line flags.
func parseConfig(args []string) (runner.Config, error) {
	fs := flag.NewFlagSet("gridwalk", flag.ContinueOnError)
	var (
		path      = fs.String("config", "", "YAML config file")
		day       = fs.Int("day", -1, "puzzle day (0 = latest)")
		workers   = fs.Int("workers", 0, "parallel trials for puzzles that support them")
		logLevel  = fs.String("log-level", "", "log level (trace, debug, info, warn, error)")
		logFormat = fs.String("log-format", "", "log format (text or json)")
	)
	if err := fs.Parse(args); err != nil {
		return runner.Config{}, err
	}

	cfg := runner.DefaultConfig()
	if *path != "" {
		var err error
		if cfg, err = runner.LoadConfig(*path); err != nil {
			return cfg, err
		}
	}
	if *day >= 0 {
		cfg.Day = *day
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFormat != "" {
		cfg.LogFormat = *logFormat
	}
	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Input = fs.Arg(0)
	default:
		return cfg, fmt.Errorf("%w: expected at most one input path, got %d", runner.ErrInvalidConfig, fs.NArg())
	}
	return cfg, cfg.Validate()
}

// run executes the configured puzzle, writing answers to out.
func run(cfg runner.Config, reg runner.Registry, out io.Writer, log logrus.FieldLogger) error {
	day := cfg.Day
	if day == 0 {
		day = reg.Latest()
	}
	puzzle, err := reg.Lookup(day, cfg)
	if err != nil {
		return err
	}
	input, err := runner.ReadInput(cfg.Input)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"day": day, "path": cfg.Input}).Info("read input")
	return puzzle(input, out, log.WithField("day", day))
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logrus.WithError(err).Error("invalid configuration")
		os.Exit(1)
	}
	log := cfg.NewLogger()
	if err := run(cfg, registry(), os.Stdout, log); err != nil {
		log.WithError(err).Error("gridwalk failed")
		os.Exit(1)
	}
}
