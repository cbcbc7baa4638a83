// Package config turns command-line arguments into game options. Defaults
// belong to the front end, so the engine only ever sees explicit values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/arturogbruno/lights-out-game/pkg/game/lightsout"
)

// Renderer names accepted by -renderer.
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// ExitError is returned for invalid arguments and carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options holds everything needed to start a session.
type Options struct {
	Rows             int
	Cols             int
	StartProbability float64
	Seed             int64 // 0 means seed from the clock
	Renderer         string
	LogLevel         string
	LogFile          string
}

// Defaults returns a 5x5 board with a 25% chance of each light starting on.
func Defaults() Options {
	return Options{
		Rows:             5,
		Cols:             5,
		StartProbability: 0.25,
		Renderer:         RendererTUI,
		LogLevel:         "info",
	}
}

// SlogLevel maps LogLevel to a slog.Level.
func (o Options) SlogLevel() slog.Level {
	switch o.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Validate checks the options, wrapping engine parameter errors.
func (o Options) Validate() error {
	if err := lightsout.Validate(o.Rows, o.Cols, o.StartProbability); err != nil {
		return err
	}
	switch o.Renderer {
	case RendererTUI, RendererEbiten:
	default:
		return fmt.Errorf("invalid renderer %q: must be %q or %q", o.Renderer, RendererTUI, RendererEbiten)
	}
	switch o.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", o.LogLevel)
	}
	return nil
}

// Parse processes command-line arguments. It returns the options, whether the
// program should exit cleanly (help was requested), or an *ExitError.
func Parse(args []string, output io.Writer) (Options, bool, error) {
	opts := Defaults()

	flagSet := flag.NewFlagSet("lightsout", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
Lights Out - turn every light off. Pressing a light toggles it and its
four neighbours.

Usage:
  lightsout [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	flagSet.IntVar(&opts.Rows, "rows", opts.Rows, "Number of board rows.")
	flagSet.IntVar(&opts.Cols, "cols", opts.Cols, "Number of board columns.")
	flagSet.Float64Var(&opts.StartProbability, "chance", opts.StartProbability, "Chance in [0, 1] that each light starts on.")
	flagSet.Int64Var(&opts.Seed, "seed", opts.Seed, "Random seed for the board. 0 seeds from the clock.")
	flagSet.StringVar(&opts.Renderer, "renderer", opts.Renderer, "Front end. Options: 'tui' or 'ebiten'.")
	flagSet.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.StringVar(&opts.LogFile, "log-file", opts.LogFile, "Write logs to this file.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Options{}, true, nil
		}
		return Options{}, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return Options{}, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))}
	}

	opts.Renderer = strings.ToLower(opts.Renderer)
	opts.LogLevel = strings.ToLower(opts.LogLevel)
	if err := opts.Validate(); err != nil {
		return Options{}, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("Options parsed.", "rows", opts.Rows, "cols", opts.Cols, "chance", opts.StartProbability, "seed", opts.Seed)
	return opts, false, nil
}
