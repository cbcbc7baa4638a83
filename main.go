package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/arturogbruno/lights-out-game/pkg/game/config"
	"github.com/arturogbruno/lights-out-game/pkg/game/lightsout"
	"github.com/arturogbruno/lights-out-game/pkg/game/locale"
	"github.com/arturogbruno/lights-out-game/pkg/game/renderer"
	ebitenrenderer "github.com/arturogbruno/lights-out-game/pkg/game/renderer/ebiten"
	"github.com/arturogbruno/lights-out-game/pkg/game/renderer/tui"
	"github.com/arturogbruno/lights-out-game/pkg/game/state"
)

// newRenderer picks the front end named by -renderer.
var newRenderer = func(name string) renderer.Renderer {
	if name == config.RendererEbiten {
		return ebitenrenderer.New()
	}
	return tui.New()
}

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *config.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses arguments, builds the session and hands it to the renderer.
func run(out io.Writer, args []string) error {
	opts, shouldExit, err := config.Parse(args, out)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger, closeLog, err := setupLogger(opts)
	if err != nil {
		return err
	}
	defer closeLog()
	prevLogger := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(prevLogger)

	locale.Init()

	src := lightsout.NewTimeSource()
	if opts.Seed != 0 {
		src = lightsout.NewSource(opts.Seed)
	}

	g, err := state.NewGame(opts, src, logger)
	if err != nil {
		return err
	}

	r := newRenderer(opts.Renderer)
	if err := r.Init(); err != nil {
		return fmt.Errorf("init %s renderer: %w", opts.Renderer, err)
	}
	logger.Info("starting", "renderer", opts.Renderer, "rows", opts.Rows, "cols", opts.Cols, "seed", opts.Seed)

	if err := r.Run(g); err != nil {
		return err
	}

	fmt.Fprintln(out, locale.T("GOODBYE"))
	return nil
}

// setupLogger builds the session logger. Logs go to -log-file when given.
// Otherwise the terminal renderer discards them, since the screen is redrawn
// on every key, and the window renderer writes them to stderr.
func setupLogger(opts config.Options) (*slog.Logger, func(), error) {
	handlerOpts := &slog.HandlerOptions{Level: opts.SlogLevel()}

	switch {
	case opts.LogFile != "":
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return slog.New(slog.NewTextHandler(f, handlerOpts)), func() { f.Close() }, nil
	case opts.Renderer == config.RendererTUI:
		return slog.New(slog.NewTextHandler(io.Discard, handlerOpts)), func() {}, nil
	default:
		return slog.New(slog.NewTextHandler(os.Stderr, handlerOpts)), func() {}, nil
	}
}
