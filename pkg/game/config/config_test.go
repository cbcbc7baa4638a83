package config

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arturogbruno/lights-out-game/pkg/game/lightsout"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	opts, shouldExit, err := Parse(nil, &bytes.Buffer{})

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, Defaults(), opts)
	require.Equal(t, 5, opts.Rows)
	require.Equal(t, 5, opts.Cols)
	require.InDelta(t, 0.25, opts.StartProbability, 1e-9)
}

func TestParse_AllFlags(t *testing.T) {
	t.Parallel()

	args := []string{"-rows", "3", "-cols", "7", "-chance", "0.6", "-seed", "42", "-renderer", "EBITEN", "-log-level", "debug", "-log-file", "game.log"}
	opts, shouldExit, err := Parse(args, &bytes.Buffer{})

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, Options{
		Rows:             3,
		Cols:             7,
		StartProbability: 0.6,
		Seed:             42,
		Renderer:         RendererEbiten,
		LogLevel:         "debug",
		LogFile:          "game.log",
	}, opts)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Contains(t, out.String(), "Usage:")
	require.Contains(t, out.String(), "-chance")
}

func TestParse_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"zero rows", []string{"-rows", "0"}, "invalid dimension"},
		{"negative cols", []string{"-cols", "-3"}, "invalid dimension"},
		{"chance too high", []string{"-chance", "1.5"}, "invalid start probability"},
		{"chance negative", []string{"-chance", "-0.1"}, "invalid start probability"},
		{"unknown renderer", []string{"-renderer", "sdl"}, "invalid renderer"},
		{"unknown level", []string{"-log-level", "loud"}, "invalid log-level"},
		{"unknown flag", []string{"-nope"}, "flag provided but not defined"},
		{"positional", []string{"extra"}, "unexpected arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, shouldExit, err := Parse(tt.args, &bytes.Buffer{})

			require.Error(t, err)
			require.False(t, shouldExit)
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr), "error should be an *ExitError")
			require.Equal(t, 2, exitErr.Code)
			require.Contains(t, exitErr.Message, tt.message)
		})
	}
}

func TestValidate_WrapsEngineErrors(t *testing.T) {
	t.Parallel()

	opts := Defaults()
	opts.Rows = 0
	require.ErrorIs(t, opts.Validate(), lightsout.ErrInvalidDimension)

	opts = Defaults()
	opts.StartProbability = 2
	require.ErrorIs(t, opts.Validate(), lightsout.ErrInvalidProbability)
}

func TestOptions_SlogLevel(t *testing.T) {
	t.Parallel()

	levels := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for name, want := range levels {
		opts := Options{LogLevel: name}
		require.Equal(t, want, opts.SlogLevel(), "level %q", name)
	}
}
