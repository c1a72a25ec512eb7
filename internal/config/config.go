// Package config provides runtime configuration for the board view.
//
// Values come from CHESSBOARD_* environment variables, may be overridden by
// command-line flags, and are checked and resolved once by Resolve.
package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/superposition/board-chess-club/internal/chess"
	"github.com/superposition/board-chess-club/internal/engine"
	"github.com/superposition/board-chess-club/internal/errors"
	"github.com/superposition/board-chess-club/internal/icons"
	"github.com/superposition/board-chess-club/internal/render"
	"github.com/superposition/board-chess-club/internal/view"
)

// Square size limits in pixels.
const (
	MinSquareSize = 16
	MaxSquareSize = 256
)

// Config holds all program configuration. Defaults come from NewConfig;
// variables that are unset leave them in place.
type Config struct {
	FEN         string `env:"CHESSBOARD_FEN"`
	Orientation string `env:"CHESSBOARD_ORIENTATION"`
	Mode        string `env:"CHESSBOARD_MODE"`
	SquareSize  int    `env:"CHESSBOARD_SQUARE_SIZE"`
	DarkColor   string `env:"CHESSBOARD_DARK_COLOR"`
	LightColor  string `env:"CHESSBOARD_LIGHT_COLOR"`
	IconBase    string `env:"CHESSBOARD_ICON_BASE"` // empty: Wikimedia Commons
	HTTPAddr    string `env:"CHESSBOARD_HTTP_ADDR"`
	Title       string `env:"CHESSBOARD_TITLE"`
}

// NewConfig creates a Config with default values, ignoring the environment.
func NewConfig() *Config {
	return &Config{
		FEN:         engine.InitialFEN,
		Orientation: view.Normal.String(),
		Mode:        view.Plain.String(),
		SquareSize:  render.DefaultSquareSize,
		DarkColor:   view.DefaultTheme.Dark,
		LightColor:  view.DefaultTheme.Light,
		HTTPAddr:    "localhost:8080",
		Title:       "Chessboard",
	}
}

// Load reads the process environment over the defaults.
func Load() (*Config, error) {
	cfg := NewConfig()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadFrom reads environ instead of the process environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := NewConfig()
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Settings is a resolved, validated configuration.
type Settings struct {
	Board       *chess.Board
	Orientation view.Orientation
	Mode        view.Mode
	Theme       view.Theme
	Icons       *icons.Table
	Render      render.Options
	HTTPAddr    string
	Title       string
}

// Projector builds the projector for these settings.
func (s *Settings) Projector() (*view.Projector, error) {
	return view.NewProjector(s.Theme, s.Icons)
}

var cssColor = regexp.MustCompile(`^(#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})|[a-zA-Z]+|(rgb|hsl)a?\([0-9., %]+\))$`)

// Resolve validates every setting and builds the values the rest of the
// program consumes. Errors are *errors.ConfigError.
func (c *Config) Resolve() (*Settings, error) {
	board, err := engine.NewBoardFromFEN(c.FEN)
	if err != nil {
		return nil, &errors.ConfigError{Err: err, Field: "fen", Value: c.FEN}
	}

	orientation, err := view.ParseOrientation(c.Orientation)
	if err != nil {
		return nil, err
	}
	mode, err := view.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}

	if c.SquareSize < MinSquareSize || c.SquareSize > MaxSquareSize {
		return nil, &errors.ConfigError{
			Err:   errors.Wrapf(errors.ErrInvalidConfig, "must be in [%d,%d]", MinSquareSize, MaxSquareSize),
			Field: "square-size",
			Value: fmt.Sprint(c.SquareSize),
		}
	}

	theme := view.Theme{Dark: strings.TrimSpace(c.DarkColor), Light: strings.TrimSpace(c.LightColor)}
	for field, color := range map[string]string{"dark-color": theme.Dark, "light-color": theme.Light} {
		if !cssColor.MatchString(color) {
			return nil, &errors.ConfigError{Err: errors.ErrInvalidConfig, Field: field, Value: color}
		}
	}
	if err := theme.Validate(); err != nil {
		return nil, err
	}

	table := icons.Wikimedia()
	if strings.TrimSpace(c.IconBase) != "" {
		if table, err = icons.FromBase(c.IconBase); err != nil {
			return nil, err
		}
	}

	if strings.TrimSpace(c.HTTPAddr) == "" {
		return nil, &errors.ConfigError{Err: errors.ErrInvalidConfig, Field: "http-addr"}
	}

	return &Settings{
		Board:       board,
		Orientation: orientation,
		Mode:        mode,
		Theme:       theme,
		Icons:       table,
		Render:      render.Options{SquareSize: c.SquareSize},
		HTTPAddr:    c.HTTPAddr,
		Title:       c.Title,
	}, nil
}
