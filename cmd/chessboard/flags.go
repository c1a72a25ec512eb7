// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/superposition/board-chess-club/internal/config"
	"github.com/superposition/board-chess-club/internal/view"
)

var (
	// Position and view
	fenFlag    = flag.String("fen", "", "Position to display as FEN (default: starting position)")
	orientFlag = flag.String("orientation", "", "Side at the bottom: normal|white or flipped|black")
	flipBoard  = flag.Bool("flip", false, "Show the board from Black's side (same as -orientation flipped)")
	showLabels = flag.Bool("labels", false, "Draw rank and file labels on the near edges")
	squareSize = flag.Int("size", 0, "Square edge in pixels (default 64)")
	darkColor  = flag.String("dark", "", "Color of dark squares (CSS)")
	lightColor = flag.String("light", "", "Color of light squares (CSS)")
	iconBase   = flag.String("icons", "", "Base URL or path of the piece images (default: Wikimedia Commons)")
	pageTitle  = flag.String("title", "", "Page title")

	// Output
	outputFile = flag.String("o", "", "Write the page to this file (default: stdout)")
	serve      = flag.Bool("serve", false, "Serve the page over HTTP instead of writing it")
	httpAddr   = flag.String("addr", "", "HTTP listen address for -serve")
	verbose    = flag.Bool("v", false, "Verbose (debug) logging")

	// Program
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags overrides cfg with every flag given a non-default value.
func applyFlags(cfg *config.Config) {
	applyViewFlags(cfg)
	applyThemeFlags(cfg)

	if *httpAddr != "" {
		cfg.HTTPAddr = *httpAddr
	}
	if *pageTitle != "" {
		cfg.Title = *pageTitle
	}
}

func applyViewFlags(cfg *config.Config) {
	if *fenFlag != "" {
		cfg.FEN = *fenFlag
	}
	if *orientFlag != "" {
		cfg.Orientation = *orientFlag
	}
	if *flipBoard {
		cfg.Orientation = view.Flipped.String()
	}
	if *showLabels {
		cfg.Mode = view.Labeled.String()
	}
	if *squareSize != 0 {
		cfg.SquareSize = *squareSize
	}
}

func applyThemeFlags(cfg *config.Config) {
	if *darkColor != "" {
		cfg.DarkColor = *darkColor
	}
	if *lightColor != "" {
		cfg.LightColor = *lightColor
	}
	if *iconBase != "" {
		cfg.IconBase = *iconBase
	}
}
