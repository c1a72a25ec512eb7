// chessboard renders a chess position as an HTML board, either to a file or
// served to a browser.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/superposition/board-chess-club/internal/config"
	"github.com/superposition/board-chess-club/internal/position"
	"github.com/superposition/board-chess-club/internal/render/htmltk"
	"github.com/superposition/board-chess-club/internal/server"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessboard version %s\n", programVersion)
		os.Exit(0)
	}

	logger := newLogger(os.Stderr, *verbose)

	cfg, err := config.Load()
	if err != nil {
		exitf("Error reading environment: %v", err)
	}
	applyFlags(cfg)

	settings, err := cfg.Resolve()
	if err != nil {
		exitf("Invalid configuration: %v", err)
	}

	if *serve {
		runServer(settings, logger)
		return
	}

	out, closeOut := setupOutputFile()
	defer closeOut()

	if err := writePage(out, settings); err != nil {
		exitf("Error writing page: %v", err)
	}
	logger.Debug("wrote board page",
		"orientation", settings.Orientation.String(),
		"mode", settings.Mode.String(),
		"pieces", settings.Board.Count())
}

// newLogger returns a text logger at info level, or debug when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// setupOutputFile opens the -o file, or returns stdout.
func setupOutputFile() (io.Writer, func()) {
	if *outputFile == "" {
		return os.Stdout, func() {}
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		exitf("Error creating output file %s: %v", *outputFile, err)
	}
	return file, func() {
		if err := file.Close(); err != nil {
			exitf("Error closing output file %s: %v", *outputFile, err)
		}
	}
}

// writePage projects the configured position once and writes the page.
func writePage(w io.Writer, settings *config.Settings) error {
	projector, err := settings.Projector()
	if err != nil {
		return err
	}
	grid := projector.Project(position.For(settings.Board), settings.Orientation, settings.Mode)
	return htmltk.Write(w, htmltk.BoardPage(settings.Title, grid, settings.Render))
}

func runServer(settings *config.Settings, logger *slog.Logger) {
	srv, err := server.New(settings, logger)
	if err != nil {
		exitf("Error starting server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Error("server failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func exitf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessboard [options]\n\n")
	fmt.Fprintf(os.Stderr, "Render a chess position as an HTML board.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEnvironment (overridden by flags):\n")
	fmt.Fprintf(os.Stderr, "  CHESSBOARD_FEN, CHESSBOARD_ORIENTATION, CHESSBOARD_MODE,\n")
	fmt.Fprintf(os.Stderr, "  CHESSBOARD_SQUARE_SIZE, CHESSBOARD_DARK_COLOR, CHESSBOARD_LIGHT_COLOR,\n")
	fmt.Fprintf(os.Stderr, "  CHESSBOARD_ICON_BASE, CHESSBOARD_HTTP_ADDR, CHESSBOARD_TITLE\n")
	fmt.Fprintf(os.Stderr, "\nQuery parameters with -serve:\n")
	fmt.Fprintf(os.Stderr, "  fen=<FEN>  flip=true|false  labels=true|false  orientation=normal|flipped\n")
}
