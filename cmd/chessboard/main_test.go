package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/superposition/board-chess-club/internal/config"
	"github.com/superposition/board-chess-club/internal/testutil"
	"github.com/superposition/board-chess-club/internal/view"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlagsDefaultsLeaveConfig(t *testing.T) {
	cfg := config.NewConfig()
	applyFlags(cfg)
	testutil.AssertEqual(t, cfg, config.NewConfig())
}

func TestApplyViewFlags(t *testing.T) {
	t.Run("flip and labels", func(t *testing.T) {
		defer saveRestoreBool(flipBoard, true)()
		defer saveRestoreBool(showLabels, true)()
		cfg := config.NewConfig()
		applyFlags(cfg)
		testutil.AssertEqual(t, cfg.Orientation, view.Flipped.String())
		testutil.AssertEqual(t, cfg.Mode, view.Labeled.String())
	})

	t.Run("flip wins over orientation", func(t *testing.T) {
		defer saveRestoreString(orientFlag, "white")()
		defer saveRestoreBool(flipBoard, true)()
		cfg := config.NewConfig()
		applyFlags(cfg)
		testutil.AssertEqual(t, cfg.Orientation, view.Flipped.String())
	})

	t.Run("fen and size", func(t *testing.T) {
		defer saveRestoreString(fenFlag, testutil.LoneKingsFEN)()
		defer saveRestoreInt(squareSize, 40)()
		cfg := config.NewConfig()
		applyFlags(cfg)
		testutil.AssertEqual(t, cfg.FEN, testutil.LoneKingsFEN)
		testutil.AssertEqual(t, cfg.SquareSize, 40)
	})
}

func TestApplyThemeFlags(t *testing.T) {
	defer saveRestoreString(darkColor, "#000")()
	defer saveRestoreString(lightColor, "#fff")()
	defer saveRestoreString(iconBase, "/pieces")()
	defer saveRestoreString(pageTitle, "Puzzle")()
	defer saveRestoreString(httpAddr, ":9000")()

	cfg := config.NewConfig()
	applyFlags(cfg)
	testutil.AssertEqual(t, cfg.DarkColor, "#000")
	testutil.AssertEqual(t, cfg.LightColor, "#fff")
	testutil.AssertEqual(t, cfg.IconBase, "/pieces")
	testutil.AssertEqual(t, cfg.Title, "Puzzle")
	testutil.AssertEqual(t, cfg.HTTPAddr, ":9000")
}

func TestWritePage(t *testing.T) {
	settings, err := config.NewConfigBuilder().
		WithFEN(testutil.ScandinavianFEN).
		WithMode(view.Labeled).
		Build().
		Resolve()
	testutil.AssertNoError(t, err)

	var buf bytes.Buffer
	testutil.AssertNoError(t, writePage(&buf, settings))

	page := buf.String()
	testutil.AssertEqual(t, strings.Count(page, `class="square"`), 64)
	testutil.AssertEqual(t, strings.Count(page, "<img "), 32)
	testutil.AssertEqual(t, strings.Count(page, `class="label`), 16)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, false).Debug("hidden")
	testutil.AssertEqual(t, buf.String(), "")

	newLogger(&buf, true).Debug("shown", "pieces", 32)
	testutil.AssertContains(t, buf.String(), "msg=shown pieces=32")
}
