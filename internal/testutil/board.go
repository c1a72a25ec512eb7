package testutil

import (
	"testing"

	"github.com/superposition/board-chess-club/internal/chess"
	"github.com/superposition/board-chess-club/internal/engine"
)

// Sample positions used across the view tests.
const (
	// ScandinavianFEN is 1.e4 d5, a position with asymmetric pawns on both sides.
	ScandinavianFEN = "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2"

	// LoneKingsFEN has only the two kings on the board.
	LoneKingsFEN = "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
)

// MustBoard parses fen or fails the test immediately.
func MustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return board
}
