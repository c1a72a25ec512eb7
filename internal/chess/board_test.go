package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.ToMove != White {
			t.Errorf("ToMove = %v; want White", b.ToMove)
		}
		if b.MoveNumber != 1 {
			t.Errorf("MoveNumber = %d; want 1", b.MoveNumber)
		}
		if b.Castling != "-" || b.EnPassant != "-" {
			t.Errorf("Castling, EnPassant = %q, %q; want \"-\", \"-\"", b.Castling, b.EnPassant)
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for col := Col('a'); col <= 'h'; col++ {
			for rank := Rank('1'); rank <= '8'; rank++ {
				if got := b.Get(col, rank); got != Empty {
					t.Errorf("Get(%c, %c) = %v; want Empty", col, rank, got)
				}
			}
		}
		if n := b.Count(); n != 0 {
			t.Errorf("Count() = %d; want 0", n)
		}
	})

	t.Run("off board squares are Off", func(t *testing.T) {
		if b.Get('i', '1') != Off {
			t.Error("Get('i', '1') is not Off")
		}
		if b.Get('a', '9') != Off {
			t.Error("Get('a', '9') is not Off")
		}
		if b.Get('a', '0') != Off {
			t.Error("Get('a', '0') is not Off")
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		name  string
		col   Col
		rank  Rank
		piece Piece
	}{
		{"white rook a1", 'a', '1', W(Rook)},
		{"white knight b1", 'b', '1', W(Knight)},
		{"white bishop c1", 'c', '1', W(Bishop)},
		{"white queen d1", 'd', '1', W(Queen)},
		{"white king e1", 'e', '1', W(King)},
		{"white rook h1", 'h', '1', W(Rook)},
		{"white pawn e2", 'e', '2', W(Pawn)},
		{"black pawn d7", 'd', '7', B(Pawn)},
		{"black rook a8", 'a', '8', B(Rook)},
		{"black queen d8", 'd', '8', B(Queen)},
		{"black king e8", 'e', '8', B(King)},
		{"empty e4", 'e', '4', Empty},
		{"empty d5", 'd', '5', Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Get(tt.col, tt.rank); got != tt.piece {
				t.Errorf("Get(%c, %c) = %v; want %v", tt.col, tt.rank, got, tt.piece)
			}
		})
	}

	if n := b.Count(); n != 32 {
		t.Errorf("Count() = %d; want 32", n)
	}
}

func TestBoardGetSet(t *testing.T) {
	b := NewBoard()

	b.Set('e', '4', W(Knight))
	if got := b.Get('e', '4'); got != W(Knight) {
		t.Errorf("Get('e', '4') = %v; want white knight", got)
	}

	// Off-board writes are ignored.
	b.Set('z', '4', W(Queen))
	if n := b.Count(); n != 1 {
		t.Errorf("Count() after off-board Set = %d; want 1", n)
	}
}

func TestBoardCopy(t *testing.T) {
	original := NewBoard()
	original.SetupInitialPosition()
	original.ToMove = Black

	copied := original.Copy()
	copied.Set('e', '4', W(Pawn))
	copied.ToMove = White

	if got := original.Get('e', '4'); got != Empty {
		t.Errorf("original Get('e', '4') = %v after copy modification; want Empty", got)
	}
	if original.ToMove != Black {
		t.Errorf("original ToMove = %v after copy modification; want Black", original.ToMove)
	}
}

func TestColouredPieces(t *testing.T) {
	for _, colour := range Colours {
		for _, kind := range Kinds {
			p := MakeColouredPiece(colour, kind)
			if got := ExtractColour(p); got != colour {
				t.Errorf("ExtractColour(%v %v) = %v", colour, kind, got)
			}
			if got := ExtractPiece(p); got != kind {
				t.Errorf("ExtractPiece(%v %v) = %v", colour, kind, got)
			}
		}
	}
}

func TestPieceIsKind(t *testing.T) {
	for _, kind := range Kinds {
		if !kind.IsKind() {
			t.Errorf("%v.IsKind() = false; want true", kind)
		}
	}
	for _, p := range []Piece{Off, Empty, NumPieceValues} {
		if p.IsKind() {
			t.Errorf("%v.IsKind() = true; want false", p)
		}
	}
}
