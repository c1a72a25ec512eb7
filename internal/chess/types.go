// Package chess provides the read-only chess types the board view is built from.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// Colours lists both sides, White first.
var Colours = [2]Colour{White, Black}

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Piece represents a chess piece type, or a coloured piece when built
// with MakeColouredPiece.
type Piece int

const (
	Off   Piece = iota // Off the board
	Empty              // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// Kinds lists the six piece kinds in table order.
var Kinds = [6]Piece{Pawn, Knight, Bishop, Rook, Queen, King}

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Off", "Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// IsKind reports whether p is one of the six piece kinds.
func (p Piece) IsKind() bool {
	return p >= Pawn && p <= King
}

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// RankIndex converts a rank character to a 0-based index, or -1 when off the board.
func RankIndex(rank Rank) int {
	if rank >= FirstRank && rank <= LastRank {
		return int(rank - RankBase)
	}
	return -1
}

// ColIndex converts a column character to a 0-based index, or -1 when off the board.
func ColIndex(col Col) int {
	if col >= FirstCol && col <= LastCol {
		return int(col - ColBase)
	}
	return -1
}

// ToRank converts a 0-based index back to a rank character.
func ToRank(r int) Rank {
	return Rank(r + int(RankBase))
}

// ToCol converts a 0-based index back to a column character.
func ToCol(c int) Col {
	return Col(c + int(ColBase))
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}
