// Package position adapts a board snapshot into a square-by-square occupant query.
package position

import "github.com/superposition/board-chess-club/internal/chess"

// File is a 0-based file ordinal, 0 = a.
type File int

// Rank is a 0-based rank ordinal, 0 = rank 1.
type Rank int

// Letter returns the file letter 'a'..'h'.
func (f File) Letter() string {
	return string(rune(chess.ToCol(int(f))))
}

// Number returns the rank number 1..8.
func (r Rank) Number() int {
	return int(r) + 1
}

// Coordinate identifies one of the 64 squares.
type Coordinate struct {
	File File
	Rank Rank
}

// Valid reports whether both ordinals are in [0,7].
func (c Coordinate) Valid() bool {
	return c.File >= 0 && c.File < chess.BoardSize && c.Rank >= 0 && c.Rank < chess.BoardSize
}

// String returns the algebraic name of the square, e.g. "e4".
func (c Coordinate) String() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{byte(chess.ToCol(int(c.File))), byte(chess.ToRank(int(c.Rank)))})
}

// All returns the 64 coordinates, a1 first, file-major within each rank.
func All() []Coordinate {
	coords := make([]Coordinate, 0, chess.BoardSize*chess.BoardSize)
	for r := Rank(0); r < chess.BoardSize; r++ {
		for f := File(0); f < chess.BoardSize; f++ {
			coords = append(coords, Coordinate{File: f, Rank: r})
		}
	}
	return coords
}

// Source is a read-only position snapshot. *chess.Board satisfies it.
type Source interface {
	Get(col chess.Col, rank chess.Rank) chess.Piece
}

// Occupant is what stands on a square. The zero value is an empty square.
type Occupant struct {
	Kind    chess.Piece
	Side    chess.Colour
	Present bool
}

// OccupantAt reads one square of src. It never fails: off-board
// coordinates and anything that is not a coloured piece read as empty.
func OccupantAt(src Source, c Coordinate) Occupant {
	if src == nil || !c.Valid() {
		return Occupant{}
	}
	p := src.Get(chess.ToCol(int(c.File)), chess.ToRank(int(c.Rank)))
	if p == chess.Empty || p == chess.Off {
		return Occupant{}
	}
	kind := chess.ExtractPiece(p)
	if !kind.IsKind() {
		return Occupant{}
	}
	return Occupant{Kind: kind, Side: chess.ExtractColour(p), Present: true}
}

// Query answers OccupantAt for one bound snapshot.
type Query func(Coordinate) Occupant

// For binds src. Every call reads src afresh; nothing is cached.
func For(src Source) Query {
	return func(c Coordinate) Occupant {
		return OccupantAt(src, c)
	}
}
