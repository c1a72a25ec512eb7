package chess

// Board is a position snapshot: piece placement plus the side to move.
// Squares holds coloured pieces (see MakeColouredPiece) or Empty.
type Board struct {
	// Squares[col][rank], both 0-based.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// The current move number.
	MoveNumber uint

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// Castling availability and en passant target, kept verbatim from FEN.
	Castling  string
	EnPassant string
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{
		ToMove:     White,
		MoveNumber: 1,
		Castling:   "-",
		EnPassant:  "-",
	}
	b.Clear()
	return b
}

// Clear empties every square.
func (b *Board) Clear() {
	for col := 0; col < BoardSize; col++ {
		for rank := 0; rank < BoardSize; rank++ {
			b.Squares[col][rank] = Empty
		}
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[col][0] = W(backRank[col])
		b.Squares[col][1] = W(Pawn)
		b.Squares[col][6] = B(Pawn)
		b.Squares[col][7] = B(backRank[col])
	}

	b.ToMove = White
	b.MoveNumber = 1
	b.HalfmoveClock = 0
	b.Castling = "KQkq"
	b.EnPassant = "-"
}

// Get returns the piece at the given coordinates (using char coords 'a'-'h', '1'-'8').
// Coordinates off the board yield Off.
func (b *Board) Get(col Col, rank Rank) Piece {
	c := ColIndex(col)
	r := RankIndex(rank)
	if c < 0 || r < 0 {
		return Off
	}
	return b.Squares[c][r]
}

// Set places a piece at the given coordinates. Off-board coordinates are ignored.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	c := ColIndex(col)
	r := RankIndex(rank)
	if c >= 0 && r >= 0 {
		b.Squares[c][r] = piece
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for col := 0; col < BoardSize; col++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.Squares[col][rank] != Empty {
				n++
			}
		}
	}
	return n
}
