// Package engine builds board snapshots from FEN and writes them back.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/superposition/board-chess-club/internal/chess"
	"github.com/superposition/board-chess-club/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// SAN piece characters for FEN strings (always English).
var sanPieceChars = map[chess.Piece]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// ColouredPieceToFENLetter returns the FEN letter for a coloured piece.
func ColouredPieceToFENLetter(colouredPiece chess.Piece) byte {
	letter, ok := sanPieceChars[chess.ExtractPiece(colouredPiece)]
	if !ok {
		return '?'
	}
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string. Only the piece
// placement field is required; missing trailing fields take their
// starting-position defaults.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if len(parts) > 6 {
		return nil, fmt.Errorf("too many FEN fields (%d): %w", len(parts), errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Every rank must describe exactly eight squares.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected 8 ranks, got %d: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, text := range ranks {
		rank := chess.Rank('8' - i)
		squares := 0

		for _, c := range text {
			switch {
			case c >= '1' && c <= '8':
				squares += int(c - '0')
				if squares > chess.BoardSize {
					return fmt.Errorf("rank %c overflows: %w", rank, errors.ErrInvalidFEN)
				}
			default:
				piece := ConvertFENCharToPiece(byte(c))
				if piece == chess.Empty {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if squares >= chess.BoardSize {
					return fmt.Errorf("rank %c overflows: %w", rank, errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(chess.ToCol(squares), rank, chess.MakeColouredPiece(colour, piece))
				squares++
			}
		}

		if squares != chess.BoardSize {
			return fmt.Errorf("rank %c describes %d squares: %w", rank, squares, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights checks the castling availability field.
// Chess960 file letters are accepted alongside KQkq.
func parseCastlingRights(board *chess.Board, parts []string) error {
	if len(parts) < 3 {
		return nil
	}
	field := parts[2]
	if field != "-" {
		for _, c := range field {
			if !strings.ContainsRune("KQkqABCDEFGHabcdefgh", c) {
				return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
			}
		}
	}
	board.Castling = field
	return nil
}

// parseEnPassant checks the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) error {
	if len(parts) < 4 {
		return nil
	}
	field := parts[3]
	if field != "-" {
		if len(field) != 2 || chess.ColIndex(chess.Col(field[0])) < 0 ||
			(field[1] != '3' && field[1] != '6') {
			return fmt.Errorf("invalid en passant square: %s: %w", field, errors.ErrInvalidFEN)
		}
	}
	board.EnPassant = field
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		board.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil || n == 0 {
			return fmt.Errorf("invalid move number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		board.MoveNumber = uint(n)
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	fmt.Fprintf(&sb, " %s %s %d %d", orDash(board.Castling), orDash(board.EnPassant),
		board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.Rank('8'); rank >= '1'; rank-- {
		emptyCount := 0
		for col := chess.Col('a'); col <= 'h'; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > '1' {
			sb.WriteByte('/')
		}
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
