// Package view projects a position into a renderable 8x8 grid of cells.
//
// The projection is a pure function of (position, orientation, mode): square
// colors come from coordinate parity, pieces from an icon table, and labels
// from the edge nearest the viewer. Nothing here depends on a UI toolkit.
package view

import (
	"fmt"
	"strings"

	"github.com/superposition/board-chess-club/internal/chess"
	"github.com/superposition/board-chess-club/internal/errors"
	"github.com/superposition/board-chess-club/internal/icons"
	"github.com/superposition/board-chess-club/internal/position"
)

// Orientation selects which side is drawn at the bottom.
type Orientation int

const (
	Normal  Orientation = iota // White at the bottom
	Flipped                    // Black at the bottom
)

// String returns the flag spelling of an orientation.
func (o Orientation) String() string {
	if o == Flipped {
		return "flipped"
	}
	return "normal"
}

// ParseOrientation accepts "normal"/"white" and "flipped"/"black".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "white":
		return Normal, nil
	case "flipped", "black":
		return Flipped, nil
	}
	return Normal, &errors.ConfigError{Err: errors.ErrInvalidConfig, Field: "orientation", Value: s}
}

// OrientationFor returns the orientation that puts side at the bottom.
func OrientationFor(side chess.Colour) Orientation {
	if side == chess.Black {
		return Flipped
	}
	return Normal
}

// Mode selects whether coordinate labels are drawn.
type Mode int

const (
	Plain Mode = iota
	Labeled
)

// String returns the flag spelling of a mode.
func (m Mode) String() string {
	if m == Labeled {
		return "labeled"
	}
	return "plain"
}

// ParseMode accepts "plain" and "labeled" (or "labels").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain":
		return Plain, nil
	case "labeled", "labelled", "labels":
		return Labeled, nil
	}
	return Plain, &errors.ConfigError{Err: errors.ErrInvalidConfig, Field: "mode", Value: s}
}

// Theme holds the two square colors as CSS color values.
type Theme struct {
	Dark  string // parity 0, a1 is dark
	Light string // parity 1
}

// DefaultTheme is the green board.
var DefaultTheme = Theme{Dark: "#4f7a3a", Light: "#dcebd2"}

// Validate checks that both colors are set and distinct.
func (t Theme) Validate() error {
	if strings.TrimSpace(t.Dark) == "" {
		return &errors.ConfigError{Err: errors.ErrInvalidConfig, Field: "dark-color"}
	}
	if strings.TrimSpace(t.Light) == "" {
		return &errors.ConfigError{Err: errors.ErrInvalidConfig, Field: "light-color"}
	}
	if strings.EqualFold(strings.TrimSpace(t.Dark), strings.TrimSpace(t.Light)) {
		return &errors.ConfigError{Err: errors.ErrInvalidConfig, Field: "light-color", Value: t.Light}
	}
	return nil
}

// Label is a coordinate label drawn over a cell.
type Label struct {
	Text  string
	Color string
}

// CellSpec is one fully derived square, ready for composition.
type CellSpec struct {
	Coordinate position.Coordinate
	Background string
	Piece      *icons.Icon // nil on an empty square
	RankLabel  *Label      // drawn top-left
	FileLabel  *Label      // drawn bottom-right
}

// Row is one displayed row, left to right.
type Row [chess.BoardSize]CellSpec

// Grid is the displayed board, top row first.
type Grid [chess.BoardSize]Row

// Find returns the display position of c, or ok=false if it is absent.
func (g *Grid) Find(c position.Coordinate) (row, col int, ok bool) {
	for r := range g {
		for k := range g[r] {
			if g[r][k].Coordinate == c {
				return r, k, true
			}
		}
	}
	return 0, 0, false
}

// Projector derives grids using a fixed theme and icon table.
type Projector struct {
	theme Theme
	icons *icons.Table
}

// NewProjector validates theme and table. Both are fixed for the
// projector's lifetime.
func NewProjector(theme Theme, table *icons.Table) (*Projector, error) {
	if err := theme.Validate(); err != nil {
		return nil, err
	}
	if table == nil {
		return nil, &errors.ConfigError{Err: errors.ErrIconTableIncomplete, Field: "icons"}
	}
	return &Projector{theme: theme, icons: table}, nil
}

// Theme returns the projector's colors.
func (p *Projector) Theme() Theme {
	return p.theme
}

// DisplayOrder returns the ranks top to bottom and the files left to right
// as seen under o.
func DisplayOrder(o Orientation) (ranks [chess.BoardSize]position.Rank, files [chess.BoardSize]position.File) {
	for i := 0; i < chess.BoardSize; i++ {
		if o == Flipped {
			ranks[i] = position.Rank(i)
			files[i] = position.File(chess.BoardSize - 1 - i)
		} else {
			ranks[i] = position.Rank(chess.BoardSize - 1 - i)
			files[i] = position.File(i)
		}
	}
	return ranks, files
}

// LabelEdge returns the file column carrying rank labels and the rank row
// carrying file labels: the left column and bottom row as displayed.
func LabelEdge(o Orientation) (position.File, position.Rank) {
	ranks, files := DisplayOrder(o)
	return files[0], ranks[chess.BoardSize-1]
}

// Background returns the color of c. It depends only on c, never on
// orientation.
func (p *Projector) Background(c position.Coordinate) string {
	if (int(c.File)+int(c.Rank))%2 == 0 {
		return p.theme.Dark
	}
	return p.theme.Light
}

// contrast returns the theme color opposite to c's background.
func (p *Projector) contrast(c position.Coordinate) string {
	if (int(c.File)+int(c.Rank))%2 == 0 {
		return p.theme.Light
	}
	return p.theme.Dark
}

// Project derives the grid for one render. The result always covers each
// square exactly once; a violation is a defect and panics.
func (p *Projector) Project(q position.Query, o Orientation, m Mode) Grid {
	ranks, files := DisplayOrder(o)
	edgeFile, edgeRank := LabelEdge(o)

	var g Grid
	for row, rank := range ranks {
		for col, file := range files {
			c := position.Coordinate{File: file, Rank: rank}
			cell := CellSpec{
				Coordinate: c,
				Background: p.Background(c),
			}

			if occ := q(c); occ.Present {
				icon := p.icons.Lookup(occ.Kind, occ.Side)
				cell.Piece = &icon
			}

			if m == Labeled {
				if file == edgeFile {
					cell.RankLabel = &Label{Text: fmt.Sprint(rank.Number()), Color: p.contrast(c)}
				}
				if rank == edgeRank {
					cell.FileLabel = &Label{Text: file.Letter(), Color: p.contrast(c)}
				}
			}

			g[row][col] = cell
		}
	}

	if err := Validate(g); err != nil {
		panic(fmt.Sprintf("view: projected grid is malformed: %v", err))
	}
	return g
}

// Validate checks that g holds every coordinate exactly once.
func Validate(g Grid) error {
	seen := make(map[position.Coordinate]bool, chess.BoardSize*chess.BoardSize)
	for r := range g {
		for k, cell := range g[r] {
			c := cell.Coordinate
			if !c.Valid() {
				return &errors.GridError{Err: errors.ErrMalformedGrid, Row: r, Column: k,
					Reason: fmt.Sprintf("coordinate (%d,%d) off the board", c.File, c.Rank)}
			}
			if seen[c] {
				return &errors.GridError{Err: errors.ErrMalformedGrid, Row: r, Column: k,
					Square: c.String(), Reason: "duplicate square"}
			}
			seen[c] = true
		}
	}
	return nil
}
