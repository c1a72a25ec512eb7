// Package render composes a projected grid into a visual tree through an
// abstract UI toolkit.
package render

import (
	"fmt"

	"github.com/superposition/board-chess-club/internal/chess"
	"github.com/superposition/board-chess-club/internal/view"
)

// DefaultSquareSize is the edge of one square in pixels.
const DefaultSquareSize = 64

// Anchor places an overlay inside a cell.
type Anchor int

const (
	Center Anchor = iota
	TopLeft
	BottomRight
)

// String returns the anchor name.
func (a Anchor) String() string {
	switch a {
	case TopLeft:
		return "top-left"
	case BottomRight:
		return "bottom-right"
	}
	return "center"
}

// Toolkit is the composition surface a renderer needs. E is the toolkit's
// element type.
type Toolkit[E any] interface {
	// Box is a square container of the given edge and background color.
	Box(size int, color string) E
	// Layer stacks layers over base, in order.
	Layer(base E, layers ...E) E
	// Row sequences items left to right.
	Row(items ...E) E
	// Column sequences items top to bottom.
	Column(items ...E) E
	// Image is a picture centered in its container.
	Image(src, alt string) E
	// Text is a label at anchor in the given font color.
	Text(text string, anchor Anchor, color string) E
	// Frame fixes the width of child and centers it.
	Frame(width int, child E) E
}

// Options tunes the composed tree.
type Options struct {
	SquareSize int // 0 means DefaultSquareSize
}

func (o Options) squareSize() int {
	if o.SquareSize <= 0 {
		return DefaultSquareSize
	}
	return o.SquareSize
}

// BoardWidth returns the total board width for o.
func (o Options) BoardWidth() int {
	return o.squareSize() * chess.BoardSize
}

// Render composes g with tk. A malformed grid is a defect and panics.
func Render[E any](tk Toolkit[E], g view.Grid, opts Options) E {
	if err := view.Validate(g); err != nil {
		panic(fmt.Sprintf("render: %v", err))
	}

	size := opts.squareSize()
	rows := make([]E, 0, len(g))
	for _, row := range g {
		cells := make([]E, 0, len(row))
		for _, cell := range row {
			cells = append(cells, Cell(tk, cell, size))
		}
		rows = append(rows, tk.Row(cells...))
	}
	return tk.Frame(opts.BoardWidth(), tk.Column(rows...))
}

// Cell composes one square: the colored box, then the piece image, then
// the rank and file labels.
func Cell[E any](tk Toolkit[E], cell view.CellSpec, size int) E {
	base := tk.Box(size, cell.Background)

	var layers []E
	if cell.Piece != nil {
		layers = append(layers, tk.Image(cell.Piece.Src, cell.Piece.Alt))
	}
	if l := cell.RankLabel; l != nil {
		layers = append(layers, tk.Text(l.Text, TopLeft, l.Color))
	}
	if l := cell.FileLabel; l != nil {
		layers = append(layers, tk.Text(l.Text, BottomRight, l.Color))
	}
	if len(layers) == 0 {
		return base
	}
	return tk.Layer(base, layers...)
}
