// Package icons maps every (piece kind, side) pair to an image reference.
//
// A Table is total by construction: NewTable refuses to build one with a
// missing pair, so a lookup never fails for a rarely-seen piece.
package icons

import (
	"fmt"
	"path"
	"strings"

	"github.com/superposition/board-chess-club/internal/chess"
	"github.com/superposition/board-chess-club/internal/errors"
)

// DefaultAlt is the accessible description attached to every piece image.
const DefaultAlt = "piece image"

// WikimediaBase is where the default piece set is hosted.
const WikimediaBase = "https://upload.wikimedia.org/wikipedia/commons"

// Icon is an opaque image reference plus its accessible description.
type Icon struct {
	Src string
	Alt string
}

// Key names one of the twelve (kind, side) pairs.
type Key struct {
	Kind chess.Piece
	Side chess.Colour
}

// String returns e.g. "White Knight".
func (k Key) String() string {
	return k.Side.String() + " " + k.Kind.String()
}

// Keys returns all twelve pairs, White first, in kind order.
func Keys() []Key {
	keys := make([]Key, 0, len(chess.Colours)*len(chess.Kinds))
	for _, side := range chess.Colours {
		for _, kind := range chess.Kinds {
			keys = append(keys, Key{Kind: kind, Side: side})
		}
	}
	return keys
}

// Table is a fixed lookup indexed by side and kind.
type Table struct {
	entries [2][len(chess.Kinds)]Icon
}

// NewTable builds a table from entries. Every pair returned by Keys must be
// present with a non-empty Src; an Alt left empty becomes DefaultAlt.
func NewTable(entries map[Key]Icon) (*Table, error) {
	t := &Table{}
	var missing []string
	for _, k := range Keys() {
		icon, ok := entries[k]
		if !ok || strings.TrimSpace(icon.Src) == "" {
			missing = append(missing, k.String())
			continue
		}
		if icon.Alt == "" {
			icon.Alt = DefaultAlt
		}
		t.entries[k.Side][k.Kind-chess.Pawn] = icon
	}
	if len(missing) > 0 {
		return nil, &errors.ConfigError{
			Err:   errors.ErrIconTableIncomplete,
			Field: "icons",
			Value: strings.Join(missing, ", "),
		}
	}
	for k := range entries {
		if !k.Kind.IsKind() || (k.Side != chess.White && k.Side != chess.Black) {
			return nil, &errors.ConfigError{
				Err:   errors.ErrInvalidConfig,
				Field: "icons",
				Value: fmt.Sprintf("%d/%d", k.Kind, k.Side),
			}
		}
	}
	return t, nil
}

// Lookup returns the icon for kind and side. Passing something that is not
// one of the six kinds is a programming error and panics.
func (t *Table) Lookup(kind chess.Piece, side chess.Colour) Icon {
	if !kind.IsKind() || (side != chess.White && side != chess.Black) {
		panic(fmt.Sprintf("icons: no entry for %v %v", side, kind))
	}
	return t.entries[side][kind-chess.Pawn]
}

// wikimediaPaths are the commons paths of the standard 60px piece set.
var wikimediaPaths = map[Key]string{
	{chess.Pawn, chess.Black}:   "c/cd/Chess_pdt60.png",
	{chess.Pawn, chess.White}:   "0/04/Chess_plt60.png",
	{chess.Knight, chess.Black}: "f/f1/Chess_ndt60.png",
	{chess.Knight, chess.White}: "2/28/Chess_nlt60.png",
	{chess.Bishop, chess.Black}: "8/81/Chess_bdt60.png",
	{chess.Bishop, chess.White}: "9/9b/Chess_blt60.png",
	{chess.Rook, chess.Black}:   "a/a0/Chess_rdt60.png",
	{chess.Rook, chess.White}:   "5/5c/Chess_rlt60.png",
	{chess.Queen, chess.Black}:  "a/af/Chess_qdt60.png",
	{chess.Queen, chess.White}:  "4/49/Chess_qlt60.png",
	{chess.King, chess.Black}:   "e/e3/Chess_kdt60.png",
	{chess.King, chess.White}:   "3/3b/Chess_klt60.png",
}

var wikimedia = mustTable(NewTable(wikimediaEntries(func(p string) string {
	return WikimediaBase + "/" + p
})))

// Wikimedia returns the default piece set served from Wikimedia Commons.
func Wikimedia() *Table {
	return wikimedia
}

// FromBase returns the default piece set with every image looked up under
// base by file name (e.g. base + "/Chess_klt60.png"), for a local mirror.
func FromBase(base string) (*Table, error) {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return nil, &errors.ConfigError{Err: errors.ErrInvalidConfig, Field: "icon-base"}
	}
	return NewTable(wikimediaEntries(func(p string) string {
		return base + "/" + path.Base(p)
	}))
}

func wikimediaEntries(src func(string) string) map[Key]Icon {
	entries := make(map[Key]Icon, len(wikimediaPaths))
	for k, p := range wikimediaPaths {
		entries[k] = Icon{Src: src(p), Alt: DefaultAlt}
	}
	return entries
}

func mustTable(t *Table, err error) *Table {
	if err != nil {
		panic(fmt.Sprintf("icons: %v", err))
	}
	return t
}
