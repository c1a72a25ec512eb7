package icons

import (
	"errors"
	"strings"
	"testing"

	"github.com/superposition/board-chess-club/internal/chess"
	boarderrors "github.com/superposition/board-chess-club/internal/errors"
	"github.com/superposition/board-chess-club/internal/testutil"
)

func TestKeysCoverEveryPair(t *testing.T) {
	keys := Keys()
	testutil.AssertEqual(t, len(keys), 12)

	seen := make(map[Key]bool)
	for _, k := range keys {
		testutil.AssertTrue(t, k.Kind.IsKind(), "kind of %v", k)
		testutil.AssertFalse(t, seen[k], "duplicate key %v", k)
		seen[k] = true
	}
}

func TestWikimediaIsTotal(t *testing.T) {
	table := Wikimedia()
	srcs := make(map[string]Key)

	for _, k := range Keys() {
		icon := table.Lookup(k.Kind, k.Side)
		testutil.AssertTrue(t, strings.HasPrefix(icon.Src, WikimediaBase+"/"), "src of %v", k)
		testutil.AssertEqual(t, icon.Alt, DefaultAlt, "alt of %v", k)
		if other, ok := srcs[icon.Src]; ok {
			t.Errorf("%v and %v share %s", k, other, icon.Src)
		}
		srcs[icon.Src] = k
	}
}

func TestWikimediaKnownEntries(t *testing.T) {
	tests := []struct {
		kind chess.Piece
		side chess.Colour
		want string
	}{
		{chess.King, chess.White, WikimediaBase + "/3/3b/Chess_klt60.png"},
		{chess.King, chess.Black, WikimediaBase + "/e/e3/Chess_kdt60.png"},
		{chess.Pawn, chess.Black, WikimediaBase + "/c/cd/Chess_pdt60.png"},
		{chess.Knight, chess.White, WikimediaBase + "/2/28/Chess_nlt60.png"},
	}

	for _, tt := range tests {
		t.Run(Key{tt.kind, tt.side}.String(), func(t *testing.T) {
			testutil.AssertEqual(t, Wikimedia().Lookup(tt.kind, tt.side).Src, tt.want)
		})
	}
}

func TestNewTableRejectsMissingEntry(t *testing.T) {
	entries := wikimediaEntries(func(p string) string { return p })
	delete(entries, Key{chess.Queen, chess.Black})

	table, err := NewTable(entries)
	testutil.AssertTrue(t, table == nil, "table should be nil")
	testutil.AssertTrue(t, errors.Is(err, boarderrors.ErrIconTableIncomplete), "errors.Is(%v, ErrIconTableIncomplete)", err)

	var cfgErr *boarderrors.ConfigError
	testutil.AssertTrue(t, errors.As(err, &cfgErr), "errors.As ConfigError")
	testutil.AssertEqual(t, cfgErr.Value, "Black Queen")
}

func TestNewTableRejectsEmptySrc(t *testing.T) {
	entries := wikimediaEntries(func(p string) string { return p })
	entries[Key{chess.Pawn, chess.White}] = Icon{Src: "  "}

	_, err := NewTable(entries)
	testutil.AssertTrue(t, errors.Is(err, boarderrors.ErrIconTableIncomplete), "errors.Is(%v, ErrIconTableIncomplete)", err)
}

func TestNewTableRejectsUnknownKey(t *testing.T) {
	entries := wikimediaEntries(func(p string) string { return p })
	entries[Key{chess.Empty, chess.White}] = Icon{Src: "empty.png"}

	_, err := NewTable(entries)
	testutil.AssertTrue(t, errors.Is(err, boarderrors.ErrInvalidConfig), "errors.Is(%v, ErrInvalidConfig)", err)
}

func TestNewTableDefaultsAlt(t *testing.T) {
	entries := make(map[Key]Icon)
	for _, k := range Keys() {
		entries[k] = Icon{Src: k.String() + ".svg"}
	}

	table, err := NewTable(entries)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, table.Lookup(chess.Rook, chess.White), Icon{Src: "White Rook.svg", Alt: DefaultAlt})
}

func TestFromBase(t *testing.T) {
	table, err := FromBase("/static/pieces/")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, table.Lookup(chess.Bishop, chess.Black).Src, "/static/pieces/Chess_bdt60.png")

	_, err = FromBase("   ")
	testutil.AssertTrue(t, errors.Is(err, boarderrors.ErrInvalidConfig), "errors.Is(%v, ErrInvalidConfig)", err)
}

func TestLookupPanicsOnNonPiece(t *testing.T) {
	testutil.AssertPanics(t, func() { Wikimedia().Lookup(chess.Empty, chess.White) })
	testutil.AssertPanics(t, func() { Wikimedia().Lookup(chess.King, chess.Colour(5)) })
}
