package bracket

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dshills/quill/internal/engine/colorize"
	"github.com/dshills/quill/internal/engine/document"
)

var coord = document.Coord

func build(text string) (*document.Document, *Bracketeer) {
	doc := document.NewFromString(text, 4)
	colorize.New(colorize.Go()).UpdateEntireDocument(doc)
	b := New()
	b.Update(doc)
	return doc, b
}

func colorAt(doc *document.Document, c document.Coordinate) document.Color {
	g, _ := doc.GlyphAt(c)
	return g.Color
}

func TestNestedPairs(t *testing.T) {
	doc, b := build("{ ( ) }")

	require.Equal(t, []Pair{
		{OpenChar: '{', Start: coord(0, 0), CloseChar: '}', End: coord(0, 6), Level: 0},
		{OpenChar: '(', Start: coord(0, 2), CloseChar: ')', End: coord(0, 4), Level: 1},
	}, b.Pairs())
	require.Empty(t, b.Errors())
	require.Equal(t, 2, b.Len())

	require.Equal(t, document.ColorMatchingBracketLevel1, colorAt(doc, coord(0, 0)))
	require.Equal(t, document.ColorMatchingBracketLevel2, colorAt(doc, coord(0, 2)))
	require.Equal(t, document.ColorMatchingBracketLevel2, colorAt(doc, coord(0, 4)))
	require.Equal(t, document.ColorMatchingBracketLevel1, colorAt(doc, coord(0, 6)))
}

func TestMismatchedPair(t *testing.T) {
	doc, b := build("( ]")

	require.Zero(t, b.Len())
	require.Equal(t, []Pair{
		{OpenChar: '(', Start: coord(0, 0), CloseChar: ']', End: coord(0, 2), Level: 0},
	}, b.Errors())
	require.Equal(t, document.ColorMatchingBracketError, colorAt(doc, coord(0, 0)))
	require.Equal(t, document.ColorMatchingBracketError, colorAt(doc, coord(0, 2)))
}

func TestUnmatchedBrackets(t *testing.T) {
	doc, b := build(") x (")

	require.Zero(t, b.Len())
	require.Equal(t, []Pair{
		{Start: document.Invalid, CloseChar: ')', End: coord(0, 0)},
		{OpenChar: '(', Start: coord(0, 4), End: document.Invalid},
	}, b.Errors())
	require.Equal(t, document.ColorMatchingBracketError, colorAt(doc, coord(0, 0)))
	require.Equal(t, document.ColorMatchingBracketError, colorAt(doc, coord(0, 4)))
}

func TestMismatchKeepsOuterPair(t *testing.T) {
	_, b := build("{ ( ] }")

	require.Equal(t, []Pair{
		{OpenChar: '{', Start: coord(0, 0), CloseChar: '}', End: coord(0, 6), Level: 0},
	}, b.Pairs())
	require.Len(t, b.Errors(), 1)
}

func TestIgnoresCommentsAndStrings(t *testing.T) {
	_, b := build(`x := "(" // )`)
	require.Zero(t, b.Len())
	require.Empty(t, b.Errors())
}

func TestWithoutLanguageNothingMatches(t *testing.T) {
	doc := document.NewFromString("( )", 4)
	b := New()
	b.Update(doc)
	require.Zero(t, b.Len())
	require.Empty(t, b.Errors())
}

func TestLevelsCycle(t *testing.T) {
	doc, b := build("(((())))")

	require.Equal(t, 4, b.Len())
	want := []document.Color{
		document.ColorMatchingBracketLevel1,
		document.ColorMatchingBracketLevel2,
		document.ColorMatchingBracketLevel3,
		document.ColorMatchingBracketLevel1,
	}
	for i, p := range b.Pairs() {
		require.Equal(t, i, p.Level)
		require.Equal(t, want[i], colorAt(doc, p.Start))
		require.Equal(t, want[i], colorAt(doc, p.End))
	}
}

func TestUpdateIsRepeatable(t *testing.T) {
	doc, b := build("{ ( ] } )")
	pairs := append([]Pair(nil), b.Pairs()...)
	errs := append([]Pair(nil), b.Errors()...)

	b.Update(doc)
	require.Equal(t, pairs, b.Pairs())
	require.Equal(t, errs, b.Errors())
}

func TestReset(t *testing.T) {
	_, b := build("()")
	require.Equal(t, 1, b.Len())
	b.Reset()
	require.Zero(t, b.Len())
	require.Empty(t, b.Pairs())
}

const nested = "func f() {\n\tif x {\n\t}\n}"

func TestQueries(t *testing.T) {
	_, b := build(nested)

	require.Equal(t, []Pair{
		{OpenChar: '(', Start: coord(0, 6), CloseChar: ')', End: coord(0, 7), Level: 0},
		{OpenChar: '{', Start: coord(0, 9), CloseChar: '}', End: coord(3, 0), Level: 0},
		{OpenChar: '{', Start: coord(1, 9), CloseChar: '}', End: coord(2, 4), Level: 1},
	}, b.Pairs())

	t.Run("enclosing", func(t *testing.T) {
		p, ok := b.FindEnclosingBrackets(coord(1, 2))
		require.True(t, ok)
		require.Equal(t, coord(0, 9), p.Start)

		p, ok = b.FindEnclosingBrackets(coord(2, 0))
		require.True(t, ok)
		require.Equal(t, coord(1, 9), p.Start)

		_, ok = b.FindEnclosingBrackets(coord(0, 9))
		require.False(t, ok)
	})

	t.Run("enclosing curly", func(t *testing.T) {
		p, ok := b.FindEnclosingCurlyBrackets(coord(1, 10), coord(2, 4))
		require.True(t, ok)
		require.Equal(t, coord(1, 9), p.Start)

		p, ok = b.FindEnclosingCurlyBrackets(coord(1, 9), coord(2, 5))
		require.True(t, ok)
		require.Equal(t, coord(0, 9), p.Start)

		_, ok = b.FindEnclosingCurlyBrackets(coord(0, 0), coord(0, 1))
		require.False(t, ok)
	})

	t.Run("inner curly", func(t *testing.T) {
		p, ok := b.FindInnerCurlyBrackets(coord(0, 10), coord(3, 0))
		require.True(t, ok)
		require.Equal(t, coord(1, 9), p.Start)

		p, ok = b.FindInnerCurlyBrackets(coord(0, 0), coord(3, 1))
		require.True(t, ok)
		require.Equal(t, coord(0, 9), p.Start)

		_, ok = b.FindInnerCurlyBrackets(coord(1, 10), coord(2, 4))
		require.False(t, ok)
	})

	t.Run("pair at", func(t *testing.T) {
		p, ok := b.PairAt(coord(2, 4))
		require.True(t, ok)
		require.Equal(t, coord(1, 9), p.Start)

		_, ok = b.PairAt(coord(0, 8))
		require.False(t, ok)
	})
}

func TestPairRanges(t *testing.T) {
	p := Pair{OpenChar: '{', Start: coord(0, 2), CloseChar: '}', End: coord(1, 0)}

	s, e := p.Inner()
	require.Equal(t, coord(0, 3), s)
	require.Equal(t, coord(1, 0), e)

	s, e = p.Outer()
	require.Equal(t, coord(0, 2), s)
	require.Equal(t, coord(1, 1), e)

	require.True(t, p.Contains(coord(1, 0)))
	require.False(t, p.Contains(coord(0, 2)))
	require.True(t, p.IsCurly())
}

func TestBracketRunes(t *testing.T) {
	for _, pair := range []string{"()", "[]", "{}"} {
		open, closer := rune(pair[0]), rune(pair[1])
		require.True(t, IsOpener(open))
		require.True(t, IsCloser(closer))
		require.Equal(t, closer, Partner(open))
		require.Equal(t, open, Partner(closer))
	}
	require.Zero(t, Partner('<'))
	require.False(t, IsBracketCandidate(document.Glyph{Codepoint: '(', Color: document.ColorString}))
	require.True(t, IsBracketCandidate(document.Glyph{Codepoint: '(', Color: document.ColorMatchingBracketError}))
}

func TestPairsNest(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[(){}\[\] a\n]{0,40}`).Draw(t, "text")
		doc, b := build(text)

		pairs := b.Pairs()
		for i, p := range pairs {
			if Partner(p.OpenChar) != p.CloseChar {
				t.Fatalf("pair %d mismatched: %q %q", i, p.OpenChar, p.CloseChar)
			}
			if i > 0 && !pairs[i-1].Start.Less(p.Start) {
				t.Fatalf("pairs not sorted at %d", i)
			}
			for _, q := range pairs[:i] {
				disjoint := q.End.Less(p.Start)
				nestedIn := q.Start.Less(p.Start) && p.End.Less(q.End)
				if !disjoint && !nestedIn {
					t.Fatalf("pairs %v and %v overlap", q, p)
				}
			}
		}

		brackets := 0
		for n := 0; n < doc.LineCount(); n++ {
			for _, g := range doc.Line(n).Glyphs {
				if IsOpener(g.Codepoint) || IsCloser(g.Codepoint) {
					brackets++
					if !g.Color.IsBracketMatch() {
						t.Fatalf("bracket %q left as %v", g.Codepoint, g.Color)
					}
				}
			}
		}
		errored := 0
		for _, e := range b.Errors() {
			if e.Start.IsValid() {
				errored++
			}
			if e.End.IsValid() {
				errored++
			}
		}
		if brackets != 2*len(pairs)+errored {
			t.Fatalf("%d brackets, %d pairs, %d errored", brackets, len(pairs), errored)
		}
	})
}
