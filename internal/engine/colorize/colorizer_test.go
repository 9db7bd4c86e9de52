package colorize

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dshills/quill/internal/engine/document"
)

// codes maps one letter per glyph color for compact expectations.
var codes = map[document.Color]byte{
	document.ColorText:            '.',
	document.ColorKeyword:         'k',
	document.ColorDeclaration:     'd',
	document.ColorIdentifier:      'i',
	document.ColorKnownIdentifier: 'K',
	document.ColorNumber:          'n',
	document.ColorString:          's',
	document.ColorPunctuation:     'p',
	document.ColorPreprocessor:    '#',
	document.ColorComment:         'c',
}

func colorCodes(doc *document.Document, n int) string {
	line := doc.Line(n)
	out := make([]byte, len(line.Glyphs))
	for i, g := range line.Glyphs {
		out[i] = codes[g.Color]
	}
	return string(out)
}

func colorized(lang *Language, text string) *document.Document {
	doc := document.NewFromString(text, 4)
	New(lang).UpdateEntireDocument(doc)
	return doc
}

func TestColorizeLine(t *testing.T) {
	tests := []struct {
		name string
		lang *Language
		text string
		want string
	}{
		{"go assignment", Go(), "x := 42 // hi", "i.pp.nn.ccccc"},
		{"go declaration", Go(), "func main() {", "dddd.iiiipp.p"},
		{"go known identifiers", Go(), "return nil", "kkkkkk.KKK"},
		{"escaped quote", Go(), `"a\"b" x`, "ssssss.i"},
		{"raw string ignores escape", Go(), "`a\\` x", "ssss.i"},
		{"rune literal", Go(), `'\'' y`, "ssss.i"},
		{"preprocessor at line start", C(), "  #include <x>", "..############"},
		{"hash inside line", C(), "a # b", "i.p.i"},
		{"c numbers", C(), "0x1F 3.14e-2 10u .5", "nnnn.nnnnnnn.nnn.nn"},
		{"sql ignores case", SQL(), "select Count(*) from t", "kkkkkk.KKKKKppp.kkkk.i"},
		{"lua line comment", Lua(), "-- x", "cccc"},
		{"lua long string", Lua(), "[[s]] z", "sssss.i"},
		{"json", JSON(), `{"a": true}`, "psssp.kkkkp"},
		{"python comment", Python(), "x = 1 # note", "i.p.n.cccccc"},
		{"underscore identifier", Go(), "_x1", "iii"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := colorized(tt.lang, tt.text)
			require.Equal(t, tt.want, colorCodes(doc, 0))
		})
	}
}

func TestStatesCarryAcrossLines(t *testing.T) {
	tests := []struct {
		name  string
		lang  *Language
		text  string
		want  []string
		state document.State
	}{
		{"block comment", Go(), "a /* b\nc */ d", []string{"i.cccc", "cccc.i"}, document.StateInComment},
		{"double quoted", Go(), "\"abc\nd\" e", []string{"ssss", "ss.i"}, document.StateInDoubleQuotedString},
		{"python triple quote", Python(), "\"\"\"doc\nend\"\"\" x", []string{"ssssss", "ssssss.i"}, document.StateInOtherString},
		{"python alt triple quote", Python(), "'''a\nb''' ", []string{"ssss", "ssss."}, document.StateInOtherStringAlt},
		{"lua block comment", Lua(), "--[[ x\n]] y", []string{"cccccc", "cc.i"}, document.StateInComment},
		{"cpp raw string", CPlusPlus(), "R\"(a\n)\" b", []string{"ssss", "ss.i"}, document.StateInOtherString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := colorized(tt.lang, tt.text)
			for n, want := range tt.want {
				require.Equal(t, want, colorCodes(doc, n), "line %d", n)
			}
			require.Equal(t, document.StateInText, doc.Line(0).State)
			require.Equal(t, tt.state, doc.Line(1).State)
		})
	}
}

func TestEmptyLinesKeepState(t *testing.T) {
	doc := colorized(Go(), "/*\n\n*/ x")
	require.Equal(t, document.StateInComment, doc.Line(1).State)
	require.Equal(t, document.StateInComment, doc.Line(2).State)
	require.Equal(t, "cc.i", colorCodes(doc, 2))
}

func TestNoLanguage(t *testing.T) {
	doc := colorized(Go(), "/* a\nb */")
	c := New(nil)
	c.UpdateEntireDocument(doc)

	for n := 0; n < doc.LineCount(); n++ {
		line := doc.Line(n)
		require.Equal(t, document.StateInText, line.State)
		require.False(t, line.Colorize)
		for _, g := range line.Glyphs {
			require.Equal(t, document.ColorText, g.Color)
		}
	}
	require.Nil(t, c.Language())
}

func TestUpdateChangedLinesCascades(t *testing.T) {
	doc := colorized(Go(), "a\nb\nc")
	c := New(Go())

	doc.InsertText(document.Coord(0, 0), "/*")
	c.UpdateChangedLines(doc)

	require.Equal(t, "ccc", colorCodes(doc, 0))
	require.Equal(t, "c", colorCodes(doc, 1))
	require.Equal(t, "c", colorCodes(doc, 2))
	require.Equal(t, document.StateInComment, doc.Line(2).State)

	doc.DeleteText(document.Coord(0, 0), document.Coord(0, 2))
	c.UpdateChangedLines(doc)

	require.Equal(t, "i", colorCodes(doc, 0))
	require.Equal(t, "i", colorCodes(doc, 1))
	require.Equal(t, "i", colorCodes(doc, 2))
	require.Equal(t, document.StateInText, doc.Line(2).State)
}

func TestUpdateChangedLinesStopsWhenStateSettles(t *testing.T) {
	doc := colorized(Go(), "a\nb\nc")
	c := New(Go())

	doc.InsertText(document.Coord(0, 1), " x")
	c.UpdateChangedLines(doc)

	require.False(t, doc.Line(1).Colorize)
	require.Equal(t, "i.i", colorCodes(doc, 0))
}

func snapshot(doc *document.Document) [][]document.Glyph {
	out := make([][]document.Glyph, doc.LineCount())
	for n := range out {
		out[n] = append([]document.Glyph(nil), doc.Line(n).Glyphs...)
	}
	return out
}

func states(doc *document.Document) []document.State {
	out := make([]document.State, doc.LineCount())
	for n := range out {
		out[n] = doc.Line(n).State
	}
	return out
}

func TestStability(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a1 /*"'\n#(){}]{0,60}`).Draw(t, "text")
		lang := rapid.SampledFrom([]*Language{C(), Go(), Python(), Lua()}).Draw(t, "lang")

		doc := colorized(lang, text)
		before := snapshot(doc)

		New(lang).UpdateChangedLines(doc)

		if got := snapshot(doc); !equalGlyphs(before, got) {
			t.Fatalf("colors changed on clean document %q", text)
		}
	})
}

func TestIncrementalMatchesFull(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[ab /*"\n`+"`"+`]{0,40}`).Draw(t, "text")
		c := New(Go())

		doc := document.NewFromString(text, 4)
		c.UpdateEntireDocument(doc)

		edits := rapid.IntRange(1, 5).Draw(t, "edits")
		for i := 0; i < edits; i++ {
			line := rapid.IntRange(0, doc.LineCount()-1).Draw(t, "line")
			at := doc.NormalizeCoordinate(document.Coord(line, rapid.IntRange(0, 10).Draw(t, "col")))
			if rapid.Bool().Draw(t, "insert") {
				doc.InsertText(at, rapid.StringMatching(`[x/*"\n`+"`"+`]{1,3}`).Draw(t, "ins"))
			} else {
				doc.DeleteText(at, doc.RightN(at, rapid.IntRange(1, 3).Draw(t, "del"), false))
			}
			c.UpdateChangedLines(doc)
		}

		full := document.NewFromString(doc.Text(), 4)
		c.UpdateEntireDocument(full)

		if !equalGlyphs(snapshot(full), snapshot(doc)) {
			t.Fatalf("incremental colors differ for %q", doc.Text())
		}
		want, got := states(full), states(doc)
		for n := range want {
			if want[n] != got[n] {
				t.Fatalf("line %d state %v, want %v", n, got[n], want[n])
			}
		}
	})
}

func equalGlyphs(a, b [][]document.Glyph) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
