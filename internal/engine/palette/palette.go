// Package palette maps glyph colors and editor UI roles to terminal styles.
//
// A Palette is an ordinary value handed to an editing session; there is no
// process-wide default. Dark and Light return fresh copies that callers may
// modify.
package palette

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/quill/internal/engine/document"
)

// Role identifies a non-syntax element of the editor.
type Role uint8

// UI roles.
const (
	RoleBackground Role = iota
	RoleCursor
	RoleSelection
	RoleLineNumber
	RoleCurrentLineNumber
	RoleCurrentLine

	roleCount
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleBackground:
		return "background"
	case RoleCursor:
		return "cursor"
	case RoleSelection:
		return "selection"
	case RoleLineNumber:
		return "lineNumber"
	case RoleCurrentLineNumber:
		return "currentLineNumber"
	case RoleCurrentLine:
		return "currentLine"
	default:
		return "unknown"
	}
}

// Entry describes how one color or role is drawn.
type Entry struct {
	Foreground tcell.Color
	Background tcell.Color
	Bold       bool
	Italic     bool
	Underline  bool
}

// Style converts the entry to a tcell style.
func (e Entry) Style() tcell.Style {
	style := tcell.StyleDefault.Foreground(e.Foreground).Background(e.Background)
	if e.Bold {
		style = style.Bold(true)
	}
	if e.Italic {
		style = style.Italic(true)
	}
	if e.Underline {
		style = style.Underline(true)
	}
	return style
}

// Palette holds an Entry for every glyph color and UI role.
type Palette struct {
	Name string

	glyphs [document.ColorCount]Entry
	roles  [roleCount]Entry
}

// New creates a palette where everything uses the terminal defaults.
func New(name string) *Palette {
	p := &Palette{Name: name}
	for i := range p.glyphs {
		p.glyphs[i] = Entry{Foreground: tcell.ColorDefault, Background: tcell.ColorDefault}
	}
	for i := range p.roles {
		p.roles[i] = Entry{Foreground: tcell.ColorDefault, Background: tcell.ColorDefault}
	}
	return p
}

// Entry returns the entry for glyph color c.
func (p *Palette) Entry(c document.Color) Entry {
	if int(c) >= len(p.glyphs) {
		return p.glyphs[document.ColorText]
	}
	return p.glyphs[c]
}

// Set replaces the entry for glyph color c.
func (p *Palette) Set(c document.Color, e Entry) {
	if int(c) < len(p.glyphs) {
		p.glyphs[c] = e
	}
}

// Role returns the entry for UI role r.
func (p *Palette) Role(r Role) Entry {
	if r >= roleCount {
		return p.roles[RoleBackground]
	}
	return p.roles[r]
}

// SetRole replaces the entry for UI role r.
func (p *Palette) SetRole(r Role, e Entry) {
	if r < roleCount {
		p.roles[r] = e
	}
}

// Style returns the tcell style for glyph color c.
func (p *Palette) Style(c document.Color) tcell.Style {
	return p.Entry(c).Style()
}

// RoleStyle returns the tcell style for UI role r.
func (p *Palette) RoleStyle(r Role) tcell.Style {
	return p.Role(r).Style()
}

// Clone returns an independent copy.
func (p *Palette) Clone() *Palette {
	c := *p
	return &c
}

// Reset is the SGR sequence that restores the terminal defaults.
const Reset = "\x1b[0m"

// SGR returns the 24-bit ANSI escape sequence selecting glyph color c.
func (p *Palette) SGR(c document.Color) string {
	return sgr(p.Entry(c))
}

// RoleSGR returns the escape sequence selecting UI role r.
func (p *Palette) RoleSGR(r Role) string {
	return sgr(p.Role(r))
}

func sgr(e Entry) string {
	params := []string{"0"}
	if e.Bold {
		params = append(params, "1")
	}
	if e.Italic {
		params = append(params, "3")
	}
	if e.Underline {
		params = append(params, "4")
	}
	params = append(params, colorParams(e.Foreground, "38", "39")...)
	if e.Background != tcell.ColorDefault {
		params = append(params, colorParams(e.Background, "48", "49")...)
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}

func colorParams(c tcell.Color, set, reset string) []string {
	if c == tcell.ColorDefault {
		return []string{reset}
	}
	r, g, b := c.RGB()
	if r < 0 {
		return []string{reset}
	}
	return []string{set, "2", strconv.Itoa(int(r)), strconv.Itoa(int(g)), strconv.Itoa(int(b))}
}

// Render returns glyphs as text with an escape sequence at every color
// change, followed by Reset.
func (p *Palette) Render(glyphs []document.Glyph) string {
	var b strings.Builder
	for i, g := range glyphs {
		if i == 0 || g.Color != glyphs[i-1].Color {
			b.WriteString(p.SGR(g.Color))
		}
		b.WriteRune(g.Codepoint)
	}
	if len(glyphs) > 0 {
		b.WriteString(Reset)
	}
	return b.String()
}

var builtins = map[string]func() *Palette{
	"dark":  Dark,
	"light": Light,
}

// Lookup returns a fresh copy of the built-in palette called name.
func Lookup(name string) (*Palette, bool) {
	build, ok := builtins[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return build(), true
}

// Names returns the built-in palette names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
