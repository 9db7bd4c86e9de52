package palette

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/quill/internal/engine/document"
)

func rgb(r, g, b int32) tcell.Color {
	return tcell.NewRGBColor(r, g, b)
}

func fg(c tcell.Color) Entry {
	return Entry{Foreground: c, Background: tcell.ColorDefault}
}

// Dark returns the default dark palette.
func Dark() *Palette {
	p := New("dark")

	p.Set(document.ColorText, fg(rgb(212, 212, 212)))
	p.Set(document.ColorKeyword, fg(rgb(86, 156, 214)))
	p.Set(document.ColorDeclaration, fg(rgb(78, 201, 176)))
	p.Set(document.ColorIdentifier, fg(rgb(156, 220, 254)))
	p.Set(document.ColorKnownIdentifier, fg(rgb(220, 220, 170)))
	p.Set(document.ColorNumber, fg(rgb(181, 206, 168)))
	p.Set(document.ColorString, fg(rgb(206, 145, 120)))
	p.Set(document.ColorPunctuation, fg(rgb(212, 212, 212)))
	p.Set(document.ColorPreprocessor, fg(rgb(197, 134, 192)))
	p.Set(document.ColorComment, Entry{Foreground: rgb(106, 153, 85), Background: tcell.ColorDefault, Italic: true})
	p.Set(document.ColorMatchingBracketLevel1, fg(rgb(255, 215, 0)))
	p.Set(document.ColorMatchingBracketLevel2, fg(rgb(218, 112, 214)))
	p.Set(document.ColorMatchingBracketLevel3, fg(rgb(23, 159, 255)))
	p.Set(document.ColorMatchingBracketError, Entry{Foreground: rgb(244, 71, 71), Background: tcell.ColorDefault, Bold: true, Underline: true})

	p.SetRole(RoleBackground, Entry{Foreground: rgb(212, 212, 212), Background: rgb(30, 30, 30)})
	p.SetRole(RoleCursor, Entry{Foreground: rgb(30, 30, 30), Background: rgb(255, 255, 255)})
	p.SetRole(RoleSelection, Entry{Foreground: tcell.ColorDefault, Background: rgb(64, 64, 128)})
	p.SetRole(RoleLineNumber, Entry{Foreground: rgb(133, 133, 133), Background: rgb(30, 30, 30)})
	p.SetRole(RoleCurrentLineNumber, Entry{Foreground: rgb(198, 198, 198), Background: rgb(30, 30, 30)})
	p.SetRole(RoleCurrentLine, Entry{Foreground: tcell.ColorDefault, Background: rgb(40, 40, 40)})

	return p
}

// Light returns the default light palette.
func Light() *Palette {
	p := New("light")

	p.Set(document.ColorText, fg(rgb(0, 0, 0)))
	p.Set(document.ColorKeyword, fg(rgb(0, 0, 255)))
	p.Set(document.ColorDeclaration, fg(rgb(38, 127, 153)))
	p.Set(document.ColorIdentifier, fg(rgb(0, 16, 128)))
	p.Set(document.ColorKnownIdentifier, fg(rgb(121, 94, 38)))
	p.Set(document.ColorNumber, fg(rgb(9, 134, 88)))
	p.Set(document.ColorString, fg(rgb(163, 21, 21)))
	p.Set(document.ColorPunctuation, fg(rgb(0, 0, 0)))
	p.Set(document.ColorPreprocessor, fg(rgb(175, 0, 219)))
	p.Set(document.ColorComment, Entry{Foreground: rgb(0, 128, 0), Background: tcell.ColorDefault, Italic: true})
	p.Set(document.ColorMatchingBracketLevel1, fg(rgb(4, 49, 250)))
	p.Set(document.ColorMatchingBracketLevel2, fg(rgb(49, 150, 49)))
	p.Set(document.ColorMatchingBracketLevel3, fg(rgb(123, 56, 20)))
	p.Set(document.ColorMatchingBracketError, Entry{Foreground: rgb(205, 49, 49), Background: tcell.ColorDefault, Bold: true, Underline: true})

	p.SetRole(RoleBackground, Entry{Foreground: rgb(0, 0, 0), Background: rgb(255, 255, 255)})
	p.SetRole(RoleCursor, Entry{Foreground: rgb(255, 255, 255), Background: rgb(0, 0, 0)})
	p.SetRole(RoleSelection, Entry{Foreground: tcell.ColorDefault, Background: rgb(173, 214, 255)})
	p.SetRole(RoleLineNumber, Entry{Foreground: rgb(35, 120, 147), Background: rgb(255, 255, 255)})
	p.SetRole(RoleCurrentLineNumber, Entry{Foreground: rgb(11, 33, 111), Background: rgb(255, 255, 255)})
	p.SetRole(RoleCurrentLine, Entry{Foreground: tcell.ColorDefault, Background: rgb(245, 245, 245)})

	return p
}
