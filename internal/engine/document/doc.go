// Package document provides the line-oriented glyph storage of the editor
// engine.
//
// A Document is an ordered sequence of Lines, each an ordered sequence of
// colored Glyphs. Positions are expressed as Coordinates whose column is a
// visible column: every glyph occupies one column except tabs, which advance
// to the next multiple of the tab size.
//
// Basic usage:
//
//	doc := document.New(4)
//	doc.SetText("func main() {\n\treturn\n}")
//
//	end := doc.InsertText(document.Coordinate{Line: 1, Column: 4}, " nil")
//	doc.DeleteText(document.Coordinate{Line: 1, Column: 4}, end)
//
//	text := doc.Text()
//
// Document methods assume coordinates that have already been passed through
// NormalizeCoordinate. They do not validate or clamp their input.
package document
