// Package bracket builds the bracket-pair index of a colorized document.
//
// Update walks every glyph once, top to bottom. Only glyphs colored as
// punctuation (or already carrying a bracket color from a previous pass)
// take part, so brackets inside comments and strings are ignored. Matched
// brackets are recolored by nesting level; unmatched and mismatched ones
// get document.ColorMatchingBracketError and are reported by Errors.
//
// Pairs are sorted by their opening position. Queries scan that list:
//
//	b := bracket.New()
//	b.Update(doc)
//	if p, ok := b.FindEnclosingBrackets(pos); ok {
//		// p.Start and p.End are the opener and closer
//	}
package bracket
