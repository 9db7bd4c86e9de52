// Package cursor provides multi-cursor and selection management for the
// editor engine.
//
// Selection Model:
//
// A Cursor is an anchor/active-end pair of document coordinates:
//   - Start: the anchor, where the selection started
//   - End: the interactive end, where typing occurs
//
// When Start == End the cursor is a plain caret. Start may follow End; that
// is a selection built right-to-left and the direction is preserved.
//
// Multi-Cursor Support:
//
// Cursors is an ordered collection with one main and one current cursor.
// Overlap between cursors is allowed while an edit is in progress.
// Update sorts the collection and merges overlapping or touching cursors;
// afterwards the cursors are sorted and pairwise disjoint.
//
// Edits and Cursors:
//
// Document mutations never move cursors. After each mutation the caller
// shifts the cursors that follow the edited one:
//
//	end := doc.InsertText(pos, text)
//	cursors.AdjustForInsert(i, pos, end)
package cursor
