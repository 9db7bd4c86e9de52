// Package engine provides the editing session of quill.
//
// The engine package serves as the main facade, combining line storage,
// multi-cursor handling, undo/redo, syntax coloring and bracket matching
// into a single thread-safe API suitable for embedding in a text editor.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - document: lines of colored glyphs with tab-aware coordinates
//   - cursor: multi-cursor and selection management
//   - history: transactions with undo/redo
//   - colorize: per-line tokenizer and built-in language descriptors
//   - bracket: bracket-pair index and enclosing-pair queries
//   - palette: mapping from glyph colors to terminal styles
//
// # Edit Sequence
//
// Every edit runs the same steps in one call:
//
//  1. Open a transaction, snapshotting the cursors
//  2. Mutate the document, recording each insert and delete
//  3. Shift the cursors that follow each mutation
//  4. Merge the cursors, close the transaction and record it
//  5. Recolor the lines the edit marked dirty
//  6. Rebuild the bracket index, or mark it stale
//
// A transaction that records no actions is dropped. The bracket index is
// rebuilt after every edit only when WithBracketMatching(true) is given;
// otherwise bracket queries rebuild it on demand.
//
// # Thread Safety
//
// All Editor operations are thread-safe. The editor uses a read-write
// mutex to allow concurrent reads while serializing edits. It never runs
// background work.
//
// # Basic Usage
//
//	e := engine.New(
//		engine.WithText("func main() {\n}"),
//		engine.WithLanguage(colorize.Go()),
//	)
//
//	// Type at the caret
//	e.SetCursor(document.Coord(0, 13), document.Coord(0, 13))
//	e.InsertText("\n\tprintln()")
//
//	// Undo the insertion
//	e.Undo()
//
// # Multi-Cursor Support
//
// Edits apply to every cursor:
//
//	e := engine.New(engine.WithText("foo bar foo"))
//	e.SetCursor(document.Coord(0, 0), document.Coord(0, 0))
//	e.AddCursor(document.Coord(0, 8), document.Coord(0, 8))
//	e.InsertText("X")
//
//	// Result: "Xfoo bar Xfoo"
package engine
