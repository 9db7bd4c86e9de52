package engine

import (
	"github.com/dshills/quill/internal/engine/history"
)

// Find selects the next match of text after the current cursor, wrapping
// around the end of the document. It returns false and leaves the cursors
// unchanged when there is no match.
func (e *Editor) Find(text string, caseSensitive, wholeWord bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if text == "" {
		return false
	}
	from := e.cursors.Current().SelectionEnd()
	start, end, ok := e.doc.FindText(from, text, caseSensitive, wholeWord)
	if !ok {
		return false
	}
	e.cursors.SetCursor(start, end)
	return true
}

// FindAll returns the start and end of every match of text.
func (e *Editor) FindAll(text string, caseSensitive, wholeWord bool) [][2]Coordinate {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if text == "" {
		return nil
	}
	return e.doc.FindAll(text, caseSensitive, wholeWord)
}

// AddNextOccurrence adds a cursor on the next occurrence of the current
// selection. If the current cursor is a caret its word is selected
// instead. It returns false when no new occurrence exists.
func (e *Editor) AddNextOccurrence() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	current := e.cursors.Current()
	if !current.HasSelection() {
		start, end := e.wordAt(current.End)
		if start == end {
			return false
		}
		current.SetSelection(start, end)
		e.cursors.Update()
		return true
	}

	text := e.doc.SectionText(current.SelectionStart(), current.SelectionEnd())
	from := current.SelectionEnd()
	for range e.cursors.Len() {
		start, end, ok := e.doc.FindText(from, text, true, false)
		if !ok {
			return false
		}
		if !e.hasSelection(start, end) {
			e.cursors.AddCursor(start, end)
			e.cursors.Update()
			return true
		}
		from = end
	}
	return false
}

// hasSelection reports whether some cursor selects exactly [start, end).
func (e *Editor) hasSelection(start, end Coordinate) bool {
	for _, c := range e.cursors.All() {
		if c.SelectionStart() == start && c.SelectionEnd() == end {
			return true
		}
	}
	return false
}

// SelectAllOccurrences puts a cursor on every occurrence of the current
// selection, or of the word under the current caret. The occurrence
// holding the current cursor becomes main. It returns the number of
// cursors.
func (e *Editor) SelectAllOccurrences() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	current := *e.cursors.Current()
	start, end := current.SelectionStart(), current.SelectionEnd()
	if start == end {
		start, end = e.wordAt(current.End)
		if start == end {
			return e.cursors.Len()
		}
	}

	text := e.doc.SectionText(start, end)
	matches := e.doc.FindAll(text, true, false)
	if len(matches) == 0 {
		return e.cursors.Len()
	}

	main := 0
	for i, m := range matches {
		if !start.Less(m[0]) && start.Less(m[1]) {
			main = i
			break
		}
	}
	e.cursors.SetCursor(matches[main][0], matches[main][1])
	for i, m := range matches {
		if i != main {
			e.cursors.AddCursor(m[0], m[1])
		}
	}
	e.cursors.Update()
	return e.cursors.Len()
}

// ReplaceAll replaces every match of find with replace as a single
// transaction and returns the number of replacements.
func (e *Editor) ReplaceAll(find, replace string, caseSensitive, wholeWord bool) (int, error) {
	count := 0
	err := e.edit("replace all", func(tx *history.Transaction) error {
		if find == "" {
			return nil
		}
		matches := e.doc.FindAll(find, caseSensitive, wholeWord)
		for k := len(matches) - 1; k >= 0; k-- {
			start, end := e.indexOf(matches[k][0]), e.indexOf(matches[k][1])
			e.deleteRaw(tx, start, end)
			newEnd := e.insertRaw(tx, start, replace)
			e.cursors.AdjustForReplace(start, end, newEnd)
		}
		count = len(matches)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
