package history

import (
	"errors"

	"github.com/dshills/quill/internal/engine/cursor"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries is the transaction limit used when none is given.
const DefaultMaxEntries = 1000

// Transactions is the undo/redo stack. Entries before undoIndex can be
// undone; entries at or after it can be redone.
type Transactions struct {
	entries    []*Transaction
	undoIndex  int
	maxEntries int
}

// NewTransactions creates an empty stack that keeps at most maxEntries
// transactions.
func NewTransactions(maxEntries int) *Transactions {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Transactions{maxEntries: maxEntries}
}

// Add records t, discarding the redo tail. Empty transactions are dropped
// and Add reports whether t was recorded.
func (ts *Transactions) Add(t *Transaction) bool {
	if t == nil || t.Empty() {
		return false
	}

	ts.entries = append(ts.entries[:ts.undoIndex], t)
	if len(ts.entries) > ts.maxEntries {
		excess := len(ts.entries) - ts.maxEntries
		ts.entries = ts.entries[excess:]
	}
	ts.undoIndex = len(ts.entries)
	return true
}

// CanUndo returns true if undo is available.
func (ts *Transactions) CanUndo() bool {
	return ts.undoIndex > 0
}

// CanRedo returns true if redo is available.
func (ts *Transactions) CanRedo() bool {
	return ts.undoIndex < len(ts.entries)
}

// Undo reverts the most recent transaction. It panics with
// ErrNothingToUndo if CanUndo is false.
func (ts *Transactions) Undo(doc Editable, cursors *cursor.Cursors) *Transaction {
	if !ts.CanUndo() {
		panic(ErrNothingToUndo)
	}
	ts.undoIndex--
	t := ts.entries[ts.undoIndex]
	t.Undo(doc, cursors)
	return t
}

// Redo replays the transaction at the undo index. It panics with
// ErrNothingToRedo if CanRedo is false.
func (ts *Transactions) Redo(doc Editable, cursors *cursor.Cursors) *Transaction {
	if !ts.CanRedo() {
		panic(ErrNothingToRedo)
	}
	t := ts.entries[ts.undoIndex]
	t.Redo(doc, cursors)
	ts.undoIndex++
	return t
}

// Reset removes all history.
func (ts *Transactions) Reset() {
	ts.entries = nil
	ts.undoIndex = 0
}

// Len returns the number of recorded transactions.
func (ts *Transactions) Len() int {
	return len(ts.entries)
}

// UndoIndex returns the position of the undo cursor.
func (ts *Transactions) UndoIndex() int {
	return ts.undoIndex
}

// UndoCount returns the number of undo operations available.
func (ts *Transactions) UndoCount() int {
	return ts.undoIndex
}

// RedoCount returns the number of redo operations available.
func (ts *Transactions) RedoCount() int {
	return len(ts.entries) - ts.undoIndex
}

// PeekUndo returns info about the next undo operation without applying it.
func (ts *Transactions) PeekUndo() (Info, bool) {
	if !ts.CanUndo() {
		return Info{}, false
	}
	return ts.entries[ts.undoIndex-1].Info(), true
}

// PeekRedo returns info about the next redo operation without applying it.
func (ts *Transactions) PeekRedo() (Info, bool) {
	if !ts.CanRedo() {
		return Info{}, false
	}
	return ts.entries[ts.undoIndex].Info(), true
}

// SetMaxEntries changes the maximum number of stored transactions. If the
// stack is larger, the oldest entries are removed.
func (ts *Transactions) SetMaxEntries(n int) {
	if n <= 0 {
		n = DefaultMaxEntries
	}
	ts.maxEntries = n
	if len(ts.entries) > n {
		excess := len(ts.entries) - n
		ts.entries = ts.entries[excess:]
		ts.undoIndex = max(ts.undoIndex-excess, 0)
	}
}

// MaxEntries returns the maximum number of stored transactions.
func (ts *Transactions) MaxEntries() int {
	return ts.maxEntries
}
