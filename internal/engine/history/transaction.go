package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/quill/internal/engine/cursor"
)

// Transaction is the record of one logical edit.
type Transaction struct {
	ID      uuid.UUID
	Created time.Time

	Actions []Action

	// Before and After are deep copies of the cursors around the edit.
	Before *cursor.Cursors
	After  *cursor.Cursors
}

// NewTransaction opens a transaction, snapshotting the cursors as they are
// before any mutation.
func NewTransaction(before *cursor.Cursors) *Transaction {
	return &Transaction{
		ID:      uuid.New(),
		Created: time.Now(),
		Before:  before.Clone(),
	}
}

// AddInsert records that text was inserted at start and now ends at end.
func (t *Transaction) AddInsert(start, end Coordinate, text string) {
	if text == "" {
		return
	}
	t.Actions = append(t.Actions, Action{Type: ActionInsert, Start: start, End: end, Text: text})
}

// AddDelete records that text, spanning [start, end), was removed.
func (t *Transaction) AddDelete(start, end Coordinate, text string) {
	if start == end {
		return
	}
	t.Actions = append(t.Actions, Action{Type: ActionDelete, Start: start, End: end, Text: text})
}

// Close snapshots the cursors as they are after the edit.
func (t *Transaction) Close(after *cursor.Cursors) {
	t.After = after.Clone()
}

// Empty returns true if the transaction recorded no actions.
func (t *Transaction) Empty() bool {
	return len(t.Actions) == 0
}

// Undo reverts the actions in reverse order and restores the cursors that
// were current before the edit.
func (t *Transaction) Undo(doc Editable, cursors *cursor.Cursors) {
	for i := len(t.Actions) - 1; i >= 0; i-- {
		t.Actions[i].revert(doc)
	}
	if t.Before != nil {
		cursors.Restore(t.Before)
	}
}

// Redo replays the actions in order and restores the cursors that were
// current after the edit.
func (t *Transaction) Redo(doc Editable, cursors *cursor.Cursors) {
	for _, a := range t.Actions {
		a.apply(doc)
	}
	if t.After != nil {
		cursors.Restore(t.After)
	}
}

// Info returns a summary of the transaction.
func (t *Transaction) Info() Info {
	return Info{ID: t.ID, Created: t.Created, Actions: len(t.Actions)}
}

// Info summarizes a recorded transaction.
type Info struct {
	ID      uuid.UUID
	Created time.Time
	Actions int
}
