package history

import (
	"fmt"

	"github.com/dshills/quill/internal/engine/document"
)

// Coordinate is an alias for document.Coordinate for convenience.
type Coordinate = document.Coordinate

// ActionType distinguishes insertions from deletions.
type ActionType uint8

// Action types.
const (
	ActionInsert ActionType = iota
	ActionDelete
)

// String returns the action type name.
func (t ActionType) String() string {
	switch t {
	case ActionInsert:
		return "insert"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Action is a single recorded mutation. Start and End delimit the text in
// the document where it exists: after an insert, before a delete.
type Action struct {
	Type  ActionType
	Start Coordinate
	End   Coordinate
	Text  string
}

// Editable is the document surface actions are replayed against.
type Editable interface {
	InsertText(start Coordinate, text string) Coordinate
	DeleteText(start, end Coordinate)
}

// apply performs the action.
func (a Action) apply(doc Editable) {
	switch a.Type {
	case ActionInsert:
		doc.InsertText(a.Start, a.Text)
	case ActionDelete:
		doc.DeleteText(a.Start, a.End)
	}
}

// revert performs the inverse of the action.
func (a Action) revert(doc Editable) {
	switch a.Type {
	case ActionInsert:
		doc.DeleteText(a.Start, a.End)
	case ActionDelete:
		doc.InsertText(a.Start, a.Text)
	}
}

// String returns a string representation of the action.
func (a Action) String() string {
	return fmt.Sprintf("%s %v-%v %q", a.Type, a.Start, a.End, a.Text)
}
