// Package history provides transactional undo/redo for the editor engine.
//
// # Actions
//
// An Action is one atomic text mutation: an insertion or a deletion of an
// exact range, carrying the text that was moved. Actions are immutable.
//
// # Transactions
//
// A Transaction groups the actions of one logical edit together with deep
// copies of the cursors before and after it:
//
//	t := history.NewTransaction(cursors)
//	end := doc.InsertText(pos, "x")
//	t.AddInsert(pos, end, "x")
//	t.Close(cursors)
//	transactions.Add(t)
//
// A transaction without actions is never recorded, so no-op edits leave
// the history untouched.
//
// # Transactions Stack
//
// Transactions keeps the recorded transactions and an undo index. Undo
// reverses the transaction before the index, Redo replays the one at it,
// and Add discards everything at or after the index before appending.
package history
