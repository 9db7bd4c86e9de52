package cursor

// AdjustForInsert shifts every cursor after index after to account for
// text inserted at insertStart that now ends at insertEnd.
//
// Transformation rules:
//   - Coordinates on the insertion line move by the column delta
//   - Every coordinate moves down by the number of inserted line breaks
func (cs *Cursors) AdjustForInsert(after int, insertStart, insertEnd Coordinate) {
	lines := insertEnd.Line - insertStart.Line
	columns := insertEnd.Column - insertStart.Column

	for i := after + 1; i < len(cs.cursors); i++ {
		c := &cs.cursors[i]
		c.SetSelection(
			shiftInsert(c.Start, insertStart.Line, lines, columns),
			shiftInsert(c.End, insertStart.Line, lines, columns),
		)
	}
}

// AdjustForDelete shifts every cursor after index after to account for the
// removal of [deleteStart, deleteEnd).
//
// Transformation rules:
//   - Coordinates on the last deleted line move left by the column delta
//   - Every coordinate moves up by the number of removed line breaks
func (cs *Cursors) AdjustForDelete(after int, deleteStart, deleteEnd Coordinate) {
	lines := deleteEnd.Line - deleteStart.Line
	columns := deleteEnd.Column - deleteStart.Column

	for i := after + 1; i < len(cs.cursors); i++ {
		c := &cs.cursors[i]
		c.SetSelection(
			shiftDelete(c.Start, deleteEnd.Line, lines, columns),
			shiftDelete(c.End, deleteEnd.Line, lines, columns),
		)
	}
}

// ShiftLine moves every coordinate on line at or after column by delta
// columns. Coordinates never move before column. Used after edits confined
// to one line, such as indenting or commenting it.
func (cs *Cursors) ShiftLine(line, column, delta int) {
	shift := func(c Coordinate) Coordinate {
		if c.Line != line || c.Column < column {
			return c
		}
		c.Column = max(c.Column+delta, column)
		return c
	}
	for i := range cs.cursors {
		c := &cs.cursors[i]
		start, end := shift(c.Start), shift(c.End)
		if start != c.Start || end != c.End {
			c.SetSelection(start, end)
		}
	}
}

// AdjustForReplace shifts every cursor for the replacement of
// [start, oldEnd) by text that now ends at newEnd. Coordinates before start
// are unchanged, coordinates inside the replaced range move to newEnd.
func (cs *Cursors) AdjustForReplace(start, oldEnd, newEnd Coordinate) {
	shift := func(c Coordinate) Coordinate {
		switch {
		case !start.Less(c):
			return c
		case c.Less(oldEnd):
			return newEnd
		}
		if c.Line == oldEnd.Line {
			c.Column += newEnd.Column - oldEnd.Column
		}
		c.Line += newEnd.Line - oldEnd.Line
		return c
	}
	for i := range cs.cursors {
		c := &cs.cursors[i]
		s, e := shift(c.Start), shift(c.End)
		if s != c.Start || e != c.End {
			c.SetSelection(s, e)
		}
	}
}

func shiftInsert(c Coordinate, line, lines, columns int) Coordinate {
	if c.Line == line {
		c.Column += columns
	}
	c.Line += lines
	return c
}

func shiftDelete(c Coordinate, line, lines, columns int) Coordinate {
	if c.Line == line {
		c.Column -= columns
	}
	c.Line -= lines
	return c
}
