package document

import "fmt"

// Coordinate is a line/visible-column position in a Document.
type Coordinate struct {
	Line   int
	Column int
}

// Invalid is the sentinel for "no position".
var Invalid = Coordinate{Line: -1, Column: -1}

// Coord is shorthand for Coordinate{Line: line, Column: column}.
func Coord(line, column int) Coordinate {
	return Coordinate{Line: line, Column: column}
}

// IsValid reports whether c is not negative in either component.
func (c Coordinate) IsValid() bool {
	return c.Line >= 0 && c.Column >= 0
}

// Compare returns -1, 0 or 1 comparing c to other by line, then column.
func (c Coordinate) Compare(other Coordinate) int {
	switch {
	case c.Line < other.Line:
		return -1
	case c.Line > other.Line:
		return 1
	case c.Column < other.Column:
		return -1
	case c.Column > other.Column:
		return 1
	}
	return 0
}

// Less reports whether c sorts before other.
func (c Coordinate) Less(other Coordinate) bool {
	return c.Compare(other) < 0
}

// Min returns the smaller of two coordinates.
func Min(a, b Coordinate) Coordinate {
	if b.Less(a) {
		return b
	}
	return a
}

// Max returns the larger of two coordinates.
func Max(a, b Coordinate) Coordinate {
	if a.Less(b) {
		return b
	}
	return a
}

// String returns a string representation of the coordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Line, c.Column)
}
