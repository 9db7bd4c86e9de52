package engine

// Brackets returns the matched bracket pairs sorted by opener, rebuilding
// the index if the document changed.
func (e *Editor) Brackets() []Pair {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ensureBrackets()
	pairs := e.brackets.Pairs()
	out := make([]Pair, len(pairs))
	copy(out, pairs)
	return out
}

// BracketErrors returns mismatched pairs and unmatched brackets. The
// missing side of an unmatched bracket is document.Invalid.
func (e *Editor) BracketErrors() []Pair {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ensureBrackets()
	errs := e.brackets.Errors()
	out := make([]Pair, len(errs))
	copy(out, errs)
	return out
}

// MatchingBracket returns the position of the bracket paired with the one
// at c.
func (e *Editor) MatchingBracket(c Coordinate) (Coordinate, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ensureBrackets()
	p, ok := e.brackets.PairAt(c)
	if !ok {
		return c, false
	}
	if p.Start == c {
		return p.End, true
	}
	return p.Start, true
}

// SelectToMatchingBracket selects, for every cursor, the bracket pair it
// sits on including both brackets, or else the inside of the innermost
// pair enclosing it. It returns false if no cursor changed.
func (e *Editor) SelectToMatchingBracket() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ensureBrackets()
	changed := false
	for i := 0; i < e.cursors.Len(); i++ {
		c := e.cursors.At(i)
		var start, end Coordinate
		if p, ok := e.brackets.PairAt(c.End); ok {
			start, end = p.Outer()
		} else if p, ok := e.brackets.FindEnclosingBrackets(c.End); ok {
			start, end = p.Inner()
		} else {
			continue
		}
		c.SetSelection(start, end)
		changed = true
	}
	e.cursors.Update()
	return changed
}

// GrowSelectionToCurlyBrackets widens every selection by one step: to the
// inside of the innermost enclosing {} pair, or to the pair itself when
// the inside is already selected. It returns false if no cursor changed.
func (e *Editor) GrowSelectionToCurlyBrackets() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ensureBrackets()
	changed := false
	for i := 0; i < e.cursors.Len(); i++ {
		c := e.cursors.At(i)
		start, end := c.SelectionStart(), c.SelectionEnd()
		p, ok := e.brackets.FindEnclosingCurlyBrackets(start, end)
		if !ok {
			continue
		}
		innerStart, innerEnd := p.Inner()
		if start == innerStart && end == innerEnd {
			start, end = p.Outer()
		} else {
			start, end = innerStart, innerEnd
		}
		c.SetSelection(start, end)
		changed = true
	}
	e.cursors.Update()
	return changed
}

// ShrinkSelectionToCurlyBrackets narrows every selection by one step: to
// the first {} pair inside it, or to the inside of that pair when the pair
// itself is selected. It returns false if no cursor changed.
func (e *Editor) ShrinkSelectionToCurlyBrackets() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ensureBrackets()
	changed := false
	for i := 0; i < e.cursors.Len(); i++ {
		c := e.cursors.At(i)
		start, end := c.SelectionStart(), c.SelectionEnd()
		p, ok := e.brackets.FindInnerCurlyBrackets(start, end)
		if !ok {
			continue
		}
		outerStart, outerEnd := p.Outer()
		if start == outerStart && end == outerEnd {
			start, end = p.Inner()
		} else {
			start, end = outerStart, outerEnd
		}
		c.SetSelection(start, end)
		changed = true
	}
	e.cursors.Update()
	return changed
}
