package field

// Editing helpers for hosts without a native text widget. Each one builds
// the text a widget would hold after the keystroke and reports it through
// HandleTextChanged. They do nothing while the static display is shown.

// Insert replaces the selection with text.
func (f *Field) Insert(text string) bool {
	if f.staticEnabled {
		return false
	}
	s, e := f.Selection()
	d := []rune(f.display)
	after := string(d[:s]) + text + string(d[e:])
	f.HandleTextChanged(after, s, e-s, len([]rune(text)))
	return true
}

// Backspace deletes the selection, or the rune before the cursor.
func (f *Field) Backspace() bool {
	if f.staticEnabled {
		return false
	}
	s, e := f.Selection()
	if s == e {
		if s == 0 {
			return false
		}
		s--
	}
	f.remove(s, e)
	return true
}

// Delete deletes the selection, or the rune under the cursor.
func (f *Field) Delete() bool {
	if f.staticEnabled {
		return false
	}
	s, e := f.Selection()
	if s == e {
		if e >= len([]rune(f.display)) {
			return false
		}
		e++
	}
	f.remove(s, e)
	return true
}

// Clear removes the whole text.
func (f *Field) Clear() bool {
	if f.staticEnabled || f.display == "" {
		return false
	}
	f.remove(0, len([]rune(f.display)))
	return true
}

func (f *Field) remove(s, e int) {
	d := []rune(f.display)
	f.HandleTextChanged(string(d[:s])+string(d[e:]), s, e-s, 0)
}

// MoveCursor moves the cursor by delta runes and collapses the selection.
func (f *Field) MoveCursor(delta int) { f.MoveTo(f.head + delta) }

// MoveTo places the cursor at pos and collapses the selection.
func (f *Field) MoveTo(pos int) {
	pos = clampPos(pos, f.display)
	f.anchor, f.head = pos, pos
}

// ExtendSelection moves the cursor by delta runes keeping the other end of
// the selection in place.
func (f *Field) ExtendSelection(delta int) {
	f.head = clampPos(f.head+delta, f.display)
}

// Select sets the selection to [start, end).
func (f *Field) Select(start, end int) {
	f.anchor = clampPos(start, f.display)
	f.head = clampPos(end, f.display)
}
