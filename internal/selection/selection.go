// Package selection implements the editor's anchor+cursor selection
// model: a lazily-normalized range that only exists while the caller
// is actively selecting.
package selection

// Selection tracks an anchor and cursor byte offset, plus whether the
// caller is currently extending the selection, addressed by byte
// offset into a gapbuffer.Buffer spanning the whole document.
type Selection struct {
	anchor    int
	cursor    int
	selecting bool
}

// New returns a Selection with both anchor and cursor at pos and no
// active selection.
func New(pos int) Selection {
	return Selection{anchor: pos, cursor: pos}
}

// Cursor returns the current cursor position.
func (s Selection) Cursor() int {
	return s.cursor
}

// SetCursor moves the cursor to pos. If selecting is true and no
// selection was in progress, the anchor is set to the cursor's prior
// position before moving — the anchor is fixed at the point where
// selecting transitions false to true, not re-anchored on every move.
func (s *Selection) SetCursor(pos int, selecting bool) {
	if selecting && !s.selecting {
		s.anchor = s.cursor
	}
	s.selecting = selecting
	s.cursor = pos
}

// Collapse drops any active selection, moving the anchor to the
// cursor's current position.
func (s *Selection) Collapse() {
	s.selecting = false
	s.anchor = s.cursor
}

// HasSelection reports whether the normalized range is non-empty.
func (s Selection) HasSelection() bool {
	lo, hi := s.GetSelection()
	return lo < hi
}

// GetSelection returns the normalized (lo, hi) range. When selecting
// is false, lo == hi == cursor, per spec.
func (s Selection) GetSelection() (lo, hi int) {
	if !s.selecting {
		return s.cursor, s.cursor
	}
	if s.anchor <= s.cursor {
		return s.anchor, s.cursor
	}
	return s.cursor, s.anchor
}
