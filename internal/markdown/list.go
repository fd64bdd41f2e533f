package markdown

import "github.com/andrewmd5/dawn-sub002/internal/gapbuffer"

// CheckListMarker recognizes a list item marker at a line start: 0-3
// leading spaces, then either an unordered marker (-, *, +) or an
// ordered marker (a run of digits followed by '.' or ')'), followed by
// required whitespace. A task-list checkbox ("[ ]" or "[x]"/"[X]")
// immediately after the marker's whitespace is also recognized and
// reported via Kind.
func CheckListMarker(buf *gapbuffer.Buffer, pos int) (ListMatch, bool) {
	if !atLineStart(buf, pos) {
		return ListMatch{}, false
	}
	n := buf.Len()
	p, indent := skipLeadingIndent(buf, pos, 3)
	if indent > 3 || p >= n {
		return ListMatch{}, false
	}

	var kind ListKind
	markerEnd := p

	switch b := buf.At(p); {
	case b == '-' || b == '*' || b == '+':
		kind = ListUnordered
		markerEnd = p + 1
	case isDigit(b):
		digitsEnd := p
		for digitsEnd < n && isDigit(buf.At(digitsEnd)) {
			digitsEnd++
		}
		if digitsEnd-p > 9 {
			return ListMatch{}, false // unreasonably long ordinal
		}
		if digitsEnd >= n || (buf.At(digitsEnd) != '.' && buf.At(digitsEnd) != ')') {
			return ListMatch{}, false
		}
		kind = ListOrdered
		markerEnd = digitsEnd + 1
	default:
		return ListMatch{}, false
	}

	if markerEnd >= n || !isSpaceOrTab(buf.At(markerEnd)) {
		// A marker at end-of-line with no content is still a valid,
		// empty list item.
		if markerEnd < n && buf.At(markerEnd) != '\n' {
			return ListMatch{}, false
		}
	}

	contentStart := markerEnd
	for contentStart < n && isSpaceOrTab(buf.At(contentStart)) {
		contentStart++
	}

	// Task-list checkbox: "[ ]" or "[x]"/"[X]" followed by a space.
	if contentStart+2 < n && buf.At(contentStart) == '[' && buf.At(contentStart+2) == ']' {
		mark := buf.At(contentStart + 1)
		if mark == ' ' || mark == 'x' || mark == 'X' {
			after := contentStart + 3
			if after < n && isSpaceOrTab(buf.At(after)) {
				after++
				if mark == ' ' {
					kind = ListTaskUnchecked
				} else {
					kind = ListTaskChecked
				}
				return ListMatch{
					Kind:         kind,
					Indent:       indent,
					MarkerLen:    after - pos,
					ContentStart: after,
				}, true
			}
		}
	}

	return ListMatch{
		Kind:         kind,
		Indent:       indent,
		MarkerLen:    contentStart - pos,
		ContentStart: contentStart,
	}, true
}
