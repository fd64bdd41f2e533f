package markdown

import "github.com/andrewmd5/dawn-sub002/internal/gapbuffer"

// findElementAtWindow bounds how far back FindElementAt scans looking
// for an opener; elements longer than this are not found by cursor
// position (they're still recognized by a direct scan from their own
// start, e.g. during block parsing).
const findElementAtWindow = 100

// FindElementAt reports whether pos falls inside a recognized inline
// element (image, link, footnote reference, inline math, or autolink)
// by scanning backward from pos for a plausible opener and checking
// whether that element's span covers pos. It returns the element kind
// and the opener's offset; ElementNone if no covering element is
// found within the scan window.
func FindElementAt(buf *gapbuffer.Buffer, pos int) (ElementKind, int) {
	lowerBound := pos - findElementAtWindow
	if lowerBound < 0 {
		lowerBound = 0
	}
	ls := lineStart(buf, pos)
	if ls > lowerBound {
		lowerBound = ls
	}

	for start := pos; start >= lowerBound; start-- {
		b := buf.At(start)
		switch b {
		case '!':
			if m, ok := CheckImage(buf, start); ok && covers(start, m.TotalLen, pos) {
				return ElementImage, start
			}
		case '[':
			if m, ok := CheckFootnoteRef(buf, start); ok && covers(start, m.TotalLen, pos) {
				return ElementFootnoteRef, start
			}
			if m, ok := CheckLink(buf, start); ok && covers(start, m.TotalLen, pos) {
				return ElementLink, start
			}
			if m, ok := CheckReferenceLink(buf, start); ok && covers(start, m.TotalLen, pos) {
				return ElementLink, start
			}
		case '$', '`':
			if m, ok := CheckInlineMath(buf, start); ok && covers(start, m.TotalLen, pos) {
				return ElementInlineMath, start
			}
		case '\\':
			if m, ok := CheckInlineMath(buf, start); ok && covers(start, m.TotalLen, pos) {
				return ElementInlineMath, start
			}
		case '<':
			if m, ok := CheckAutolink(buf, start); ok && covers(start, m.TotalLen, pos) {
				return ElementAutolink, start
			}
		}
	}
	return ElementNone, -1
}

func covers(start, totalLen, pos int) bool {
	return pos >= start && pos < start+totalLen
}
