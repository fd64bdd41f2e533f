package markdown

import "github.com/andrewmd5/dawn-sub002/internal/gapbuffer"

// lineEnd returns the offset of the '\n' that terminates the line
// starting at or containing pos, or buf.Len() if the line is the
// document's last, unterminated line.
func lineEnd(buf *gapbuffer.Buffer, pos int) int {
	n := buf.Len()
	for i := pos; i < n; i++ {
		if buf.At(i) == '\n' {
			return i
		}
	}
	return n
}

// lineStart returns the offset of the first byte of the line
// containing pos.
func lineStart(buf *gapbuffer.Buffer, pos int) int {
	for i := pos; i > 0; i-- {
		if buf.At(i-1) == '\n' {
			return i
		}
	}
	return 0
}

// atLineStart reports whether pos is the first byte of its line.
func atLineStart(buf *gapbuffer.Buffer, pos int) bool {
	return pos == 0 || buf.At(pos-1) == '\n'
}

// skipLeadingIndent consumes up to max spaces/tabs (tab counts as 4
// columns) from pos, returning the new position and the indent width
// in columns. Stops at the first non-space/tab byte or when max would
// be exceeded.
func skipLeadingIndent(buf *gapbuffer.Buffer, pos, max int) (next int, width int) {
	n := buf.Len()
	for pos < n && width < max {
		switch buf.At(pos) {
		case ' ':
			width++
			pos++
		case '\t':
			add := 4 - (width % 4)
			if width+add > max {
				return pos, width
			}
			width += add
			pos++
		default:
			return pos, width
		}
	}
	return pos, width
}

func isSpaceOrTab(b byte) bool {
	return b == ' ' || b == '\t'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || isDigit(b)
}
