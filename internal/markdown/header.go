package markdown

import "github.com/andrewmd5/dawn-sub002/internal/gapbuffer"

// CheckHeader recognizes an ATX header at a line start: 0-3 leading
// spaces/tabs, 1-6 '#' bytes, then a required space/tab/newline. It
// returns the header level and the byte offset where content begins
// (after the '#'s and following whitespace).
func CheckHeader(buf *gapbuffer.Buffer, pos int) (level, contentStart int, ok bool) {
	if !atLineStart(buf, pos) {
		return 0, 0, false
	}
	n := buf.Len()
	p, indent := skipLeadingIndent(buf, pos, 4)
	if indent >= 4 {
		return 0, 0, false // indented code, not a header
	}

	count := 0
	for p+count < n && buf.At(p+count) == '#' {
		count++
		if count > 6 {
			return 0, 0, false
		}
	}
	if count == 0 {
		return 0, 0, false
	}

	after := p + count
	if after >= n || buf.At(after) == '\n' {
		return count, after, true
	}
	if !isSpaceOrTab(buf.At(after)) {
		return 0, 0, false
	}
	for after < n && isSpaceOrTab(buf.At(after)) {
		after++
	}
	return count, after, true
}

// CheckSetextUnderline recognizes a setext underline line: after 0-3
// leading spaces, a run of '=' (level 1) or '-' (level 2), optionally
// followed by trailing spaces, then end of line. Returns the level and
// the total length of the underline line (including its newline, if
// present).
func CheckSetextUnderline(buf *gapbuffer.Buffer, pos int) (level, totalLen int, ok bool) {
	if !atLineStart(buf, pos) {
		return 0, 0, false
	}
	n := buf.Len()
	p, indent := skipLeadingIndent(buf, pos, 3)
	if indent > 3 || p >= n {
		return 0, 0, false
	}

	marker := buf.At(p)
	if marker != '=' && marker != '-' {
		return 0, 0, false
	}
	q := p
	for q < n && buf.At(q) == marker {
		q++
	}
	runLen := q - p
	if runLen == 0 {
		return 0, 0, false
	}
	// trailing spaces only
	for q < n && buf.At(q) == ' ' {
		q++
	}
	if q < n && buf.At(q) != '\n' {
		return 0, 0, false
	}
	end := q
	if q < n {
		end++ // include newline
	}
	if marker == '=' {
		return 1, end - pos, true
	}
	return 2, end - pos, true
}

// CheckHeadingID finds a "{#id}" heading-ID marker on the current
// line, where id is any run of bytes not containing '}' or a newline.
func CheckHeadingID(buf *gapbuffer.Buffer, pos int) (Span, bool) {
	end := lineEnd(buf, pos)
	start := lineStart(buf, pos)
	for i := start; i < end; i++ {
		if buf.At(i) != '{' {
			continue
		}
		if i+1 >= end || buf.At(i+1) != '#' {
			continue
		}
		j := i + 2
		for j < end && buf.At(j) != '}' {
			j++
		}
		if j >= end {
			continue
		}
		if j == i+2 {
			continue // empty id
		}
		return Span{Start: i + 2, End: j}, true
	}
	return Span{}, false
}
