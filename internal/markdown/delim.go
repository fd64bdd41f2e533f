package markdown

import "github.com/andrewmd5/dawn-sub002/internal/gapbuffer"

// CheckDelim examines up to 3 bytes at pos and, if they form a
// recognized inline delimiter, returns the style it opens/closes and
// how many bytes the delimiter occupies. It never crosses a newline:
// a delimiter's bytes must all lie on the line containing pos.
func CheckDelim(buf *gapbuffer.Buffer, pos int) (DelimMatch, bool) {
	n := buf.Len()
	if pos >= n {
		return DelimMatch{}, false
	}
	end := lineEnd(buf, pos)

	b0 := buf.At(pos)
	b1 := byte(0)
	if pos+1 < end {
		b1 = buf.At(pos + 1)
	}
	b2 := byte(0)
	if pos+2 < end {
		b2 = buf.At(pos + 2)
	}

	switch {
	case b0 == '*' && b1 == '*' && b2 == '*':
		return DelimMatch{Style: Bold | Italic, DelimLen: 3}, true
	case b0 == '*' && b1 == '*':
		return DelimMatch{Style: Bold, DelimLen: 2}, true
	case b0 == '*':
		return DelimMatch{Style: Italic, DelimLen: 1}, true
	case b0 == '_' && b1 == '_':
		return DelimMatch{Style: Underline, DelimLen: 2}, true
	case b0 == '=' && b1 == '=' && b2 == '=':
		return DelimMatch{Style: Underline, DelimLen: 3}, true
	case b0 == '=' && b1 == '=':
		return DelimMatch{Style: Mark, DelimLen: 2}, true
	case b0 == '~' && b1 == '~':
		return DelimMatch{Style: Strike, DelimLen: 2}, true
	case b0 == '~':
		return DelimMatch{Style: Sub, DelimLen: 1}, true
	case b0 == '^':
		return DelimMatch{Style: Sup, DelimLen: 1}, true
	case b0 == '`' && b1 != '`':
		return DelimMatch{Style: Code, DelimLen: 1}, true
	}
	return DelimMatch{}, false
}

// FindClosing scans forward from pos+dlen for a delimiter matching
// (style, dlen), returning its offset. Code spans never cross a
// newline; other spans stop at a blank line ("\n\n") or at buf.Len(),
// whichever comes first.
//
// Per spec: if (style, d) = CheckDelim(buf, p) and q =
// FindClosing(buf, p, style, d), then q >= p+d and CheckDelim(buf, q)
// == (style, d).
func FindClosing(buf *gapbuffer.Buffer, pos int, style Style, dlen int) (int, bool) {
	n := buf.Len()
	scanEnd := n
	if style == Code {
		scanEnd = lineEnd(buf, pos)
	}

	for i := pos + dlen; i < scanEnd; i++ {
		if style != Code && buf.At(i) == '\n' {
			// Paragraph breaks (blank line) terminate the scan for
			// non-code spans; a single newline inside a paragraph is
			// fine and recognizers further up bound by line already
			// when needed.
			if i+1 < n && buf.At(i+1) == '\n' {
				return 0, false
			}
		}
		m, ok := CheckDelim(buf, i)
		if ok && m.Style == style && m.DelimLen == dlen {
			return i, true
		}
	}
	return 0, false
}
