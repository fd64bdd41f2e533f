package markdown

import "github.com/andrewmd5/dawn-sub002/internal/gapbuffer"

// CheckInlineMath recognizes an inline math span in one of three
// forms: "$`...`$" (dollar-outer, backtick-inner, for content
// containing a bare "$"), "$...$" (not "$$"; a preceding '\' suppresses
// the match, and inside the span '\' escapes the next byte), or
// "\(...\)". None of the forms may contain a bare newline.
func CheckInlineMath(buf *gapbuffer.Buffer, pos int) (Match1, bool) {
	n := buf.Len()
	end := lineEnd(buf, pos)

	if pos+1 < n && buf.At(pos) == '$' && buf.At(pos+1) == '`' {
		contentStart := pos + 2
		for i := contentStart; i+1 < end; i++ {
			if buf.At(i) == '`' && buf.At(i+1) == '$' {
				if i == contentStart {
					return Match1{}, false
				}
				return Match1{Span: Span{Start: contentStart, End: i}, TotalLen: i + 2 - pos}, true
			}
		}
		return Match1{}, false
	}

	if pos < n && buf.At(pos) == '$' {
		if pos+1 < n && buf.At(pos+1) == '$' {
			return Match1{}, false // "$$" is block math, not inline
		}
		if pos > 0 && buf.At(pos-1) == '\\' {
			return Match1{}, false // suppressed by a preceding backslash
		}
		contentStart := pos + 1
		for i := contentStart; i < end; {
			c := buf.At(i)
			if c == '\\' && i+1 < end {
				i += 2
				continue
			}
			if c == '$' {
				if i == contentStart {
					return Match1{}, false
				}
				return Match1{Span: Span{Start: contentStart, End: i}, TotalLen: i + 1 - pos}, true
			}
			i++
		}
		return Match1{}, false
	}

	if pos+1 < n && buf.At(pos) == '\\' && buf.At(pos+1) == '(' {
		contentStart := pos + 2
		for i := contentStart; i+1 < end; i++ {
			if buf.At(i) == '\\' && buf.At(i+1) == ')' {
				return Match1{Span: Span{Start: contentStart, End: i}, TotalLen: i + 2 - pos}, true
			}
		}
		return Match1{}, false
	}

	return Match1{}, false
}

// CheckBlockMath recognizes a block math element in one of two
// openers: "$$" or "\[", each closed by its counterpart ("$$" or
// "\]"). Both the single-line form ("$$...$$" entirely on one line)
// and the multi-line form (opener alone on its line, content on
// following lines, closer alone on its own line) are recognized.
func CheckBlockMath(buf *gapbuffer.Buffer, pos int) (Match1, bool) {
	if !atLineStart(buf, pos) {
		return Match1{}, false
	}
	n := buf.Len()
	p, indent := skipLeadingIndent(buf, pos, 3)
	if indent > 3 || p >= n {
		return Match1{}, false
	}

	var opener, closer string
	switch {
	case p+1 < n && buf.At(p) == '$' && buf.At(p+1) == '$':
		opener, closer = "$$", "$$"
	case p+1 < n && buf.At(p) == '\\' && buf.At(p+1) == '[':
		opener, closer = "\\[", "\\]"
	default:
		return Match1{}, false
	}

	openerEnd := p + len(opener)
	lineEndPos := lineEnd(buf, p)

	// Single-line form: closer appears later on the same line.
	for i := openerEnd; i+len(closer) <= lineEndPos; i++ {
		if matchLiteral(buf, i, closer) {
			content := Span{Start: openerEnd, End: i}
			total := i + len(closer) - pos
			if i+len(closer) < n && buf.At(i+len(closer)) == '\n' {
				// leave trailing newline for the caller to treat as a
				// normal block boundary
			}
			return Match1{Span: content, TotalLen: total}, true
		}
	}

	// Multi-line form: opener must be alone on its line.
	rest := openerEnd
	for rest < lineEndPos && isSpaceOrTab(buf.At(rest)) {
		rest++
	}
	if rest != lineEndPos {
		return Match1{}, false
	}

	contentStart := lineEndPos
	if contentStart < n {
		contentStart++
	}

	i := contentStart
	for i <= n {
		ls := i
		le := lineEnd(buf, ls)
		trimmed := ls
		for trimmed < le && isSpaceOrTab(buf.At(trimmed)) {
			trimmed++
		}
		if matchLiteral(buf, trimmed, closer) && trimmed+len(closer) == le {
			content := Span{Start: contentStart, End: ls}
			total := le - pos
			if le < n {
				total++
			}
			return Match1{Span: content, TotalLen: total}, true
		}
		if le >= n {
			break
		}
		i = le + 1
	}

	return Match1{}, false
}

func matchLiteral(buf *gapbuffer.Buffer, pos int, s string) bool {
	n := buf.Len()
	if pos+len(s) > n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if buf.At(pos+i) != s[i] {
			return false
		}
	}
	return true
}
