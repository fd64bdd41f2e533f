package markdown

import "github.com/andrewmd5/dawn-sub002/internal/gapbuffer"

// CheckHorizontalRule recognizes a thematic break line: after 0-3
// leading spaces, at least 3 of the same marker byte (-, *, or _),
// optionally interspersed with spaces/tabs, running to end of line.
func CheckHorizontalRule(buf *gapbuffer.Buffer, pos int) (totalLen int, ok bool) {
	if !atLineStart(buf, pos) {
		return 0, false
	}
	n := buf.Len()
	p, indent := skipLeadingIndent(buf, pos, 3)
	if indent > 3 || p >= n {
		return 0, false
	}

	marker := buf.At(p)
	if marker != '-' && marker != '*' && marker != '_' {
		return 0, false
	}

	count := 0
	i := p
	for i < n {
		b := buf.At(i)
		if b == marker {
			count++
			i++
			continue
		}
		if b == ' ' || b == '\t' {
			i++
			continue
		}
		break
	}
	if count < 3 {
		return 0, false
	}
	if i < n && buf.At(i) != '\n' {
		return 0, false
	}
	end := i
	if i < n {
		end++
	}
	return end - pos, true
}

// CheckBlockquote recognizes a blockquote marker at a line start: 0-3
// leading spaces, a '>' byte, and an optional single following space.
// Returns the offset where the quoted content begins.
func CheckBlockquote(buf *gapbuffer.Buffer, pos int) (contentStart int, ok bool) {
	if !atLineStart(buf, pos) {
		return 0, false
	}
	n := buf.Len()
	p, indent := skipLeadingIndent(buf, pos, 3)
	if indent > 3 || p >= n || buf.At(p) != '>' {
		return 0, false
	}
	p++
	if p < n && buf.At(p) == ' ' {
		p++
	}
	return p, true
}
