package markdown

import "github.com/andrewmd5/dawn-sub002/internal/gapbuffer"

// CodeBlockMatch is the result of CheckCodeBlock: the fenced content
// (between the opening and closing fence lines), the language
// identifier from the opening fence, and the total length consumed
// (opening fence through and including the closing fence line).
type CodeBlockMatch struct {
	Content  Span
	Lang     Span
	TotalLen int
}

// CheckCodeBlock recognizes a fenced code block: an opening fence at a
// line start (```` ``` ```` after 0-3 leading spaces) with an optional
// language identifier to end of line, extending to a matching closing
// fence at the start of a later line. A missing closing fence means no
// match — this editor does not treat the document's end as an
// implicit close, so an unterminated fence is parsed as ordinary
// paragraph text until a closing fence exists.
func CheckCodeBlock(buf *gapbuffer.Buffer, pos int) (CodeBlockMatch, bool) {
	if !atLineStart(buf, pos) {
		return CodeBlockMatch{}, false
	}
	n := buf.Len()
	p, indent := skipLeadingIndent(buf, pos, 3)
	if indent > 3 || p >= n || buf.At(p) != '`' {
		return CodeBlockMatch{}, false
	}

	fenceLen := 0
	for p+fenceLen < n && buf.At(p+fenceLen) == '`' {
		fenceLen++
	}
	if fenceLen < 3 {
		return CodeBlockMatch{}, false
	}

	langStart := p + fenceLen
	langEndLine := lineEnd(buf, langStart)
	langEnd := langEndLine
	// Trim trailing whitespace from the lang span; backticks in the
	// info string are not checked for.
	for langEnd > langStart && isSpaceOrTab(buf.At(langEnd-1)) {
		langEnd--
	}
	langStart2 := langStart
	for langStart2 < langEnd && isSpaceOrTab(buf.At(langStart2)) {
		langStart2++
	}
	lang := Span{Start: langStart2, End: langEnd}

	contentStart := langEndLine
	if contentStart < n {
		contentStart++ // past the opening fence's newline
	}

	// Scan forward for a closing fence: same or greater run length of
	// the same delimiter byte, at a line start, with only leading
	// spaces before it and only spaces/tabs after it.
	i := contentStart
	for i <= n {
		ls := i
		q, cIndent := skipLeadingIndent(buf, ls, 3)
		if cIndent <= 3 {
			run := 0
			for q+run < n && buf.At(q+run) == '`' {
				run++
			}
			if run >= fenceLen {
				rest := q + run
				le := lineEnd(buf, rest)
				trailingOK := true
				for k := rest; k < le; k++ {
					if !isSpaceOrTab(buf.At(k)) {
						trailingOK = false
						break
					}
				}
				if trailingOK {
					content := Span{Start: contentStart, End: ls}
					total := le - pos
					if le < n {
						total++ // include closing fence's newline
					}
					return CodeBlockMatch{Content: content, Lang: lang, TotalLen: total}, true
				}
			}
		}
		nextLE := lineEnd(buf, i)
		if nextLE >= n {
			break
		}
		i = nextLE + 1
	}

	return CodeBlockMatch{}, false
}
