package markdown

import "github.com/andrewmd5/dawn-sub002/internal/gapbuffer"

// CheckLink recognizes an inline link "[text](url)" starting at pos.
// The text span excludes the brackets, the url span excludes the
// parens. Neither span may contain a newline. A title in quotes after
// the url ("[text](url \"title\")") is consumed as part of the url's
// closing but not included in the url span. A '[' immediately preceded
// by '!' opens an image, not a link, and is not matched here.
func CheckLink(buf *gapbuffer.Buffer, pos int) (Match2, bool) {
	n := buf.Len()
	if pos >= n || buf.At(pos) != '[' {
		return Match2{}, false
	}
	if pos > 0 && buf.At(pos-1) == '!' {
		return Match2{}, false
	}
	end := lineEnd(buf, pos)

	textEnd := -1
	for i := pos + 1; i < end; i++ {
		if buf.At(i) == ']' {
			textEnd = i
			break
		}
	}
	if textEnd < 0 {
		return Match2{}, false
	}
	if textEnd+1 >= end || buf.At(textEnd+1) != '(' {
		return Match2{}, false
	}

	urlStart := textEnd + 2
	depth := 1
	i := urlStart
	urlEnd := -1
	for i < end {
		switch buf.At(i) {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				urlEnd = i
			}
		}
		if urlEnd >= 0 {
			break
		}
		i++
	}
	if urlEnd < 0 {
		return Match2{}, false
	}

	rawURLEnd := urlEnd
	// Strip an optional trailing "title" in quotes from the url span.
	j := urlStart
	for j < rawURLEnd && buf.At(j) != '"' && buf.At(j) != '\'' {
		j++
	}
	if j < rawURLEnd {
		for j > urlStart && isSpaceOrTab(buf.At(j-1)) {
			j--
		}
		rawURLEnd = j
	}

	return Match2{
		Spans: [2]Span{
			{Start: pos + 1, End: textEnd},
			{Start: urlStart, End: rawURLEnd},
		},
		TotalLen: urlEnd + 1 - pos,
	}, true
}

// CheckReferenceLink recognizes "[text][id]" or the shorthand
// "[text][]" (where id defaults to text). The returned spans are the
// text and the id (id span equals the text span for the shorthand
// form, by position, not by value — callers resolve through a
// LinkRefs table keyed case-insensitively on the id's text).
func CheckReferenceLink(buf *gapbuffer.Buffer, pos int) (Match2, bool) {
	n := buf.Len()
	if pos >= n || buf.At(pos) != '[' {
		return Match2{}, false
	}
	end := lineEnd(buf, pos)

	textEnd := -1
	for i := pos + 1; i < end; i++ {
		if buf.At(i) == ']' {
			textEnd = i
			break
		}
	}
	if textEnd < 0 {
		return Match2{}, false
	}
	if textEnd+1 >= end || buf.At(textEnd+1) != '[' {
		return Match2{}, false
	}

	idStart := textEnd + 2
	idEnd := -1
	for i := idStart; i < end; i++ {
		if buf.At(i) == ']' {
			idEnd = i
			break
		}
	}
	if idEnd < 0 {
		return Match2{}, false
	}

	textSpan := Span{Start: pos + 1, End: textEnd}
	idSpan := Span{Start: idStart, End: idEnd}
	if idSpan.Len() == 0 {
		idSpan = textSpan // shorthand: "[]" means use text as the id
	}

	return Match2{
		Spans:    [2]Span{textSpan, idSpan},
		TotalLen: idEnd + 1 - pos,
	}, true
}

// CheckFootnoteRef recognizes an inline footnote reference "[^id]".
func CheckFootnoteRef(buf *gapbuffer.Buffer, pos int) (Match1, bool) {
	n := buf.Len()
	if pos+1 >= n || buf.At(pos) != '[' || buf.At(pos+1) != '^' {
		return Match1{}, false
	}
	end := lineEnd(buf, pos)
	idStart := pos + 2
	idEnd := -1
	for i := idStart; i < end; i++ {
		if buf.At(i) == ']' {
			idEnd = i
			break
		}
	}
	if idEnd < 0 || idEnd == idStart {
		return Match1{}, false
	}
	return Match1{Span: Span{Start: idStart, End: idEnd}, TotalLen: idEnd + 1 - pos}, true
}

// CheckFootnoteDef recognizes a footnote definition at a line start:
// "[^id]:" followed by the definition content to end of line.
func CheckFootnoteDef(buf *gapbuffer.Buffer, pos int) (id Span, content Span, ok bool) {
	if !atLineStart(buf, pos) {
		return Span{}, Span{}, false
	}
	n := buf.Len()
	if pos+1 >= n || buf.At(pos) != '[' || buf.At(pos+1) != '^' {
		return Span{}, Span{}, false
	}
	end := lineEnd(buf, pos)
	idStart := pos + 2
	idEnd := -1
	for i := idStart; i < end; i++ {
		if buf.At(i) == ']' {
			idEnd = i
			break
		}
	}
	if idEnd < 0 || idEnd == idStart {
		return Span{}, Span{}, false
	}
	if idEnd+1 >= end || buf.At(idEnd+1) != ':' {
		return Span{}, Span{}, false
	}
	contentStart := idEnd + 2
	for contentStart < end && isSpaceOrTab(buf.At(contentStart)) {
		contentStart++
	}
	return Span{Start: idStart, End: idEnd}, Span{Start: contentStart, End: end}, true
}
