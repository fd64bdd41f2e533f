package markdown

import "github.com/andrewmd5/dawn-sub002/internal/gapbuffer"

// CheckImage recognizes "![alt](path)", with an optional quoted title
// and an optional extension dimension suffix
// "{ width=N[px|%] height=N[px|%] }" (a non-standard extension this
// editor uses to carry terminal-cell sizing hints through to the
// render stage, since images ultimately render as a sized placeholder
// rather than pixels). A unit-less value defaults to px; a "%" value
// is stored as a negative integer. Width/Height are 0 when absent.
func CheckImage(buf *gapbuffer.Buffer, pos int) (ImageAttrs, bool) {
	n := buf.Len()
	if pos >= n || buf.At(pos) != '!' {
		return ImageAttrs{}, false
	}
	if pos+1 >= n || buf.At(pos+1) != '[' {
		return ImageAttrs{}, false
	}
	end := lineEnd(buf, pos)

	altStart := pos + 2
	altEnd := -1
	for i := altStart; i < end; i++ {
		if buf.At(i) == ']' {
			altEnd = i
			break
		}
	}
	if altEnd < 0 {
		return ImageAttrs{}, false
	}
	if altEnd+1 >= end || buf.At(altEnd+1) != '(' {
		return ImageAttrs{}, false
	}

	pathStart := altEnd + 2
	depth := 1
	i := pathStart
	parenEnd := -1
	for i < end {
		switch buf.At(i) {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				parenEnd = i
			}
		}
		if parenEnd >= 0 {
			break
		}
		i++
	}
	if parenEnd < 0 {
		return ImageAttrs{}, false
	}

	pathEnd := parenEnd
	var title Span

	// Optional quoted title: path ends, whitespace, "title".
	j := pathStart
	for j < parenEnd && buf.At(j) != '"' {
		j++
	}
	if j < parenEnd {
		titleStart := j + 1
		k := titleStart
		for k < parenEnd && buf.At(k) != '"' {
			k++
		}
		if k < parenEnd {
			title = Span{Start: titleStart, End: k}
			pe := j
			for pe > pathStart && isSpaceOrTab(buf.At(pe-1)) {
				pe--
			}
			pathEnd = pe
		}
	}

	totalLen := parenEnd + 1 - pos
	width, height := 0, 0

	// Optional "{ width=N[px|%] height=N[px|%] }" dimension suffix,
	// separated from the closing paren by spaces only.
	suf := parenEnd + 1
	for suf < end && buf.At(suf) == ' ' {
		suf++
	}
	if suf < end && buf.At(suf) == '{' {
		closeBrace := -1
		for k := suf + 1; k < end; k++ {
			if buf.At(k) == '}' {
				closeBrace = k
				break
			}
		}
		if closeBrace > 0 {
			w, h, ok := parseDimensionAttrs(buf, suf+1, closeBrace)
			if ok {
				width, height = w, h
				totalLen = closeBrace + 1 - pos
			}
		}
	}

	return ImageAttrs{
		Alt:      Span{Start: altStart, End: altEnd},
		Title:    title,
		Path:     Span{Start: pathStart, End: pathEnd},
		Width:    width,
		Height:   height,
		TotalLen: totalLen,
	}, true
}

// parseDimensionAttrs parses an optional "width=N[px|%]" followed by an
// optional "height=N[px|%]" within [start,end), each separated by
// spaces. A percent value is returned as a negative integer; a
// unit-less or "px" value is returned as-is. ok is true only when
// every byte in [start,end) was consumed by spaces or a recognized
// key.
func parseDimensionAttrs(buf *gapbuffer.Buffer, start, end int) (width, height int, ok bool) {
	i := start
	skipSpaces := func() {
		for i < end && buf.At(i) == ' ' {
			i++
		}
	}
	skipSpaces()
	if matchKeyword(buf, i, end, "width") {
		i += len("width")
		if i >= end || buf.At(i) != '=' {
			return 0, 0, false
		}
		i++
		v, next, valOK := parseDimValue(buf, i, end)
		if !valOK {
			return 0, 0, false
		}
		width = v
		i = next
		skipSpaces()
	}
	if matchKeyword(buf, i, end, "height") {
		i += len("height")
		if i >= end || buf.At(i) != '=' {
			return 0, 0, false
		}
		i++
		v, next, valOK := parseDimValue(buf, i, end)
		if !valOK {
			return 0, 0, false
		}
		height = v
		i = next
		skipSpaces()
	}
	return width, height, i == end
}

// matchKeyword reports whether buf[pos:pos+len(key)] equals key
// exactly.
func matchKeyword(buf *gapbuffer.Buffer, pos, end int, key string) bool {
	if pos+len(key) > end {
		return false
	}
	for k := 0; k < len(key); k++ {
		if buf.At(pos+k) != key[k] {
			return false
		}
	}
	return true
}

// parseDimValue parses a base-10 integer followed by an optional "px"
// or "%" unit; a unit-less value defaults to px (returned unchanged),
// a "%" value is negated so callers can distinguish a percentage from
// an absolute cell count without a separate unit field.
func parseDimValue(buf *gapbuffer.Buffer, start, end int) (v, next int, ok bool) {
	v, i, ok := parseUint(buf, start, end)
	if !ok {
		return 0, start, false
	}
	if i < end && buf.At(i) == '%' {
		return -v, i + 1, true
	}
	if i+1 < end && buf.At(i) == 'p' && buf.At(i+1) == 'x' {
		return v, i + 2, true
	}
	return v, i, true
}

func parseUint(buf *gapbuffer.Buffer, start, end int) (v, next int, ok bool) {
	i := start
	for i < end && isDigit(buf.At(i)) {
		v = v*10 + int(buf.At(i)-'0')
		i++
	}
	if i == start {
		return 0, start, false
	}
	return v, i, true
}
