package markdown

import "github.com/andrewmd5/dawn-sub002/internal/gapbuffer"

// CheckAutolink recognizes "<...>" autolinks in either URI form
// (scheme://... or scheme:...) or email form (contains '@', no
// spaces). Neither form may contain whitespace or another '<'.
func CheckAutolink(buf *gapbuffer.Buffer, pos int) (AutolinkMatch, bool) {
	n := buf.Len()
	if pos >= n || buf.At(pos) != '<' {
		return AutolinkMatch{}, false
	}
	end := lineEnd(buf, pos)

	closeAt := -1
	for i := pos + 1; i < end; i++ {
		b := buf.At(i)
		if b == ' ' || b == '\t' || b == '<' {
			return AutolinkMatch{}, false
		}
		if b == '>' {
			closeAt = i
			break
		}
	}
	if closeAt < 0 || closeAt == pos+1 {
		return AutolinkMatch{}, false
	}

	inner := Span{Start: pos + 1, End: closeAt}
	isEmail := false
	hasScheme := false
	colonAt := -1
	atAt := -1
	for i := inner.Start; i < inner.End; i++ {
		switch buf.At(i) {
		case ':':
			if colonAt < 0 {
				colonAt = i
			}
		case '@':
			if atAt < 0 {
				atAt = i
			}
		}
	}
	if colonAt > inner.Start {
		hasScheme = true
		for i := inner.Start; i < colonAt; i++ {
			if !isAlnum(buf.At(i)) && buf.At(i) != '+' && buf.At(i) != '-' && buf.At(i) != '.' {
				hasScheme = false
				break
			}
		}
	}
	if atAt > inner.Start && atAt < inner.End-1 && isValidEmailDomain(buf, atAt+1, inner.End) {
		isEmail = true
	}

	if !hasScheme && !isEmail {
		return AutolinkMatch{}, false
	}
	// When both readings succeed and there is no colon or the '@' comes
	// before the scheme colon, the email reading wins.
	if hasScheme && isEmail && (colonAt < 0 || colonAt > atAt) {
		isEmail = true
		hasScheme = false
	}

	return AutolinkMatch{
		Span:     inner,
		TotalLen: closeAt + 1 - pos,
		IsEmail:  isEmail && !hasScheme,
	}, true
}

// isValidEmailDomain requires the domain portion of an email autolink
// to contain at least one '.' and to not end with '.' or '-'.
func isValidEmailDomain(buf *gapbuffer.Buffer, start, end int) bool {
	if start >= end {
		return false
	}
	hasDot := false
	for i := start; i < end; i++ {
		if buf.At(i) == '.' {
			hasDot = true
			break
		}
	}
	if !hasDot {
		return false
	}
	last := buf.At(end - 1)
	return last != '.' && last != '-'
}
