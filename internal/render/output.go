package render

import (
	"github.com/andrewmd5/dawn-sub002/internal/gapbuffer"
	"github.com/andrewmd5/dawn-sub002/internal/markdown"
	"github.com/andrewmd5/dawn-sub002/internal/text"
)

// OutputState is the ambient scale state threaded explicitly through
// OutputGrapheme calls rather than held in a package-level global —
// ownership rule from spec.md §5: emitted text goes to a backend the
// core does not own, so the core must not retain any implicit state
// about what it last emitted.
type OutputState struct {
	Scale     int
	FracNum   int
	FracDenom int
}

// Backend is the external collaborator spec.md §5 says the core must
// not own: something that can actually put text on a terminal. A
// Bubble Tea/Lip Gloss implementation lives in cmd/dawn; the core only
// depends on this interface.
type Backend interface {
	// EmitGrapheme writes s, a single grapheme cluster's bytes (or a
	// typographic replacement's bytes), styled per style and scaled
	// per state. It returns the number of display cells actually
	// consumed, which may differ from the unscaled width if the
	// backend can't honor the requested scale.
	EmitGrapheme(s string, style Style, state OutputState) (cellsEmitted int)

	// SupportsFractionalScale reports whether the backend can render
	// FracScale's Num/Denom sub-cell sizing. When false,
	// OutputGrapheme falls back to the integer Scale only.
	SupportsFractionalScale() bool

	// SupportsIntegerScale reports whether the backend can enlarge
	// glyphs at all. When false, OutputGrapheme emits at scale 1.
	SupportsIntegerScale() bool
}

// OutputGrapheme emits the element at *pos (a typographic replacement
// when active style isn't Code and one matches, else the raw grapheme
// cluster), advances *pos past what it consumed, and returns the
// number of display cells the backend reports having emitted.
func OutputGrapheme(buf *gapbuffer.Buffer, pos *int, style markdown.Style, backend Backend) int {
	renderStyle := ApplyStyle(style, backend.SupportsIntegerScale())
	state := outputState(style, backend)

	if !style.Has(markdown.Code) {
		if r, n, ok := markdown.CheckTypographic(buf, *pos); ok {
			cells := backend.EmitGrapheme(string(r), renderStyle, state)
			*pos += n
			return cells
		}
	}

	start := *pos
	_, next := text.GraphemeWidth(buf, start)
	if next <= start {
		next = start + 1
	}
	cluster := buf.Substr(start, next)
	cells := backend.EmitGrapheme(string(cluster), renderStyle, state)
	*pos = next
	return cells
}

func outputState(style markdown.Style, backend Backend) OutputState {
	if !backend.SupportsIntegerScale() {
		return OutputState{Scale: 1, FracNum: 1, FracDenom: 1}
	}
	frac := HeaderFracScale(style.Header())
	if !backend.SupportsFractionalScale() {
		return OutputState{Scale: frac.Scale, FracNum: 1, FracDenom: 1}
	}
	return OutputState{Scale: frac.Scale, FracNum: frac.Num, FracDenom: frac.Denom}
}
