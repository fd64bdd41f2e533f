// Package render implements the style→render contract: translating a
// markdown.Style into concrete terminal attributes and glyph scale,
// and emitting grapheme clusters through a backend the core does not
// own. Colors are requested abstractly through a Palette interface so
// richer backends can supply better color approximations without
// touching ApplyStyle's logic.
package render

import "github.com/andrewmd5/dawn-sub002/internal/markdown"

// Color is an abstract color request; a Palette resolves it to
// whatever concrete representation the backend needs (ANSI256, RGB,
// or a named Lip Gloss color).
type Color int

const (
	ColorDefault Color = iota
	ColorForeground
	ColorBackground
	ColorRed
	ColorOrange
	ColorYellow
	ColorLime
	ColorCyan
	ColorLightBlue
	ColorPink
	ColorCodeBackground
	ColorMarkBackground
)

// Attribute is a bit-set of terminal text attributes.
type Attribute uint8

const (
	AttrBold Attribute = 1 << iota
	AttrItalic
	AttrUnderline
	AttrStrike
	AttrDim
	AttrReverse
)

// Style is the resolved, backend-agnostic rendering instruction for a
// span of text.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// Has reports whether every bit in attr is set.
func (s Style) Has(attr Attribute) bool {
	return s.Attributes&attr == attr
}

// Palette resolves abstract Colors to whatever the backend needs. A
// 16-color backend and a true-color backend both implement this the
// same shape; only the resolved values differ.
type Palette interface {
	Resolve(c Color) any
}

// Theme names the palette implementation ApplyStyle renders against;
// swapping Theme changes colors without changing ApplyStyle's logic.
type Theme struct {
	Name    string
	Palette Palette
}

// headerFallbackColor is spec.md's H1..H6 fallback foreground table,
// used when the backend can't size glyphs and needs a color cue
// instead.
var headerFallbackColor = [7]Color{
	ColorDefault, // no header
	ColorRed,     // H1
	ColorOrange,  // H2
	ColorYellow,  // H3
	ColorLime,    // H4
	ColorCyan,    // H5
	ColorLightBlue,
}

// ApplyStyle resolves a markdown.Style into a render.Style, following
// spec.md's fixed precedence: reset, then header handling, then Mark,
// then Code, then Bold/Italic/Underline/Strike, then Sub/Sup.
// supportsSizing tells ApplyStyle whether the backend can render an
// enlarged glyph scale directly (in which case header color is left
// at default) or must fall back to a color cue.
func ApplyStyle(s markdown.Style, supportsSizing bool) Style {
	out := Style{Foreground: ColorForeground, Background: ColorBackground}

	if level := s.Header(); level > 0 {
		out.Attributes |= AttrBold
		if !supportsSizing {
			out.Foreground = headerFallbackColor[level]
		}
	}
	if s.Has(markdown.Mark) {
		out.Background = ColorMarkBackground
	}
	if s.Has(markdown.Code) {
		out.Background = ColorCodeBackground
		out.Foreground = ColorPink
	}
	if s.Has(markdown.Bold) {
		out.Attributes |= AttrBold
	}
	if s.Has(markdown.Italic) {
		out.Attributes |= AttrItalic
	}
	if s.Has(markdown.Underline) {
		out.Attributes |= AttrUnderline
	}
	if s.Has(markdown.Strike) {
		out.Attributes |= AttrStrike
	}
	if s.Has(markdown.Sub) || s.Has(markdown.Sup) {
		out.Attributes |= AttrDim
	}

	return out
}

// GetScale returns the integer cell-scale a header style lays out at: 2 for
// H1/H2/H3, 1 otherwise. GetScale returns the layout scale used for
// wrap-width math; the finer fractional scale (2x1, 2x3/4, 2x5/8)
// lives in HeaderFracScale for backends that support sub-cell sizing.
func GetScale(s markdown.Style) int {
	switch s.Header() {
	case 1, 2, 3:
		return 2
	default:
		return 1
	}
}

// FracScale is an integer-times-fraction glyph scale: the glyph
// occupies Scale cells and is drawn at Num/Denom of that size.
type FracScale struct {
	Scale      int
	Num, Denom int
}

// HeaderFracScale returns the fractional scale for a header level, per
// spec.md's H1=2x1, H2=2x3/4, H3=2x5/8, H4..H6=1 table.
func HeaderFracScale(level int) FracScale {
	switch level {
	case 1:
		return FracScale{Scale: 2, Num: 1, Denom: 1}
	case 2:
		return FracScale{Scale: 2, Num: 3, Denom: 4}
	case 3:
		return FracScale{Scale: 2, Num: 5, Denom: 8}
	default:
		return FracScale{Scale: 1, Num: 1, Denom: 1}
	}
}
