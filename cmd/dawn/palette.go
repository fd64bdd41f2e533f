package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/andrewmd5/dawn-sub002/internal/render"
)

// palette resolves render.Color to concrete ANSI256 lipgloss colors, a
// fixed index-to-ANSI mapping rather than a theme file.
type palette struct {
	fg    [12]lipgloss.Color
	hasBg [12]bool
	bg    [12]lipgloss.Color
}

func newPalette() *palette {
	p := &palette{}
	set := func(c render.Color, fg string) { p.fg[c] = lipgloss.Color(fg) }
	setBg := func(c render.Color, fg, bg string) {
		p.fg[c] = lipgloss.Color(fg)
		p.bg[c] = lipgloss.Color(bg)
		p.hasBg[c] = true
	}

	set(render.ColorDefault, "252")
	set(render.ColorForeground, "252")
	set(render.ColorBackground, "0")
	set(render.ColorRed, "196")
	set(render.ColorOrange, "208")
	set(render.ColorYellow, "226")
	set(render.ColorLime, "118")
	set(render.ColorCyan, "51")
	set(render.ColorLightBlue, "39")
	set(render.ColorPink, "213")
	setBg(render.ColorCodeBackground, "252", "237")
	setBg(render.ColorMarkBackground, "0", "226")
	return p
}

// Resolve implements render.Palette.
func (p *palette) Resolve(c render.Color) any {
	if int(c) < 0 || int(c) >= len(p.fg) {
		return p.fg[render.ColorForeground]
	}
	return p.fg[c]
}

// styleFor converts a resolved render.Style into a lipgloss.Style by
// mapping each attribute bit to its lipgloss method.
func (p *palette) styleFor(rs render.Style) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(p.fg[rs.Foreground])
	if int(rs.Background) < len(p.hasBg) && p.hasBg[rs.Background] {
		s = s.Background(p.bg[rs.Background])
	}
	if rs.Has(render.AttrBold) {
		s = s.Bold(true)
	}
	if rs.Has(render.AttrItalic) {
		s = s.Italic(true)
	}
	if rs.Has(render.AttrUnderline) {
		s = s.Underline(true)
	}
	if rs.Has(render.AttrStrike) {
		s = s.Strikethrough(true)
	}
	if rs.Has(render.AttrDim) {
		s = s.Faint(true)
	}
	if rs.Has(render.AttrReverse) {
		s = s.Reverse(true)
	}
	return s
}
