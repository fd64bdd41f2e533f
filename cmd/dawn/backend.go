package main

import (
	"strings"
	"unicode/utf8"

	"github.com/andrewmd5/dawn-sub002/internal/render"
	"github.com/andrewmd5/dawn-sub002/internal/text"
)

// frameBackend implements render.Backend by accumulating styled rows
// of text into memory, for View to join into the frame bubbletea asks
// for. It is the "external collaborator" spec.md §5 says the editor
// core must not own; the core only ever sees it through the
// render.Backend interface.
//
// A real terminal can't enlarge a glyph's cell footprint, so
// SupportsIntegerScale and SupportsFractionalScale both report false;
// ApplyStyle falls back to header color cues instead.
type frameBackend struct {
	palette *palette
	rows    []string
	cur     strings.Builder
}

func newFrameBackend(p *palette) *frameBackend {
	return &frameBackend{palette: p}
}

// EmitGrapheme implements render.Backend.
func (b *frameBackend) EmitGrapheme(s string, style render.Style, state render.OutputState) int {
	if s == "\n" {
		b.rows = append(b.rows, b.cur.String())
		b.cur.Reset()
		return 0
	}
	b.cur.WriteString(b.palette.styleFor(style).Render(s))
	r, _ := utf8.DecodeRuneInString(s)
	return text.RuneWidth(r)
}

func (b *frameBackend) SupportsFractionalScale() bool { return false }
func (b *frameBackend) SupportsIntegerScale() bool     { return false }

// Rows finishes the frame and returns its accumulated lines.
func (b *frameBackend) Rows() []string {
	b.rows = append(b.rows, b.cur.String())
	rows := b.rows
	b.rows = nil
	b.cur.Reset()
	return rows
}
