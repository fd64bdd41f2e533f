// Package text provides grapheme-cluster and terminal display-width
// utilities over a gapbuffer.Buffer. It is the only place in the
// editor core that reasons about Unicode segmentation; every other
// package (wrap, nav, render) treats positions as opaque byte offsets
// and calls into here when it needs to know how many terminal cells a
// span occupies.
package text

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/andrewmd5/dawn-sub002/internal/gapbuffer"
)

// clusterWindow bounds how many bytes we pull out of the buffer to
// look for the end of a single grapheme cluster. Real clusters are
// almost always a handful of bytes; this generously covers flag
// sequences and heavily-combined emoji without risking an unbounded
// scan on adversarial input.
const clusterWindow = 64

// GraphemeWidth computes the display width, in terminal cells, of the
// grapheme cluster starting at pos, and returns the offset of the
// cluster immediately following it. Zero-width combining marks are
// folded into the preceding cluster by uniseg's segmentation; wide
// (East Asian) clusters report width 2; C0/DEL control bytes report
// width 1, since the backend renders them as a single space rather
// than suppressing them.
func GraphemeWidth(buf *gapbuffer.Buffer, pos int) (cells, nextPos int) {
	n := buf.Len()
	if pos < 0 {
		pos = 0
	}
	if pos >= n {
		return 0, n
	}

	end := pos + clusterWindow
	if end > n {
		end = n
	}
	window := buf.Substr(pos, end)

	cluster, _, width, _ := uniseg.FirstGraphemeClusterInString(string(window), -1)
	if len(cluster) == 0 {
		return 1, pos + 1
	}

	r, _ := utf8.DecodeRuneInString(cluster)
	if isControl(r) {
		return 1, pos + len(cluster)
	}
	if width < 0 {
		width = 0
	}
	return width, pos + len(cluster)
}

// isControl reports whether r is a C0 control code or DEL, which the
// terminal backend renders as a blank cell rather than zero cells.
func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}

// DisplayWidth sums grapheme widths over [a, b). Additive over any
// grapheme-aligned split point: DisplayWidth(buf,a,c) equals
// DisplayWidth(buf,a,b)+DisplayWidth(buf,b,c) for a<=b<=c.
func DisplayWidth(buf *gapbuffer.Buffer, a, b int) int {
	n := buf.Len()
	if a < 0 {
		a = 0
	}
	if b > n {
		b = n
	}
	if a >= b {
		return 0
	}
	total := 0
	for pos := a; pos < b; {
		cells, next := GraphemeWidth(buf, pos)
		total += cells
		if next <= pos {
			next = pos + 1
		}
		pos = next
	}
	return total
}

// FindWrapPoint returns the largest split position <= b such that
// DisplayWidth(buf, a, splitPos) <= maxCells, breaking at the last
// ASCII space or '-' within that limit when one exists. When no such
// break exists, it returns a hard break at the grapheme boundary that
// would first overflow maxCells. usedCells is DisplayWidth(buf, a,
// splitPos).
//
// If [a, b) fits within maxCells entirely, splitPos is b.
func FindWrapPoint(buf *gapbuffer.Buffer, a, b, maxCells int) (splitPos, usedCells int) {
	n := buf.Len()
	if a < 0 {
		a = 0
	}
	if b > n {
		b = n
	}
	if a >= b || maxCells <= 0 {
		return a, 0
	}

	used := 0
	lastBreakPos, lastBreakWidth := -1, 0

	pos := a
	for pos < b {
		cells, next := GraphemeWidth(buf, pos)
		if next <= pos {
			next = pos + 1
		}
		if used+cells > maxCells {
			if lastBreakPos >= 0 {
				return lastBreakPos, lastBreakWidth
			}
			return pos, used
		}

		ch := buf.At(pos)
		used += cells
		isBreakChar := next-pos == 1 && (ch == ' ' || ch == '-')
		pos = next
		if isBreakChar {
			lastBreakPos, lastBreakWidth = pos, used
		}
	}
	return pos, used
}

// RuneWidth is a narrower helper used by callers (e.g. cmd/dawn's
// frame backend) that already have a decoded rune in
// hand and don't want to round-trip it through the buffer. It defers
// to go-runewidth, which gives the same East Asian Wide/Ambiguous
// classification uniseg uses internally, kept here as the documented
// fallback table for single runes that aren't part of a buffer scan.
func RuneWidth(r rune) int {
	if isControl(r) {
		return 1
	}
	return runewidth.RuneWidth(r)
}
