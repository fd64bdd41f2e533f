// Package wrap turns a logical line of buffer content into the
// sequence of visual lines a fixed-width terminal viewport would show,
// reusing internal/text's per-grapheme width measurement rather than
// counting bytes or runes.
package wrap

import (
	"github.com/andrewmd5/dawn-sub002/internal/gapbuffer"
	"github.com/andrewmd5/dawn-sub002/internal/text"
)

// Span is a half-open byte range [Start, End) into a gapbuffer.Buffer.
type Span struct {
	Start, End int
}

// Len returns the span's length in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Segment is one visual line produced by wrapping a logical line: the
// buffer span it covers and the display-cell width it occupies.
type Segment struct {
	Span  Span
	Cells int
}

// Line wraps the logical line [lineStart, lineEnd) into visual
// segments no wider than maxCells display cells. A header's effective
// width budget is maxCells/scale, rounded down, since headers render
// at an enlarged glyph scale; callers pass the already-divided width
// for header lines. A zero-length line still yields one empty
// Segment, so blank lines occupy a visual row.
func Line(buf *gapbuffer.Buffer, lineStart, lineEnd, maxCells int) []Segment {
	if maxCells < 1 {
		maxCells = 1
	}
	if lineStart >= lineEnd {
		return []Segment{{Span: Span{Start: lineStart, End: lineEnd}, Cells: 0}}
	}

	var segs []Segment
	pos := lineStart
	for pos < lineEnd {
		splitPos, used := text.FindWrapPoint(buf, pos, lineEnd, maxCells)
		if splitPos <= pos {
			// FindWrapPoint should always make progress; guard against
			// a pathological zero-width grapheme loop.
			splitPos = pos + 1
			if splitPos > lineEnd {
				splitPos = lineEnd
			}
		}
		segs = append(segs, Segment{Span: Span{Start: pos, End: splitPos}, Cells: used})
		pos = splitPos
		for pos < lineEnd && buf.At(pos) == ' ' {
			// A line that breaks exactly on a space shouldn't carry
			// that space onto the next visual line as leading
			// whitespace.
			pos++
		}
	}
	return segs
}

// HeaderBudget divides maxCells by scale (the header's integer glyph
// scale factor) for use as the maxCells argument to Line when wrapping
// a header line, rounding down but never below 1.
func HeaderBudget(maxCells, scale int) int {
	if scale < 1 {
		scale = 1
	}
	budget := maxCells / scale
	if budget < 1 {
		budget = 1
	}
	return budget
}
