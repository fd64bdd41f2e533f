// Package nav implements cursor movement over a gapbuffer.Buffer:
// logical-line motion, visual-line motion that accounts for wrapping,
// block-aware motion that treats tables/code blocks/images as atomic
// units, and word-boundary motion, addressed by byte offset into a
// gapbuffer.Buffer rather than by line and column.
package nav

import (
	"github.com/andrewmd5/dawn-sub002/internal/block"
	"github.com/andrewmd5/dawn-sub002/internal/gapbuffer"
	"github.com/andrewmd5/dawn-sub002/internal/logging"
	"github.com/andrewmd5/dawn-sub002/internal/text"
	"github.com/andrewmd5/dawn-sub002/internal/wrap"
)

// LineStart returns the offset of the first byte of the line
// containing pos.
func LineStart(buf *gapbuffer.Buffer, pos int) int {
	for i := pos; i > 0; i-- {
		if buf.At(i-1) == '\n' {
			return i
		}
	}
	return 0
}

// LineEnd returns the offset of the '\n' terminating the line
// containing pos, or buf.Len() if it is the last, unterminated line.
func LineEnd(buf *gapbuffer.Buffer, pos int) int {
	n := buf.Len()
	for i := pos; i < n; i++ {
		if buf.At(i) == '\n' {
			return i
		}
	}
	return n
}

// MoveLine moves pos by delta logical lines (negative moves up),
// preserving the byte column within the line, clamped to the
// destination line's length.
func MoveLine(buf *gapbuffer.Buffer, pos, delta int) int {
	col := pos - LineStart(buf, pos)
	cur := pos
	for delta < 0 {
		ls := LineStart(buf, cur)
		if ls == 0 {
			cur = 0
			break
		}
		cur = ls - 1 // step onto the previous line's '\n', then find its start
		cur = LineStart(buf, cur)
		delta++
	}
	for delta > 0 {
		le := LineEnd(buf, cur)
		if le >= buf.Len() {
			cur = le
			break
		}
		cur = le + 1
		delta--
	}
	destStart := LineStart(buf, cur)
	destEnd := LineEnd(buf, cur)
	newPos := destStart + col
	if newPos > destEnd {
		newPos = destEnd
	}
	return newPos
}

// visualSegments returns the wrap segments for the logical line
// containing pos.
func visualSegments(buf *gapbuffer.Buffer, pos, width int) []wrap.Segment {
	ls := LineStart(buf, pos)
	le := LineEnd(buf, pos)
	return wrap.Line(buf, ls, le, width)
}

func segmentIndexAt(segs []wrap.Segment, pos int) int {
	for i, s := range segs {
		if pos >= s.Span.Start && pos <= s.Span.End {
			return i
		}
	}
	if len(segs) == 0 {
		return 0
	}
	return len(segs) - 1
}

// visualColumn returns pos's display-cell offset within its segment.
func visualColumn(buf *gapbuffer.Buffer, seg wrap.Segment, pos int) int {
	if pos < seg.Span.Start {
		pos = seg.Span.Start
	}
	if pos > seg.Span.End {
		pos = seg.Span.End
	}
	return text.DisplayWidth(buf, seg.Span.Start, pos)
}

// posAtColumn walks forward within seg until the accumulated
// cell-width would exceed col, returning that byte offset.
func posAtColumn(buf *gapbuffer.Buffer, seg wrap.Segment, col int) int {
	used := 0
	pos := seg.Span.Start
	for pos < seg.Span.End {
		cells, next := text.GraphemeWidth(buf, pos)
		if used+cells > col {
			return pos
		}
		used += cells
		if next <= pos {
			next = pos + 1
		}
		pos = next
	}
	return seg.Span.End
}

// MoveVisualLine moves pos by delta visual segments (wrapped lines),
// preserving the visual column in cells. At the document's last
// visual line, downward motion clamps to that line's LineEnd rather
// than walking past the document's end.
func MoveVisualLine(buf *gapbuffer.Buffer, pos, delta, width int) int {
	segs := visualSegments(buf, pos, width)
	idx := segmentIndexAt(segs, pos)
	col := visualColumn(buf, segs[idx], pos)

	cur := pos
	curSegs := segs
	curIdx := idx

	for delta < 0 {
		if curIdx > 0 {
			curIdx--
		} else {
			ls := LineStart(buf, cur)
			if ls == 0 {
				return posAtColumn(buf, curSegs[0], col)
			}
			prevLinePos := ls - 1
			curSegs = visualSegments(buf, prevLinePos, width)
			curIdx = len(curSegs) - 1
			cur = prevLinePos
		}
		delta++
	}
	for delta > 0 {
		if curIdx < len(curSegs)-1 {
			curIdx++
		} else {
			le := LineEnd(buf, cur)
			if le >= buf.Len() {
				// Last visual line of the document: clamp to this
				// line's end rather than advancing further.
				return curSegs[curIdx].Span.End
			}
			nextLinePos := le + 1
			curSegs = visualSegments(buf, nextLinePos, width)
			curIdx = 0
			cur = nextLinePos
		}
		delta--
	}

	return posAtColumn(buf, curSegs[curIdx], col)
}

// MoveVisualLineBlockAware wraps MoveVisualLine with the atomic-block
// rule: if pos's line starts a table, code block, or standalone image,
// an upward move lands one byte before the block and a downward move
// lands immediately after it, consuming one step of delta; the rule
// is then re-applied at the new position for any remaining delta.
func MoveVisualLineBlockAware(buf *gapbuffer.Buffer, cache *block.Cache, pos, delta, width int) int {
	cur := pos
	for delta != 0 {
		if b, atBlockStart := atomicBlockStartingAt(cache, LineStart(buf, cur)); atBlockStart {
			logging.Debug("nav: visual-line move jumping atomic block kind=%v span=[%d,%d)", b.Kind, b.Span.Start, b.Span.End)
			if delta < 0 {
				next := b.Span.Start - 1
				if next < 0 {
					next = 0
				}
				cur = next
				delta++
				continue
			}
			next := b.Span.End
			if next > buf.Len() {
				next = buf.Len()
			}
			cur = next
			delta--
			continue
		}
		if delta < 0 {
			cur = MoveVisualLine(buf, cur, -1, width)
			delta++
		} else {
			cur = MoveVisualLine(buf, cur, 1, width)
			delta--
		}
	}
	return cur
}

func atomicBlockStartingAt(cache *block.Cache, lineStartPos int) (block.Block, bool) {
	if cache == nil {
		return block.Block{}, false
	}
	for _, b := range cache.Blocks() {
		if b.Span.Start != lineStartPos {
			continue
		}
		switch b.Kind {
		case block.KindTable, block.KindCodeBlock, block.KindImage:
			return b, true
		}
	}
	return block.Block{}, false
}

// SkipBlockForward jumps past the atomic block containing pos, or is a
// no-op if pos is not inside one.
func SkipBlockForward(buf *gapbuffer.Buffer, cache *block.Cache, pos int) int {
	if b, ok := atomicBlockContaining(cache, pos); ok {
		if b.Span.End <= buf.Len() {
			return b.Span.End
		}
		return buf.Len()
	}
	return pos
}

// SkipBlockBackward jumps to the start of the atomic block containing
// pos, or is a no-op if pos is not inside one.
func SkipBlockBackward(buf *gapbuffer.Buffer, cache *block.Cache, pos int) int {
	if b, ok := atomicBlockContaining(cache, pos); ok {
		return b.Span.Start
	}
	return pos
}

func atomicBlockContaining(cache *block.Cache, pos int) (block.Block, bool) {
	if cache == nil {
		return block.Block{}, false
	}
	b, ok := cache.BlockAt(pos)
	if !ok {
		return block.Block{}, false
	}
	switch b.Kind {
	case block.KindTable, block.KindCodeBlock, block.KindImage:
		return b, true
	}
	return block.Block{}, false
}

func isASCIISpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

// CharRight moves pos forward by one grapheme cluster, or returns
// buf.Len() unchanged if pos is already at the end.
func CharRight(buf *gapbuffer.Buffer, pos int) int {
	if pos >= buf.Len() {
		return buf.Len()
	}
	_, next := text.GraphemeWidth(buf, pos)
	if next <= pos {
		next = pos + 1
	}
	return next
}

// CharLeft moves pos back by one grapheme cluster by scanning backward
// from the start of the current line (the only point a cluster
// boundary is known a priori) and finding the last cluster that ends
// at or before pos.
func CharLeft(buf *gapbuffer.Buffer, pos int) int {
	if pos <= 0 {
		return 0
	}
	ls := LineStart(buf, pos)
	if pos == ls {
		if ls == 0 {
			return 0
		}
		return ls - 1 // step onto the previous line's '\n'
	}
	prev := ls
	for prev < pos {
		_, next := text.GraphemeWidth(buf, prev)
		if next <= prev {
			next = prev + 1
		}
		if next >= pos {
			return prev
		}
		prev = next
	}
	return prev
}

// WordRight skips the current word then the following whitespace,
// returning the offset just past that whitespace run (or buf.Len()).
func WordRight(buf *gapbuffer.Buffer, pos int) int {
	n := buf.Len()
	i := pos
	for i < n && !isASCIISpace(buf.At(i)) {
		i++
	}
	for i < n && isASCIISpace(buf.At(i)) {
		i++
	}
	return i
}

// WordLeft skips the preceding whitespace then the preceding word,
// returning the offset of the word's first byte.
func WordLeft(buf *gapbuffer.Buffer, pos int) int {
	i := pos
	for i > 0 && isASCIISpace(buf.At(i-1)) {
		i--
	}
	for i > 0 && !isASCIISpace(buf.At(i-1)) {
		i--
	}
	return i
}
