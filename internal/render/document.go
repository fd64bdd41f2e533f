package render

import (
	"github.com/andrewmd5/dawn-sub002/internal/block"
	"github.com/andrewmd5/dawn-sub002/internal/gapbuffer"
	"github.com/andrewmd5/dawn-sub002/internal/markdown"
	"github.com/andrewmd5/dawn-sub002/internal/wrap"
)

// RenderDocument walks every block in cache, in order, emitting its
// visual representation through backend at the given viewport width.
// It owns none of buf, cache, or backend; it only reads the first two
// and writes to the third, per spec.md §5's ownership rule that the
// core never retains the thing it draws to.
func RenderDocument(buf *gapbuffer.Buffer, cache *block.Cache, width int, backend Backend) {
	blocks := cache.Blocks()
	for i, b := range blocks {
		renderBlock(buf, b, width, backend)
		if i < len(blocks)-1 {
			newline(backend)
		}
	}
}

func newline(backend Backend) {
	backend.EmitGrapheme("\n", Style{Foreground: ColorForeground, Background: ColorBackground}, OutputState{Scale: 1, FracNum: 1, FracDenom: 1})
}

func renderBlock(buf *gapbuffer.Buffer, b block.Block, width int, backend Backend) {
	switch b.Kind {
	case block.KindHeader:
		renderHeader(buf, b, width, backend)
	case block.KindParagraph:
		renderLines(buf, b.Content.Start, b.Content.End, markdown.Style(0), width, backend, true)
	case block.KindCodeBlock:
		renderVerbatim(buf, b.CodeContent.Start, b.CodeContent.End, markdown.Code, width, backend)
	case block.KindBlockMath:
		renderVerbatim(buf, b.MathContent.Start, b.MathContent.End, markdown.Italic, width, backend)
	case block.KindTable:
		renderTable(buf, b, width, backend)
	case block.KindImage:
		renderImage(buf, b, width, backend)
	case block.KindHorizontalRule:
		renderHRule(width, backend)
	case block.KindBlockquote:
		renderBlockquote(buf, b, width, backend)
	case block.KindListItem:
		renderListItem(buf, b, width, backend)
	case block.KindFootnoteDef:
		renderFootnoteDef(buf, b, width, backend)
	}
}

func renderHeader(buf *gapbuffer.Buffer, b block.Block, width int, backend Backend) {
	style := markdown.HeaderStyle(b.HeaderLevel)
	scale := GetScale(style)
	budget := wrap.HeaderBudget(width, scale)
	renderLines(buf, b.Content.Start, b.Content.End, style, budget, backend, false)
}

func renderVerbatim(buf *gapbuffer.Buffer, start, end int, style markdown.Style, width int, backend Backend) {
	pos := start
	first := true
	for pos <= end {
		lineEnd := indexOfNewline(buf, pos, end)
		segs := wrap.Line(buf, pos, lineEnd, width)
		for _, seg := range segs {
			if !first {
				newline(backend)
			}
			first = false
			p := seg.Span.Start
			for p < seg.Span.End {
				OutputGrapheme(buf, &p, style, backend)
			}
		}
		if lineEnd >= end {
			break
		}
		pos = lineEnd + 1
	}
}

// renderLines splits [start, end) on embedded newlines (a paragraph or
// header's source line breaks), wraps each physical line to width,
// and renders it with inline delimiter/element scanning when
// scanInline is true. The active inline style persists across visual
// and physical lines within the block, resetting only at the next
// call (block boundary).
func renderLines(buf *gapbuffer.Buffer, start, end int, baseStyle markdown.Style, width int, backend Backend, scanInline bool) {
	active := markdown.Style(0)
	pos := start
	first := true
	for pos <= end && start < end {
		lineEnd := indexOfNewline(buf, pos, end)
		segs := wrap.Line(buf, pos, lineEnd, width)
		for _, seg := range segs {
			if !first {
				newline(backend)
			}
			first = false
			if scanInline {
				active = renderInline(buf, seg.Span.Start, seg.Span.End, baseStyle, active, backend)
			} else {
				p := seg.Span.Start
				for p < seg.Span.End {
					OutputGrapheme(buf, &p, baseStyle, backend)
				}
			}
		}
		if lineEnd >= end {
			break
		}
		pos = lineEnd + 1
	}
}

func indexOfNewline(buf *gapbuffer.Buffer, pos, limit int) int {
	for i := pos; i < limit; i++ {
		if buf.At(i) == '\n' {
			return i
		}
	}
	return limit
}

// renderInline walks [start, end) applying CheckDelim toggling and the
// element recognizers (links, images, footnote refs, inline math,
// autolinks), emitting each grapheme through OutputGrapheme with the
// style in effect at that position. It returns the active style in
// effect at end, so callers can thread it across wrapped segments.
func renderInline(buf *gapbuffer.Buffer, start, end int, baseStyle markdown.Style, active markdown.Style, backend Backend) markdown.Style {
	pos := start
	for pos < end {
		if active.Has(markdown.Code) {
			if buf.At(pos) == '`' {
				active = active.Without(markdown.Code)
				pos++
				continue
			}
			p := pos
			OutputGrapheme(buf, &p, baseStyle|active, backend)
			pos = p
			continue
		}

		if d, ok := markdown.CheckDelim(buf, pos); ok && pos+d.DelimLen <= end {
			if active.Has(d.Style) {
				active = active.Without(d.Style)
			} else {
				active = active.With(d.Style)
			}
			pos += d.DelimLen
			continue
		}

		if consumed, ok := renderInlineElement(buf, pos, end, baseStyle, active, backend); ok {
			pos += consumed
			continue
		}

		p := pos
		OutputGrapheme(buf, &p, baseStyle|active, backend)
		pos = p
	}
	return active
}

// renderInlineElement tries each of the non-delimiter inline
// recognizers at pos, rendering the visible portion of whichever
// matches and reporting how many bytes it consumed. Matches that would
// run past end are rejected, since they belong to a later visual
// segment the wrap engine has already split off.
func renderInlineElement(buf *gapbuffer.Buffer, pos, end int, baseStyle, active markdown.Style, backend Backend) (int, bool) {
	if m, ok := markdown.CheckFootnoteRef(buf, pos); ok && pos+m.TotalLen <= end {
		renderSpan(buf, m.Span, baseStyle, active.With(markdown.Sup), backend)
		return m.TotalLen, true
	}
	if m, ok := markdown.CheckInlineMath(buf, pos); ok && pos+m.TotalLen <= end {
		renderSpan(buf, m.Span, baseStyle, active.With(markdown.Italic), backend)
		return m.TotalLen, true
	}
	if img, ok := markdown.CheckImage(buf, pos); ok && pos+img.TotalLen <= end {
		renderSpan(buf, img.Alt, baseStyle, active.With(markdown.Bold), backend)
		return img.TotalLen, true
	}
	if m, ok := markdown.CheckLink(buf, pos); ok && pos+m.TotalLen <= end {
		renderSpan(buf, m.Spans[0], baseStyle, active.With(markdown.Underline), backend)
		return m.TotalLen, true
	}
	if m, ok := markdown.CheckReferenceLink(buf, pos); ok && pos+m.TotalLen <= end {
		renderSpan(buf, m.Spans[0], baseStyle, active.With(markdown.Underline), backend)
		return m.TotalLen, true
	}
	if m, ok := markdown.CheckAutolink(buf, pos); ok && pos+m.TotalLen <= end {
		renderSpan(buf, m.Span, baseStyle, active.With(markdown.Underline), backend)
		return m.TotalLen, true
	}
	return 0, false
}

func renderSpan(buf *gapbuffer.Buffer, span markdown.Span, baseStyle, style markdown.Style, backend Backend) {
	p := span.Start
	for p < span.End {
		OutputGrapheme(buf, &p, baseStyle|style, backend)
	}
}

func renderHRule(width int, backend Backend) {
	style := Style{Foreground: ColorForeground, Background: ColorBackground, Attributes: AttrDim}
	state := OutputState{Scale: 1, FracNum: 1, FracDenom: 1}
	for i := 0; i < width; i++ {
		backend.EmitGrapheme("─", style, state)
	}
}

func renderBlockquote(buf *gapbuffer.Buffer, b block.Block, width int, backend Backend) {
	pos := b.Content.Start
	first := true
	budget := width - 2
	if budget < 1 {
		budget = 1
	}
	for pos < b.Content.End {
		le := indexOfNewline(buf, pos, b.Content.End)
		lineStart := pos
		if !first {
			if s, ok := markdown.CheckBlockquote(buf, blockLineStartFor(buf, pos)); ok {
				lineStart = s
			}
		}
		segs := wrap.Line(buf, lineStart, le, budget)
		for _, seg := range segs {
			if !first {
				newline(backend)
			}
			first = false
			emitString(backend, "│ ", markdown.Italic)
			p := seg.Span.Start
			for p < seg.Span.End {
				OutputGrapheme(buf, &p, markdown.Italic, backend)
			}
		}
		if le >= b.Content.End {
			break
		}
		pos = le + 1
	}
}

func blockLineStartFor(buf *gapbuffer.Buffer, pos int) int {
	for i := pos; i > 0; i-- {
		if buf.At(i-1) == '\n' {
			return i
		}
	}
	return 0
}

func renderListItem(buf *gapbuffer.Buffer, b block.Block, width int, backend Backend) {
	marker := "• "
	switch b.ListKind {
	case markdown.ListOrdered:
		marker = "1. "
	case markdown.ListTaskUnchecked:
		marker = "☐ "
	case markdown.ListTaskChecked:
		marker = "☑ "
	}
	budget := width - len(marker) - b.ListIndent
	if budget < 1 {
		budget = 1
	}
	emitString(backend, marker, markdown.Style(0))
	renderLines(buf, b.Content.Start, b.Content.End, markdown.Style(0), budget, backend, true)
}

func renderFootnoteDef(buf *gapbuffer.Buffer, b block.Block, width int, backend Backend) {
	emitString(backend, "[^", markdown.Sup)
	p := b.FootnoteID.Start
	for p < b.FootnoteID.End {
		OutputGrapheme(buf, &p, markdown.Sup, backend)
	}
	emitString(backend, "]: ", markdown.Sup)
	renderLines(buf, b.Content.Start, b.Content.End, markdown.Style(0), width, backend, true)
}

func renderImage(buf *gapbuffer.Buffer, b block.Block, width int, backend Backend) {
	emitString(backend, "[image: ", markdown.Italic)
	p := b.Image.Alt.Start
	for p < b.Image.Alt.End {
		OutputGrapheme(buf, &p, markdown.Italic, backend)
	}
	emitString(backend, "]", markdown.Italic)
}

func renderTable(buf *gapbuffer.Buffer, b block.Block, width int, backend Backend) {
	colWidths := make([]int, b.Table.ColCount)
	rows := make([][]markdown.Span, 0, b.Table.RowCount)

	pos := b.Span.Start
	rowsSeen := 0
	for rowsSeen < b.Table.RowCount+1 && pos < b.Span.End {
		le := indexOfNewline(buf, pos, b.Span.End)
		cells := markdown.SplitTableRow(buf, pos, le)
		if rowsSeen != 1 { // skip the alignment delimiter row
			rows = append(rows, cells)
			for i, c := range cells {
				if i >= len(colWidths) {
					break
				}
				if w := c.Len(); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
		rowsSeen++
		if le >= b.Span.End {
			break
		}
		pos = le + 1
	}

	colBudget := width / max1(b.Table.ColCount)

	for ri, cells := range rows {
		if ri > 0 {
			newline(backend)
		}
		for ci, c := range cells {
			if ci > 0 {
				emitString(backend, " │ ", markdown.Style(0))
			}
			style := markdown.Style(0)
			if ri == 0 {
				style = markdown.Bold
			}
			segs := wrap.Line(buf, c.Start, c.End, colBudget)
			var seg wrap.Segment
			if len(segs) > 0 {
				seg = segs[0]
			}
			p := seg.Span.Start
			for p < seg.Span.End {
				OutputGrapheme(buf, &p, style, backend)
			}
			pad := colWidths[ci] - c.Len()
			for i := 0; i < pad; i++ {
				backend.EmitGrapheme(" ", ApplyStyle(style, backend.SupportsIntegerScale()), OutputState{Scale: 1, FracNum: 1, FracDenom: 1})
			}
		}
	}
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func emitString(backend Backend, s string, style markdown.Style) {
	rs := ApplyStyle(style, backend.SupportsIntegerScale())
	state := OutputState{Scale: 1, FracNum: 1, FracDenom: 1}
	for _, r := range s {
		backend.EmitGrapheme(string(r), rs, state)
	}
}
