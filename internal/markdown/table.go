package markdown

import "github.com/andrewmd5/dawn-sub002/internal/gapbuffer"

// CheckTable recognizes a GFM-style pipe table: a header row, a
// delimiter row (cells of '-' optionally bounded by ':' for
// alignment), and zero or more body rows, all with matching cell
// counts. Recognition starts at the header row's line start.
func CheckTable(buf *gapbuffer.Buffer, pos int) (TableMatch, bool) {
	if !atLineStart(buf, pos) {
		return TableMatch{}, false
	}
	n := buf.Len()

	headerEnd := lineEnd(buf, pos)
	headerCells := splitTableRow(buf, pos, headerEnd)
	if len(headerCells) == 0 || len(headerCells) > MaxCols {
		return TableMatch{}, false
	}

	if headerEnd >= n {
		return TableMatch{}, false
	}
	delimStart := headerEnd + 1
	delimEnd := lineEnd(buf, delimStart)
	delimCells := splitTableRow(buf, delimStart, delimEnd)
	if len(delimCells) != len(headerCells) {
		return TableMatch{}, false
	}

	var align [MaxCols]Align
	for i, c := range delimCells {
		a, ok := parseAlignCell(buf, c)
		if !ok {
			return TableMatch{}, false
		}
		align[i] = a
	}

	rowCount := 1
	i := delimEnd
	if i < n {
		i++
	}
	for i <= n {
		ls := i
		le := lineEnd(buf, ls)
		if ls >= le {
			break // blank line ends the table
		}
		cells := splitTableRow(buf, ls, le)
		if len(cells) != len(headerCells) {
			break
		}
		rowCount++
		if le >= n {
			i = le
			break
		}
		i = le + 1
	}

	total := i - pos
	return TableMatch{
		ColCount: len(headerCells),
		RowCount: rowCount,
		Align:    align,
		TotalLen: total,
	}, true
}

// SplitTableRow is the exported form of splitTableRow, for callers
// (the renderer) that need a table row's cell spans after CheckTable
// has already confirmed the block is a table.
func SplitTableRow(buf *gapbuffer.Buffer, start, end int) []Span {
	return splitTableRow(buf, start, end)
}

// splitTableRow splits a single table row line on unescaped pipes,
// trimming a leading/trailing pipe and surrounding whitespace from
// each cell. Returns nil if the line has no pipes at all.
func splitTableRow(buf *gapbuffer.Buffer, start, end int) []Span {
	s := start
	e := end
	for s < e && isSpaceOrTab(buf.At(s)) {
		s++
	}
	for e > s && isSpaceOrTab(buf.At(e-1)) {
		e--
	}
	if s >= e {
		return nil
	}
	hasPipe := false
	if buf.At(s) == '|' {
		s++
		hasPipe = true
	}
	if e > s && buf.At(e-1) == '|' {
		e--
		hasPipe = true
	}
	if s >= e {
		return nil
	}

	var cells []Span
	cellStart := s
	for i := s; i < e; i++ {
		if buf.At(i) == '\\' {
			i++
			continue
		}
		if buf.At(i) == '|' {
			hasPipe = true
			cells = append(cells, trimSpan(buf, cellStart, i))
			cellStart = i + 1
		}
	}
	cells = append(cells, trimSpan(buf, cellStart, e))
	if !hasPipe {
		return nil
	}
	return cells
}

func trimSpan(buf *gapbuffer.Buffer, start, end int) Span {
	for start < end && isSpaceOrTab(buf.At(start)) {
		start++
	}
	for end > start && isSpaceOrTab(buf.At(end-1)) {
		end--
	}
	return Span{Start: start, End: end}
}

func parseAlignCell(buf *gapbuffer.Buffer, c Span) (Align, bool) {
	s, e := c.Start, c.End
	if s >= e {
		return AlignDefault, false
	}
	leftColon := buf.At(s) == ':'
	rightColon := e > s && buf.At(e-1) == ':'
	if leftColon {
		s++
	}
	if rightColon && e > s {
		e--
	}
	if s >= e {
		return AlignDefault, false
	}
	for i := s; i < e; i++ {
		if buf.At(i) != '-' {
			return AlignDefault, false
		}
	}
	switch {
	case leftColon && rightColon:
		return AlignCenter, true
	case leftColon:
		return AlignLeft, true
	case rightColon:
		return AlignRight, true
	default:
		return AlignDefault, true
	}
}
