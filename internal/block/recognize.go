package block

import (
	"github.com/google/uuid"

	"github.com/andrewmd5/dawn-sub002/internal/gapbuffer"
	"github.com/andrewmd5/dawn-sub002/internal/markdown"
)

// RecognizeAt tries each block recognizer at pos (which must be a line
// start) in precedence order and returns the first match. No
// recognizer ever panics; when none matches, the caller (parseRange)
// falls back to its own paragraph branch, which is always available.
func RecognizeAt(buf *gapbuffer.Buffer, pos int) (Block, bool) {
	if m, ok := markdown.CheckCodeBlock(buf, pos); ok {
		return Block{
			ID:          uuid.New(),
			Kind:        KindCodeBlock,
			Span:        Span{Start: pos, End: pos + m.TotalLen},
			CodeLang:    fromMd(m.Lang),
			CodeContent: fromMd(m.Content),
		}, true
	}
	if m, ok := markdown.CheckBlockMath(buf, pos); ok {
		return Block{
			ID:          uuid.New(),
			Kind:        KindBlockMath,
			Span:        Span{Start: pos, End: pos + m.TotalLen},
			MathContent: fromMd(m.Span),
		}, true
	}
	if m, ok := markdown.CheckTable(buf, pos); ok {
		return Block{
			ID:    uuid.New(),
			Kind:  KindTable,
			Span:  Span{Start: pos, End: pos + m.TotalLen},
			Table: m,
		}, true
	}
	if m, ok := markdown.CheckImage(buf, pos); ok && isStandaloneImageLine(buf, pos, m) {
		return Block{
			ID:    uuid.New(),
			Kind:  KindImage,
			Span:  Span{Start: pos, End: pos + m.TotalLen},
			Image: m,
		}, true
	}
	if level, contentStart, ok := markdown.CheckHeader(buf, pos); ok {
		end := blockLineEnd(buf, pos)
		if end < buf.Len() {
			end++
		}
		var id Span
		if s, found := markdown.CheckHeadingID(buf, pos); found {
			id = fromMd(s)
		}
		_ = contentStart
		return Block{
			ID:          uuid.New(),
			Kind:        KindHeader,
			Span:        Span{Start: pos, End: end},
			HeaderLevel: level,
			HeaderID:    id,
			Content:     Span{Start: pos + contentStartOffset(contentStart, pos), End: blockLineEnd(buf, pos)},
		}, true
	}
	if level, end, ok := checkSetextHeader(buf, pos); ok {
		return Block{
			ID:          uuid.New(),
			Kind:        KindHeader,
			Span:        Span{Start: pos, End: end},
			HeaderLevel: level,
			Content:     Span{Start: pos, End: blockLineEnd(buf, pos)},
		}, true
	}
	if total, ok := markdown.CheckHorizontalRule(buf, pos); ok {
		return Block{ID: uuid.New(), Kind: KindHorizontalRule, Span: Span{Start: pos, End: pos + total}}, true
	}
	if contentStart, ok := markdown.CheckBlockquote(buf, pos); ok {
		end := blockquoteEnd(buf, pos)
		return Block{
			ID:      uuid.New(),
			Kind:    KindBlockquote,
			Span:    Span{Start: pos, End: end},
			Content: Span{Start: contentStart, End: end},
		}, true
	}
	if m, ok := markdown.CheckListMarker(buf, pos); ok {
		end := listItemEnd(buf, pos)
		return Block{
			ID:         uuid.New(),
			Kind:       KindListItem,
			Span:       Span{Start: pos, End: end},
			ListKind:   m.Kind,
			ListIndent: m.Indent,
			Content:    Span{Start: m.ContentStart, End: blockLineEnd(buf, pos)},
		}, true
	}
	if id, content, ok := markdown.CheckFootnoteDef(buf, pos); ok {
		end := blockLineEnd(buf, pos)
		if end < buf.Len() {
			end++
		}
		return Block{
			ID:         uuid.New(),
			Kind:       KindFootnoteDef,
			Span:       Span{Start: pos, End: end},
			FootnoteID: fromMd(id),
			Content:    fromMd(content),
		}, true
	}
	return Block{}, false
}

// checkSetextHeader promotes a plain text line to a header when the
// line immediately following it is a setext underline ('=' for level
// 1, '-' for level 2). pos must be a line start that has already
// failed every higher-precedence recognizer (code, math, table,
// image, ATX header), so it is known to be ordinary text.
func checkSetextHeader(buf *gapbuffer.Buffer, pos int) (level, end int, ok bool) {
	le := blockLineEnd(buf, pos)
	if le >= buf.Len() {
		return 0, 0, false
	}
	next := le + 1
	lvl, ulLen, underlineOK := markdown.CheckSetextUnderline(buf, next)
	if !underlineOK {
		return 0, 0, false
	}
	return lvl, next + ulLen, true
}

func contentStartOffset(contentStart, lineStartPos int) int {
	return contentStart - lineStartPos
}

// isStandaloneImageLine requires the image to be the only content on
// its line, per spec.md's "single line ![…](…){…}" rule distinguishing
// a block-level image from an inline one inside a paragraph.
func isStandaloneImageLine(buf *gapbuffer.Buffer, pos int, m markdown.ImageAttrs) bool {
	le := blockLineEnd(buf, pos)
	after := pos + m.TotalLen
	for i := after; i < le; i++ {
		if !isBlank(buf.At(i)) {
			return false
		}
	}
	return true
}

func isBlank(b byte) bool { return b == ' ' || b == '\t' }

func blockLineEnd(buf *gapbuffer.Buffer, pos int) int {
	n := buf.Len()
	for i := pos; i < n; i++ {
		if buf.At(i) == '\n' {
			return i
		}
	}
	return n
}

func blockLineStart(buf *gapbuffer.Buffer, pos int) int {
	for i := pos; i > 0; i-- {
		if buf.At(i-1) == '\n' {
			return i
		}
	}
	return 0
}

// blockquoteEnd extends a blockquote block across consecutive lines
// that also open with '>', so the quoted run is one block rather than
// one block per line. The quoted lines' content is not itself
// recognized as nested blocks; it stays plain text within this block.
func blockquoteEnd(buf *gapbuffer.Buffer, pos int) int {
	n := buf.Len()
	le := blockLineEnd(buf, pos)
	end := le
	if le < n {
		end = le + 1
	}
	for end < n {
		if _, ok := markdown.CheckBlockquote(buf, end); !ok {
			break
		}
		nextLE := blockLineEnd(buf, end)
		if nextLE >= n {
			end = nextLE
			break
		}
		end = nextLE + 1
	}
	return end
}

// listItemEnd extends a list item across continuation lines indented
// at least to the item's content column, stopping at a blank line or a
// line that starts a new list marker / lower indentation.
func listItemEnd(buf *gapbuffer.Buffer, pos int) int {
	n := buf.Len()
	le := blockLineEnd(buf, pos)
	end := le
	if le < n {
		end = le + 1
	}
	m, _ := markdown.CheckListMarker(buf, pos)
	minIndent := m.ContentStart - pos
	for end < n {
		lineLE := blockLineEnd(buf, end)
		if lineLE == end {
			break // blank line ends the item
		}
		if _, ok := markdown.CheckListMarker(buf, end); ok {
			break // next item starts
		}
		col := 0
		i := end
		for i < lineLE && buf.At(i) == ' ' {
			col++
			i++
		}
		if col < minIndent {
			break
		}
		if lineLE >= n {
			end = lineLE
			break
		}
		end = lineLE + 1
	}
	return end
}
