package block

import (
	"strings"

	"github.com/google/uuid"

	"github.com/andrewmd5/dawn-sub002/internal/gapbuffer"
	"github.com/andrewmd5/dawn-sub002/internal/logging"
)

// Cache holds the ordered, non-overlapping sequence of Blocks that
// covers a document, plus the reference-link definition table
// populated during Parse. It holds offsets only — no back-pointer to
// the Buffer it was built from, since Parse always takes the buffer
// explicitly and the cache must never dereference a stale one.
type Cache struct {
	blocks   []Block
	linkRefs map[string]linkRef
}

type linkRef struct {
	url   Span
	title Span
}

// NewCache returns an empty cache; call Parse to populate it.
func NewCache() *Cache {
	return &Cache{linkRefs: make(map[string]linkRef)}
}

// Blocks returns the cache's current ordered block sequence. The
// returned slice is owned by the cache; callers must not mutate it.
func (c *Cache) Blocks() []Block {
	return c.blocks
}

// BlockAt returns the block whose span contains pos, and ok=false if
// pos falls in a gap (blank-line region) between blocks.
func (c *Cache) BlockAt(pos int) (Block, bool) {
	for _, b := range c.blocks {
		if pos >= b.Span.Start && pos < b.Span.End {
			return b, true
		}
	}
	return Block{}, false
}

// IndexAt returns the index of the block whose span contains pos, or
// -1 if none does.
func (c *Cache) IndexAt(pos int) int {
	for i, b := range c.blocks {
		if pos >= b.Span.Start && pos < b.Span.End {
			return i
		}
	}
	return -1
}

// Parse walks buf from the start, applying RecognizeAt at each line
// start in its fixed precedence order and falling back to a paragraph
// block (default, terminated by a blank line or the next recognized
// block) when nothing else matches. It replaces the cache's entire
// block sequence and link-reference table.
func (c *Cache) Parse(buf *gapbuffer.Buffer) {
	c.blocks = parseRange(buf, 0, buf.Len())
	c.rebuildLinkRefs(buf)
	logging.Debug("block: full parse produced %d blocks", len(c.blocks))
}

// Reparse performs an incremental reparse around an edit at byte
// offset p with a length delta delta (positive for insertions,
// negative for deletions measured against the pre-edit buffer). It
// discards blocks whose span intersects the edited region, extends
// the discard window to the nearest blank-line boundaries on each
// side, reparses just that window, and splices the result back into
// the ordered sequence. A full Parse is always a correct fallback the
// editor can call instead when it wants simplicity over speed.
func (c *Cache) Reparse(buf *gapbuffer.Buffer, p, delta int) {
	if c.blocks == nil {
		c.Parse(buf)
		return
	}

	editEnd := p + delta
	if delta < 0 {
		editEnd = p
	}

	// Shift every pre-edit block position that lies at or after p by
	// delta, so all spans are expressed in post-edit coordinates.
	shifted := make([]Block, len(c.blocks))
	for i, b := range c.blocks {
		shifted[i] = shiftBlock(b, p, delta)
	}

	// Find the window of shifted blocks touching [p, editEnd]; discard
	// them and reparse that window, extended to blank-line boundaries.
	windowStart, windowEnd := p, editEnd
	for _, b := range shifted {
		if b.Span.End < windowStart || b.Span.Start > windowEnd {
			continue
		}
		if b.Span.Start < windowStart {
			windowStart = b.Span.Start
		}
		if b.Span.End > windowEnd {
			windowEnd = b.Span.End
		}
	}
	windowStart = extendToBlankBoundaryBackward(buf, windowStart)
	windowEnd = extendToBlankBoundaryForward(buf, windowEnd)
	if windowStart < 0 {
		windowStart = 0
	}
	if windowEnd > buf.Len() {
		windowEnd = buf.Len()
	}

	var result []Block
	for _, b := range shifted {
		if b.Span.End <= windowStart {
			result = append(result, b)
		}
	}
	result = append(result, parseRange(buf, windowStart, windowEnd)...)
	for _, b := range shifted {
		if b.Span.Start >= windowEnd {
			result = append(result, b)
		}
	}

	c.blocks = result
	c.rebuildLinkRefs(buf)
	logging.Debug("block: reparse window [%d,%d) replaced with %d blocks", windowStart, windowEnd, len(result))
}

// shiftBlock translates every offset-bearing field of b by delta when
// it lies at or after the edit point p, leaving fields entirely before
// p untouched.
func shiftBlock(b Block, p, delta int) Block {
	shift := func(s Span) Span {
		if s.Start >= p {
			s.Start += delta
			s.End += delta
		}
		return s
	}
	b.Span = shift(b.Span)
	b.HeaderID = shift(b.HeaderID)
	b.CodeLang = shift(b.CodeLang)
	b.CodeContent = shift(b.CodeContent)
	b.MathContent = shift(b.MathContent)
	b.FootnoteID = shift(b.FootnoteID)
	b.Content = shift(b.Content)
	return b
}

func extendToBlankBoundaryBackward(buf *gapbuffer.Buffer, pos int) int {
	if pos <= 0 {
		return 0
	}
	i := blockLineStart(buf, pos)
	for i > 0 {
		prevEnd := i - 1 // the '\n' ending the previous line
		prevStart := blockLineStart(buf, prevEnd)
		if prevStart == prevEnd {
			break // previous line was blank
		}
		i = prevStart
	}
	return i
}

func extendToBlankBoundaryForward(buf *gapbuffer.Buffer, pos int) int {
	n := buf.Len()
	i := pos
	for i < n {
		le := blockLineEnd(buf, i)
		if le == i {
			break // blank line
		}
		if le >= n {
			return n
		}
		i = le + 1
	}
	return i
}

// parseRange runs the precedence dispatch across [start, end),
// producing an ordered block sequence that covers it (paragraphs fill
// any gap a recognizer doesn't claim).
func parseRange(buf *gapbuffer.Buffer, start, end int) []Block {
	var blocks []Block
	pos := start
	n := end

	for pos < n {
		le := blockLineEnd(buf, pos)
		if le == pos {
			// blank line: skip it, it belongs to no block
			pos = le + 1
			continue
		}

		if b, ok := RecognizeAt(buf, pos); ok && b.Span.End <= n {
			blocks = append(blocks, b)
			pos = b.Span.End
			continue
		}

		// Paragraph: runs until a blank line or the start of a
		// recognizable block.
		paraEnd := pos
		for paraEnd < n {
			pLE := blockLineEnd(buf, paraEnd)
			if pLE == paraEnd {
				break
			}
			if paraEnd != pos {
				if _, ok := RecognizeAt(buf, paraEnd); ok {
					break
				}
			}
			if pLE >= n {
				paraEnd = pLE
				break
			}
			paraEnd = pLE + 1
		}
		blocks = append(blocks, Block{
			ID:      uuid.New(),
			Kind:    KindParagraph,
			Span:    Span{Start: pos, End: paraEnd},
			Content: Span{Start: pos, End: paraEnd},
		})
		pos = paraEnd
	}

	return blocks
}

// rebuildLinkRefs scans every line of the buffer for reference-link definition
// lines ("[id]: url \"title\"") and populates the lookup table used by
// ResolveLinkRef. This is a supplemented feature: spec.md's inline
// recognizers cover "[text][id]" but resolving id to a URL requires a
// document-wide side table built during the same forward pass the
// block cache already performs.
func (c *Cache) rebuildLinkRefs(buf *gapbuffer.Buffer) {
	refs := make(map[string]linkRef)
	n := buf.Len()
	pos := 0
	for pos < n {
		le := blockLineEnd(buf, pos)
		if id, url, title, ok := parseLinkRefDef(buf, pos, le); ok {
			refs[strings.ToLower(id)] = linkRef{url: url, title: title}
		}
		if le >= n {
			break
		}
		pos = le + 1
	}
	c.linkRefs = refs
}

// ResolveLinkRef looks up a reference-link id (matched
// case-insensitively, per common Markdown practice) and returns its
// url and title spans.
func (c *Cache) ResolveLinkRef(buf *gapbuffer.Buffer, id string) (url Span, title Span, ok bool) {
	ref, found := c.linkRefs[strings.ToLower(id)]
	return ref.url, ref.title, found
}

// parseLinkRefDef recognizes "[id]: url" optionally followed by a
// quoted title, anchored at a line start.
func parseLinkRefDef(buf *gapbuffer.Buffer, start, end int) (id string, url, title Span, ok bool) {
	if start >= end || buf.At(start) != '[' {
		return "", Span{}, Span{}, false
	}
	idEnd := -1
	for i := start + 1; i < end; i++ {
		if buf.At(i) == ']' {
			idEnd = i
			break
		}
	}
	if idEnd < 0 || idEnd == start+1 {
		return "", Span{}, Span{}, false
	}
	if idEnd+1 >= end || buf.At(idEnd+1) != ':' {
		return "", Span{}, Span{}, false
	}
	p := idEnd + 2
	for p < end && isBlank(buf.At(p)) {
		p++
	}
	urlStart := p
	for p < end && !isBlank(buf.At(p)) {
		p++
	}
	if p == urlStart {
		return "", Span{}, Span{}, false
	}
	urlSpan := Span{Start: urlStart, End: p}

	for p < end && isBlank(buf.At(p)) {
		p++
	}
	var titleSpan Span
	if p < end && buf.At(p) == '"' {
		ts := p + 1
		te := ts
		for te < end && buf.At(te) != '"' {
			te++
		}
		if te < end {
			titleSpan = Span{Start: ts, End: te}
		}
	}

	idSpan := Span{Start: start + 1, End: idEnd}
	return spanText(buf, idSpan), urlSpan, titleSpan, true
}

func spanText(buf *gapbuffer.Buffer, s Span) string {
	if s.Len() <= 0 {
		return ""
	}
	return string(buf.Substr(s.Start, s.End))
}
