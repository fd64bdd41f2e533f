// Package markdown implements the editor core's Markdown element
// recognizer: a set of pure functions that, given a buffer and a byte
// position, decide whether some Markdown construct starts there and
// report its span. No recognizer here mutates the buffer or retains
// state between calls; the block cache (internal/block) is the only
// caller that accumulates recognizer results into a parse.
package markdown

import "github.com/andrewmd5/dawn-sub002/internal/gapbuffer"

// Span is a half-open byte interval [Start, End) over a buffer.
type Span struct {
	Start, End int
}

// Len returns End - Start, or 0 if the span is empty or inverted.
func (s Span) Len() int {
	if s.End <= s.Start {
		return 0
	}
	return s.End - s.Start
}

// Text extracts the span's bytes from buf as a string.
func (s Span) Text(buf *gapbuffer.Buffer) string {
	return string(buf.Substr(s.Start, s.End))
}

// Match1 is a recognizer result carrying one semantic span plus the
// total syntactic extent consumed, delimiters included.
type Match1 struct {
	Span     Span
	TotalLen int
}

// Match2 is a recognizer result carrying two semantic spans (e.g. link
// text and URL) plus the total syntactic extent.
type Match2 struct {
	Spans    [2]Span
	TotalLen int
}

// ImageAttrs is the result of CheckImage: alt text, optional title,
// path, and the optional {width height} extension. Width and Height
// encode positive=pixels, negative=percent, zero=unset.
type ImageAttrs struct {
	Alt, Title, Path Span
	Width, Height    int
	TotalLen         int
}

// Align is a table column's horizontal alignment, from the GFM
// delimiter row syntax.
type Align int

const (
	AlignDefault Align = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// MaxCols bounds the number of columns CheckTable will report, per
// spec's suggested table size ceiling.
const MaxCols = 64

// TableMatch is the result of CheckTable.
type TableMatch struct {
	ColCount, RowCount int
	Align              [MaxCols]Align
	TotalLen           int
}

// AutolinkMatch is the result of CheckAutolink.
type AutolinkMatch struct {
	Span     Span
	TotalLen int
	IsEmail  bool
}

// FracScale describes a fractional glyph-size scale: integer Scale in
// [1,7] plus a Num/Denom fraction with Denom > Num >= 0.
type FracScale struct {
	Scale      int
	Num, Denom int
}

// DelimMatch is the result of CheckDelim: the inline style the
// delimiter bytes encode, and how many bytes the delimiter itself
// occupies.
type DelimMatch struct {
	Style    Style
	DelimLen int
}

// ListKind distinguishes the four kinds of list item spec.md names.
type ListKind int

const (
	ListUnordered ListKind = iota
	ListOrdered
	ListTaskUnchecked
	ListTaskChecked
)

// ListMatch is the result of CheckListMarker.
type ListMatch struct {
	Kind         ListKind
	Indent       int // leading spaces before the marker
	MarkerLen    int // bytes from pos (indent included) to ContentStart
	ContentStart int // byte offset where item content begins
}

// ElementKind identifies which recognizer matched in FindElementAt.
type ElementKind int

const (
	ElementNone ElementKind = iota
	ElementImage
	ElementLink
	ElementFootnoteRef
	ElementInlineMath
	ElementAutolink
)
