// Package block parses a buffer into an ordered sequence of top-level
// Markdown blocks: fenced code, block math, tables, standalone images,
// headers, horizontal rules, blockquotes, list items, footnote
// definitions, and paragraphs. Dispatch is a closed variant
// (Kind/RecognizeAt) so precedence is encoded once, in match order,
// rather than scattered across callers.
package block

import (
	"github.com/google/uuid"

	"github.com/andrewmd5/dawn-sub002/internal/gapbuffer"
	"github.com/andrewmd5/dawn-sub002/internal/markdown"
)

// Kind is the closed set of top-level block types.
type Kind int

const (
	KindParagraph Kind = iota
	KindCodeBlock
	KindBlockMath
	KindTable
	KindImage
	KindHeader
	KindHorizontalRule
	KindBlockquote
	KindListItem
	KindFootnoteDef
)

// Block is one top-level element of the parsed document. Payload
// fields are only meaningful for the Kind they're documented against;
// all other fields are zero.
type Block struct {
	ID   uuid.UUID
	Kind Kind
	Span Span

	HeaderLevel int           // KindHeader
	HeaderID    Span          // KindHeader, optional {#id}
	CodeLang    Span          // KindCodeBlock
	CodeContent Span          // KindCodeBlock
	MathContent Span          // KindBlockMath
	Table       markdown.TableMatch // KindTable
	Image       markdown.ImageAttrs // KindImage
	ListKind    markdown.ListKind   // KindListItem
	ListIndent  int                 // KindListItem
	FootnoteID  Span                // KindFootnoteDef
	Content     Span                // the block's own content region, excluding marker bytes, when applicable
}

// Span is a half-open byte range [Start, End) into a gapbuffer.Buffer.
type Span struct {
	Start, End int
}

func (s Span) Len() int { return s.End - s.Start }

func fromMd(s markdown.Span) Span { return Span{Start: s.Start, End: s.End} }
