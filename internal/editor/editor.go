// Package editor owns and wires together the pieces of the editor
// core: the gap buffer, the block cache, cursor/selection state, and
// the active config, whose wrap width drives visual-line navigation. One struct owns
// the buffer, the cache, and cursor state, with small setter/accessor
// methods around it, addressed by byte offset into a gapbuffer.Buffer
// rather than by line and column.
package editor

import (
	"golang.org/x/text/unicode/norm"

	"github.com/andrewmd5/dawn-sub002/internal/block"
	"github.com/andrewmd5/dawn-sub002/internal/config"
	"github.com/andrewmd5/dawn-sub002/internal/gapbuffer"
	"github.com/andrewmd5/dawn-sub002/internal/nav"
	"github.com/andrewmd5/dawn-sub002/internal/selection"
)

// Editor owns a document's buffer, its parsed block cache, and cursor
// and selection state. It never touches a terminal; rendering is the
// caller's job via internal/render and whatever Backend it supplies.
// Editor is not safe for concurrent use.
type Editor struct {
	buf    *gapbuffer.Buffer
	blocks *block.Cache
	sel    selection.Selection
	cfg    config.Config

	modified bool
}

// New creates an Editor over initial content, performing the first
// full block-cache parse immediately so BlockAt/Blocks are valid
// before the first render.
func New(initial string, cfg config.Config) *Editor {
	buf := gapbuffer.NewString(initial)
	cache := block.NewCache()
	cache.Parse(buf)
	return &Editor{
		buf:    buf,
		blocks: cache,
		sel:    selection.New(0),
		cfg:    cfg,
	}
}

// Buffer returns the editor's underlying buffer. Callers must not
// retain byte offsets into it across a mutating call.
func (e *Editor) Buffer() *gapbuffer.Buffer { return e.buf }

// Blocks returns the editor's block cache.
func (e *Editor) Blocks() *block.Cache { return e.blocks }

// Config returns the editor's active configuration.
func (e *Editor) Config() config.Config { return e.cfg }

// SetConfig replaces the active configuration (e.g. from a config
// file hot-reload); it does not itself trigger a reparse, since
// config changes affect wrap width and theme, not block structure.
func (e *Editor) SetConfig(cfg config.Config) { e.cfg = cfg }

// Modified reports whether the buffer has unsaved edits.
func (e *Editor) Modified() bool { return e.modified }

// Cursor returns the current cursor byte offset.
func (e *Editor) Cursor() int { return e.sel.Cursor() }

// Selection returns the current selection state.
func (e *Editor) Selection() selection.Selection { return e.sel }

// MoveCursor moves the cursor to pos, extending the selection if
// selecting is true.
func (e *Editor) MoveCursor(pos int, selecting bool) {
	e.sel.SetCursor(clampToBuffer(e.buf, pos), selecting)
}

// Insert writes data at the cursor (or replaces the active selection,
// if any), reparses the affected window of the block cache, and
// leaves the cursor just after the inserted text. Data is normalized
// to NFC first: pasted or IME-composed text sometimes arrives as a
// base rune followed by separate combining marks, and the grapheme
// width accounting in internal/text assumes the precomposed form a
// terminal actually renders as a single cell.
func (e *Editor) Insert(data []byte) error {
	if e.sel.HasSelection() {
		if err := e.deleteSelectionLocked(); err != nil {
			return err
		}
	}
	data = norm.NFC.Bytes(data)
	pos := e.sel.Cursor()
	if err := e.buf.Insert(pos, data); err != nil {
		return err
	}
	e.blocks.Reparse(e.buf, pos, len(data))
	e.sel.SetCursor(pos+len(data), false)
	e.modified = true
	return nil
}

// DeleteBackward deletes one grapheme cluster before the cursor (or
// the active selection, if any).
func (e *Editor) DeleteBackward() error {
	if e.sel.HasSelection() {
		return e.deleteSelectionLocked()
	}
	pos := e.sel.Cursor()
	if pos == 0 {
		return nil
	}
	start := graphemeStartBefore(e.buf, pos)
	e.buf.Delete(start, pos)
	e.blocks.Reparse(e.buf, start, start-pos)
	e.sel.SetCursor(start, false)
	e.modified = true
	return nil
}

// deleteSelectionLocked deletes the normalized selection range and
// reparses around it. Callers must check HasSelection first.
func (e *Editor) deleteSelectionLocked() error {
	lo, hi := e.sel.GetSelection()
	e.buf.Delete(lo, hi)
	e.blocks.Reparse(e.buf, lo, lo-hi)
	e.sel.SetCursor(lo, false)
	e.modified = true
	return nil
}

// LineStart, LineEnd, MoveLine, MoveVisualLine, WordLeft, WordRight,
// SkipBlockForward, and SkipBlockBackward expose internal/nav's
// free functions bound to this editor's buffer and block cache, so
// callers driving cursor keys don't need to juggle both explicitly.

func (e *Editor) LineStart(pos int) int { return nav.LineStart(e.buf, pos) }
func (e *Editor) LineEnd(pos int) int   { return nav.LineEnd(e.buf, pos) }

func (e *Editor) MoveLine(pos, delta int) int {
	return nav.MoveLine(e.buf, pos, delta)
}

func (e *Editor) MoveVisualLine(pos, delta int) int {
	return nav.MoveVisualLine(e.buf, pos, delta, e.cfg.WrapWidth)
}

func (e *Editor) MoveVisualLineBlockAware(pos, delta int) int {
	return nav.MoveVisualLineBlockAware(e.buf, e.blocks, pos, delta, e.cfg.WrapWidth)
}

func (e *Editor) WordLeft(pos int) int  { return nav.WordLeft(e.buf, pos) }
func (e *Editor) WordRight(pos int) int { return nav.WordRight(e.buf, pos) }

func (e *Editor) CharLeft(pos int) int  { return nav.CharLeft(e.buf, pos) }
func (e *Editor) CharRight(pos int) int { return nav.CharRight(e.buf, pos) }

func (e *Editor) SkipBlockForward(pos int) int {
	return nav.SkipBlockForward(e.buf, e.blocks, pos)
}

func (e *Editor) SkipBlockBackward(pos int) int {
	return nav.SkipBlockBackward(e.buf, e.blocks, pos)
}

func clampToBuffer(buf *gapbuffer.Buffer, pos int) int {
	if pos < 0 {
		return 0
	}
	if n := buf.Len(); pos > n {
		return n
	}
	return pos
}

// graphemeStartBefore finds the start of the grapheme cluster ending
// at pos via nav.CharLeft's cluster scan from the line start; this
// editor's backspace always deletes a whole cluster, never a combining
// mark in isolation. At a line start it steps back over the newline.
func graphemeStartBefore(buf *gapbuffer.Buffer, pos int) int {
	return nav.CharLeft(buf, pos)
}

func isUTF8Continuation(b byte) bool {
	return b&0xC0 == 0x80
}
