// Package gapbuffer implements the editable byte store at the bottom
// of the editor core: a gap buffer offering amortized O(1) insert and
// delete at a moving edit point, O(1) random byte reads, and O(k) bulk
// inserts. Every other core package (markdown, block, wrap, nav,
// selection) addresses text through byte offsets into a Buffer; none
// of them retain offsets across a mutation, since any Insert or Delete
// invalidates them.
package gapbuffer

import (
	"unicode/utf8"

	"github.com/andrewmd5/dawn-sub002/internal/direrr"
)

// minGap is the smallest gap size we ever leave open after a grow, so
// that a short run of single-character inserts doesn't reallocate on
// every keystroke.
const minGap = 64

// Buffer is a byte sequence with a movable contiguous free region (the
// "gap") used to make edits at or near the same position cheap. The
// zero value is not usable; construct with New or NewString.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	data            []byte
	gapStart, gapEnd int // data[gapStart:gapEnd] is the free region
}

// New creates a Buffer containing a copy of initial.
func New(initial []byte) *Buffer {
	b := &Buffer{}
	b.data = make([]byte, len(initial)+minGap)
	copy(b.data, initial)
	b.gapStart = len(initial)
	b.gapEnd = len(b.data)
	return b
}

// NewString is a convenience wrapper around New.
func NewString(initial string) *Buffer {
	return New([]byte(initial))
}

// Len returns the number of logical bytes currently stored (excluding
// the gap).
func (b *Buffer) Len() int {
	return len(b.data) - (b.gapEnd - b.gapStart)
}

// physical maps a logical offset to a physical index into b.data,
// skipping over the gap.
func (b *Buffer) physical(logical int) int {
	if logical < b.gapStart {
		return logical
	}
	return logical + (b.gapEnd - b.gapStart)
}

// At returns the byte at logical offset i. Defined for 0 <= i < Len();
// out-of-range reads are clamped to the nearest valid offset per
// spec's BoundsInvalid recovery policy rather than panicking or
// erroring.
func (b *Buffer) At(i int) byte {
	n := b.Len()
	if n == 0 {
		return 0
	}
	if i < 0 {
		i = 0
	} else if i >= n {
		i = n - 1
	}
	return b.data[b.physical(i)]
}

// Substr returns a freshly allocated copy of the bytes in [a, b). The
// range is clamped to [0, Len()]; if a > b after clamping, an empty
// slice is returned.
func (buf *Buffer) Substr(a, b int) []byte {
	n := buf.Len()
	a = clamp(a, 0, n)
	b = clamp(b, 0, n)
	if a >= b {
		return nil
	}
	out := make([]byte, b-a)
	for i := range out {
		out[i] = buf.At(a + i)
	}
	return out
}

// Bytes returns a freshly allocated copy of the whole document. Used
// by callers (e.g. the block cache) that need a full-reparse fallback
// over a contiguous slice.
func (b *Buffer) Bytes() []byte {
	return b.Substr(0, b.Len())
}

// moveGapTo slides the gap so that it starts at logical offset pos.
func (b *Buffer) moveGapTo(pos int) {
	if pos == b.gapStart {
		return
	}
	if pos < b.gapStart {
		n := b.gapStart - pos
		copy(b.data[b.gapEnd-n:b.gapEnd], b.data[pos:b.gapStart])
		b.gapStart, b.gapEnd = pos, b.gapEnd-n
	} else {
		n := pos - b.gapStart
		copy(b.data[b.gapStart:b.gapStart+n], b.data[b.gapEnd:b.gapEnd+n])
		b.gapStart, b.gapEnd = b.gapStart+n, b.gapEnd+n
	}
}

// Grow ensures the gap has room for at least n more bytes, growing the
// backing array if needed. Returns direrr.ErrOutOfMemory if the
// runtime allocator refuses to grow (recovered from an allocation
// panic); every other Buffer operation is infallible.
func (b *Buffer) Grow(n int) (err error) {
	if b.gapEnd-b.gapStart >= n {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = direrr.ErrOutOfMemory
		}
	}()

	need := n - (b.gapEnd - b.gapStart)
	if need < minGap {
		need = minGap
	}
	grown := make([]byte, len(b.data)+need)
	copy(grown, b.data[:b.gapStart])
	newGapEnd := b.gapEnd + need
	copy(grown[newGapEnd:], b.data[b.gapEnd:])
	b.data = grown
	b.gapEnd = newGapEnd
	return nil
}

// Insert inserts bytes at logical offset at, clamped into [0, Len()].
// Amortized O(1) when at is the same or adjacent to the previous edit
// site (the gap is already there), O(|data|) when the gap must move
// across the buffer, and O(k) to copy in the k inserted bytes.
//
// Mutations invalidate every external byte-offset reference into this
// Buffer (per spec): the caller is responsible for updating or
// discarding cursors, selections, and the block cache window.
func (b *Buffer) Insert(at int, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	at = clamp(at, 0, b.Len())
	if err := b.Grow(len(data)); err != nil {
		return err
	}
	b.moveGapTo(at)
	copy(b.data[b.gapStart:], data)
	b.gapStart += len(data)
	return nil
}

// InsertString is a convenience wrapper around Insert.
func (b *Buffer) InsertString(at int, s string) error {
	return b.Insert(at, []byte(s))
}

// Delete removes the bytes in [a, b), clamped to [0, Len()]. A no-op
// if a >= b after clamping.
func (buf *Buffer) Delete(a, b int) {
	n := buf.Len()
	a = clamp(a, 0, n)
	b = clamp(b, 0, n)
	if a >= b {
		return
	}
	buf.moveGapTo(b)
	buf.gapStart -= b - a
}

// CodepointAt decodes the UTF-8 codepoint starting at logical offset
// i, returning the rune and the number of bytes it occupies. Malformed
// input yields utf8.RuneError and advances by exactly one byte, per
// spec's EncodingMalformed recovery policy; this is never signaled as
// an error return, only as the sentinel rune value (compare against
// utf8.RuneError and, if desired, log direrr.ErrEncodingMalformed).
func (b *Buffer) CodepointAt(i int) (r rune, size int) {
	n := b.Len()
	if i < 0 || i >= n {
		return utf8.RuneError, 0
	}
	// Decode from a small local window; UTF-8 sequences are at most 4
	// bytes, so a bounded substr avoids pulling in the whole document.
	end := i + utf8.UTFMax
	if end > n {
		end = n
	}
	window := b.Substr(i, end)
	r, size = utf8.DecodeRune(window)
	if r == utf8.RuneError && size <= 1 {
		return utf8.RuneError, 1
	}
	return r, size
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
