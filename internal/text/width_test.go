package text

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewmd5/dawn-sub002/internal/gapbuffer"
)

func TestGraphemeWidth_ASCII(t *testing.T) {
	buf := gapbuffer.NewString("abc")
	cells, next := GraphemeWidth(buf, 0)
	require.Equal(t, 1, cells)
	require.Equal(t, 1, next)
}

func TestGraphemeWidth_Control(t *testing.T) {
	buf := gapbuffer.New([]byte{0x01, 'a'})
	cells, next := GraphemeWidth(buf, 0)
	require.Equal(t, 1, cells)
	require.Equal(t, 1, next)
}

func TestGraphemeWidth_WideCJK(t *testing.T) {
	buf := gapbuffer.NewString("漢a")
	cells, next := GraphemeWidth(buf, 0)
	require.Equal(t, 2, cells)
	require.Equal(t, len("漢"), next)
}

func TestGraphemeWidth_CombiningMark(t *testing.T) {
	// "e" + combining acute accent U+0301 forms a single grapheme
	// cluster that should report width 1, not 2.
	buf := gapbuffer.NewString("éx")
	cells, next := GraphemeWidth(buf, 0)
	require.Equal(t, 1, cells)
	require.Equal(t, len("é"), next)
}

func TestDisplayWidth_Additive(t *testing.T) {
	buf := gapbuffer.NewString("hello漢字world")
	n := buf.Len()
	full := DisplayWidth(buf, 0, n)
	mid := len("hello漢字")
	left := DisplayWidth(buf, 0, mid)
	right := DisplayWidth(buf, mid, n)
	require.Equal(t, full, left+right, "DisplayWidth not additive")
}

func TestFindWrapPoint_BreaksAtSpace(t *testing.T) {
	buf := gapbuffer.NewString("the quick brown fox")
	split, used := FindWrapPoint(buf, 0, buf.Len(), 12)
	// "the quick " is 10 cells (including trailing space); "the quick
	// brown" overflows 12, so the break should land right after the
	// last space within the limit.
	want := len("the quick ")
	require.Equal(t, want, split, "text: %q", string(buf.Substr(0, split)))
	require.Equal(t, DisplayWidth(buf, 0, split), used)
}

func TestFindWrapPoint_HardBreakNoSpace(t *testing.T) {
	buf := gapbuffer.NewString("supercalifragilistic")
	split, _ := FindWrapPoint(buf, 0, buf.Len(), 5)
	require.Equal(t, 5, split)
}

func TestFindWrapPoint_WholeLineFits(t *testing.T) {
	buf := gapbuffer.NewString("short")
	split, used := FindWrapPoint(buf, 0, buf.Len(), 80)
	require.Equal(t, buf.Len(), split)
	require.Equal(t, 5, used)
}

func TestFindWrapPoint_BreaksAtHyphen(t *testing.T) {
	buf := gapbuffer.NewString("well-formed-document")
	split, _ := FindWrapPoint(buf, 0, buf.Len(), 6)
	want := len("well-")
	require.Equal(t, want, split)
}
