package gapbuffer

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestBuffer_LenAndAt(t *testing.T) {
	b := NewString("hello")
	require.Equal(t, 5, b.Len())
	for i, want := range []byte("hello") {
		require.Equal(t, want, b.At(i), "At(%d)", i)
	}
}

func TestBuffer_At_ClampsOutOfRange(t *testing.T) {
	b := NewString("abc")
	require.Equal(t, byte('a'), b.At(-5))
	require.Equal(t, byte('c'), b.At(100))
}

func TestBuffer_InsertMidBuffer(t *testing.T) {
	b := NewString("helloworld")
	require.NoError(t, b.InsertString(5, " "))
	require.Equal(t, "hello world", string(b.Bytes()))
}

func TestBuffer_InsertAtStartAndEnd(t *testing.T) {
	b := NewString("bc")
	b.InsertString(0, "a")
	b.InsertString(b.Len(), "d")
	require.Equal(t, "abcd", string(b.Bytes()))
}

func TestBuffer_DeleteRange(t *testing.T) {
	b := NewString("hello world")
	b.Delete(5, 11)
	require.Equal(t, "hello", string(b.Bytes()))
}

func TestBuffer_Delete_NoOpWhenInverted(t *testing.T) {
	b := NewString("hello")
	b.Delete(3, 1)
	require.Equal(t, "hello", string(b.Bytes()))
}

func TestBuffer_RoundTripInsertDelete(t *testing.T) {
	b := NewString("the quick brown fox")
	before := string(b.Bytes())
	require.NoError(t, b.InsertString(4, "very "))
	b.Delete(4, 9)
	require.Equal(t, before, string(b.Bytes()))
}

func TestBuffer_Substr(t *testing.T) {
	b := NewString("0123456789")
	require.Equal(t, "234", string(b.Substr(2, 5)))
	require.Nil(t, b.Substr(5, 2))
	require.Equal(t, "0123456789", string(b.Substr(-3, 1000)))
}

func TestBuffer_CodepointAt_ASCII(t *testing.T) {
	b := NewString("abc")
	r, size := b.CodepointAt(1)
	require.Equal(t, 'b', r)
	require.Equal(t, 1, size)
}

func TestBuffer_CodepointAt_MultiByte(t *testing.T) {
	b := NewString("aéb") // 'a', 'é' (2 bytes), 'b'
	r, size := b.CodepointAt(1)
	require.Equal(t, 'é', r)
	require.Equal(t, 2, size)
}

func TestBuffer_CodepointAt_Malformed(t *testing.T) {
	b := New([]byte{'a', 0xff, 'b'})
	r, size := b.CodepointAt(1)
	require.Equal(t, utf8.RuneError, r)
	require.Equal(t, 1, size)
}

func TestBuffer_CodepointAt_OutOfRange(t *testing.T) {
	b := NewString("a")
	r, size := b.CodepointAt(5)
	require.Equal(t, utf8.RuneError, r)
	require.Equal(t, 0, size)
}

func TestBuffer_GapMovesBothDirections(t *testing.T) {
	b := NewString("0123456789")
	// Insert at 8 (gap moves left from the end), then at 2 (gap moves
	// left again), then back at 9 (gap moves right), exercising both
	// branches of moveGapTo.
	b.InsertString(8, "Y")
	b.InsertString(2, "X")
	b.InsertString(9, "Z")
	require.Equal(t, "01X234567ZY89", string(b.Bytes()))
}

func TestBuffer_ManySmallInsertsAtSamePoint(t *testing.T) {
	b := NewString("")
	for i := 0; i < 1000; i++ {
		require.NoError(t, b.InsertString(b.Len(), "x"), "insert at %d", i)
	}
	require.Equal(t, 1000, b.Len())
}
