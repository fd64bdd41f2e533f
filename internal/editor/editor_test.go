package editor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewmd5/dawn-sub002/internal/config"
)

func TestNew_ParsesInitialBlocks(t *testing.T) {
	e := New("# Title\n\npara\n", config.Default())
	require.Len(t, e.Blocks().Blocks(), 2)
}

func TestInsert_AdvancesCursorAndReparses(t *testing.T) {
	e := New("hello", config.Default())
	e.MoveCursor(5, false)
	require.NoError(t, e.Insert([]byte(" world")))
	require.Equal(t, 11, e.Cursor())
	require.Equal(t, "hello world", string(e.Buffer().Bytes()))
	require.True(t, e.Modified())
}

func TestInsert_ReplacesSelection(t *testing.T) {
	e := New("hello world", config.Default())
	e.MoveCursor(0, false)
	e.MoveCursor(5, true) // select "hello"
	require.NoError(t, e.Insert([]byte("goodbye")))
	require.Equal(t, "goodbye world", string(e.Buffer().Bytes()))
}

func TestDeleteBackward_NoSelection(t *testing.T) {
	e := New("hello", config.Default())
	e.MoveCursor(5, false)
	require.NoError(t, e.DeleteBackward())
	require.Equal(t, "hell", string(e.Buffer().Bytes()))
	require.Equal(t, 4, e.Cursor())
}

func TestDeleteBackward_WithSelection(t *testing.T) {
	e := New("hello world", config.Default())
	e.MoveCursor(0, false)
	e.MoveCursor(5, true)
	require.NoError(t, e.DeleteBackward())
	require.Equal(t, " world", string(e.Buffer().Bytes()))
}

func TestInsert_NormalizesToNFC(t *testing.T) {
	e := New("", config.Default())
	decomposed := "é" // "e" plus a combining acute accent, NFD form
	require.NoError(t, e.Insert([]byte(decomposed)))
	precomposed := "é" // single precomposed rune, NFC form
	require.Equal(t, precomposed, string(e.Buffer().Bytes()))
}
