package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewmd5/dawn-sub002/internal/gapbuffer"
)

func TestCheckListMarker_Unordered(t *testing.T) {
	buf := gapbuffer.NewString("- item one")
	m, ok := CheckListMarker(buf, 0)
	require.True(t, ok)
	require.Equal(t, ListUnordered, m.Kind)
	require.Equal(t, 2, m.ContentStart)
}

func TestCheckListMarker_Ordered(t *testing.T) {
	buf := gapbuffer.NewString("12. item")
	m, ok := CheckListMarker(buf, 0)
	require.True(t, ok)
	require.Equal(t, ListOrdered, m.Kind)
	require.Equal(t, 4, m.ContentStart)
}

func TestCheckListMarker_TaskUnchecked(t *testing.T) {
	buf := gapbuffer.NewString("- [ ] todo")
	m, ok := CheckListMarker(buf, 0)
	require.True(t, ok)
	require.Equal(t, ListTaskUnchecked, m.Kind)
}

func TestCheckListMarker_TaskChecked(t *testing.T) {
	buf := gapbuffer.NewString("- [x] done")
	m, ok := CheckListMarker(buf, 0)
	require.True(t, ok)
	require.Equal(t, ListTaskChecked, m.Kind)
}

func TestCheckListMarker_NotAMarker(t *testing.T) {
	buf := gapbuffer.NewString("1.5 is not a list")
	_, ok := CheckListMarker(buf, 0)
	require.False(t, ok, "expected no match")
}

func TestCheckListMarker_EmptyItem(t *testing.T) {
	buf := gapbuffer.NewString("-\nnext")
	m, ok := CheckListMarker(buf, 0)
	require.True(t, ok)
	require.Equal(t, ListUnordered, m.Kind)
}
