package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewmd5/dawn-sub002/internal/gapbuffer"
)

func TestFindElementAt_Image(t *testing.T) {
	buf := gapbuffer.NewString("before ![alt](pic.png) after")
	kind, start := FindElementAt(buf, 12) // on the ']' closing "alt"
	require.Equal(t, ElementImage, kind)
	require.Equal(t, 7, start)
}

func TestFindElementAt_Link(t *testing.T) {
	buf := gapbuffer.NewString("see [label](url) here")
	kind, start := FindElementAt(buf, 6)
	require.Equal(t, ElementLink, kind)
	require.Equal(t, 4, start)
}

func TestFindElementAt_None(t *testing.T) {
	buf := gapbuffer.NewString("plain text with nothing special")
	kind, _ := FindElementAt(buf, 10)
	require.Equal(t, ElementNone, kind)
}

func TestFindElementAt_InlineMath(t *testing.T) {
	buf := gapbuffer.NewString("the value $x+1$ matters")
	kind, start := FindElementAt(buf, 12)
	require.Equal(t, ElementInlineMath, kind)
	require.Equal(t, 10, start)
}
