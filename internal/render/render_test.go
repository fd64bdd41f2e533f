package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewmd5/dawn-sub002/internal/gapbuffer"
	"github.com/andrewmd5/dawn-sub002/internal/markdown"
)

func TestApplyStyle_Header(t *testing.T) {
	s := markdown.HeaderStyle(1)
	out := ApplyStyle(s, false)
	require.Equal(t, ColorRed, out.Foreground, "H1 fallback color")
	require.True(t, out.Has(AttrBold), "expected headers to be bold")
}

func TestApplyStyle_HeaderWithSizing(t *testing.T) {
	s := markdown.HeaderStyle(2)
	out := ApplyStyle(s, true)
	require.Equal(t, ColorForeground, out.Foreground, "expected default foreground when backend supports sizing")
}

func TestApplyStyle_Code(t *testing.T) {
	out := ApplyStyle(markdown.Code, false)
	require.Equal(t, ColorCodeBackground, out.Background)
	require.Equal(t, ColorPink, out.Foreground)
}

func TestGetScale(t *testing.T) {
	cases := []struct {
		level int
		scale int
	}{
		{1, 2}, {2, 2}, {3, 2}, {4, 1}, {5, 1}, {6, 1}, {0, 1},
	}
	for _, c := range cases {
		got := GetScale(markdown.HeaderStyle(c.level))
		assert.Equal(t, c.scale, got, "level %d", c.level)
	}
}

type fakeBackend struct {
	fracSupported bool
	intSupported  bool
	emitted       []string
}

func (f *fakeBackend) EmitGrapheme(s string, style Style, state OutputState) int {
	f.emitted = append(f.emitted, s)
	return 1
}
func (f *fakeBackend) SupportsFractionalScale() bool { return f.fracSupported }
func (f *fakeBackend) SupportsIntegerScale() bool    { return f.intSupported }

func TestOutputGrapheme_TypographicReplacement(t *testing.T) {
	buf := gapbuffer.NewString("a--b")
	backend := &fakeBackend{}
	pos := 1
	cells := OutputGrapheme(buf, &pos, markdown.Style(0), backend)
	require.Equal(t, 1, cells)
	require.Equal(t, 3, pos, "consumed '--'")
	require.Equal(t, []string{"–"}, backend.emitted)
}

func TestOutputGrapheme_CodeSkipsTypographic(t *testing.T) {
	buf := gapbuffer.NewString("a--b")
	backend := &fakeBackend{}
	pos := 1
	OutputGrapheme(buf, &pos, markdown.Code, backend)
	require.Equal(t, 2, pos, "single raw byte, no replacement")
	require.Equal(t, "-", backend.emitted[0], "raw '-'")
}
