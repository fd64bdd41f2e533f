package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewmd5/dawn-sub002/internal/gapbuffer"
)

func TestCheckHTMLEntity_Named(t *testing.T) {
	buf := gapbuffer.NewString("&amp;")
	r, total, ok := CheckHTMLEntity(buf, 0)
	require.True(t, ok)
	require.Equal(t, '&', r)
	require.Equal(t, 5, total)
}

func TestCheckHTMLEntity_Decimal(t *testing.T) {
	buf := gapbuffer.NewString("&#169;")
	r, total, ok := CheckHTMLEntity(buf, 0)
	require.True(t, ok)
	require.Equal(t, '©', r)
	require.Equal(t, 6, total)
}

func TestCheckHTMLEntity_Hex(t *testing.T) {
	buf := gapbuffer.NewString("&#xA9;")
	r, total, ok := CheckHTMLEntity(buf, 0)
	require.True(t, ok)
	require.Equal(t, '©', r)
	require.Equal(t, 6, total)
}

func TestCheckHTMLEntity_Unknown(t *testing.T) {
	buf := gapbuffer.NewString("&notarealentity;")
	_, _, ok := CheckHTMLEntity(buf, 0)
	require.False(t, ok, "expected no match for unknown entity")
}

func TestCheckTypographic(t *testing.T) {
	cases := []struct {
		text string
		r    rune
		n    int
	}{
		{"---", '—', 3},
		{"--", '–', 2},
		{"...", '…', 3},
		{"(c)", '©', 3},
		{"(tm)", '™', 4},
		{"+-", '±', 2},
		{"<<", '«', 2},
	}
	for _, c := range cases {
		buf := gapbuffer.NewString(c.text)
		r, n, ok := CheckTypographic(buf, 0)
		if !assert.True(t, ok, "%q: expected match", c.text) {
			continue
		}
		assert.Equal(t, c.r, r, c.text)
		assert.Equal(t, c.n, n, c.text)
	}
}

func TestCheckEmojiShortcode(t *testing.T) {
	buf := gapbuffer.NewString(":rocket: launch")
	r, total, ok := CheckEmojiShortcode(buf, 0)
	require.True(t, ok)
	require.Equal(t, '🚀', r)
	require.Equal(t, 8, total)
}

func TestCheckEmojiShortcode_Unknown(t *testing.T) {
	buf := gapbuffer.NewString(":not-a-real-emoji:")
	_, _, ok := CheckEmojiShortcode(buf, 0)
	require.False(t, ok, "expected no match for unknown shortcode")
}
