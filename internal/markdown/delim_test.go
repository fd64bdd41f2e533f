package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewmd5/dawn-sub002/internal/gapbuffer"
)

func TestCheckDelim(t *testing.T) {
	cases := []struct {
		text  string
		pos   int
		style Style
		dlen  int
	}{
		{"***bold italic***", 0, Bold | Italic, 3},
		{"**bold**", 0, Bold, 2},
		{"*italic*", 0, Italic, 1},
		{"__underline__", 0, Underline, 2},
		{"===under===", 0, Underline, 3},
		{"==mark==", 0, Mark, 2},
		{"~~strike~~", 0, Strike, 2},
		{"~sub~", 0, Sub, 1},
		{"^sup^", 0, Sup, 1},
		{"`code`", 0, Code, 1},
	}
	for _, c := range cases {
		buf := gapbuffer.NewString(c.text)
		got, ok := CheckDelim(buf, c.pos)
		if !assert.True(t, ok, "%q: expected match", c.text) {
			continue
		}
		assert.Equal(t, c.style, got.Style, c.text)
		assert.Equal(t, c.dlen, got.DelimLen, c.text)
	}
}

func TestCheckDelim_DoubleBacktickNotCode(t *testing.T) {
	buf := gapbuffer.NewString("``not code``")
	_, ok := CheckDelim(buf, 0)
	require.False(t, ok, "expected no match for double backtick")
}

func TestFindClosing(t *testing.T) {
	buf := gapbuffer.NewString("**bold** text")
	m, ok := CheckDelim(buf, 0)
	require.True(t, ok, "expected opening delim")
	q, ok := FindClosing(buf, 0, m.Style, m.DelimLen)
	require.True(t, ok, "expected closing delim")
	require.Equal(t, 6, q)
}

func TestFindClosing_StopsAtParagraphBreak(t *testing.T) {
	buf := gapbuffer.NewString("**bold\n\nnot closed**")
	m, _ := CheckDelim(buf, 0)
	_, ok := FindClosing(buf, 0, m.Style, m.DelimLen)
	require.False(t, ok, "expected FindClosing to fail across a blank-line paragraph break")
}

func TestFindClosing_CodeCrossesNoNewline(t *testing.T) {
	buf := gapbuffer.NewString("`code\nmore`")
	m, _ := CheckDelim(buf, 0)
	_, ok := FindClosing(buf, 0, m.Style, m.DelimLen)
	require.False(t, ok, "expected code span closing not to cross a newline")
}
