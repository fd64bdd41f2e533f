package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewmd5/dawn-sub002/internal/gapbuffer"
)

func TestCheckLink(t *testing.T) {
	buf := gapbuffer.NewString("[label](https://example.com)")
	m, ok := CheckLink(buf, 0)
	require.True(t, ok)
	require.Equal(t, "label", m.Spans[0].Text(buf))
	require.Equal(t, "https://example.com", m.Spans[1].Text(buf))
}

func TestCheckLink_WithTitle(t *testing.T) {
	buf := gapbuffer.NewString(`[label](https://example.com "a title")`)
	m, ok := CheckLink(buf, 0)
	require.True(t, ok)
	require.Equal(t, "https://example.com", m.Spans[1].Text(buf))
}

func TestCheckLink_NoMatch(t *testing.T) {
	buf := gapbuffer.NewString("[label] no paren")
	_, ok := CheckLink(buf, 0)
	require.False(t, ok, "expected no match")
}

func TestCheckReferenceLink(t *testing.T) {
	buf := gapbuffer.NewString("[label][id]")
	m, ok := CheckReferenceLink(buf, 0)
	require.True(t, ok)
	require.Equal(t, "id", m.Spans[1].Text(buf))
}

func TestCheckReferenceLink_Shorthand(t *testing.T) {
	buf := gapbuffer.NewString("[label][]")
	m, ok := CheckReferenceLink(buf, 0)
	require.True(t, ok)
	require.Equal(t, m.Spans[0], m.Spans[1], "expected shorthand id span to equal text span")
}

func TestCheckFootnoteRef(t *testing.T) {
	buf := gapbuffer.NewString("text[^1] more")
	m, ok := CheckFootnoteRef(buf, 4)
	require.True(t, ok)
	require.Equal(t, "1", m.Span.Text(buf))
}

func TestCheckFootnoteDef(t *testing.T) {
	buf := gapbuffer.NewString("[^1]: the footnote text")
	id, content, ok := CheckFootnoteDef(buf, 0)
	require.True(t, ok)
	require.Equal(t, "1", id.Text(buf))
	require.Equal(t, "the footnote text", content.Text(buf))
}
