package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewmd5/dawn-sub002/internal/block"
	"github.com/andrewmd5/dawn-sub002/internal/gapbuffer"
)

func renderToString(t *testing.T, src string, width int) string {
	t.Helper()
	buf := gapbuffer.NewString(src)
	cache := block.NewCache()
	cache.Parse(buf)
	backend := &fakeBackend{}
	RenderDocument(buf, cache, width, backend)
	return strings.Join(backend.emitted, "")
}

func TestRenderDocument_HeaderAndParagraph(t *testing.T) {
	out := renderToString(t, "# Title\n\nHello world.\n", 80)
	require.Contains(t, out, "Title")
	require.Contains(t, out, "Hello world.")
}

func TestRenderDocument_BoldInlineTogglesAndRestores(t *testing.T) {
	out := renderToString(t, "plain **bold** plain\n", 80)
	require.Contains(t, out, "plain")
	require.Contains(t, out, "bold")
	require.NotContains(t, out, "*", "delimiter bytes should not appear in rendered output")
}

func TestRenderDocument_CodeBlockSkipsTypographicAndDelims(t *testing.T) {
	out := renderToString(t, "```\na--b **not bold**\n```\n", 80)
	require.Contains(t, out, "--", "code block should emit raw '--' without typographic replacement")
	require.Contains(t, out, "**not bold**", "code block should emit delimiter bytes literally")
}

func TestRenderDocument_HorizontalRuleEmitsFullWidth(t *testing.T) {
	out := renderToString(t, "para\n\n---\n\npara2\n", 10)
	require.Contains(t, out, strings.Repeat("─", 10), "expected a full-width rule")
}

func TestRenderDocument_ListItemRendersMarker(t *testing.T) {
	out := renderToString(t, "- one\n- two\n", 80)
	require.Contains(t, out, "one")
	require.Contains(t, out, "two")
}

func TestRenderDocument_TableRendersCellsWithoutPipesFromSource(t *testing.T) {
	out := renderToString(t, "| a | b |\n| - | - |\n| 1 | 2 |\n", 80)
	for _, want := range []string{"a", "b", "1", "2"} {
		require.Contains(t, out, want)
	}
	require.NotContains(t, out, "|", "source pipe bytes should not appear in rendered output")
}
