package block

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewmd5/dawn-sub002/internal/gapbuffer"
	"github.com/andrewmd5/dawn-sub002/internal/markdown"
)

func TestParse_HeaderAndParagraph(t *testing.T) {
	buf := gapbuffer.NewString("# Title\n\nSome paragraph text.\n")
	c := NewCache()
	c.Parse(buf)
	blocks := c.Blocks()
	require.Len(t, blocks, 2)
	require.Equal(t, KindHeader, blocks[0].Kind)
	require.Equal(t, 1, blocks[0].HeaderLevel)
	require.Equal(t, KindParagraph, blocks[1].Kind)
}

func TestParse_CodeBlockPrecedesParagraph(t *testing.T) {
	buf := gapbuffer.NewString("```go\ncode here\n```\n\nafter text\n")
	c := NewCache()
	c.Parse(buf)
	blocks := c.Blocks()
	require.Len(t, blocks, 2)
	require.Equal(t, KindCodeBlock, blocks[0].Kind)
}

func TestParse_SetextUnderlinePromotesParagraphToHeader(t *testing.T) {
	buf := gapbuffer.NewString("Title\n===\n\nSubtitle\n---\n\nafter\n")
	c := NewCache()
	c.Parse(buf)
	blocks := c.Blocks()
	require.Len(t, blocks, 3)
	require.Equal(t, KindHeader, blocks[0].Kind)
	require.Equal(t, 1, blocks[0].HeaderLevel)
	require.Equal(t, "Title", string(buf.Substr(blocks[0].Content.Start, blocks[0].Content.End)))
	require.Equal(t, KindHeader, blocks[1].Kind)
	require.Equal(t, 2, blocks[1].HeaderLevel)
	require.Equal(t, KindParagraph, blocks[2].Kind)
}

func TestParse_TaskListTakesPrecedenceOverBareList(t *testing.T) {
	buf := gapbuffer.NewString("- [x] done\n- not a task\n")
	c := NewCache()
	c.Parse(buf)
	blocks := c.Blocks()
	require.NotEmpty(t, blocks)
	require.Equal(t, KindListItem, blocks[0].Kind)
	require.Equal(t, markdown.ListTaskChecked, blocks[0].ListKind)
}

func TestParse_BlocksCoverNonBlankRegionsExactly(t *testing.T) {
	src := "# H\n\npara one\npara continued\n\n- item\n"
	buf := gapbuffer.NewString(src)
	c := NewCache()
	c.Parse(buf)
	blocks := c.Blocks()
	for i := 1; i < len(blocks); i++ {
		require.GreaterOrEqual(t, blocks[i].Span.Start, blocks[i-1].Span.End, "block %d overlaps block %d", i, i-1)
	}
}

func TestResolveLinkRef(t *testing.T) {
	buf := gapbuffer.NewString("See [a link][ref1] here.\n\n[ref1]: https://example.com \"A Title\"\n")
	c := NewCache()
	c.Parse(buf)
	url, title, ok := c.ResolveLinkRef(buf, "REF1")
	require.True(t, ok, "expected a resolvable ref")
	require.Equal(t, "https://example.com", string(buf.Substr(url.Start, url.End)))
	require.Equal(t, "A Title", string(buf.Substr(title.Start, title.End)))
}

func TestReparse_InsertionShiftsLaterBlocks(t *testing.T) {
	buf := gapbuffer.NewString("# Title\n\npara one\n")
	c := NewCache()
	c.Parse(buf)

	ins := "X"
	buf.InsertString(0, ins)
	c.Reparse(buf, 0, len(ins))

	blocks := c.Blocks()
	require.Len(t, blocks, 2)
	require.Contains(t, []Kind{KindParagraph, KindHeader}, blocks[0].Kind, "unexpected kind after reparse")
}
