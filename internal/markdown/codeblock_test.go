package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewmd5/dawn-sub002/internal/gapbuffer"
)

func TestCheckCodeBlock(t *testing.T) {
	buf := gapbuffer.NewString("```go\nfmt.Println(1)\n```\nafter")
	m, ok := CheckCodeBlock(buf, 0)
	require.True(t, ok)
	require.Equal(t, "go", m.Lang.Text(buf))
	require.Equal(t, "fmt.Println(1)\n", m.Content.Text(buf))
	require.Equal(t, len("```go\nfmt.Println(1)\n```\n"), m.TotalLen)
}

func TestCheckCodeBlock_NoLang(t *testing.T) {
	buf := gapbuffer.NewString("```\nplain\n```")
	m, ok := CheckCodeBlock(buf, 0)
	require.True(t, ok)
	require.Equal(t, 0, m.Lang.Len())
}

func TestCheckCodeBlock_MissingClose(t *testing.T) {
	buf := gapbuffer.NewString("```go\nunterminated")
	_, ok := CheckCodeBlock(buf, 0)
	require.False(t, ok, "expected no match without closing fence")
}

func TestCheckCodeBlock_RequiresLineStart(t *testing.T) {
	buf := gapbuffer.NewString("text ```go")
	_, ok := CheckCodeBlock(buf, 5)
	require.False(t, ok, "expected no match mid-line")
}

func TestCheckCodeBlock_LongerClosingFenceRequired(t *testing.T) {
	buf := gapbuffer.NewString("````\n```\nstill inside\n````")
	m, ok := CheckCodeBlock(buf, 0)
	require.True(t, ok)
	require.Equal(t, "```\nstill inside\n", m.Content.Text(buf))
}
