package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewmd5/dawn-sub002/internal/gapbuffer"
)

func TestCheckHeader(t *testing.T) {
	cases := []struct {
		text    string
		level   int
		content int
		ok      bool
	}{
		{"# Title", 1, 2, true},
		{"## Title", 2, 3, true},
		{"###### Title", 6, 7, true},
		{"####### too many", 0, 0, false},
		{"#NoSpace", 0, 0, false},
		{"#\n", 1, 1, true},
		{"    # indented code", 0, 0, false},
		{"text", 0, 0, false},
	}
	for _, c := range cases {
		buf := gapbuffer.NewString(c.text)
		level, content, ok := CheckHeader(buf, 0)
		if !assert.Equal(t, c.ok, ok, c.text) || !ok {
			continue
		}
		assert.Equal(t, c.level, level, c.text)
		assert.Equal(t, c.content, content, c.text)
	}
}

func TestCheckSetextUnderline(t *testing.T) {
	buf := gapbuffer.NewString("===\n")
	level, total, ok := CheckSetextUnderline(buf, 0)
	require.True(t, ok)
	require.Equal(t, 1, level)
	require.Equal(t, 4, total)

	buf2 := gapbuffer.NewString("---")
	level2, total2, ok2 := CheckSetextUnderline(buf2, 0)
	require.True(t, ok2)
	require.Equal(t, 2, level2)
	require.Equal(t, 3, total2)

	buf3 := gapbuffer.NewString("-x-")
	_, _, ok3 := CheckSetextUnderline(buf3, 0)
	require.False(t, ok3, "expected no match for mixed-content underline")
}

func TestCheckHeadingID(t *testing.T) {
	buf := gapbuffer.NewString("## Title {#custom-id}\n")
	span, ok := CheckHeadingID(buf, 0)
	require.True(t, ok, "expected heading id match")
	require.Equal(t, "custom-id", span.Text(buf))
}

func TestCheckHeadingID_Absent(t *testing.T) {
	buf := gapbuffer.NewString("## Title\n")
	_, ok := CheckHeadingID(buf, 0)
	require.False(t, ok, "expected no heading id")
}
