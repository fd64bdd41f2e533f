package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewmd5/dawn-sub002/internal/gapbuffer"
)

func TestCheckInlineMath_Dollar(t *testing.T) {
	buf := gapbuffer.NewString("$x^2$ is squared")
	m, ok := CheckInlineMath(buf, 0)
	require.True(t, ok)
	require.Equal(t, "x^2", m.Span.Text(buf))
}

func TestCheckInlineMath_DollarBacktick(t *testing.T) {
	buf := gapbuffer.NewString("$`E=mc^2`$ squared")
	m, ok := CheckInlineMath(buf, 0)
	require.True(t, ok)
	require.Equal(t, "E=mc^2", m.Span.Text(buf))
}

func TestCheckInlineMath_PrecedingBackslashSuppresses(t *testing.T) {
	buf := gapbuffer.NewString(`x \$y$ z`)
	_, ok := CheckInlineMath(buf, 3)
	require.False(t, ok, "expected no match when preceded by a backslash")
}

func TestCheckInlineMath_InternalBackslashEscapes(t *testing.T) {
	buf := gapbuffer.NewString(`$a\$b$`)
	m, ok := CheckInlineMath(buf, 0)
	require.True(t, ok)
	require.Equal(t, `a\$b`, m.Span.Text(buf))
}

func TestCheckInlineMath_Parens(t *testing.T) {
	buf := gapbuffer.NewString(`\(x^2\) squared`)
	m, ok := CheckInlineMath(buf, 0)
	require.True(t, ok)
	require.Equal(t, "x^2", m.Span.Text(buf))
}

func TestCheckInlineMath_DoubleDollarIsNotInline(t *testing.T) {
	buf := gapbuffer.NewString("$$block$$")
	_, ok := CheckInlineMath(buf, 0)
	require.False(t, ok, "expected no inline match on $$")
}

func TestCheckBlockMath_SingleLine(t *testing.T) {
	buf := gapbuffer.NewString("$$x = y$$\nafter")
	m, ok := CheckBlockMath(buf, 0)
	require.True(t, ok)
	require.Equal(t, "x = y", m.Span.Text(buf))
}

func TestCheckBlockMath_MultiLine(t *testing.T) {
	buf := gapbuffer.NewString("$$\nx = y\nz = w\n$$\nafter")
	m, ok := CheckBlockMath(buf, 0)
	require.True(t, ok)
	require.Equal(t, "x = y\nz = w\n", m.Span.Text(buf))
}

func TestCheckBlockMath_BracketForm(t *testing.T) {
	buf := gapbuffer.NewString("\\[\nx = y\n\\]")
	m, ok := CheckBlockMath(buf, 0)
	require.True(t, ok)
	require.Equal(t, "x = y\n", m.Span.Text(buf))
}
