package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andrewmd5/dawn-sub002/internal/nav"
	"github.com/andrewmd5/dawn-sub002/internal/render"
)

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("8")).
			Bold(true)
	helpTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// View implements tea.Model.
func (m Model) View() string {
	switch m.mode {
	case modeHelp:
		return m.viewHelp()
	default:
		return m.viewEditor()
	}
}

// viewEditor renders the document preview pane plus a status bar, and
// (while active) the search or save-as prompt line. The preview pane
// is read-only output of the live document; keystrokes still edit the
// real buffer through Model.updateEdit, and the next View call simply
// re-renders it, the way a Markdown "live preview" pane works.
func (m Model) viewEditor() string {
	backend := newFrameBackend(m.theme)
	render.RenderDocument(m.ed.Buffer(), m.ed.Blocks(), m.width, backend)
	rows := backend.Rows()

	bodyHeight := m.height - 2
	if m.mode != modeEdit {
		bodyHeight--
	}
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	top := m.scrollTopFor(rows, bodyHeight)
	end := top + bodyHeight
	if end > len(rows) {
		end = len(rows)
	}
	visible := rows[top:end]

	var b strings.Builder
	for _, row := range visible {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	for i := len(visible); i < bodyHeight; i++ {
		b.WriteByte('\n')
	}

	if m.mode == modeSearch {
		b.WriteString(helpTextStyle.Render("search: ") + m.searchInput.View())
		b.WriteByte('\n')
	} else if m.mode == modeSaveAs {
		b.WriteString(helpTextStyle.Render("save as: ") + m.saveInput.View())
		b.WriteByte('\n')
	}

	b.WriteString(statusBarStyle.Render(m.statusLine()))
	return b.String()
}

// scrollTopFor keeps the cursor's physical line within the visible
// window; it estimates the cursor's row with approxCursorLine, which
// avoids plumbing buffer offsets through render.Backend.
func (m Model) scrollTopFor(rows []string, bodyHeight int) int {
	total := len(rows)
	if total <= bodyHeight {
		return 0
	}
	cursorLine := m.approxCursorLine(total)
	top := m.scrollTop
	if cursorLine < top {
		top = cursorLine
	}
	if cursorLine >= top+bodyHeight {
		top = cursorLine - bodyHeight + 1
	}
	if top > total-bodyHeight {
		top = total - bodyHeight
	}
	if top < 0 {
		top = 0
	}
	return top
}

// approxCursorLine estimates which rendered row the cursor's logical
// line falls on by its fraction through the buffer; exact mapping
// would require render.Backend to report buffer offsets, which it
// deliberately does not (spec.md §5 keeps the backend ignorant of the
// core's addressing).
func (m Model) approxCursorLine(totalRows int) int {
	n := m.ed.Buffer().Len()
	if n == 0 {
		return 0
	}
	frac := float64(m.ed.Cursor()) / float64(n)
	line := int(frac * float64(totalRows))
	if line < 0 {
		line = 0
	}
	if line >= totalRows {
		line = totalRows - 1
	}
	return line
}

func (m Model) statusLine() string {
	buf := m.ed.Buffer()
	pos := m.ed.Cursor()
	lineStart := nav.LineStart(buf, pos)
	col := pos - lineStart
	lineNum := 1
	for i := 0; i < lineStart; i++ {
		if buf.At(i) == '\n' {
			lineNum++
		}
	}
	mod := ""
	if m.ed.Modified() {
		mod = " [modified]"
	}
	msg := m.message
	if msg != "" {
		msg = "  " + msg
	}
	return fmt.Sprintf(" %s%s  Ln %d, Col %d  ^S save  ^F find  F1 help  Esc quit%s", m.path, mod, lineNum, col+1, msg)
}

func (m Model) viewHelp() string {
	lines := []string{
		"dawn — terminal Markdown editor",
		"",
		"  arrows       move cursor (shift+arrow extends selection)",
		"  ctrl+left/right  word left/right",
		"  home/end     start/end of line",
		"  pgup/pgdown  page up/down",
		"  ctrl+s       save",
		"  ctrl+shift+s save as",
		"  ctrl+f       find",
		"  ctrl+v       paste from clipboard",
		"  esc          quit",
		"",
		"press any key to return",
	}
	return helpTextStyle.Render(strings.Join(lines, "\n"))
}
