package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// updateEdit handles keys while the document itself has focus,
// dispatching on msg.String() so shift-modified keys (extending the
// selection) fall out of the same switch as their bare counterparts.
func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key, selecting := splitShift(msg.String())
	pos := m.ed.Cursor()

	switch key {
	case "ctrl+s":
		return m.save()
	case "ctrl+shift+s", "alt+s":
		m.mode = modeSaveAs
		m.saveInput.SetValue(m.path)
		m.saveInput.Focus()
		m.saveInput.CursorEnd()
		return m, textinput.Blink
	case "ctrl+f":
		m.mode = modeSearch
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, textinput.Blink
	case "alt+h", "f1":
		m.mode = modeHelp
		return m, nil
	case "ctrl+v":
		return m.pasteFromClipboard()
	case "esc":
		return m, tea.Quit

	case "up":
		m.ed.MoveCursor(m.ed.MoveVisualLineBlockAware(pos, -1), selecting)
	case "down":
		m.ed.MoveCursor(m.ed.MoveVisualLineBlockAware(pos, 1), selecting)
	case "left":
		m.ed.MoveCursor(m.ed.CharLeft(pos), selecting)
	case "right":
		m.ed.MoveCursor(m.ed.CharRight(pos), selecting)
	case "ctrl+left":
		m.ed.MoveCursor(m.ed.WordLeft(pos), selecting)
	case "ctrl+right":
		m.ed.MoveCursor(m.ed.WordRight(pos), selecting)
	case "home":
		m.ed.MoveCursor(m.ed.LineStart(pos), selecting)
	case "end":
		m.ed.MoveCursor(m.ed.LineEnd(pos), selecting)
	case "pgup":
		m.ed.MoveCursor(m.ed.MoveVisualLineBlockAware(pos, -(m.height-3)), selecting)
	case "pgdown":
		m.ed.MoveCursor(m.ed.MoveVisualLineBlockAware(pos, m.height-3), selecting)

	case "backspace":
		if err := m.ed.DeleteBackward(); err != nil {
			m.message = err.Error()
		}
	case "enter":
		if err := m.ed.Insert([]byte("\n")); err != nil {
			m.message = err.Error()
		}
	case "tab":
		if err := m.ed.Insert([]byte("\t")); err != nil {
			m.message = err.Error()
		}
	case "space":
		if err := m.ed.Insert([]byte(" ")); err != nil {
			m.message = err.Error()
		}

	default:
		if len(msg.Runes) > 0 {
			if err := m.ed.Insert([]byte(string(msg.Runes))); err != nil {
				m.message = err.Error()
			}
		}
	}
	return m, nil
}

// splitShift reports the base key with any leading "shift+" stripped,
// and whether that prefix was present. bubbletea reports
// shift-modified navigation keys this way rather than as distinct
// key types for every combination.
func splitShift(s string) (base string, shift bool) {
	if strings.HasPrefix(s, "shift+") {
		return strings.TrimPrefix(s, "shift+"), true
	}
	return s, false
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		query := m.searchInput.Value()
		if query != "" {
			if idx := m.findFrom(m.ed.Cursor(), query); idx >= 0 {
				m.ed.MoveCursor(idx, false)
				m.message = fmt.Sprintf("found %q", query)
			} else {
				m.message = fmt.Sprintf("not found: %q", query)
			}
		}
		m.mode = modeEdit
		m.searchInput.Blur()
		return m, nil
	case tea.KeyEsc:
		m.mode = modeEdit
		m.searchInput.Blur()
		return m, nil
	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}
}

func (m Model) findFrom(start int, query string) int {
	content := string(m.ed.Buffer().Bytes())
	if idx := strings.Index(content[start:], query); idx >= 0 {
		return start + idx
	}
	if idx := strings.Index(content, query); idx >= 0 {
		return idx
	}
	return -1
}

func (m Model) updateSaveAs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.path = m.saveInput.Value()
		m.mode = modeEdit
		m.saveInput.Blur()
		return m.save()
	case tea.KeyEsc:
		m.mode = modeEdit
		m.saveInput.Blur()
		return m, nil
	default:
		var cmd tea.Cmd
		m.saveInput, cmd = m.saveInput.Update(msg)
		return m, cmd
	}
}

func (m Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = modeEdit
	return m, nil
}

// pasteFromClipboard inserts the system clipboard's contents at the
// cursor. Pasted text often carries escape sequences picked up from a
// terminal's own paste handling (color codes, cursor moves from a
// copied shell session); ansi.Strip removes these before the bytes
// ever reach the gap buffer so they can't corrupt rendering.
func (m Model) pasteFromClipboard() (tea.Model, tea.Cmd) {
	text, err := clipboard.ReadAll()
	if err != nil {
		m.message = fmt.Sprintf("paste failed: %v", err)
		return m, nil
	}
	clean := ansi.Strip(text)
	if clean == "" {
		return m, nil
	}
	if err := m.ed.Insert([]byte(clean)); err != nil {
		m.message = err.Error()
	}
	return m, nil
}

func (m Model) save() (tea.Model, tea.Cmd) {
	if err := os.WriteFile(m.path, m.ed.Buffer().Bytes(), 0o644); err != nil {
		m.message = fmt.Sprintf("save failed: %v", err)
		return m, nil
	}
	m.lastSaved = time.Now()
	m.message = "saved " + m.path
	return m, nil
}
