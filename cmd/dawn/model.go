package main

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andrewmd5/dawn-sub002/internal/config"
	"github.com/andrewmd5/dawn-sub002/internal/editor"
)

const (
	minWidth  = 40
	minHeight = 10
)

// mode is the TUI's interaction state: which screen keystrokes are
// currently routed to.
type mode int

const (
	modeEdit mode = iota
	modeSearch
	modeSaveAs
	modeHelp
)

// Model is the BubbleTea model for the dawn Markdown editor.
type Model struct {
	ed   *editor.Editor
	path string

	width, height int
	mode          mode
	scrollTop     int

	searchInput textinput.Model
	saveInput   textinput.Model

	message   string
	lastSaved time.Time
	theme     *palette
}

// New creates a Model for the Markdown file at path (which need not
// yet exist), using cfg as the initial editor configuration.
func New(path string, cfg config.Config) (Model, error) {
	var content string
	if data, err := os.ReadFile(path); err == nil {
		content = string(data)
	} else if !os.IsNotExist(err) {
		return Model{}, err
	}

	si := textinput.New()
	si.Placeholder = "search text..."
	si.CharLimit = 200
	si.Width = 40

	ai := textinput.New()
	ai.Placeholder = "save as..."
	ai.CharLimit = 200
	ai.Width = 40
	ai.SetValue(path)

	return Model{
		ed:          editor.New(content, cfg),
		path:        path,
		width:       minWidth,
		height:      minHeight,
		mode:        modeEdit,
		searchInput: si,
		saveInput:   ai,
		theme:       newPalette(),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("dawn")
}

// configReloadedMsg is sent when internal/config.Watcher reloads the
// config file on disk, delivered into the Bubble Tea loop via
// tea.Program.Send.
type configReloadedMsg struct {
	cfg config.Config
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width < minWidth {
			m.width = minWidth
		}
		if m.height < minHeight {
			m.height = minHeight
		}
		return m, nil

	case configReloadedMsg:
		m.ed.SetConfig(msg.cfg)
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeEdit:
			return m.updateEdit(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modeSaveAs:
			return m.updateSaveAs(msg)
		case modeHelp:
			return m.updateHelp(msg)
		}
	}
	return m, nil
}
