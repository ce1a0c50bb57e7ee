package ui

import (
	"errors"
	"fmt"

	"github.com/atomicstack/lineedit/internal/edit"
	"github.com/atomicstack/lineedit/internal/logging/events"
	"github.com/atomicstack/lineedit/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleMenuKey(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.Type {
	case tea.KeyCtrlC:
		return m.exit()
	case tea.KeyUp:
		m.moveCursor(m.level.MoveCursorUp)
		return nil
	case tea.KeyDown:
		m.moveCursor(m.level.MoveCursorDown)
		return nil
	case tea.KeyHome:
		m.moveCursor(m.level.MoveCursorHome)
		return nil
	case tea.KeyEnd:
		m.moveCursor(m.level.MoveCursorEnd)
		return nil
	case tea.KeyEnter:
		item, ok := m.level.Current()
		if !ok {
			return nil
		}
		return m.choose(item.Choice)
	case tea.KeyRunes:
	default:
		return nil
	}

	input := string(key.Runes)
	switch input {
	case "k":
		m.moveCursor(m.level.MoveCursorUp)
		return nil
	case "j":
		m.moveCursor(m.level.MoveCursorDown)
		return nil
	}
	choice, err := menu.ParseChoice(input)
	if errors.Is(err, menu.ErrBlank) {
		return nil
	}
	if err != nil {
		events.Menu.InvalidInput(input)
		m.forceClearInfo()
		m.errMsg = "Invalid input. Please enter a number."
		return nil
	}
	return m.choose(choice)
}

func (m *Model) moveCursor(move func() bool) {
	if move() {
		events.Menu.Cursor(m.level.Cursor)
	}
}

// choose dispatches a numeric selection, mirroring the line-mode menu.
func (m *Model) choose(choice int) tea.Cmd {
	node, err := m.registry.Resolve(choice)
	if err != nil {
		events.Menu.InvalidChoice(choice)
		lo, hi := m.registry.Range()
		m.errMsg = ""
		m.setInfo(fmt.Sprintf("Invalid choice. Please select %d-%d.", lo, hi))
		return nil
	}
	if m.loading && node.ID != menu.IDExit {
		m.setInfo(fmt.Sprintf("Waiting for %s to finish.", m.pendingID))
		return nil
	}
	events.Menu.Choice(choice, node.ID)
	m.level.SelectChoice(choice)
	m.errMsg = ""
	m.forceClearInfo()

	switch node.ID {
	case menu.IDEdit:
		m.startEditing()
		return nil
	case menu.IDExit:
		return m.exit()
	}
	if node.NeedsTarget() {
		m.startForm(node)
	}
	return nil
}

func (m *Model) exit() tea.Cmd {
	if m.mode == ModeEditing {
		m.finishEditing(edit.EndInput)
	}
	m.form = nil
	m.mode = ModeMenu
	m.exiting = true
	events.App.Exit("exit", m.doc.Len())
	return tea.Quit
}
