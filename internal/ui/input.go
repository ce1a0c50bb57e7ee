package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/lineedit/internal/edit"
	"github.com/atomicstack/lineedit/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// tabDisplay stands in for '\t' on screen; the stored line keeps the tab.
const tabDisplay = "    "

func (m *Model) startEditing() {
	m.mode = ModeEditing
	m.added = 0
	m.setPending("")
	m.editInput.Focus()
	events.Edit.Start(m.doc.Len())
}

func (m *Model) finishEditing(reason edit.EndReason) {
	events.Edit.End(m.added, string(reason))
	m.setPending("")
	m.editInput.Blur()
	m.mode = ModeMenu
	m.setInfo(fmt.Sprintf("Editing session ended (%d lines added).", m.added))
}

// submitLine feeds one completed line to the session and reports whether the
// sentinel closed it.
func (m *Model) submitLine(line string) bool {
	if edit.Accept(m.doc, line) {
		m.finishEditing(edit.EndSentinel)
		return true
	}
	m.added++
	return false
}

// setPending replaces the line being typed. The text input only mirrors it
// for display, since its sanitiser rewrites tabs.
func (m *Model) setPending(line string) {
	m.pending = line
	m.editInput.SetValue(strings.ReplaceAll(line, "\t", tabDisplay))
	m.editInput.CursorEnd()
}

func (m *Model) handleEditingKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyCtrlC:
		return m.exit()
	case tea.KeyEsc, tea.KeyCtrlD:
		m.finishEditing(edit.EndInput)
	case tea.KeyEnter:
		line := m.pending
		m.setPending("")
		m.submitLine(line)
	case tea.KeyTab:
		m.setPending(m.pending + "\t")
	case tea.KeySpace:
		m.setPending(m.pending + " ")
	case tea.KeyBackspace:
		if runes := []rune(m.pending); len(runes) > 0 {
			m.setPending(string(runes[:len(runes)-1]))
		}
	case tea.KeyCtrlU:
		m.setPending("")
	case tea.KeyRunes:
		text := string(key.Runes)
		if strings.ContainsRune(text, '\n') {
			m.pasteLines(text)
			return nil
		}
		m.setPending(m.pending + text)
	}
	return nil
}

// pasteLines splits pasted text into lines. The text is appended after the
// current input; the trailing fragment stays pending for further typing.
func (m *Model) pasteLines(text string) {
	parts := strings.Split(text, "\n")
	parts[0] = m.pending + parts[0]
	m.setPending("")
	for _, line := range parts[:len(parts)-1] {
		if m.submitLine(line) {
			return
		}
	}
	m.setPending(parts[len(parts)-1])
}
