package ui

import (
	"path/filepath"
	"strings"

	"github.com/atomicstack/lineedit/internal/menu"
	"github.com/atomicstack/lineedit/internal/storage"
	"github.com/atomicstack/lineedit/internal/ui/command"
	uistate "github.com/atomicstack/lineedit/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

const maxVisibleSuggestions = 5

func (m *Model) startForm(node *menu.Node) {
	m.form = menu.NewFilenameForm(menu.FilenamePrompt{
		Context: menu.Context{Lines: m.doc.Lines()},
		Action:  node.ID,
		Initial: m.lastTarget,
	})
	m.suggestions = nil
	if node.ID == menu.IDLoad {
		m.mode = ModeLoading
		m.refreshSuggestions()
		return
	}
	m.mode = ModeSaving
}

func (m *Model) closeForm() {
	m.form = nil
	m.suggestions = nil
	m.mode = ModeMenu
}

func (m *Model) handleFormKey(key tea.KeyMsg) tea.Cmd {
	if m.form == nil {
		m.mode = ModeMenu
		return nil
	}
	switch key.Type {
	case tea.KeyCtrlC:
		return m.exit()
	case tea.KeyTab:
		if m.mode == ModeLoading {
			m.completeSuggestion()
		}
		return nil
	}
	cmd, done, cancel := m.form.Update(key)
	if cancel {
		m.closeForm()
		return cmd
	}
	if done {
		return m.submitForm()
	}
	if m.mode == ModeLoading {
		m.refreshSuggestions()
	}
	return cmd
}

func (m *Model) submitForm() tea.Cmd {
	actionID := m.form.Action()
	node, ok := m.registry.Find(actionID)
	if !ok {
		m.closeForm()
		return nil
	}
	req := command.Request{
		ID:      node.ID,
		Label:   node.Label,
		Handler: node.Action,
		Context: m.form.Context(),
		Target:  m.form.Value(),
	}
	m.closeForm()
	m.loading = true
	m.pendingID = node.ID
	return m.bus.Execute(req)
}

// suggestionScope splits the typed value into the directory to list and the
// name fragment to match within it.
func (m *Model) suggestionScope(value string) (string, string) {
	if strings.ContainsRune(value, filepath.Separator) {
		return filepath.Dir(value), filepath.Base(value)
	}
	return m.suggestDir, value
}

func (m *Model) refreshSuggestions() {
	if m.form == nil {
		return
	}
	dir, query := m.suggestionScope(m.form.Value())
	names, err := storage.List(dir)
	if err != nil {
		m.suggestions = uistate.NewSuggestions(nil)
		return
	}
	m.suggestions = uistate.NewSuggestions(names)
	m.suggestions.SetQuery(query)
}

func (m *Model) completeSuggestion() {
	if m.form == nil || m.suggestions == nil {
		return
	}
	best, ok := m.suggestions.Best()
	if !ok {
		return
	}
	value := m.form.Value()
	if strings.ContainsRune(value, filepath.Separator) {
		best = filepath.Join(filepath.Dir(value), best)
	} else if m.suggestDir != "." {
		best = filepath.Join(m.suggestDir, best)
	}
	m.form.SetValue(best)
	m.refreshSuggestions()
}
