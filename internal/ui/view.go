package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/lineedit/internal/edit"
	"github.com/atomicstack/lineedit/internal/format/table"
	"github.com/atomicstack/lineedit/internal/menu"
	"github.com/atomicstack/lineedit/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	itemIndicator      = "> "
	itemIndent         = "  "
	editingChromeRows  = 6
	menuFooterText     = "↑/↓ move  1-4 or enter select  ctrl+c quit"
	editingFooterText  = "enter add line  EOF or esc finish  ctrl+c quit"
	filenameFooterText = "enter confirm  esc cancel  ctrl+u clear"
	ellipsis           = "…"
)

// View implements tea.Model.
func (m *Model) View() string {
	switch m.mode {
	case ModeEditing:
		return m.viewEditing()
	case ModeSaving, ModeLoading:
		if m.form != nil {
			return m.viewForm()
		}
	}
	return m.viewMenu()
}

func (m *Model) viewMenu() string {
	lines := []string{theme.Render(styles.Banner, m.fit(menu.Header()))}
	for i, item := range m.level.Items {
		text := fmt.Sprintf("%d. %s", item.Choice, item.Label)
		if i == m.level.Cursor {
			lines = append(lines, theme.Render(styles.SelectedItem, m.fit(itemIndicator+text)))
			continue
		}
		lines = append(lines, theme.Render(styles.Item, m.fit(itemIndent+text)))
	}
	lines = append(lines, "", theme.Render(styles.Info, m.fit(fmt.Sprintf("Document: %d lines", m.doc.Len()))))
	if m.loading {
		lines = append(lines, theme.Render(styles.Info, m.fit(fmt.Sprintf("Running %s…", m.pendingID))))
	}
	lines = append(lines, m.statusLines()...)
	if m.showFooter {
		lines = append(lines, "", theme.Render(styles.Footer, m.fit(menuFooterText)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewEditing() string {
	header := fmt.Sprintf("Editing (%d lines). Type '%s' on a new line to finish.", m.doc.Len(), edit.Sentinel)
	lines := []string{theme.Render(styles.Header, m.fit(header))}
	lines = append(lines, m.documentRows()...)
	lines = append(lines, m.editInput.View())
	if m.showFooter {
		lines = append(lines, "", theme.Render(styles.Footer, m.fit(editingFooterText)))
	}
	return strings.Join(lines, "\n")
}

// documentRows renders the numbered document, keeping only the newest rows
// when the viewport is too short to show everything.
func (m *Model) documentRows() []string {
	total := m.doc.Len()
	start := 0
	if m.height > 0 {
		room := m.height - editingChromeRows
		if room < 1 {
			room = 1
		}
		if total > room {
			start = total - room
		}
	}
	rows := make([][]string, 0, total-start)
	for i := start; i < total; i++ {
		text, _ := m.doc.Line(i)
		rows = append(rows, []string{fmt.Sprintf("%d:", i+1), text})
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft}, " ")
	out := make([]string, 0, len(formatted)+1)
	if start > 0 {
		out = append(out, theme.Render(styles.Gutter, m.fit(fmt.Sprintf("(%d earlier lines)", start))))
	}
	for _, row := range formatted {
		out = append(out, theme.Render(styles.Line, m.fit(row)))
	}
	return out
}

func (m *Model) viewForm() string {
	lines := []string{
		theme.Render(styles.Header, m.fit(m.form.Title())),
		"",
		m.form.InputView(),
	}
	if err := m.form.Error(); err != "" {
		lines = append(lines, "", theme.Render(styles.Error, m.fit(err)))
	}
	if m.mode == ModeLoading && m.suggestions != nil && len(m.suggestions.Items) > 0 {
		lines = append(lines, "")
		shown := m.suggestions.Items
		if len(shown) > maxVisibleSuggestions {
			shown = shown[:maxVisibleSuggestions]
		}
		for _, name := range shown {
			lines = append(lines, theme.Render(styles.Suggestion, m.fit(itemIndent+name)))
		}
	}
	lines = append(lines, "", theme.Render(styles.Footer, m.fit(m.form.Help())))
	if m.showFooter {
		lines = append(lines, theme.Render(styles.Footer, m.fit(filenameFooterText)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) statusLines() []string {
	var lines []string
	if m.errMsg != "" {
		lines = append(lines, "", theme.Render(styles.Error, m.fit("Error: "+m.errMsg)))
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, "", theme.Render(styles.Info, m.fit(info)))
	}
	return lines
}

// fit truncates text to the viewport width. Unknown widths leave it intact.
func (m *Model) fit(text string) string {
	return fitWidth(text, m.width)
}

func fitWidth(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), ellipsis)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if m.width > 0 {
		m.editInput.Width = m.width - lipgloss.Width(m.editInput.Prompt) - 1
	}
	return nil
}
