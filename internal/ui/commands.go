package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/lineedit/internal/logging/events"
	"github.com/atomicstack/lineedit/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	if result.Err != nil {
		text, hint := menu.FailureText(result)
		if hint != "" {
			text = text + " " + hint
		}
		m.errMsg = text
		m.forceClearInfo()
		if len(result.Suggestions) > 0 {
			m.setInfo(fmt.Sprintf("Did you mean: %s?", strings.Join(result.Suggestions, ", ")))
		}
		events.Action.Error(result.Err)
		return nil
	}
	if result.Loaded() {
		m.doc.Replace(result.Lines)
	}
	if result.Target != "" {
		m.lastTarget = result.Target
	}
	m.errMsg = ""
	m.setInfo(result.Info)
	events.Action.Success(result.Info)
	return nil
}
