package command

import (
	"fmt"

	"github.com/atomicstack/lineedit/internal/logging/events"
	"github.com/atomicstack/lineedit/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates an action invocation. Context must already be a
// snapshot so the command never touches the live document.
type Request struct {
	ID      string
	Label   string
	Handler menu.Action
	Context menu.Context
	Target  string
}

// Bus coordinates the execution of menu actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a menu action into a Bubble Tea command while emitting trace
// logs. The command's message is the action's menu.ActionResult.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		res := req.Handler(req.Context, req.Target)
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", res))
		return res
	}
}
