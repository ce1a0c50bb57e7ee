package events

import "github.com/atomicstack/lineedit/internal/logging"

type MenuTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	Menu    = MenuTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (MenuTracer) Choice(choice int, id string) {
	logging.Trace("menu.choice", map[string]interface{}{"choice": choice, "id": id})
}

func (MenuTracer) InvalidInput(input string) {
	logging.Trace("menu.invalid-input", map[string]interface{}{"input": input})
}

func (MenuTracer) InvalidChoice(choice int) {
	logging.Trace("menu.invalid-choice", map[string]interface{}{"choice": choice})
}

func (MenuTracer) Cursor(cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"cursor": cursor})
}

func (MenuTracer) PromptCancel(id string) {
	logging.Trace("menu.prompt.cancel", map[string]interface{}{"id": id})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
