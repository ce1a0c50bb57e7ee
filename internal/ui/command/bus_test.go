package command

import (
	"testing"

	"github.com/atomicstack/lineedit/internal/menu"
)

func TestExecuteRunsHandlerWithSnapshot(t *testing.T) {
	var gotLines []string
	var gotTarget string
	handler := func(ctx menu.Context, target string) menu.ActionResult {
		gotLines = ctx.Lines
		gotTarget = target
		return menu.ActionResult{ID: menu.IDSave, Target: target, Info: "ok"}
	}
	cmd := New().Execute(Request{
		ID:      menu.IDSave,
		Label:   "Save Document",
		Handler: handler,
		Context: menu.Context{Lines: []string{"a"}},
		Target:  "t.txt",
	})
	if cmd == nil {
		t.Fatalf("expected command")
	}
	msg := cmd()
	res, ok := msg.(menu.ActionResult)
	if !ok {
		t.Fatalf("expected ActionResult, got %T", msg)
	}
	if res.Info != "ok" || gotTarget != "t.txt" || len(gotLines) != 1 {
		t.Fatalf("unexpected execution: %#v target=%q lines=%#v", res, gotTarget, gotLines)
	}
}

func TestExecuteNilHandler(t *testing.T) {
	cmd := New().Execute(Request{ID: "noop"})
	if msg := cmd(); msg != nil {
		t.Fatalf("expected nil message, got %#v", msg)
	}
}
