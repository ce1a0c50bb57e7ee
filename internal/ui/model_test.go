package ui

import (
	"errors"
	"reflect"
	"testing"

	"github.com/atomicstack/lineedit/internal/document"
	"github.com/atomicstack/lineedit/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func TestNewModelStartsAtMenu(t *testing.T) {
	m := NewModel(nil, 0, 0, false)
	if m.Mode() != ModeMenu {
		t.Fatalf("expected menu mode, got %d", m.Mode())
	}
	if m.Document() == nil || m.Document().Len() != 0 {
		t.Fatalf("expected empty document")
	}
	if len(m.level.Items) != 4 {
		t.Fatalf("expected 4 menu items, got %d", len(m.level.Items))
	}
	if m.Init() != nil {
		t.Fatalf("expected no initial command")
	}
}

func TestFixedDimensionsIgnoreResize(t *testing.T) {
	m := NewModel(nil, 40, 10, false)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	if m.width != 40 || m.height != 10 {
		t.Fatalf("expected fixed size 40x10, got %dx%d", m.width, m.height)
	}
	free := NewModel(nil, 0, 0, false)
	free.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	if free.width != 120 || free.height != 50 {
		t.Fatalf("expected resize to apply, got %dx%d", free.width, free.height)
	}
}

func TestActionResultLoadReplacesDocument(t *testing.T) {
	doc := document.New("old")
	m := NewModel(doc, 0, 0, false)
	m.loading = true
	m.Update(menu.ActionResult{ID: menu.IDLoad, Target: "t.txt", Info: "Document loaded from: t.txt", Lines: []string{"new", ""}})
	if !reflect.DeepEqual(doc.Lines(), []string{"new", ""}) {
		t.Fatalf("expected replaced document, got %#v", doc.Lines())
	}
	if m.loading {
		t.Fatalf("expected loading cleared")
	}
	if m.currentInfo() != "Document loaded from: t.txt" {
		t.Fatalf("unexpected info %q", m.currentInfo())
	}
}

func TestActionResultErrorKeepsDocument(t *testing.T) {
	doc := document.New("unsaved")
	m := NewModel(doc, 0, 0, false)
	m.Update(menu.ActionResult{
		ID:          menu.IDLoad,
		Target:      "gone.txt",
		Err:         errors.New("boom"),
		Suggestions: []string{"gone2.txt"},
	})
	if !reflect.DeepEqual(doc.Lines(), []string{"unsaved"}) {
		t.Fatalf("expected document preserved, got %#v", doc.Lines())
	}
	if m.errMsg == "" {
		t.Fatalf("expected error message")
	}
	if m.currentInfo() != "Did you mean: gone2.txt?" {
		t.Fatalf("expected suggestion info, got %q", m.currentInfo())
	}
}

func TestUnknownMessagesAreIgnored(t *testing.T) {
	m := NewModel(nil, 0, 0, false)
	if _, cmd := m.Update(struct{}{}); cmd != nil {
		t.Fatalf("expected no command for unknown message")
	}
	if _, cmd := m.Update(nil); cmd != nil {
		t.Fatalf("expected no command for nil message")
	}
}
