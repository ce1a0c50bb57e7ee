package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/atomicstack/lineedit/internal/document"
	"github.com/charmbracelet/lipgloss"
)

func TestMenuViewListsItems(t *testing.T) {
	view := NewModel(document.New("a", "b"), 0, 0, true).View()
	for _, want := range []string{
		"--- lineedit ---",
		"> 1. Start/Continue Editing",
		"  2. Save Document",
		"  3. Load Document",
		"  4. Exit Editor",
		"Document: 2 lines",
		menuFooterText,
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestMenuViewHidesFooter(t *testing.T) {
	view := NewModel(nil, 0, 0, false).View()
	if strings.Contains(view, menuFooterText) {
		t.Fatalf("expected no footer:\n%s", view)
	}
}

func TestEditingViewNumbersLines(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	h := NewHarness(NewModel(document.New(lines...), 0, 0, false))
	h.Type("1")
	view := h.View()
	if !strings.Contains(view, "Editing (10 lines). Type 'EOF' on a new line to finish.") {
		t.Fatalf("missing header:\n%s", view)
	}
	if !strings.Contains(view, " 1: line 1") || !strings.Contains(view, "10: line 10") {
		t.Fatalf("expected right-aligned gutter:\n%s", view)
	}
}

func TestEditingViewScrollsToNewest(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = fmt.Sprintf("row %d", i+1)
	}
	h := NewHarness(NewModel(document.New(lines...), 0, 10, false))
	h.Type("1")
	view := h.View()
	if !strings.Contains(view, "(16 earlier lines)") {
		t.Fatalf("expected earlier lines note:\n%s", view)
	}
	if strings.Contains(view, "row 16\n") || !strings.Contains(view, "20: row 20") {
		t.Fatalf("expected newest rows only:\n%s", view)
	}
}

func TestViewRespectsWidth(t *testing.T) {
	long := strings.Repeat("x", 80)
	h := NewHarness(NewModel(document.New(long), 20, 0, false))
	h.Type("1")
	for _, line := range strings.Split(h.View(), "\n")[:2] {
		if w := lipgloss.Width(line); w > 20 {
			t.Fatalf("line exceeds width (%d): %q", w, line)
		}
	}
}

func TestFitWidth(t *testing.T) {
	if got := fitWidth("short", 0); got != "short" {
		t.Fatalf("expected untouched text, got %q", got)
	}
	if got := fitWidth("short", 10); got != "short" {
		t.Fatalf("expected untouched text, got %q", got)
	}
	got := fitWidth("abcdefghij", 5)
	if lipgloss.Width(got) > 5 || !strings.HasSuffix(got, ellipsis) {
		t.Fatalf("expected truncated text with ellipsis, got %q", got)
	}
}

func TestFormViewShowsSuggestions(t *testing.T) {
	m := NewModel(nil, 0, 0, false)
	m.suggestDir = t.TempDir()
	h := NewHarness(m)
	h.Type("3")
	view := h.View()
	if !strings.Contains(view, "Load Document") {
		t.Fatalf("expected load title:\n%s", view)
	}
	if !strings.Contains(view, "Tab completes") {
		t.Fatalf("expected load help:\n%s", view)
	}
}
