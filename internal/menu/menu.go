package menu

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/atomicstack/lineedit/internal/logging/events"
	"github.com/atomicstack/lineedit/internal/storage"
)

// Title is shown above the menu options.
const Title = "lineedit"

// ChoicePrompt follows the menu block in line mode.
const ChoicePrompt = "Enter your choice: "

const (
	IDEdit = "edit"
	IDSave = "save"
	IDLoad = "load"
	IDExit = "exit"
)

// maxSuggestions caps the "did you mean" list after a failed load.
const maxSuggestions = 3

// Item represents a selectable menu entry.
type Item struct {
	ID     string
	Label  string
	Choice int
}

// Context carries the data an action needs. Lines is a snapshot of the
// document, never the live buffer.
type Context struct {
	Lines []string
}

// Action runs a menu command against a target filename.
type Action func(Context, string) ActionResult

// ActionResult communicates the outcome of executing a menu action.
type ActionResult struct {
	ID          string
	Target      string
	Info        string
	Err         error
	Lines       []string
	Suggestions []string
}

// Loaded reports whether the result carries a document to install.
func (r ActionResult) Loaded() bool {
	return r.ID == IDLoad && r.Err == nil
}

// RootItems returns the menu entries in display order.
func RootItems() []Item {
	return []Item{
		{ID: IDEdit, Label: "Start/Continue Editing", Choice: 1},
		{ID: IDSave, Label: "Save Document", Choice: 2},
		{ID: IDLoad, Label: "Load Document", Choice: 3},
		{ID: IDExit, Label: "Exit Editor", Choice: 4},
	}
}

// Header returns the title rule printed above the options.
func Header() string {
	return fmt.Sprintf("--- %s ---", Title)
}

// Farewell is printed once when the editor exits.
func Farewell() string {
	return fmt.Sprintf("%s closing. Goodbye!", Title)
}

// Lines renders the menu block as printed before each prompt.
func Lines(items []Item) []string {
	header := Header()
	out := make([]string, 0, len(items)+2)
	out = append(out, header)
	for _, item := range items {
		out = append(out, fmt.Sprintf("%d. %s", item.Choice, item.Label))
	}
	out = append(out, strings.Repeat("-", len(header)))
	return out
}

// SaveAction writes the context lines to target.
func SaveAction(ctx Context, target string) ActionResult {
	if err := storage.Save(target, ctx.Lines); err != nil {
		events.Document.SaveFailed(target, err)
		return ActionResult{ID: IDSave, Target: target, Err: err}
	}
	events.Document.Save(target, len(ctx.Lines))
	return ActionResult{
		ID:     IDSave,
		Target: target,
		Info:   fmt.Sprintf("Document saved successfully to: %s", target),
	}
}

// LoadAction reads target. The caller decides whether to install the lines;
// on failure none are returned.
func LoadAction(ctx Context, target string) ActionResult {
	lines, err := storage.Load(target)
	if err != nil {
		events.Document.LoadFailed(target, err, len(ctx.Lines))
		res := ActionResult{ID: IDLoad, Target: target, Err: err}
		if errors.Is(err, fs.ErrNotExist) {
			res.Suggestions = storage.Suggest(target, maxSuggestions)
		}
		return res
	}
	events.Document.Load(target, len(lines))
	return ActionResult{
		ID:     IDLoad,
		Target: target,
		Info:   fmt.Sprintf("Document loaded from: %s", target),
		Lines:  lines,
	}
}
