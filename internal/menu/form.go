package menu

import (
	"strings"

	"github.com/atomicstack/lineedit/internal/logging/events"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const filenameCharLimit = 4096

// FilenamePrompt requests interactive filename input for a file action.
type FilenamePrompt struct {
	Context Context
	Action  string
	Initial string
}

// FilenameForm collects the target of a save or load.
type FilenameForm struct {
	input  textinput.Model
	ctx    Context
	action string
	title  string
	help   string
	err    string
}

func NewFilenameForm(prompt FilenamePrompt) *FilenameForm {
	ti := textinput.New()
	ti.Placeholder = "my_notes.txt"
	ti.CharLimit = filenameCharLimit
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	if prompt.Initial != "" {
		ti.SetValue(prompt.Initial)
	}
	title := "Save Document"
	help := "Press Enter to save. Esc to cancel."
	if prompt.Action == IDLoad {
		title = "Load Document"
		help = "Press Enter to load. Tab completes. Esc to cancel."
	}
	return &FilenameForm{
		input:  ti,
		ctx:    prompt.Context,
		action: prompt.Action,
		title:  title,
		help:   help,
	}
}

func (f *FilenameForm) Context() Context  { return f.ctx }
func (f *FilenameForm) Value() string     { return f.input.Value() }
func (f *FilenameForm) InputView() string { return f.input.View() }
func (f *FilenameForm) Error() string     { return f.err }
func (f *FilenameForm) Action() string    { return f.action }
func (f *FilenameForm) Title() string     { return f.title }
func (f *FilenameForm) Help() string      { return f.help }

// SetValue replaces the typed filename and moves the cursor to its end.
func (f *FilenameForm) SetValue(value string) {
	f.input.SetValue(value)
	f.input.CursorEnd()
	f.err = ""
}

// Update feeds msg to the form and reports whether it was submitted or
// cancelled.
func (f *FilenameForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
			}
			return nil, false, false
		}
		switch key.Type {
		case tea.KeyEsc:
			events.Menu.PromptCancel(f.action)
			return nil, false, true
		case tea.KeyEnter:
			if strings.TrimSpace(f.Value()) == "" {
				f.err = "Enter a filename."
				return nil, false, false
			}
			f.err = ""
			return nil, true, false
		}
	}

	updated, cmd := f.input.Update(msg)
	f.input = updated
	f.err = ""
	return cmd, false, false
}
