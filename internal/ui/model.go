package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/lineedit/internal/document"
	"github.com/atomicstack/lineedit/internal/menu"
	"github.com/atomicstack/lineedit/internal/theme"
	"github.com/atomicstack/lineedit/internal/ui/command"
	uistate "github.com/atomicstack/lineedit/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Mode int

const (
	ModeMenu Mode = iota
	ModeEditing
	ModeSaving
	ModeLoading
)

const infoLifetime = 5 * time.Second

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the editor.
type Model struct {
	doc         *document.Document
	level       *uistate.Level
	registry    *menu.Registry
	bus         *command.Bus
	mode        Mode
	editInput   textinput.Model
	pending     string
	added       int
	form        *menu.FilenameForm
	suggestions *uistate.Suggestions
	suggestDir  string
	lastTarget  string
	loading     bool
	pendingID   string
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	exiting     bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI around doc, which stays owned by the caller.
func NewModel(doc *document.Document, width, height int, showFooter bool) *Model {
	if doc == nil {
		doc = document.New()
	}
	registry := menu.BuildRegistry()
	m := &Model{
		doc:        doc,
		level:      uistate.NewLevel(registry.Items()),
		registry:   registry,
		bus:        command.New(),
		mode:       ModeMenu,
		editInput:  newEditInput(),
		suggestDir: ".",
		showFooter: showFooter,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

func newEditInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Document returns the buffer the model edits.
func (m *Model) Document() *document.Document {
	return m.doc
}

// Mode reports the active state.
func (m *Model) Mode() Mode {
	return m.mode
}

// Exiting reports whether the user chose to leave the editor.
func (m *Model) Exiting() bool {
	return m.exiting
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.handleActiveMode(msg); handled {
		return m, cmd
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) handleActiveMode(msg tea.Msg) (bool, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch m.mode {
	case ModeEditing:
		return true, m.handleEditingKey(key)
	case ModeSaving, ModeLoading:
		return true, m.handleFormKey(key)
	default:
		return false, nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleMenuKey,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(menu.ActionResult{}): m.handleActionResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoLifetime)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}
