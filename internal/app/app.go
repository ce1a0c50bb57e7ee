package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/lineedit/internal/console"
	"github.com/atomicstack/lineedit/internal/document"
	"github.com/atomicstack/lineedit/internal/logging/events"
	"github.com/atomicstack/lineedit/internal/menu"
	"github.com/atomicstack/lineedit/internal/theme"
	"github.com/atomicstack/lineedit/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Config describes user-provided application options.
type Config struct {
	TUI        bool
	Width      int
	Height     int
	ShowFooter bool
	Color      bool
}

// Streams are the text streams a session reads from and writes to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run executes one editor session on the process's standard streams.
func Run(cfg Config) error {
	return RunWith(cfg, Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
}

// RunWith executes one editor session on the supplied streams. The TUI is only
// started when both input and output are terminals; otherwise the line-mode
// menu runs instead.
func RunWith(cfg Config, streams Streams) error {
	doc := document.New()
	if cfg.TUI {
		reason := terminalProblem(streams)
		if reason == "" {
			return runTUI(cfg, doc, streams)
		}
		events.App.Fallback("tui", "line", reason)
	}
	loop := console.New(streams.In, streams.Out, streams.Err, doc, selectStyles(cfg, streams.Out))
	if err := loop.Run(); err != nil {
		return fmt.Errorf("line mode: %w", err)
	}
	return nil
}

func runTUI(cfg Config, doc *document.Document, streams Streams) error {
	model := ui.NewModel(doc, cfg.Width, cfg.Height, cfg.ShowFooter)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(streams.In),
		tea.WithOutput(streams.Out),
	)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if model.Exiting() {
		fmt.Fprintln(streams.Out, menu.Farewell())
	}
	return nil
}

// terminalProblem returns why the streams cannot host the TUI, or "" when
// they can.
func terminalProblem(streams Streams) string {
	if !isTerminal(streams.In) {
		return "stdin is not a terminal"
	}
	if !isTerminal(streams.Out) {
		return "stdout is not a terminal"
	}
	return ""
}

func selectStyles(cfg Config, out io.Writer) *theme.Styles {
	if cfg.Color && isTerminal(out) {
		return theme.Default()
	}
	return theme.Plain()
}

func isTerminal(stream interface{}) bool {
	file, ok := stream.(*os.File)
	if !ok || file == nil {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
