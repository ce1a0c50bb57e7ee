// Package console runs the menu loop over plain text streams: the numbered
// menu goes to stdout, the user answers on stdin, and errors go to stderr.
package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/lineedit/internal/document"
	"github.com/atomicstack/lineedit/internal/edit"
	"github.com/atomicstack/lineedit/internal/logging/events"
	"github.com/atomicstack/lineedit/internal/menu"
	"github.com/atomicstack/lineedit/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// Loop owns one interactive session over a single document.
type Loop struct {
	in       *document.LineReader
	out      io.Writer
	errOut   io.Writer
	doc      *document.Document
	registry *menu.Registry
	styles   *theme.Styles
}

// New wires a loop to the given streams. A nil styles value renders plain text.
func New(in io.Reader, out, errOut io.Writer, doc *document.Document, styles *theme.Styles) *Loop {
	if styles == nil {
		styles = theme.Plain()
	}
	if doc == nil {
		doc = document.New()
	}
	return &Loop{
		in:       document.NewLineReader(in),
		out:      out,
		errOut:   errOut,
		doc:      doc,
		registry: menu.BuildRegistry(),
		styles:   styles,
	}
}

// Document exposes the buffer the loop edits.
func (l *Loop) Document() *document.Document {
	return l.doc
}

// Run presents the menu until the user exits or input runs out. Both end the
// loop with a nil error; only stream failures are returned.
func (l *Loop) Run() error {
	fmt.Fprintf(l.out, "Welcome to %s - the line editor!\n", menu.Title)
	for {
		l.showMenu()
		line, err := l.readChoiceLine()
		if errors.Is(err, io.EOF) {
			l.farewell("eof")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read choice: %w", err)
		}

		choice, err := menu.ParseChoice(line)
		if err != nil {
			events.Menu.InvalidInput(line)
			fmt.Fprintf(l.errOut, "\n%s Invalid input. Please enter a number.\n", l.tag(l.styles.Error, "[ERROR]"))
			continue
		}
		node, err := l.registry.Resolve(choice)
		if err != nil {
			events.Menu.InvalidChoice(choice)
			lo, hi := l.registry.Range()
			fmt.Fprintf(l.out, "\n%s Invalid choice. Please select %d-%d.\n", l.tag(l.styles.Info, "[INFO]"), lo, hi)
			continue
		}
		events.Menu.Choice(choice, node.ID)

		done, err := l.dispatch(node)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (l *Loop) dispatch(node *menu.Node) (bool, error) {
	switch node.ID {
	case menu.IDEdit:
		if _, err := edit.Run(l.in, l.out, l.doc); err != nil {
			return false, err
		}
		return false, nil
	case menu.IDExit:
		l.farewell("exit")
		return true, nil
	}
	if node.Action == nil {
		return false, nil
	}

	target := ""
	if node.NeedsTarget() {
		fmt.Fprint(l.out, node.Prompt)
		line, err := l.in.ReadLine()
		if errors.Is(err, io.EOF) {
			// the next menu read sees the same end of input and exits
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("read filename: %w", err)
		}
		target = line
	}

	res := node.Action(menu.Context{Lines: l.doc.Lines()}, target)
	if res.Loaded() {
		l.doc.Replace(res.Lines)
	}
	l.report(res)
	return false, nil
}

func (l *Loop) report(res menu.ActionResult) {
	if res.Err == nil {
		events.Action.Success(res.Info)
		fmt.Fprintf(l.out, "\n%s %s\n", l.tag(l.styles.Success, "[SUCCESS]"), res.Info)
		return
	}
	events.Action.Error(res.Err)

	msg, hint := menu.FailureText(res)
	fmt.Fprintf(l.errOut, "\n%s %s\n", l.tag(l.styles.Error, "[ERROR]"), msg)
	if hint != "" {
		fmt.Fprintln(l.errOut, hint)
	}
	if len(res.Suggestions) > 0 {
		fmt.Fprintf(l.errOut, "Did you mean: %s?\n", strings.Join(res.Suggestions, ", "))
	}
}

func (l *Loop) showMenu() {
	lines := menu.Lines(l.registry.Items())
	lines[0] = l.tag(l.styles.Banner, lines[0])
	fmt.Fprintf(l.out, "\n%s\n%s", strings.Join(lines, "\n"), menu.ChoicePrompt)
}

// readChoiceLine skips blank lines the way numeric extraction skips
// whitespace, without redrawing the menu.
func (l *Loop) readChoiceLine() (string, error) {
	for {
		line, err := l.in.ReadLine()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
	}
}

func (l *Loop) farewell(reason string) {
	events.App.Exit(reason, l.doc.Len())
	fmt.Fprintln(l.out, menu.Farewell())
}

func (l *Loop) tag(style *lipgloss.Style, text string) string {
	return theme.Render(style, text)
}
