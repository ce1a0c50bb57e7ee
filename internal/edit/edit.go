// Package edit implements the append-only editing session: show the document
// with line numbers, then take raw lines until the sentinel or end of input.
package edit

import (
	"errors"
	"fmt"
	"io"

	"github.com/atomicstack/lineedit/internal/document"
	"github.com/atomicstack/lineedit/internal/logging/events"
)

// Sentinel ends an editing session. It is never stored.
const Sentinel = "EOF"

// LineSource yields one line of input per call and io.EOF when exhausted.
type LineSource interface {
	ReadLine() (string, error)
}

// EndReason records why a session stopped.
type EndReason string

const (
	EndSentinel EndReason = "sentinel"
	EndInput    EndReason = "eof"
)

// Result summarises a finished session.
type Result struct {
	Added  int
	Reason EndReason
}

// Accept applies a single input line to doc and reports whether it closed
// the session.
func Accept(doc *document.Document, line string) bool {
	if line == Sentinel {
		return true
	}
	doc.Append(line)
	return false
}

// Listing returns the numbered rendering of doc, one entry per line.
func Listing(doc *document.Document) []string {
	lines := doc.Lines()
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = fmt.Sprintf("%d: %s", i+1, line)
	}
	return out
}

// Run drives a session against src, echoing banners and the current content
// to w. Running out of input ends the session the same way the sentinel does.
func Run(src LineSource, w io.Writer, doc *document.Document) (Result, error) {
	events.Edit.Start(doc.Len())
	fmt.Fprint(w, "\n*** START EDITING ***\n")
	fmt.Fprintf(w, "Current Content (%d lines):\n", doc.Len())
	for _, line := range Listing(doc) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "\nType your new lines below. Type '%s' on a new line to finish and return to the menu.\n", Sentinel)

	res := Result{Reason: EndInput}
	for {
		line, err := src.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			events.Edit.End(res.Added, string(res.Reason))
			return res, fmt.Errorf("read line: %w", err)
		}
		if Accept(doc, line) {
			res.Reason = EndSentinel
			break
		}
		res.Added++
	}
	fmt.Fprint(w, "\n*** EDITING SESSION ENDED ***\n")
	events.Edit.End(res.Added, string(res.Reason))
	return res, nil
}
