// Package document holds the in-memory line buffer edited by lineedit and the
// line reader shared by every consumer of newline-delimited text.
package document

// Document is an ordered sequence of text lines. Insertion order is both the
// display order and the storage order.
type Document struct {
	lines []string
}

// New returns a document seeded with a copy of the provided lines.
func New(lines ...string) *Document {
	d := &Document{}
	d.Replace(lines)
	return d
}

// Len reports the number of lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Line returns the line at the zero-based index.
func (d *Document) Line(i int) (string, bool) {
	if i < 0 || i >= len(d.lines) {
		return "", false
	}
	return d.lines[i], true
}

// Lines returns a copy of the current contents.
func (d *Document) Lines() []string {
	dup := make([]string, len(d.lines))
	copy(dup, d.lines)
	return dup
}

// Append adds a line at the end of the document.
func (d *Document) Append(line string) {
	d.lines = append(d.lines, line)
}

// Replace swaps the whole contents for a copy of lines.
func (d *Document) Replace(lines []string) {
	d.lines = make([]string, len(lines))
	copy(d.lines, lines)
}
