package document

import (
	"bufio"
	"io"
	"strings"
)

// LineReader reads newline-terminated lines of any length. The terminating
// '\n' is removed and nothing else is altered, so a trailing '\r' survives.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r. An existing *bufio.Reader is reused as-is.
func NewLineReader(r io.Reader) *LineReader {
	if br, ok := r.(*bufio.Reader); ok {
		return &LineReader{r: br}
	}
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line. A final line lacking a terminator is
// returned with a nil error; io.EOF is only reported once no data remains.
func (lr *LineReader) ReadLine() (string, error) {
	line, err := lr.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}

// ReadAll drains the reader, returning every remaining line in order.
func ReadAll(r io.Reader) ([]string, error) {
	lr := NewLineReader(r)
	lines := []string{}
	for {
		line, err := lr.ReadLine()
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
}
