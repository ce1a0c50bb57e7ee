// Package storage persists documents as plain text: one line per physical
// line, each terminated by '\n', with no header or metadata.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/atomicstack/lineedit/internal/document"
)

// Op names the storage operation that failed.
type Op string

const (
	OpSave Op = "save"
	OpLoad Op = "load"
)

// FileError reports a failed save or load against a named file.
type FileError struct {
	Op   Op
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// OpenFailed reports whether the file could not be opened at all, as opposed
// to failing part way through reading or writing.
func (e *FileError) OpenFailed() bool {
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) {
		return pathErr.Op == "open"
	}
	return false
}

// Save writes every line to path, truncating any existing content. Lines
// written before a failure stay on disk.
func Save(path string, lines []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &FileError{Op: OpSave, Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &FileError{Op: OpSave, Path: path, Err: cerr}
		}
	}()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, werr := w.WriteString(line); werr != nil {
			return &FileError{Op: OpSave, Path: path, Err: werr}
		}
		if werr := w.WriteByte('\n'); werr != nil {
			return &FileError{Op: OpSave, Path: path, Err: werr}
		}
	}
	if ferr := w.Flush(); ferr != nil {
		return &FileError{Op: OpSave, Path: path, Err: ferr}
	}
	return nil
}

// Load reads path fully and returns its lines in file order. On failure no
// lines are returned.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Op: OpLoad, Path: path, Err: err}
	}
	defer f.Close()

	lines, err := document.ReadAll(f)
	if err != nil {
		return nil, &FileError{Op: OpLoad, Path: path, Err: err}
	}
	return lines, nil
}
