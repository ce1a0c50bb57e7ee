package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSaveWritesNewlineTerminatedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.txt")
	if err := Save(path, []string{"hello", "world"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "hello\nworld\n" {
		t.Fatalf("unexpected file contents %q", string(data))
	}
}

func TestSaveTruncatesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.txt")
	if err := os.WriteFile(path, []byte("a much longer previous body\nwith two lines\n"), 0o644); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := Save(path, []string{"short"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "short\n" {
		t.Fatalf("expected truncated contents, got %q", string(data))
	}
}

func TestSaveEmptyDocumentCreatesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := Save(path, nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() != 0 {
		t.Fatalf("expected empty file, got %d bytes", info.Size())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cases := map[string][]string{
		"plain":        {"hello", "world"},
		"empty lines":  {"", "middle", "", ""},
		"spaces":       {"  indented", "trailing  ", "\ttab"},
		"empty doc":    {},
		"carriage ret": {"dos\r", "unix"},
	}
	dir := t.TempDir()
	for name, lines := range cases {
		path := filepath.Join(dir, name+".txt")
		if err := Save(path, lines); err != nil {
			t.Fatalf("%s: save failed: %v", name, err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("%s: load failed: %v", name, err)
		}
		if len(lines) == 0 && len(got) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, lines) {
			t.Fatalf("%s: expected %#v, got %#v", name, lines, got)
		}
	}
}

func TestSaveFailureReportsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "t.txt")
	err := Save(path, []string{"x"})
	if err == nil {
		t.Fatalf("expected error saving into a missing directory")
	}
	var fileErr *FileError
	if !errors.As(err, &fileErr) {
		t.Fatalf("expected *FileError, got %T", err)
	}
	if fileErr.Op != OpSave || fileErr.Path != path {
		t.Fatalf("unexpected error fields %#v", fileErr)
	}
	if !fileErr.OpenFailed() {
		t.Fatalf("expected open failure")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	lines, err := Load(path)
	if err == nil {
		t.Fatalf("expected error loading missing file")
	}
	if lines != nil {
		t.Fatalf("expected no lines on failure, got %#v", lines)
	}
	var fileErr *FileError
	if !errors.As(err, &fileErr) || fileErr.Op != OpLoad {
		t.Fatalf("expected load FileError, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist, got %v", err)
	}
}

func TestLoadFileWithoutTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.txt")
	if err := os.WriteFile(path, []byte("one\ntwo"), 0o644); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Fatalf("unexpected lines %#v", got)
	}
}
