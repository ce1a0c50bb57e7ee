package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func TestListSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.txt", "a.txt")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	names, err := List(dir)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"a.txt", "b.txt"}) {
		t.Fatalf("unexpected names %#v", names)
	}
}

func TestSuggestFindsCloseNames(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "notes.txt", "todo.md")
	got := Suggest(filepath.Join(dir, "note.txt"), 3)
	want := []string{filepath.Join(dir, "notes.txt")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestSuggestCatchesTypos(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "draft.txt")
	got := Suggest(filepath.Join(dir, "dratf.txt"), 3)
	if len(got) != 1 || got[0] != filepath.Join(dir, "draft.txt") {
		t.Fatalf("expected draft.txt suggestion, got %#v", got)
	}
}

func TestSuggestRespectsLimit(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "log1.txt", "log2.txt", "log3.txt", "log4.txt")
	got := Suggest(filepath.Join(dir, "log.txt"), 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 suggestions, got %#v", got)
	}
}

func TestSuggestMissingDirectory(t *testing.T) {
	if got := Suggest(filepath.Join(t.TempDir(), "gone", "x.txt"), 3); got != nil {
		t.Fatalf("expected no suggestions, got %#v", got)
	}
}
