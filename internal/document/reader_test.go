package document

import (
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestReadAllKeepsEmptyLines(t *testing.T) {
	lines, err := ReadAll(strings.NewReader("a\n\nb\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "", "b"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("expected %#v, got %#v", want, lines)
	}
}

func TestReadAllFinalLineWithoutNewline(t *testing.T) {
	lines, err := ReadAll(strings.NewReader("a\nb"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"a", "b"}) {
		t.Fatalf("unexpected lines %#v", lines)
	}
}

func TestReadAllEmptyInput(t *testing.T) {
	lines, err := ReadAll(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lines == nil || len(lines) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", lines)
	}
}

func TestReadLineKeepsCarriageReturn(t *testing.T) {
	lr := NewLineReader(strings.NewReader("dos\r\n"))
	line, err := lr.ReadLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "dos\r" {
		t.Fatalf("expected carriage return preserved, got %q", line)
	}
	if _, err := lr.ReadLine(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestReadLineHasNoLengthLimit(t *testing.T) {
	long := strings.Repeat("x", 256*1024)
	lr := NewLineReader(strings.NewReader(long + "\nnext\n"))
	line, err := lr.ReadLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(line) != len(long) {
		t.Fatalf("expected %d bytes, got %d", len(long), len(line))
	}
	if next, _ := lr.ReadLine(); next != "next" {
		t.Fatalf("expected following line intact, got %q", next)
	}
}
