package table

import (
	"reflect"
	"testing"
)

func TestFormatRightAlignsNumbers(t *testing.T) {
	rows := [][]string{
		{"1:", "first"},
		{"10:", "tenth"},
	}
	got := Format(rows, []Alignment{AlignRight, AlignLeft}, " ")
	want := []string{" 1: first", "10: tenth"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestFormatLeavesLastColumnUnpadded(t *testing.T) {
	rows := [][]string{
		{"a", "short"},
		{"bbb", "a longer cell"},
	}
	got := Format(rows, nil, "  ")
	want := []string{"a    short", "bbb  a longer cell"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil, " "); got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}
}
