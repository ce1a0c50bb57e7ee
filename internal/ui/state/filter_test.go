package state

import (
	"reflect"
	"testing"
)

func TestFilterNamesFuzzy(t *testing.T) {
	names := []string{"draft.txt", "notes.txt", "todo.md"}
	got := FilterNames(names, "nts")
	if !reflect.DeepEqual(got, []string{"notes.txt"}) {
		t.Fatalf("unexpected matches %#v", got)
	}
	if all := FilterNames(names, "  "); !reflect.DeepEqual(all, names) {
		t.Fatalf("expected all names for blank query, got %#v", all)
	}
}

func TestSuggestionsBestPrefersPrefix(t *testing.T) {
	s := NewSuggestions([]string{"a-notes.txt", "notes.txt"})
	s.SetQuery("not")
	best, ok := s.Best()
	if !ok || best != "notes.txt" {
		t.Fatalf("expected notes.txt, got %q", best)
	}
	s.SetQuery("zzz")
	if _, ok := s.Best(); ok {
		t.Fatalf("expected no best match, items %#v", s.Items)
	}
}
