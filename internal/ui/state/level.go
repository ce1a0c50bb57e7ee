package state

import "github.com/atomicstack/lineedit/internal/menu"

// Level encapsulates the menu list shown by the TUI and its cursor.
type Level struct {
	Items  []menu.Item
	Cursor int
}

// NewLevel constructs a Level with the cursor on the first item.
func NewLevel(items []menu.Item) *Level {
	dup := make([]menu.Item, len(items))
	copy(dup, items)
	return &Level{Items: dup}
}

// Current returns the item under the cursor.
func (l *Level) Current() (menu.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// IndexOfChoice returns the position of the item bound to choice.
func (l *Level) IndexOfChoice(choice int) int {
	for i, item := range l.Items {
		if item.Choice == choice {
			return i
		}
	}
	return -1
}

// SelectChoice moves the cursor to the item bound to choice.
func (l *Level) SelectChoice(choice int) bool {
	idx := l.IndexOfChoice(choice)
	if idx < 0 {
		return false
	}
	l.Cursor = idx
	return true
}
