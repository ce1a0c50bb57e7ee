package menu

import "fmt"

// Node represents a menu entry definition within the registry.
type Node struct {
	Item
	Action Action
	Prompt string
}

// NeedsTarget reports whether the entry asks for a filename first.
func (n *Node) NeedsTarget() bool {
	return n.Prompt != ""
}

// Registry exposes lookup utilities for menu definitions.
type Registry struct {
	items    []Item
	nodes    map[string]*Node
	byChoice map[int]*Node
}

// ActionHandlers maps menu identifiers to their file actions. Editing and
// exiting are interactive and owned by the front-end.
func ActionHandlers() map[string]Action {
	return map[string]Action{
		IDSave: SaveAction,
		IDLoad: LoadAction,
	}
}

// Prompts maps menu identifiers to the filename prompt shown before running.
func Prompts() map[string]string {
	return map[string]string{
		IDSave: "Enter filename (e.g., my_notes.txt): ",
		IDLoad: "Enter filename to load: ",
	}
}

// BuildRegistry constructs the registry from the root items and handler maps.
func BuildRegistry() *Registry {
	items := RootItems()
	handlers := ActionHandlers()
	prompts := Prompts()
	r := &Registry{
		items:    items,
		nodes:    make(map[string]*Node, len(items)),
		byChoice: make(map[int]*Node, len(items)),
	}
	for _, item := range items {
		node := &Node{Item: item, Action: handlers[item.ID], Prompt: prompts[item.ID]}
		r.nodes[item.ID] = node
		r.byChoice[item.Choice] = node
	}
	return r
}

// Items returns the entries in display order.
func (r *Registry) Items() []Item {
	dup := make([]Item, len(r.items))
	copy(dup, r.items)
	return dup
}

// Find locates a node by ID.
func (r *Registry) Find(id string) (*Node, bool) {
	node, ok := r.nodes[id]
	return node, ok
}

// Resolve maps a numeric choice to its node.
func (r *Registry) Resolve(choice int) (*Node, error) {
	node, ok := r.byChoice[choice]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChoice, choice)
	}
	return node, nil
}

// Range returns the lowest and highest valid choices.
func (r *Registry) Range() (int, int) {
	if len(r.items) == 0 {
		return 0, 0
	}
	lo, hi := r.items[0].Choice, r.items[0].Choice
	for _, item := range r.items[1:] {
		if item.Choice < lo {
			lo = item.Choice
		}
		if item.Choice > hi {
			hi = item.Choice
		}
	}
	return lo, hi
}
