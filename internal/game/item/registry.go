package item

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownItem is returned when an item ID is not registered.
var ErrUnknownItem = errors.New("unknown item")

// Registry holds all loaded item definitions indexed by ID.
type Registry struct {
	items map[string]*Item
}

// NewRegistry returns an empty Registry.
//
// Postcondition: the internal map is initialised.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]*Item)}
}

// Register adds it to the registry.
//
// Precondition:  it must not be nil.
// Postcondition: Item(it.ID) returns (it, true); returns error if it.ID already registered.
func (r *Registry) Register(it *Item) error {
	if _, exists := r.items[it.ID]; exists {
		return fmt.Errorf("item: Registry.Register: item ID %q already registered", it.ID)
	}
	r.items[it.ID] = it
	return nil
}

// Item returns the Item for the given id and whether it was found.
func (r *Registry) Item(id string) (*Item, bool) {
	it, ok := r.items[id]
	return it, ok
}

// Lookup returns the Item for id or an error wrapping ErrUnknownItem.
func (r *Registry) Lookup(id string) (*Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	return it, nil
}

// Weapons returns all registered weapons sorted by ID.
func (r *Registry) Weapons() []*Item {
	var out []*Item
	for _, it := range r.All() {
		if it.IsWeapon() {
			out = append(out, it)
		}
	}
	return out
}

// All returns all registered items sorted by ID.
//
// Postcondition: len(result) == number of registered items.
func (r *Registry) All() []*Item {
	out := make([]*Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of registered items.
func (r *Registry) Len() int {
	return len(r.items)
}
