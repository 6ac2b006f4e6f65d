package ruleset

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownClass is returned when a class reference matches neither an ID nor a name.
var ErrUnknownClass = errors.New("unknown class")

// ClassRegistry provides lookup of classes by ID or by case-insensitive name.
type ClassRegistry struct {
	byID   map[string]*Class
	byName map[string]*Class
}

// NewClassRegistry returns an empty ClassRegistry.
//
// Postcondition: Returns a non-nil *ClassRegistry ready to accept registrations.
func NewClassRegistry() *ClassRegistry {
	return &ClassRegistry{
		byID:   make(map[string]*Class),
		byName: make(map[string]*Class),
	}
}

// Register adds a Class to the registry.
//
// Precondition: class must be non-nil with a non-empty ID.
// Postcondition: Returns an error if the ID or name is already registered.
func (r *ClassRegistry) Register(class *Class) error {
	if class == nil {
		panic("ClassRegistry.Register: precondition violated: class must be non-nil")
	}
	if class.ID == "" {
		panic("ClassRegistry.Register: precondition violated: class ID must be non-empty")
	}
	if _, ok := r.byID[class.ID]; ok {
		return fmt.Errorf("class ID %q already registered", class.ID)
	}
	name := normalize(class.Name)
	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("class name %q already registered", class.Name)
	}
	r.byID[class.ID] = class
	r.byName[name] = class
	return nil
}

// Class returns the Class for the given ID, if registered.
func (r *ClassRegistry) Class(id string) (*Class, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// Resolve finds a class by exact ID, falling back to its case-insensitive name.
//
// Postcondition: Returns a non-nil Class, or an error wrapping ErrUnknownClass.
func (r *ClassRegistry) Resolve(ref string) (*Class, error) {
	if c, ok := r.byID[ref]; ok {
		return c, nil
	}
	if c, ok := r.byName[normalize(ref)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownClass, ref)
}

// All returns every registered class sorted by name.
func (r *ClassRegistry) All() []*Class {
	out := make([]*Class, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of registered classes.
func (r *ClassRegistry) Len() int {
	return len(r.byID)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
