package skill

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/battlecalc/internal/yamlfile"
)

// ErrUnknownSkill is returned when neither an ID nor a name matches.
var ErrUnknownSkill = errors.New("unknown skill")

// Registry holds all known skill definitions keyed by ID, with a secondary
// index on the normalized name.
type Registry struct {
	byID   map[string]*Skill
	byName map[string]*Skill
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]*Skill),
		byName: make(map[string]*Skill),
	}
}

// Register adds s to the registry.
// Precondition: s must not be nil and s.ID must not be empty.
// Postcondition: returns an error if s.ID or its normalized name is already registered.
func (r *Registry) Register(s *Skill) error {
	if _, exists := r.byID[s.ID]; exists {
		return fmt.Errorf("skill: Registry.Register: skill ID %q already registered", s.ID)
	}
	name := NormalizeName(s.Name)
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("skill: Registry.Register: skill name %q already registered", s.Name)
	}
	r.byID[s.ID] = s
	r.byName[name] = s
	return nil
}

// Resolve finds a skill by exact ID, falling back to its normalized name.
func (r *Registry) Resolve(ref string) (*Skill, error) {
	if s, ok := r.byID[ref]; ok {
		return s, nil
	}
	if s, ok := r.byName[NormalizeName(ref)]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSkill, ref)
}

// Len returns the number of registered skills.
func (r *Registry) Len() int {
	return len(r.byID)
}

// LoadSkills reads every .yaml or .yml file in dir and parses each as a Skill.
// Unknown fields are rejected.
// Precondition: dir must be a readable directory.
// Postcondition: Returns all parsed skills, or an error if any file fails to parse.
func LoadSkills(dir string) ([]*Skill, error) {
	files, err := yamlfile.List(dir)
	if err != nil {
		return nil, fmt.Errorf("loading skills: %w", err)
	}
	out := make([]*Skill, 0, len(files))
	for _, path := range files {
		var s Skill
		if err := yamlfile.DecodeStrict(path, &s); err != nil {
			return nil, fmt.Errorf("loading skills: %w", err)
		}
		if s.ID == "" || s.Name == "" {
			return nil, fmt.Errorf("parsing %q: id and name are required", path)
		}
		out = append(out, &s)
	}
	return out, nil
}
