// Package item provides item and weapon definitions, attack-range labels,
// and weapon rank eligibility used by the battle calculator.
package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/battlecalc/internal/yamlfile"
)

// DamageType selects which defensive stat a weapon is checked against.
type DamageType string

const (
	// Physical damage is reduced by constitution.
	Physical DamageType = "PHYSICAL"
	// Magical damage is reduced by wisdom and scales with intelligence.
	Magical DamageType = "MAGICAL"
)

// Category groups items for display and filtering.
type Category string

const (
	CategoryWeapon     Category = "WEAPON"
	CategoryConsumable Category = "CONSUMABLE"
	CategoryOther      Category = "OTHER"
)

// Effectiveness is a damage multiplier applied against a matching foe.
// Multiplier is nil when the source value was absent or not a number.
type Effectiveness struct {
	Multiplier *float64
}

func decodeMultiplier(raw map[string]any) *float64 {
	switch v := raw["multiplier"].(type) {
	case int:
		f := float64(v)
		return &f
	case float64:
		return &v
	default:
		return nil
	}
}

// UnmarshalYAML decodes an effectiveness mapping, ignoring a non-numeric multiplier.
func (e *Effectiveness) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("line %d: effectiveness must be a mapping: %w", node.Line, err)
	}
	e.Multiplier = decodeMultiplier(raw)
	return nil
}

// UnmarshalJSON decodes an effectiveness object, ignoring a non-numeric multiplier.
func (e *Effectiveness) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.Multiplier = decodeMultiplier(raw)
	return nil
}

// MarshalJSON encodes the multiplier, or an empty object when it is unset.
func (e Effectiveness) MarshalJSON() ([]byte, error) {
	if e.Multiplier == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]float64{"multiplier": *e.Multiplier})
}

// Item is a static item definition. Hit, MinRange and MaxRange are pointers
// because an absent value behaves differently from zero.
type Item struct {
	ID               string         `yaml:"id" json:"id"`
	Name             string         `yaml:"name" json:"name"`
	Description      string         `yaml:"description" json:"description,omitempty"`
	Category         Category       `yaml:"category" json:"category,omitempty"`
	Type             string         `yaml:"type" json:"type,omitempty"`
	DamageType       DamageType     `yaml:"damage_type" json:"damage_type,omitempty"`
	Might            int            `yaml:"might" json:"might,omitempty"`
	Hit              *int           `yaml:"hit" json:"hit,omitempty"`
	Crit             int            `yaml:"crit" json:"crit,omitempty"`
	Weight           int            `yaml:"weight" json:"weight,omitempty"`
	MinRange         *int           `yaml:"min_range" json:"min_range,omitempty"`
	MaxRange         *int           `yaml:"max_range" json:"max_range,omitempty"`
	RangeFormula     string         `yaml:"range_formula" json:"range_formula,omitempty"`
	Effectiveness    *Effectiveness `yaml:"effectiveness" json:"effectiveness,omitempty"`
	ClassRestriction string         `yaml:"class_restriction" json:"class_restriction,omitempty"`
	WeaponRank       string         `yaml:"weapon_rank" json:"weapon_rank,omitempty"`
}

// IsWeapon reports whether the item is in the weapon category.
func (it *Item) IsWeapon() bool {
	return it != nil && it.Category == CategoryWeapon
}

// IsMagical reports whether the item deals magical damage. A nil item is never magical.
func (it *Item) IsMagical() bool {
	return it != nil && it.DamageType == Magical
}

// EffectivenessMultiplier returns the damage multiplier, defaulting to 1.
func (it *Item) EffectivenessMultiplier() float64 {
	if it == nil || it.Effectiveness == nil || it.Effectiveness.Multiplier == nil {
		return 1
	}
	return *it.Effectiveness.Multiplier
}

// NormalizedType returns the lower-cased weapon type, or "" for a nil item.
func (it *Item) NormalizedType() string {
	if it == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(it.Type))
}

// Validate checks that the Item satisfies its invariants.
// Precondition: it is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (it *Item) Validate() error {
	var errs []error
	if it.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if it.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	switch it.DamageType {
	case "", Physical, Magical:
	default:
		errs = append(errs, fmt.Errorf("DamageType must be PHYSICAL or MAGICAL, got %q", it.DamageType))
	}
	if it.Category == CategoryWeapon && it.Type == "" {
		errs = append(errs, errors.New("weapon Type must not be empty"))
	}
	if it.WeaponRank != "" {
		if _, ok := ParseRank(it.WeaponRank); !ok {
			errs = append(errs, fmt.Errorf("WeaponRank %q is not one of E,D,C,B,A,S", it.WeaponRank))
		}
	}
	if it.MinRange != nil && it.MaxRange != nil && *it.MinRange > *it.MaxRange {
		errs = append(errs, fmt.Errorf("MinRange %d exceeds MaxRange %d", *it.MinRange, *it.MaxRange))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item validation failed: %v", errs)
	}
	return nil
}

// LoadItems reads every .yaml or .yml file in dir, parses each as an Item,
// validates it, and returns the collected slice.
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid Items or the first encountered error.
func LoadItems(dir string) ([]*Item, error) {
	files, err := yamlfile.List(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadItems: %w", err)
	}
	items := make([]*Item, 0, len(files))
	for _, path := range files {
		var it Item
		if err := yamlfile.Decode(path, &it); err != nil {
			return nil, fmt.Errorf("LoadItems: %w", err)
		}
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("LoadItems: invalid item in %q: %w", path, err)
		}
		items = append(items, &it)
	}
	return items, nil
}
