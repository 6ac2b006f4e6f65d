// Package forecast turns a battle scenario description into a two-sided
// combat forecast against a content library.
package forecast

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/battlecalc/internal/game/item"
	"github.com/cory-johannsen/battlecalc/internal/game/stats"
)

// ErrInvalidScenario is returned for scenarios that cannot describe a battle.
var ErrInvalidScenario = errors.New("invalid scenario")

// WeaponRef selects a weapon either by library ID or as an inline definition.
// In YAML and JSON a string is an ID and a mapping is an inline item.
type WeaponRef struct {
	ID     string
	Inline *item.Item
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (w *WeaponRef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&w.ID)
	case yaml.MappingNode:
		var it item.Item
		if err := node.Decode(&it); err != nil {
			return err
		}
		w.Inline = &it
		return nil
	default:
		return fmt.Errorf("line %d: weapon must be an item id or an item mapping", node.Line)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (w *WeaponRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &w.ID)
	}
	var it item.Item
	if err := json.Unmarshal(data, &it); err != nil {
		return fmt.Errorf("weapon must be an item id or an item object: %w", err)
	}
	w.Inline = &it
	return nil
}

// MarshalJSON implements json.Marshaler.
func (w WeaponRef) MarshalJSON() ([]byte, error) {
	if w.Inline != nil {
		return json.Marshal(w.Inline)
	}
	return json.Marshal(w.ID)
}

// Side describes one combatant.
//
// Stats, when present, are used as given. Otherwise the stats of Class at
// Level are derived from the class growth table, with unset stats taken from
// the ruleset defaults. Class may accompany explicit stats to drive weapon
// eligibility.
//
// The side fights with Weapon when set, otherwise with the inventory weapon
// named by Equipped, otherwise unarmed.
type Side struct {
	Name        string            `yaml:"name" json:"name,omitempty"`
	Stats       *stats.Sheet      `yaml:"stats" json:"stats,omitempty"`
	Class       string            `yaml:"class" json:"class,omitempty"`
	Level       int               `yaml:"level" json:"level,omitempty"`
	CurrentHP   *int              `yaml:"current_hp" json:"current_hp,omitempty"`
	Weapon      *WeaponRef        `yaml:"weapon" json:"weapon,omitempty"`
	WeaponRanks map[string]string `yaml:"weapon_ranks" json:"weapon_ranks,omitempty"`
	Skills      []string          `yaml:"skills" json:"skills,omitempty"`
	Inventory   []InventoryRef    `yaml:"inventory" json:"inventory,omitempty"`
	Equipped    string            `yaml:"equipped" json:"equipped,omitempty"`
}

// InventoryRef is one carried item. ID names the entry and defaults to the
// item's ID; Equipped may refer to either.
type InventoryRef struct {
	ID   string     `yaml:"id" json:"id,omitempty"`
	Item *WeaponRef `yaml:"item" json:"item"`
}

// Scenario is a complete forecast request.
type Scenario struct {
	Left  Side `yaml:"left" json:"left"`
	Right Side `yaml:"right" json:"right"`
}

// Validate checks the scenario's structural invariants.
//
// Postcondition: Returns nil, or an error wrapping ErrInvalidScenario.
func (s Scenario) Validate() error {
	var errs []error
	sides := []struct {
		label string
		side  Side
	}{{"left", s.Left}, {"right", s.Right}}
	for _, ls := range sides {
		label, side := ls.label, ls.side
		if side.Level < 0 {
			errs = append(errs, fmt.Errorf("%s.level must be >= 0, got %d", label, side.Level))
		}
		if side.CurrentHP != nil && *side.CurrentHP < 0 {
			errs = append(errs, fmt.Errorf("%s.current_hp must be >= 0, got %d", label, *side.CurrentHP))
		}
		if side.Weapon != nil && side.Weapon.ID == "" && side.Weapon.Inline == nil {
			errs = append(errs, fmt.Errorf("%s.weapon must name an item", label))
		}
		if side.Weapon != nil && side.Weapon.Inline != nil && side.Weapon.Inline.Type == "" {
			errs = append(errs, fmt.Errorf("%s.weapon inline item needs a type", label))
		}
		if side.Weapon != nil && side.Equipped != "" {
			errs = append(errs, fmt.Errorf("%s: weapon and equipped are mutually exclusive", label))
		}
		if side.Equipped != "" && len(side.Inventory) == 0 {
			errs = append(errs, fmt.Errorf("%s.equipped %q needs an inventory", label, side.Equipped))
		}
		seen := make(map[string]bool, len(side.Inventory))
		for i, e := range side.Inventory {
			if e.Item == nil || (e.Item.ID == "" && e.Item.Inline == nil) {
				errs = append(errs, fmt.Errorf("%s.inventory[%d] must name an item", label, i))
				continue
			}
			if e.ID == "" {
				continue
			}
			if seen[e.ID] {
				errs = append(errs, fmt.Errorf("%s.inventory[%d]: duplicate entry id %q", label, i, e.ID))
			}
			seen[e.ID] = true
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, errors.Join(errs...))
	}
	return nil
}

// LoadScenario reads a YAML scenario file. Unknown fields are rejected.
//
// Precondition: path must be a readable file.
// Postcondition: Returns a validated Scenario or a non-nil error.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes a YAML (or JSON) scenario document.
func ParseScenario(data []byte) (Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Scenario{}, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}
