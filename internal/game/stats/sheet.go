package stats

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Raw is a character's stats as stored: either Flat or Structured.
type Raw interface {
	isRaw()
}

// Flat is a stat map stored directly. WeaponRanks is carried alongside the
// stats when a flat document lists them.
type Flat struct {
	Stats       Map
	WeaponRanks map[string]string
}

// Structured is the nested stat form. Growths are percent-per-level.
type Structured struct {
	BaseStats   Map               `yaml:"baseStats" json:"baseStats,omitempty"`
	Growths     Map               `yaml:"growths" json:"growths,omitempty"`
	BonusStats  Map               `yaml:"bonusStats" json:"bonusStats,omitempty"`
	WeaponRanks map[string]string `yaml:"weaponRanks" json:"weaponRanks,omitempty"`
}

func (Flat) isRaw()       {}
func (Structured) isRaw() {}

// Flatten returns the canonical flat stat map for raw.
// Structured stats yield BaseStats verbatim; growths and bonuses are not folded in.
// The returned map may alias the input and must not be mutated.
//
// Postcondition: never returns nil.
func Flatten(raw Raw) Map {
	switch r := raw.(type) {
	case Flat:
		if r.Stats != nil {
			return r.Stats
		}
	case *Flat:
		if r != nil && r.Stats != nil {
			return r.Stats
		}
	case Structured:
		if r.BaseStats != nil {
			return r.BaseStats
		}
	case *Structured:
		if r != nil && r.BaseStats != nil {
			return r.BaseStats
		}
	}
	return Map{}
}

const (
	baseStatsKey   = "baseStats"
	weaponRanksKey = "weaponRanks"
)

// nestedOnlyKeys only carry meaning next to baseStats; a flat document ignores them.
var nestedOnlyKeys = map[string]bool{
	"growths":    true,
	"bonusStats": true,
}

// Sheet carries a Raw value through YAML and JSON documents.
// A mapping with a baseStats key decodes as Structured. Any other mapping
// decodes as Flat: its stat keys are kept, weaponRanks is kept beside them,
// and growths or bonusStats are ignored.
type Sheet struct {
	Raw Raw
}

// Flat returns the canonical flat stat map for the sheet.
func (s Sheet) Flat() Map {
	return Flatten(s.Raw)
}

// WeaponRanks returns the weapon ranks stored with the sheet, or nil.
func (s Sheet) WeaponRanks() map[string]string {
	switch r := s.Raw.(type) {
	case Flat:
		return r.WeaponRanks
	case *Flat:
		if r != nil {
			return r.WeaponRanks
		}
	case Structured:
		return r.WeaponRanks
	case *Structured:
		if r != nil {
			return r.WeaponRanks
		}
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Sheet) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: stats must be a mapping", node.Line)
	}
	for i := 0; i < len(node.Content); i += 2 {
		if node.Content[i].Value == baseStatsKey {
			var st Structured
			if err := node.Decode(&st); err != nil {
				return err
			}
			s.Raw = st
			return nil
		}
	}

	rest := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Line: node.Line, Column: node.Column}
	var flat Flat
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch {
		case key.Value == weaponRanksKey:
			if err := value.Decode(&flat.WeaponRanks); err != nil {
				return fmt.Errorf("line %d: weaponRanks: %w", value.Line, err)
			}
		case nestedOnlyKeys[key.Value]:
		default:
			rest.Content = append(rest.Content, key, value)
		}
	}
	if err := rest.Decode(&flat.Stats); err != nil {
		return err
	}
	s.Raw = flat
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Sheet) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("stats must be an object: %w", err)
	}
	if _, ok := fields[baseStatsKey]; ok {
		var st Structured
		if err := json.Unmarshal(data, &st); err != nil {
			return err
		}
		s.Raw = st
		return nil
	}

	var flat Flat
	if raw, ok := fields[weaponRanksKey]; ok {
		if err := json.Unmarshal(raw, &flat.WeaponRanks); err != nil {
			return fmt.Errorf("weaponRanks: %w", err)
		}
		delete(fields, weaponRanksKey)
	}
	for k := range nestedOnlyKeys {
		delete(fields, k)
	}
	rest, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(rest, &flat.Stats); err != nil {
		return err
	}
	s.Raw = flat
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Sheet) MarshalJSON() ([]byte, error) {
	switch r := s.Raw.(type) {
	case Structured:
		return json.Marshal(r)
	case *Structured:
		return json.Marshal(r)
	default:
		ranks := s.WeaponRanks()
		if len(ranks) == 0 {
			return json.Marshal(Flatten(s.Raw))
		}
		out := make(map[string]any, len(Flatten(s.Raw))+1)
		for k, v := range Flatten(s.Raw) {
			out[string(k)] = v
		}
		out[weaponRanksKey] = ranks
		return json.Marshal(out)
	}
}
