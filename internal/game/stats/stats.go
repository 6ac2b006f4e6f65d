// Package stats models character statistics: the closed set of stat keys,
// the flat stat map consumed by combat math, and level-based growth.
package stats

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Key names one character statistic.
type Key string

const (
	HP           Key = "hp"
	Strength     Key = "strength"
	Intelligence Key = "intelligence"
	Agility      Key = "agility"
	Ability      Key = "ability"
	// Skill is the legacy name for Ability; it is consulted only when Ability is absent.
	Skill        Key = "skill"
	Luck         Key = "luck"
	Constitution Key = "constitution"
	Wisdom       Key = "wisdom"
	Build        Key = "build"
	Movement     Key = "movement"
)

var allKeys = []Key{
	HP, Strength, Intelligence, Agility, Ability, Skill,
	Luck, Constitution, Wisdom, Build, Movement,
}

// Keys returns every known stat key in canonical display order.
func Keys() []Key {
	out := make([]Key, len(allKeys))
	copy(out, allKeys)
	return out
}

// ParseKey normalizes s and reports whether it names a known stat.
//
// Postcondition: ok is true iff strings.ToLower(strings.TrimSpace(s)) is a known Key.
func ParseKey(s string) (Key, bool) {
	k := Key(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range allKeys {
		if k == known {
			return k, true
		}
	}
	return "", false
}

// Map is a flat stat map. Absent keys read as zero.
type Map map[Key]int

// Get returns the value for k, or 0 when k is absent.
func (m Map) Get(k Key) int {
	return m[k]
}

// Lookup returns the value for k and whether it is present.
func (m Map) Lookup(k Key) (int, bool) {
	v, ok := m[k]
	return v, ok
}

// SkillStat returns Ability when present, otherwise the legacy Skill value, otherwise 0.
func (m Map) SkillStat() int {
	if v, ok := m.Lookup(Ability); ok {
		return v
	}
	return m[Skill]
}

// Clone returns an independent copy of m. A nil map clones to an empty map.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Merge returns a copy of m with every entry of over written on top.
func (m Map) Merge(over Map) Map {
	out := m.Clone()
	for k, v := range over {
		out[k] = v
	}
	return out
}

// SortedKeys returns the keys present in m in canonical order.
func (m Map) SortedKeys() []Key {
	keys := make([]Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	order := make(map[Key]int, len(allKeys))
	for i, k := range allKeys {
		order[k] = i
	}
	sort.Slice(keys, func(i, j int) bool { return order[keys[i]] < order[keys[j]] })
	return keys
}

func fromRaw(raw map[string]int) (Map, error) {
	out := make(Map, len(raw))
	for name, v := range raw {
		k, ok := ParseKey(name)
		if !ok {
			return nil, fmt.Errorf("unknown stat %q", name)
		}
		out[k] = v
	}
	return out, nil
}

// UnmarshalYAML decodes a mapping of stat names to integers, rejecting unknown names.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]int
	if err := node.Decode(&raw); err != nil {
		return err
	}
	out, err := fromRaw(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*m = out
	return nil
}

// UnmarshalJSON decodes an object of stat names to integers, rejecting unknown names.
func (m *Map) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out, err := fromRaw(raw)
	if err != nil {
		return err
	}
	*m = out
	return nil
}
