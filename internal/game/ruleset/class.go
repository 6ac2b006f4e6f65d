package ruleset

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/battlecalc/internal/game/item"
	"github.com/cory-johannsen/battlecalc/internal/game/stats"
	"github.com/cory-johannsen/battlecalc/internal/yamlfile"
)

// noRank marks a weapon type the class can never wield.
const noRank = "-"

// Class defines a character class: its level 1 stats, growth rates and the
// weapon ranks it starts with.
//
// Precondition: ID and Name must be non-empty after loading.
type Class struct {
	ID          string            `yaml:"id" json:"id"`
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description" json:"description,omitempty"`
	BaseStats   stats.Map         `yaml:"base_stats" json:"base_stats,omitempty"`
	Growths     stats.Map         `yaml:"growths" json:"growths,omitempty"`
	WeaponRanks map[string]string `yaml:"weapon_ranks" json:"weapon_ranks,omitempty"`
}

// CanUse reports whether the class may wield it.
//
// Precondition: it must be non-nil.
// Postcondition: Returns false when the class has no weapon ranks, the item
// is restricted to another class, or the class rank for the item's type is
// missing or "-".
func (c *Class) CanUse(it *item.Item) bool {
	if c == nil || len(c.WeaponRanks) == 0 {
		return false
	}
	if it.ClassRestriction != "" && it.ClassRestriction != c.Name {
		return false
	}
	rank, ok := c.WeaponRanks[it.NormalizedType()]
	if !ok || rank == "" || rank == noRank {
		return false
	}
	return item.SufficientRank(rank, it.WeaponRank)
}

// LoadClasses reads every .yaml or .yml file in dir and parses each as a Class.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed classes (may be empty slice) or a non-nil error.
func LoadClasses(dir string) ([]*Class, error) {
	files, err := yamlfile.List(dir)
	if err != nil {
		return nil, err
	}
	classes := make([]*Class, 0, len(files))
	for _, path := range files {
		var c Class
		if err := yamlfile.Decode(path, &c); err != nil {
			return nil, fmt.Errorf("loading class: %w", err)
		}
		if c.ID == "" || c.Name == "" {
			return nil, fmt.Errorf("parsing class file %s: id and name are required", path)
		}
		c.WeaponRanks = lowerKeys(c.WeaponRanks)
		classes = append(classes, &c)
	}
	return classes, nil
}

func lowerKeys(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}
