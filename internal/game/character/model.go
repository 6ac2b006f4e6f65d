// Package character defines the character domain model and pure creation logic.
package character

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/battlecalc/internal/game/item"
	"github.com/cory-johannsen/battlecalc/internal/game/skill"
	"github.com/cory-johannsen/battlecalc/internal/game/stats"
)

// Kind classifies who controls a character.
type Kind string

const (
	KindPlayer Kind = "PLAYER"
	KindNPC    Kind = "NPC"
	KindEnemy  Kind = "ENEMY"
)

// WeaponSkill is a character's proficiency rank with one weapon type.
type WeaponSkill struct {
	Weapon string `yaml:"weapon" json:"weapon"`
	Rank   string `yaml:"rank" json:"rank"`
}

// InventoryEntry is one carried item. ID identifies the entry, not the item definition.
type InventoryEntry struct {
	ID   string     `yaml:"id" json:"id"`
	Item *item.Item `yaml:"item" json:"item"`
}

// Character is a combatant's sheet as supplied by the caller.
//
// A nil CurrentHP means the character is at full health.
type Character struct {
	ID                   string           `yaml:"id" json:"id"`
	Name                 string           `yaml:"name" json:"name"`
	Kind                 Kind             `yaml:"kind" json:"kind,omitempty"`
	ClassName            string           `yaml:"class_name" json:"class_name,omitempty"`
	Level                int              `yaml:"level" json:"level,omitempty"`
	Exp                  int              `yaml:"exp" json:"exp,omitempty"`
	Stats                stats.Sheet      `yaml:"stats" json:"stats"`
	CurrentHP            *int             `yaml:"current_hp" json:"current_hp,omitempty"`
	WeaponSkills         []WeaponSkill    `yaml:"weapon_skills" json:"weapon_skills,omitempty"`
	Inventory            []InventoryEntry `yaml:"inventory" json:"inventory,omitempty"`
	Skills               []skill.Skill    `yaml:"skills" json:"skills,omitempty"`
	EquippedWeaponItemID string           `yaml:"equipped_weapon_item_id" json:"equipped_weapon_item_id,omitempty"`
}

// FlatStats returns the character's canonical flat stat map.
func (c *Character) FlatStats() stats.Map {
	return c.Stats.Flat()
}

// Actor returns the view of c that skill conditions inspect.
func (c *Character) Actor() skill.Actor {
	return skill.Actor{Stats: c.Stats.Raw, CurrentHP: c.CurrentHP}
}

// AddSkill appends s unless a skill with the same ID is already known.
//
// Postcondition: Returns an error when s.ID is empty or a duplicate.
func (c *Character) AddSkill(s skill.Skill) error {
	if s.ID == "" {
		return fmt.Errorf("character %q: skill ID must not be empty", c.Name)
	}
	for _, known := range c.Skills {
		if known.ID == s.ID {
			return fmt.Errorf("character %q: skill %q already learned", c.Name, s.ID)
		}
	}
	c.Skills = append(c.Skills, s)
	return nil
}

// WeaponRank returns the character's rank for weaponType, compared case-insensitively.
func (c *Character) WeaponRank(weaponType string) (string, bool) {
	want := strings.ToLower(strings.TrimSpace(weaponType))
	for _, ws := range c.WeaponSkills {
		if strings.ToLower(strings.TrimSpace(ws.Weapon)) == want {
			return ws.Rank, true
		}
	}
	return "", false
}

// CanEquip reports whether c may equip it.
//
// Precondition: it must be non-nil.
// Postcondition: Returns false when c has no class, when a laguz weapon is
// restricted to another class, or when c's rank for the weapon type is
// missing or below the weapon's requirement.
func (c *Character) CanEquip(it *item.Item) bool {
	if c.ClassName == "" {
		return false
	}
	if it.NormalizedType() == "laguz" && it.ClassRestriction != "" && it.ClassRestriction != c.ClassName {
		return false
	}
	rank, _ := c.WeaponRank(it.Type)
	return item.SufficientRank(rank, it.WeaponRank)
}

// Weapons returns the inventory entries holding weapons, in inventory order.
func (c *Character) Weapons() []InventoryEntry {
	var out []InventoryEntry
	for _, e := range c.Inventory {
		if e.Item.IsWeapon() {
			out = append(out, e)
		}
	}
	return out
}

// EquippedWeapon returns the weapon named by EquippedWeaponItemID, matched
// against entry IDs first and item IDs second.
//
// Postcondition: Returns nil when nothing is equipped or the equipped entry is not a weapon.
func (c *Character) EquippedWeapon() *item.Item {
	if c.EquippedWeaponItemID == "" {
		return nil
	}
	weapons := c.Weapons()
	for _, e := range weapons {
		if e.ID == c.EquippedWeaponItemID {
			return e.Item
		}
	}
	for _, e := range weapons {
		if e.Item.ID == c.EquippedWeaponItemID {
			return e.Item
		}
	}
	return nil
}
