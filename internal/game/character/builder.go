package character

import (
	"regexp"
	"strings"

	"github.com/cory-johannsen/battlecalc/internal/game/stats"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slug lower-cases name and replaces every whitespace run with "-".
func Slug(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}

// Generic builds an NPC from bare stats, for forecasts against a combatant
// that has no stored sheet.
//
// Postcondition: the stats are held in structured form as base stats, and
// CurrentHP equals the hp stat. The caller's map is not aliased.
func Generic(name string, base stats.Map, level int) *Character {
	own := base.Clone()
	hp := own.Get(stats.HP)
	return &Character{
		ID:        Slug(name),
		Name:      name,
		Kind:      KindNPC,
		Level:     level,
		Stats:     stats.Sheet{Raw: stats.Structured{BaseStats: own}},
		CurrentHP: &hp,
	}
}
