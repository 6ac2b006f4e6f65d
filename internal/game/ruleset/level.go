package ruleset

import "github.com/cory-johannsen/battlecalc/internal/game/stats"

// DefaultStats are the level 1 stats assumed for any stat a class leaves unset.
var DefaultStats = stats.Map{
	stats.HP:           30,
	stats.Strength:     10,
	stats.Intelligence: 0,
	stats.Agility:      8,
	stats.Ability:      8,
	stats.Luck:         5,
	stats.Constitution: 5,
	stats.Wisdom:       0,
	stats.Build:        5,
	stats.Movement:     5,
}

// StatsAtLevel returns class's stats grown to level. The class base stats
// override fallback key by key.
//
// Postcondition: a nil class yields a copy of fallback. The result never
// aliases fallback or the class maps.
func StatsAtLevel(class *Class, level int, fallback stats.Map) stats.Map {
	if class == nil {
		return fallback.Clone()
	}
	base := fallback.Merge(class.BaseStats)
	return stats.AtLevel(base, class.Growths, level)
}
