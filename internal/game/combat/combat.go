// Package combat computes battle forecasts: each side's derived combat
// profile and the pairwise outcome of one side attacking the other.
//
// Every function is a pure computation over its arguments.
package combat

import (
	"github.com/cory-johannsen/battlecalc/internal/game/item"
	"github.com/cory-johannsen/battlecalc/internal/game/skill"
	"github.com/cory-johannsen/battlecalc/internal/game/stats"
)

// Side is one participant as seen by a single summary computation.
// A nil Weapon means the side fights unarmed.
type Side struct {
	Stats     stats.Map
	Weapon    *item.Item
	Modifiers skill.Modifiers
}

// Combatant is a full participant in a duel: the inputs a caller supplies
// before skills are evaluated.
type Combatant struct {
	Name   string
	Actor  skill.Actor
	Weapon *item.Item
	Skills []skill.Skill
}

// Bonus is a weapon triangle adjustment.
type Bonus struct {
	Damage int `json:"damage"`
	Hit    int `json:"hit"`
}

// Profile is one side's derived combat statistics.
type Profile struct {
	Atk         int `json:"atk"`
	Hit         int `json:"hit"`
	Crit        int `json:"crit"`
	AttackSpeed int `json:"attack_speed"`
	Avoid       int `json:"avoid"`
	Dodge       int `json:"dodge"`
}

// Summary is the forecast for one attacker against one defender.
// Atk, Hit, Crit and AttackSpeed are the attacker's; Avoid and Dodge are the
// defender's. BattleHit and BattleCrit are not clamped.
type Summary struct {
	Atk         int  `json:"atk"`
	Hit         int  `json:"hit"`
	Crit        int  `json:"crit"`
	AttackSpeed int  `json:"attack_speed"`
	Avoid       int  `json:"avoid"`
	Dodge       int  `json:"dodge"`
	BattleHit   int  `json:"battle_hit"`
	BattleCrit  int  `json:"battle_crit"`
	Damage      int  `json:"damage"`
	CritDamage  int  `json:"crit_damage"`
	Doubles     bool `json:"doubles"`
}

// ClampPercent limits v to [0, 100] for display.
func ClampPercent(v int) int {
	return min(100, max(0, v))
}
