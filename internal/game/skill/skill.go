// Package skill resolves named character skills into battle effects.
//
// The catalog of modelled skills is closed: each known skill is a Kind with
// its own branch in Evaluate. Any other skill evaluates to an inert summary.
package skill

import (
	"github.com/cory-johannsen/battlecalc/internal/game/item"
	"github.com/cory-johannsen/battlecalc/internal/game/stats"
)

// Skill is a skill definition. Name is the catalog lookup key.
type Skill struct {
	ID           string    `yaml:"id" json:"id"`
	Name         string    `yaml:"name" json:"name"`
	Description  string    `yaml:"description" json:"description,omitempty"`
	BonusStats   stats.Map `yaml:"bonus_stats" json:"bonus_stats,omitempty"`
	BonusDerived Modifiers `yaml:"bonus_derived" json:"bonus_derived"`
}

// Kind returns the catalog kind for the skill's name.
func (s Skill) Kind() Kind {
	return KindOf(s.Name)
}

// Actor is the part of a combatant a skill condition can inspect.
// A nil CurrentHP means the combatant is at full health.
type Actor struct {
	Stats     stats.Raw
	CurrentHP *int
}

// Summary is the evaluated state of one skill in a battle.
// Rate is a percentage; nil means the skill has no modelled rate.
type Summary struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Kind          Kind       `json:"-"`
	Rate          *int       `json:"rate"`
	IsChanceBased bool       `json:"is_chance_based"`
	IsActive      bool       `json:"is_active"`
	EffectText    string     `json:"effect_text,omitempty"`
	Modifiers     *Modifiers `json:"modifiers,omitempty"`
}

type battleContext struct {
	attackerStats stats.Map
	defenderStats stats.Map
	weapon        *item.Item
	currentHP     int
	maxHP         int
}

func newContext(attacker Actor, defender *Actor, weapon *item.Item) battleContext {
	attackerStats := stats.Flatten(attacker.Stats)
	defenderStats := stats.Map{}
	if defender != nil {
		defenderStats = stats.Flatten(defender.Stats)
	}
	maxHP := attackerStats.Get(stats.HP)
	currentHP := maxHP
	if attacker.CurrentHP != nil {
		currentHP = *attacker.CurrentHP
	}
	return battleContext{
		attackerStats: attackerStats,
		defenderStats: defenderStats,
		weapon:        weapon,
		currentHP:     currentHP,
		maxHP:         maxHP,
	}
}

// Evaluate resolves each skill against the attacker, defender and the
// attacker's equipped weapon. defender and weapon may be nil.
//
// Postcondition: len(result) == len(skills) and result[i] describes skills[i].
func Evaluate(skills []Skill, attacker Actor, defender *Actor, weapon *item.Item) []Summary {
	ctx := newContext(attacker, defender, weapon)
	out := make([]Summary, 0, len(skills))
	for _, s := range skills {
		sum := ctx.evaluate(s.Kind())
		sum.ID = s.ID
		sum.Name = s.Name
		sum.Description = s.Description
		out = append(out, sum)
	}
	return out
}

func (c battleContext) evaluate(kind Kind) Summary {
	switch kind {
	case KindIra:
		active := c.maxHP > 0 && float64(c.currentHP)/float64(c.maxHP) < iraHPThreshold
		sum := Summary{
			Kind:       kind,
			Rate:       rate(active),
			IsActive:   active,
			EffectText: effectIra,
		}
		if active {
			sum.Modifiers = &Modifiers{Crit: iraCritBonus}
		}
		return sum

	case KindLuna, KindCorona:
		skillStat := c.attackerStats.SkillStat()
		r := stats.FloorDiv(skillStat, 2)
		text := effectLuna
		if kind == KindCorona {
			text = effectCorona
		}
		return Summary{
			Kind:          kind,
			Rate:          &r,
			IsChanceBased: true,
			IsActive:      skillStat > 0,
			EffectText:    text,
		}

	case KindMartialProdigy:
		active := martialWeaponTypes[c.weapon.NormalizedType()]
		sum := Summary{
			Kind:       kind,
			Rate:       rate(active),
			IsActive:   active,
			EffectText: effectMartial,
		}
		if active {
			sum.Modifiers = &Modifiers{Damage: martialDamageBonus}
		}
		return sum

	default:
		return Summary{Kind: KindUnrecognized}
	}
}

func rate(active bool) *int {
	r := neverRate
	if active {
		r = alwaysRate
	}
	return &r
}
