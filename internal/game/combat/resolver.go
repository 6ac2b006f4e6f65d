package combat

import (
	"math"

	"github.com/cory-johannsen/battlecalc/internal/game/stats"
)

const (
	// UnarmedHit is the hit baseline of a side with no weapon.
	UnarmedHit = 30
	// DoubleAttackThreshold is the attack speed lead needed to strike twice.
	DoubleAttackThreshold = 3
)

// AttackSpeed returns the side's agility less the weight it cannot carry,
// plus any attack speed modifier.
func AttackSpeed(s Side) int {
	weight := 0
	if s.Weapon != nil {
		weight = s.Weapon.Weight
	}
	penalty := max(0, weight-s.Stats.Get(stats.Strength))
	return s.Stats.Get(stats.Agility) - penalty + s.Modifiers.AttackSpeed
}

// BuildProfile derives a side's combat statistics from its stats, weapon and modifiers.
//
// Unarmed sides attack with raw strength and a flat UnarmedHit baseline. An
// equipped weapon without a hit value contributes 0 hit.
func BuildProfile(s Side) Profile {
	w := s.Weapon
	skl := s.Stats.SkillStat()
	lck := s.Stats.Get(stats.Luck)

	var might, weaponHit, weaponCrit int
	if w == nil {
		weaponHit = UnarmedHit
	} else {
		might = w.Might
		weaponCrit = w.Crit
		if w.Hit != nil {
			weaponHit = *w.Hit
		}
	}

	atk := s.Stats.Get(stats.Strength)
	switch {
	case w == nil:
	case w.IsMagical():
		atk = s.Stats.Get(stats.Intelligence) + might
	default:
		atk += might
	}

	speed := AttackSpeed(s)
	return Profile{
		Atk:         atk,
		Hit:         weaponHit + skl*2 + lck + s.Modifiers.Hit,
		Crit:        weaponCrit + stats.FloorDiv(skl, 2) + s.Modifiers.Crit,
		AttackSpeed: speed,
		Avoid:       speed*2 + lck + s.Modifiers.Avoid,
		Dodge:       lck + s.Modifiers.Dodge,
	}
}

// BuildSummary forecasts attacker striking defender.
//
// Damage is (atk - defense + triangle + modifier damage) scaled by the
// weapon's effectiveness, rounded half up and floored at 0. Defense is
// wisdom against magical weapons and constitution otherwise.
//
// Postcondition: Damage >= 0; CritDamage == 2*Damage.
func BuildSummary(attacker, defender Side) Summary {
	atk := BuildProfile(attacker)
	def := BuildProfile(defender)
	triangle := TriangleBonus(attacker.Weapon.NormalizedType(), defender.Weapon.NormalizedType())

	defense := defender.Stats.Get(stats.Constitution)
	if attacker.Weapon.IsMagical() {
		defense = defender.Stats.Get(stats.Wisdom)
	}

	raw := atk.Atk - defense + triangle.Damage + attacker.Modifiers.Damage
	scaled := math.Floor(float64(raw)*attacker.Weapon.EffectivenessMultiplier() + 0.5)
	damage := max(0, int(scaled))

	return Summary{
		Atk:         atk.Atk,
		Hit:         atk.Hit,
		Crit:        atk.Crit,
		AttackSpeed: atk.AttackSpeed,
		Avoid:       def.Avoid,
		Dodge:       def.Dodge,
		BattleHit:   atk.Hit - def.Avoid + triangle.Hit,
		BattleCrit:  atk.Crit - def.Dodge,
		Damage:      damage,
		CritDamage:  damage * 2,
		Doubles:     atk.AttackSpeed-def.AttackSpeed >= DoubleAttackThreshold,
	}
}
