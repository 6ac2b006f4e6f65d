package combat

import (
	"github.com/cory-johannsen/battlecalc/internal/game/skill"
	"github.com/cory-johannsen/battlecalc/internal/game/stats"
)

// Report is one combatant's half of a duel forecast.
type Report struct {
	Name      string          `json:"name"`
	Skills    []skill.Summary `json:"skills"`
	Modifiers skill.Modifiers `json:"modifiers"`
	Battle    Summary         `json:"battle"`
}

// Forecast holds both directions of a duel.
type Forecast struct {
	Left  Report `json:"left"`
	Right Report `json:"right"`
}

// Duel forecasts left and right attacking each other.
//
// Each side's skills are evaluated against the other side with its own
// weapon. Only the deterministic modifiers of active skills feed the
// summaries; chance-based skills are reported but never applied.
func Duel(left, right Combatant) Forecast {
	leftSkills := skill.Evaluate(left.Skills, left.Actor, &right.Actor, left.Weapon)
	rightSkills := skill.Evaluate(right.Skills, right.Actor, &left.Actor, right.Weapon)

	l := Side{Stats: stats.Flatten(left.Actor.Stats), Weapon: left.Weapon, Modifiers: skill.Deterministic(leftSkills)}
	r := Side{Stats: stats.Flatten(right.Actor.Stats), Weapon: right.Weapon, Modifiers: skill.Deterministic(rightSkills)}

	return Forecast{
		Left:  Report{Name: left.Name, Skills: leftSkills, Modifiers: l.Modifiers, Battle: BuildSummary(l, r)},
		Right: Report{Name: right.Name, Skills: rightSkills, Modifiers: r.Modifiers, Battle: BuildSummary(r, l)},
	}
}
