package skill

// Modifiers are additive battle deltas. Zero means no change.
type Modifiers struct {
	Hit         int `yaml:"hit" json:"hit"`
	Crit        int `yaml:"crit" json:"crit"`
	Damage      int `yaml:"damage" json:"damage"`
	Avoid       int `yaml:"avoid" json:"avoid"`
	Dodge       int `yaml:"dodge" json:"dodge"`
	AttackSpeed int `yaml:"attack_speed" json:"attack_speed"`
}

// Add returns the field-wise sum of m and o.
func (m Modifiers) Add(o Modifiers) Modifiers {
	return Modifiers{
		Hit:         m.Hit + o.Hit,
		Crit:        m.Crit + o.Crit,
		Damage:      m.Damage + o.Damage,
		Avoid:       m.Avoid + o.Avoid,
		Dodge:       m.Dodge + o.Dodge,
		AttackSpeed: m.AttackSpeed + o.AttackSpeed,
	}
}

// IsZero reports whether every field is zero.
func (m Modifiers) IsZero() bool {
	return m == Modifiers{}
}

// Deterministic sums the modifiers of every active, non-chance summary.
// Chance-based, inactive, and modifier-less summaries contribute nothing.
//
// Postcondition: the result does not depend on chance-based summaries.
func Deterministic(summaries []Summary) Modifiers {
	var total Modifiers
	for _, s := range summaries {
		if s.Modifiers == nil || s.IsChanceBased || !s.IsActive {
			continue
		}
		total = total.Add(*s.Modifiers)
	}
	return total
}
