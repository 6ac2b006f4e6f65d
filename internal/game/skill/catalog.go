package skill

import "strings"

// Kind identifies a skill with a modelled battle effect.
// The zero value (KindUnrecognized) has no effect.
type Kind int

const (
	KindUnrecognized Kind = iota
	KindIra
	KindLuna
	KindCorona
	KindMartialProdigy
)

var kindByName = map[string]Kind{
	"ira":                             KindIra,
	"luna":                            KindLuna,
	"corona":                          KindCorona,
	"prodigio de las armas marciales": KindMartialProdigy,
}

// String returns the catalog name of the kind.
func (k Kind) String() string {
	switch k {
	case KindIra:
		return "ira"
	case KindLuna:
		return "luna"
	case KindCorona:
		return "corona"
	case KindMartialProdigy:
		return "prodigio de las armas marciales"
	default:
		return "unrecognized"
	}
}

// NormalizeName trims and lower-cases a skill name for catalog lookup.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// KindOf resolves a skill name to its catalog kind.
//
// Postcondition: unknown names return KindUnrecognized.
func KindOf(name string) Kind {
	return kindByName[NormalizeName(name)]
}

const (
	iraCritBonus       = 50
	iraHPThreshold     = 0.5
	martialDamageBonus = 5
	alwaysRate         = 100
	neverRate          = 0
	effectIra          = "+50 crit under 50% HP"
	effectLuna         = "Proc: doubles Str, ignores Def"
	effectCorona       = "Proc: ignores Res, -10 enemy Hit"
	effectMartial      = "+5 damage with sword/lance/axe"
)

var martialWeaponTypes = map[string]bool{
	"sword": true,
	"lance": true,
	"axe":   true,
}
