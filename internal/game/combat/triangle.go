package combat

import "strings"

// advantage maps each weapon type to the type it beats.
var advantage = map[string]string{
	"sword": "axe",
	"axe":   "lance",
	"lance": "sword",
	"anima": "light",
	"light": "dark",
	"dark":  "anima",
}

const (
	triangleDamage = 1
	triangleHit    = 10
)

// TriangleBonus returns the weapon triangle adjustment for an attacker of
// attackerType striking a defender of defenderType. Types compare
// case-insensitively.
//
// Postcondition: returns the zero Bonus when either type is empty, the types
// match, or neither beats the other.
func TriangleBonus(attackerType, defenderType string) Bonus {
	a := strings.ToLower(strings.TrimSpace(attackerType))
	d := strings.ToLower(strings.TrimSpace(defenderType))
	if a == "" || d == "" {
		return Bonus{}
	}
	if advantage[a] == d {
		return Bonus{Damage: triangleDamage, Hit: triangleHit}
	}
	if advantage[d] == a {
		return Bonus{Damage: -triangleDamage, Hit: -triangleHit}
	}
	return Bonus{}
}
