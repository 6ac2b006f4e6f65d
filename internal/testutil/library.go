// Package testutil provides shared fixtures for forecast tests: a small
// content library and the scenarios exercised against it.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/battlecalc/internal/content"
	"github.com/cory-johannsen/battlecalc/internal/forecast"
	"github.com/cory-johannsen/battlecalc/internal/game/item"
	"github.com/cory-johannsen/battlecalc/internal/game/ruleset"
	"github.com/cory-johannsen/battlecalc/internal/game/skill"
	"github.com/cory-johannsen/battlecalc/internal/game/stats"
)

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

// FlatSheet wraps m as a flat stat sheet.
func FlatSheet(m stats.Map) *stats.Sheet {
	return &stats.Sheet{Raw: stats.Flat{Stats: m}}
}

// NewLibrary returns a library holding an iron sword, an iron axe, a
// bolting tome, the Myrmidon class and the Ira and Prodigio skills.
//
// Postcondition: Returns a populated library or fails the test.
func NewLibrary(t testing.TB) *content.Library {
	t.Helper()
	lib := content.NewLibrary()
	require.NoError(t, lib.Items.Register(&item.Item{
		ID: "iron-sword", Name: "Iron Sword", Category: item.CategoryWeapon, Type: "sword",
		DamageType: item.Physical, Might: 5, Hit: IntPtr(70), MinRange: IntPtr(1), MaxRange: IntPtr(1), WeaponRank: "E",
	}))
	require.NoError(t, lib.Items.Register(&item.Item{
		ID: "iron-axe", Name: "Iron Axe", Category: item.CategoryWeapon, Type: "axe",
		DamageType: item.Physical, Might: 3, Hit: IntPtr(60), WeaponRank: "D",
	}))
	require.NoError(t, lib.Items.Register(&item.Item{
		ID: "bolting", Name: "Bolting", Category: item.CategoryWeapon, Type: "anima",
		DamageType: item.Magical, Might: 12, Hit: IntPtr(60), RangeFormula: item.HalfMagicFormula, WeaponRank: "B",
	}))
	require.NoError(t, lib.Classes.Register(&ruleset.Class{
		ID: "myrmidon", Name: "Myrmidon",
		BaseStats:   stats.Map{stats.HP: 16, stats.Agility: 10},
		Growths:     stats.Map{stats.HP: 70, stats.Agility: 50},
		WeaponRanks: map[string]string{"sword": "C", "axe": "-"},
	}))
	require.NoError(t, lib.Skills.Register(&skill.Skill{ID: "sk-ira", Name: "Ira"}))
	require.NoError(t, lib.Skills.Register(&skill.Skill{ID: "sk-prodigio", Name: "Prodigio de las armas marciales"}))
	return lib
}

// PhysicalScenario pits a sword user that doubles against a slower axe user.
// Left forecasts 90 hit and 11 damage; right forecasts atk 8.
func PhysicalScenario() forecast.Scenario {
	return forecast.Scenario{
		Left: forecast.Side{
			Name:   "Attacker",
			Stats:  FlatSheet(stats.Map{stats.Strength: 10, stats.Agility: 10, stats.Ability: 10, stats.Luck: 0}),
			Weapon: &forecast.WeaponRef{ID: "iron-sword"},
		},
		Right: forecast.Side{
			Name:   "Defender",
			Stats:  FlatSheet(stats.Map{stats.Constitution: 5, stats.Strength: 5, stats.Agility: 5, stats.Ability: 0, stats.Luck: 0}),
			Weapon: &forecast.WeaponRef{ID: "iron-axe"},
		},
	}
}
