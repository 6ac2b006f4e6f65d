package ruleset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/battlecalc/internal/game/item"
	"github.com/cory-johannsen/battlecalc/internal/game/ruleset"
	"github.com/cory-johannsen/battlecalc/internal/game/stats"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadClasses_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "myrmidon.yaml"), `
id: myrmidon
name: Myrmidon
description: "Swift sword fighter."
base_stats:
  hp: 16
  strength: 4
  agility: 10
growths:
  hp: 70
  agility: 50
weapon_ranks:
  Sword: D
  lance: "-"
`)
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	classes, err := ruleset.LoadClasses(dir)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	c := classes[0]
	assert.Equal(t, "myrmidon", c.ID)
	assert.Equal(t, "Myrmidon", c.Name)
	assert.Equal(t, 16, c.BaseStats.Get(stats.HP))
	assert.Equal(t, 50, c.Growths.Get(stats.Agility))
	assert.Equal(t, map[string]string{"sword": "D", "lance": "-"}, c.WeaponRanks)
}

func TestLoadClasses_RejectsUnknownStat(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.yaml"), "id: bad\nname: Bad\nbase_stats:\n  charisma: 4\n")
	_, err := ruleset.LoadClasses(dir)
	assert.Error(t, err)
}

func TestLoadClasses_RequiresIDAndName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "anon.yaml"), "description: nobody\n")
	_, err := ruleset.LoadClasses(dir)
	assert.Error(t, err)
}

func TestLoadClasses_MissingDir(t *testing.T) {
	_, err := ruleset.LoadClasses(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestClassRegistry_Resolve(t *testing.T) {
	reg := ruleset.NewClassRegistry()
	require.NoError(t, reg.Register(&ruleset.Class{ID: "hero", Name: "Hero"}))
	require.Error(t, reg.Register(&ruleset.Class{ID: "hero", Name: "Other"}))
	require.Error(t, reg.Register(&ruleset.Class{ID: "hero-2", Name: "HERO"}))

	byName, err := reg.Resolve(" hero ")
	require.NoError(t, err)
	byID, err := reg.Resolve("hero")
	require.NoError(t, err)
	assert.Same(t, byID, byName)

	_, err = reg.Resolve("sage")
	assert.ErrorIs(t, err, ruleset.ErrUnknownClass)
	assert.Equal(t, 1, reg.Len())
	assert.Len(t, reg.All(), 1)
}

func TestClassRegistry_RegisterNilPanics(t *testing.T) {
	reg := ruleset.NewClassRegistry()
	assert.Panics(t, func() { _ = reg.Register(nil) })
	assert.Panics(t, func() { _ = reg.Register(&ruleset.Class{Name: "x"}) })
}

func TestStatsAtLevel(t *testing.T) {
	class := &ruleset.Class{
		ID:        "myrmidon",
		Name:      "Myrmidon",
		BaseStats: stats.Map{stats.HP: 16, stats.Agility: 10},
		Growths:   stats.Map{stats.HP: 70, stats.Agility: 50, stats.Luck: 25},
	}
	got := ruleset.StatsAtLevel(class, 5, ruleset.DefaultStats)
	assert.Equal(t, 16+3, got.Get(stats.HP), "4 * 70 / 100 = 2.8")
	assert.Equal(t, 12, got.Get(stats.Agility))
	assert.Equal(t, 5+1, got.Get(stats.Luck), "fallback stats grow too")
	assert.Equal(t, 10, got.Get(stats.Strength))
	assert.Equal(t, 30, ruleset.DefaultStats.Get(stats.HP), "fallback is not mutated")
}

func TestStatsAtLevel_NilClassCopiesFallback(t *testing.T) {
	got := ruleset.StatsAtLevel(nil, 20, ruleset.DefaultStats)
	assert.Equal(t, ruleset.DefaultStats, got)
	got[stats.HP] = 1
	assert.Equal(t, 30, ruleset.DefaultStats.Get(stats.HP))
}

func TestStatsAtLevel_Property_LevelOneIsMergedBase(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		hp := rapid.IntRange(1, 60).Draw(rt, "hp")
		growth := rapid.IntRange(0, 150).Draw(rt, "growth")
		level := rapid.IntRange(-3, 1).Draw(rt, "level")
		class := &ruleset.Class{BaseStats: stats.Map{stats.HP: hp}, Growths: stats.Map{stats.HP: growth}}
		got := ruleset.StatsAtLevel(class, level, ruleset.DefaultStats)
		assert.Equal(rt, ruleset.DefaultStats.Merge(class.BaseStats), got)
	})
}

func TestClass_CanUse(t *testing.T) {
	class := &ruleset.Class{Name: "Lord", WeaponRanks: map[string]string{"sword": "C", "lance": "-"}}
	tests := []struct {
		name string
		it   *item.Item
		want bool
	}{
		{"rank met", &item.Item{Type: "Sword", WeaponRank: "D"}, true},
		{"default rank E", &item.Item{Type: "sword"}, true},
		{"rank too high", &item.Item{Type: "sword", WeaponRank: "B"}, false},
		{"dash means never", &item.Item{Type: "lance"}, false},
		{"no rank for type", &item.Item{Type: "axe"}, false},
		{"restricted to other class", &item.Item{Type: "sword", ClassRestriction: "Hero"}, false},
		{"restricted to this class", &item.Item{Type: "sword", ClassRestriction: "Lord"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, class.CanUse(tc.it))
		})
	}

	bare := &ruleset.Class{Name: "Villager"}
	assert.False(t, bare.CanUse(&item.Item{Type: "sword"}))
}
