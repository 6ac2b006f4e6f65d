package stats_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/battlecalc/internal/game/stats"
)

func TestParseKey(t *testing.T) {
	k, ok := stats.ParseKey("  Strength ")
	assert.True(t, ok)
	assert.Equal(t, stats.Strength, k)

	_, ok = stats.ParseKey("charisma")
	assert.False(t, ok)
}

func TestMap_MissingKeysReadZero(t *testing.T) {
	m := stats.Map{stats.Strength: 7}
	assert.Equal(t, 7, m.Get(stats.Strength))
	assert.Equal(t, 0, m.Get(stats.Luck))
	var nilMap stats.Map
	assert.Equal(t, 0, nilMap.Get(stats.HP))
}

func TestMap_SkillStatPrefersAbility(t *testing.T) {
	assert.Equal(t, 4, stats.Map{stats.Ability: 4, stats.Skill: 9}.SkillStat())
	assert.Equal(t, 9, stats.Map{stats.Skill: 9}.SkillStat())
	// A present zero still wins over the legacy key.
	assert.Equal(t, 0, stats.Map{stats.Ability: 0, stats.Skill: 9}.SkillStat())
	assert.Equal(t, 0, stats.Map{}.SkillStat())
}

func TestMap_MergeOverridesWithoutMutating(t *testing.T) {
	base := stats.Map{stats.HP: 30, stats.Strength: 10}
	merged := base.Merge(stats.Map{stats.Strength: 12, stats.Luck: 3})
	assert.Equal(t, stats.Map{stats.HP: 30, stats.Strength: 12, stats.Luck: 3}, merged)
	assert.Equal(t, 10, base[stats.Strength])
}

func TestMap_SortedKeysCanonicalOrder(t *testing.T) {
	m := stats.Map{stats.Luck: 1, stats.HP: 2, stats.Strength: 3}
	assert.Equal(t, []stats.Key{stats.HP, stats.Strength, stats.Luck}, m.SortedKeys())
}

func TestMap_UnmarshalYAMLRejectsUnknownStat(t *testing.T) {
	var m stats.Map
	require.NoError(t, yaml.Unmarshal([]byte("strength: 5\nLuck: 2\n"), &m))
	assert.Equal(t, stats.Map{stats.Strength: 5, stats.Luck: 2}, m)

	err := yaml.Unmarshal([]byte("charisma: 5\n"), &m)
	assert.ErrorContains(t, err, "charisma")
}

func TestMap_UnmarshalJSONRejectsUnknownStat(t *testing.T) {
	var m stats.Map
	require.NoError(t, json.Unmarshal([]byte(`{"wisdom":6}`), &m))
	assert.Equal(t, 6, m.Get(stats.Wisdom))
	assert.Error(t, json.Unmarshal([]byte(`{"mana":6}`), &m))
}

func TestFlatten(t *testing.T) {
	flat := stats.Map{stats.HP: 20}
	base := stats.Map{stats.HP: 25, stats.Ability: 10}

	tests := []struct {
		name string
		raw  stats.Raw
		want stats.Map
	}{
		{"nil", nil, stats.Map{}},
		{"flat", stats.Flat{Stats: flat}, flat},
		{"flat pointer", &stats.Flat{Stats: flat}, flat},
		{"flat without stats", stats.Flat{}, stats.Map{}},
		{"structured uses base only", stats.Structured{
			BaseStats:  base,
			Growths:    stats.Map{stats.HP: 50},
			BonusStats: stats.Map{stats.HP: 5},
		}, base},
		{"structured without base", stats.Structured{Growths: stats.Map{stats.HP: 50}}, stats.Map{}},
		{"nil structured pointer", (*stats.Structured)(nil), stats.Map{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stats.Flatten(tc.raw))
		})
	}
}

func TestSheet_UnmarshalYAML(t *testing.T) {
	var flat stats.Sheet
	require.NoError(t, yaml.Unmarshal([]byte("hp: 20\nability: 10\n"), &flat))
	assert.IsType(t, stats.Flat{}, flat.Raw)
	assert.Equal(t, 10, flat.Flat().Get(stats.Ability))

	var nested stats.Sheet
	require.NoError(t, yaml.Unmarshal([]byte(`
baseStats:
  hp: 20
  strength: 6
growths:
  hp: 70
weaponRanks:
  sword: C
`), &nested))
	st, ok := nested.Raw.(stats.Structured)
	require.True(t, ok)
	assert.Equal(t, 70, st.Growths.Get(stats.HP))
	assert.Equal(t, "C", st.WeaponRanks["sword"])
	assert.Equal(t, stats.Map{stats.HP: 20, stats.Strength: 6}, nested.Flat())
}

func TestSheet_UnmarshalYAML_MixedFlatDocument(t *testing.T) {
	var mixed stats.Sheet
	require.NoError(t, yaml.Unmarshal([]byte("hp: 20\nstrength: 7\nweaponRanks: {sword: C}\n"), &mixed))
	require.IsType(t, stats.Flat{}, mixed.Raw)
	assert.Equal(t, stats.Map{stats.HP: 20, stats.Strength: 7}, mixed.Flat())
	assert.Equal(t, map[string]string{"sword": "C"}, mixed.WeaponRanks())

	var growthsOnly stats.Sheet
	require.NoError(t, yaml.Unmarshal([]byte("hp: 18\ngrowths: {hp: 60}\nbonusStats: {luck: 2}\n"), &growthsOnly))
	require.IsType(t, stats.Flat{}, growthsOnly.Raw)
	assert.Equal(t, stats.Map{stats.HP: 18}, growthsOnly.Flat())
	assert.Nil(t, growthsOnly.WeaponRanks())
}

func TestSheet_UnmarshalJSON_MixedFlatDocument(t *testing.T) {
	var s stats.Sheet
	require.NoError(t, json.Unmarshal([]byte(`{"hp":20,"strength":7,"growths":{"hp":50},"weaponRanks":{"sword":"C"}}`), &s))
	require.IsType(t, stats.Flat{}, s.Raw)
	assert.Equal(t, stats.Map{stats.HP: 20, stats.Strength: 7}, s.Flat())
	assert.Equal(t, "C", s.WeaponRanks()["sword"])

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hp":20,"strength":7,"weaponRanks":{"sword":"C"}}`, string(out))
}

func TestSheet_JSONRoundTripKeepsShape(t *testing.T) {
	var s stats.Sheet
	require.NoError(t, json.Unmarshal([]byte(`{"baseStats":{"hp":20},"growths":{"hp":40}}`), &s))
	_, ok := s.Raw.(stats.Structured)
	require.True(t, ok)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"baseStats":{"hp":20},"growths":{"hp":40}}`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`{"luck":3}`), &s))
	assert.Equal(t, stats.Map{stats.Luck: 3}, s.Flat())
}

func TestSheet_RejectsNonMapping(t *testing.T) {
	var s stats.Sheet
	assert.Error(t, yaml.Unmarshal([]byte("- 1\n- 2\n"), &s))
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &s))
}

func TestFlatten_Property_FlatIsIdentity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m := drawMap(rt, "stats")
		assert.Equal(rt, m, stats.Flatten(stats.Flat{Stats: m}))
	})
}

func drawMap(rt *rapid.T, label string) stats.Map {
	keys := stats.Keys()
	m := stats.Map{}
	n := rapid.IntRange(1, len(keys)).Draw(rt, label+"_n")
	for i := 0; i < n; i++ {
		k := keys[rapid.IntRange(0, len(keys)-1).Draw(rt, label+"_key")]
		m[k] = rapid.IntRange(-50, 100).Draw(rt, label+"_val")
	}
	return m
}
