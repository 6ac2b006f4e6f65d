package forecast

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cory-johannsen/battlecalc/internal/content"
	"github.com/cory-johannsen/battlecalc/internal/game/character"
	"github.com/cory-johannsen/battlecalc/internal/game/combat"
	"github.com/cory-johannsen/battlecalc/internal/game/item"
	"github.com/cory-johannsen/battlecalc/internal/game/ruleset"
	"github.com/cory-johannsen/battlecalc/internal/game/skill"
	"github.com/cory-johannsen/battlecalc/internal/game/stats"
)

// Default side names for scenarios that leave them unset.
const (
	DefaultLeftName  = "Generic left"
	DefaultRightName = "Generic right"
)

// Display holds battle percentages clamped to [0, 100].
type Display struct {
	Hit  int `json:"hit"`
	Crit int `json:"crit"`
}

// Eligibility reports whether a side may wield its weapon.
// ClassCanUse is nil when the side has no class.
type Eligibility struct {
	ClassCanUse *bool `json:"class_can_use,omitempty"`
	CanEquip    bool  `json:"can_equip"`
}

// SideResult is the resolved combatant together with its half of the forecast.
type SideResult struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Class     string     `json:"class,omitempty"`
	Level     int        `json:"level,omitempty"`
	Stats     stats.Map  `json:"stats"`
	CurrentHP int        `json:"current_hp"`
	Weapon    *item.Item `json:"weapon,omitempty"`
	// WeaponOptions lists the entry IDs of inventory weapons, in inventory order.
	WeaponOptions []string        `json:"weapon_options,omitempty"`
	Range         string          `json:"range"`
	Eligibility   *Eligibility    `json:"eligibility,omitempty"`
	Skills        []skill.Summary `json:"skills"`
	Modifiers     skill.Modifiers `json:"modifiers"`
	Battle        combat.Summary  `json:"battle"`
	Display       *Display        `json:"display,omitempty"`
}

// Result is a resolved two-sided forecast. ForecastID is assigned by callers
// that need to correlate results.
type Result struct {
	ForecastID string     `json:"forecast_id,omitempty"`
	Left       SideResult `json:"left"`
	Right      SideResult `json:"right"`
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithClamp adds clamped display percentages to every result.
func WithClamp(clamp bool) Option {
	return func(r *Resolver) { r.clamp = clamp }
}

// Resolver resolves scenarios against a content library.
type Resolver struct {
	lib   *content.Library
	clamp bool
}

// NewResolver creates a Resolver over lib.
//
// Precondition: lib must be non-nil.
func NewResolver(lib *content.Library, opts ...Option) *Resolver {
	r := &Resolver{lib: lib}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type resolvedSide struct {
	char   *character.Character
	class  *ruleset.Class
	weapon *item.Item
}

// Resolve builds both combatants described by s and forecasts their duel.
//
// Postcondition: Returns an error wrapping ErrInvalidScenario,
// item.ErrUnknownItem or ruleset.ErrUnknownClass when s cannot be resolved.
// Unknown skills never fail resolution; they are reported as inert.
func (r *Resolver) Resolve(s Scenario) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	left, err := r.resolveSide(s.Left, DefaultLeftName)
	if err != nil {
		return Result{}, fmt.Errorf("left: %w", err)
	}
	right, err := r.resolveSide(s.Right, DefaultRightName)
	if err != nil {
		return Result{}, fmt.Errorf("right: %w", err)
	}

	f := combat.Duel(left.combatant(), right.combatant())
	res := Result{
		Left:  sideResult(left, f.Left),
		Right: sideResult(right, f.Right),
	}
	if r.clamp {
		res.Clamp()
	}
	return res, nil
}

// Clamp sets each side's Display from its raw battle hit and crit.
//
// Postcondition: Both Display values are non-nil and within [0, 100].
func (res *Result) Clamp() {
	for _, sr := range []*SideResult{&res.Left, &res.Right} {
		sr.Display = &Display{
			Hit:  combat.ClampPercent(sr.Battle.BattleHit),
			Crit: combat.ClampPercent(sr.Battle.BattleCrit),
		}
	}
}

func (r *Resolver) resolveSide(side Side, defaultName string) (resolvedSide, error) {
	name := strings.TrimSpace(side.Name)
	if name == "" {
		name = defaultName
	}
	level := max(1, side.Level)

	var class *ruleset.Class
	if side.Class != "" {
		c, err := r.lib.Classes.Resolve(side.Class)
		if err != nil {
			return resolvedSide{}, err
		}
		class = c
	}

	var char *character.Character
	if side.Stats != nil && side.Stats.Raw != nil {
		hp := side.Stats.Flat().Get(stats.HP)
		char = &character.Character{
			ID:        character.Slug(name),
			Name:      name,
			Kind:      character.KindNPC,
			Level:     level,
			Stats:     *side.Stats,
			CurrentHP: &hp,
		}
	} else {
		char = character.Generic(name, ruleset.StatsAtLevel(class, level, ruleset.DefaultStats), level)
	}
	if class != nil {
		char.ClassName = class.Name
	}
	if side.CurrentHP != nil {
		hp := *side.CurrentHP
		char.CurrentHP = &hp
	}
	char.WeaponSkills = weaponSkills(side, class)

	inventory, err := r.resolveInventory(side.Inventory)
	if err != nil {
		return resolvedSide{}, err
	}
	char.Inventory = inventory
	char.EquippedWeaponItemID = side.Equipped

	weapon, err := r.resolveWeapon(side.Weapon)
	if err != nil {
		return resolvedSide{}, err
	}
	if weapon == nil && side.Equipped != "" {
		if weapon = char.EquippedWeapon(); weapon == nil {
			return resolvedSide{}, fmt.Errorf("%w: equipped %q is not a weapon in the inventory", ErrInvalidScenario, side.Equipped)
		}
	}

	for _, ref := range side.Skills {
		sk, ok := r.resolveSkill(ref)
		if !ok {
			continue
		}
		// AddSkill rejects a repeated ID; the first reference wins.
		_ = char.AddSkill(sk)
	}

	return resolvedSide{char: char, class: class, weapon: weapon}, nil
}

func (r *Resolver) resolveWeapon(ref *WeaponRef) (*item.Item, error) {
	switch {
	case ref == nil:
		return nil, nil
	case ref.Inline != nil:
		it := *ref.Inline
		if it.Category == "" {
			it.Category = item.CategoryWeapon
		}
		if it.Name == "" {
			it.Name = it.Type
		}
		return &it, nil
	default:
		return r.lib.Items.Lookup(ref.ID)
	}
}

func (r *Resolver) resolveInventory(refs []InventoryRef) ([]character.InventoryEntry, error) {
	out := make([]character.InventoryEntry, 0, len(refs))
	for i, ref := range refs {
		it, err := r.resolveWeapon(ref.Item)
		if err != nil {
			return nil, fmt.Errorf("inventory[%d]: %w", i, err)
		}
		id := ref.ID
		if id == "" {
			id = it.ID
		}
		if id == "" {
			id = character.Slug(it.Name)
		}
		out = append(out, character.InventoryEntry{ID: id, Item: it})
	}
	return out, nil
}

func (r *Resolver) resolveSkill(ref string) (skill.Skill, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return skill.Skill{}, false
	}
	sk, err := r.lib.Skills.Resolve(ref)
	if err != nil {
		return skill.Skill{ID: character.Slug(ref), Name: ref}, true
	}
	return *sk, true
}

// weaponSkills picks the first rank table available: the scenario's own,
// the class's, then one stored with the stats.
func weaponSkills(side Side, class *ruleset.Class) []character.WeaponSkill {
	ranks := side.WeaponRanks
	if len(ranks) == 0 && class != nil {
		ranks = class.WeaponRanks
	}
	if len(ranks) == 0 && side.Stats != nil {
		ranks = side.Stats.WeaponRanks()
	}
	weapons := make([]string, 0, len(ranks))
	for w := range ranks {
		weapons = append(weapons, w)
	}
	sort.Strings(weapons)
	out := make([]character.WeaponSkill, 0, len(weapons))
	for _, w := range weapons {
		out = append(out, character.WeaponSkill{Weapon: w, Rank: ranks[w]})
	}
	return out
}

func (s resolvedSide) combatant() combat.Combatant {
	return combat.Combatant{
		Name:   s.char.Name,
		Actor:  s.char.Actor(),
		Weapon: s.weapon,
		Skills: s.char.Skills,
	}
}

func sideResult(s resolvedSide, report combat.Report) SideResult {
	flat := s.char.FlatStats()
	out := SideResult{
		ID:        s.char.ID,
		Name:      s.char.Name,
		Class:     s.char.ClassName,
		Level:     s.char.Level,
		Stats:     flat.Clone(),
		CurrentHP: flat.Get(stats.HP),
		Weapon:    s.weapon,
		Range:     item.RangeLabel(s.weapon, item.WithMag(flat.Get(stats.Intelligence))),
		Skills:    report.Skills,
		Modifiers: report.Modifiers,
		Battle:    report.Battle,
	}
	if s.char.CurrentHP != nil {
		out.CurrentHP = *s.char.CurrentHP
	}
	for _, e := range s.char.Weapons() {
		out.WeaponOptions = append(out.WeaponOptions, e.ID)
	}
	if out.Skills == nil {
		out.Skills = []skill.Summary{}
	}
	if s.weapon != nil {
		e := &Eligibility{CanEquip: s.char.CanEquip(s.weapon)}
		if s.class != nil {
			ok := s.class.CanUse(s.weapon)
			e.ClassCanUse = &ok
		}
		out.Eligibility = e
	}
	return out
}
