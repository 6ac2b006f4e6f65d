package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cory-johannsen/battlecalc/internal/forecast"
	"github.com/cory-johannsen/battlecalc/internal/game/skill"
	"github.com/cory-johannsen/battlecalc/internal/game/stats"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")).
			Width(12)

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	inertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1)
)

// renderForecast lays both sides out next to each other.
func renderForecast(res forecast.Result) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, renderSide(res.Left), " ", renderSide(res.Right))
}

func renderSide(sr forecast.SideResult) string {
	weapon := "unarmed"
	if sr.Weapon != nil {
		weapon = sr.Weapon.Name
	}
	hit, crit := sr.Battle.BattleHit, sr.Battle.BattleCrit
	if sr.Display != nil {
		hit, crit = sr.Display.Hit, sr.Display.Crit
	}
	damage := strconv.Itoa(sr.Battle.Damage)
	if sr.Battle.Doubles {
		damage += " x2"
	}

	title := sr.Name
	if sr.Class != "" {
		title = fmt.Sprintf("%s (%s lv %d)", sr.Name, sr.Class, sr.Level)
	}
	lines := []string{
		titleStyle.Render(title),
		row("HP", strconv.Itoa(sr.CurrentHP)),
		row("Weapon", weapon),
		row("Range", sr.Range),
		row("Hit", strconv.Itoa(hit)),
		row("Crit", strconv.Itoa(crit)),
		row("Damage", damage),
		row("Crit damage", strconv.Itoa(sr.Battle.CritDamage)),
		row("Atk speed", strconv.Itoa(sr.Battle.AttackSpeed)),
	}
	if len(sr.WeaponOptions) > 0 {
		lines = append(lines, row("Carrying", strings.Join(sr.WeaponOptions, ", ")))
	}
	if !sr.Modifiers.IsZero() {
		lines = append(lines, row("Modifiers", renderModifiers(sr.Modifiers)))
	}
	if e := sr.Eligibility; e != nil && !e.CanEquip {
		lines = append(lines, row("Equip", "not allowed"))
	}
	if len(sr.Skills) > 0 {
		names := make([]string, 0, len(sr.Skills))
		for _, s := range sr.Skills {
			if s.IsActive {
				names = append(names, activeStyle.Render(s.Name))
			} else {
				names = append(names, inertStyle.Render(s.Name))
			}
		}
		lines = append(lines, row("Skills", strings.Join(names, ", ")))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderStats prints the stats present in m in canonical stat order.
func renderStats(title string, m stats.Map) string {
	lines := []string{titleStyle.Render(title)}
	for _, k := range m.SortedKeys() {
		lines = append(lines, row(string(k), strconv.Itoa(m.Get(k))))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderModifiers lists the non-zero modifier fields as signed values.
func renderModifiers(m skill.Modifiers) string {
	fields := []struct {
		name  string
		value int
	}{
		{"hit", m.Hit},
		{"crit", m.Crit},
		{"dmg", m.Damage},
		{"avoid", m.Avoid},
		{"dodge", m.Dodge},
		{"as", m.AttackSpeed},
	}
	var parts []string
	for _, f := range fields {
		if f.value != 0 {
			parts = append(parts, fmt.Sprintf("%s %+d", f.name, f.value))
		}
	}
	return strings.Join(parts, ", ")
}

func row(label, value string) string {
	return labelStyle.Render(label) + value
}
