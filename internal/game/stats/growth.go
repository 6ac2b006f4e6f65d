package stats

// FloorDiv divides a by b rounding toward negative infinity.
//
// Precondition: b != 0.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// roundPercent returns round(n/100) with halves rounded toward positive infinity,
// so that 2.5 -> 3 and -2.5 -> -2.
func roundPercent(n int) int {
	return FloorDiv(n+50, 100)
}

// ApplyGrowths adds round(levelDelta*growth/100) to every stat present in base.
// Stats absent from base are never introduced. Negative deltas subtract.
//
// Postcondition: the result is a fresh map; base is not modified. When growths
// is nil or levelDelta is 0 the result equals base.
func ApplyGrowths(base, growths Map, levelDelta int) Map {
	next := base.Clone()
	if growths == nil || levelDelta == 0 {
		return next
	}
	for k, v := range base {
		next[k] = v + roundPercent(levelDelta*growths.Get(k))
	}
	return next
}

// AtLevel returns base grown from level 1 to level. Levels below 1 clamp to 1.
//
// Postcondition: AtLevel(base, growths, 1) equals base.
func AtLevel(base, growths Map, level int) Map {
	return ApplyGrowths(base, growths, max(0, level-1))
}
