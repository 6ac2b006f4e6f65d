package item

import "strings"

// Rank is a weapon proficiency letter.
type Rank string

const (
	RankE Rank = "E"
	RankD Rank = "D"
	RankC Rank = "C"
	RankB Rank = "B"
	RankA Rank = "A"
	RankS Rank = "S"
)

// RankOrder lists ranks from weakest to strongest.
var RankOrder = []Rank{RankE, RankD, RankC, RankB, RankA, RankS}

// ParseRank trims and upper-cases s and reports whether it is a known rank.
func ParseRank(s string) (Rank, bool) {
	r := Rank(strings.ToUpper(strings.TrimSpace(s)))
	if r.Index() < 0 {
		return "", false
	}
	return r, true
}

// Index returns the position of r in RankOrder, or -1.
func (r Rank) Index() int {
	for i, known := range RankOrder {
		if r == known {
			return i
		}
	}
	return -1
}

// SufficientRank reports whether a wielder at current may use a weapon that
// requires required. An empty required rank means E. Unparseable ranks on
// either side are never sufficient.
func SufficientRank(current, required string) bool {
	if strings.TrimSpace(required) == "" {
		required = string(RankE)
	}
	cur, ok := ParseRank(current)
	if !ok {
		return false
	}
	req, ok := ParseRank(required)
	if !ok {
		return false
	}
	return cur.Index() >= req.Index()
}
