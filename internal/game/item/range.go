package item

import (
	"strconv"
	"strings"

	"github.com/cory-johannsen/battlecalc/internal/game/stats"
)

// HalfMagicFormula is the one range formula evaluated numerically.
const HalfMagicFormula = "floor(mag/2)"

type rangeOptions struct {
	mag      *int
	fallback string
}

// RangeOption configures RangeLabel.
type RangeOption func(*rangeOptions)

// WithMag supplies the wielder's magic stat for formula-based ranges.
func WithMag(mag int) RangeOption {
	return func(o *rangeOptions) { o.mag = &mag }
}

// WithFallback replaces the "-" label used when an item has no range.
func WithFallback(fallback string) RangeOption {
	return func(o *rangeOptions) { o.fallback = fallback }
}

// RangeLabel returns the human-readable attack range of it.
//
// A HalfMagicFormula range with a known magic stat evaluates to floor(mag/2);
// any other formula is returned verbatim. Without a formula the label is
// "min", "min-max", or whichever bound is set. An item with no range, or a
// nil item, yields the fallback.
func RangeLabel(it *Item, opts ...RangeOption) string {
	o := rangeOptions{fallback: "-"}
	for _, opt := range opts {
		opt(&o)
	}
	if it == nil {
		return o.fallback
	}

	if it.RangeFormula != "" {
		if o.mag != nil && strings.ToLower(it.RangeFormula) == HalfMagicFormula {
			return strconv.Itoa(stats.FloorDiv(*o.mag, 2))
		}
		return it.RangeFormula
	}

	lo, hi := it.MinRange, it.MaxRange
	switch {
	case lo != nil && hi != nil:
		if *lo == *hi {
			return strconv.Itoa(*lo)
		}
		return strconv.Itoa(*lo) + "-" + strconv.Itoa(*hi)
	case lo != nil:
		return strconv.Itoa(*lo)
	case hi != nil:
		return strconv.Itoa(*hi)
	default:
		return o.fallback
	}
}
