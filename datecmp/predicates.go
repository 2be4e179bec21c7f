package datecmp

import (
	"github.com/ngrash/go-datemath/datemath"
	"github.com/ngrash/go-datemath/instant"
)

// IsBefore reports whether a is strictly earlier than b. An optional unit
// truncates both operands to that granularity first; the default is
// millisecond, i.e. no truncation. Unusable input reports false.
func IsBefore(a, b any, unit ...instant.Unit) bool {
	ta, tb, ok := truncatedPair(a, b, unit)
	return ok && ta.Before(tb)
}

// IsAfter reports whether a is strictly later than b at the optional unit
// granularity. Unusable input reports false.
func IsAfter(a, b any, unit ...instant.Unit) bool {
	ta, tb, ok := truncatedPair(a, b, unit)
	return ok && ta.After(tb)
}

// IsEqual reports whether a and b denote the same instant at the optional
// unit granularity. Unusable input reports false.
func IsEqual(a, b any, unit ...instant.Unit) bool {
	ta, tb, ok := truncatedPair(a, b, unit)
	return ok && ta.Equal(tb)
}

// truncatedPair validates both operands before converting either, then
// truncates them to the requested granularity.
func truncatedPair(a, b any, unit []instant.Unit) (instant.Instant, instant.Instant, bool) {
	if !instant.Valid(a) || !instant.Valid(b) {
		return instant.Invalid(), instant.Invalid(), false
	}
	u := instant.UnitMillisecond
	if len(unit) > 0 && unit[0] != 0 {
		u = unit[0]
	}
	return datemath.Truncate(a, u), datemath.Truncate(b, u), true
}

// BetweenOptions adjusts IsBetween. The zero value means millisecond
// granularity with both bounds inclusive.
type BetweenOptions struct {
	// Unit truncates all three operands before comparing. Zero means
	// millisecond.
	Unit instant.Unit
	// ExcludeStart drops the lower bound from the range.
	ExcludeStart bool
	// ExcludeEnd drops the upper bound from the range.
	ExcludeEnd bool
}

// IsBetween reports whether target lies between start and end. Bounds are
// inclusive unless excluded via opts; a nil opts means defaults. All three
// operands are validated before any is converted, and unusable input
// reports false.
func IsBetween(target, start, end any, opts *BetweenOptions) bool {
	if !instant.Valid(target) || !instant.Valid(start) || !instant.Valid(end) {
		return false
	}
	var o BetweenOptions
	if opts != nil {
		o = *opts
	}
	u := o.Unit
	if u == 0 {
		u = instant.UnitMillisecond
	}

	tt := datemath.Truncate(target, u)
	ts := datemath.Truncate(start, u)
	te := datemath.Truncate(end, u)

	aboveStart := !tt.Before(ts)
	if o.ExcludeStart {
		aboveStart = tt.After(ts)
	}
	belowEnd := !tt.After(te)
	if o.ExcludeEnd {
		belowEnd = tt.Before(te)
	}
	return aboveStart && belowEnd
}
