// Package datemath implements calendar arithmetic on instants: truncation
// to the start of a calendar unit and addition of signed calendar
// quantities. Year and month steps are computed field-wise with day-of-month
// clamping; day and finer steps are flat millisecond offsets. Field-wise
// operations read their fields in a time.Location, defaulting to time.Local;
// the *In variants take the location explicitly.
//
// Every function returns a new instant and propagates the invalid instant on
// bad input rather than failing.
package datemath

import "github.com/ngrash/go-datemath/instant"

const (
	msPerSecond int64 = 1000
	msPerMinute       = 60 * msPerSecond
	msPerHour         = 60 * msPerMinute
	msPerDay          = 24 * msPerHour
)

// unitMillis returns the fixed millisecond length of a flat unit.
// Year and month have no fixed length and are not flat units.
func unitMillis(u instant.Unit) (int64, bool) {
	switch u {
	case instant.UnitDay:
		return msPerDay, true
	case instant.UnitHour:
		return msPerHour, true
	case instant.UnitMinute:
		return msPerMinute, true
	case instant.UnitSecond:
		return msPerSecond, true
	case instant.UnitMillisecond:
		return 1, true
	default:
		return 0, false
	}
}
