package datemath

import (
	"time"

	"github.com/ngrash/go-datemath/instant"
)

// Truncate rounds d down to the start of the calendar unit containing it,
// reading and rebuilding the calendar fields in local time. Truncation is
// field-wise, not a fixed-duration subtraction, so month lengths and
// daylight-saving shifts are respected: the start of a day is local
// midnight even when that day is 23 or 25 hours long.
func Truncate(d any, u instant.Unit) instant.Instant {
	return TruncateIn(d, u, time.Local)
}

// TruncateIn is Truncate with an explicit location for the field
// decomposition.
func TruncateIn(d any, u instant.Unit, loc *time.Location) instant.Instant {
	in := instant.From(d)
	if !in.Valid() {
		return instant.Invalid()
	}
	if u == instant.UnitMillisecond {
		return in
	}

	t := in.Time().In(loc)
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	switch u {
	case instant.UnitYear:
		month, day, hour, min, sec = time.January, 1, 0, 0, 0
	case instant.UnitMonth:
		day, hour, min, sec = 1, 0, 0, 0
	case instant.UnitDay:
		hour, min, sec = 0, 0, 0
	case instant.UnitHour:
		min, sec = 0, 0
	case instant.UnitMinute:
		sec = 0
	case instant.UnitSecond:
		// only the sub-second part is dropped
	default:
		return instant.Invalid()
	}

	return instant.FromTime(time.Date(year, month, day, hour, min, sec, 0, loc))
}

// StartOfYear truncates d to local January 1st, 00:00:00.000.
func StartOfYear(d any) instant.Instant { return Truncate(d, instant.UnitYear) }

// StartOfMonth truncates d to the first of the month, 00:00:00.000.
func StartOfMonth(d any) instant.Instant { return Truncate(d, instant.UnitMonth) }

// StartOfDay truncates d to local midnight.
func StartOfDay(d any) instant.Instant { return Truncate(d, instant.UnitDay) }

// StartOfHour truncates d to the top of the hour.
func StartOfHour(d any) instant.Instant { return Truncate(d, instant.UnitHour) }

// StartOfMinute truncates d to the top of the minute.
func StartOfMinute(d any) instant.Instant { return Truncate(d, instant.UnitMinute) }

// StartOfSecond drops the sub-second part of d.
func StartOfSecond(d any) instant.Instant { return Truncate(d, instant.UnitSecond) }
