package datemath

import (
	"time"

	"github.com/ngrash/go-datemath/instant"
	"github.com/ngrash/go-datemath/internal/gregorian"
)

// maxAmount caps the accepted step count. Anything larger necessarily lands
// outside the representable range even for millisecond steps, and keeping
// the cap below 2^63 makes the float-to-int conversion well defined.
const maxAmount = 2 * float64(instant.MaxUnixMilli)

// maxMonths caps month steps so the intermediate year stays far inside what
// time.Date can represent. The representable range spans ~547,580 years.
const maxMonths int64 = 12 * 600_000

// Add returns d shifted by amount units. The amount is validated first and
// truncated toward zero (1.9 steps one unit, -1.9 steps one unit back); a
// non-finite amount yields the invalid instant, as does an invalid d or a
// result out of range.
//
// Year and month steps are field-wise in local time: the year and month are
// carried, and if the destination month is shorter than the original
// day-of-month the day is clamped to the destination month's last day
// (Jan 31 + 1 month = Feb 28, or Feb 29 in a leap year). Day and finer steps
// are flat instant offsets, so they cross month and year boundaries without
// any clamping.
func Add(d any, amount float64, u instant.Unit) instant.Instant {
	return AddIn(d, amount, u, time.Local)
}

// Sub returns d shifted backwards by amount units.
// Sub(d, n, u) is Add(d, -n, u).
func Sub(d any, amount float64, u instant.Unit) instant.Instant {
	return SubIn(d, amount, u, time.Local)
}

// AddIn is Add with an explicit location for the field-wise units.
func AddIn(d any, amount float64, u instant.Unit, loc *time.Location) instant.Instant {
	// Validate the amount before touching the date operand.
	if !instant.Finite(amount) || amount > maxAmount || amount < -maxAmount {
		return instant.Invalid()
	}
	in := instant.From(d)
	if !in.Valid() {
		return instant.Invalid()
	}

	n := int64(amount) // truncates toward zero

	switch u {
	case instant.UnitYear:
		return addMonths(in, n*12, loc)
	case instant.UnitMonth:
		return addMonths(in, n, loc)
	}

	ms, ok := unitMillis(u)
	if !ok {
		return instant.Invalid()
	}
	if n > 2*instant.MaxUnixMilli/ms || n < 2*instant.MinUnixMilli/ms {
		return instant.Invalid()
	}
	return instant.Of(in.UnixMilli() + n*ms)
}

// SubIn is Sub with an explicit location for the field-wise units.
func SubIn(d any, amount float64, u instant.Unit, loc *time.Location) instant.Instant {
	return AddIn(d, -amount, u, loc)
}

// addMonths shifts in by a number of months, carrying overflow into the
// year and clamping the day-of-month to the destination month's length.
func addMonths(in instant.Instant, months int64, loc *time.Location) instant.Instant {
	if months > maxMonths || months < -maxMonths {
		return instant.Invalid()
	}

	t := in.Time().In(loc)
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	m := int64(year)*12 + int64(month-1) + months
	q, r := floorDiv(m, 12)
	destYear, destMonth := int(q), int(r)+1

	// Clamp after the carry, using the actual length of the destination month.
	if last := gregorian.DaysInMonth(destYear, destMonth); day > last {
		day = last
	}

	return instant.FromTime(time.Date(destYear, time.Month(destMonth), day, hour, min, sec, t.Nanosecond(), loc))
}

// floorDiv divides with the remainder always in [0, b).
func floorDiv(a, b int64) (q, r int64) {
	q, r = a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}

// AddYears shifts d by n calendar years, clamping Feb 29 to Feb 28 when the
// destination year is not a leap year.
func AddYears(d any, n float64) instant.Instant { return Add(d, n, instant.UnitYear) }

// AddMonths shifts d by n calendar months with day-of-month clamping.
func AddMonths(d any, n float64) instant.Instant { return Add(d, n, instant.UnitMonth) }

// AddDays shifts d by n flat 24-hour days.
func AddDays(d any, n float64) instant.Instant { return Add(d, n, instant.UnitDay) }

// AddHours shifts d by n hours.
func AddHours(d any, n float64) instant.Instant { return Add(d, n, instant.UnitHour) }

// AddMinutes shifts d by n minutes.
func AddMinutes(d any, n float64) instant.Instant { return Add(d, n, instant.UnitMinute) }

// AddSeconds shifts d by n seconds.
func AddSeconds(d any, n float64) instant.Instant { return Add(d, n, instant.UnitSecond) }

// AddMilliseconds shifts d by n milliseconds.
func AddMilliseconds(d any, n float64) instant.Instant { return Add(d, n, instant.UnitMillisecond) }

// SubYears shifts d back by n calendar years.
func SubYears(d any, n float64) instant.Instant { return Sub(d, n, instant.UnitYear) }

// SubMonths shifts d back by n calendar months.
func SubMonths(d any, n float64) instant.Instant { return Sub(d, n, instant.UnitMonth) }

// SubDays shifts d back by n flat 24-hour days.
func SubDays(d any, n float64) instant.Instant { return Sub(d, n, instant.UnitDay) }

// SubHours shifts d back by n hours.
func SubHours(d any, n float64) instant.Instant { return Sub(d, n, instant.UnitHour) }

// SubMinutes shifts d back by n minutes.
func SubMinutes(d any, n float64) instant.Instant { return Sub(d, n, instant.UnitMinute) }

// SubSeconds shifts d back by n seconds.
func SubSeconds(d any, n float64) instant.Instant { return Sub(d, n, instant.UnitSecond) }

// SubMilliseconds shifts d back by n milliseconds.
func SubMilliseconds(d any, n float64) instant.Instant { return Sub(d, n, instant.UnitMillisecond) }
