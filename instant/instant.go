// Package instant provides the canonical point-in-time value shared by the
// rest of the module: a signed count of milliseconds since the Unix epoch,
// bounded to ±8.64e15 ms, with an explicit invalid state that behaves like
// NaN. It also normalizes the polymorphic date inputs accepted at the public
// boundaries (Calendar objects, millisecond timestamps, ISO-8601 strings)
// into that canonical value.
package instant

import (
	"math"
	"time"
)

// MaxUnixMilli is the largest representable millisecond offset from the Unix
// epoch, roughly 273,790 years. MinUnixMilli mirrors it into the past.
// Values outside this range do not denote an Instant.
const (
	MaxUnixMilli int64 = 8_640_000_000_000_000
	MinUnixMilli int64 = -MaxUnixMilli
)

// Instant is a point in time, zone-agnostic. The zero value is the invalid
// Instant. Invalid Instants propagate through arithmetic and compare unequal
// to everything, including themselves.
type Instant struct {
	ms    int64
	valid bool
}

// Min and Max are the earliest and latest representable Instants.
var (
	Min = Instant{ms: MinUnixMilli, valid: true}
	Max = Instant{ms: MaxUnixMilli, valid: true}
)

// Of returns the Instant ms milliseconds after the Unix epoch, or the
// invalid Instant if ms is out of range.
func Of(ms int64) Instant {
	if ms < MinUnixMilli || ms > MaxUnixMilli {
		return Instant{}
	}
	return Instant{ms: ms, valid: true}
}

// FromTime converts a time.Time, truncating to millisecond precision.
func FromTime(t time.Time) Instant {
	return Of(t.UnixMilli())
}

// Now returns the current Instant as reported by the host clock.
func Now() Instant {
	return FromTime(time.Now())
}

// Invalid returns the invalid Instant.
func Invalid() Instant {
	return Instant{}
}

// Valid reports whether i denotes a point in time.
func (i Instant) Valid() bool {
	return i.valid
}

// UnixMilli returns the millisecond offset from the Unix epoch.
// It returns 0 for the invalid Instant; callers that care must check Valid.
func (i Instant) UnixMilli() int64 {
	return i.ms
}

// Time returns i as a time.Time in UTC. The invalid Instant yields the zero
// time.Time.
func (i Instant) Time() time.Time {
	if !i.valid {
		return time.Time{}
	}
	return time.UnixMilli(i.ms).UTC()
}

// Equal reports whether both Instants are valid and denote the same point in
// time. Like NaN, the invalid Instant is unequal to everything, itself
// included.
func (i Instant) Equal(o Instant) bool {
	return i.valid && o.valid && i.ms == o.ms
}

// Before reports whether i is strictly earlier than o. It is false if either
// Instant is invalid.
func (i Instant) Before(o Instant) bool {
	return i.valid && o.valid && i.ms < o.ms
}

// After reports whether i is strictly later than o. It is false if either
// Instant is invalid.
func (i Instant) After(o Instant) bool {
	return i.valid && o.valid && i.ms > o.ms
}

// Compare orders two valid Instants: -1 if i is earlier, 1 if later, 0 if
// equal. If either Instant is invalid it returns 0; use Valid first when the
// distinction matters.
func (i Instant) Compare(o Instant) int {
	switch {
	case i.Before(o):
		return -1
	case i.After(o):
		return 1
	default:
		return 0
	}
}

// String renders i as an ISO-8601 timestamp in UTC with millisecond
// precision, or "invalid instant".
func (i Instant) String() string {
	if !i.valid {
		return "invalid instant"
	}
	return i.Time().Format("2006-01-02T15:04:05.000Z")
}

// Finite reports whether f is an ordinary number, i.e. neither NaN nor an
// infinity. Fractional values are fine.
func Finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// From normalizes a polymorphic date input into an Instant. Recognized
// variants are Instant, *Calendar, time.Time, integer and float millisecond
// timestamps, and ISO-8601 strings. Unrecognized variants, non-finite
// numbers, unparsable strings and out-of-range values all yield the invalid
// Instant; From never panics on bad input.
func From(v any) Instant {
	switch x := v.(type) {
	case Instant:
		if !x.valid {
			return Instant{}
		}
		return Of(x.ms)
	case *Calendar:
		if x == nil {
			return Instant{}
		}
		return x.Instant()
	case time.Time:
		return FromTime(x)
	case int:
		return Of(int64(x))
	case int64:
		return Of(x)
	case float64:
		if !Finite(x) {
			return Instant{}
		}
		if x > float64(MaxUnixMilli) || x < float64(MinUnixMilli) {
			return Instant{}
		}
		return Of(int64(x)) // fractional milliseconds truncate toward zero
	case float32:
		return From(float64(x))
	case string:
		return ParseISO(x)
	default:
		return Instant{}
	}
}

// Valid reports whether v is a date input denoting a finite, in-range
// Instant. It never panics; unusable inputs simply report false.
func Valid(v any) bool {
	return From(v).valid
}

// IsInput reports whether v is one of the recognized date input variants,
// regardless of whether its value is usable. A NaN timestamp is an input; a
// struct of some unrelated type is not.
func IsInput(v any) bool {
	switch v.(type) {
	case Instant, *Calendar, time.Time, int, int64, float64, float32, string:
		return true
	default:
		return false
	}
}
