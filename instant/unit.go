package instant

import (
	"fmt"
	"strings"
)

// Unit is a calendar granularity, ordered coarsest to finest. The zero value
// is not a valid Unit; option structs use it to mean "unset".
type Unit int

const (
	UnitYear Unit = iota + 1
	UnitMonth
	UnitDay
	UnitHour
	UnitMinute
	UnitSecond
	UnitMillisecond
)

func (u Unit) String() string {
	switch u {
	case UnitYear:
		return "year"
	case UnitMonth:
		return "month"
	case UnitDay:
		return "day"
	case UnitHour:
		return "hour"
	case UnitMinute:
		return "minute"
	case UnitSecond:
		return "second"
	case UnitMillisecond:
		return "millisecond"
	default:
		return "<UNDEFINED>"
	}
}

// ParseUnit parses a unit name. Names are matched case-insensitively and a
// trailing "s" is accepted, so "day", "Day" and "days" all parse.
func ParseUnit(s string) (Unit, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	for u := UnitYear; u <= UnitMillisecond; u++ {
		if name == u.String() {
			return u, nil
		}
	}
	return 0, fmt.Errorf("invalid unit %q", s)
}
