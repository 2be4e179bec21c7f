package instant

import "time"

// Layouts tried by ParseISO, most specific first. Fractional seconds need no
// layout of their own: time.Parse accepts them after the seconds field.
var (
	// Strings carrying a zone designator are absolute.
	zonedLayouts = []string{
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04Z07:00",
	}
	// Strings without one are interpreted in local time, date-only strings
	// included.
	localLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	}
)

// ParseISO parses an ISO-8601 date or date-time string. A 'Z' or explicit
// numeric offset makes the string absolute; without a zone designator the
// string is read as local time. Anything unparsable, and any parsed value
// outside the representable range, yields the invalid Instant.
func ParseISO(s string) Instant {
	return ParseISOIn(s, time.Local)
}

// ParseISOIn is ParseISO with an explicit location for zoneless strings.
func ParseISOIn(s string, loc *time.Location) Instant {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t)
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return FromTime(t)
		}
	}
	return Instant{}
}
