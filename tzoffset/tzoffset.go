// Package tzoffset resolves timezone identifiers to UTC offsets. A zone is
// named either by one of the fixed Zone records below or by an IANA name,
// matched case-insensitively against the host's timezone database. Offsets
// are computed per reference instant by differencing the zone's wall clock
// against the UTC wall clock, so daylight-saving transitions fall out of the
// zone data itself; nothing here hard-codes transition dates.
package tzoffset

import (
	"strings"
	"time"

	"github.com/ngrash/go-datemath/instant"
	"github.com/ngrash/go-datemath/internal/gregorian"
)

// Zone is a fixed timezone record: a well-known abbreviation bound to its
// canonical IANA name. StdOffset is the standard-time offset in minutes east
// of UTC; zones with DST set shift away from it for part of the year, and
// Offset resolves the actual value per instant.
type Zone struct {
	Name      string // canonical IANA name
	StdOffset int    // minutes east of UTC during standard time
	DST       bool   // true if the zone observes daylight saving
}

// The fixed zone records. These are read-only process-wide constants.
var (
	UTC = Zone{Name: "Etc/UTC", StdOffset: 0, DST: false}
	JST = Zone{Name: "Asia/Tokyo", StdOffset: 540, DST: false}
	EST = Zone{Name: "America/New_York", StdOffset: -300, DST: true}
	PST = Zone{Name: "America/Los_Angeles", StdOffset: -480, DST: true}
	GMT = Zone{Name: "Europe/London", StdOffset: 0, DST: true} // BST in summer
)

// abbreviations maps the fixed records' abbreviations, lower-cased.
var abbreviations = map[string]Zone{
	"utc": UTC,
	"jst": JST,
	"est": EST,
	"pst": PST,
	"gmt": GMT,
}

// Normalize resolves a zone spec to its canonical IANA name. A Zone record
// yields its Name directly. A string is trimmed and matched
// case-insensitively: first against the fixed abbreviations, then against
// the IANA database. The second return is false if the spec names no known
// zone.
func Normalize(spec any) (string, bool) {
	switch z := spec.(type) {
	case Zone:
		if z.Name == "" {
			return "", false
		}
		return z.Name, true
	case string:
		s := strings.TrimSpace(z)
		if s == "" {
			return "", false
		}
		if fixed, ok := abbreviations[strings.ToLower(s)]; ok {
			return fixed.Name, true
		}
		loc, ok := lookup(s)
		if !ok {
			return "", false
		}
		return loc.String(), true
	default:
		return "", false
	}
}

// IsValid reports whether spec names a known timezone.
func IsValid(spec any) bool {
	_, ok := Normalize(spec)
	return ok
}

// Offset returns the offset from UTC, in minutes, of the zone named by spec
// at the reference instant. A nil ref means now. The second return is false
// if spec names no known zone or ref is not a valid date input.
func Offset(spec any, ref any) (int, bool) {
	name, ok := Normalize(spec)
	if !ok {
		return 0, false
	}
	at := instant.Now()
	if ref != nil {
		at = instant.From(ref)
		if !at.Valid() {
			return 0, false
		}
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return 0, false
	}
	return offsetAt(loc, at), true
}

// offsetAt renders the instant's wall-clock time in loc, converts those
// fields to seconds as if they were UTC, and differences against the
// instant itself. The difference is exactly the zone's offset at that
// moment, DST included.
func offsetAt(loc *time.Location, at instant.Instant) int {
	utc := at.Time()
	wall := utc.In(loc)
	wallSec := gregorian.Unix(wall.Year(), int(wall.Month()), wall.Day(), wall.Hour(), wall.Minute(), wall.Second())
	utcSec := gregorian.Unix(utc.Year(), int(utc.Month()), utc.Day(), utc.Hour(), utc.Minute(), utc.Second())
	return int((wallSec - utcSec) / 60)
}

// lookup loads an IANA location by name, tolerating wrong letter case.
func lookup(name string) (*time.Location, bool) {
	if loc, err := time.LoadLocation(name); err == nil {
		return loc, true
	}
	// The database stores names like America/New_York; repair the case of
	// each word and retry. Names with irregular casing (McMurdo, DumontDUrville)
	// only match when given exactly.
	if repaired := repairCase(name); repaired != name {
		if loc, err := time.LoadLocation(repaired); err == nil {
			return loc, true
		}
	}
	return nil, false
}

// repairCase lower-cases name and upper-cases the first letter of every
// word, where words are delimited by '/', '_' and '-'.
func repairCase(name string) string {
	b := []byte(strings.ToLower(name))
	startOfWord := true
	for i, c := range b {
		if c == '/' || c == '_' || c == '-' {
			startOfWord = true
			continue
		}
		if startOfWord && 'a' <= c && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
		startOfWord = false
	}
	return string(b)
}
