// Package gregorian holds proleptic-Gregorian calendar math that must not
// depend on time.Location: leap years, month lengths and a direct
// fields-to-Unix-seconds conversion used for wall-clock differencing.
package gregorian

// LeapYear reports whether year is a leap year.
func LeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in a given month for a specific year.
func DaysInMonth(year, month int) int {
	if month == 2 {
		if LeapYear(year) {
			return 29
		}
		return 28
	}
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}
	return 31
}

// daysSinceStartOfYear[m-1] counts the days in a non-leap year before month m begins.
var daysSinceStartOfYear = [...]uint64{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// Unix converts a date and time to the number of seconds since
// 1970-01-01 00:00:00. The fields are taken at face value with no zone
// attached, which is what makes the function usable for differencing a
// zone's wall clock against UTC. It ignores leap seconds but respects leap
// years. The cycle constants mirror the Go standard library's time package.
func Unix(year, month, day, hour, minute, second int) int64 {
	d := daysSinceEpoch(year) + daysSinceStartOfYear[month-1] + (uint64(day) - 1)
	if month > 2 && LeapYear(year) {
		d++ // +leap day
	}
	abs := d*secondsPerDay + uint64(hour)*secondsPerHour + uint64(minute)*secondsPerMinute + uint64(second)
	return int64(abs) + (absoluteToInternal + internalToUnix)
}

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	daysPer400Years  = 365*400 + 97
	daysPer100Years  = 365*100 + 24
	daysPer4Years    = 365*4 + 1

	absoluteZeroYear         = -292277022399
	internalYear             = 1
	absoluteToInternal int64 = (absoluteZeroYear - internalYear) * 365.2425 * secondsPerDay
	unixToInternal     int64 = (1969*365 + 1969/4 - 1969/100 + 1969/400) * secondsPerDay
	internalToUnix     int64 = -unixToInternal
)

// daysSinceEpoch takes a year and returns the number of days from the
// absolute epoch to the start of that year. This is basically
// (year - zeroYear) * 365, but accounting for leap days.
func daysSinceEpoch(year int) uint64 {
	y := uint64(int64(year) - absoluteZeroYear)

	// Add in days from 400-year cycles.
	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	// Add in 100-year cycles.
	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	// Add in 4-year cycles.
	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	// Add in non-leap years.
	n = y
	d += 365 * n

	return d
}
