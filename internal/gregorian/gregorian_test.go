package gregorian

import (
	"testing"
	"time"
)

func TestLeapYear(t *testing.T) {
	cases := []struct {
		year int
		want bool
	}{
		{2024, true},
		{2023, false},
		{2000, true},  // divisible by 400
		{1900, false}, // divisible by 100 but not 400
		{1600, true},
		{0, true},
		{-4, true},
	}
	for _, c := range cases {
		if got := LeapYear(c.year); got != c.want {
			t.Errorf("LeapYear(%d) = %v, want %v", c.year, got, c.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2024, 2, 29},
		{2023, 2, 28},
		{2025, 1, 31},
		{2025, 4, 30},
		{2025, 6, 30},
		{2025, 9, 30},
		{2025, 11, 30},
		{2025, 12, 31},
		{1900, 2, 28},
		{2000, 2, 29},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.year, c.month); got != c.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestUnixMatchesStandardLibrary(t *testing.T) {
	dates := []time.Time{
		time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1969, time.December, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2024, time.February, 29, 12, 30, 45, 0, time.UTC),
		time.Date(2000, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1900, time.February, 28, 6, 0, 0, 0, time.UTC),
		time.Date(2100, time.December, 31, 23, 0, 0, 0, time.UTC),
		time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		got := Unix(d.Year(), int(d.Month()), d.Day(), d.Hour(), d.Minute(), d.Second())
		if want := d.Unix(); got != want {
			t.Errorf("Unix(%v) = %d, want %d", d, got, want)
		}
	}
}
