package instant

import (
	"testing"
	"time"
	_ "time/tzdata" // keep zone lookups hermetic

	"github.com/google/go-cmp/cmp"
)

func TestParseISO(t *testing.T) {
	cases := []struct {
		in   string
		want Instant
	}{
		// A zone designator makes the string absolute.
		{"2024-01-02T03:04:05Z", FromTime(time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC))},
		{"2024-01-02T03:04:05.250Z", FromTime(time.Date(2024, time.January, 2, 3, 4, 5, 250e6, time.UTC))},
		{"2024-01-02T03:04Z", FromTime(time.Date(2024, time.January, 2, 3, 4, 0, 0, time.UTC))},
		{"2024-01-02T12:00:00+09:00", FromTime(time.Date(2024, time.January, 2, 3, 0, 0, 0, time.UTC))},
		{"2024-01-02T00:00:00-05:00", FromTime(time.Date(2024, time.January, 2, 5, 0, 0, 0, time.UTC))},

		// Without one, the string is read in local time.
		{"2024-01-02T03:04:05", FromTime(time.Date(2024, time.January, 2, 3, 4, 5, 0, time.Local))},
		{"2024-01-02T03:04", FromTime(time.Date(2024, time.January, 2, 3, 4, 0, 0, time.Local))},
		{"2024-01-02", FromTime(time.Date(2024, time.January, 2, 0, 0, 0, 0, time.Local))},

		{"", Invalid()},
		{"not a date", Invalid()},
		{"2024-13-01", Invalid()},
		{"2024-02-30", Invalid()},
		{"2024-01-02T25:00:00Z", Invalid()},
		{"02.01.2024", Invalid()},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got := ParseISO(c.in)
			if diff := cmp.Diff(c.want.String(), got.String()); diff != "" {
				t.Errorf("ParseISO(%q) mismatch (-want +got):\n%s", c.in, diff)
			}
		})
	}
}

func TestParseISOIn(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatal(err)
	}

	got := ParseISOIn("2024-01-02", berlin)
	want := FromTime(time.Date(2024, time.January, 2, 0, 0, 0, 0, berlin))
	if !got.Equal(want) {
		t.Errorf("ParseISOIn() = %v, want %v", got, want)
	}

	// The explicit location must not override a zone designator.
	got = ParseISOIn("2024-01-02T00:00:00Z", berlin)
	want = FromTime(time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC))
	if !got.Equal(want) {
		t.Errorf("ParseISOIn() = %v, want %v", got, want)
	}
}
