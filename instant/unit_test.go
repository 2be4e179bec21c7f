package instant

import "testing"

func TestParseUnit(t *testing.T) {
	cases := []struct {
		in      string
		want    Unit
		wantErr bool
	}{
		{"year", UnitYear, false},
		{"years", UnitYear, false},
		{"Month", UnitMonth, false},
		{"DAYS", UnitDay, false},
		{"hour", UnitHour, false},
		{"minutes", UnitMinute, false},
		{" second ", UnitSecond, false},
		{"milliseconds", UnitMillisecond, false},
		{"week", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := ParseUnit(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("ParseUnit(%q) error = %v, wantErr %v", c.in, err, c.wantErr)
			continue
		}
		if got != c.want {
			t.Errorf("ParseUnit(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestUnitString(t *testing.T) {
	if got, want := UnitMillisecond.String(), "millisecond"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := Unit(0).String(), "<UNDEFINED>"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
