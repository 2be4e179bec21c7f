package instant

import (
	"math"
	"testing"
)

func TestCalendarSetUnixMilli(t *testing.T) {
	c := New(int64(500))

	got := c.SetUnixMilli(1000)
	if got != c {
		t.Fatal("SetUnixMilli must return the same reference")
	}
	if c.UnixMilli() != 1000 {
		t.Errorf("UnixMilli() = %d, want 1000", c.UnixMilli())
	}

	// Fractional values truncate toward zero.
	c.SetUnixMilli(1500.9)
	if c.UnixMilli() != 1500 {
		t.Errorf("UnixMilli() = %d, want 1500", c.UnixMilli())
	}

	// A non-finite value poisons the object, a later set heals it.
	c.SetUnixMilli(math.NaN())
	if c.Valid() {
		t.Error("Valid() = true after SetUnixMilli(NaN)")
	}
	if From(c).Valid() {
		t.Error("From(invalid calendar) produced a valid instant")
	}
	c.SetUnixMilli(0)
	if !c.Valid() {
		t.Error("Valid() = false after healing set")
	}
}

func TestCalendarSetUnixMilliOutOfRange(t *testing.T) {
	c := New(int64(0))
	c.SetUnixMilli(9e15)
	if c.Valid() {
		t.Error("Valid() = true for out-of-range value")
	}
}

func TestNewFromUnusableInput(t *testing.T) {
	c := New("garbage")
	if c == nil {
		t.Fatal("New must not return nil")
	}
	if c.Valid() {
		t.Error("Valid() = true for unusable input")
	}
	if c.UnixMilli() != 0 {
		t.Errorf("UnixMilli() = %d, want 0", c.UnixMilli())
	}
}
