package instant

// Calendar is the mutable calendar-instant object accepted as a date input.
// It is a reference type on purpose: SetUnixMilli is the one operation in
// the module that mutates its operand, and keeping that operand a distinct
// object keeps the rest of the API free of aliasing surprises. A Calendar is
// not safe for concurrent writers; callers own the synchronization if they
// share one.
type Calendar struct {
	ms    int64
	valid bool
}

// New builds a Calendar from any recognized date input. An unusable input
// yields an invalid Calendar, not a nil one.
func New(v any) *Calendar {
	i := From(v)
	return &Calendar{ms: i.ms, valid: i.valid}
}

// NewNow builds a Calendar holding the current instant.
func NewNow() *Calendar {
	i := Now()
	return &Calendar{ms: i.ms, valid: i.valid}
}

// Instant returns the Calendar's current value.
func (c *Calendar) Instant() Instant {
	if !c.valid {
		return Instant{}
	}
	return Of(c.ms)
}

// Valid reports whether the Calendar holds a usable instant.
func (c *Calendar) Valid() bool {
	return c.valid
}

// UnixMilli returns the stored millisecond value, 0 if invalid.
func (c *Calendar) UnixMilli() int64 {
	if !c.valid {
		return 0
	}
	return c.ms
}

// SetUnixMilli replaces the Calendar's value in place and returns the same
// receiver. This is the module's sole mutating operation. A non-finite or
// out-of-range ms marks the Calendar invalid; fractional values truncate
// toward zero.
func (c *Calendar) SetUnixMilli(ms float64) *Calendar {
	if !Finite(ms) || ms > float64(MaxUnixMilli) || ms < float64(MinUnixMilli) {
		c.ms = 0
		c.valid = false
		return c
	}
	c.ms = int64(ms)
	c.valid = true
	return c
}

func (c *Calendar) String() string {
	return c.Instant().String()
}
