package domain

import (
	"fmt"
	"time"
)

// dayFormat is the wire format for Day values.
const dayFormat = "2006-01-02"

// Day is a calendar day with no intra-day component. The zero value is
// "no day" (IsZero reports true) and sorts before every real day.
//
// Internally a Day is stored as midnight UTC, so two Days constructed from
// the same calendar date always compare equal regardless of the location
// they were derived in.
type Day struct {
	t time.Time
}

// NewDay constructs a Day from a calendar date.
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf returns the calendar day the instant falls on in the given location.
func DayOf(t time.Time, loc *time.Location) Day {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return NewDay(local.Year(), local.Month(), local.Day())
}

// AddDays returns the day n days after d (n may be negative).
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// Next returns the following day.
func (d Day) Next() Day { return d.AddDays(1) }

// Sub returns the number of whole days from other to d.
func (d Day) Sub(other Day) int {
	return int(d.t.Sub(other.t).Hours() / 24)
}

// Before reports whether d is earlier than other.
func (d Day) Before(other Day) bool { return d.t.Before(other.t) }

// After reports whether d is later than other.
func (d Day) After(other Day) bool { return d.t.After(other.t) }

// Equal reports whether d and other are the same calendar day.
func (d Day) Equal(other Day) bool { return d.t.Equal(other.t) }

// IsZero reports whether d is the zero "no day" value.
func (d Day) IsZero() bool { return d.t.IsZero() }

// Time returns the day as midnight UTC.
func (d Day) Time() time.Time { return d.t }

// String returns the day in YYYY-MM-DD form.
func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dayFormat)
}

// ParseDay parses a day in YYYY-MM-DD form.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayFormat, s)
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return Day{t: t.UTC()}, nil
}

// MarshalJSON encodes the day as "YYYY-MM-DD". The zero value encodes as "".
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string. Empty strings and JSON null
// decode to the zero value.
func (d *Day) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == `""` || s == "null" {
		*d = Day{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("day: invalid JSON value %s", s)
	}
	parsed, err := ParseDay(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
