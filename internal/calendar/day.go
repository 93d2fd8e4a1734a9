// Package calendar provides the single calendar-date primitive used by the
// scheduling rules.
//
// A Day is the number of days between 1970-01-01 and a calendar date as seen
// in a particular location. Two instants map to the same Day if and only if
// they fall on the same local calendar date, so due checks, review stamps and
// next-review computation compare integers instead of formatted strings.
package calendar

import (
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Layout is the textual form of a Day.
const Layout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// ErrInvalidDay is returned when a value cannot be parsed as a calendar date.
var ErrInvalidDay = errors.New("calendar: invalid date")

// Day is a local calendar date encoded as days since 1970-01-01.
type Day int32

var (
	_ fmt.Stringer             = Day(0)
	_ encoding.TextMarshaler   = Day(0)
	_ encoding.TextUnmarshaler = (*Day)(nil)
	_ json.Marshaler           = Day(0)
	_ json.Unmarshaler         = (*Day)(nil)
	_ driver.Valuer            = Day(0)
)

// Date builds a Day from year, month and day-of-month. Out-of-range values are
// normalized the way time.Date normalizes them.
func Date(year int, month time.Month, day int) Day {
	return Day(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay)
}

// Of returns the calendar date of t in t's own location.
//
// Callers pass a time already expressed in the user's zone (time.Now() is
// Local). Converting to UTC first would move the date near midnight for users
// away from UTC.
func Of(t time.Time) Day {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// Today returns the current calendar date in loc. A nil now defaults to
// time.Now and a nil loc to time.Local.
func Today(now func() time.Time, loc *time.Location) Day {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return Of(now().In(loc))
}

// AddDays returns the date n days after d (n may be negative).
func (d Day) AddDays(n int) Day {
	return d + Day(n)
}

// Sub returns the number of days from o to d.
func (d Day) Sub(o Day) int {
	return int(d - o)
}

// Time returns midnight of d in loc.
func (d Day) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	u := time.Unix(int64(d)*secondsPerDay, 0).UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, loc)
}

// String formats d as YYYY-MM-DD.
func (d Day) String() string {
	return d.Time(time.UTC).Format(Layout)
}

// Parse reads a YYYY-MM-DD date. Timestamps are accepted as well: one with
// a zone offset, such as "2024-06-25T23:30:00Z", is converted to time.Local
// before its date is taken, and one without an offset, such as
// "2024-06-25 21:10:00", keeps the written date.
func Parse(s string) (Day, error) {
	return ParseIn(s, nil)
}

// offsetLayouts are the timestamp forms that carry a zone offset.
var offsetLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999Z07:00"}

// ParseIn is Parse with offset-bearing timestamps converted to loc. A nil loc
// means time.Local.
func ParseIn(s string, loc *time.Location) (Day, error) {
	if len(s) > len(Layout) && (s[len(Layout)] == 'T' || s[len(Layout)] == ' ') {
		for _, layout := range offsetLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				if loc == nil {
					loc = time.Local
				}
				return Of(t.In(loc)), nil
			}
		}
		s = s[:len(Layout)]
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	return Of(t), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// constants.
func MustParse(s string) Day {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Ptr returns a pointer to a copy of d.
func Ptr(d Day) *Day {
	return &d
}

// Max returns the later of a and b.
func Max(a, b Day) Day {
	if a > b {
		return a
	}
	return b
}

// MarshalText implements encoding.TextMarshaler.
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Day) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON implements json.Marshaler. A Day serializes as a JSON string.
func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (d *Day) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDay, data)
	}
	return d.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer; dates are stored as YYYY-MM-DD.
func (d Day) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner for DATE and text columns.
func (d *Day) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = Of(v)
		return nil
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidDay, src)
	}
}
