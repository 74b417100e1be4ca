// Package civiltime converts between wall-clock readings in a named zone and
// absolute instants.
//
// An Instant is the only value ever persisted. A CivilDateTime is what a person
// reads off a clock in some zone; it has no zone of its own. Encode goes from
// instant to reading, Decode goes back, and Resolve also reports whether the
// reading fell into a DST gap (it never happened) or fold (it happened twice).
package civiltime

import (
	"fmt"
	"time"
)

const (
	minuteMillis = int64(60_000)
	dayMillis    = 24 * 60 * minuteMillis
)

// Instant is milliseconds since 1970-01-01T00:00:00Z.
type Instant int64

func FromTime(t time.Time) Instant {
	return Instant(t.UnixMilli())
}

func (i Instant) Time() time.Time {
	return time.UnixMilli(int64(i)).UTC()
}

// Truncate drops the sub-minute part, rounding toward negative infinity.
func (i Instant) Truncate() Instant {
	return Instant(int64(i) - mod(int64(i), minuteMillis))
}

func (i Instant) String() string {
	return i.Time().Format(time.RFC3339)
}

// CivilDateTime is a proleptic Gregorian wall-clock reading at minute precision.
type CivilDateTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

func FromFields(year int, month time.Month, day, hour, minute int) CivilDateTime {
	return CivilDateTime{Year: year, Month: month, Day: day, Hour: hour, Minute: minute}
}

func (c CivilDateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d", c.Year, int(c.Month), c.Day, c.Hour, c.Minute)
}

// Valid reports whether every field is in range and the day exists in that month.
func (c CivilDateTime) Valid() bool {
	if c.Month < time.January || c.Month > time.December {
		return false
	}

	if c.Hour < 0 || c.Hour > 23 || c.Minute < 0 || c.Minute > 59 || c.Day < 1 {
		return false
	}

	return c.Day <= daysIn(c.Year, c.Month)
}

// Compare orders readings lexicographically on (year, month, day, hour, minute).
func (c CivilDateTime) Compare(other CivilDateTime) int {
	a, b := c.naiveMillis(), other.naiveMillis()

	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (c CivilDateTime) Before(other CivilDateTime) bool {
	return c.Compare(other) < 0
}

func (c CivilDateTime) After(other CivilDateTime) bool {
	return c.Compare(other) > 0
}

func (c CivilDateTime) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *CivilDateTime) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

// naiveMillis reads the fields as if they were UTC.
func (c CivilDateTime) naiveMillis() int64 {
	return time.Date(c.Year, c.Month, c.Day, c.Hour, c.Minute, 0, 0, time.UTC).UnixMilli()
}

func civilFromMillis(ms int64) CivilDateTime {
	t := time.UnixMilli(ms).UTC()

	return CivilDateTime{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func mod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}

	return m
}
