package calendar

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-bikram-sambat/internal/config"
)

// Gregorian is a proleptic Gregorian calendar date without clock or zone.
// The zero value is not a valid date and is used as "unset".
type Gregorian struct {
	Year  int
	Month time.Month
	Day   int
}

// FromTime returns the calendar date of t in t's own location.
func FromTime(t time.Time) Gregorian {
	y, m, d := t.Date()
	return Gregorian{Year: y, Month: m, Day: d}
}

// ParseGregorian parses a "YYYY-MM-DD" date.
func ParseGregorian(s string) (Gregorian, error) {
	t, err := time.Parse(config.DateFormatFullDash, s)
	if err != nil {
		return Gregorian{}, fmt.Errorf("%s: %w", config.ErrDateParse, err)
	}
	return FromTime(t), nil
}

// Time returns the date at midnight UTC.
func (g Gregorian) Time() time.Time {
	return time.Date(g.Year, g.Month, g.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether g is the zero value.
func (g Gregorian) IsZero() bool {
	return g == Gregorian{}
}

// Weekday returns the day of the week of g.
func (g Gregorian) Weekday() time.Weekday {
	// JDN 0 fell on a Monday.
	return time.Weekday((g.julianDay() + 1) % 7)
}

// Compare returns -1, 0 or +1 depending on whether g is before, equal to or
// after other.
func (g Gregorian) Compare(other Gregorian) int {
	a, b := g.julianDay(), other.julianDay()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (g Gregorian) Before(other Gregorian) bool { return g.Compare(other) < 0 }
func (g Gregorian) After(other Gregorian) bool  { return g.Compare(other) > 0 }
func (g Gregorian) Equal(other Gregorian) bool  { return g.Compare(other) == 0 }

// String formats g as YYYY-MM-DD.
func (g Gregorian) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", g.Year, int(g.Month), g.Day)
}

// julianDay returns the Julian Day Number of g (Fliegel & Van Flandern).
// The integer divisions rely on truncation toward zero.
func (g Gregorian) julianDay() int {
	y, m, d := g.Year, int(g.Month), g.Day
	a := (m - 14) / 12
	return d - 32075 +
		1461*(y+4800+a)/4 +
		367*(m-2-a*12)/12 -
		3*((y+4900+a)/100)/4
}

// fromJulianDay is the inverse of julianDay.
func fromJulianDay(jd int) Gregorian {
	l := jd + 68569
	n := 4 * l / 146097
	l -= (146097*n + 3) / 4
	i := 4000 * (l + 1) / 1461001
	l = l - 1461*i/4 + 31
	j := 80 * l / 2447
	k := l - 2447*j/80
	l = j / 11
	j = j + 2 - 12*l
	i = 100*(n-49) + i + l
	return Gregorian{Year: i, Month: time.Month(j), Day: k}
}
