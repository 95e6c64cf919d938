// Package bikram provides the Bikram Sambat date value.
//
// A Date is either a valid (year, month, day) triple whose day exists in that
// month of that year, or unset. The zero Date is unset. Unset dates are safe
// to use: accessors return Unset, String returns "Invalid Date" and the
// arithmetic methods do nothing.
//
// Dates are plain values. Copying a Date copies it; the Add* methods mutate
// the receiver and are not safe for concurrent use on the same Date.
package bikram

import (
	"errors"
	"fmt"
	"time"

	"github.com/tartampluch/go-bikram-sambat/internal/calendar"
	"github.com/tartampluch/go-bikram-sambat/internal/config"
	"github.com/tartampluch/go-bikram-sambat/internal/locale"
)

// Unset is returned by the accessors of an unset Date.
const Unset = 0

// ErrUnset is returned by conversions attempted on an unset Date.
var ErrUnset = errors.New(config.ErrDateUnset)

// Date is a Bikram Sambat calendar date.
type Date struct {
	year, month, day int
	valid            bool

	// err records the lookup failure that made the date unset, if any.
	err error
}

// Of returns the date (year, month, day), or an error when the year or month
// is not tabulated or the day does not exist in that month.
func Of(year, month, day int) (Date, error) {
	n, err := calendar.DaysInMonth(year, month)
	if err != nil {
		return Date{}, err
	}
	if day < 1 || day > n {
		return Date{}, fmt.Errorf("%s: %04d-%02d-%02d (max %d)", config.ErrDayRange, year, month, day, n)
	}
	return Date{year: year, month: month, day: day, valid: true}, nil
}

// IsValidDay reports whether 1 <= day <= DaysInMonth(year, month).
func IsValidDay(year, month, day int) bool {
	n, err := calendar.DaysInMonth(year, month)
	return err == nil && day >= 1 && day <= n
}

// IsValid reports whether d holds a date.
func (d Date) IsValid() bool { return d.valid }

// Year returns the BS year, or Unset.
func (d Date) Year() int {
	if !d.valid {
		return Unset
	}
	return d.year
}

// Month returns the BS month (1..12), or Unset.
func (d Date) Month() int {
	if !d.valid {
		return Unset
	}
	return d.month
}

// Day returns the day of the month, or Unset.
func (d Date) Day() int {
	if !d.valid {
		return Unset
	}
	return d.day
}

// Err returns the lookup error that turned d unset, typically arithmetic or
// a conversion that left the tabulated range. It is nil otherwise.
func (d Date) Err() error { return d.err }

// Copy returns an independent copy of d.
func (d Date) Copy() Date { return d }

// DaysInMonth returns the length of d's month, or Unset.
func (d Date) DaysInMonth() int {
	if !d.valid {
		return Unset
	}
	n, err := calendar.DaysInMonth(d.year, d.month)
	if err != nil {
		return Unset
	}
	return n
}

// DaysInYear returns 365 or 366, or Unset.
func (d Date) DaysInYear() int {
	if !d.valid {
		return Unset
	}
	n, err := calendar.YearLength(d.year)
	if err != nil {
		return Unset
	}
	return n
}

// DayOfYear returns the 1-based position of d in its year, or Unset.
func (d Date) DayOfYear() int {
	if !d.valid {
		return Unset
	}
	n, err := calendar.DaysFromNewYear(d.year, d.month, d.day)
	if err != nil {
		return Unset
	}
	return n
}

// IsLeapYear reports whether d's year has 366 days. Unset dates are not leap.
func (d Date) IsLeapYear() bool {
	if !d.valid {
		return false
	}
	leap, err := calendar.IsLeapYear(d.year)
	return err == nil && leap
}

// DayOfWeek returns the weekday of d (time.Sunday == 0).
func (d Date) DayOfWeek() (time.Weekday, error) {
	g, err := d.ToGregorianDate()
	if err != nil {
		return 0, err
	}
	return g.Weekday(), nil
}

// PreviousMonth returns the month before d's month, wrapping Baisakh to
// Chaitra without changing the year. It returns nil for an unset date.
func (d Date) PreviousMonth() *locale.Month {
	if !d.valid {
		return nil
	}
	return locale.PreviousMonth(d.month)
}

// NextMonth returns the month after d's month, wrapping Chaitra to Baisakh.
// It returns nil for an unset date.
func (d Date) NextMonth() *locale.Month {
	if !d.valid {
		return nil
	}
	return locale.NextMonth(d.month)
}

// Compare returns -1, 0 or +1. Unset dates order before every valid date.
func (d Date) Compare(other Date) int {
	switch {
	case !d.valid && !other.valid:
		return 0
	case !d.valid:
		return -1
	case !other.valid:
		return 1
	}
	for _, c := range [][2]int{{d.year, other.year}, {d.month, other.month}, {d.day, other.day}} {
		if c[0] < c[1] {
			return -1
		}
		if c[0] > c[1] {
			return 1
		}
	}
	return 0
}

func (d Date) Equal(other Date) bool  { return d.Compare(other) == 0 }
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

// MonthDays returns every day of (year, month) in order.
func MonthDays(year, month int) ([]Date, error) {
	n, err := calendar.DaysInMonth(year, month)
	if err != nil {
		return nil, err
	}
	days := make([]Date, n)
	for i := range days {
		days[i] = Date{year: year, month: month, day: i + 1, valid: true}
	}
	return days, nil
}
