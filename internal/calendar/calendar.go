// Package calendar holds the Bikram Sambat year tables and the day arithmetic
// built on them.
//
// Bikram Sambat months do not have fixed lengths: every BS year has its own
// twelve month lengths and its own Gregorian New Year date, so nothing here is
// computed from a rule. Every lookup reads the compiled year table, and a year
// outside the table is reported as a *LookupError instead of being guessed.
//
// The table is immutable after package initialization and is safe for
// concurrent reads.
package calendar

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-bikram-sambat/internal/config"
)

const (
	// FirstYear is the first tabulated Bikram Sambat year.
	FirstYear = 2000
	// LastYear is the last tabulated Bikram Sambat year.
	LastYear = FirstYear + len(yearTable) - 1

	// MonthsPerYear is the number of months in every Bikram Sambat year.
	MonthsPerYear = 12
)

// ErrOutOfRange is matched by every *LookupError through errors.Is.
var ErrOutOfRange = errors.New(config.ErrYearRange)

// LookupError reports a year, month or Gregorian date the tables do not cover.
type LookupError struct {
	Year  int       // BS year that was requested, or 0.
	Month int       // Month that was requested, or 0 when the year was at fault.
	Date  Gregorian // Gregorian date that could not be resolved, or zero.
}

func (e *LookupError) Error() string {
	switch {
	case !e.Date.IsZero():
		return fmt.Sprintf("%s: %s", config.ErrGregorianRange, e.Date)
	case e.Month != 0:
		return fmt.Sprintf("%s: %d-%02d", config.ErrMonthRange, e.Year, e.Month)
	default:
		return fmt.Sprintf("%s: %d (%d..%d)", config.ErrYearRange, e.Year, FirstYear, LastYear)
	}
}

// Unwrap lets errors.Is(err, ErrOutOfRange) match any LookupError.
func (e *LookupError) Unwrap() error { return ErrOutOfRange }

// yearEntry is one row of the year table.
type yearEntry struct {
	year    int
	newYear Gregorian
	months  [MonthsPerYear]int
}

func entry(bsYear int) (*yearEntry, error) {
	if bsYear < FirstYear || bsYear > LastYear {
		return nil, &LookupError{Year: bsYear}
	}
	return &yearTable[bsYear-FirstYear], nil
}

// NewYearGregorianDate returns the Gregorian date of 1 Baisakh of bsYear.
func NewYearGregorianDate(bsYear int) (Gregorian, error) {
	e, err := entry(bsYear)
	if err != nil {
		return Gregorian{}, err
	}
	return e.newYear, nil
}

// DaysInMonth returns the length of month (1..12) in bsYear.
func DaysInMonth(bsYear, month int) (int, error) {
	e, err := entry(bsYear)
	if err != nil {
		return 0, err
	}
	if month < 1 || month > MonthsPerYear {
		return 0, &LookupError{Year: bsYear, Month: month}
	}
	return e.months[month-1], nil
}

// MonthLengths returns the twelve month lengths of bsYear.
func MonthLengths(bsYear int) ([MonthsPerYear]int, error) {
	e, err := entry(bsYear)
	if err != nil {
		return [MonthsPerYear]int{}, err
	}
	return e.months, nil
}

// YearLength returns 365 or 366, the sum of the month lengths of bsYear.
func YearLength(bsYear int) (int, error) {
	e, err := entry(bsYear)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, n := range e.months {
		total += n
	}
	return total, nil
}

// IsLeapYear reports whether bsYear has 366 days.
func IsLeapYear(bsYear int) (bool, error) {
	n, err := YearLength(bsYear)
	if err != nil {
		return false, err
	}
	return n == 366, nil
}

// Years returns every tabulated BS year in increasing order.
func Years() []int {
	years := make([]int, 0, len(yearTable))
	for _, e := range yearTable {
		years = append(years, e.year)
	}
	return years
}

// Bounds returns the first and last Gregorian dates covered by the table.
func Bounds() (first, last Gregorian) {
	tail := &yearTable[len(yearTable)-1]
	n, _ := YearLength(tail.year)
	return yearTable[0].newYear, AddDays(tail.newYear, n-1)
}
