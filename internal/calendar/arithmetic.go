package calendar

// DaysBetween returns the signed number of days from b to a (a - b).
func DaysBetween(a, b Gregorian) int {
	return a.julianDay() - b.julianDay()
}

// AddDays returns the date n days after g; n may be negative.
func AddDays(g Gregorian, n int) Gregorian {
	return fromJulianDay(g.julianDay() + n)
}

// DaysFromNewYear returns the 1-based position of (year, month, day) within
// the BS year: the lengths of months 1..month-1 plus day.
// The day is not checked against the month length.
func DaysFromNewYear(year, month, day int) (int, error) {
	e, err := entry(year)
	if err != nil {
		return 0, err
	}
	if month < 1 || month > MonthsPerYear {
		return 0, &LookupError{Year: year, Month: month}
	}

	offset := day
	for _, n := range e.months[:month-1] {
		offset += n
	}
	return offset, nil
}
