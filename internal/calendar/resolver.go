package calendar

// NewYearDateInfo finds the BS year containing ad and returns that year's
// New Year Gregorian date together with the year.
//
// The table is scanned in increasing year order for the unique year y with
// NewYear(y) <= ad < NewYear(y+1). The last year is bounded by its own length.
func NewYearDateInfo(ad Gregorian) (Gregorian, int, error) {
	if ad.Before(yearTable[0].newYear) {
		return Gregorian{}, 0, &LookupError{Date: ad}
	}

	for i := range yearTable {
		cur := &yearTable[i]

		var next Gregorian
		if i+1 < len(yearTable) {
			next = yearTable[i+1].newYear
		} else {
			n, _ := YearLength(cur.year)
			next = AddDays(cur.newYear, n)
		}

		if ad.Before(next) {
			return cur.newYear, cur.year, nil
		}
	}

	return Gregorian{}, 0, &LookupError{Date: ad}
}
