package bikram

import "github.com/tartampluch/go-bikram-sambat/internal/calendar"

// AddYears moves d by n years. The day is clamped to the length of the
// month in the new year. It is a no-op on an unset date.
func (d *Date) AddYears(n int) *Date {
	if !d.valid {
		return d
	}
	d.year += n
	d.settle()
	return d
}

// AddMonths moves d by n months, carrying into the year, then clamps the day
// to the length of the resulting month (a 32nd day becomes the 31st when the
// new month has 31 days). It is a no-op on an unset date.
func (d *Date) AddMonths(n int) *Date {
	if !d.valid {
		return d
	}

	total := d.month + n
	years := 0
	for total > calendar.MonthsPerYear {
		total -= calendar.MonthsPerYear
		years++
	}
	for total <= 0 {
		total += calendar.MonthsPerYear
		years--
	}

	d.month = total
	return d.AddYears(years)
}

// AddDays moves d by n days. Month lengths are read from the table for each
// month crossed, since they differ from year to year. It is a no-op on an
// unset date.
func (d *Date) AddDays(n int) *Date {
	if !d.valid {
		return d
	}

	total := d.day + n
	for {
		length, err := calendar.DaysInMonth(d.year, d.month)
		if err != nil {
			d.invalidate(err)
			return d
		}
		if total <= length {
			break
		}
		total -= length
		if d.AddMonths(1); !d.valid {
			return d
		}
	}

	for total <= 0 {
		if d.AddMonths(-1); !d.valid {
			return d
		}
		length, err := calendar.DaysInMonth(d.year, d.month)
		if err != nil {
			d.invalidate(err)
			return d
		}
		total += length
	}

	d.day = total
	return d
}

// settle clamps the day to the current month, or makes d unset when the year
// is no longer tabulated.
func (d *Date) settle() {
	length, err := calendar.DaysInMonth(d.year, d.month)
	if err != nil {
		d.invalidate(err)
		return
	}
	if d.day > length {
		d.day = length
	}
}

func (d *Date) invalidate(err error) {
	*d = Date{err: err}
}
