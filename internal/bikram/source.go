package bikram

import (
	"fmt"
	"strings"
	"time"

	"github.com/tartampluch/go-bikram-sambat/internal/calendar"
	"github.com/tartampluch/go-bikram-sambat/internal/config"
	"github.com/tartampluch/go-bikram-sambat/internal/parse"
)

type sourceKind int

const (
	sourceEmpty sourceKind = iota
	sourceText
	sourceExisting
)

// Source is the input of New: BS text, an existing Date, or nothing.
type Source struct {
	kind sourceKind
	text string
	date Date
}

// FromText builds a Source from formatted BS date text.
func FromText(s string) Source { return Source{kind: sourceText, text: s} }

// FromExisting builds a Source copying d.
func FromExisting(d Date) Source { return Source{kind: sourceExisting, date: d} }

// Empty builds a Source that yields an unset Date.
func Empty() Source { return Source{} }

// New resolves src into a Date. Invalid text yields an unset Date.
func New(src Source) Date {
	switch src.kind {
	case sourceText:
		return Parse(src.text)
	case sourceExisting:
		return src.date
	default:
		return Date{}
	}
}

// now is replaced in tests.
var now = time.Now

// Parse reads BS date text in any layout known to the parse package.
// Text that does not describe a tabulated date yields an unset Date; it never
// yields a partially filled one. MM-DD text takes the current BS year.
func Parse(s string) Date {
	d, _ := ParseStrict(s)
	return d
}

// ParseStrict is Parse with the reason for failure. Text that matches no
// layout wraps config.ErrBSDateParse; a year outside the table is a
// *calendar.LookupError.
func ParseStrict(s string) (Date, error) {
	f, ok := parse.Parse(s)
	if !ok {
		return Date{}, fmt.Errorf("%s: %q", config.ErrBSDateParse, s)
	}

	year := f.Year
	if !f.HasYear {
		today := FromTime(now())
		if !today.IsValid() {
			return Date{}, today.Err()
		}
		year = today.year
	}

	return Of(year, f.Month, f.Day)
}

type adKind int

const (
	adEmpty adKind = iota
	adTime
	adText
)

// ADSource is the input of ToBikramSambat: a time.Time, Gregorian text, or nothing.
type ADSource struct {
	kind adKind
	t    time.Time
	text string
}

// AD builds an ADSource from the calendar date of t in t's location.
func AD(t time.Time) ADSource { return ADSource{kind: adTime, t: t} }

// ADText builds an ADSource from Gregorian text such as "2024-04-13".
func ADText(s string) ADSource { return ADSource{kind: adText, text: s} }

// NoAD builds an ADSource that yields an unset Date.
func NoAD() ADSource { return ADSource{} }

var adLayouts = []string{
	config.DateFormatFullDash,
	config.DateFormatFullBasic,
	config.DateFormatRFC3339,
	config.DateFormatFullT,
}

// ToBikramSambat converts a Gregorian input to a new BS Date. Unset or
// unparsable input yields an unset Date; a date outside the table yields an
// unset Date whose Err is the *calendar.LookupError.
func ToBikramSambat(src ADSource) Date {
	switch src.kind {
	case adTime:
		if src.t.IsZero() {
			return Date{}
		}
		return FromGregorian(calendar.FromTime(src.t))
	case adText:
		text := strings.TrimSpace(src.text)
		for _, layout := range adLayouts {
			if t, err := time.Parse(layout, text); err == nil {
				return FromGregorian(calendar.FromTime(t))
			}
		}
		return Date{}
	default:
		return Date{}
	}
}

// FromTime converts the calendar date of t to BS. See ToBikramSambat.
func FromTime(t time.Time) Date { return ToBikramSambat(AD(t)) }

// FromGregorian converts g to BS.
func FromGregorian(g calendar.Gregorian) Date {
	newYear, year, err := calendar.NewYearDateInfo(g)
	if err != nil {
		return Date{err: err}
	}

	d := Date{year: year, month: 1, day: 1, valid: true}
	d.AddDays(calendar.DaysBetween(g, newYear))
	return d
}

// Today returns the current BS date in the local zone.
func Today() Date { return FromTime(now()) }

// ToGregorianDate converts d to its Gregorian calendar date.
// An unset d returns ErrUnset; it never falls back to the current date.
func (d Date) ToGregorianDate() (calendar.Gregorian, error) {
	if !d.valid {
		return calendar.Gregorian{}, ErrUnset
	}
	offset, err := calendar.DaysFromNewYear(d.year, d.month, d.day)
	if err != nil {
		return calendar.Gregorian{}, err
	}
	newYear, err := calendar.NewYearGregorianDate(d.year)
	if err != nil {
		return calendar.Gregorian{}, err
	}
	return calendar.AddDays(newYear, offset-1), nil
}

// ToGregorian converts d to midnight UTC of its Gregorian date.
func (d Date) ToGregorian() (time.Time, error) {
	g, err := d.ToGregorianDate()
	if err != nil {
		return time.Time{}, err
	}
	return g.Time(), nil
}

// ToGregorian converts the Date described by src. Text that does not parse and
// empty sources return ErrUnset.
func ToGregorian(src Source) (time.Time, error) {
	return New(src).ToGregorian()
}
