// Package locale holds the static Bikram Sambat month and weekday name tables.
//
// Descriptors are stored 0-indexed; every exported accessor takes the
// 1-based month number used everywhere else and converts it in one place.
package locale

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Lang is a supported name-table language.
type Lang string

const (
	Nepali  Lang = "ne"
	English Lang = "en"

	// Default is used when no language, or an unknown one, is requested.
	Default = Nepali
)

var (
	supportedTags = []language.Tag{language.MustParse(string(Nepali)), language.MustParse(string(English))}
	supportedLang = []Lang{Nepali, English}
	matcher       = language.NewMatcher(supportedTags)
)

// Resolve maps a BCP 47 code ("ne-NP", "en_US", "EN") to a supported Lang.
// Empty, malformed or unsupported codes resolve to Default.
func Resolve(code string) Lang {
	code = strings.TrimSpace(strings.ReplaceAll(code, "_", "-"))
	if code == "" {
		return Default
	}
	tag, err := language.Parse(code)
	if err != nil {
		return Default
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default
	}
	return supportedLang[idx]
}

// Month describes one Bikram Sambat month.
type Month struct {
	Number    int    // 1..12
	English   string // Latin transliteration, e.g. "Baisakh"
	Nepali    string // Devanagari name, e.g. "बैशाख"
	Gregorian string // Approximate Gregorian span, e.g. "Apr/May"
}

// Name returns the month name in lang.
func (m Month) Name(lang Lang) string {
	if lang == English {
		return m.English
	}
	return m.Nepali
}

var months = [12]Month{
	{1, "Baisakh", "बैशाख", "Apr/May"},
	{2, "Jestha", "जेठ", "May/Jun"},
	{3, "Ashad", "असार", "Jun/Jul"},
	{4, "Shrawan", "साउन", "Jul/Aug"},
	{5, "Bhadra", "भदौ", "Aug/Sep"},
	{6, "Ashwin", "असोज", "Sep/Oct"},
	{7, "Kartik", "कार्तिक", "Oct/Nov"},
	{8, "Mangsir", "मंसिर", "Nov/Dec"},
	{9, "Poush", "पुस", "Dec/Jan"},
	{10, "Magh", "माघ", "Jan/Feb"},
	{11, "Falgun", "फागुन", "Feb/Mar"},
	{12, "Chaitra", "चैत", "Mar/Apr"},
}

// Alternative Latin spellings seen in the wild.
var monthAliases = map[string]int{
	"baishakh": 1, "baisakh": 1, "baishak": 1, "vaisakh": 1,
	"jestha": 2, "jeth": 2, "jyestha": 2,
	"ashad": 3, "asar": 3, "ashadh": 3, "asadh": 3,
	"shrawan": 4, "saun": 4, "srawan": 4, "sawan": 4,
	"bhadra": 5, "bhadau": 5, "bhadrapad": 5,
	"ashwin": 6, "asoj": 6, "aswin": 6,
	"kartik": 7, "kattik": 7,
	"mangsir": 8, "mansir": 8, "marga": 8,
	"poush": 9, "push": 9, "paush": 9, "pus": 9,
	"magh": 10,
	"falgun": 11, "phagun": 11, "phalgun": 11,
	"chaitra": 12, "chait": 12, "chaitr": 12,
}

// MonthAt returns the descriptor of month n (1..12), or nil.
func MonthAt(n int) *Month {
	if n < 1 || n > len(months) {
		return nil
	}
	m := months[n-1]
	return &m
}

// PreviousMonth returns the month before n, wrapping Baisakh to Chaitra.
func PreviousMonth(n int) *Month {
	if MonthAt(n) == nil {
		return nil
	}
	return MonthAt((n+10)%12 + 1)
}

// NextMonth returns the month after n, wrapping Chaitra to Baisakh.
func NextMonth(n int) *Month {
	if MonthAt(n) == nil {
		return nil
	}
	return MonthAt(n%12 + 1)
}

// LookupMonth finds a month number from an English or Nepali name.
// Matching is case-insensitive and accepts common transliterations.
func LookupMonth(name string) (int, bool) {
	name = strings.TrimSpace(name)
	for _, m := range months {
		if name == m.Nepali {
			return m.Number, true
		}
	}
	n, ok := monthAliases[strings.ToLower(name)]
	return n, ok
}

// MonthNames returns the twelve month names for the language code.
func MonthNames(code string) []string {
	lang := Resolve(code)
	names := make([]string, len(months))
	for i, m := range months {
		names[i] = m.Name(lang)
	}
	return names
}

// Weekday describes one day of the week.
type Weekday struct {
	Day     time.Weekday
	English string
	Nepali  string
}

// Name returns the weekday name in lang.
func (w Weekday) Name(lang Lang) string {
	if lang == English {
		return w.English
	}
	return w.Nepali
}

var weekdays = [7]Weekday{
	{time.Sunday, "Sunday", "आइतबार"},
	{time.Monday, "Monday", "सोमबार"},
	{time.Tuesday, "Tuesday", "मंगलबार"},
	{time.Wednesday, "Wednesday", "बुधबार"},
	{time.Thursday, "Thursday", "बिहिबार"},
	{time.Friday, "Friday", "शुक्रबार"},
	{time.Saturday, "Saturday", "शनिबार"},
}

// WeekdayAt returns the descriptor of d.
func WeekdayAt(d time.Weekday) Weekday {
	return weekdays[int(d)%len(weekdays)]
}

// WeekdayNames returns the seven weekday names, Sunday first.
func WeekdayNames(code string) []string {
	lang := Resolve(code)
	names := make([]string, len(weekdays))
	for i, w := range weekdays {
		names[i] = w.Name(lang)
	}
	return names
}

const devanagariZero = '०'

// Digits rewrites ASCII digits in s as Devanagari digits when lang is Nepali.
func Digits(s string, lang Lang) string {
	if lang != Nepali {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return devanagariZero + (r - '0')
		}
		return r
	}, s)
}

// ASCIIDigits rewrites Devanagari digits in s as ASCII digits.
func ASCIIDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= devanagariZero && r <= devanagariZero+9 {
			return '0' + (r - devanagariZero)
		}
		return r
	}, s)
}
