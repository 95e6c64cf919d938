// Package parse recognizes the textual Bikram Sambat date layouts.
//
// It only splits text into numbers; whether a day exists in a given month
// of a given year is decided by the calendar tables, not here.
package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tartampluch/go-bikram-sambat/internal/locale"
)

// Layout names the pattern that matched.
type Layout string

const (
	LayoutNone        Layout = ""
	LayoutYear        Layout = "YYYY"
	LayoutYearMonth   Layout = "YYYY-MM"
	LayoutYearMonthDy Layout = "YYYY-MM-DD"
	LayoutDayNameYear Layout = "DD-MMMM-YYYY"
	LayoutDayMonthYr  Layout = "DD-MM-YYYY"
	LayoutMonthDay    Layout = "MM-DD"
)

// Fields is the result of a successful parse.
// Month and Day default to 1 when the layout omits them. HasYear is false
// for MM-DD, in which case Year is 0 and the caller supplies it.
type Fields struct {
	Year    int
	Month   int
	Day     int
	HasYear bool
	Layout  Layout
}

const (
	maxMonth = 12
	maxDay   = 32
	century  = 2000
)

const sep = `[-/ ]`

var (
	reYMD = regexp.MustCompile(`^(\d{2,4})` + sep + `(\d{1,2})` + sep + `(\d{1,2})$`)
	reDMY = regexp.MustCompile(`^(\d{1,2})` + sep + `(\d{1,2})` + sep + `(\d{4})$`)
	reDNY = regexp.MustCompile(`^(\d{1,2})` + sep + `+([\p{L}\p{M}]+)[-/ ,]+(\d{2,4})$`)
	reYM  = regexp.MustCompile(`^(\d{3,4})` + sep + `(\d{1,2})$`)
	reMD  = regexp.MustCompile(`^(\d{1,2})` + sep + `(\d{1,2})$`)
	reY   = regexp.MustCompile(`^(\d{2,4})$`)
)

// Parse extracts year, month and day from text. It reports false when no
// layout matches or a number is out of its general range.
func Parse(text string) (Fields, bool) {
	s := strings.TrimSpace(locale.ASCIIDigits(text))
	if s == "" {
		return Fields{}, false
	}

	var f Fields
	switch {
	case reDNY.MatchString(s):
		m := reDNY.FindStringSubmatch(s)
		month, ok := locale.LookupMonth(m[2])
		if !ok {
			return Fields{}, false
		}
		f = Fields{Year: year(m[3]), Month: month, Day: atoi(m[1]), HasYear: true, Layout: LayoutDayNameYear}
	case reDMY.MatchString(s):
		m := reDMY.FindStringSubmatch(s)
		f = Fields{Year: year(m[3]), Month: atoi(m[2]), Day: atoi(m[1]), HasYear: true, Layout: LayoutDayMonthYr}
	case reYMD.MatchString(s):
		m := reYMD.FindStringSubmatch(s)
		f = Fields{Year: year(m[1]), Month: atoi(m[2]), Day: atoi(m[3]), HasYear: true, Layout: LayoutYearMonthDy}
	case reYM.MatchString(s):
		m := reYM.FindStringSubmatch(s)
		f = Fields{Year: year(m[1]), Month: atoi(m[2]), Day: 1, HasYear: true, Layout: LayoutYearMonth}
	case reMD.MatchString(s):
		m := reMD.FindStringSubmatch(s)
		f = Fields{Month: atoi(m[1]), Day: atoi(m[2]), Layout: LayoutMonthDay}
	case reY.MatchString(s):
		f = Fields{Year: year(s), Month: 1, Day: 1, HasYear: true, Layout: LayoutYear}
	default:
		return Fields{}, false
	}

	if f.Month < 1 || f.Month > maxMonth || f.Day < 1 || f.Day > maxDay {
		return Fields{}, false
	}
	return f, true
}

// year expands two and three digit years into the 2000s ("77" and "077" are 2077).
func year(s string) int {
	n := atoi(s)
	if len(s) < 4 {
		n = century + n%1000
	}
	return n
}

// atoi is only called on regexp-validated digit runs.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
