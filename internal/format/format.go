// Package format renders Bikram Sambat dates through a token template.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/tartampluch/go-bikram-sambat/internal/config"
	"github.com/tartampluch/go-bikram-sambat/internal/locale"
)

// Value is what the formatter needs from a date.
type Value interface {
	IsValid() bool
	Year() int
	Month() int
	Day() int
	DayOfWeek() (time.Weekday, error)
}

// Template tokens, longest first so that YYYY never matches as YY + YY.
const (
	TokenYear4    = "YYYY"
	TokenYear3    = "YYY"
	TokenYear2    = "YY"
	TokenMonthStr = "MMMM"
	TokenMonth    = "MM"
	TokenDay      = "DD"
	TokenWeekday  = "dddd"
)

var tokens = []string{TokenYear4, TokenYear3, TokenYear2, TokenMonthStr, TokenMonth, TokenDay, TokenWeekday}

// Format substitutes the tokens of template with the fields of v. Names are
// taken from the lang tables. An invalid v yields config.InvalidDate.
func Format(v Value, template string, lang locale.Lang) string {
	if v == nil || !v.IsValid() {
		return config.InvalidDate
	}
	month := locale.MonthAt(v.Month())
	if month == nil {
		return config.InvalidDate
	}

	var b strings.Builder
	for i := 0; i < len(template); {
		tok := matchToken(template[i:])
		if tok == "" {
			b.WriteByte(template[i])
			i++
			continue
		}

		switch tok {
		case TokenYear4:
			fmt.Fprintf(&b, "%04d", v.Year())
		case TokenYear3:
			fmt.Fprintf(&b, "%03d", v.Year()%1000)
		case TokenYear2:
			fmt.Fprintf(&b, "%02d", v.Year()%100)
		case TokenMonthStr:
			b.WriteString(month.Name(lang))
		case TokenMonth:
			fmt.Fprintf(&b, "%02d", v.Month())
		case TokenDay:
			fmt.Fprintf(&b, "%02d", v.Day())
		case TokenWeekday:
			wd, err := v.DayOfWeek()
			if err != nil {
				return config.InvalidDate
			}
			b.WriteString(locale.WeekdayAt(wd).Name(lang))
		}
		i += len(tok)
	}
	return b.String()
}

func matchToken(s string) string {
	for _, tok := range tokens {
		if strings.HasPrefix(s, tok) {
			return tok
		}
	}
	return ""
}
