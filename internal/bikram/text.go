package bikram

import (
	"fmt"

	"github.com/tartampluch/go-bikram-sambat/internal/config"
	"github.com/tartampluch/go-bikram-sambat/internal/format"
	"github.com/tartampluch/go-bikram-sambat/internal/locale"
)

// String returns "YYYY-MM-DD", or "Invalid Date" for an unset date.
func (d Date) String() string {
	if !d.valid {
		return config.InvalidDate
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Format renders d through template with Nepali names.
func (d Date) Format(template string) string {
	return format.Format(d, template, locale.Default)
}

// FormatLang renders d through template with names in lang.
func (d Date) FormatLang(template string, lang locale.Lang) string {
	return format.Format(d, template, lang)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The invalid marker
// decodes to an unset date; other unparsable text is an error.
func (d *Date) UnmarshalText(b []byte) error {
	s := string(b)
	if s == config.InvalidDate {
		*d = Date{}
		return nil
	}
	parsed := Parse(s)
	if !parsed.IsValid() {
		return fmt.Errorf("%s: %q", config.ErrBSDateParse, s)
	}
	*d = parsed
	return nil
}
