package bikram_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-bikram-sambat/internal/bikram"
	"github.com/tartampluch/go-bikram-sambat/internal/calendar"
	"github.com/tartampluch/go-bikram-sambat/internal/config"
)

func mustOf(t *testing.T, y, m, d int) bikram.Date {
	t.Helper()
	date, err := bikram.Of(y, m, d)
	require.NoError(t, err)
	return date
}

func TestOf(t *testing.T) {
	d := mustOf(t, 2075, 3, 32)
	assert.True(t, d.IsValid())
	assert.Equal(t, 2075, d.Year())
	assert.Equal(t, 3, d.Month())
	assert.Equal(t, 32, d.Day())

	tests := []struct {
		name       string
		y, m, d    int
		outOfRange bool
	}{
		{"day zero", 2077, 1, 0, false},
		{"day past month end", 2075, 4, 32, false},
		{"month zero", 2077, 0, 1, true},
		{"month thirteen", 2077, 13, 1, true},
		{"year before table", 1999, 1, 1, true},
		{"year after table", 2091, 1, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bikram.Of(tt.y, tt.m, tt.d)
			require.Error(t, err)
			assert.Equal(t, tt.outOfRange, errors.Is(err, calendar.ErrOutOfRange))
			assert.False(t, bikram.IsValidDay(tt.y, tt.m, tt.d))
		})
	}
}

func TestUnsetDate(t *testing.T) {
	var d bikram.Date

	assert.False(t, d.IsValid())
	assert.Equal(t, bikram.Unset, d.Year())
	assert.Equal(t, bikram.Unset, d.Month())
	assert.Equal(t, bikram.Unset, d.Day())
	assert.Equal(t, bikram.Unset, d.DaysInMonth())
	assert.Equal(t, bikram.Unset, d.DaysInYear())
	assert.Equal(t, bikram.Unset, d.DayOfYear())
	assert.False(t, d.IsLeapYear())
	assert.Nil(t, d.PreviousMonth())
	assert.Nil(t, d.NextMonth())
	assert.Equal(t, config.InvalidDate, d.String())
	assert.Equal(t, config.InvalidDate, d.Format("YYYY-MM-DD"))
	assert.NoError(t, d.Err())

	_, err := d.ToGregorian()
	assert.ErrorIs(t, err, bikram.ErrUnset, "Unset dates must not convert to the current date")
	_, err = d.DayOfWeek()
	assert.ErrorIs(t, err, bikram.ErrUnset)

	d.AddDays(10).AddMonths(2).AddYears(1)
	assert.False(t, d.IsValid(), "Arithmetic on an unset date is a no-op")
}

func TestNew_Sources(t *testing.T) {
	assert.Equal(t, "2077-01-01", bikram.New(bikram.FromText("2077-01-01")).String())
	assert.False(t, bikram.New(bikram.FromText("hello")).IsValid())
	assert.False(t, bikram.New(bikram.Empty()).IsValid())

	orig := mustOf(t, 2080, 4, 15)
	cp := bikram.New(bikram.FromExisting(orig))
	cp.AddDays(1)
	assert.Equal(t, "2080-04-15", orig.String(), "Source copies must be independent")
	assert.Equal(t, "2080-04-16", cp.String())
}

func TestParse(t *testing.T) {
	defer bikram.SetNow(func() time.Time {
		return time.Date(2024, time.April, 13, 9, 0, 0, 0, time.UTC)
	})()

	tests := []struct {
		in   string
		want string
	}{
		{"2077-01-01", "2077-01-01"},
		{"२०७७-०१-०१", "2077-01-01"},
		{"77-1-1", "2077-01-01"},
		{"2077", "2077-01-01"},
		{"2077/04", "2077-04-01"},
		{"15 Shrawan 2080", "2080-04-15"},
		{"05-03-2080", "2080-03-05"},
		{"05-10", "2081-05-10"},
		{"2075-03-32", "2075-03-32"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d := bikram.Parse(tt.in)
			require.True(t, d.IsValid())
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "hello", "2075-04-32", "2077-13-01", "1999-01-01", "2091-01-01", "2077-02-33"} {
		t.Run(in, func(t *testing.T) {
			d := bikram.Parse(in)
			assert.False(t, d.IsValid(), "Invalid text must give an unset date, never a partial one")
			assert.Equal(t, bikram.Unset, d.Year())
		})
	}
}

func TestToGregorian_KnownDates(t *testing.T) {
	tests := []struct {
		bs      string
		ad      string
		weekday time.Weekday
	}{
		{"2000-01-01", "1943-04-14", time.Wednesday},
		{"2077-01-01", "2020-04-13", time.Monday},
		{"2081-01-01", "2024-04-13", time.Saturday},
		{"2082-01-01", "2025-04-14", time.Monday},
		{"2090-12-30", "2034-04-13", time.Thursday},
	}
	for _, tt := range tests {
		t.Run(tt.bs, func(t *testing.T) {
			d := bikram.Parse(tt.bs)
			require.True(t, d.IsValid())

			got, err := d.ToGregorian()
			require.NoError(t, err)
			assert.Equal(t, tt.ad, got.Format(config.DateFormatFullDash))
			assert.Equal(t, time.UTC, got.Location())

			wd, err := d.DayOfWeek()
			require.NoError(t, err)
			assert.Equal(t, tt.weekday, wd)

			back := bikram.ToBikramSambat(bikram.ADText(tt.ad))
			assert.Equal(t, tt.bs, back.String())
		})
	}
}

func TestToGregorian_Static(t *testing.T) {
	got, err := bikram.ToGregorian(bikram.FromText("2077-01-01"))
	require.NoError(t, err)
	assert.Equal(t, "2020-04-13", got.Format(config.DateFormatFullDash))

	_, err = bikram.ToGregorian(bikram.FromText("garbage"))
	assert.ErrorIs(t, err, bikram.ErrUnset)
	_, err = bikram.ToGregorian(bikram.Empty())
	assert.ErrorIs(t, err, bikram.ErrUnset)
}

func TestToBikramSambat_Sources(t *testing.T) {
	assert.Equal(t, "2081-01-01", bikram.ToBikramSambat(bikram.AD(time.Date(2024, time.April, 13, 23, 59, 0, 0, time.UTC))).String())
	assert.Equal(t, "2081-01-01", bikram.ToBikramSambat(bikram.ADText("20240413")).String())
	assert.Equal(t, "2081-01-01", bikram.ToBikramSambat(bikram.ADText("2024-04-13T10:00:00+05:45")).String())
	assert.False(t, bikram.ToBikramSambat(bikram.NoAD()).IsValid())
	assert.False(t, bikram.ToBikramSambat(bikram.AD(time.Time{})).IsValid())
	assert.False(t, bikram.ToBikramSambat(bikram.ADText("not a date")).IsValid())
}

func TestToBikramSambat_OutOfRange(t *testing.T) {
	for _, ad := range []string{"1943-04-13", "2034-04-14"} {
		t.Run(ad, func(t *testing.T) {
			d := bikram.ToBikramSambat(bikram.ADText(ad))
			assert.False(t, d.IsValid())

			var lookup *calendar.LookupError
			require.ErrorAs(t, d.Err(), &lookup)
			assert.ErrorIs(t, d.Err(), calendar.ErrOutOfRange)
		})
	}
}

// TestRoundTrip_EveryDay converts every tabulated Gregorian day to BS and back,
// and checks that walking one day at a time in BS agrees with the conversion.
func TestRoundTrip_EveryDay(t *testing.T) {
	first, last := calendar.Bounds()

	walk := bikram.FromGregorian(first)
	require.Equal(t, "2000-01-01", walk.String())

	for g := first; !g.After(last); g = calendar.AddDays(g, 1) {
		d := bikram.FromGregorian(g)
		require.True(t, d.IsValid(), "day %s should be tabulated", g)
		require.True(t, d.Equal(walk), "walk diverged at %s: %s != %s", g, walk, d)

		back, err := d.ToGregorianDate()
		require.NoError(t, err)
		require.Equal(t, g, back)

		walk.AddDays(1)
	}

	assert.False(t, walk.IsValid(), "Stepping past the last day must leave the table")
	assert.ErrorIs(t, walk.Err(), calendar.ErrOutOfRange)
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		start string
		n     int
		want  string
	}{
		{"2077-01-01", 0, "2077-01-01"},
		{"2077-01-01", 1, "2077-01-02"},
		{"2077-01-31", 1, "2077-02-01"},
		{"2077-12-31", 1, "2078-01-01"},
		{"2078-01-01", -1, "2077-12-31"},
		{"2077-01-01", 365, "2077-12-31"},
		{"2077-01-01", 366, "2078-01-01"},
		{"2077-01-01", -365, "2076-01-01"},
		{"2075-03-32", 1, "2075-04-01"},
		{"2000-01-01", 1000, "2002-09-25"},
	}
	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			d := bikram.Parse(tt.start)
			require.True(t, d.IsValid())

			g0, err := d.ToGregorianDate()
			require.NoError(t, err)

			d.AddDays(tt.n)
			g1, err := d.ToGregorianDate()
			require.NoError(t, err)
			assert.Equal(t, tt.n, calendar.DaysBetween(g1, g0), "Gregorian distance must equal n")

			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestAddDays_LeavesTable(t *testing.T) {
	d := mustOf(t, 2000, 1, 1)
	d.AddDays(-1)
	assert.False(t, d.IsValid())
	assert.ErrorIs(t, d.Err(), calendar.ErrOutOfRange)

	d = mustOf(t, 2090, 12, 30)
	d.AddDays(1)
	assert.False(t, d.IsValid())
	assert.ErrorIs(t, d.Err(), calendar.ErrOutOfRange)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		start string
		n     int
		want  string
	}{
		{"2075-03-32", 1, "2075-04-31"},
		{"2077-01-15", 12, "2078-01-15"},
		{"2077-12-15", 1, "2078-01-15"},
		{"2077-01-15", -1, "2076-12-15"},
		{"2077-01-15", -13, "2075-12-15"},
		{"2077-05-10", 0, "2077-05-10"},
		{"2077-02-32", 7, "2077-09-29"},
	}
	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			d := bikram.Parse(tt.start)
			require.True(t, d.IsValid())
			assert.Equal(t, tt.want, d.AddMonths(tt.n).String())
		})
	}
}

func TestAddYears(t *testing.T) {
	d := mustOf(t, 2075, 3, 32)
	d.AddYears(1)
	assert.Equal(t, "2076-03-31", d.String(), "Day is clamped to the new month length")

	d = mustOf(t, 2090, 1, 1)
	d.AddYears(1)
	assert.False(t, d.IsValid())
	var lookup *calendar.LookupError
	require.ErrorAs(t, d.Err(), &lookup)
	assert.Equal(t, 2091, lookup.Year)
}

func TestQueries(t *testing.T) {
	d := mustOf(t, 2075, 3, 10)
	assert.Equal(t, 32, d.DaysInMonth())
	assert.Equal(t, 31+31+10, d.DayOfYear())
	assert.Equal(t, 365, d.DaysInYear())
	assert.False(t, d.IsLeapYear())

	prev := mustOf(t, 2081, 1, 5).PreviousMonth()
	require.NotNil(t, prev)
	assert.Equal(t, "Chaitra", prev.English)

	next := mustOf(t, 2081, 12, 5).NextMonth()
	require.NotNil(t, next)
	assert.Equal(t, "Baisakh", next.English)
}

func TestCompare(t *testing.T) {
	a := mustOf(t, 2077, 1, 1)
	b := mustOf(t, 2077, 1, 2)
	c := mustOf(t, 2078, 1, 1)

	assert.True(t, a.Before(b))
	assert.True(t, c.After(b))
	assert.True(t, a.Equal(a.Copy()))
	assert.Equal(t, -1, bikram.Date{}.Compare(a))
	assert.Equal(t, 1, a.Compare(bikram.Date{}))
	assert.Equal(t, 0, bikram.Date{}.Compare(bikram.Date{}))
}

func TestFormat(t *testing.T) {
	d := mustOf(t, 2077, 1, 1)
	assert.Equal(t, "2077-01-01", d.Format(config.BSFormatDefault))
	assert.Equal(t, "01 Baisakh 2077, Monday", d.FormatLang(config.BSFormatLong, "en"))
	assert.Equal(t, "01 बैशाख 2077, सोमबार", d.Format(config.BSFormatLong))
}

func TestTextMarshaling(t *testing.T) {
	type payload struct {
		Date bikram.Date `json:"date"`
	}

	raw, err := json.Marshal(payload{Date: mustOf(t, 2080, 4, 15)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2080-04-15"}`, string(raw))

	var p payload
	require.NoError(t, json.Unmarshal(raw, &p))
	assert.Equal(t, "2080-04-15", p.Date.String())

	raw, err = json.Marshal(payload{})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &p))
	assert.False(t, p.Date.IsValid())

	err = json.Unmarshal([]byte(`{"date":"2075-04-32"}`), &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrBSDateParse)
}

func TestMonthDays(t *testing.T) {
	days, err := bikram.MonthDays(2075, 3)
	require.NoError(t, err)
	require.Len(t, days, 32)
	assert.Equal(t, "2075-03-01", days[0].String())
	assert.Equal(t, "2075-03-32", days[31].String())

	_, err = bikram.MonthDays(2091, 1)
	assert.ErrorIs(t, err, calendar.ErrOutOfRange)
}

func TestParseStrict(t *testing.T) {
	_, err := bikram.ParseStrict("hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrBSDateParse)
	assert.NotErrorIs(t, err, calendar.ErrOutOfRange)

	_, err = bikram.ParseStrict("2095-01-01")
	assert.ErrorIs(t, err, calendar.ErrOutOfRange)

	_, err = bikram.ParseStrict("2075-04-32")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrDayRange)

	d, err := bikram.ParseStrict("2075-03-32")
	require.NoError(t, err)
	assert.Equal(t, "2075-03-32", d.String())
}
