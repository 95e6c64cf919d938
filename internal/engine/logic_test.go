package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-bikram-sambat/internal/bikram"
)

func bs(t *testing.T, y, m, d int) bikram.Date {
	t.Helper()
	date, err := bikram.Of(y, m, d)
	require.NoError(t, err)
	return date
}

// TestCalculateNextOccurrence covers the BS year boundary and the 32nd day clamp.
func TestCalculateNextOccurrence(t *testing.T) {
	today := bs(t, 2082, 2, 19)

	tests := []struct {
		name      string
		birth     bikram.Date
		yearKnown bool
		want      string
		wantAge   int
	}{
		{"already passed this year", bs(t, 2050, 1, 1), true, "2083-01-01", 33},
		{"later this year", bs(t, 2050, 12, 30), true, "2082-12-30", 32},
		{"today", bs(t, 2050, 2, 19), true, "2082-02-19", 32},
		{"year unknown", bs(t, 2050, 5, 5), false, "2082-05-05", 0},
		{"32nd day clamped in a 31 day month", bs(t, 2075, 3, 32), true, "2082-03-31", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, age := calculateNextOccurrence(today, tt.birth, tt.yearKnown)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.wantAge, age)
		})
	}
}

func TestCalculateNextOccurrence_LeavesTable(t *testing.T) {
	got, age := calculateNextOccurrence(bs(t, 2090, 6, 1), bs(t, 2050, 1, 1), true)
	assert.False(t, got.IsValid(), "2091 is not tabulated")
	assert.Equal(t, 0, age)
}

func TestOccurrence_DoesNotMutateBirth(t *testing.T) {
	birth := bs(t, 2075, 3, 32)
	occ := occurrence(birth, 2082)
	assert.Equal(t, "2082-03-31", occ.String())
	assert.Equal(t, "2075-03-32", birth.String())
}

func TestParseDate(t *testing.T) {
	d, known, err := parseDate("--0229")
	require.NoError(t, err)
	assert.False(t, known)
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, 29, d.Day())

	_, _, err = parseDate("garbage")
	assert.Error(t, err)
}
