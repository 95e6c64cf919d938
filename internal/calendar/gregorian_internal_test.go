package calendar

import (
	"testing"
	"time"
)

func TestJulianDayRoundTrip(t *testing.T) {
	t.Parallel()

	for jd := 2415021; jd < 2470000; jd += 3 {
		if got := fromJulianDay(jd).julianDay(); got != jd {
			t.Fatalf("fromJulianDay(%d).julianDay() = %d", jd, got)
		}
	}
	if got := (Gregorian{2000, time.January, 1}).julianDay(); got != 2451545 {
		t.Errorf("julianDay(2000-01-01) = %d, want 2451545", got)
	}
}
