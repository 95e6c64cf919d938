package calendar

import (
	"testing"
	"time"
)

func BenchmarkNewYearDateInfo_Early(b *testing.B) {
	d := Gregorian{1950, time.June, 1}
	for i := 0; i < b.N; i++ {
		_, _, _ = NewYearDateInfo(d)
	}
}

func BenchmarkNewYearDateInfo_Late(b *testing.B) {
	d := Gregorian{2033, time.June, 1}
	for i := 0; i < b.N; i++ {
		_, _, _ = NewYearDateInfo(d)
	}
}

func BenchmarkDaysFromNewYear(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = DaysFromNewYear(2081, 12, 30)
	}
}

func BenchmarkAddDays(b *testing.B) {
	d := Gregorian{2024, time.April, 13}
	for i := 0; i < b.N; i++ {
		AddDays(d, 1000)
	}
}
