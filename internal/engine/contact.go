package engine

import (
	"time"

	"github.com/tartampluch/go-bikram-sambat/internal/bikram"
)

// BirthdayEntry is a contact with a birthday, resolved to the Bikram Sambat calendar.
type BirthdayEntry struct {
	// UID is a name based UUID, stable across syncs.
	UID string

	Name string

	// DateOfBirth is the Gregorian BDAY as read from the vCard.
	DateOfBirth time.Time

	// BSDateOfBirth is DateOfBirth in Bikram Sambat. For vCards without a year
	// it is the BS date of the Gregorian month/day in the current year.
	BSDateOfBirth bikram.Date

	// YearKnown is false for --MM-DD vCard dates.
	YearKnown bool

	// NextOccurrence is the next BS birthday on or after today.
	NextOccurrence bikram.Date

	// AgeNext is the age in BS years at NextOccurrence. Zero when YearKnown is false.
	AgeNext int
}
