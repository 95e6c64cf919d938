// Package engine turns vCard birthdays into a Bikram Sambat iCalendar feed.
//
// Birthdays recur on the same BS month and day every BS year, so their
// Gregorian dates move from year to year. The generator converts each BDAY to
// BS, projects it onto the previous, current and next BS years and converts
// every occurrence back to a Gregorian all-day event.
package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-vcard"
	"github.com/google/uuid"
	"github.com/tartampluch/go-bikram-sambat/internal/bikram"
	"github.com/tartampluch/go-bikram-sambat/internal/config"
	"github.com/tartampluch/go-bikram-sambat/internal/locale"
)

// SyncConfig contains all parameters required to perform a synchronization.
type SyncConfig struct {
	Mode            string // config.SourceModeLocal or config.SourceModeWeb
	LocalPath       string // Absolute path to the .vcf file
	WebURL          string // CardDAV or WebDAV URL
	WebUser         string // HTTP Basic Auth Username
	WebPass         string // HTTP Basic Auth Password
	ReminderTrigger string // ISO8601 duration string (e.g., "-P1D")

	// IncludeMonthStarts adds an event on the first day of every BS month.
	IncludeMonthStarts bool
}

// Generator is the core service responsible for fetching and converting data.
type Generator struct {
	Clock   Clock        // Interface for time mocking.
	Fetcher VCardFetcher // Interface for network abstraction.

	// FormatSummary lets the caller inject localized birthday summaries.
	FormatSummary func(name string, age int, yearKnown bool) string

	// FormatMonthStart lets the caller inject localized month start summaries.
	FormatMonthStart func(month *locale.Month, year int) string
}

// uidSpace is the UUID namespace all event UIDs are derived from.
var uidSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte(config.UIDNamespace))

type syncStats struct{ processed, withBday, skipped, today, events int }

// RunSync executes the fetching, parsing, and generation pipeline.
// It returns the ICS data, the list of contacts, the count of birthdays today, and any error.
func (g *Generator) RunSync(ctx context.Context, cfg SyncConfig) ([]byte, []BirthdayEntry, int, error) {
	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyMode, cfg.Mode,
	)
	log.InfoContext(ctx, config.MsgSyncStarted)

	var reader io.ReadCloser
	if cfg.Mode != config.SourceModeNone || !cfg.IncludeMonthStarts {
		r, err := g.acquireStream(ctx, cfg)
		if err != nil {
			if ctx.Err() != nil {
				return nil, nil, 0, ctx.Err()
			}
			return nil, nil, 0, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
		}
		reader = r
		defer func() { _ = reader.Close() }()
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, 0, err
	}

	ics, contacts, count, err := g.generateCalendar(ctx, reader, cfg)
	if err == nil {
		log.Debug(config.MsgSyncFinished, config.LogKeyDuration, time.Since(start).Milliseconds())
	}
	return ics, contacts, count, err
}

// acquireStream opens the appropriate data source based on configuration.
func (g *Generator) acquireStream(ctx context.Context, cfg SyncConfig) (io.ReadCloser, error) {
	switch cfg.Mode {
	case config.SourceModeLocal:
		if cfg.LocalPath == "" {
			return nil, errors.New(config.ErrLocalPathEmpty)
		}
		return os.Open(cfg.LocalPath)
	case config.SourceModeWeb:
		if cfg.WebURL == "" {
			return nil, errors.New(config.ErrWebURLEmpty)
		}
		if g.Fetcher == nil {
			return nil, errors.New(config.ErrFetcherMissing)
		}
		return g.Fetcher.Fetch(ctx, cfg.WebURL, cfg.WebUser, cfg.WebPass)
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrModeUnsupport, cfg.Mode)
	}
}

// generateCalendar builds the calendar from r, which may be nil when only
// month starts are requested.
func (g *Generator) generateCalendar(ctx context.Context, r io.Reader, cfg SyncConfig) ([]byte, []BirthdayEntry, int, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	// "Today" is the local calendar date; only DTSTAMP is in UTC.
	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	today := bikram.FromTime(now)
	if !today.IsValid() {
		return nil, nil, 0, today.Err()
	}

	var stats syncStats
	var contacts []BirthdayEntry
	add := func(events []*ical.Event) {
		for _, e := range events {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
		stats.events += len(events)
	}

	if r != nil {
		decoder := vcard.NewDecoder(r)
		for {
			if ctx.Err() != nil {
				return nil, nil, 0, ctx.Err()
			}

			card, err := decoder.Decode()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				// Keep going: one broken card must not hide the others.
				slog.Warn(config.MsgSkippedCard,
					config.LogKeyComponent, config.CompEngine,
					config.LogKeyError, err)
				continue
			}

			stats.processed++
			entry, ok := g.readBirthday(card, now, today)
			if !ok {
				continue
			}
			stats.withBday++
			if !entry.BSDateOfBirth.IsValid() {
				stats.skipped++
				continue
			}
			contacts = append(contacts, entry)

			events, isToday := g.createEvents(entry, today, cfg.ReminderTrigger)
			if isToday {
				stats.today++
				slog.Info(config.MsgBdayToday,
					config.LogKeyComponent, config.CompEngine,
					config.LogKeyName, entry.Name,
					config.LogKeyBSDOB, entry.BSDateOfBirth.String())
			}
			add(events)
		}
	}

	if cfg.IncludeMonthStarts {
		add(g.createMonthStarts(today))
	}

	if len(cal.Children) == 0 {
		// An empty VCALENDAR would be rejected by clients, so serve the stub.
		var buf bytes.Buffer
		buf.WriteString(config.StubVCalendar)
		g.logSuccess(stats)
		return buf.Bytes(), contacts, 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	g.logSuccess(stats)
	return buf.Bytes(), contacts, stats.today, nil
}

// readBirthday extracts the contact of card. It reports false when the card
// has no usable BDAY. A BDAY outside the BS table yields an entry with an
// unset BSDateOfBirth.
func (g *Generator) readBirthday(card vcard.Card, now time.Time, today bikram.Date) (BirthdayEntry, bool) {
	bday := card.Get(config.VCardBDAY)
	if bday == nil || bday.Value == "" {
		return BirthdayEntry{}, false
	}

	birthDate, yearKnown, err := parseDate(bday.Value)
	if err != nil {
		slog.Debug(config.MsgSkippedDate,
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyValue, bday.Value)
		return BirthdayEntry{}, false
	}

	// Name Strategy: FN (Formatted) > N (Structured) > Fallback
	name := config.FallbackName
	if fn := card.Get(config.VCardFN); fn != nil {
		name = fn.Value
	} else if n := card.Get(config.VCardN); n != nil {
		name = n.Value
	}

	// Without a year the BS month/day depends on which Gregorian year is used;
	// take the current one.
	anchor := birthDate
	if !yearKnown {
		anchor = time.Date(now.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, now.Location())
	}

	bs := bikram.FromTime(anchor)
	entry := BirthdayEntry{
		UID:           contactUID(name, birthDate, yearKnown),
		Name:          name,
		DateOfBirth:   birthDate,
		BSDateOfBirth: bs,
		YearKnown:     yearKnown,
	}
	if !bs.IsValid() {
		slog.Warn(config.MsgSkippedRange,
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyName, name,
			config.LogKeyDOB, birthDate.Format(config.DateFormatFullDash),
			config.LogKeyError, bs.Err())
		return entry, true
	}

	entry.NextOccurrence, entry.AgeNext = calculateNextOccurrence(today, bs, yearKnown)
	return entry, true
}

func (g *Generator) logSuccess(stats syncStats) {
	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompEngine,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.processed),
			slog.Int(config.LogKeyFound, stats.withBday),
			slog.Int(config.LogKeySkipped, stats.skipped),
			slog.Int(config.LogKeyToday, stats.today),
			slog.Int(config.LogKeyEvents, stats.events),
		),
	)
}

// occurrence returns the birthday of bsBirth in BS year y. A 32nd day is
// clamped to the length of the month in y. The result is unset when y is
// outside the table.
func occurrence(bsBirth bikram.Date, y int) bikram.Date {
	d := bsBirth.Copy()
	d.AddYears(y - bsBirth.Year())
	return d
}

// calculateNextOccurrence returns the first birthday on or after today and
// the age reached on it.
func calculateNextOccurrence(today, bsBirth bikram.Date, yearKnown bool) (bikram.Date, int) {
	candidate := occurrence(bsBirth, today.Year())
	if candidate.IsValid() && candidate.Before(today) {
		candidate = occurrence(bsBirth, today.Year()+1)
	}

	ageNext := 0
	if yearKnown && candidate.IsValid() {
		ageNext = candidate.Year() - bsBirth.Year()
	}
	return candidate, ageNext
}

// createEvents generates birthday events for the previous, current and next
// BS years. No event is created before the person is born.
func (g *Generator) createEvents(entry BirthdayEntry, today bikram.Date, reminderTrigger string) ([]*ical.Event, bool) {
	var events []*ical.Event
	isToday := false

	bsBirth := entry.BSDateOfBirth
	for _, y := range []int{today.Year() - 1, today.Year(), today.Year() + 1} {
		if entry.YearKnown && y < bsBirth.Year() {
			continue
		}

		occ := occurrence(bsBirth, y)
		start, err := occ.ToGregorian()
		if err != nil {
			continue
		}
		if occ.Equal(today) {
			isToday = true
		}

		age := 0
		if entry.YearKnown {
			age = y - bsBirth.Year()
		}

		summary := fmt.Sprintf(config.FallbackSummary, entry.Name)
		if g.FormatSummary != nil {
			summary = g.FormatSummary(entry.Name, age, entry.YearKnown)
		}

		event := newDayEvent(eventUID(entry.UID, config.CategoryBirthday, y), summary, config.CategoryBirthday, start)
		event.Props.SetText(config.PropDescription, occ.FormatLang(config.BSFormatLong, locale.English))
		if reminderTrigger != "" {
			addAlarm(event, reminderTrigger, summary)
		}
		events = append(events, event)
	}
	return events, isToday
}

// createMonthStarts generates an event on 1 <month> of every month of the
// previous, current and next BS years.
func (g *Generator) createMonthStarts(today bikram.Date) []*ical.Event {
	var events []*ical.Event
	for _, y := range []int{today.Year() - 1, today.Year(), today.Year() + 1} {
		for m := 1; m <= 12; m++ {
			first, err := bikram.Of(y, m, 1)
			if err != nil {
				continue
			}
			start, err := first.ToGregorian()
			if err != nil {
				continue
			}

			month := locale.MonthAt(m)
			summary := fmt.Sprintf(config.FallbackMonthStart, month.English, y)
			if m == 1 {
				summary = fmt.Sprintf(config.FallbackNewYear, y)
			}
			if g.FormatMonthStart != nil {
				summary = g.FormatMonthStart(month, y)
			}

			uid := eventUID(first.String(), config.CategoryMonthStart, y)
			events = append(events, newDayEvent(uid, summary, config.CategoryMonthStart, start))
		}
	}
	return events
}

func newDayEvent(uid, summary, category string, start time.Time) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, uid)
	event.Props.SetText(config.PropSummary, summary)
	event.Props.SetText(config.PropCategories, category)

	dtStartProp := ical.NewProp(config.PropDTStart)
	dtStartProp.SetDate(start)
	event.Props.Set(dtStartProp)
	return event
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}

func contactUID(name string, birthDate time.Time, yearKnown bool) string {
	dob := birthDate.Format(config.DateFormatFullDash)
	if !yearKnown {
		dob = birthDate.Format(config.DateFormatNoYearD)
	}
	return uuid.NewSHA1(uidSpace, []byte(name+"|"+dob)).String()
}

func eventUID(base, kind string, bsYear int) string {
	id := uuid.NewSHA1(uidSpace, []byte(fmt.Sprintf(config.FormatUIDName, base, kind, bsYear)))
	return fmt.Sprintf(config.FormatUID, id, config.ICalDomain)
}

// parseDate handles various vCard date formats.
func parseDate(value string) (time.Time, bool, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, true, nil
		}
	}

	// --MM-DD; anchored on a leap year so that --02-29 parses.
	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			return time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), false, nil
		}
	}

	return time.Time{}, false, errors.New(config.ErrDateParse)
}
