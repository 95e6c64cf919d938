// Package app runs the background side of bsdate: it regenerates the BS
// birthday calendar on a cron schedule and publishes it through the server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/robfig/cron/v3"

	"github.com/tartampluch/go-bikram-sambat/internal/config"
	"github.com/tartampluch/go-bikram-sambat/internal/engine"
	"github.com/tartampluch/go-bikram-sambat/internal/server"
)

// App wires settings, the generator and the calendar server together.
type App struct {
	Settings   *config.Settings
	I18nBundle *i18n.Bundle
	Localizer  *i18n.Localizer
	Ctx        context.Context

	Server  *server.CalendarServer
	Fetcher engine.VCardFetcher
	Clock   engine.Clock
	Keyring Keyring

	SupportedLanguages []string
	syncRequests       chan struct{}

	mu       sync.RWMutex
	contacts []engine.BirthdayEntry
	status   string
}

// New constructs the application with the real clock and the OS keyring.
func New(ctx context.Context, settings *config.Settings, srv *server.CalendarServer, fetcher engine.VCardFetcher) *App {
	return &App{
		Settings:           settings,
		Ctx:                ctx,
		Server:             srv,
		Fetcher:            fetcher,
		Clock:              engine.RealClock{},
		Keyring:            OSKeyring{},
		SupportedLanguages: config.SupportedLanguages,
		syncRequests:       make(chan struct{}, config.ChannelBufferSize),
	}
}

// Run starts the server and the sync worker and blocks until Ctx is done
// or one of them fails.
func (a *App) Run() error {
	a.SetupI18n()

	ctx, cancel := context.WithCancel(a.Ctx)
	defer cancel()

	errs := make(chan error, 2)
	go func() { errs <- a.Server.Start(ctx) }()
	go func() { errs <- a.backgroundWorker(ctx) }()

	err := <-errs
	cancel()
	if err2 := <-errs; err == nil {
		err = err2
	}
	if err == nil {
		slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompApp)
	}
	return err
}

// RequestSync asks the worker for an immediate sync. It never blocks; a
// request already pending absorbs this one.
func (a *App) RequestSync() {
	select {
	case a.syncRequests <- struct{}{}:
	default:
	}
}

// backgroundWorker syncs once, then on every tick of the cron schedule and
// on every RequestSync, until ctx is done.
func (a *App) backgroundWorker(ctx context.Context) error {
	log := slog.With(config.LogKeyComponent, config.CompWorker)

	schedule := a.Settings.Sync.Schedule
	if schedule == "" {
		schedule = config.DefaultSchedule
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { _ = a.performSync(ctx, false) }); err != nil {
		return fmt.Errorf("%s: %q: %w", config.ErrScheduleInvalid, schedule, err)
	}

	_ = a.performSync(ctx, false)

	c.Start()
	log.Info(config.MsgWorkerStart, config.LogKeySchedule, schedule)

	for {
		select {
		case <-ctx.Done():
			log.Info(config.MsgWorkerStop)
			<-c.Stop().Done()
			return nil
		case <-a.syncRequests:
			_ = a.performSync(ctx, true)
		}
	}
}

// performSync runs the generator and publishes its output.
func (a *App) performSync(ctx context.Context, manual bool) error {
	slog.Info(config.MsgSyncReq,
		config.LogKeyComponent, config.CompApp,
		config.LogKeyManual, manual)

	syncCtx, cancel := context.WithTimeout(ctx, config.SyncTimeout)
	defer cancel()

	gen := &engine.Generator{
		Clock:            a.Clock,
		Fetcher:          a.Fetcher,
		FormatSummary:    a.buildSummaryFormatter(),
		FormatMonthStart: a.buildMonthStartFormatter(),
	}

	icsData, contacts, countToday, err := gen.RunSync(syncCtx, a.loadSyncConfig())
	if err != nil {
		slog.Error(config.MsgSyncFailed, config.LogKeyError, err, config.LogKeyComponent, config.CompApp)
		a.mu.Lock()
		a.status = config.MsgSyncFailed
		a.mu.Unlock()
		return err
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].NextOccurrence.Before(contacts[j].NextOccurrence)
	})

	status := a.statusMessage(countToday)
	a.mu.Lock()
	a.contacts = contacts
	a.status = status
	a.mu.Unlock()

	a.Server.Update(icsData)
	slog.Info(config.MsgSyncFinished,
		config.LogKeyComponent, config.CompApp,
		config.LogKeyToday, countToday,
		config.LogKeyResult, status)
	return nil
}

// Contacts returns the contacts of the last successful sync, soonest
// birthday first.
func (a *App) Contacts() []engine.BirthdayEntry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]engine.BirthdayEntry, len(a.contacts))
	copy(out, a.contacts)
	return out
}

// Status returns the localized outcome of the last sync, or "" before the first one.
func (a *App) Status() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.status
}

// loadSyncConfig assembles the engine configuration from settings and the keyring.
func (a *App) loadSyncConfig() engine.SyncConfig {
	s := a.Settings
	return engine.SyncConfig{
		Mode:               s.Source.Mode,
		LocalPath:          s.Source.LocalPath,
		WebURL:             s.Source.WebURL,
		WebUser:            s.Source.WebUser,
		WebPass:            password(a.Keyring, s.Source.WebUser),
		ReminderTrigger:    s.Reminder.ReminderTrigger(),
		IncludeMonthStarts: s.Sync.MonthStarts,
	}
}
