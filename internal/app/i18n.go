package app

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/tartampluch/go-bikram-sambat/internal/config"
	"github.com/tartampluch/go-bikram-sambat/internal/locale"
)

//go:embed locales/*.json
var localeFS embed.FS

// SetupI18n loads every embedded locales/active.<lang>.json into a bundle
// and selects the configured language.
func (a *App) SetupI18n() {
	bundle := i18n.NewBundle(language.Nepali)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return
	}

	var detectedLangs []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		detectedLangs = append(detectedLangs, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
		)
	}

	a.SupportedLanguages = detectedLangs
	a.I18nBundle = bundle
	a.UpdateLocalizer()
}

// UpdateLocalizer refreshes the translator from the configured language.
func (a *App) UpdateLocalizer() {
	a.Localizer = i18n.NewLocalizer(a.I18nBundle, string(a.lang()))
}

// lang is the configured language resolved against the name tables.
func (a *App) lang() locale.Lang {
	if a.Settings == nil {
		return locale.Default
	}
	return locale.Resolve(a.Settings.Language)
}

// GetMsg is a helper to translate a key safely.
func (a *App) GetMsg(key string) string {
	return a.localize(key, nil, nil, key)
}

// localize renders key, or returns fallback when the localizer is missing
// or the key is not translated.
func (a *App) localize(key string, data map[string]any, plural any, fallback string) string {
	if a.Localizer == nil {
		return fallback
	}
	msg, err := a.Localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
		PluralCount:  plural,
	})
	if err != nil || msg == "" {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return fallback
	}
	return msg
}

// number renders n with the digits of the configured language.
func (a *App) number(n int) string {
	return locale.Digits(strconv.Itoa(n), a.lang())
}

// buildSummaryFormatter returns a closure that localizes birthday summaries.
func (a *App) buildSummaryFormatter() func(name string, age int, yearKnown bool) string {
	return func(name string, age int, yearKnown bool) string {
		switch {
		case !yearKnown:
			return a.localize(config.TKeyEvtSummary,
				map[string]any{"Name": name}, nil,
				fmt.Sprintf(config.FallbackSummary, name))
		case age == 0:
			return a.localize(config.TKeyEvtSummaryBirth,
				map[string]any{"Name": name}, nil,
				fmt.Sprintf(config.FallbackSummaryBirth, name))
		default:
			return a.localize(config.TKeyEvtSummaryAge,
				map[string]any{"Name": name, "Age": a.number(age)}, nil,
				fmt.Sprintf(config.FallbackSummaryAge, name, age))
		}
	}
}

// buildMonthStartFormatter returns a closure that names month start events,
// using the New Year message for Baisakh.
func (a *App) buildMonthStartFormatter() func(month *locale.Month, year int) string {
	return func(month *locale.Month, year int) string {
		if month.Number == 1 {
			return a.localize(config.TKeyEvtNewYear,
				map[string]any{"Year": a.number(year)}, nil,
				fmt.Sprintf(config.FallbackNewYear, year))
		}
		return a.localize(config.TKeyEvtMonthStart,
			map[string]any{"Month": month.Name(a.lang()), "Year": a.number(year)}, nil,
			fmt.Sprintf(config.FallbackMonthStart, month.English, year))
	}
}

// statusMessage renders the number of birthdays found today.
func (a *App) statusMessage(count int) string {
	if count == 0 {
		return a.localize(config.TKeySyncStatusZero, nil, nil, fmt.Sprintf(config.FallbackSyncStatus, 0))
	}
	return a.localize(config.TKeySyncStatus,
		map[string]any{"Count": a.number(count)}, count,
		fmt.Sprintf(config.FallbackSyncStatus, count))
}
