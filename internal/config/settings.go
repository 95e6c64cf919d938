package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Settings is the runtime configuration of the bsdate binary.
// It is read from an optional settings file and BSDATE_* environment variables.
type Settings struct {
	Language string         `mapstructure:"language" validate:"required,oneof=ne en"`
	Server   ServerSettings `mapstructure:"server"`
	Source   SourceSettings `mapstructure:"source"`
	Sync     SyncSettings   `mapstructure:"sync"`
	Reminder ReminderConfig `mapstructure:"reminder"`
}

// ServerSettings configures the local HTTP server.
type ServerSettings struct {
	Port      int     `mapstructure:"port" validate:"min=1,max=65535"`
	Bind      string  `mapstructure:"bind" validate:"required,ip"`
	RateLimit float64 `mapstructure:"rate_limit" validate:"gt=0"`
	RateBurst int     `mapstructure:"rate_burst" validate:"min=1"`
}

// SourceSettings selects where contacts are read from.
type SourceSettings struct {
	Mode      string `mapstructure:"mode" validate:"omitempty,oneof=local web"`
	LocalPath string `mapstructure:"local_path" validate:"required_if=Mode local"`
	WebURL    string `mapstructure:"web_url" validate:"required_if=Mode web"`
	WebUser   string `mapstructure:"web_user"`
}

// SyncSettings controls the periodic calendar regeneration.
type SyncSettings struct {
	Schedule    string `mapstructure:"schedule" validate:"required"`
	MonthStarts bool   `mapstructure:"month_starts"`
}

// ReminderConfig describes the optional alarm attached to every event.
type ReminderConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Value     int    `mapstructure:"value" validate:"min=0"`
	Unit      string `mapstructure:"unit" validate:"oneof=d h m"`
	Direction string `mapstructure:"direction" validate:"oneof=before after"`
}

// LoadSettings reads settings from path (or the default search locations when
// path is empty), overlays BSDATE_* environment variables and validates them.
// A missing settings file is not an error.
func LoadSettings(path string) (*Settings, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(SettingsFileName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%s: %w", ErrSettingsRead, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrSettingsDecode, err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() *Settings {
	return &Settings{
		Language: DefaultLanguage,
		Server: ServerSettings{
			Port:      DefaultPort,
			Bind:      DefaultBind,
			RateLimit: DefaultRateLimit,
			RateBurst: DefaultRateBurst,
		},
		Sync: SyncSettings{Schedule: DefaultSchedule, MonthStarts: DefaultMonthStarts},
		Reminder: ReminderConfig{
			Value:     DefaultReminderValue,
			Unit:      UnitDays,
			Direction: DirBefore,
		},
	}
}

// Validate checks the struct tags of s.
func (s *Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("%s: %w", ErrSettingsInvalid, err)
	}
	return nil
}

// ReminderTrigger renders the reminder as an ISO8601 duration ("-P1D"),
// or "" when reminders are disabled.
func (r ReminderConfig) ReminderTrigger() string {
	if !r.Enabled {
		return ""
	}

	sign := ISOPeriodPrefix
	if r.Direction == DirBefore {
		sign = ISONegativePrefix
	}

	switch r.Unit {
	case UnitHours:
		return fmt.Sprintf("%sT%d%s", sign, r.Value, ISOHour)
	case UnitMinutes:
		return fmt.Sprintf("%sT%d%s", sign, r.Value, ISOMinute)
	default:
		return fmt.Sprintf("%s%d%s", sign, r.Value, ISODay)
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultSettings()

	v.SetDefault(KeyLanguage, d.Language)
	v.SetDefault(KeyServerPort, d.Server.Port)
	v.SetDefault(KeyServerBind, d.Server.Bind)
	v.SetDefault(KeyRateLimit, d.Server.RateLimit)
	v.SetDefault(KeyRateBurst, d.Server.RateBurst)
	v.SetDefault(KeySourceMode, d.Source.Mode)
	v.SetDefault(KeyLocalPath, d.Source.LocalPath)
	v.SetDefault(KeyWebURL, d.Source.WebURL)
	v.SetDefault(KeyWebUser, d.Source.WebUser)
	v.SetDefault(KeySchedule, d.Sync.Schedule)
	v.SetDefault(KeyMonthStarts, d.Sync.MonthStarts)
	v.SetDefault(KeyReminderEnabled, d.Reminder.Enabled)
	v.SetDefault(KeyReminderValue, d.Reminder.Value)
	v.SetDefault(KeyReminderUnit, d.Reminder.Unit)
	v.SetDefault(KeyReminderDir, d.Reminder.Direction)
}
