package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "BS-Date/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "bsdate"
	AppID             = "com.github.tartampluch.go-bikram-sambat"
	KeyringService    = "com.github.tartampluch.go-bikram-sambat"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
	SettingsFileName  = "bsdate"
	EnvPrefix         = "BSDATE"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagConfig       = "config"
	FlagDebug        = "debug"
	FlagLang         = "lang"
	FlagFormat       = "format"
	FlagYears        = "years"
	FlagMonths       = "months"
	FlagDays         = "days"
	FlagPort         = "port"
	FlagUser         = "user"
	FlagPassword     = "password"
	FlagDescConfig   = "Path to a settings file (yaml or toml)"
	FlagDescDebug    = "Enable debug logging"
	FlagDescLang     = "Language for month and weekday names (ne, en)"
	FlagDescFormat   = "Output template (YYYY, YYY, YY, MMMM, MM, DD, dddd)"
	FlagDescYears    = "Years to add (may be negative)"
	FlagDescMonths   = "Months to add (may be negative)"
	FlagDescDays     = "Days to add (may be negative)"
	FlagDescPort     = "Port of the local HTTP server"
	FlagDescUser     = "Account name stored in the OS keyring"
	FlagDescPassword = "Password to store in the OS keyring"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// CLI Commands & Output
// -----------------------------------------------------------------------------

const (
	CmdRootShort        = "Bikram Sambat date converter and birthday calendar server"
	CmdConvertUse       = "convert"
	CmdConvertShort     = "Convert dates between Gregorian and Bikram Sambat"
	CmdToBSUse          = "to-bs <YYYY-MM-DD>"
	CmdToBSShort        = "Convert a Gregorian date to Bikram Sambat"
	CmdToADUse          = "to-ad <YYYY-MM-DD>"
	CmdToADShort        = "Convert a Bikram Sambat date to Gregorian"
	CmdTodayUse         = "today"
	CmdTodayShort       = "Print the current Bikram Sambat date"
	CmdAddUse           = "add <YYYY-MM-DD>"
	CmdAddShort         = "Shift a Bikram Sambat date by years, months or days"
	CmdFormatUse        = "format <YYYY-MM-DD>"
	CmdFormatShort      = "Render a Bikram Sambat date with a template"
	CmdMonthUse         = "month <year> <month>"
	CmdMonthShort       = "List the days of a Bikram Sambat month"
	CmdInfoUse          = "info"
	CmdInfoShort        = "Show the range covered by the calendar tables"
	CmdServeUse         = "serve"
	CmdServeShort       = "Serve the birthday calendar and the conversion API"
	CmdCredsUse         = "credentials"
	CmdCredsShort       = "Manage the CardDAV password in the OS keyring"
	CmdCredsSetUse      = "set"
	CmdCredsSetShort    = "Store a password"
	CmdCredsDeleteUse   = "delete"
	CmdCredsDeleteShort = "Remove a stored password"
	CmdVersionUse       = "version"
	CmdVersionShort     = "Print version information"

	FormatInfoOutput  = "Years:     %d..%d\nGregorian: %s..%s\n"
	FormatMonthHeader = "%s %s (%d)\n"
	FormatMonthLine   = "%s  %s  %s\n"
)

// -----------------------------------------------------------------------------
// Settings Keys (viper)
// -----------------------------------------------------------------------------

const (
	KeyLanguage        = "language"
	KeyServerPort      = "server.port"
	KeyServerBind      = "server.bind"
	KeyRateLimit       = "server.rate_limit"
	KeyRateBurst       = "server.rate_burst"
	KeySourceMode      = "source.mode"
	KeyLocalPath       = "source.local_path"
	KeyWebURL          = "source.web_url"
	KeyWebUser         = "source.web_user"
	KeySchedule        = "sync.schedule"
	KeyMonthStarts     = "sync.month_starts"
	KeyReminderEnabled = "reminder.enabled"
	KeyReminderValue   = "reminder.value"
	KeyReminderUnit    = "reminder.unit"
	KeyReminderDir     = "reminder.direction"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyEvtSummary      = "event_summary"       // Requires Name
	TKeyEvtSummaryAge   = "event_summary_age"   // Requires Name, Age
	TKeyEvtSummaryBirth = "event_summary_birth" // Requires Name (For age 0)
	TKeyEvtMonthStart   = "event_month_start"   // Requires Month, Year
	TKeyEvtNewYear      = "event_new_year"      // Requires Year
	TKeySyncStatus      = "sync_status"         // Requires Count > 0
	TKeySyncStatusZero  = "sync_status_zero"
)

// SupportedLanguages lists the languages with locale files and name tables.
var SupportedLanguages = []string{"ne", "en"}

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	SourceModeNone       = ""
	SourceModeWeb        = "web"
	SourceModeLocal      = "local"
	DefaultPort          = 18081
	DefaultBind          = LocalhostBindAddr
	DefaultSchedule      = "@every 1h"
	DefaultLanguage      = "ne"
	DefaultRateLimit     = 20.0
	DefaultRateBurst     = 40
	DefaultReminderValue = 1
	DefaultMonthStarts   = true
	UIDNamespace         = "go-bikram-sambat-v1" // Seed for deterministic UID generation

	// InvalidDate is returned by String and Format for unset dates.
	// Consumers match on it, so it must never change.
	InvalidDate = "Invalid Date"
)

// ISO8601 Duration Components for Reminders
const (
	ISOPeriodPrefix   = "P"
	ISONegativePrefix = "-P"
	ISODay            = "D"
	ISOHour           = "H"
	ISOMinute         = "M"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Bikram Sambat//Engine//EN"
	ICalCalName   = "Bikram Sambat"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "gobikramsambat"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"
	PropCategories  = "CATEGORIES"

	CategoryBirthday   = "BIRTHDAY"
	CategoryMonthStart = "BS-MONTH"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"

	DefaultICalRefresh = 1 * time.Hour
)

// -----------------------------------------------------------------------------
// Data Formats & Limits
// -----------------------------------------------------------------------------

const (
	// Date layouts used for parsing Gregorian input
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// BS output layouts
	BSFormatDefault = "YYYY-MM-DD"
	BSFormatLong    = "DD MMMM YYYY, dddd"

	// DefaultLeapYear anchors --MM-DD vCard dates without a year.
	DefaultLeapYear = 2000

	MinPort = 1
	MaxPort = 65535

	FormatUIDName = "%s|%s|%d"
	FormatUID     = "%s@%s"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	SyncTimeout         = 2 * time.Minute
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	MaxHTTPResponseSize = 256 * 1024 * 1024 // 256MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	AddrSeparator       = ":"
)

// -----------------------------------------------------------------------------
// HTTP Routes, Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	RouteCalendar  = "/calendar.ics"
	RouteAPI       = "/api/v1"
	RouteToBS      = "/convert/ad/{date}"
	RouteToAD      = "/convert/bs/{date}"
	RouteMonth     = "/month/{year}/{month}"
	RouteToday     = "/today"
	RouteMetrics   = "/metrics"
	ParamDate      = "date"
	ParamYear      = "year"
	ParamMonth     = "month"
	QueryLang      = "lang"
	QueryFormat    = "format"
	AllowedMethods = "GET, HEAD"

	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeJSON            = "application/json"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Metrics
// -----------------------------------------------------------------------------

const (
	MetricNamespace       = "bsdate"
	MetricRequests        = "http_requests_total"
	MetricConversions     = "conversions_total"
	MetricRequestsHelp    = "HTTP requests served, by route pattern and status code."
	MetricConversionsHelp = "Date conversions, by direction and outcome."
	MetricLabelRoute      = "route"
	MetricLabelCode       = "code"
	MetricLabelDir        = "direction"
	MetricLabelResult     = "result"
	RouteUnmatched        = "unmatched"
	DirToBS               = "ad_to_bs"
	DirToAD               = "bs_to_ad"
	ResultOK              = "ok"
	ResultInvalid         = "invalid"
	ResultOutOfRange      = "out_of_range"
)

// CORS
const (
	CORSAllowAll = "*"
	CORSMaxAge   = 300
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLocalPathEmpty  = "configuration error: local path is empty"
	ErrWebURLEmpty     = "configuration error: web URL is empty"
	ErrFetcherMissing  = "internal error: network fetcher is not initialized"
	ErrModeUnsupport   = "configuration error: unsupported source mode"
	ErrServerStartup   = "server startup failed"
	ErrServerShutdown  = "server shutdown failed"
	ErrPortRequired    = "server port is required"
	ErrInvalidURL      = "invalid URL structure"
	ErrProtocol        = "unsupported protocol scheme (http/https only)"
	ErrVCardParse      = "failed to parse vCard stream"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrDateParse       = "unable to parse date"
	ErrBSDateParse     = "unable to parse Bikram Sambat date"
	ErrDateUnset       = "date is unset"
	ErrYearRange       = "year outside supported table range"
	ErrMonthRange      = "month outside 1..12"
	ErrDayRange        = "day outside month length"
	ErrGregorianRange  = "gregorian date outside supported table range"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrWriteResp       = "failed to write response body"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrLocNotInit      = "localizer not initialized"
	ErrSettingsRead    = "failed to read settings file"
	ErrSettingsDecode  = "failed to decode settings"
	ErrSettingsInvalid = "invalid settings"
	ErrScheduleInvalid = "invalid sync schedule"
	ErrKeyringSet      = "failed to store credentials in keyring"
	ErrKeyringDelete   = "failed to delete credentials from keyring"
	ErrArgsRequired    = "a date argument is required"
	ErrADParse         = "unable to parse Gregorian date"
	ErrNumberArg       = "argument must be an integer"
	ErrUserRequired    = "a keyring user is required"
	ErrFetchRequest    = "failed to create request"
	ErrFetchNetwork    = "network error during fetch"
	ErrFetchStatus     = "server returned unexpected status"
	ErrResponseLarge   = "response exceeds size limit"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgInternalErr  = "Internal Server Error"
	HTTPMsgRateLimited  = "Too Many Requests"
	HTTPMsgBadNumber    = "year and month must be integers"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackSummary      = "Birthday: %s"
	FallbackSummaryAge   = "Birthday: %s (%d)"
	FallbackSummaryBirth = "Birthday: %s (birth)"
	FallbackMonthStart   = "%s %d"
	FallbackNewYear      = "New Year %d"
	FallbackSyncStatus   = "%d birthdays today"
	FallbackName         = "Unknown"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	MsgSyncStarted   = "Synchronization started..."
	MsgSyncFinished  = "Sync finished"
	MsgSyncFailed    = "Synchronization failed. Check logs."
	MsgSyncReq       = "Sync requested"
	MsgWorkerStart   = "Background worker started"
	MsgWorkerStop    = "Worker stopping due to context cancellation"
	MsgAppStop       = "Application stopped gracefully"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgSkippedRange  = "Skipping date outside Bikram Sambat table"
	MsgGenSuccess    = "Calendar generation successful"
	MsgAppStarting   = "Starting application"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgCacheUpdated  = "Calendar cache updated"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgPassFail      = "Password retrieval failed (might be empty)"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgBdayToday     = "Birthday found today"
	MsgSettingsFile  = "Settings loaded"
	MsgCredsStored   = "Credentials stored"
	MsgCredsDeleted  = "Credentials deleted"
	MsgConverted     = "Date converted"
	MsgFetchStart    = "Initiating vCard download"
	MsgFetchStatus   = "Server returned error status"
	MsgFetchBody     = "vCards downloading"
)

// -----------------------------------------------------------------------------
// Reminder Units & Directions
// -----------------------------------------------------------------------------

const (
	UnitDays    = "d"
	UnitHours   = "h"
	UnitMinutes = "m"
	DirBefore   = "before"
	DirAfter    = "after"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyMode      = "mode"
	LogKeySchedule  = "schedule"
	LogKeyUser      = "user"
	LogKeyTotal     = "total_cards"
	LogKeyFound     = "birthdays_found"
	LogKeySkipped   = "birthdays_skipped"
	LogKeyToday     = "birthdays_today"
	LogKeyEvents    = "events"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyManual    = "manual"
	LogKeyValue     = "value"
	LogKeyStats     = "stats"
	LogKeyName      = "name"
	LogKeyDOB       = "date_of_birth"
	LogKeyBSDOB     = "date_of_birth_bs"
	LogKeyDuration  = "duration_ms"
	LogKeyInput     = "input"
	LogKeyResult    = "result"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompApp      = "app"
	CompEngine   = "engine"
	CompServer   = "server"
	CompFetcher  = "fetcher"
	CompWorker   = "worker"
	CompMain     = "main"
	CompI18n     = "i18n"
	CompSettings = "settings"
	CompCLI      = "cli"
)
