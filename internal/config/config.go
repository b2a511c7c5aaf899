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

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Contactbook"
	AppID       = "com.github.tartampluch.go-contactbook"
	BinaryName  = "contactbook"
	LogFileName = "app.log"
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
	// Used for the log file and the persisted address book.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating the cache and config directories.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagDebug         = "debug"
	FlagBook          = "book"
	FlagConfigDir     = "config-dir"
	FlagLang          = "lang"
	FlagDescDebug     = "enable debug logging to stderr"
	FlagDescBook      = "path to the address book file (overrides config)"
	FlagDescConfigDir = "configuration directory (default: user config dir)"
	FlagDescLang      = "interface language (overrides config)"
	MsgVersionOutput  = "%s version %s (%s/%s)\n"
)

// EnvConfigDir overrides the configuration directory when set.
const EnvConfigDir = "CONTACTBOOK_CONFIG_DIR"

// -----------------------------------------------------------------------------
// Settings File (viper)
// -----------------------------------------------------------------------------

const (
	ConfigFileName = "config"
	ConfigFileType = "yaml"
	ConfigFileExt  = "config.yaml"

	CfgKeyBookPath = "book_path"
	CfgKeyPageSize = "page_size"
	CfgKeyLanguage = "language"
	CfgKeyReminder = "reminder_trigger"
)

// -----------------------------------------------------------------------------
// Defaults & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultBookFile = "addressbook.vcf"
	DefaultPageSize = 5
	DefaultLanguage = "en"
	DefaultReminder = "" // no VALARM unless configured, e.g. "-P1D"

	// MinSearchLen is the minimum length of a search term, enforced by the
	// dispatcher rather than the store.
	MinSearchLen = 3

	// CalendarYearSpan generates birthday events for the current year +/- 1,
	// so calendar clients show events without an immediate re-export.
	CalendarYearSpan = 1
)

// SupportedLanguages defines the list of available interface languages
// (ISO 639-1). Command synonyms for all of them are always recognized.
var SupportedLanguages = []string{"en", "uk"}

// -----------------------------------------------------------------------------
// Data Formats & File Extensions
// -----------------------------------------------------------------------------

const (
	// DateFormatInput is the user-facing birthday layout (DD-MM-YYYY).
	DateFormatInput = "02-01-2006"

	// DateFormatStorage is the vCard BDAY layout used in the persisted book.
	DateFormatStorage = "2006-01-02"

	ExtVCF = ".vcf"
	ExtICS = ".ics"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Contactbook//Calendar//EN"
	ICalCalName   = "Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "gocontactbook"

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

	DefaultICalRefresh = 24 * time.Hour

	// UID Generation
	UIDSalt         = "go-contactbook-v1-"
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	FormatEventSummary = "Birthday: %s"
)

// StubVCalendar is the minimal valid iCalendar object used when the book
// holds no birthdays, so clients never see an invalid feed.
const StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

// -----------------------------------------------------------------------------
// Status Messages (business outcomes, returned by the store)
// -----------------------------------------------------------------------------

const (
	StatusPhoneAdded     = "Phone %s added to contact %s"
	StatusPhonePresent   = "Phone %s already present in contact %s"
	StatusPhoneChanged   = "Old phone %s changed to %s"
	StatusPhoneNotFound  = "%s not present in phonebook"
	StatusContactAdded   = "Contact %s added"
	StatusContactDeleted = "Contact %s deleted"
	StatusContactMissing = "Contact %s does not exist in the phonebook"

	FormatBirthdayInfo = "%s, Days to birthday: %d"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrBookEncode    = "failed to encode address book"
	ErrBookWrite     = "failed to write address book file"
	ErrICalEncode    = "failed to encode iCalendar data"
	ErrImportOpen    = "failed to open import file"
	ErrSettingsDir   = "could not determine user config dir"
	ErrSettingsRead  = "failed to read settings file"
	ErrCacheDir      = "could not determine user cache dir"
	ErrCreateDir     = "could not create app directory"
	ErrAppFailed     = "application failed unexpectedly"
	ErrLogFile       = "failed to open log file"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgBookLoaded    = "Address book loaded"
	MsgBookSaved     = "Address book saved"
	MsgBookMissing   = "Address book file not found, starting empty"
	MsgBookEmpty     = "Address book file is empty, starting empty"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedNoName = "Skipping vCard without a name"
	MsgSkippedPhone  = "Skipping invalid phone number"
	MsgSkippedDate   = "Skipping invalid birthday value"
	MsgExportDone    = "Calendar export finished"
	MsgImportDone    = "Import finished"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransReady    = "Translator initialized"
	MsgTransMissing  = "Missing translation key"
	MsgDispatching   = "Dispatching command"
	MsgReplStop      = "Interpreter loop stopped"
	MsgCtxCancel     = "Context cancelled, shutting down"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyPath      = "path"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyName      = "name"
	LogKeyValue     = "value"
	LogKeyCount     = "count"
	LogKeyCommand   = "command"
	LogKeyEvents    = "events"
	LogKeyImported  = "imported"
	LogKeyDuration  = "duration_ms"

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
	CompStore    = "store"
	CompCalendar = "calendar"
	CompDispatch = "dispatch"
	CompI18n     = "i18n"
	CompMain     = "main"
)
