package constants

import "time"

const (
	AppName            = "rebill"
	DefaultKeyringUser = "database-connection"
	DefaultConfigDir   = "~/.config/rebill"
	DefaultConfigFile  = "~/.config/rebill/config.yaml"
	DefaultStorePath   = "~/.config/rebill/rebill.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DateOnlyTime stands in for a missing time-of-day when a date-granularity
	// reminder has to be turned into an instant.
	DateOnlyTime = "23:59"

	// SuggestionTime is the time-of-day accepted suggestions are scheduled at.
	SuggestionTime = "09:00"

	// Record names used by every storage provider
	RecordReminders            = "reminders"
	RecordDismissedSuggestions = "dismissed_suggestions"

	// Scheduler constants
	DefaultPollInterval = 30 * time.Second
	DefaultDueWindow    = 30 * time.Second
	DefaultSnooze       = 10 * time.Minute

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "rebill-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "rebill-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.rebill.tray"
	TrayExecutablePrefix   = "rebill-tray"
	NotifierSecretHeader   = "X-Rebill-Secret"

	// Server constants
	DefaultServerAddr = "127.0.0.1:7420"

	// Default settings values
	DefaultTimezone             = "Local"
	DefaultNotificationsEnabled = true
	DefaultDesktopNotifications = true
)
