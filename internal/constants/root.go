package constants

const (
	AppName            = "smarty"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/smarty/smarty.db"
	Version            = "v0.3.0"

	// ConnectionEnvVar holds a PostgreSQL connection string without a password.
	ConnectionEnvVar = "SMARTY_DB_CONNECTION"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "smarty-"
	BackupFileSuffix = ".db"

	// MaxHistoryWindow is the calendar span badge evaluation reads.
	MaxHistoryWindow = 90
	// MinHistoryWindow is the smallest history/summary listing.
	MinHistoryWindow = 1

	// UnknownDaysSinceWorkout marks a user with no recorded workout.
	UnknownDaysSinceWorkout = 999

	// RecentCategoryLimit is how many completed activities feed variety scoring.
	RecentCategoryLimit = 10
)
