package commands

// Display constants shared across subcommands.
const (
	TimestampFormat = "2006-01-02 15:04:05"

	DefaultHistoryLimit       = 20
	DefaultHistorySearchLimit = 20
	MaxHistoryAnalysisRecords = 500
)

// Error messages
const (
	ErrHistoryStoreUnavailable = "history store unavailable"
	ErrCacheStoreUnavailable   = "cache store unavailable"
	ErrDoctorUnavailable       = "doctor service unavailable"
	ErrConfigLoaderUnavailable = "config loader unavailable"
)

// Informational messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
	MsgNoHistoryRecorded        = "No history recorded yet."
	MsgNoCachedAnswers          = "No cached answers."
)
