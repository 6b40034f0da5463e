package domain

// Default configuration values. These mirror the documented behavior of the
// assistant: 6-second capture windows, half-second idle backoff, two-sentence
// wiki summaries, five search candidates.
const (
	DefaultWakePhrase  = "hey jarvis"
	DefaultWakeKeyword = "jarvis"

	DefaultCaptureTimeoutSeconds  = 6
	DefaultPhraseLimitSeconds     = 6
	DefaultFollowUpTimeoutSeconds = 3
	DefaultFollowUpPhraseLimit    = 4
	DefaultBackoffMillis          = 500
	DefaultAckPauseMillis         = 600

	DefaultWikiSentences = 2
	DefaultWikiLanguage  = "en"
	DefaultMaxCandidates = 5
	DefaultLookupTimeout = 6
	DefaultLookupUA      = "Mozilla/5.0 (compatible; jarvis-go)"

	DefaultSpeechRate = 170

	DefaultCacheTTLMinutes = 60
	DefaultCacheMaxEntries = 100
)
