package domain

// Config mirrors ~/.jarvis/config.yaml.
type Config struct {
	ConfigFormatVersion string           `yaml:"config_format_version"`
	Wakeword            WakewordSettings `yaml:"wakeword"`
	Capture             CaptureSettings  `yaml:"capture"`
	Lookup              LookupSettings   `yaml:"lookup"`
	Speech              SpeechSettings   `yaml:"speech"`
	Vision              VisionSettings   `yaml:"vision"`
	History             HistorySettings  `yaml:"history"`
	Cache               CacheSettings    `yaml:"cache"`
}

// WakewordSettings configures the trigger phrase gating voice commands.
type WakewordSettings struct {
	Phrase  string `yaml:"phrase"`
	Keyword string `yaml:"keyword"`
}

// CaptureSettings controls the microphone capture collaborator and the
// listening loop timing. All durations are declared in whole seconds or
// milliseconds to keep the YAML readable.
type CaptureSettings struct {
	Command                    string `yaml:"command"`
	TimeoutSeconds             int    `yaml:"timeout"`
	PhraseLimitSeconds         int    `yaml:"phrase_limit"`
	FollowUpTimeoutSeconds     int    `yaml:"follow_up_timeout"`
	FollowUpPhraseLimitSeconds int    `yaml:"follow_up_phrase_limit"`
	BackoffMillis              int    `yaml:"backoff_ms"`
	AckPauseMillis             int    `yaml:"ack_pause_ms"`
}

// LookupSettings configures the knowledge resolution chain.
type LookupSettings struct {
	WikiSentences  int    `yaml:"wiki_sentences"`
	WikiLanguage   string `yaml:"wiki_language"`
	MaxCandidates  int    `yaml:"max_candidates"`
	TimeoutSeconds int    `yaml:"timeout"`
	UserAgent      string `yaml:"user_agent"`
}

// SpeechSettings controls the text-to-speech collaborator.
type SpeechSettings struct {
	Enabled bool   `yaml:"enabled"`
	Command string `yaml:"command"`
	Rate    int    `yaml:"rate"`
}

// VisionSettings controls the camera and screenshot collaborators.
type VisionSettings struct {
	CameraDevice      string `yaml:"camera_device"`
	SnapshotCommand   string `yaml:"snapshot_command"`
	ScreenshotCommand string `yaml:"screenshot_command"`
	SaveDir           string `yaml:"save_dir"`
}

// HistorySettings toggles dispatch history persistence.
type HistorySettings struct {
	Enabled bool `yaml:"enabled"`
}

// CacheSettings configures the resolver answer cache.
type CacheSettings struct {
	Enabled    bool `yaml:"enabled"`
	TTLMinutes int  `yaml:"ttl_minutes"`
	MaxEntries int  `yaml:"max_entries"`
}
