// Package config loads YAML configuration from ~/.jarvis/config.yaml
// (overridable via JARVIS_CONFIG).
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/jarvis-go/assets"
	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/pkg/filesystem"
	"github.com/doeshing/jarvis-go/internal/ports"
)

// FileLoader implements ports.ConfigProvider over a YAML file.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader. An empty path resolves through the
// JARVIS_CONFIG environment variable, then the default location.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is created with
// defaults on first run.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := writeDefault(path); err != nil {
				return domain.Config{}, err
			}
			return DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}
	return hydrateDefaults(cfg), nil
}

// Path returns the resolved configuration file location.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

// Save writes the configuration back to disk.
func (l *FileLoader) Save(cfg domain.Config) error {
	path := l.resolvePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

// Backup copies the current file aside before a destructive write and
// returns the backup path.
func (l *FileLoader) Backup() (string, error) {
	path := l.resolvePath()
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	backup := path + ".bak-" + time.Now().Format("20060102150405")
	if err := os.WriteFile(backup, data, 0o600); err != nil {
		return "", err
	}
	return backup, nil
}

// Reset overwrites the configuration file with defaults.
func (l *FileLoader) Reset() (domain.Config, error) {
	cfg := DefaultConfig()
	if err := l.Save(cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("JARVIS_CONFIG"); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".jarvis", "config.yaml")
}

// writeDefault seeds a first-run config file with the embedded, commented
// template rather than a bare marshal, so users get documented defaults.
func writeDefault(path string) error {
	return os.WriteFile(path, assets.DefaultConfigYAML, 0o600)
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Wakeword: domain.WakewordSettings{
			Phrase:  domain.DefaultWakePhrase,
			Keyword: domain.DefaultWakeKeyword,
		},
		Capture: domain.CaptureSettings{
			TimeoutSeconds:             domain.DefaultCaptureTimeoutSeconds,
			PhraseLimitSeconds:         domain.DefaultPhraseLimitSeconds,
			FollowUpTimeoutSeconds:     domain.DefaultFollowUpTimeoutSeconds,
			FollowUpPhraseLimitSeconds: domain.DefaultFollowUpPhraseLimit,
			BackoffMillis:              domain.DefaultBackoffMillis,
			AckPauseMillis:             domain.DefaultAckPauseMillis,
		},
		Lookup: domain.LookupSettings{
			WikiSentences:  domain.DefaultWikiSentences,
			WikiLanguage:   domain.DefaultWikiLanguage,
			MaxCandidates:  domain.DefaultMaxCandidates,
			TimeoutSeconds: domain.DefaultLookupTimeout,
			UserAgent:      domain.DefaultLookupUA,
		},
		Speech: domain.SpeechSettings{
			Enabled: true,
			Rate:    domain.DefaultSpeechRate,
		},
		Vision: domain.VisionSettings{
			SaveDir: filepath.Join(filesystem.UserHomeDir(), "Pictures", "jarvis"),
		},
		History: domain.HistorySettings{Enabled: true},
		Cache: domain.CacheSettings{
			Enabled:    true,
			TTLMinutes: domain.DefaultCacheTTLMinutes,
			MaxEntries: domain.DefaultCacheMaxEntries,
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.Wakeword.Phrase == "" {
		cfg.Wakeword.Phrase = domain.DefaultWakePhrase
	}
	if cfg.Wakeword.Keyword == "" {
		cfg.Wakeword.Keyword = domain.DefaultWakeKeyword
	}
	if cfg.Capture.TimeoutSeconds == 0 {
		cfg.Capture.TimeoutSeconds = domain.DefaultCaptureTimeoutSeconds
	}
	if cfg.Capture.PhraseLimitSeconds == 0 {
		cfg.Capture.PhraseLimitSeconds = domain.DefaultPhraseLimitSeconds
	}
	if cfg.Capture.FollowUpTimeoutSeconds == 0 {
		cfg.Capture.FollowUpTimeoutSeconds = domain.DefaultFollowUpTimeoutSeconds
	}
	if cfg.Capture.FollowUpPhraseLimitSeconds == 0 {
		cfg.Capture.FollowUpPhraseLimitSeconds = domain.DefaultFollowUpPhraseLimit
	}
	if cfg.Capture.BackoffMillis == 0 {
		cfg.Capture.BackoffMillis = domain.DefaultBackoffMillis
	}
	if cfg.Capture.AckPauseMillis == 0 {
		cfg.Capture.AckPauseMillis = domain.DefaultAckPauseMillis
	}
	if cfg.Lookup.WikiSentences == 0 {
		cfg.Lookup.WikiSentences = domain.DefaultWikiSentences
	}
	if cfg.Lookup.WikiLanguage == "" {
		cfg.Lookup.WikiLanguage = domain.DefaultWikiLanguage
	}
	if cfg.Lookup.MaxCandidates == 0 {
		cfg.Lookup.MaxCandidates = domain.DefaultMaxCandidates
	}
	if cfg.Lookup.TimeoutSeconds == 0 {
		cfg.Lookup.TimeoutSeconds = domain.DefaultLookupTimeout
	}
	if cfg.Lookup.UserAgent == "" {
		cfg.Lookup.UserAgent = domain.DefaultLookupUA
	}
	if cfg.Speech.Rate == 0 {
		cfg.Speech.Rate = domain.DefaultSpeechRate
	}
	if cfg.Vision.SaveDir == "" {
		cfg.Vision.SaveDir = filepath.Join(filesystem.UserHomeDir(), "Pictures", "jarvis")
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
