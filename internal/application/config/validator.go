// Package config validates the assistant configuration tree.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/doeshing/jarvis-go/internal/domain"
)

// Validate ensures the config structure is internally consistent. It assumes
// defaults were already hydrated by the loader, so zero values are errors
// here, not omissions.
func Validate(cfg domain.Config) error {
	if cfg.Wakeword.Keyword == "" {
		return errors.New("wakeword.keyword must be set")
	}
	if !strings.Contains(cfg.Wakeword.Phrase, cfg.Wakeword.Keyword) {
		return fmt.Errorf("wakeword.phrase %q does not contain keyword %q", cfg.Wakeword.Phrase, cfg.Wakeword.Keyword)
	}
	if err := validateCapture(cfg.Capture); err != nil {
		return err
	}
	if err := validateLookup(cfg.Lookup); err != nil {
		return err
	}
	if cfg.Speech.Enabled && cfg.Speech.Rate <= 0 {
		return fmt.Errorf("speech.rate must be > 0, got %d", cfg.Speech.Rate)
	}
	if err := validateCache(cfg.Cache); err != nil {
		return err
	}
	return nil
}

func validateCapture(capture domain.CaptureSettings) error {
	if capture.TimeoutSeconds <= 0 {
		return fmt.Errorf("capture.timeout must be > 0, got %d", capture.TimeoutSeconds)
	}
	if capture.PhraseLimitSeconds <= 0 {
		return fmt.Errorf("capture.phrase_limit must be > 0, got %d", capture.PhraseLimitSeconds)
	}
	if capture.FollowUpTimeoutSeconds <= 0 {
		return fmt.Errorf("capture.follow_up_timeout must be > 0, got %d", capture.FollowUpTimeoutSeconds)
	}
	if capture.FollowUpPhraseLimitSeconds <= 0 {
		return fmt.Errorf("capture.follow_up_phrase_limit must be > 0, got %d", capture.FollowUpPhraseLimitSeconds)
	}
	if capture.BackoffMillis < 0 {
		return fmt.Errorf("capture.backoff_ms must be >= 0, got %d", capture.BackoffMillis)
	}
	if capture.AckPauseMillis < 0 {
		return fmt.Errorf("capture.ack_pause_ms must be >= 0, got %d", capture.AckPauseMillis)
	}
	return nil
}

func validateLookup(lookup domain.LookupSettings) error {
	if lookup.WikiSentences <= 0 {
		return fmt.Errorf("lookup.wiki_sentences must be > 0, got %d", lookup.WikiSentences)
	}
	if lookup.WikiLanguage == "" {
		return errors.New("lookup.wiki_language must be set")
	}
	if lookup.MaxCandidates <= 0 {
		return fmt.Errorf("lookup.max_candidates must be > 0, got %d", lookup.MaxCandidates)
	}
	if lookup.TimeoutSeconds <= 0 {
		return fmt.Errorf("lookup.timeout must be > 0, got %d", lookup.TimeoutSeconds)
	}
	return nil
}

func validateCache(cache domain.CacheSettings) error {
	if !cache.Enabled {
		return nil
	}
	if cache.TTLMinutes <= 0 {
		return fmt.Errorf("cache.ttl_minutes must be > 0, got %d", cache.TTLMinutes)
	}
	if cache.MaxEntries <= 0 {
		return fmt.Errorf("cache.max_entries must be > 0, got %d", cache.MaxEntries)
	}
	return nil
}
