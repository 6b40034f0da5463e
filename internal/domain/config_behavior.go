package domain

import "time"

// CaptureTimeout returns the primary capture timeout as a duration.
func (c CaptureSettings) CaptureTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// PhraseLimit returns the primary phrase limit as a duration.
func (c CaptureSettings) PhraseLimit() time.Duration {
	return time.Duration(c.PhraseLimitSeconds) * time.Second
}

// FollowUpTimeout returns the follow-up capture timeout as a duration.
func (c CaptureSettings) FollowUpTimeout() time.Duration {
	return time.Duration(c.FollowUpTimeoutSeconds) * time.Second
}

// FollowUpPhraseLimit returns the follow-up phrase limit as a duration.
func (c CaptureSettings) FollowUpPhraseLimit() time.Duration {
	return time.Duration(c.FollowUpPhraseLimitSeconds) * time.Second
}

// Backoff returns the idle poll backoff as a duration.
func (c CaptureSettings) Backoff() time.Duration {
	return time.Duration(c.BackoffMillis) * time.Millisecond
}

// AckPause returns the pause between the acknowledgment speech and the
// follow-up capture as a duration.
func (c CaptureSettings) AckPause() time.Duration {
	return time.Duration(c.AckPauseMillis) * time.Millisecond
}

// HTTPTimeout returns the per-page fetch timeout for lookups.
func (l LookupSettings) HTTPTimeout() time.Duration {
	return time.Duration(l.TimeoutSeconds) * time.Second
}

// TTL returns the cache entry lifetime.
func (c CacheSettings) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}
