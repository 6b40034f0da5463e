// Package wakeword detects and strips the wake phrase from utterance text.
package wakeword

import (
	"regexp"
	"strings"

	"github.com/doeshing/jarvis-go/internal/domain"
)

var nonWord = regexp.MustCompile(`[^\w\s]`)

// Normalizer performs wakeword detection on normalized text and wakeword
// stripping on the original text. It is stateless and safe for concurrent
// use.
type Normalizer struct {
	phrase  string
	keyword string
	strip   *regexp.Regexp
}

// New builds a Normalizer for the given wake phrase ("hey jarvis") and bare
// keyword ("jarvis"). Empty arguments fall back to the defaults.
func New(phrase, keyword string) *Normalizer {
	if phrase == "" {
		phrase = domain.DefaultWakePhrase
	}
	if keyword == "" {
		keyword = domain.DefaultWakeKeyword
	}
	n := &Normalizer{
		phrase:  normalize(phrase),
		keyword: normalize(keyword),
	}
	// Leading optional "hey" (plus optional comma), then the keyword, then a
	// trailing run of punctuation/separators.
	n.strip = regexp.MustCompile(`(?i)^\s*(hey[,]*\s+)?` + regexp.QuoteMeta(keyword) + `[,:\s-]*`)
	return n
}

// Normalize lowercases the text, removes all characters outside word/space
// classes, and trims surrounding whitespace. Pure and total: empty input
// yields empty output, and the function is idempotent.
func (n *Normalizer) Normalize(text string) string {
	return normalize(text)
}

// HasWakeword reports whether the normalized text starts with the wake
// phrase or the bare keyword. Matching is prefix-based, not word-boundary
// tokenized, so "jarvisx ..." matches too.
func (n *Normalizer) HasWakeword(text string) bool {
	if text == "" {
		return false
	}
	norm := normalize(text)
	return strings.HasPrefix(norm, n.phrase) || strings.HasPrefix(norm, n.keyword)
}

// Strip removes a leading wake prefix from the original text and returns the
// trimmed remainder, preserving the command's casing. Returns "" when the
// utterance was only the wakeword. The input is never mutated.
func (n *Normalizer) Strip(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(n.strip.ReplaceAllString(trimmed, ""))
}

// Match combines detection and stripping into one result.
func (n *Normalizer) Match(text string) domain.WakewordMatch {
	if !n.HasWakeword(text) {
		return domain.WakewordMatch{}
	}
	return domain.WakewordMatch{Matched: true, Command: n.Strip(text)}
}

func normalize(text string) string {
	return strings.TrimSpace(strings.ToLower(nonWord.ReplaceAllString(text, "")))
}
