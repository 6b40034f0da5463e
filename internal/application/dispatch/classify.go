// Package dispatch classifies command text into intents and executes the
// matching handler.
package dispatch

import (
	"strings"

	"github.com/doeshing/jarvis-go/internal/domain"
)

// rule pairs a predicate with an intent builder. The registry below is an
// ordered list: the first matching rule wins and exactly one rule executes
// per classification. The final rule is a catch-all.
type rule struct {
	kind  domain.IntentKind
	match func(lower string) bool
	build func(raw, lower string) domain.Intent
}

var interrogatives = map[string]bool{
	"who": true, "what": true, "when": true, "where": true,
	"why": true, "how": true, "which": true,
}

var registry = []rule{
	{
		kind: domain.IntentOpenFolder,
		match: func(lower string) bool {
			return strings.HasPrefix(lower, "open folder") || strings.HasPrefix(lower, "open directory")
		},
		build: func(raw, _ string) domain.Intent {
			return domain.Intent{Kind: domain.IntentOpenFolder, Argument: thirdField(raw)}
		},
	},
	{
		kind: domain.IntentOpenAppOrURL,
		match: func(lower string) bool {
			return strings.HasPrefix(lower, "open ") || strings.HasPrefix(lower, "launch ")
		},
		build: func(raw, _ string) domain.Intent {
			return domain.Intent{Kind: domain.IntentOpenAppOrURL, Argument: afterFirstField(raw)}
		},
	},
	{
		kind: domain.IntentShutdown,
		match: func(lower string) bool {
			return strings.Contains(lower, "shutdown")
		},
		build: func(raw, lower string) domain.Intent {
			return domain.Intent{Kind: domain.IntentShutdown, Confirmed: confirmed(lower)}
		},
	},
	{
		kind: domain.IntentRestart,
		match: func(lower string) bool {
			return strings.Contains(lower, "restart") || strings.Contains(lower, "reboot")
		},
		build: func(raw, lower string) domain.Intent {
			return domain.Intent{Kind: domain.IntentRestart, Confirmed: confirmed(lower)}
		},
	},
	{
		kind: domain.IntentScreenshot,
		match: func(lower string) bool {
			return strings.Contains(lower, "screenshot") || strings.Contains(lower, "screen shot")
		},
		build: func(_, _ string) domain.Intent {
			return domain.Intent{Kind: domain.IntentScreenshot}
		},
	},
	{
		kind: domain.IntentCapturePhoto,
		match: func(lower string) bool {
			return strings.Contains(lower, "capture") &&
				(strings.Contains(lower, "photo") || strings.Contains(lower, "picture"))
		},
		build: func(_, _ string) domain.Intent {
			return domain.Intent{Kind: domain.IntentCapturePhoto}
		},
	},
	{
		kind: domain.IntentKnowledge,
		match: func(lower string) bool {
			return strings.HasPrefix(lower, "wikipedia ") || strings.HasPrefix(lower, "wiki ")
		},
		build: func(raw, _ string) domain.Intent {
			return domain.Intent{
				Kind:           domain.IntentKnowledge,
				Argument:       afterFirstField(raw),
				ExplicitLookup: true,
			}
		},
	},
	{
		kind: domain.IntentKnowledge,
		match: func(lower string) bool {
			for _, word := range strings.Fields(lower) {
				if interrogatives[word] {
					return true
				}
			}
			return false
		},
		build: func(raw, _ string) domain.Intent {
			return domain.Intent{Kind: domain.IntentKnowledge, Argument: raw}
		},
	},
	{
		kind:  domain.IntentWebSearch,
		match: func(string) bool { return true },
		build: func(raw, _ string) domain.Intent {
			return domain.Intent{Kind: domain.IntentWebSearch, Argument: raw}
		},
	},
}

// Classify maps a command text to its intent. The text must already be free
// of the wakeword; classification never re-applies wakeword logic.
func Classify(command string) domain.Intent {
	raw := strings.TrimSpace(command)
	lower := strings.ToLower(raw)
	for _, r := range registry {
		if r.match(lower) {
			return r.build(raw, lower)
		}
	}
	// Unreachable: the registry ends with a catch-all.
	return domain.Intent{Kind: domain.IntentWebSearch, Argument: raw}
}

// confirmed reports whether a confirmation keyword appears anywhere in the
// text. Deliberately permissive, same-utterance only.
func confirmed(lower string) bool {
	return strings.Contains(lower, "confirm") || strings.Contains(lower, "yes")
}

// thirdField returns everything after the second space-delimited field
// ("open folder <path with spaces>"), or "" when absent.
func thirdField(raw string) string {
	parts := strings.SplitN(raw, " ", 3)
	if len(parts) < 3 {
		return ""
	}
	return strings.TrimSpace(parts[2])
}

// afterFirstField returns everything after the first space, or "".
func afterFirstField(raw string) string {
	parts := strings.SplitN(raw, " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
