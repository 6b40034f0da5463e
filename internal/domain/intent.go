package domain

// IntentKind enumerates the actions a command text can map to. Exactly one
// kind matches per dispatch; rule order decides ties.
type IntentKind string

const (
	IntentOpenFolder   IntentKind = "open_folder"
	IntentOpenAppOrURL IntentKind = "open_app_or_url"
	IntentShutdown     IntentKind = "shutdown"
	IntentRestart      IntentKind = "restart"
	IntentScreenshot   IntentKind = "screenshot"
	IntentCapturePhoto IntentKind = "capture_photo"
	IntentKnowledge    IntentKind = "knowledge_query"
	IntentWebSearch    IntentKind = "generic_search"
)

// Intent is the classified action for a single command, with its
// intent-specific argument (path, target name, or query text). It is
// produced once per dispatch and consumed by exactly one handler.
type Intent struct {
	Kind     IntentKind
	Argument string

	// Confirmed records whether a confirmation keyword was present in the
	// same utterance. Only meaningful for shutdown/restart; never persisted
	// across commands.
	Confirmed bool

	// ExplicitLookup marks "wiki"-prefixed queries: structured lookup first,
	// one extra web retry on miss, and never a browser fallback.
	ExplicitLookup bool
}

// DispatchResult reports what a single dispatch did. Spoken holds the last
// piece of speech feedback emitted; Log accumulates human-readable entries
// in the order they happened.
type DispatchResult struct {
	Handled bool
	Intent  IntentKind
	Spoken  string
	Log     []string
}
