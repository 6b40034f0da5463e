// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external collaborators (infrastructure). The dispatch pipeline depends only
// on these abstractions; adapters for speech, lookups, OS actions, and
// storage live in the infrastructure layer.
package ports

import (
	"context"
	"time"

	"github.com/doeshing/jarvis-go/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.jarvis/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Capturer blocks on the microphone and returns one recognized utterance.
// It never raises past this boundary: ambient-noise calibration problems,
// timeouts, and recognition failures are all absorbed and surfaced as
// ok == false.
type Capturer interface {
	Capture(ctx context.Context, timeout, phraseLimit time.Duration) (domain.Utterance, bool)
}

// Speaker emits synthesized speech. Speak is asynchronous fire-and-forget
// and must never block the caller; ordering between consecutive calls is not
// guaranteed.
type Speaker interface {
	Speak(text string)
	Enabled() bool
}

// StructuredLookup answers a query from a structured knowledge source.
type StructuredLookup interface {
	Summary(ctx context.Context, query string, maxSentences int) (string, bool)
}

// WebSearcher discovers candidate URLs for a query and extracts the first
// usable page snippet. Both methods absorb network failures: Discover
// returns an empty slice, FirstSnippet returns ok == false.
type WebSearcher interface {
	Discover(ctx context.Context, query string, max int) []string
	FirstSnippet(ctx context.Context, query string) (domain.WebResult, bool)
}

// Resolver is the knowledge resolution chain: structured lookup, then web
// lookup, then NotFound. It never errors; browser fallbacks are the
// dispatcher's responsibility.
type Resolver interface {
	Resolve(ctx context.Context, query string) domain.LookupOutcome
}

// Browser opens URLs (or a prepared search results page) in the user's
// default browser. Both calls fail closed, returning false on any error.
type Browser interface {
	OpenURL(url string) bool
	OpenSearch(query string) bool
}

// SystemActions groups the OS-control collaborators. All calls fail closed:
// they return false (plus a message where applicable) instead of propagating
// errors. Shutdown and Restart refuse to act unless confirm is true.
type SystemActions interface {
	OpenApplication(name string) bool
	OpenFolder(path string) (bool, string)
	Shutdown(confirm bool) (bool, string)
	Restart(confirm bool) (bool, string)
}

// ScreenCapturer grabs a full-screen image and writes it to path.
type ScreenCapturer interface {
	Capture(path string) error
}

// Camera owns the camera device. Snapshot requires the camera to be active;
// concurrent snapshot attempts are serialized by the implementation.
type Camera interface {
	Start() error
	Stop()
	Active() bool
	Snapshot(path string) error
}

// SavePrompter asks the user where to store a captured image. An empty path
// means the user cancelled, which is a no-op, not an error.
type SavePrompter interface {
	AskSavePath(defaultPath string) (string, error)
	Enabled() bool
}

// Clipboard provides cross-platform clipboard integration for copying
// resolved answers.
type Clipboard interface {
	Copy(text string) error
	Enabled() bool
}

// HistoryRepository persists dispatched commands.
type HistoryRepository interface {
	Save(record domain.HistoryRecord) error
	Records(limit int, search string) ([]domain.HistoryRecord, error)
	Clear() error
}

// CacheRepository stores resolver answers keyed by hashed query.
type CacheRepository interface {
	Get(key string) (domain.CacheEntry, bool, error)
	Set(entry domain.CacheEntry) error
}

// Dispatcher is the use-case boundary for handling one command text.
type Dispatcher interface {
	Dispatch(ctx context.Context, command string, source domain.Source) domain.DispatchResult
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
