package dispatch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/doeshing/jarvis-go/internal/application/knowledge"
	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/pkg/filesystem"
	"github.com/doeshing/jarvis-go/internal/ports"
)

// Service executes classified commands against the collaborator ports. One
// command is handled per call; handlers are terminal and the service holds
// no state between dispatches, so a second utterance is naturally queued
// behind the current call by the listening loop.
type Service struct {
	Resolver   ports.Resolver
	Web        ports.WebSearcher
	Browser    ports.Browser
	System     ports.SystemActions
	Screen     ports.ScreenCapturer
	Camera     ports.Camera
	SavePrompt ports.SavePrompter
	Speaker    ports.Speaker
	Clipboard  ports.Clipboard
	History    ports.HistoryRepository
	Logger     ports.Logger

	SaveDir       string
	MaxCandidates int
	CopyAnswers   bool

	// Now is injectable for deterministic capture filenames in tests.
	Now func() time.Time
}

// Dispatch classifies the command text and runs its handler. The text must
// already have the wakeword stripped. Dispatch never panics or returns an
// error: every collaborator failure becomes log entries and spoken feedback.
func (s *Service) Dispatch(ctx context.Context, command string, source domain.Source) domain.DispatchResult {
	command = strings.TrimSpace(command)
	res := domain.DispatchResult{}
	if command == "" {
		return res
	}

	intent := Classify(command)
	res.Intent = intent.Kind
	res.Handled = true
	s.Logger.Info("dispatching command", map[string]interface{}{
		"intent": string(intent.Kind),
		"source": string(source),
	})

	switch intent.Kind {
	case domain.IntentOpenFolder:
		s.handleOpenFolder(&res, intent)
	case domain.IntentOpenAppOrURL:
		s.handleOpenApp(&res, intent)
	case domain.IntentShutdown:
		s.handleShutdown(&res, intent)
	case domain.IntentRestart:
		s.handleRestart(&res, intent)
	case domain.IntentScreenshot:
		s.handleScreenshot(&res)
	case domain.IntentCapturePhoto:
		s.handleCapturePhoto(&res)
	case domain.IntentKnowledge:
		s.handleKnowledge(ctx, &res, intent)
	case domain.IntentWebSearch:
		s.handleWebSearch(ctx, &res, intent)
	}

	s.record(source, command, res)
	return res
}

func (s *Service) handleOpenFolder(res *domain.DispatchResult, intent domain.Intent) {
	path := intent.Argument
	if path == "" {
		path = filesystem.UserHomeDir()
	}
	ok, msg := s.System.OpenFolder(path)
	if ok {
		s.logf(res, "Opened folder: %s", path)
		s.say(res, "Opened folder.")
		return
	}
	s.fail(res, domain.FailureActionFailed, "Failed to open folder: "+msg)
	s.say(res, "I could not open that folder.")
}

func (s *Service) handleOpenApp(res *domain.DispatchResult, intent domain.Intent) {
	target := intent.Argument
	if strings.HasPrefix(target, "http") {
		if s.Browser.OpenURL(target) {
			s.logf(res, "Opened URL: %s", target)
			s.say(res, "Opening browser.")
		} else {
			s.fail(res, domain.FailureActionFailed, "Failed to open URL: "+target)
			s.say(res, "I could not open the browser.")
		}
		return
	}
	if s.System.OpenApplication(target) {
		s.logf(res, "Opened application: %s", target)
		s.say(res, "Opening "+target)
		return
	}
	s.fail(res, domain.FailureActionFailed, "Failed to open application: "+target)
	s.say(res, "I could not open that application.")
}

func (s *Service) handleShutdown(res *domain.DispatchResult, intent domain.Intent) {
	if !intent.Confirmed {
		s.fail(res, domain.FailureActionDenied,
			"Shutdown requested - confirmation required. Say 'shutdown confirm' to proceed.")
		s.say(res, "Shutdown requested. Say shutdown confirm to proceed.")
		return
	}
	ok, msg := s.System.Shutdown(true)
	s.logf(res, "%s", msg)
	if ok {
		s.say(res, "Shutting down. Goodbye.")
	} else {
		s.say(res, "I could not shut down the system.")
	}
}

func (s *Service) handleRestart(res *domain.DispatchResult, intent domain.Intent) {
	if !intent.Confirmed {
		s.fail(res, domain.FailureActionDenied,
			"Restart requested - confirmation required. Say 'restart confirm' to proceed.")
		s.say(res, "Restart requested. Say restart confirm to proceed.")
		return
	}
	ok, msg := s.System.Restart(true)
	s.logf(res, "%s", msg)
	if ok {
		s.say(res, "Restarting now.")
	} else {
		s.say(res, "I could not restart the system.")
	}
}

func (s *Service) handleScreenshot(res *domain.DispatchResult) {
	path, err := s.askSavePath("screenshot", ".png")
	if err != nil {
		s.fail(res, domain.FailureActionFailed, "Screenshot prompt failed: "+err.Error())
		return
	}
	if path == "" {
		s.logf(res, "Screenshot cancelled.")
		return
	}
	if err := s.Screen.Capture(path); err != nil {
		s.fail(res, domain.FailureActionFailed, "Screenshot failed: "+err.Error())
		s.say(res, "I could not take a screenshot.")
		return
	}
	s.logf(res, "Screenshot saved to %s", path)
	s.say(res, "Screenshot saved.")
}

func (s *Service) handleCapturePhoto(res *domain.DispatchResult) {
	if s.Camera == nil || !s.Camera.Active() {
		s.fail(res, domain.FailureResourceUnavailable, "Camera not running.")
		s.say(res, "The camera is not running.")
		return
	}
	path, err := s.askSavePath("photo", ".jpg")
	if err != nil {
		s.fail(res, domain.FailureActionFailed, "Photo prompt failed: "+err.Error())
		return
	}
	if path == "" {
		s.logf(res, "Photo capture cancelled.")
		return
	}
	if err := s.Camera.Snapshot(path); err != nil {
		s.fail(res, domain.FailureActionFailed, "Photo capture failed: "+err.Error())
		s.say(res, "I could not capture a photo.")
		return
	}
	s.logf(res, "Photo saved to %s", path)
	s.say(res, "Photo saved.")
}

func (s *Service) handleKnowledge(ctx context.Context, res *domain.DispatchResult, intent domain.Intent) {
	query := intent.Argument
	if query == "" {
		s.say(res, "What would you like to know?")
		return
	}

	if intent.ExplicitLookup {
		s.say(res, "Searching Wikipedia for "+query)
		outcome := s.Resolver.Resolve(ctx, query)
		if outcome.Found {
			s.answer(res, outcome.Text)
			return
		}
		// The chain already tried the web once; give it one more explicit
		// attempt before giving up. Never falls through to a browser.
		s.say(res, "I could not find a wikipedia entry. I'll search the web.")
		if s.Web != nil {
			if result, ok := s.Web.FirstSnippet(ctx, query); ok {
				s.answer(res, knowledge.ComposeWebAnswer(result))
				return
			}
		}
		s.fail(res, domain.FailureLookupUnavailable, "No answer found for: "+query)
		s.say(res, "I couldn't find an answer.")
		return
	}

	s.say(res, "Let me look that up.")
	outcome := s.Resolver.Resolve(ctx, query)
	if outcome.Found {
		s.answer(res, outcome.Text)
		return
	}
	s.fail(res, domain.FailureLookupUnavailable, "No answer found for: "+query)
	if s.Browser.OpenSearch(query) {
		s.say(res, "I opened the browser with search results.")
	} else {
		s.say(res, "I couldn't find an answer.")
	}
}

func (s *Service) handleWebSearch(ctx context.Context, res *domain.DispatchResult, intent domain.Intent) {
	query := intent.Argument
	s.logf(res, "No direct action matched. Searching web for: %s", query)
	s.say(res, "Searching the web for "+query)

	max := s.MaxCandidates
	if max <= 0 {
		max = domain.DefaultMaxCandidates
	}
	if s.Web != nil {
		if urls := s.Web.Discover(ctx, query, max); len(urls) > 0 && s.Browser.OpenURL(urls[0]) {
			s.logf(res, "Opened %s", urls[0])
			s.say(res, "I opened the first result in your browser.")
			return
		}
	}
	if s.Browser.OpenSearch(query) {
		s.say(res, "I opened the browser with search results.")
	} else {
		s.fail(res, domain.FailureActionFailed, "Browser could not be opened.")
		s.say(res, "I could not open the browser.")
	}
}

// answer emits a resolved answer: log, speech, and optional clipboard copy.
func (s *Service) answer(res *domain.DispatchResult, text string) {
	s.logf(res, "%s", text)
	s.say(res, text)
	if s.CopyAnswers && s.Clipboard != nil && s.Clipboard.Enabled() {
		if err := s.Clipboard.Copy(text); err != nil {
			s.Logger.Warn("clipboard copy failed", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (s *Service) askSavePath(prefix, ext string) (string, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	name := fmt.Sprintf("%s-%s%s", prefix, now().Format("20060102-150405"), ext)
	defaultPath := filepath.Join(s.SaveDir, name)
	if s.SavePrompt != nil && s.SavePrompt.Enabled() {
		path, err := s.SavePrompt.AskSavePath(defaultPath)
		if err != nil || path == "" {
			return path, err
		}
		defaultPath = path
	}
	if err := os.MkdirAll(filepath.Dir(defaultPath), 0o755); err != nil {
		return "", err
	}
	return defaultPath, nil
}

func (s *Service) say(res *domain.DispatchResult, text string) {
	if s.Speaker != nil && s.Speaker.Enabled() {
		s.Speaker.Speak(text)
	}
	res.Spoken = text
}

func (s *Service) logf(res *domain.DispatchResult, format string, args ...interface{}) {
	entry := fmt.Sprintf(format, args...)
	res.Log = append(res.Log, entry)
	s.Logger.Debug(entry, nil)
}

func (s *Service) fail(res *domain.DispatchResult, kind domain.FailureKind, entry string) {
	res.Log = append(res.Log, entry)
	s.Logger.Warn(entry, map[string]interface{}{"kind": string(kind)})
}

func (s *Service) record(source domain.Source, command string, res domain.DispatchResult) {
	if s.History == nil {
		return
	}
	err := s.History.Save(domain.HistoryRecord{
		Source:   source,
		RawText:  command,
		Command:  command,
		Intent:   res.Intent,
		Handled:  res.Handled,
		Feedback: res.Spoken,
	})
	if err != nil {
		s.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error()})
	}
}

var _ ports.Dispatcher = (*Service)(nil)
