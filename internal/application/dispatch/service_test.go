package dispatch

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/pkg/logger"
)

type stubResolver struct {
	outcome domain.LookupOutcome
	queries []string
}

func (s *stubResolver) Resolve(_ context.Context, query string) domain.LookupOutcome {
	s.queries = append(s.queries, query)
	return s.outcome
}

type stubWeb struct {
	urls          []string
	snippet       domain.WebResult
	snippetOK     bool
	snippetCalled bool
}

func (s *stubWeb) Discover(context.Context, string, int) []string {
	return s.urls
}

func (s *stubWeb) FirstSnippet(context.Context, string) (domain.WebResult, bool) {
	s.snippetCalled = true
	return s.snippet, s.snippetOK
}

type stubBrowser struct {
	openedURLs     []string
	searchQueries  []string
	failOpenURL    bool
	failOpenSearch bool
}

func (s *stubBrowser) OpenURL(url string) bool {
	if s.failOpenURL {
		return false
	}
	s.openedURLs = append(s.openedURLs, url)
	return true
}

func (s *stubBrowser) OpenSearch(query string) bool {
	if s.failOpenSearch {
		return false
	}
	s.searchQueries = append(s.searchQueries, query)
	return true
}

type stubSystem struct {
	openedApps     []string
	openedFolders  []string
	shutdownCalls  []bool
	restartCalls   []bool
	failOpenFolder bool
	failOpenApp    bool
}

func (s *stubSystem) OpenApplication(name string) bool {
	if s.failOpenApp {
		return false
	}
	s.openedApps = append(s.openedApps, name)
	return true
}

func (s *stubSystem) OpenFolder(path string) (bool, string) {
	if s.failOpenFolder {
		return false, "no such folder: " + path
	}
	s.openedFolders = append(s.openedFolders, path)
	return true, "opened " + path
}

func (s *stubSystem) Shutdown(confirm bool) (bool, string) {
	s.shutdownCalls = append(s.shutdownCalls, confirm)
	return true, "Shutdown initiated."
}

func (s *stubSystem) Restart(confirm bool) (bool, string) {
	s.restartCalls = append(s.restartCalls, confirm)
	return true, "Restart initiated."
}

type stubScreen struct {
	paths []string
	err   error
}

func (s *stubScreen) Capture(path string) error {
	if s.err != nil {
		return s.err
	}
	s.paths = append(s.paths, path)
	return nil
}

type stubCamera struct {
	active    bool
	snapshots []string
	err       error
}

func (s *stubCamera) Start() error { s.active = true; return nil }

func (s *stubCamera) Stop() { s.active = false }

func (s *stubCamera) Active() bool { return s.active }

func (s *stubCamera) Snapshot(path string) error {
	if s.err != nil {
		return s.err
	}
	s.snapshots = append(s.snapshots, path)
	return nil
}

type stubSpeaker struct {
	spoken   []string
	disabled bool
}

func (s *stubSpeaker) Speak(text string) { s.spoken = append(s.spoken, text) }
func (s *stubSpeaker) Enabled() bool     { return !s.disabled }

type stubPrompter struct {
	path    string
	enabled bool
}

func (s *stubPrompter) AskSavePath(defaultPath string) (string, error) {
	if s.path == "default" {
		return defaultPath, nil
	}
	return s.path, nil
}

func (s *stubPrompter) Enabled() bool { return s.enabled }

type memoryHistory struct {
	records []domain.HistoryRecord
}

func (m *memoryHistory) Save(record domain.HistoryRecord) error {
	m.records = append(m.records, record)
	return nil
}

func (m *memoryHistory) Records(int, string) ([]domain.HistoryRecord, error) {
	return m.records, nil
}

func (m *memoryHistory) Clear() error {
	m.records = nil
	return nil
}

func newTestService(t *testing.T) (*Service, *stubResolver, *stubWeb, *stubBrowser, *stubSystem, *stubSpeaker) {
	t.Helper()
	resolver := &stubResolver{outcome: domain.NoAnswer()}
	web := &stubWeb{}
	browser := &stubBrowser{}
	system := &stubSystem{}
	speaker := &stubSpeaker{}
	svc := &Service{
		Resolver:      resolver,
		Web:           web,
		Browser:       browser,
		System:        system,
		Screen:        &stubScreen{},
		Camera:        &stubCamera{},
		SavePrompt:    &stubPrompter{},
		Speaker:       speaker,
		History:       &memoryHistory{},
		Logger:        logger.New(false),
		SaveDir:       t.TempDir(),
		MaxCandidates: 5,
		Now:           func() time.Time { return time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC) },
	}
	return svc, resolver, web, browser, system, speaker
}

func TestDispatchEmptyCommand(t *testing.T) {
	svc, _, _, _, _, speaker := newTestService(t)
	res := svc.Dispatch(context.Background(), "   ", domain.SourceTyped)
	if res.Handled {
		t.Fatal("blank command was handled")
	}
	if len(speaker.spoken) != 0 {
		t.Fatalf("blank command spoke: %v", speaker.spoken)
	}
}

func TestDispatchOpenFolder(t *testing.T) {
	svc, _, _, _, system, speaker := newTestService(t)
	res := svc.Dispatch(context.Background(), "open folder downloads", domain.SourceVoice)
	if !res.Handled || res.Intent != domain.IntentOpenFolder {
		t.Fatalf("Dispatch() = %+v", res)
	}
	if len(system.openedFolders) != 1 || system.openedFolders[0] != "downloads" {
		t.Fatalf("opened folders = %v", system.openedFolders)
	}
	if speaker.spoken[len(speaker.spoken)-1] != "Opened folder." {
		t.Fatalf("spoken = %v", speaker.spoken)
	}
}

func TestDispatchOpenFolderDefaultsToHome(t *testing.T) {
	svc, _, _, _, system, _ := newTestService(t)
	svc.Dispatch(context.Background(), "open folder", domain.SourceTyped)
	if len(system.openedFolders) != 1 || system.openedFolders[0] == "" {
		t.Fatalf("opened folders = %v, want home directory", system.openedFolders)
	}
}

func TestDispatchOpenFolderFailure(t *testing.T) {
	svc, _, _, _, system, speaker := newTestService(t)
	system.failOpenFolder = true
	res := svc.Dispatch(context.Background(), "open folder nowhere", domain.SourceTyped)
	if !res.Handled {
		t.Fatal("failed open should still be handled")
	}
	if res.Spoken != "I could not open that folder." {
		t.Fatalf("Spoken = %q", res.Spoken)
	}
	_ = speaker
}

func TestDispatchOpenURL(t *testing.T) {
	svc, _, _, browser, system, _ := newTestService(t)
	svc.Dispatch(context.Background(), "open https://example.com", domain.SourceTyped)
	if len(browser.openedURLs) != 1 || browser.openedURLs[0] != "https://example.com" {
		t.Fatalf("opened URLs = %v", browser.openedURLs)
	}
	if len(system.openedApps) != 0 {
		t.Fatalf("application opened for a URL: %v", system.openedApps)
	}
}

func TestDispatchOpenApplication(t *testing.T) {
	svc, _, _, _, system, speaker := newTestService(t)
	svc.Dispatch(context.Background(), "launch notepad", domain.SourceVoice)
	if len(system.openedApps) != 1 || system.openedApps[0] != "notepad" {
		t.Fatalf("opened apps = %v", system.openedApps)
	}
	if speaker.spoken[len(speaker.spoken)-1] != "Opening notepad" {
		t.Fatalf("spoken = %v", speaker.spoken)
	}
}

func TestDispatchDisabledSpeakerStaysQuiet(t *testing.T) {
	svc, _, _, _, system, speaker := newTestService(t)
	speaker.disabled = true
	res := svc.Dispatch(context.Background(), "launch notepad", domain.SourceVoice)
	if len(speaker.spoken) != 0 {
		t.Fatalf("spoke through disabled speaker: %v", speaker.spoken)
	}
	if res.Spoken != "Opening notepad" {
		t.Fatalf("Spoken = %q, want feedback still reported", res.Spoken)
	}
	if len(system.openedApps) != 1 {
		t.Fatalf("opened apps = %v", system.openedApps)
	}
}

func TestDispatchShutdownRequiresConfirmation(t *testing.T) {
	svc, _, _, _, system, _ := newTestService(t)
	res := svc.Dispatch(context.Background(), "shutdown", domain.SourceVoice)
	if !res.Handled {
		t.Fatal("unconfirmed shutdown should be handled")
	}
	if len(system.shutdownCalls) != 0 {
		t.Fatalf("shutdown invoked without confirmation: %v", system.shutdownCalls)
	}
	if !strings.Contains(res.Spoken, "confirm") {
		t.Fatalf("Spoken = %q, want confirmation request", res.Spoken)
	}
}

func TestDispatchShutdownConfirmed(t *testing.T) {
	svc, _, _, _, system, _ := newTestService(t)
	res := svc.Dispatch(context.Background(), "shutdown confirm", domain.SourceVoice)
	if len(system.shutdownCalls) != 1 || !system.shutdownCalls[0] {
		t.Fatalf("shutdown calls = %v, want one confirmed call", system.shutdownCalls)
	}
	if res.Spoken != "Shutting down. Goodbye." {
		t.Fatalf("Spoken = %q", res.Spoken)
	}
}

func TestDispatchRestartConfirmed(t *testing.T) {
	svc, _, _, _, system, _ := newTestService(t)
	svc.Dispatch(context.Background(), "restart yes", domain.SourceTyped)
	if len(system.restartCalls) != 1 || !system.restartCalls[0] {
		t.Fatalf("restart calls = %v", system.restartCalls)
	}
}

func TestDispatchScreenshot(t *testing.T) {
	svc, _, _, _, _, speaker := newTestService(t)
	screen := &stubScreen{}
	svc.Screen = screen
	svc.SavePrompt = &stubPrompter{path: "default", enabled: true}

	res := svc.Dispatch(context.Background(), "take a screenshot", domain.SourceVoice)
	if len(screen.paths) != 1 {
		t.Fatalf("capture paths = %v", screen.paths)
	}
	want := filepath.Join(svc.SaveDir, "screenshot-20260823-120000.png")
	if screen.paths[0] != want {
		t.Fatalf("capture path = %q, want %q", screen.paths[0], want)
	}
	if res.Spoken != "Screenshot saved." {
		t.Fatalf("Spoken = %q", res.Spoken)
	}
	_ = speaker
}

func TestDispatchScreenshotCancelled(t *testing.T) {
	svc, _, _, _, _, _ := newTestService(t)
	screen := &stubScreen{}
	svc.Screen = screen
	svc.SavePrompt = &stubPrompter{path: "", enabled: true}

	res := svc.Dispatch(context.Background(), "screenshot", domain.SourceTyped)
	if len(screen.paths) != 0 {
		t.Fatalf("capture ran after cancel: %v", screen.paths)
	}
	if res.Spoken != "" {
		t.Fatalf("Spoken = %q, want silence on cancel", res.Spoken)
	}
	joined := strings.Join(res.Log, "\n")
	if !strings.Contains(joined, "cancelled") {
		t.Fatalf("Log = %v, want cancel entry", res.Log)
	}
}

func TestDispatchPhotoRequiresActiveCamera(t *testing.T) {
	svc, _, _, _, _, _ := newTestService(t)
	camera := &stubCamera{}
	svc.Camera = camera

	res := svc.Dispatch(context.Background(), "capture a photo", domain.SourceVoice)
	if len(camera.snapshots) != 0 {
		t.Fatalf("snapshot taken with inactive camera: %v", camera.snapshots)
	}
	if res.Spoken != "The camera is not running." {
		t.Fatalf("Spoken = %q", res.Spoken)
	}
}

func TestDispatchPhotoWithActiveCamera(t *testing.T) {
	svc, _, _, _, _, _ := newTestService(t)
	camera := &stubCamera{active: true}
	svc.Camera = camera
	svc.SavePrompt = &stubPrompter{path: "default", enabled: true}

	res := svc.Dispatch(context.Background(), "capture a picture", domain.SourceVoice)
	if len(camera.snapshots) != 1 {
		t.Fatalf("snapshots = %v", camera.snapshots)
	}
	if res.Spoken != "Photo saved." {
		t.Fatalf("Spoken = %q", res.Spoken)
	}
}

func TestDispatchKnowledgeAnswered(t *testing.T) {
	svc, resolver, _, browser, _, speaker := newTestService(t)
	resolver.outcome = domain.Answer("The telephone was invented by Bell.", domain.LookupSourceStructured)

	res := svc.Dispatch(context.Background(), "who invented the telephone", domain.SourceVoice)
	if res.Intent != domain.IntentKnowledge {
		t.Fatalf("Intent = %s", res.Intent)
	}
	if len(resolver.queries) != 1 || resolver.queries[0] != "who invented the telephone" {
		t.Fatalf("resolver queries = %v", resolver.queries)
	}
	if res.Spoken != "The telephone was invented by Bell." {
		t.Fatalf("Spoken = %q", res.Spoken)
	}
	if speaker.spoken[0] != "Let me look that up." {
		t.Fatalf("first speech = %q", speaker.spoken[0])
	}
	if len(browser.searchQueries) != 0 {
		t.Fatalf("browser opened despite an answer: %v", browser.searchQueries)
	}
}

func TestDispatchKnowledgeFallsBackToBrowser(t *testing.T) {
	svc, resolver, _, browser, _, _ := newTestService(t)
	resolver.outcome = domain.NoAnswer()

	res := svc.Dispatch(context.Background(), "what is the airspeed of a swallow", domain.SourceVoice)
	if len(browser.searchQueries) != 1 {
		t.Fatalf("browser searches = %v, want one", browser.searchQueries)
	}
	if res.Spoken != "I opened the browser with search results." {
		t.Fatalf("Spoken = %q", res.Spoken)
	}
}

func TestDispatchExplicitLookupNeverOpensBrowser(t *testing.T) {
	svc, resolver, web, browser, _, _ := newTestService(t)
	resolver.outcome = domain.NoAnswer()
	web.snippetOK = false

	res := svc.Dispatch(context.Background(), "wiki obscure topic", domain.SourceVoice)
	if !web.snippetCalled {
		t.Fatal("explicit lookup skipped the web retry")
	}
	if len(browser.searchQueries) != 0 || len(browser.openedURLs) != 0 {
		t.Fatal("explicit lookup opened the browser")
	}
	if res.Spoken != "I couldn't find an answer." {
		t.Fatalf("Spoken = %q", res.Spoken)
	}
}

func TestDispatchExplicitLookupWebRetry(t *testing.T) {
	svc, resolver, web, _, _, _ := newTestService(t)
	resolver.outcome = domain.NoAnswer()
	web.snippet = domain.WebResult{Title: "Topic", Snippet: "About it.", SourceURL: "https://example.com/topic"}
	web.snippetOK = true

	res := svc.Dispatch(context.Background(), "wiki topic", domain.SourceVoice)
	if !strings.Contains(res.Spoken, "About it.") {
		t.Fatalf("Spoken = %q, want web retry answer", res.Spoken)
	}
}

func TestDispatchWebSearchOpensFirstResult(t *testing.T) {
	svc, _, web, browser, _, _ := newTestService(t)
	web.urls = []string{"https://first.example", "https://second.example"}

	res := svc.Dispatch(context.Background(), "weather in tokyo", domain.SourceVoice)
	if res.Intent != domain.IntentWebSearch {
		t.Fatalf("Intent = %s", res.Intent)
	}
	if len(browser.openedURLs) != 1 || browser.openedURLs[0] != "https://first.example" {
		t.Fatalf("opened URLs = %v", browser.openedURLs)
	}
	if res.Spoken != "I opened the first result in your browser." {
		t.Fatalf("Spoken = %q", res.Spoken)
	}
}

func TestDispatchWebSearchFallsBackToSearchPage(t *testing.T) {
	svc, _, web, browser, _, _ := newTestService(t)
	web.urls = nil

	svc.Dispatch(context.Background(), "weather in tokyo", domain.SourceVoice)
	if len(browser.searchQueries) != 1 || browser.searchQueries[0] != "weather in tokyo" {
		t.Fatalf("search queries = %v", browser.searchQueries)
	}
}

func TestDispatchRecordsHistory(t *testing.T) {
	svc, _, _, _, _, _ := newTestService(t)
	history := &memoryHistory{}
	svc.History = history

	svc.Dispatch(context.Background(), "open folder downloads", domain.SourceVoice)
	if len(history.records) != 1 {
		t.Fatalf("history records = %d, want 1", len(history.records))
	}
	rec := history.records[0]
	if rec.Command != "open folder downloads" || rec.Intent != domain.IntentOpenFolder || !rec.Handled {
		t.Fatalf("history record = %+v", rec)
	}
	if rec.Source != domain.SourceVoice {
		t.Fatalf("history source = %s", rec.Source)
	}
}
