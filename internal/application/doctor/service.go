// Package doctor runs environment diagnostics for the assistant.
package doctor

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/pkg/filesystem"
	"github.com/doeshing/jarvis-go/internal/ports"
)

// Service runs environment diagnostics: configuration, audio tooling,
// capture tooling, lookup reachability, and storage paths.
type Service struct {
	ConfigProvider ports.ConfigProvider

	// lookPath and httpClient are injectable for tests.
	lookPath   func(file string) (string, error)
	httpClient *http.Client
}

// New builds a diagnostics service around the given config provider.
func New(provider ports.ConfigProvider) *Service {
	return &Service{
		ConfigProvider: provider,
		lookPath:       exec.LookPath,
		httpClient:     &http.Client{Timeout: 5 * time.Second},
	}
}

// Run executes all checks and returns a report. A config load failure is the
// only hard error; every other problem degrades to a warn or fail check.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("format version %s", cfg.ConfigFormatVersion)))

	checks = append(checks, s.wakewordCheck(cfg.Wakeword))
	checks = append(checks, s.captureCheck(cfg.Capture))
	checks = append(checks, s.speechCheck(cfg.Speech))
	checks = append(checks, s.visionCheck(cfg.Vision))
	checks = append(checks, s.lookupCheck(ctx, cfg.Lookup))
	checks = append(checks, s.storageCheck())

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) wakewordCheck(wake domain.WakewordSettings) domain.HealthCheck {
	if wake.Keyword == "" {
		return fail("Wakeword", "keyword is empty")
	}
	return ok("Wakeword", fmt.Sprintf("phrase %q, keyword %q", wake.Phrase, wake.Keyword))
}

func (s *Service) captureCheck(capture domain.CaptureSettings) domain.HealthCheck {
	if capture.Command == "" {
		return warn("Voice capture", "no transcriber command configured; voice input disabled")
	}
	if _, err := s.lookPath(capture.Command); err != nil {
		return fail("Voice capture", fmt.Sprintf("%s not found in PATH", capture.Command))
	}
	return ok("Voice capture", capture.Command)
}

func (s *Service) speechCheck(speech domain.SpeechSettings) domain.HealthCheck {
	if !speech.Enabled {
		return warn("Speech output", "disabled in config")
	}
	engine := speech.Command
	if engine == "" {
		if runtime.GOOS == "darwin" {
			engine = "say"
		} else {
			engine = "espeak"
		}
	}
	if _, err := s.lookPath(engine); err != nil {
		return warn("Speech output", fmt.Sprintf("%s not found in PATH; running silent", engine))
	}
	return ok("Speech output", engine)
}

func (s *Service) visionCheck(vision domain.VisionSettings) domain.HealthCheck {
	snapshot := vision.SnapshotCommand
	if snapshot == "" {
		if runtime.GOOS == "darwin" {
			snapshot = "imagesnap"
		} else {
			snapshot = "fswebcam"
		}
	}
	if _, err := s.lookPath(snapshot); err != nil {
		return warn("Camera", fmt.Sprintf("%s not found in PATH; photo capture disabled", snapshot))
	}
	return ok("Camera", snapshot)
}

func (s *Service) lookupCheck(ctx context.Context, lookup domain.LookupSettings) domain.HealthCheck {
	lang := lookup.WikiLanguage
	if lang == "" {
		lang = domain.DefaultWikiLanguage
	}
	endpoint := fmt.Sprintf("https://%s.wikipedia.org/api/rest_v1/", lang)
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, endpoint, nil)
	if err != nil {
		return warn("Knowledge lookup", err.Error())
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return warn("Knowledge lookup", fmt.Sprintf("wikipedia unreachable: %v", err))
	}
	defer resp.Body.Close()
	return ok("Knowledge lookup", fmt.Sprintf("wikipedia reachable (%s)", lang))
}

func (s *Service) storageCheck() domain.HealthCheck {
	dir := filesystem.ExpandPath("~/.jarvis")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fail("Storage", fmt.Sprintf("cannot create %s: %v", dir, err))
	}
	probe, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return fail("Storage", fmt.Sprintf("%s not writable: %v", dir, err))
	}
	probe.Close()
	os.Remove(probe.Name())
	return ok("Storage", dir)
}

func ok(name, detail string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Detail: detail}
}

func warn(name, detail string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Detail: detail}
}

func fail(name, detail string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthFail, Detail: detail}
}
