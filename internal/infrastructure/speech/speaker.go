// Package speech adapts the speech collaborators: text-to-speech output and
// microphone capture. Both shell out to configurable commands so the core
// stays free of audio engine bindings.
package speech

import (
	"os/exec"
	"runtime"
	"strconv"

	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/ports"
)

// ExecSpeaker speaks by launching a TTS command per utterance. Speak is
// fire-and-forget: the command runs in its own goroutine and failures are
// logged, never returned.
type ExecSpeaker struct {
	command string
	rate    int
	enabled bool
	logger  ports.Logger
	run     func(name string, args ...string) error
}

// NewSpeaker builds a speaker from config. An empty command picks the
// platform default (say on darwin, espeak elsewhere).
func NewSpeaker(settings domain.SpeechSettings, logger ports.Logger) *ExecSpeaker {
	command := settings.Command
	if command == "" {
		if runtime.GOOS == "darwin" {
			command = "say"
		} else {
			command = "espeak"
		}
	}
	rate := settings.Rate
	if rate == 0 {
		rate = domain.DefaultSpeechRate
	}
	enabled := settings.Enabled
	if enabled {
		if _, err := exec.LookPath(command); err != nil {
			logger.Warn("tts command not found, speech disabled", map[string]interface{}{"command": command})
			enabled = false
		}
	}
	return &ExecSpeaker{
		command: command,
		rate:    rate,
		enabled: enabled,
		logger:  logger,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// Speak implements ports.Speaker. It never blocks the caller; ordering
// between consecutive calls is not guaranteed.
func (s *ExecSpeaker) Speak(text string) {
	if !s.enabled || text == "" {
		return
	}
	go func() {
		args := s.args(text)
		if err := s.run(s.command, args...); err != nil {
			s.logger.Warn("speech failed", map[string]interface{}{"error": err.Error()})
		}
	}()
}

// Enabled implements ports.Speaker.
func (s *ExecSpeaker) Enabled() bool {
	return s.enabled
}

func (s *ExecSpeaker) args(text string) []string {
	switch s.command {
	case "say":
		return []string{"-r", strconv.Itoa(s.rate), text}
	case "espeak", "espeak-ng":
		return []string{"-s", strconv.Itoa(s.rate), text}
	default:
		return []string{text}
	}
}

var _ ports.Speaker = (*ExecSpeaker)(nil)
