package speech

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/ports"
)

// ExecCapturer captures one utterance by running a transcriber command that
// listens on the microphone and prints recognized text to stdout. Timeouts,
// exit errors, and empty transcripts are all surfaced as ok == false; no
// recognition failure escapes this boundary.
type ExecCapturer struct {
	command string
	logger  ports.Logger
}

// NewCapturer builds a capturer around the configured transcriber command.
// An empty command yields a capturer that always reports no utterance, so a
// machine without a microphone stack still runs the text path.
func NewCapturer(settings domain.CaptureSettings, logger ports.Logger) *ExecCapturer {
	return &ExecCapturer{command: settings.Command, logger: logger}
}

// Capture implements ports.Capturer. The transcriber receives the phrase
// limit as an argument and is bounded by timeout + phraseLimit overall.
func (c *ExecCapturer) Capture(ctx context.Context, timeout, phraseLimit time.Duration) (domain.Utterance, bool) {
	if c.command == "" {
		return domain.Utterance{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, timeout+phraseLimit)
	defer cancel()

	seconds := int(phraseLimit / time.Second)
	cmd := exec.CommandContext(ctx, c.command, "--seconds", strconv.Itoa(seconds))
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		kind := domain.FailureCaptureUnrecognized
		if ctx.Err() == context.DeadlineExceeded {
			kind = domain.FailureCaptureTimeout
		}
		c.logger.Debug("capture yielded nothing", map[string]interface{}{"kind": string(kind)})
		return domain.Utterance{}, false
	}

	text := strings.TrimSpace(stdout.String())
	if text == "" {
		return domain.Utterance{}, false
	}
	return domain.Utterance{Text: text, Source: domain.SourceVoice}, true
}

var _ ports.Capturer = (*ExecCapturer)(nil)
