// Package listen runs the continuous voice loop: capture, wakeword gate,
// dispatch.
package listen

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/infrastructure/wakeword"
	"github.com/doeshing/jarvis-go/internal/ports"
)

// Loop is the listening state machine. Each iteration captures at most one
// utterance and dispatches at most one command; a bare wakeword triggers one
// acknowledged follow-up capture before the loop returns to idle. Dispatches
// run inline, so a command that is still executing delays the next capture
// rather than racing it.
type Loop struct {
	Capturer   ports.Capturer
	Dispatcher ports.Dispatcher
	Speaker    ports.Speaker
	Logger     ports.Logger
	Wakeword   *wakeword.Normalizer
	Capture    domain.CaptureSettings

	// Sleep is injectable so tests run without real backoff delays.
	Sleep func(time.Duration)

	stopped atomic.Bool
}

// Stop requests loop termination. The current capture finishes its timeout
// window first; Stop never interrupts an in-flight dispatch.
func (l *Loop) Stop() {
	l.stopped.Store(true)
}

// Stopped reports whether a stop was requested.
func (l *Loop) Stopped() bool {
	return l.stopped.Load()
}

// Run drives the loop until Stop is called or ctx is cancelled. Startup and
// shutdown announcements bracket the loop.
func (l *Loop) Run(ctx context.Context) {
	l.announce()

	for !l.stopped.Load() {
		if ctx.Err() != nil {
			break
		}
		l.iterate(ctx)
	}

	l.Logger.Info("listening loop stopped", nil)
	l.speak("Going offline.")
}

// iterate performs one capture window. Exposed to tests through RunOnce.
func (l *Loop) iterate(ctx context.Context) {
	utterance, ok := l.Capturer.Capture(ctx, l.Capture.CaptureTimeout(), l.Capture.PhraseLimit())
	if !ok || utterance.Empty() {
		l.pause(l.Capture.Backoff())
		return
	}

	match := l.Wakeword.Match(utterance.Text)
	if !match.Matched {
		l.Logger.Debug("utterance without wakeword ignored", map[string]interface{}{
			"text": utterance.Text,
		})
		return
	}

	if match.Command != "" {
		l.Dispatcher.Dispatch(ctx, match.Command, domain.SourceVoice)
		return
	}

	// Bare wakeword: acknowledge, give the audio device a moment to settle,
	// then capture a follow-up command that needs no wakeword of its own.
	l.speak("Yes?")
	l.pause(l.Capture.AckPause())
	followUp, ok := l.Capturer.Capture(ctx, l.Capture.FollowUpTimeout(), l.Capture.FollowUpPhraseLimit())
	if !ok || followUp.Empty() {
		// No command after the acknowledgment: the turn is abandoned
		// without further speech.
		l.Logger.Debug("no follow-up command heard", nil)
		return
	}
	l.Dispatcher.Dispatch(ctx, l.Wakeword.Strip(followUp.Text), domain.SourceVoice)
}

// RunOnce executes a single loop iteration. Used by tests and by the
// press-to-talk CLI path.
func (l *Loop) RunOnce(ctx context.Context) {
	l.iterate(ctx)
}

func (l *Loop) announce() {
	l.Logger.Info("listening for wake phrase", map[string]interface{}{
		"timeout":      l.Capture.CaptureTimeout().String(),
		"phrase_limit": l.Capture.PhraseLimit().String(),
	})
	l.speak("Jarvis online. Listening.")
}

func (l *Loop) speak(text string) {
	if l.Speaker != nil && l.Speaker.Enabled() {
		l.Speaker.Speak(text)
	}
}

func (l *Loop) pause(d time.Duration) {
	if d <= 0 {
		return
	}
	if l.Sleep != nil {
		l.Sleep(d)
		return
	}
	time.Sleep(d)
}
