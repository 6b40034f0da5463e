package speech

import (
	"testing"
	"time"

	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/pkg/logger"
)

type spokenCall struct {
	name string
	args []string
}

func newTestSpeaker(t *testing.T, settings domain.SpeechSettings) (*ExecSpeaker, chan spokenCall) {
	t.Helper()
	// "echo" stands in for the TTS binary so LookPath succeeds everywhere.
	if settings.Command == "" {
		settings.Command = "echo"
	}
	speaker := NewSpeaker(settings, logger.New(false))
	calls := make(chan spokenCall, 4)
	speaker.run = func(name string, args ...string) error {
		calls <- spokenCall{name: name, args: args}
		return nil
	}
	return speaker, calls
}

func waitForCall(t *testing.T, calls chan spokenCall) spokenCall {
	t.Helper()
	select {
	case call := <-calls:
		return call
	case <-time.After(2 * time.Second):
		t.Fatal("Speak() never ran the command")
		return spokenCall{}
	}
}

func TestSpeakRunsCommand(t *testing.T) {
	speaker, calls := newTestSpeaker(t, domain.SpeechSettings{Enabled: true, Rate: 180})

	speaker.Speak("hello")

	call := waitForCall(t, calls)
	if call.name != "echo" {
		t.Fatalf("command = %q", call.name)
	}
	if len(call.args) != 1 || call.args[0] != "hello" {
		t.Fatalf("args = %v", call.args)
	}
}

func TestSpeakSayRateFlag(t *testing.T) {
	speaker, calls := newTestSpeaker(t, domain.SpeechSettings{Enabled: true, Command: "echo", Rate: 200})
	speaker.command = "say"

	speaker.Speak("hi")

	call := waitForCall(t, calls)
	want := []string{"-r", "200", "hi"}
	if len(call.args) != len(want) {
		t.Fatalf("args = %v, want %v", call.args, want)
	}
	for i := range want {
		if call.args[i] != want[i] {
			t.Fatalf("args = %v, want %v", call.args, want)
		}
	}
}

func TestSpeakDisabledIsNoOp(t *testing.T) {
	speaker, calls := newTestSpeaker(t, domain.SpeechSettings{Enabled: false})

	speaker.Speak("hello")

	select {
	case call := <-calls:
		t.Fatalf("disabled speaker ran %v", call)
	case <-time.After(50 * time.Millisecond):
	}
	if speaker.Enabled() {
		t.Fatal("Enabled() = true for disabled speaker")
	}
}

func TestSpeakEmptyTextIsNoOp(t *testing.T) {
	speaker, calls := newTestSpeaker(t, domain.SpeechSettings{Enabled: true})

	speaker.Speak("")

	select {
	case call := <-calls:
		t.Fatalf("empty text ran %v", call)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNewSpeakerDisablesOnMissingBinary(t *testing.T) {
	settings := domain.SpeechSettings{Enabled: true, Command: "definitely-not-a-tts-binary"}
	speaker := NewSpeaker(settings, logger.New(false))
	if speaker.Enabled() {
		t.Fatal("Enabled() = true with missing command")
	}
}
