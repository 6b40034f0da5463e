package dispatch

import (
	"testing"

	"github.com/doeshing/jarvis-go/internal/domain"
)

func TestClassifyTable(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    domain.Intent
	}{
		{
			name:    "open folder with argument",
			command: "open folder downloads",
			want:    domain.Intent{Kind: domain.IntentOpenFolder, Argument: "downloads"},
		},
		{
			name:    "open directory alias",
			command: "open directory /tmp/work",
			want:    domain.Intent{Kind: domain.IntentOpenFolder, Argument: "/tmp/work"},
		},
		{
			name:    "open folder without argument defaults later",
			command: "open folder",
			want:    domain.Intent{Kind: domain.IntentOpenFolder, Argument: ""},
		},
		{
			name:    "folder path keeps spaces",
			command: "open folder my project files",
			want:    domain.Intent{Kind: domain.IntentOpenFolder, Argument: "my project files"},
		},
		{
			name:    "open app",
			command: "open notepad",
			want:    domain.Intent{Kind: domain.IntentOpenAppOrURL, Argument: "notepad"},
		},
		{
			name:    "launch alias",
			command: "launch chrome",
			want:    domain.Intent{Kind: domain.IntentOpenAppOrURL, Argument: "chrome"},
		},
		{
			name:    "open url",
			command: "open https://example.com",
			want:    domain.Intent{Kind: domain.IntentOpenAppOrURL, Argument: "https://example.com"},
		},
		{
			name:    "shutdown unconfirmed",
			command: "shutdown",
			want:    domain.Intent{Kind: domain.IntentShutdown},
		},
		{
			name:    "shutdown confirmed",
			command: "shutdown confirm",
			want:    domain.Intent{Kind: domain.IntentShutdown, Confirmed: true},
		},
		{
			name:    "shutdown with yes",
			command: "yes shutdown the machine",
			want:    domain.Intent{Kind: domain.IntentShutdown, Confirmed: true},
		},
		{
			name:    "restart unconfirmed",
			command: "restart",
			want:    domain.Intent{Kind: domain.IntentRestart},
		},
		{
			name:    "reboot confirmed",
			command: "reboot confirm",
			want:    domain.Intent{Kind: domain.IntentRestart, Confirmed: true},
		},
		{
			name:    "screenshot",
			command: "take a screenshot",
			want:    domain.Intent{Kind: domain.IntentScreenshot},
		},
		{
			name:    "screen shot two words",
			command: "take a screen shot please",
			want:    domain.Intent{Kind: domain.IntentScreenshot},
		},
		{
			name:    "capture photo",
			command: "capture a photo",
			want:    domain.Intent{Kind: domain.IntentCapturePhoto},
		},
		{
			name:    "capture picture",
			command: "capture my picture",
			want:    domain.Intent{Kind: domain.IntentCapturePhoto},
		},
		{
			name:    "wiki prefix is explicit lookup",
			command: "wiki alan turing",
			want:    domain.Intent{Kind: domain.IntentKnowledge, Argument: "alan turing", ExplicitLookup: true},
		},
		{
			name:    "wikipedia prefix is explicit lookup",
			command: "wikipedia go programming language",
			want:    domain.Intent{Kind: domain.IntentKnowledge, Argument: "go programming language", ExplicitLookup: true},
		},
		{
			name:    "question word anywhere",
			command: "tell me what time it is",
			want:    domain.Intent{Kind: domain.IntentKnowledge, Argument: "tell me what time it is"},
		},
		{
			name:    "leading question word",
			command: "who invented the telephone",
			want:    domain.Intent{Kind: domain.IntentKnowledge, Argument: "who invented the telephone"},
		},
		{
			name:    "question word must be whole token",
			command: "somewhat interesting topic",
			want:    domain.Intent{Kind: domain.IntentWebSearch, Argument: "somewhat interesting topic"},
		},
		{
			name:    "fallback is generic search",
			command: "weather in tokyo",
			want:    domain.Intent{Kind: domain.IntentWebSearch, Argument: "weather in tokyo"},
		},
		{
			name:    "mixed case",
			command: "Open Folder Downloads",
			want:    domain.Intent{Kind: domain.IntentOpenFolder, Argument: "Downloads"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.command)
			if got != tt.want {
				t.Fatalf("Classify(%q) = %+v, want %+v", tt.command, got, tt.want)
			}
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	// "open folder" must beat the generic "open " rule.
	if got := Classify("open folder downloads"); got.Kind != domain.IntentOpenFolder {
		t.Fatalf("Classify() kind = %s, want open_folder", got.Kind)
	}
	// "what" inside an "open" command never reaches the question rule.
	if got := Classify("open whatsapp"); got.Kind != domain.IntentOpenAppOrURL {
		t.Fatalf("Classify() kind = %s, want open_app_or_url", got.Kind)
	}
	// Shutdown outranks the question rule even when a question word appears.
	if got := Classify("what happens on shutdown"); got.Kind != domain.IntentShutdown {
		t.Fatalf("Classify() kind = %s, want shutdown", got.Kind)
	}
}
