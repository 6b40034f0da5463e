package vision

import (
	"os/exec"
	"runtime"

	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/ports"
)

// ScreenGrabber captures the full screen via a platform command.
type ScreenGrabber struct {
	command string
	run     func(name string, args ...string) error
}

// NewScreenGrabber builds a grabber. An empty command picks the platform
// default (screencapture on darwin, gnome-screenshot elsewhere).
func NewScreenGrabber(settings domain.VisionSettings) *ScreenGrabber {
	command := settings.ScreenshotCommand
	if command == "" {
		if runtime.GOOS == "darwin" {
			command = "screencapture"
		} else {
			command = "gnome-screenshot"
		}
	}
	return &ScreenGrabber{
		command: command,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// Capture implements ports.ScreenCapturer.
func (g *ScreenGrabber) Capture(path string) error {
	switch g.command {
	case "screencapture":
		return g.run(g.command, "-x", path)
	case "gnome-screenshot":
		return g.run(g.command, "-f", path)
	default:
		return g.run(g.command, path)
	}
}

var _ ports.ScreenCapturer = (*ScreenGrabber)(nil)
