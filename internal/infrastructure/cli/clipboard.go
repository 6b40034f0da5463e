package cli

import (
	"bytes"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/doeshing/jarvis-go/internal/ports"
)

// Clipboard implements ports.Clipboard using platform-specific tools.
type Clipboard struct{}

// NewClipboard builds the clipboard helper.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

func (c *Clipboard) Enabled() bool {
	switch runtime.GOOS {
	case "darwin", "linux":
		return true
	default:
		return false
	}
}

// Copy places text on the system clipboard so a resolved answer can be
// pasted elsewhere.
func (c *Clipboard) Copy(text string) error {
	if !c.Enabled() {
		return fmt.Errorf("clipboard not supported on %s", runtime.GOOS)
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	default: // linux
		switch {
		case available("xclip"):
			cmd = exec.Command("xclip", "-selection", "clipboard")
		case available("wl-copy"):
			cmd = exec.Command("wl-copy")
		case available("xsel"):
			cmd = exec.Command("xsel", "--clipboard", "--input")
		default:
			return fmt.Errorf("clipboard utilities not found")
		}
	}
	cmd.Stdin = bytes.NewBufferString(text)
	return cmd.Run()
}

func available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

var _ ports.Clipboard = (*Clipboard)(nil)
