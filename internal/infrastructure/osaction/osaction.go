// Package osaction adapts OS-control commands (open app/folder, shutdown,
// restart, browser) behind the SystemActions and Browser ports. Every call
// fails closed: underlying exec errors become false returns, never panics or
// propagated errors.
package osaction

import (
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/doeshing/jarvis-go/internal/pkg/filesystem"
	"github.com/doeshing/jarvis-go/internal/ports"
)

// Actions implements ports.SystemActions and ports.Browser for the host
// platform. The start hook is injectable for tests; by default it launches
// the command detached and does not wait.
type Actions struct {
	goos   string
	logger ports.Logger
	start  func(name string, args ...string) error
}

// New builds the adapter for the current platform.
func New(logger ports.Logger) *Actions {
	return &Actions{
		goos:   runtime.GOOS,
		logger: logger,
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// OpenApplication tries to open an application by name, with practical
// conveniences for common requests (text editor, chrome, a browser).
func (a *Actions) OpenApplication(name string) bool {
	lower := strings.ToLower(name)

	switch {
	case strings.Contains(lower, "notepad"), strings.Contains(lower, "text"):
		return a.openEditor()
	case strings.Contains(lower, "chrome"):
		return a.openChrome()
	case strings.Contains(lower, "browser"), strings.Contains(lower, "firefox"):
		return a.OpenURL("https://www.google.com")
	}

	var err error
	switch a.goos {
	case "windows":
		err = a.start("cmd", "/c", "start", "", name)
	case "darwin":
		err = a.start("open", "-a", name)
	default:
		err = a.start(name)
	}
	if err != nil {
		a.logger.Warn("open application failed", map[string]interface{}{"app": name, "error": err.Error()})
		return false
	}
	return true
}

// OpenFolder opens a filesystem path in the platform file manager. The path
// must exist.
func (a *Actions) OpenFolder(path string) (bool, string) {
	path = filesystem.ExpandPath(path)
	if _, err := os.Stat(path); err != nil {
		return false, "Path does not exist"
	}

	var err error
	switch a.goos {
	case "windows":
		err = a.start("explorer", path)
	case "darwin":
		err = a.start("open", path)
	default:
		err = a.start("xdg-open", path)
	}
	if err != nil {
		return false, err.Error()
	}
	return true, "Opened"
}

// Shutdown powers the machine off. Refuses without confirmation.
func (a *Actions) Shutdown(confirm bool) (bool, string) {
	if !confirm {
		return false, "Confirmation required"
	}
	var err error
	switch a.goos {
	case "windows":
		err = a.start("shutdown", "/s", "/t", "10")
	default:
		err = a.start("shutdown", "-h", "now")
	}
	if err != nil {
		return false, err.Error()
	}
	return true, "Shutdown initiated"
}

// Restart reboots the machine. Refuses without confirmation.
func (a *Actions) Restart(confirm bool) (bool, string) {
	if !confirm {
		return false, "Confirmation required"
	}
	var err error
	switch a.goos {
	case "windows":
		err = a.start("shutdown", "/r", "/t", "10")
	default:
		err = a.start("shutdown", "-r", "now")
	}
	if err != nil {
		return false, err.Error()
	}
	return true, "Restart initiated"
}

// OpenURL opens a URL in the default browser.
func (a *Actions) OpenURL(target string) bool {
	var err error
	switch a.goos {
	case "windows":
		err = a.start("rundll32", "url.dll,FileProtocolHandler", target)
	case "darwin":
		err = a.start("open", target)
	default:
		err = a.start("xdg-open", target)
	}
	if err != nil {
		a.logger.Warn("open url failed", map[string]interface{}{"url": target, "error": err.Error()})
		return false
	}
	return true
}

// OpenSearch opens a search results page for the query.
func (a *Actions) OpenSearch(query string) bool {
	return a.OpenURL("https://www.google.com/search?q=" + url.QueryEscape(query))
}

func (a *Actions) openEditor() bool {
	if a.goos == "windows" {
		return a.start("notepad") == nil
	}
	for _, candidate := range []string{"gedit", "xed", "kate"} {
		if a.start(candidate) == nil {
			return true
		}
	}
	// Last resort mirrors "show me something": open the home folder.
	ok, _ := a.OpenFolder(filesystem.UserHomeDir())
	return ok
}

func (a *Actions) openChrome() bool {
	var err error
	switch a.goos {
	case "windows":
		err = a.start("cmd", "/c", "start", "chrome")
	case "darwin":
		err = a.start("open", "-a", "Google Chrome")
	default:
		err = a.start("google-chrome")
	}
	if err != nil {
		return a.OpenURL("https://www.google.com")
	}
	return true
}

var (
	_ ports.SystemActions = (*Actions)(nil)
	_ ports.Browser       = (*Actions)(nil)
)
