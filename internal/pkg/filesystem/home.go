package filesystem

import (
	"os"
	"path/filepath"
	"strings"
)

// UserHomeDir returns the current user's home directory, or "." when it
// cannot be determined.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// ExpandPath resolves a leading "~/" against the home directory and cleans
// the result. Absolute paths pass through unchanged.
func ExpandPath(path string) string {
	if path == "" {
		return UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}
