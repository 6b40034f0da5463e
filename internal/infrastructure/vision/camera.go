// Package vision adapts the image-capture collaborators: a single-shot
// camera and a full-screen grabber, both backed by platform commands.
package vision

import (
	"errors"
	"os/exec"
	"runtime"
	"sync"

	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/ports"
)

// ErrCameraInactive is returned when a snapshot is requested while the
// camera has not been started.
var ErrCameraInactive = errors.New("camera not running")

// ExecCamera owns the camera device. A mutex serializes snapshot attempts:
// only one consumer may read frames at a time.
type ExecCamera struct {
	mu      sync.Mutex
	active  bool
	device  string
	command string
	logger  ports.Logger
	run     func(name string, args ...string) error
}

// NewCamera builds a camera adapter. An empty snapshot command picks the
// platform default (imagesnap on darwin, fswebcam elsewhere).
func NewCamera(settings domain.VisionSettings, logger ports.Logger) *ExecCamera {
	command := settings.SnapshotCommand
	if command == "" {
		if runtime.GOOS == "darwin" {
			command = "imagesnap"
		} else {
			command = "fswebcam"
		}
	}
	return &ExecCamera{
		device:  settings.CameraDevice,
		command: command,
		logger:  logger,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// Start marks the camera active. The capture command must exist on PATH.
func (c *ExecCamera) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active {
		return nil
	}
	if _, err := exec.LookPath(c.command); err != nil {
		return err
	}
	c.active = true
	c.logger.Info("camera started", map[string]interface{}{"command": c.command})
	return nil
}

// Stop marks the camera inactive.
func (c *ExecCamera) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active {
		c.active = false
		c.logger.Info("camera stopped", nil)
	}
}

// Active reports whether the camera is started.
func (c *ExecCamera) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Snapshot grabs one frame and writes it to path. Requires Start first.
func (c *ExecCamera) Snapshot(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.active {
		return ErrCameraInactive
	}
	return c.run(c.command, c.snapshotArgs(path)...)
}

func (c *ExecCamera) snapshotArgs(path string) []string {
	switch c.command {
	case "imagesnap":
		return []string{path}
	case "fswebcam":
		args := []string{"--no-banner"}
		if c.device != "" {
			args = append(args, "-d", c.device)
		}
		return append(args, path)
	default:
		return []string{path}
	}
}

var _ ports.Camera = (*ExecCamera)(nil)
