package hyprland

import (
	"errors"
	"fmt"
	"github.com/adrg/xdg"
	"os"
	"path/filepath"
)

var ErrNotRunning = errors.New("hyprland might not be running")

type socketType int

const (
	hyprctlSocket socketType = iota
	eventSocket
)

func (s socketType) fileName() (string, error) {
	switch s {
	case hyprctlSocket:
		return ".socket.sock", nil
	case eventSocket:
		return ".socket2.sock", nil
	}
	return "", fmt.Errorf("unknown socket type: %d", s)
}

// getSocketPath prefers $XDG_RUNTIME_DIR/hypr and falls back to the /tmp/hypr
// location used by older Hyprland releases.
func getSocketPath(sock socketType) (string, error) {
	signature := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE")
	if signature == "" {
		return "", fmt.Errorf("HYPRLAND_INSTANCE_SIGNATURE is not set, %w", ErrNotRunning)
	}

	name, err := sock.fileName()
	if err != nil {
		return "", err
	}

	runtimeDir := filepath.Join(xdg.RuntimeDir, "hypr", signature)
	if _, err := os.Stat(runtimeDir); err == nil {
		return filepath.Join(runtimeDir, name), nil
	}

	return filepath.Join("/tmp/hypr", signature, name), nil
}
