package autorun

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"github.com/adrg/xdg"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const entryName = "hyprtint.desktop"

// Entry is an XDG autostart desktop entry that launches Exec at login with
// no arguments, so the session starts hyprtint headless. The settings UI
// needs a terminal and is started by hand with --tui.
type Entry struct {
	Path string
	Exec string
}

// New returns the autostart entry for the running executable.
func New() (*Entry, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate executable: %w", err)
	}

	return &Entry{
		Path: filepath.Join(xdg.ConfigHome, "autostart", entryName),
		Exec: exe,
	}, nil
}

// Enabled reports whether the entry exists and points at e.Exec.
func (e *Entry) Enabled() (bool, error) {
	data, err := os.ReadFile(e.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read autostart entry: %w", err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if value, ok := strings.CutPrefix(strings.TrimSpace(scanner.Text()), "Exec="); ok {
			return value == quoteExec(e.Exec) || value == e.Exec, nil
		}
	}

	return false, nil
}

func (e *Entry) Enable() error {
	if err := os.MkdirAll(filepath.Dir(e.Path), 0755); err != nil {
		return fmt.Errorf("create autostart dir: %w", err)
	}

	content := fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=hyprtint
Comment=Border colours follow the keyboard layout
Exec=%s
Terminal=false
X-GNOME-Autostart-enabled=true
`, quoteExec(e.Exec))

	if err := os.WriteFile(e.Path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write autostart entry: %w", err)
	}

	return nil
}

func (e *Entry) Disable() error {
	if err := os.Remove(e.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove autostart entry: %w", err)
	}
	return nil
}

func (e *Entry) Set(enabled bool) error {
	if enabled {
		return e.Enable()
	}
	return e.Disable()
}

// quoteExec quotes path as one Exec argument. Reserved characters take a
// backslash, and every backslash is then doubled again by the string
// escaping that desktop entry values go through first. A literal % is
// written as %% so it is not read as a field code.
func quoteExec(path string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range path {
		switch r {
		case '"', '`', '$':
			b.WriteString(`\\`)
			b.WriteRune(r)
		case '\\':
			b.WriteString(`\\\\`)
		case '%':
			b.WriteString("%%")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
