package appconfig

import (
	"codeberg.org/miketth/hyprtint/pkg/xkblayouts"
	"errors"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	Detectors DetectorsConfig `toml:"detectors"`
	Settings  SettingsConfig  `toml:"settings"`
	Layouts   LayoutsConfig   `toml:"layouts"`
	Log       LogConfig       `toml:"log"`
}

// DetectorsConfig holds watcher paths, relative to the hyprtint executable
// unless absolute. Secondary is empty by default: every watcher reads the
// same Hyprland event socket, so a second one only duplicates events.
type DetectorsConfig struct {
	Primary   string `toml:"primary"`
	Secondary string `toml:"secondary"`
}

type SettingsConfig struct {
	Backend string `toml:"backend"`
	// Path overrides the backend's per-user default location.
	Path string `toml:"path"`
}

type LayoutsConfig struct {
	EvdevXML string `toml:"evdev_xml"`
}

type LogConfig struct {
	Debug bool   `toml:"debug"`
	File  string `toml:"file"`
}

type LoadResult struct {
	Config   Config
	Warnings []string
}

func DefaultConfig() Config {
	return Config{
		Detectors: DetectorsConfig{
			Primary: filepath.Join("x64", "hyprtint-watcher"),
		},
		Settings: SettingsConfig{
			Backend: BackendFile,
		},
		Layouts: LayoutsConfig{
			EvdevXML: xkblayouts.DefaultRulesPath,
		},
	}
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "hyprtint", "config.toml")
}

// LoadFrom reads path on top of the defaults. A missing file is not an
// error; unknown keys are reported as warnings.
func LoadFrom(path string) (*LoadResult, error) {
	result := &LoadResult{Config: DefaultConfig()}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return result, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	meta, err := toml.Decode(string(data), &result.Config)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	for _, key := range meta.Undecoded() {
		result.Warnings = append(result.Warnings, fmt.Sprintf("unknown config key: %q", key.String()))
	}

	if err := validate(&result.Config); err != nil {
		return nil, err
	}

	return result, nil
}

func validate(cfg *Config) error {
	var problems []string

	switch cfg.Settings.Backend {
	case BackendFile, BackendSQLite:
	default:
		problems = append(problems, fmt.Sprintf("settings.backend must be %q or %q, got %q", BackendFile, BackendSQLite, cfg.Settings.Backend))
	}

	if strings.TrimSpace(cfg.Detectors.Primary) == "" {
		problems = append(problems, "detectors.primary must not be empty")
	}
	if strings.TrimSpace(cfg.Layouts.EvdevXML) == "" {
		problems = append(problems, "layouts.evdev_xml must not be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}

	return nil
}
