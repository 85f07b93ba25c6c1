package settings

import (
	"codeberg.org/miketth/hyprtint/pkg/hyprtint"
	"errors"
	"fmt"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("settings not found")

// BlobStore persists the encoded settings. Read wraps ErrNotFound when
// nothing has been saved yet.
type BlobStore interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// DefaultsSource supplies the values used on first run.
type DefaultsSource interface {
	DefaultLayout() (hyprtint.LayoutID, error)
	Current() (hyprtint.ColorParameters, error)
}

const FallbackLayout hyprtint.LayoutID = "us"

// FallbackScheme matches Hyprland's stock border colours.
var FallbackScheme = hyprtint.ColorParameters{
	Color:          0xee33ccff,
	AfterglowColor: 0xaa595959,
}

type LoadErrorKind int

const (
	NotFound LoadErrorKind = iota
	Unreadable
	Corrupt
)

func (k LoadErrorKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case Unreadable:
		return "unreadable"
	case Corrupt:
		return "corrupt"
	}
	return "unknown"
}

type LoadError struct {
	Kind LoadErrorKind
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load settings: %s: %v", e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type Manager struct {
	store    BlobStore
	defaults DefaultsSource
	log      *zap.SugaredLogger
}

func NewManager(store BlobStore, defaults DefaultsSource, log *zap.SugaredLogger) *Manager {
	return &Manager{
		store:    store,
		defaults: defaults,
		log:      log,
	}
}

// Read returns the persisted configuration or a *LoadError.
func (m *Manager) Read() (hyprtint.Configuration, error) {
	data, err := m.store.Read()
	switch {
	case errors.Is(err, ErrNotFound):
		return hyprtint.Configuration{}, &LoadError{Kind: NotFound, Err: err}
	case err != nil:
		return hyprtint.Configuration{}, &LoadError{Kind: Unreadable, Err: err}
	}

	cfg, err := Decode(data)
	if err != nil {
		return hyprtint.Configuration{}, &LoadError{Kind: Corrupt, Err: err}
	}

	return cfg, nil
}

// Load never fails: unusable settings are replaced by defaults, which are
// persisted if possible.
func (m *Manager) Load() hyprtint.Configuration {
	cfg, err := m.Read()
	if err == nil {
		m.log.Debugw("loaded settings", "default_layout", cfg.DefaultLayout)
		return cfg
	}

	var loadErr *LoadError
	if errors.As(err, &loadErr) && loadErr.Kind == NotFound {
		m.log.Infow("no saved settings, using defaults")
	} else {
		m.log.Warnw("saved settings unusable, using defaults", "error", err)
	}

	cfg = m.Defaults()
	if err := m.Save(cfg); err != nil {
		m.log.Warnw("persist default settings", "error", err)
	}

	return cfg
}

func (m *Manager) Defaults() hyprtint.Configuration {
	layout, err := m.defaults.DefaultLayout()
	if err != nil || layout == "" {
		m.log.Warnw("get default layout", "error", err, "fallback", FallbackLayout)
		layout = FallbackLayout
	}

	scheme, err := m.defaults.Current()
	if err != nil {
		m.log.Warnw("get current colorization", "error", err)
		scheme = FallbackScheme
	}

	return hyprtint.Configuration{
		DefaultLayout:     layout,
		DefaultScheme:     scheme,
		AlternativeScheme: scheme,
	}
}

func (m *Manager) Save(cfg hyprtint.Configuration) error {
	data, err := Encode(cfg)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := m.store.Write(data); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}
