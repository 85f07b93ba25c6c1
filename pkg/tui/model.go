package tui

import (
	"codeberg.org/miketth/hyprtint/pkg/hyprtint"
	"fmt"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type ViewState int

const (
	ViewTray ViewState = iota
	ViewSettings
)

type SettingsSaver interface {
	Save(cfg hyprtint.Configuration) error
}

type LayoutLister interface {
	Layouts() ([]LayoutOption, error)
}

type Autorun interface {
	Enabled() (bool, error)
	Set(enabled bool) error
}

type layoutChangedMsg struct {
	layout hyprtint.LayoutID
}

type Model struct {
	keys KeyMap
	view ViewState

	controller *hyprtint.Controller
	colorizer  hyprtint.Colorizer
	settings   SettingsSaver
	layouts    LayoutLister
	autorun    Autorun

	current hyprtint.LayoutID
	status  string

	draft         hyprtint.Configuration
	options       []LayoutOption
	cursor        int
	autorunOn     bool
	settingsError string
}

func NewModel(controller *hyprtint.Controller, colorizer hyprtint.Colorizer, settings SettingsSaver, layouts LayoutLister, autorun Autorun) Model {
	return Model{
		keys:       DefaultKeyMap(),
		view:       ViewTray,
		controller: controller,
		colorizer:  colorizer,
		settings:   settings,
		layouts:    layouts,
		autorun:    autorun,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case layoutChangedMsg:
		m.current = msg.layout
		m.controller.HandleLayoutChange(msg.layout)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.controller.Hide()
			return m, tea.Quit
		}
		if m.view == ViewSettings {
			return m.updateSettings(msg)
		}
		return m.updateTray(msg)
	}

	return m, nil
}

func (m Model) updateTray(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Open):
		return m.openSettings(), nil
	}
	return m, nil
}

func (m Model) openSettings() Model {
	m.controller.Show()
	m.view = ViewSettings
	m.status = ""
	m.settingsError = ""
	m.draft = m.controller.Configuration()

	options, err := m.layouts.Layouts()
	if err != nil {
		m.settingsError = fmt.Sprintf("could not list layouts: %v", err)
	}
	m.options = options

	// the configured layout may no longer be installed; keep it selectable
	m.cursor = -1
	for i, opt := range m.options {
		if opt.ID == m.draft.DefaultLayout {
			m.cursor = i
		}
	}
	if m.cursor == -1 {
		m.options = append([]LayoutOption{{ID: m.draft.DefaultLayout, Name: string(m.draft.DefaultLayout)}}, m.options...)
		m.cursor = 0
	}

	enabled, err := m.autorun.Enabled()
	if err != nil {
		m.settingsError = fmt.Sprintf("could not check autostart: %v", err)
	}
	m.autorunOn = enabled

	return m
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.controller.Hide()
		m.view = ViewTray
		m.status = "settings discarded"

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.draft.DefaultLayout = m.options[m.cursor].ID
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
			m.draft.DefaultLayout = m.options[m.cursor].ID
		}

	case key.Matches(msg, m.keys.CaptureDefault):
		if params, ok := m.capture(); ok {
			m.draft.DefaultScheme = params
		}

	case key.Matches(msg, m.keys.CaptureAlt):
		if params, ok := m.capture(); ok {
			m.draft.AlternativeScheme = params
		}

	case key.Matches(msg, m.keys.ToggleAutorun):
		m.autorunOn = !m.autorunOn

	case key.Matches(msg, m.keys.Save):
		return m.save(), nil
	}

	return m, nil
}

func (m *Model) capture() (hyprtint.ColorParameters, bool) {
	params, err := m.colorizer.Current()
	if err != nil {
		m.settingsError = fmt.Sprintf("could not read current colours: %v", err)
		return hyprtint.ColorParameters{}, false
	}
	m.settingsError = ""
	return params, true
}

// save keeps the settings view open when persisting fails.
func (m Model) save() Model {
	if err := m.settings.Save(m.draft); err != nil {
		m.settingsError = fmt.Sprintf("could not save settings: %v", err)
		return m
	}

	m.controller.SetConfiguration(m.draft)
	m.controller.Hide()
	m.view = ViewTray
	m.status = "settings saved"

	if err := m.autorun.Set(m.autorunOn); err != nil {
		m.status = fmt.Sprintf("settings saved, but could not change autostart: %v", err)
	}

	return m
}
