package tui

import (
	"codeberg.org/miketth/hyprtint/pkg/hyprland"
	"codeberg.org/miketth/hyprtint/pkg/hyprtint"
	"fmt"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"strings"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

func swatch(argb uint32) string {
	c, _ := hyprland.ToColorful(argb)
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("    ")
}

func schemeLine(label string, params hyprtint.ColorParameters) string {
	return fmt.Sprintf("%-12s %s %s  %s %s",
		label,
		swatch(params.Color), hyprland.FormatRGBA(params.Color),
		swatch(params.AfterglowColor), hyprland.FormatRGBA(params.AfterglowColor),
	)
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return dimStyle.Render(strings.Join(parts, " • "))
}

func (m Model) View() string {
	if m.view == ViewSettings {
		return m.settingsView()
	}
	return m.trayView()
}

func (m Model) trayView() string {
	var b strings.Builder
	cfg := m.controller.Configuration()

	b.WriteString(titleStyle.Render("hyprtint"))
	b.WriteString("\n\n")

	current := string(m.current)
	if current == "" {
		current = "(no change seen yet)"
	}
	fmt.Fprintf(&b, "active layout   %s\n", current)
	fmt.Fprintf(&b, "default layout  %s\n\n", cfg.DefaultLayout)
	b.WriteString(schemeLine("default", cfg.DefaultScheme) + "\n")
	b.WriteString(schemeLine("alternative", cfg.AlternativeScheme) + "\n\n")

	if m.status != "" {
		b.WriteString(dimStyle.Render(m.status) + "\n\n")
	}

	b.WriteString(helpLine(m.keys.Open, m.keys.Quit))
	return b.String()
}

func (m Model) settingsView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("hyprtint settings"))
	b.WriteString("\n\n")
	b.WriteString("default layout\n")

	for i, opt := range m.options {
		prefix := "  "
		line := fmt.Sprintf("%s (%s)", opt.Name, opt.ID)
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
			line = cursorStyle.Render(line)
		}
		b.WriteString(prefix + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(schemeLine("default", m.draft.DefaultScheme) + "\n")
	b.WriteString(schemeLine("alternative", m.draft.AlternativeScheme) + "\n\n")

	autostart := "off"
	if m.autorunOn {
		autostart = "on"
	}
	fmt.Fprintf(&b, "autostart       %s\n\n", autostart)

	if m.settingsError != "" {
		b.WriteString(errorStyle.Render(m.settingsError) + "\n\n")
	}

	b.WriteString(helpLine(m.keys.Up, m.keys.Down, m.keys.CaptureDefault, m.keys.CaptureAlt))
	b.WriteString("\n")
	b.WriteString(helpLine(m.keys.ToggleAutorun, m.keys.Save, m.keys.Cancel))
	return b.String()
}
