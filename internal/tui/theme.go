package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette helpers. The console must stay readable on both light and dark
// terminal backgrounds, so everything goes through AdaptiveColor and faint
// styling is only applied on dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")
	colorSurfaceBg  lipgloss.TerminalColor = ac("255", "235")
	colorSurfaceFg  lipgloss.TerminalColor = ac("235", "254")
	colorControlBg  lipgloss.TerminalColor = ac("252", "238")
	colorAccent     lipgloss.TerminalColor = ac("28", "42")  // active/success green
	colorDanger     lipgloss.TerminalColor = ac("124", "203")
	colorWarning    lipgloss.TerminalColor = ac("130", "214")
	colorPaused     lipgloss.TerminalColor = ac("244", "245")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleSelected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
}

func styleCategory() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func styleActiveDot() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorAccent)
}

func stylePaused() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorPaused))
}

func styleDanger() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
}

func styleWarning() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
}

func hasDarkBG() bool {
	return lipgloss.HasDarkBackground()
}

// applyColorProfilePreference honors NO_COLOR and otherwise follows the
// terminal's capabilities. Called once before the program starts.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	profile := termenv.ColorProfile()
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	}
	lipgloss.SetColorProfile(profile)
}
