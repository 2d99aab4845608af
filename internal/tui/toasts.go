package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cardapio-cli/internal/model"
)

// renderToasts stacks the live notifications, newest last. Entering and
// leaving items are dimmed, standing in for the fade animation.
func renderToasts(items []model.Notification, width int) string {
	if len(items) == 0 {
		return ""
	}

	base := lipgloss.NewStyle().
		Padding(0, 1).
		Background(colorControlBg).
		Foreground(colorSurfaceFg)
	dim := base.Faint(true)

	var lines []string
	for _, n := range items {
		st := base
		if n.Entering || n.Leaving {
			st = dim
		}
		lines = append(lines, st.MaxWidth(width).Render(n.Message))
	}
	return strings.Join(lines, "\n")
}
