package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cardapio-cli/internal/confirm"
	"cardapio-cli/internal/model"
)

func modalBodyWidth(width int) int {
	w := width - 12
	if w > 64 {
		w = 64
	}
	if w < 24 {
		w = 24
	}
	return w
}

func renderModalBox(width int, title, content string) string {
	bodyW := modalBodyWidth(width)
	titleLine := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSurfaceFg).
		Width(bodyW).
		Render(title)

	box := lipgloss.NewStyle().
		Padding(1, 2).
		Background(colorSurfaceBg).
		Foreground(colorSurfaceFg).
		Width(bodyW + 4).
		Render(titleLine + "\n\n" + content)
	return box
}

// renderConfirmModal renders the single shared confirmation surface from
// the broker's published state.
//
// Avoid borders here: some terminals show background artifacts when nesting
// bordered components inside a modal with a background color.
func renderConfirmModal(width int, st confirm.State, focus confirmModalFocus) string {
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	confirmBtn := btnBase.Render(st.ConfirmText)
	cancelBtn := btnBase.Render(st.CancelText)
	if focus == confirmFocusConfirm {
		confirmBtn = btnActive.Render(st.ConfirmText)
	} else {
		cancelBtn = btnActive.Render(st.CancelText)
	}

	sep := lipgloss.NewStyle().Background(colorControlBg).Render(" ")
	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirmBtn, sep, cancelBtn)

	bodyW := modalBodyWidth(width)
	body := lipgloss.NewStyle().Width(bodyW).Render(st.Message)
	help := styleMuted().Width(bodyW).Render("tab: focus   enter: select   esc: cancel")

	content := strings.Join([]string{body, "", controls, "", help}, "\n")

	title := st.Title
	switch st.Severity {
	case model.SeverityDanger:
		title = styleDanger().Render(st.Title)
	case model.SeverityWarning:
		title = styleWarning().Render(st.Title)
	}
	return renderModalBox(width, title, content)
}

// placeCentered centers a modal over the full screen area.
func placeCentered(width, height int, box string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
