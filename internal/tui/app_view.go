package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"cardapio-cli/internal/catalog"
	"cardapio-cli/internal/model"
)

func (m appModel) View() string {
	if m.width == 0 {
		return ""
	}

	var body string
	switch {
	case m.modal == modalConfirm:
		body = placeCentered(m.width, m.height, renderConfirmModal(m.width, m.confirmState, m.confirmFocus))
	case m.modal == modalRenameCategory:
		body = placeCentered(m.width, m.height, m.renderRenameModal())
	case m.view == viewProducts:
		body = m.renderList()
	default:
		body = m.renderForm()
	}

	if toasts := renderToasts(m.toasts, m.width); toasts != "" {
		body += "\n" + toasts
	}
	return body
}

func (m appModel) renderRenameModal() string {
	content := strings.Join([]string{
		m.renameInput.View(),
		"",
		styleMuted().Render("enter: save   esc: cancel"),
	}, "\n")
	return renderModalBox(m.width, "Rename category", content)
}

// truncLine cuts a rendered line to the terminal width without breaking
// escape sequences.
func truncLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

func (m appModel) renderHeader() string {
	title := styleCategory().Render("Cardápio")
	right := ""
	switch {
	case m.loading:
		right = styleMuted().Render("loading…")
	case m.reorderMode:
		right = styleDanger().Render("reordering")
	}

	search := ""
	if m.searching {
		search = m.searchInput.View()
	} else if term := strings.TrimSpace(m.searchInput.Value()); term != "" {
		search = styleMuted().Render("filter: ") + term
	}

	parts := []string{title}
	if search != "" {
		parts = append(parts, search)
	}
	if right != "" {
		parts = append(parts, right)
	}
	return truncLine(strings.Join(parts, "   "), m.width)
}

func (m appModel) renderList() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	rows := m.rows()
	cursor := clampCursor(m.cursor, len(rows))

	if len(rows) == 0 {
		switch {
		case m.loadErr != "":
			b.WriteString(styleDanger().Render("Could not load the menu") + "\n")
			b.WriteString(styleMuted().Render(m.loadErr) + "\n")
		case strings.TrimSpace(m.searchInput.Value()) != "":
			b.WriteString(styleMuted().Render("No products match the search.") + "\n")
		case m.loading:
			b.WriteString(styleMuted().Render("Loading the menu…") + "\n")
		default:
			b.WriteString(styleMuted().Render("No categories yet. Press N to create one.") + "\n")
		}
	}

	var selected *listRow
	for i := range rows {
		row := rows[i]
		line := m.renderRow(row, i == cursor)
		b.WriteString(truncLine(line, m.width))
		b.WriteString("\n")

		if i == cursor {
			selected = &rows[i]
		}

		if row.kind == rowCategory && m.vs.CategoryMenu.IsOpen(catalog.CatKey(row.catIdx)) {
			b.WriteString(m.renderMenuLine("a: add product   e: rename   d: delete"))
		}
		if row.kind == rowProduct {
			key := catalog.RowKey(row.catIdx, row.prodIdx)
			if m.vs.OpenComplements.Has(key) {
				for _, c := range row.prod.Complements {
					b.WriteString(truncLine("      · "+c.Name, m.width))
					b.WriteString("\n")
				}
			}
			if m.vs.ProductMenu.IsOpen(key) {
				b.WriteString(m.renderMenuLine(m.productMenuHelp(row.prod)))
			}
		}
	}

	if selected != nil && selected.kind == rowProduct {
		if detail := m.renderDetail(selected.prod); detail != "" {
			b.WriteString("\n")
			b.WriteString(detail)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m appModel) renderRow(row listRow, isCursor bool) string {
	if row.kind == rowCategory {
		marker := "▾"
		if m.vs.Collapsed.Has(catalog.CatKey(row.catIdx)) {
			marker = "▸"
		}
		line := fmt.Sprintf("%s %s %s", marker, row.cat.Name,
			styleMuted().Render(fmt.Sprintf("(%d)", len(row.cat.Products))))
		if isCursor {
			return styleSelected().Render("> ") + styleCategory().Render(line)
		}
		return "  " + styleCategory().Render(line)
	}

	p := row.prod
	dot := styleActiveDot().Render("●")
	name := p.Name
	if !p.Active {
		dot = stylePaused().Render("○")
		name = stylePaused().Render(name + " (paused)")
	}
	extras := ""
	if len(p.Complements) > 0 {
		extras = "  " + styleMuted().Render(fmt.Sprintf("+%d complements", len(p.Complements)))
	}
	line := fmt.Sprintf("  %s %s  %s%s", dot, name, p.Price.String(), extras)
	if isCursor {
		return styleSelected().Render(">") + line
	}
	return " " + line
}

func (m appModel) renderMenuLine(help string) string {
	st := lipgloss.NewStyle().
		Padding(0, 1).
		Background(colorControlBg).
		Foreground(colorSurfaceFg)
	return truncLine("    "+st.Render(help), m.width) + "\n"
}

func (m appModel) productMenuHelp(p model.Product) string {
	pause := "p: pause"
	if !p.Active {
		pause = "p: resume"
	}
	return "e: edit   " + pause + "   d: delete"
}

// renderDetail shows the selected product's description as markdown plus
// its image location, when either exists.
func (m appModel) renderDetail(p model.Product) string {
	var parts []string
	if desc := renderDescription(p.Description, m.width-4); desc != "" {
		parts = append(parts, desc)
	}
	if p.ImageURL != "" {
		parts = append(parts, styleMuted().Render("image: "+m.client.ResolveImageURL(p.ImageURL)))
	}
	return strings.Join(parts, "\n")
}

func (m appModel) renderFooter() string {
	var help string
	switch {
	case m.searching:
		help = "enter/esc: done searching"
	case m.reorderMode:
		help = "↑/↓: move category   esc: done"
	default:
		help = "↑/↓: navigate   enter: menu   space: collapse   c: complements   /: search   r: reorder   n: new product   N: new category   R: reload   q: quit"
	}
	return truncLine(styleMuted().Render(help), m.width)
}

func (m appModel) renderForm() string {
	f := m.form
	var b strings.Builder
	b.WriteString(styleCategory().Render(f.title))
	b.WriteString("\n\n")

	for i, in := range f.inputs {
		label := f.labels[i]
		if i == f.focus {
			b.WriteString(styleSelected().Render(" " + label + " "))
		} else {
			b.WriteString(styleMuted().Render(" " + label + " "))
		}
		b.WriteString("\n ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	if f.kind == formProduct {
		label := " Category "
		if f.catFocused() {
			b.WriteString(styleSelected().Render(label))
		} else {
			b.WriteString(styleMuted().Render(label))
		}
		b.WriteString("\n ")
		if cat, ok := f.selectedCategory(); ok {
			sel := "◂ " + cat.Name + " ▸"
			if f.categoryLocked {
				sel = cat.Name
			}
			b.WriteString(sel)
		} else {
			b.WriteString(styleDanger().Render("no categories yet"))
		}
		b.WriteString("\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styleDanger().Render(f.errMsg))
		b.WriteString("\n")
	}
	if f.saving {
		b.WriteString("\n")
		b.WriteString(styleMuted().Render("saving…"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(truncLine(styleMuted().Render(m.formHelp()), m.width))
	return b.String()
}

func (m appModel) formHelp() string {
	switch m.view {
	case viewLogin:
		return "tab: next field   enter: log in   ctrl+r: register restaurant   esc: quit"
	case viewRegisterRestaurant, viewRegisterUser:
		return "tab: next field   enter: submit   esc: back"
	case viewProductForm:
		return "tab: next field   ◂/▸: category   enter: save   esc: back"
	default:
		return "enter: save   esc: back"
	}
}
