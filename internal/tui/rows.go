package tui

import (
	"cardapio-cli/internal/catalog"
	"cardapio-cli/internal/model"
)

type rowKind int

const (
	rowCategory rowKind = iota
	rowProduct
)

// listRow is one selectable line of the product list. Indexes refer to the
// rendered (already filtered) tree, matching how the per-row toggle sets
// are keyed.
type listRow struct {
	kind    rowKind
	catIdx  int
	prodIdx int
	cat     model.Category
	prod    model.Product
}

// visibleRows flattens the filtered tree into selectable rows, skipping
// products of collapsed categories.
func visibleRows(cats []model.Category, collapsed *catalog.ToggleSet) []listRow {
	var rows []listRow
	for ci, cat := range cats {
		rows = append(rows, listRow{kind: rowCategory, catIdx: ci, cat: cat})
		if collapsed.Has(catalog.CatKey(ci)) {
			continue
		}
		for pi, p := range cat.Products {
			rows = append(rows, listRow{kind: rowProduct, catIdx: ci, prodIdx: pi, cat: cat, prod: p})
		}
	}
	return rows
}

func clampCursor(cursor, n int) int {
	if n == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
