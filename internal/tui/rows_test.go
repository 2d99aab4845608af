package tui

import (
	"testing"

	"cardapio-cli/internal/catalog"
	"cardapio-cli/internal/model"
)

func TestVisibleRowsFlattensTree(t *testing.T) {
	t.Parallel()

	cats := []model.Category{
		{ID: "a", Name: "A", Products: []model.Product{{ID: "p1"}, {ID: "p2"}}},
		{ID: "b", Name: "B", Products: []model.Product{{ID: "p3"}}},
	}
	collapsed := catalog.NewToggleSet()

	rows := visibleRows(cats, collapsed)
	if len(rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(rows))
	}
	if rows[0].kind != rowCategory || rows[1].kind != rowProduct || rows[3].kind != rowCategory {
		t.Fatal("row kinds out of order")
	}
	if rows[4].prod.ID != "p3" || rows[4].catIdx != 1 || rows[4].prodIdx != 0 {
		t.Fatalf("last row = %+v", rows[4])
	}
}

func TestVisibleRowsSkipsCollapsed(t *testing.T) {
	t.Parallel()

	cats := []model.Category{
		{ID: "a", Name: "A", Products: []model.Product{{ID: "p1"}, {ID: "p2"}}},
		{ID: "b", Name: "B", Products: []model.Product{{ID: "p3"}}},
	}
	collapsed := catalog.NewToggleSet()
	collapsed.Toggle(catalog.CatKey(0))

	rows := visibleRows(cats, collapsed)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	for _, r := range rows {
		if r.kind == rowProduct && r.catIdx == 0 {
			t.Fatal("collapsed category still shows products")
		}
	}
}

func TestClampCursor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cursor, n, want int
	}{
		{0, 0, 0},
		{-1, 5, 0},
		{5, 5, 4},
		{3, 5, 3},
	}
	for _, tt := range tests {
		if got := clampCursor(tt.cursor, tt.n); got != tt.want {
			t.Errorf("clampCursor(%d, %d) = %d, want %d", tt.cursor, tt.n, got, tt.want)
		}
	}
}
