package catalog

import "testing"

func TestToggleSet_DoubleToggleRestores(t *testing.T) {
	s := NewToggleSet()
	key := RowKey(2, 5)

	if s.Has(key) {
		t.Fatal("fresh set should be empty")
	}
	s.Toggle(key)
	if !s.Has(key) {
		t.Error("toggle should add")
	}
	s.Toggle(key)
	if s.Has(key) {
		t.Error("second toggle should remove")
	}
	if s.Len() != 0 {
		t.Errorf("len = %d", s.Len())
	}
}

func TestToggleSet_IndependentKeys(t *testing.T) {
	s := NewToggleSet()
	s.Toggle(CatKey(0))
	s.Toggle(CatKey(2))
	if !s.Has(CatKey(0)) || !s.Has(CatKey(2)) || s.Has(CatKey(1)) {
		t.Error("keys should toggle independently")
	}
}

func TestMenuSlot_MutualExclusion(t *testing.T) {
	var m MenuSlot

	m.Toggle("0-1")
	if !m.IsOpen("0-1") {
		t.Fatal("menu should open")
	}

	// Opening another menu closes the first.
	m.Toggle("2-0")
	if m.IsOpen("0-1") {
		t.Error("first menu should have closed")
	}
	if !m.IsOpen("2-0") {
		t.Error("second menu should be open")
	}

	// Re-toggle closes.
	m.Toggle("2-0")
	if _, open := m.OpenKey(); open {
		t.Error("re-toggle should close the menu")
	}
}

func TestViewState_ResetClearsEverything(t *testing.T) {
	v := NewViewState()
	v.Collapsed.Toggle(CatKey(1))
	v.OpenComplements.Toggle(RowKey(1, 0))
	v.CategoryMenu.Toggle(CatKey(1))
	v.ProductMenu.Toggle(RowKey(0, 0))

	v.Reset()

	if v.Collapsed.Len() != 0 || v.OpenComplements.Len() != 0 {
		t.Error("toggle sets should clear on reset")
	}
	if _, open := v.CategoryMenu.OpenKey(); open {
		t.Error("category menu should close on reset")
	}
	if _, open := v.ProductMenu.OpenKey(); open {
		t.Error("product menu should close on reset")
	}
}

func TestViewState_MenuSlotsAreIndependent(t *testing.T) {
	v := NewViewState()
	v.CategoryMenu.Toggle(CatKey(0))
	v.ProductMenu.Toggle(RowKey(0, 1))

	// Each slot enforces exclusion within itself only.
	if !v.CategoryMenu.IsOpen(CatKey(0)) || !v.ProductMenu.IsOpen(RowKey(0, 1)) {
		t.Error("category and product menus may be open simultaneously")
	}

	v.CloseMenus()
	if _, open := v.CategoryMenu.OpenKey(); open {
		t.Error("CloseMenus should close the category slot")
	}
	if _, open := v.ProductMenu.OpenKey(); open {
		t.Error("CloseMenus should close the product slot")
	}
}
