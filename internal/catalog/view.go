package catalog

import "strconv"

// RowKey keys per-product view state by position in the rendered tree.
func RowKey(catIdx, prodIdx int) string {
	return strconv.Itoa(catIdx) + "-" + strconv.Itoa(prodIdx)
}

// CatKey keys per-category view state.
func CatKey(catIdx int) string {
	return strconv.Itoa(catIdx)
}

// ToggleSet is a symmetric membership toggle (collapse state, open
// complements). Client-only; never sent to the server.
type ToggleSet struct {
	m map[string]struct{}
}

func NewToggleSet() *ToggleSet {
	return &ToggleSet{m: map[string]struct{}{}}
}

func (s *ToggleSet) Toggle(key string) {
	if _, ok := s.m[key]; ok {
		delete(s.m, key)
		return
	}
	s.m[key] = struct{}{}
}

func (s *ToggleSet) Has(key string) bool {
	_, ok := s.m[key]
	return ok
}

func (s *ToggleSet) Clear() {
	s.m = map[string]struct{}{}
}

func (s *ToggleSet) Len() int { return len(s.m) }

// MenuSlot tracks at most one open contextual menu. Opening a menu closes
// whatever other menu was open in the same slot; re-toggling closes it.
type MenuSlot struct {
	open string
	set  bool
}

func (s *MenuSlot) Toggle(key string) {
	if s.set && s.open == key {
		s.Close()
		return
	}
	s.open = key
	s.set = true
}

func (s *MenuSlot) Close() {
	s.open = ""
	s.set = false
}

func (s *MenuSlot) IsOpen(key string) bool {
	return s.set && s.open == key
}

func (s *MenuSlot) OpenKey() (string, bool) {
	return s.open, s.set
}

// ViewState bundles the per-row UI toggles for the product list. Reload
// clears all of it: expand/collapse and menu state are not carried over
// (accepted tradeoff of the reload-and-replace cache).
type ViewState struct {
	Collapsed       *ToggleSet
	OpenComplements *ToggleSet
	CategoryMenu    MenuSlot
	ProductMenu     MenuSlot
}

func NewViewState() *ViewState {
	return &ViewState{
		Collapsed:       NewToggleSet(),
		OpenComplements: NewToggleSet(),
	}
}

// Reset drops every toggle; called after each cache reload.
func (v *ViewState) Reset() {
	v.Collapsed.Clear()
	v.OpenComplements.Clear()
	v.CategoryMenu.Close()
	v.ProductMenu.Close()
}

// CloseMenus closes both menu slots (outside click / action selected).
func (v *ViewState) CloseMenus() {
	v.CategoryMenu.Close()
	v.ProductMenu.Close()
}
