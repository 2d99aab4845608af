package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"cardapio-cli/internal/model"
)

type formKind int

const (
	formNone formKind = iota
	formLogin
	formRegisterRestaurant
	formRegisterUser
	formCreateCategory
	formProduct
)

// formState is the shared state of every full-screen form. Fields are
// plain text inputs; the product form additionally carries a category
// selector driven by left/right.
type formState struct {
	kind   formKind
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
	errMsg string
	saving bool

	// Product form only.
	productID      string // non-empty when editing
	originalImage  string
	categories     []model.Category
	catIdx         int
	categoryLocked bool
}

func newField(placeholder string, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 200
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return in
}

func newLoginForm() formState {
	f := formState{
		kind:   formLogin,
		title:  "Log in",
		labels: []string{"Email", "Password"},
		inputs: []textinput.Model{newField("owner@example.com", false), newField("", true)},
	}
	f.inputs[0].Focus()
	return f
}

func newRegisterRestaurantForm() formState {
	f := formState{
		kind:   formRegisterRestaurant,
		title:  "Register restaurant",
		labels: []string{"Name", "Phone", "Address"},
		inputs: []textinput.Model{newField("", false), newField("", false), newField("", false)},
	}
	f.inputs[0].Focus()
	return f
}

func newRegisterUserForm() formState {
	f := formState{
		kind:   formRegisterUser,
		title:  "Register user",
		labels: []string{"Email", "Password"},
		inputs: []textinput.Model{newField("", false), newField("", true)},
	}
	f.inputs[0].Focus()
	return f
}

func newCreateCategoryForm() formState {
	f := formState{
		kind:   formCreateCategory,
		title:  "New category",
		labels: []string{"Name"},
		inputs: []textinput.Model{newField("e.g. Burgers", false)},
	}
	f.inputs[0].Focus()
	return f
}

const (
	productFieldName = iota
	productFieldDescription
	productFieldPrice
	productFieldImage
)

// newProductForm builds the create/edit product form. categories feeds the
// selector; preselected (when found) pre-fills and locks it, mirroring the
// "add product to this category" entry point.
func newProductForm(categories []model.Category, preselected string) formState {
	f := formState{
		kind:   formProduct,
		title:  "New product",
		labels: []string{"Name", "Description", "Price", "Image path"},
		inputs: []textinput.Model{
			newField("", false),
			newField("optional", false),
			newField("0.00", false),
			newField("optional, e.g. ./burger.png", false),
		},
		categories: categories,
	}
	f.inputs[productFieldPrice].SetValue("0.00")
	if preselected != "" {
		for i, c := range categories {
			if c.ID == preselected {
				f.catIdx = i
				f.categoryLocked = true
				break
			}
		}
	}
	f.inputs[0].Focus()
	return f
}

func newEditProductForm(categories []model.Category, p model.Product) formState {
	f := newProductForm(categories, "")
	f.title = "Edit product"
	f.productID = p.ID
	f.originalImage = p.ImageURL
	f.inputs[productFieldName].SetValue(p.Name)
	f.inputs[productFieldDescription].SetValue(p.Description)
	f.inputs[productFieldPrice].SetValue(p.Price.String())
	f.inputs[productFieldImage].SetValue("")
	for i, c := range categories {
		if c.ID == p.CategoryID || (p.CategoryID == "" && c.Name == p.CategoryName) {
			f.catIdx = i
			break
		}
	}
	return f
}

func (f *formState) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *formState) selectedCategory() (model.Category, bool) {
	if len(f.categories) == 0 || f.catIdx < 0 || f.catIdx >= len(f.categories) {
		return model.Category{}, false
	}
	return f.categories[f.catIdx], true
}

// slots counts the focusable positions. The product form has one extra
// slot after the inputs for the category selector.
func (f *formState) slots() int {
	if f.kind == formProduct {
		return len(f.inputs) + 1
	}
	return len(f.inputs)
}

// catFocused reports whether focus sits on the category selector slot.
func (f *formState) catFocused() bool {
	return f.kind == formProduct && f.focus == len(f.inputs)
}

// focusNext moves focus through the slots, wrapping.
func (f *formState) focusNext(delta int) {
	n := f.slots()
	if n == 0 {
		return
	}
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Blur()
	}
	f.focus = (f.focus + delta + n) % n
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Focus()
	}
}

// cycleCategory moves the category selector; no-op when locked.
func (f *formState) cycleCategory(delta int) {
	if f.categoryLocked || len(f.categories) == 0 {
		return
	}
	f.catIdx = (f.catIdx + delta + len(f.categories)) % len(f.categories)
}

// normalizePriceField reformats the price input to the canonical
// two-decimal form when it parses, leaving invalid text for the user to
// fix.
func (f *formState) normalizePriceField() {
	if f.kind != formProduct {
		return
	}
	raw := f.value(productFieldPrice)
	if raw == "" {
		return
	}
	if p, err := model.ParsePrice(raw); err == nil {
		f.inputs[productFieldPrice].SetValue(p.String())
	}
}
