package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"cardapio-cli/internal/api"
	"cardapio-cli/internal/catalog"
	"cardapio-cli/internal/confirm"
	"cardapio-cli/internal/model"
)

func (m appModel) Init() tea.Cmd {
	if m.view == viewProducts {
		return m.loadCategoriesCmd(m.loadSeq)
	}
	return nil
}

// startReload bumps the sequence so that an older in-flight response, should
// it arrive later, is discarded in favor of this one.
func (m *appModel) startReload() tea.Cmd {
	m.loadSeq++
	m.loading = true
	return m.loadCategoriesCmd(m.loadSeq)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case toastsMsg:
		m.toasts = msg.items
		return m, nil

	case confirmStateMsg:
		m.confirmState = msg.st
		if msg.st.Open {
			m.modal = modalConfirm
			m.confirmFocus = confirmFocusCancel
		} else if m.modal == modalConfirm {
			m.modal = modalNone
		}
		return m, nil

	case confirmAnswerMsg:
		pending := m.pending
		m.pending = pendingAction{}
		if !msg.ok {
			return m, nil
		}
		switch pending.kind {
		case pendingDeleteProduct:
			return m, m.deleteProductCmd(pending.productID, pending.name)
		case pendingDeleteCategory:
			return m, m.deleteCategoryCmd(pending.categoryID, pending.name)
		}
		return m, nil

	case categoriesMsg:
		if msg.seq != m.loadSeq {
			// A newer load is in flight (or already landed); this
			// response is stale.
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.loadErr = userError(msg.err)
			m.show("Failed to load menu: " + m.loadErr)
			return m, nil
		}
		m.loadErr = ""
		m.cache.Replace(msg.cats)
		m.vs.Reset()
		m.cursor = clampCursor(m.cursor, len(m.rows()))
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			m.show("Failed: " + userError(msg.err))
			return m, nil
		}
		m.show("Successfully " + msg.verb + " " + msg.subject)
		return m, m.startReload()

	case activeToggledMsg:
		if msg.err != nil {
			m.show("Failed to update product: " + userError(msg.err))
			return m, m.startReload()
		}
		m.cache.SetActive(msg.productID, msg.active)
		return m, nil

	case loginDoneMsg:
		if msg.err != nil {
			if api.IsUnauthorized(msg.err) {
				m.form.errMsg = "Invalid email or password"
			} else {
				m.form.errMsg = userError(msg.err)
			}
			return m, nil
		}
		m.restaurantID = msg.res.RestaurantID
		m.view = viewProducts
		m.form = formState{}
		m.show("Logged in")
		return m, tea.Batch(saveRestaurantIDCmd(m.sess, m.restaurantID), m.startReload())

	case restaurantRegisteredMsg:
		if msg.err != nil {
			m.form.errMsg = userError(msg.err)
			return m, nil
		}
		m.restaurantID = msg.id
		m.view = viewRegisterUser
		m.form = newRegisterUserForm()
		m.show("Restaurant registered, now create its first user")
		return m, saveRestaurantIDCmd(m.sess, m.restaurantID)

	case userRegisteredMsg:
		if msg.err != nil {
			m.form.errMsg = userError(msg.err)
			return m, nil
		}
		m.view = viewLogin
		m.form = newLoginForm()
		m.show("User created, log in to continue")
		return m, nil

	case productLoadedMsg:
		if msg.notFound {
			m.view = viewProducts
			m.show("That product no longer exists")
			return m, m.startReload()
		}
		if msg.err != nil {
			m.view = viewProducts
			m.show("Failed to load product: " + userError(msg.err))
			return m, nil
		}
		m.view = viewProductForm
		m.form = newEditProductForm(m.cache.Categories(), msg.p)
		return m, nil

	case productSavedMsg:
		if msg.err != nil {
			m.form.saving = false
			m.form.errMsg = userError(msg.err)
			return m, nil
		}
		verb := "saved"
		if msg.created {
			verb = "created"
		}
		m.view = viewProducts
		m.form = formState{}
		m.show("Successfully " + verb + " " + msg.name)
		return m, m.startReload()

	case sessionErrMsg:
		m.show("Session storage error: " + msg.err.Error())
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.modal != modalNone {
		return m.updateModalKey(msg)
	}

	switch m.view {
	case viewProducts:
		return m.updateListKey(msg)
	case viewLogin, viewRegisterRestaurant, viewRegisterUser, viewCategoryForm, viewProductForm:
		return m.updateFormKey(msg)
	}
	return m, nil
}

func (m appModel) updateModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalConfirm:
		switch msg.String() {
		case "tab", "shift+tab", "left", "right":
			if m.confirmFocus == confirmFocusConfirm {
				m.confirmFocus = confirmFocusCancel
			} else {
				m.confirmFocus = confirmFocusConfirm
			}
			return m, nil
		case "enter":
			m.broker.Close(m.confirmFocus == confirmFocusConfirm, m.confirmState)
			m.modal = modalNone
			return m, nil
		case "y":
			m.broker.Close(true, m.confirmState)
			m.modal = modalNone
			return m, nil
		case "n", "esc":
			m.broker.Close(false, m.confirmState)
			m.modal = modalNone
			return m, nil
		}
		return m, nil

	case modalRenameCategory:
		switch msg.String() {
		case "esc":
			m.modal = modalNone
			m.renameInput.Blur()
			return m, nil
		case "enter":
			name := strings.TrimSpace(m.renameInput.Value())
			m.modal = modalNone
			m.renameInput.Blur()
			if name == "" || name == m.renameOldName {
				return m, nil
			}
			return m, m.renameCategoryCmd(m.renameCategoryID, name)
		}
		var cmd tea.Cmd
		m.renameInput, cmd = m.renameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		before := m.searchInput.Value()
		m.searchInput, cmd = m.searchInput.Update(msg)
		if m.searchInput.Value() != before {
			m.cursor = 0
			m.vs.CloseMenus()
		}
		return m, cmd
	}

	key := msg.String()

	if m.reorderMode {
		switch key {
		case "esc", "r":
			m.reorderMode = false
			return m, nil
		case "up", "k":
			return m.moveCategory(-1), nil
		case "down", "j":
			return m.moveCategory(+1), nil
		}
		return m, nil
	}

	switch key {
	case "q":
		return m, tea.Quit

	case "/":
		m.searching = true
		m.searchInput.Focus()
		m.vs.CloseMenus()
		return m, nil

	case "esc":
		if _, open := m.vs.ProductMenu.OpenKey(); open {
			m.vs.ProductMenu.Close()
			return m, nil
		}
		if _, open := m.vs.CategoryMenu.OpenKey(); open {
			m.vs.CategoryMenu.Close()
			return m, nil
		}
		if strings.TrimSpace(m.searchInput.Value()) != "" {
			m.searchInput.SetValue("")
			m.cursor = 0
		}
		return m, nil

	case "up", "k":
		m.cursor = clampCursor(m.cursor-1, len(m.rows()))
		m.vs.CloseMenus()
		return m, nil
	case "down", "j":
		m.cursor = clampCursor(m.cursor+1, len(m.rows()))
		m.vs.CloseMenus()
		return m, nil
	case "g", "home":
		m.cursor = 0
		m.vs.CloseMenus()
		return m, nil
	case "G", "end":
		m.cursor = clampCursor(len(m.rows())-1, len(m.rows()))
		m.vs.CloseMenus()
		return m, nil

	case "r":
		// Reordering works on the unfiltered tree only; positions in a
		// filtered view would not map back.
		if strings.TrimSpace(m.searchInput.Value()) == "" && len(m.cache.Categories()) > 1 {
			m.reorderMode = true
			m.vs.CloseMenus()
		}
		return m, nil

	case "R", "f5":
		return m, m.startReload()

	case "ctrl+l":
		m.restaurantID = ""
		m.view = viewLogin
		m.form = newLoginForm()
		m.show("Logged out")
		return m, clearSessionCmd(m.sess)

	case "n":
		m.view = viewProductForm
		m.form = newProductForm(m.cache.Categories(), "")
		return m, nil

	case "N":
		m.view = viewCategoryForm
		m.form = newCreateCategoryForm()
		return m, nil
	}

	row, ok := m.currentRow()
	if !ok {
		return m, nil
	}

	switch key {
	case "enter", "m":
		if row.kind == rowCategory {
			m.vs.ProductMenu.Close()
			m.vs.CategoryMenu.Toggle(catalog.CatKey(row.catIdx))
		} else {
			m.vs.CategoryMenu.Close()
			m.vs.ProductMenu.Toggle(catalog.RowKey(row.catIdx, row.prodIdx))
		}
		return m, nil

	case " ", "space", "tab":
		if row.kind == rowCategory {
			m.vs.Collapsed.Toggle(catalog.CatKey(row.catIdx))
			m.cursor = clampCursor(m.cursor, len(m.rows()))
		}
		return m, nil

	case "c":
		if row.kind == rowProduct && len(row.prod.Complements) > 0 {
			m.vs.OpenComplements.Toggle(catalog.RowKey(row.catIdx, row.prodIdx))
		}
		return m, nil
	}

	if row.kind == rowCategory && m.vs.CategoryMenu.IsOpen(catalog.CatKey(row.catIdx)) {
		return m.categoryMenuAction(key, row)
	}
	if row.kind == rowProduct && m.vs.ProductMenu.IsOpen(catalog.RowKey(row.catIdx, row.prodIdx)) {
		return m.productMenuAction(key, row)
	}
	return m, nil
}

func (m appModel) categoryMenuAction(key string, row listRow) (tea.Model, tea.Cmd) {
	switch key {
	case "a":
		m.vs.CloseMenus()
		m.view = viewProductForm
		m.form = newProductForm(m.cache.Categories(), row.cat.ID)
		return m, savePreselectedCategoryCmd(m.sess, row.cat.ID)

	case "e":
		m.vs.CloseMenus()
		m.modal = modalRenameCategory
		m.renameCategoryID = row.cat.ID
		m.renameOldName = row.cat.Name
		m.renameInput.SetValue(row.cat.Name)
		m.renameInput.CursorEnd()
		m.renameInput.Focus()
		return m, nil

	case "d":
		if m.pending.kind != pendingNone {
			return m, nil
		}
		m.vs.CloseMenus()
		m.pending = pendingAction{kind: pendingDeleteCategory, categoryID: row.cat.ID, name: row.cat.Name}
		ch := m.broker.Confirm(confirm.Descriptor{
			Title:       "Delete category",
			Message:     "Delete " + row.cat.Name + " and all of its products? This cannot be undone.",
			ConfirmText: "Delete",
			Severity:    model.SeverityDanger,
		})
		return m, awaitConfirm(ch)
	}
	return m, nil
}

func (m appModel) productMenuAction(key string, row listRow) (tea.Model, tea.Cmd) {
	switch key {
	case "e":
		m.vs.CloseMenus()
		return m, m.loadProductCmd(row.prod.ID)

	case "p":
		m.vs.CloseMenus()
		// The local flag flips in the activeToggledMsg handler, only after
		// the server acknowledged.
		return m, m.toggleActiveCmd(row.prod.ID, !row.prod.Active)

	case "d":
		if m.pending.kind != pendingNone {
			return m, nil
		}
		m.vs.CloseMenus()
		m.pending = pendingAction{kind: pendingDeleteProduct, productID: row.prod.ID, name: row.prod.Name}
		ch := m.broker.Confirm(confirm.Descriptor{
			Title:       "Delete product",
			Message:     "Delete " + row.prod.Name + "? This cannot be undone.",
			ConfirmText: "Delete",
			Severity:    model.SeverityDanger,
		})
		return m, awaitConfirm(ch)
	}
	return m, nil
}

// moveCategory shifts the category under the cursor by delta and keeps the
// cursor on it.
func (m appModel) moveCategory(delta int) appModel {
	row, ok := m.currentRow()
	if !ok || row.kind != rowCategory {
		return m
	}
	src := row.catIdx
	dst := src + delta
	if !m.cache.Move(src, dst) {
		return m
	}
	m.vs.Reset()
	for i, r := range m.rows() {
		if r.kind == rowCategory && r.catIdx == dst {
			m.cursor = i
			break
		}
	}
	return m
}

func (m appModel) updateFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.saving {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m.leaveForm()

	case "ctrl+r":
		if m.view == viewLogin {
			m.view = viewRegisterRestaurant
			m.form = newRegisterRestaurantForm()
		}
		return m, nil

	case "tab", "down":
		m.form.normalizePriceField()
		m.form.focusNext(+1)
		return m, nil
	case "shift+tab", "up":
		m.form.normalizePriceField()
		m.form.focusNext(-1)
		return m, nil

	case "left":
		if m.form.catFocused() {
			m.form.cycleCategory(-1)
			return m, nil
		}
	case "right":
		if m.form.catFocused() {
			m.form.cycleCategory(+1)
			return m, nil
		}

	case "enter":
		return m.submitForm()
	}

	if m.form.catFocused() {
		return m, nil
	}
	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) leaveForm() (tea.Model, tea.Cmd) {
	switch m.view {
	case viewLogin:
		return m, tea.Quit
	case viewRegisterRestaurant:
		m.view = viewLogin
		m.form = newLoginForm()
		return m, nil
	case viewRegisterUser:
		// Registration flow already stored the restaurant; backing out
		// lands on login so the new user can sign in later.
		m.view = viewLogin
		m.form = newLoginForm()
		return m, nil
	default:
		m.view = viewProducts
		m.form = formState{}
		return m, nil
	}
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	f := &m.form
	f.errMsg = ""

	switch f.kind {
	case formLogin:
		email, password := f.value(0), f.value(1)
		if email == "" || password == "" {
			f.errMsg = "Email and password are required"
			return m, nil
		}
		f.saving = true
		return m, m.loginCmd(email, password)

	case formRegisterRestaurant:
		name := f.value(0)
		if name == "" {
			f.errMsg = "Name is required"
			return m, nil
		}
		f.saving = true
		return m, m.registerRestaurantCmd(name, f.value(1), f.value(2))

	case formRegisterUser:
		email, password := f.value(0), f.value(1)
		if email == "" || password == "" {
			f.errMsg = "Email and password are required"
			return m, nil
		}
		f.saving = true
		return m, m.registerUserCmd(email, password)

	case formCreateCategory:
		name := f.value(0)
		if name == "" {
			f.errMsg = "Name is required"
			return m, nil
		}
		m.view = viewProducts
		m.form = formState{}
		return m, m.createCategoryCmd(name)

	case formProduct:
		name := f.value(productFieldName)
		if name == "" {
			f.errMsg = "Name is required"
			return m, nil
		}
		price, err := model.ParsePrice(f.value(productFieldPrice))
		if err != nil {
			f.errMsg = "Price must be a non-negative number"
			return m, nil
		}
		cat, ok := f.selectedCategory()
		if !ok {
			f.errMsg = "Create a category first"
			return m, nil
		}
		draft := api.ProductDraft{
			RestaurantID: m.restaurantID,
			Name:         name,
			Description:  f.value(productFieldDescription),
			Price:        price,
			CategoryID:   cat.ID,
		}
		imagePath := f.value(productFieldImage)
		f.saving = true
		if f.productID == "" {
			return m, m.createProductCmd(draft, imagePath)
		}
		return m, m.updateProductCmd(f.productID, draft, imagePath)
	}
	return m, nil
}

