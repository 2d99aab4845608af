package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"cardapio-cli/internal/catalog"
	"cardapio-cli/internal/confirm"
	"cardapio-cli/internal/model"
	"cardapio-cli/internal/notify"
	"cardapio-cli/internal/session"
)

type appModel struct {
	client  menuAPI
	sess    session.Store
	timeout time.Duration

	width  int
	height int

	view view

	restaurantID string

	// Aggregate cache and the client-only view state layered on it. The
	// toggle sets are keyed by rendered-tree indexes and reset on reload.
	cache *catalog.Cache
	vs    *catalog.ViewState

	// loading gates re-entrant reloads by convention; loadSeq makes the
	// latest *requested* load win when responses arrive out of order.
	loading bool
	loadSeq int
	loadErr string

	searchInput textinput.Model
	searching   bool

	cursor      int
	reorderMode bool

	queue  *notify.Queue
	broker *confirm.Broker
	toasts []model.Notification

	modal        modalKind
	confirmState confirm.State
	confirmFocus confirmModalFocus
	pending      pendingAction

	renameInput      textinput.Model
	renameCategoryID string
	renameOldName    string

	form formState
}

func newAppModel(client menuAPI, sess session.Store, timeout time.Duration, queue *notify.Queue, broker *confirm.Broker, restaurantID string) appModel {
	m := appModel{
		client:       client,
		sess:         sess,
		timeout:      timeout,
		queue:        queue,
		broker:       broker,
		restaurantID: restaurantID,
		cache:        catalog.NewCache(),
		vs:           catalog.NewViewState(),
	}

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Search products"
	m.searchInput.CharLimit = 120
	m.searchInput.Width = 32

	m.renameInput = textinput.New()
	m.renameInput.Placeholder = "Category name"
	m.renameInput.CharLimit = 80
	m.renameInput.Width = 32

	if restaurantID == "" {
		m.view = viewLogin
		m.form = newLoginForm()
	} else {
		m.view = viewProducts
		m.loading = true
		m.loadSeq = 1
	}
	return m
}

// filteredCategories is the derived view the list renders from.
func (m appModel) filteredCategories() []model.Category {
	return m.cache.FilterView(m.searchInput.Value())
}

func (m appModel) rows() []listRow {
	return visibleRows(m.filteredCategories(), m.vs.Collapsed)
}

func (m appModel) currentRow() (listRow, bool) {
	rows := m.rows()
	if len(rows) == 0 {
		return listRow{}, false
	}
	return rows[clampCursor(m.cursor, len(rows))], true
}

func (m *appModel) show(message string) {
	m.queue.Show(message)
}
