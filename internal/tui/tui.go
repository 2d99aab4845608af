// Package tui is the interactive console: the product list with its
// category tree, search, reorder mode, contextual menus, the confirmation
// modal and the toast stack, all driven by one update loop.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cardapio-cli/internal/api"
	"cardapio-cli/internal/confirm"
	"cardapio-cli/internal/model"
	"cardapio-cli/internal/notify"
	"cardapio-cli/internal/session"
)

// Run starts the console and blocks until the user quits. A stored
// restaurant id skips straight to the product list; otherwise the login
// view comes up first.
func Run(client *api.Client, sess session.Store, timeout time.Duration) error {
	applyColorProfilePreference()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	restaurantID, err := sess.RestaurantID(ctx)
	cancel()
	if err != nil {
		// No stored session (or an unreadable one) lands on login.
		restaurantID = ""
	}

	queue := notify.NewQueue()
	broker := confirm.NewBroker()

	m := newAppModel(client, sess, timeout, queue, broker, restaurantID)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Queue and broker publish from their own goroutines; Send is the
	// thread-safe way into the update loop.
	queue.Subscribe(func(items []model.Notification) {
		p.Send(toastsMsg{items: items})
	})
	broker.Subscribe(func(st confirm.State) {
		p.Send(confirmStateMsg{st: st})
	})

	_, err = p.Run()
	return err
}
