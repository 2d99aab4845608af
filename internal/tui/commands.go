package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cardapio-cli/internal/api"
	"cardapio-cli/internal/session"
)

// Commands are the only places the update loop touches the network or
// disk. Each one runs under its own timeout and reports back as a message.

// loadCategoriesCmd fetches the full tree. seq is echoed back so stale
// responses can be discarded when reloads overlap.
func (m appModel) loadCategoriesCmd(seq int) tea.Cmd {
	client, restaurantID := m.client, m.restaurantID
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		cats, err := client.CategoriesWithProducts(ctx, restaurantID)
		return categoriesMsg{seq: seq, cats: cats, err: err}
	}
}

func (m appModel) loginCmd(email, password string) tea.Cmd {
	client, timeout := m.client, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		res, err := client.Login(ctx, email, password)
		return loginDoneMsg{res: res, err: err}
	}
}

func (m appModel) registerRestaurantCmd(name, phone, address string) tea.Cmd {
	client, timeout := m.client, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		res, err := client.RegisterRestaurant(ctx, name, phone, address)
		return restaurantRegisteredMsg{id: res.ID, err: err}
	}
}

func (m appModel) registerUserCmd(email, password string) tea.Cmd {
	client, restaurantID, timeout := m.client, m.restaurantID, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := client.RegisterUser(ctx, restaurantID, email, password)
		return userRegisteredMsg{err: err}
	}
}

func (m appModel) createCategoryCmd(name string) tea.Cmd {
	client, restaurantID, timeout := m.client, m.restaurantID, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		_, err := client.CreateCategory(ctx, restaurantID, name)
		return mutationDoneMsg{verb: "created", subject: "category " + name, err: err}
	}
}

func (m appModel) renameCategoryCmd(categoryID, name string) tea.Cmd {
	client, restaurantID, timeout := m.client, m.restaurantID, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := client.RenameCategory(ctx, restaurantID, categoryID, name)
		return mutationDoneMsg{verb: "renamed", subject: "category to " + name, err: err}
	}
}

func (m appModel) deleteCategoryCmd(categoryID, name string) tea.Cmd {
	client, restaurantID, timeout := m.client, m.restaurantID, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := client.DeleteCategory(ctx, restaurantID, categoryID)
		return mutationDoneMsg{verb: "deleted", subject: "category " + name, err: err}
	}
}

func (m appModel) deleteProductCmd(productID, name string) tea.Cmd {
	client, timeout := m.client, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := client.DeleteProduct(ctx, productID)
		return mutationDoneMsg{verb: "deleted", subject: name, err: err}
	}
}

func (m appModel) toggleActiveCmd(productID string, active bool) tea.Cmd {
	client, timeout := m.client, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := client.SetProductActive(ctx, productID, active)
		return activeToggledMsg{productID: productID, active: active, err: err}
	}
}

func (m appModel) loadProductCmd(productID string) tea.Cmd {
	client, timeout := m.client, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		p, err := client.Product(ctx, productID)
		if api.IsNotFound(err) {
			return productLoadedMsg{notFound: true}
		}
		return productLoadedMsg{p: p, err: err}
	}
}

func (m appModel) createProductCmd(draft api.ProductDraft, imagePath string) tea.Cmd {
	client, timeout := m.client, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		p, err := client.CreateProduct(ctx, draft, imagePath)
		name := draft.Name
		if err == nil && p.Name != "" {
			name = p.Name
		}
		return productSavedMsg{created: true, name: name, err: err}
	}
}

// updateProductCmd saves an edit, uploading a replacement image afterwards
// when one was picked. The image failure does not undo the field update.
func (m appModel) updateProductCmd(productID string, draft api.ProductDraft, imagePath string) tea.Cmd {
	client, timeout := m.client, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := client.UpdateProduct(ctx, productID, draft); err != nil {
			return productSavedMsg{name: draft.Name, err: err}
		}
		if imagePath != "" {
			if err := client.SetProductImage(ctx, productID, imagePath); err != nil {
				return productSavedMsg{name: draft.Name, err: err}
			}
		}
		return productSavedMsg{name: draft.Name, err: nil}
	}
}

// awaitConfirm blocks on the broker's answer channel and surfaces it as a
// message. Runs as its own command so the update loop never blocks.
func awaitConfirm(ch <-chan bool) tea.Cmd {
	return func() tea.Msg {
		return confirmAnswerMsg{ok: <-ch}
	}
}

func saveRestaurantIDCmd(sess session.Store, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := sess.SetRestaurantID(ctx, id); err != nil {
			return sessionErrMsg{err: err}
		}
		return nil
	}
}

func clearSessionCmd(sess session.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := sess.ClearRestaurantID(ctx); err != nil {
			return sessionErrMsg{err: err}
		}
		return nil
	}
}

func savePreselectedCategoryCmd(sess session.Store, categoryID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := sess.SetPreselectedCategory(ctx, categoryID); err != nil {
			return sessionErrMsg{err: err}
		}
		return nil
	}
}

// userError turns an API failure into a toast-sized message.
func userError(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
