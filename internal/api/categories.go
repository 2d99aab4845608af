package api

import (
	"context"
	"net/http"

	"cardapio-cli/internal/model"
)

// CategoriesWithProducts fetches the full category+product tree for a
// restaurant, normalized into model types.
func (c *Client) CategoriesWithProducts(ctx context.Context, restaurantID string) ([]model.Category, error) {
	var env categoriesEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/api/Categories/with-products/"+restaurantID, "", nil, &env); err != nil {
		return nil, err
	}
	cats := make([]model.Category, 0, len(env))
	for _, wc := range env {
		cats = append(cats, wc.normalize())
	}
	return cats, nil
}

type CreatedCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c *Client) CreateCategory(ctx context.Context, restaurantID, name string) (CreatedCategory, error) {
	var out CreatedCategory
	body := map[string]string{"name": name}
	err := c.doJSON(ctx, http.MethodPost, "/api/Categories", restaurantID, body, &out)
	return out, err
}

func (c *Client) RenameCategory(ctx context.Context, restaurantID, categoryID, name string) error {
	body := map[string]string{"name": name}
	return c.doJSON(ctx, http.MethodPut, "/api/Categories/with-products/"+categoryID, restaurantID, body, nil)
}

// DeleteCategory removes a category; the server cascades to its products.
func (c *Client) DeleteCategory(ctx context.Context, restaurantID, categoryID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/Categories/"+categoryID, restaurantID, nil, nil)
}
