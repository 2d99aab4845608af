package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"cardapio-cli/internal/model"
)

// ProductDraft carries the editable fields of a product for create/update.
type ProductDraft struct {
	RestaurantID string
	Name         string
	Description  string
	Price        model.Price
	CategoryID   string
}

// CreateProduct creates a product via the multipart endpoint. imagePath may
// be empty; when set, the file is attached under the "file" field. Price
// travels in the server's locale form (comma separator).
func (c *Client) CreateProduct(ctx context.Context, draft ProductDraft, imagePath string) (model.Product, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"restaurantId": draft.RestaurantID,
		"name":         draft.Name,
		"description":  draft.Description,
		"price":        draft.Price.Wire(),
		"categoryId":   draft.CategoryID,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return model.Product{}, fmt.Errorf("create product: %w", err)
		}
	}
	if imagePath != "" {
		if err := attachFile(w, "file", imagePath); err != nil {
			return model.Product{}, err
		}
	}
	if err := w.Close(); err != nil {
		return model.Product{}, fmt.Errorf("create product: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/Products", &buf)
	if err != nil {
		return model.Product{}, fmt.Errorf("create product: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var wp wireProduct
	if err := c.do(req, &wp); err != nil {
		return model.Product{}, err
	}
	return wp.normalize(), nil
}

// Product fetches a single product by id. 404 is reported as an *APIError
// recognizable via IsNotFound.
func (c *Client) Product(ctx context.Context, id string) (model.Product, error) {
	var wp wireProduct
	if err := c.doJSON(ctx, http.MethodGet, "/api/Products/"+id, "", nil, &wp); err != nil {
		return model.Product{}, err
	}
	return wp.normalize(), nil
}

// UpdateProduct replaces the editable fields of a product.
func (c *Client) UpdateProduct(ctx context.Context, id string, draft ProductDraft) error {
	body := map[string]any{
		"name":        draft.Name,
		"description": draft.Description,
		"price":       json.Number(draft.Price.String()),
		"categoryId":  draft.CategoryID,
	}
	return c.doJSON(ctx, http.MethodPut, "/api/Products/"+id, "", body, nil)
}

// SetProductActive flips the active flag. Callers apply the new value
// locally only after this returns nil.
func (c *Client) SetProductActive(ctx context.Context, id string, active bool) error {
	body := map[string]bool{"isActive": active}
	return c.doJSON(ctx, http.MethodPatch, "/api/Products/"+id+"/active", "", body, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/Products/"+id, "", nil, nil)
}

// SetProductImage replaces only the product's image. The backend expects
// the multipart field to be named "Image".
func (c *Client) SetProductImage(ctx context.Context, id, imagePath string) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := attachFile(w, "Image", imagePath); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("set product image: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/api/Products/"+id+"/image", &buf)
	if err != nil {
		return fmt.Errorf("set product image: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req, nil)
}

func (c *Client) RemoveProductImage(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/Products/"+id+"/image", "", nil, nil)
}

func attachFile(w *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	part, err := w.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("attach image: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("attach image: %w", err)
	}
	return nil
}
