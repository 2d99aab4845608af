// Package catalog holds the client-side replica of the server's
// category/product tree plus the derived, client-only view state layered on
// top of it (search filtering, collapse/menu toggles, reorder).
package catalog

import (
	"context"
	"strings"

	"cardapio-cli/internal/model"
)

// Loader is the slice of the API client the cache needs.
type Loader interface {
	CategoriesWithProducts(ctx context.Context, restaurantID string) ([]model.Category, error)
}

// Cache is the reload-and-replace aggregate. The tree is swapped wholesale
// after a full response is normalized; readers see either the old tree or
// the new one, never a half-built one. On load failure the previous tree is
// retained and the error recorded.
type Cache struct {
	categories []model.Category
	loadErr    error
}

func NewCache() *Cache {
	return &Cache{}
}

// Load fetches and replaces the tree. The previous tree survives a failure.
func (c *Cache) Load(ctx context.Context, l Loader, restaurantID string) error {
	cats, err := l.CategoriesWithProducts(ctx, restaurantID)
	if err != nil {
		c.loadErr = err
		return err
	}
	c.Replace(cats)
	return nil
}

// Replace swaps in an already-fetched tree (the TUI loads through a command
// and delivers the result as a message).
func (c *Cache) Replace(cats []model.Category) {
	c.categories = cats
	c.loadErr = nil
}

// Categories returns the current tree. Callers must treat it as read-only;
// derived views copy before reshaping.
func (c *Cache) Categories() []model.Category {
	return c.categories
}

// Err is the error from the most recent failed load, cleared by a
// successful one.
func (c *Cache) Err() error {
	return c.loadErr
}

// Move reorders categories client-side: the element at src is removed and
// reinserted at dst, everything else keeps its relative order. Returns
// false (and does nothing) for a no-op or out-of-range move. The new order
// lives only in memory; a reload discards it.
func (c *Cache) Move(src, dst int) bool {
	n := len(c.categories)
	if src == dst || src < 0 || src >= n || dst < 0 || dst >= n {
		return false
	}
	moved := c.categories[src]
	rest := append(c.categories[:src:src], c.categories[src+1:]...)
	out := make([]model.Category, 0, n)
	out = append(out, rest[:dst]...)
	out = append(out, moved)
	out = append(out, rest[dst:]...)
	c.categories = out
	return true
}

// SetActive flips one product's active flag in place. This is the single
// mutation applied locally instead of via reload: the toggle endpoint has
// acknowledged, and a full reload for one boolean would flicker the whole
// list. Returns false when the product is not in the tree.
func (c *Cache) SetActive(productID string, active bool) bool {
	for ci := range c.categories {
		for pi := range c.categories[ci].Products {
			if c.categories[ci].Products[pi].ID == productID {
				c.categories[ci].Products[pi].Active = active
				return true
			}
		}
	}
	return false
}

// Filter returns the categories whose products match term by name or
// description (case-insensitive substring; surrounding whitespace on the
// term ignored). Categories with no matching products are dropped. A blank
// term returns the tree as-is. Pure: the cache is never mutated.
func Filter(cats []model.Category, term string) []model.Category {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return cats
	}

	out := make([]model.Category, 0, len(cats))
	for _, cat := range cats {
		var matched []model.Product
		for _, p := range cat.Products {
			if strings.Contains(strings.ToLower(p.Name), term) ||
				strings.Contains(strings.ToLower(p.Description), term) {
				matched = append(matched, p)
			}
		}
		if len(matched) == 0 {
			continue
		}
		filtered := cat
		filtered.Products = matched
		out = append(out, filtered)
	}
	return out
}

// FilterView is Filter applied to the cache's current tree.
func (c *Cache) FilterView(term string) []model.Category {
	return Filter(c.categories, term)
}
