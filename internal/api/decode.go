package api

import (
	"encoding/json"

	"cardapio-cli/internal/model"
)

// The server is inconsistent about casing and about how a product's owning
// category is shaped. Everything is normalized here, once, at receipt; the
// rest of the program only sees model types.

type wireComplement struct {
	Name  string      `json:"name"`
	Price model.Price `json:"price"`
}

type wireProduct struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       model.Price `json:"price"`
	ImageURL    string      `json:"imageUrl"`

	// Some records carry isActive, some IsActive. Absent means inactive.
	Active    *bool `json:"isActive"`
	ActiveAlt *bool `json:"IsActive"`

	// category arrives as {id,name}, as {categoryId,categoryName}, or as a
	// bare name string.
	Category   json.RawMessage `json:"category"`
	CategoryID string          `json:"categoryId"`

	Complements []wireComplement `json:"complements"`
}

func (w wireProduct) normalize() model.Product {
	p := model.Product{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Price:       w.Price,
		ImageURL:    w.ImageURL,
		CategoryID:  w.CategoryID,
	}

	switch {
	case w.Active != nil:
		p.Active = *w.Active
	case w.ActiveAlt != nil:
		p.Active = *w.ActiveAlt
	}

	if id, name, ok := decodeCategoryRef(w.Category); ok {
		if id != "" {
			p.CategoryID = id
		}
		p.CategoryName = name
	}

	p.Complements = make([]model.Complement, 0, len(w.Complements))
	for _, c := range w.Complements {
		p.Complements = append(p.Complements, model.Complement{Name: c.Name, Price: c.Price})
	}
	return p
}

// decodeCategoryRef resolves the polymorphic category field to a canonical
// (id, name) pair.
func decodeCategoryRef(raw json.RawMessage) (id, name string, ok bool) {
	if len(raw) == 0 {
		return "", "", false
	}

	var obj struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		CategoryID   string `json:"categoryId"`
		CategoryName string `json:"categoryName"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		switch {
		case obj.ID != "":
			return obj.ID, firstNonEmpty(obj.Name, obj.CategoryName), true
		case obj.CategoryID != "":
			return obj.CategoryID, firstNonEmpty(obj.CategoryName, obj.Name), true
		case obj.Name != "" || obj.CategoryName != "":
			return "", firstNonEmpty(obj.Name, obj.CategoryName), true
		}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return "", s, true
	}
	return "", "", false
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

type wireCategory struct {
	CategoryID   string        `json:"categoryId"`
	CategoryName string        `json:"categoryName"`
	Products     []wireProduct `json:"products"`
}

func (w wireCategory) normalize() model.Category {
	cat := model.Category{
		ID:       w.CategoryID,
		Name:     w.CategoryName,
		Products: make([]model.Product, 0, len(w.Products)),
	}
	for _, p := range w.Products {
		np := p.normalize()
		if np.CategoryID == "" {
			np.CategoryID = cat.ID
		}
		if np.CategoryName == "" {
			np.CategoryName = cat.Name
		}
		cat.Products = append(cat.Products, np)
	}
	return cat
}

// categoriesEnvelope accepts both a bare JSON array and a {data:[...]}
// wrapper, which the server has been seen returning interchangeably.
type categoriesEnvelope []wireCategory

func (e *categoriesEnvelope) UnmarshalJSON(b []byte) error {
	var arr []wireCategory
	if err := json.Unmarshal(b, &arr); err == nil {
		*e = arr
		return nil
	}
	var wrapped struct {
		Data []wireCategory `json:"data"`
	}
	if err := json.Unmarshal(b, &wrapped); err != nil {
		return err
	}
	*e = wrapped.Data
	return nil
}
