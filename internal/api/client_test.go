package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(Config{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		Logger:  zerolog.Nop(),
	})
	return c, srv
}

func TestCategoriesWithProducts_NormalizesInconsistentShapes(t *testing.T) {
	payload := `[
		{
			"categoryId": "c1",
			"categoryName": "Burgers",
			"products": [
				{"id": "p1", "name": "Classic", "price": "12,50", "isActive": true},
				{"id": "p2", "name": "Veggie", "price": 9.9, "IsActive": true, "complements": [{"name": "Cheese", "price": 1.5}]},
				{"id": "p3", "name": "Ghost", "price": "3.00"}
			]
		}
	]`
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/Categories/with-products/R1", r.URL.Path)
		_, _ = w.Write([]byte(payload))
	}))

	cats, err := c.CategoriesWithProducts(context.Background(), "R1")
	require.NoError(t, err)
	require.Len(t, cats, 1)
	require.Len(t, cats[0].Products, 3)

	assert.True(t, cats[0].Products[0].Active, "isActive key")
	assert.True(t, cats[0].Products[1].Active, "IsActive key")
	assert.False(t, cats[0].Products[2].Active, "missing key defaults to inactive")

	assert.Equal(t, "12.50", cats[0].Products[0].Price.String())
	assert.Equal(t, "9.90", cats[0].Products[1].Price.String())

	assert.Empty(t, cats[0].Products[0].Complements)
	require.Len(t, cats[0].Products[1].Complements, 1)
	assert.Equal(t, "Cheese", cats[0].Products[1].Complements[0].Name)

	// Products inherit the owning category reference.
	assert.Equal(t, "c1", cats[0].Products[0].CategoryID)
	assert.Equal(t, "Burgers", cats[0].Products[0].CategoryName)
}

func TestCategoriesWithProducts_AcceptsDataEnvelope(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [{"categoryId": "c9", "categoryName": "Drinks", "products": []}]}`))
	}))
	cats, err := c.CategoriesWithProducts(context.Background(), "R1")
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "c9", cats[0].ID)
}

func TestProduct_PolymorphicCategoryField(t *testing.T) {
	cases := []struct {
		name     string
		category string
		wantID   string
		wantName string
	}{
		{"object with id", `{"id": "c1", "name": "Burgers"}`, "c1", "Burgers"},
		{"object with categoryId", `{"categoryId": "c2", "categoryName": "Pizza"}`, "c2", "Pizza"},
		{"bare name string", `"Desserts"`, "", "Desserts"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"id": "p1", "name": "X", "price": "1.00", "isActive": true, "category": ` + tc.category + `}`))
			}))
			p, err := c.Product(context.Background(), "p1")
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, p.CategoryID)
			assert.Equal(t, tc.wantName, p.CategoryName)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/Users/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body["email"])
		assert.Equal(t, "x", body["password"])
		_, _ = w.Write([]byte(`{"success": true, "restaurantId": "R1"}`))
	}))
	res, err := c.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "R1", res.RestaurantID)
}

func TestLogin_UnauthorizedAndErrorBodies(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors": ["Invalid email", "or password"]}`))
	}))
	_, err := c.Login(context.Background(), "a@b.com", "bad")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Contains(t, err.Error(), "Invalid email or password")
}

func TestCreateCategory_SendsRestaurantHeader(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "R1", r.Header.Get("X-Restaurant-Id"))
		_, _ = w.Write([]byte(`{"id": "c1", "name": "Burgers"}`))
	}))
	created, err := c.CreateCategory(context.Background(), "R1", "Burgers")
	require.NoError(t, err)
	assert.Equal(t, "c1", created.ID)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "no such product"}`, http.StatusNotFound)
	}))
	err := c.DeleteProduct(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestCreateProduct_MultipartFields(t *testing.T) {
	img := filepath.Join(t.TempDir(), "pic.png")
	require.NoError(t, os.WriteFile(img, []byte("png-bytes"), 0o644))

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "R1", r.FormValue("restaurantId"))
		assert.Equal(t, "Classic", r.FormValue("name"))
		assert.Equal(t, "12,50", r.FormValue("price"), "price travels comma-formatted")
		assert.Equal(t, "c1", r.FormValue("categoryId"))
		_, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "pic.png", hdr.Filename)
		_, _ = w.Write([]byte(`{"id": "p1", "name": "Classic", "price": "12.50", "isActive": true}`))
	}))

	price := mustPrice(t, "12.50")
	p, err := c.CreateProduct(context.Background(), ProductDraft{
		RestaurantID: "R1",
		Name:         "Classic",
		Description:  "the classic",
		Price:        price,
		CategoryID:   "c1",
	}, img)
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
}

func TestSetProductImage_UsesImageField(t *testing.T) {
	img := filepath.Join(t.TempDir(), "new.jpg")
	require.NoError(t, os.WriteFile(img, []byte("jpg"), 0o644))

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("Image")
		assert.NoError(t, err, "backend expects the field to be named Image")
	}))
	require.NoError(t, c.SetProductImage(context.Background(), "p1", img))
}

func TestResolveImageURL(t *testing.T) {
	c := NewClient(Config{BaseURL: "https://api.example.com", Logger: zerolog.Nop()})
	assert.Equal(t, "https://api.example.com/uploads/a.png", c.ResolveImageURL("uploads/a.png"))
	assert.Equal(t, "https://api.example.com/uploads/a.png", c.ResolveImageURL("/uploads/a.png"))
	assert.Equal(t, "http://cdn/x.png", c.ResolveImageURL("http://cdn/x.png"))
	assert.Equal(t, "data:image/png;base64,AA==", c.ResolveImageURL("data:image/png;base64,AA=="))
	assert.Equal(t, "", c.ResolveImageURL("  "))
}
