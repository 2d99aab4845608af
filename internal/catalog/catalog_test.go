package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"cardapio-cli/internal/model"
)

func sampleTree() []model.Category {
	return []model.Category{
		{
			ID:   "c1",
			Name: "Burgers",
			Products: []model.Product{
				{ID: "p1", Name: "Classic Burger", Description: "beef and cheese", Active: true},
				{ID: "p2", Name: "Veggie", Description: "chickpea patty", Active: true},
			},
		},
		{
			ID:   "c2",
			Name: "Drinks",
			Products: []model.Product{
				{ID: "p3", Name: "Lemonade", Description: "", Active: true},
			},
		},
		{
			ID:   "c3",
			Name: "Desserts",
			Products: []model.Product{
				{ID: "p4", Name: "Cheesecake", Description: "baked", Active: false},
			},
		},
	}
}

type stubLoader struct {
	cats []model.Category
	err  error

	gotRestaurant string
	calls         int
}

func (s *stubLoader) CategoriesWithProducts(_ context.Context, restaurantID string) ([]model.Category, error) {
	s.calls++
	s.gotRestaurant = restaurantID
	return s.cats, s.err
}

func TestLoad_ReplacesTree(t *testing.T) {
	c := NewCache()
	l := &stubLoader{cats: sampleTree()}

	if err := c.Load(context.Background(), l, "R1"); err != nil {
		t.Fatal(err)
	}
	if l.gotRestaurant != "R1" {
		t.Errorf("loader got restaurant %q", l.gotRestaurant)
	}
	if len(c.Categories()) != 3 {
		t.Fatalf("got %d categories", len(c.Categories()))
	}
	if c.Err() != nil {
		t.Errorf("unexpected error: %v", c.Err())
	}
}

func TestLoad_FailureRetainsPreviousTree(t *testing.T) {
	c := NewCache()
	l := &stubLoader{cats: sampleTree()}
	if err := c.Load(context.Background(), l, "R1"); err != nil {
		t.Fatal(err)
	}

	l.err = errors.New("boom")
	if err := c.Load(context.Background(), l, "R1"); err == nil {
		t.Fatal("expected load error")
	}
	if len(c.Categories()) != 3 {
		t.Errorf("previous tree should be retained, got %d categories", len(c.Categories()))
	}
	if c.Err() == nil {
		t.Error("load error should be recorded")
	}

	// A later successful load clears the recorded error.
	l.err = nil
	if err := c.Load(context.Background(), l, "R1"); err != nil {
		t.Fatal(err)
	}
	if c.Err() != nil {
		t.Errorf("error should clear after successful load: %v", c.Err())
	}
}

func TestFilter_MatchesNameAndDescription(t *testing.T) {
	cats := sampleTree()

	got := Filter(cats, "  CHEESE ")
	// "cheese" matches Classic Burger (description) and Cheesecake (name);
	// Drinks has no match and is dropped.
	if len(got) != 2 {
		t.Fatalf("got %d categories: %+v", len(got), got)
	}
	if got[0].Name != "Burgers" || len(got[0].Products) != 1 || got[0].Products[0].ID != "p1" {
		t.Errorf("unexpected first category: %+v", got[0])
	}
	if got[1].Name != "Desserts" || got[1].Products[0].ID != "p4" {
		t.Errorf("unexpected second category: %+v", got[1])
	}

	// Every surviving category has at least one matching product.
	for _, cat := range got {
		if len(cat.Products) == 0 {
			t.Errorf("category %s survived with no products", cat.Name)
		}
	}
}

func TestFilter_BlankTermReturnsTreeAsIs(t *testing.T) {
	cats := sampleTree()
	for _, term := range []string{"", "   ", "\t"} {
		got := Filter(cats, term)
		if !reflect.DeepEqual(got, cats) {
			t.Errorf("Filter(%q) changed the tree", term)
		}
	}
}

func TestFilter_NeverMutatesCache(t *testing.T) {
	c := NewCache()
	c.Replace(sampleTree())
	before := len(c.Categories()[0].Products)

	_ = c.FilterView("lemonade")

	if got := len(c.Categories()[0].Products); got != before {
		t.Errorf("filter mutated the cache: %d products, want %d", got, before)
	}
	if len(c.Categories()) != 3 {
		t.Errorf("filter dropped categories from the cache itself")
	}
}

func TestFilter_NoMatches(t *testing.T) {
	if got := Filter(sampleTree(), "zzz"); len(got) != 0 {
		t.Errorf("expected empty result, got %d categories", len(got))
	}
}

func TestMove_ReordersAndInverseRestores(t *testing.T) {
	c := NewCache()
	c.Replace(sampleTree())

	names := func() []string {
		var out []string
		for _, cat := range c.Categories() {
			out = append(out, cat.Name)
		}
		return out
	}
	orig := names()

	if !c.Move(0, 2) {
		t.Fatal("move should apply")
	}
	if got := names(); !reflect.DeepEqual(got, []string{"Drinks", "Desserts", "Burgers"}) {
		t.Fatalf("after move: %v", got)
	}

	// Inverse move restores the original order.
	if !c.Move(2, 0) {
		t.Fatal("inverse move should apply")
	}
	if got := names(); !reflect.DeepEqual(got, orig) {
		t.Errorf("inverse move did not restore order: %v", got)
	}
}

func TestSetActive_FlipsInPlace(t *testing.T) {
	c := NewCache()
	c.Replace(sampleTree())

	if !c.SetActive("p4", true) {
		t.Fatal("expected to find p4")
	}
	if !c.Categories()[2].Products[0].Active {
		t.Error("p4 should now be active")
	}
	if c.SetActive("nope", true) {
		t.Error("unknown product should report false")
	}
}

func TestMove_NoOps(t *testing.T) {
	c := NewCache()
	c.Replace(sampleTree())
	for _, mv := range [][2]int{{1, 1}, {-1, 0}, {0, 3}, {5, 1}} {
		if c.Move(mv[0], mv[1]) {
			t.Errorf("Move(%d, %d) should be a no-op", mv[0], mv[1])
		}
	}
	if len(c.Categories()) != 3 {
		t.Error("no-op moves changed the tree")
	}
}
