package session

import (
	"context"
	"errors"
	"testing"
)

func TestRestaurantID_RoundTrip(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	ctx := context.Background()

	if _, err := s.RestaurantID(ctx); !errors.Is(err, ErrNoRestaurant) {
		t.Fatalf("expected ErrNoRestaurant before login, got %v", err)
	}

	if err := s.SetRestaurantID(ctx, "R1"); err != nil {
		t.Fatal(err)
	}
	got, err := s.RestaurantID(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got != "R1" {
		t.Errorf("RestaurantID = %q, want R1", got)
	}

	// A second store overwrites (re-login under another restaurant).
	if err := s.SetRestaurantID(ctx, "R2"); err != nil {
		t.Fatal(err)
	}
	got, _ = s.RestaurantID(ctx)
	if got != "R2" {
		t.Errorf("RestaurantID after overwrite = %q, want R2", got)
	}

	if err := s.ClearRestaurantID(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RestaurantID(ctx); !errors.Is(err, ErrNoRestaurant) {
		t.Errorf("expected ErrNoRestaurant after clear, got %v", err)
	}
}

func TestSetRestaurantID_RejectsEmpty(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	if err := s.SetRestaurantID(context.Background(), "  "); err == nil {
		t.Error("expected error for empty id")
	}
}

func TestPreselectedCategory_SingleUse(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	ctx := context.Background()

	got, err := s.TakePreselectedCategory(ctx)
	if err != nil || got != "" {
		t.Fatalf("expected empty take on fresh store, got %q err %v", got, err)
	}

	if err := s.SetPreselectedCategory(ctx, "c7"); err != nil {
		t.Fatal(err)
	}
	got, err = s.TakePreselectedCategory(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got != "c7" {
		t.Errorf("Take = %q, want c7", got)
	}

	// Taking again yields nothing: the value is single-use.
	got, err = s.TakePreselectedCategory(ctx)
	if err != nil || got != "" {
		t.Errorf("second take = %q err %v, want empty", got, err)
	}
}
