package api

import (
	"testing"

	"cardapio-cli/internal/model"
)

func mustPrice(t *testing.T, s string) model.Price {
	t.Helper()
	p, err := model.ParsePrice(s)
	if err != nil {
		t.Fatalf("parse price %q: %v", s, err)
	}
	return p
}
