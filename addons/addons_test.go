package addons

import (
	"testing"

	"lucilla/models"
)

func testCatalog() Catalog {
	return NewCatalog([]models.ServiceAddon{
		{ID: "transfer", Name: "Airport Transfer", UnitPrice: 60},
		{ID: "bike", Name: "Bike Rental", UnitPrice: 15},
		{ID: "basket", Name: "Welcome Basket", UnitPrice: 25, Included: true},
	})
}

func TestToggleClampsAtZero(t *testing.T) {
	sel := Selection{}

	if got := sel.Toggle("bike", 1); got != 1 {
		t.Fatalf("expected quantity 1, got %d", got)
	}
	if got := sel.Toggle("bike", 1); got != 2 {
		t.Fatalf("expected quantity 2, got %d", got)
	}
	if got := sel.Toggle("bike", -1); got != 1 {
		t.Fatalf("expected quantity 1, got %d", got)
	}
	if got := sel.Toggle("bike", -1); got != 0 {
		t.Fatalf("expected quantity 0, got %d", got)
	}
	// decrement below zero stays at zero
	if got := sel.Toggle("bike", -1); got != 0 {
		t.Fatalf("quantity must not go negative, got %d", got)
	}
	if _, ok := sel["bike"]; ok {
		t.Error("zero-quantity entries should be removed from the selection")
	}
}

func TestTotal(t *testing.T) {
	catalog := testCatalog()
	sel := Selection{"transfer": 1, "bike": 3}

	if got := Total(sel, catalog); got != 105 {
		t.Fatalf("expected total 105, got %v", got)
	}
}

func TestIncludedAddonsCostNothing(t *testing.T) {
	catalog := testCatalog()
	sel := Selection{"basket": 2, "transfer": 1}

	if got := Total(sel, catalog); got != 60 {
		t.Fatalf("included addon must contribute 0, got total %v", got)
	}
}

func TestUnknownAddonIgnored(t *testing.T) {
	catalog := testCatalog()
	sel := Selection{"jetski": 4}

	if got := Total(sel, catalog); got != 0 {
		t.Fatalf("unknown addon ids must be ignored, got %v", got)
	}
}
