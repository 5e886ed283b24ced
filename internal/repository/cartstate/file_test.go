package cartstate

import (
	"testing"

	"github.com/spf13/afero"

	"handestiy-storefront/internal/domain"
)

func TestLoadMissingReturnsEmptyCart(t *testing.T) {
	repo := NewFile(afero.NewMemMapFs(), "/state")

	cart, err := repo.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(cart.Lines))
	}
}

func TestSaveLoadPreservesOrderAndValues(t *testing.T) {
	repo := NewFile(afero.NewMemMapFs(), "/state")
	in := domain.Cart{Lines: []domain.CartLine{
		{ProductID: "a", Title: "A", UnitPriceCents: 1000, Quantity: 2},
		{ProductID: "b", Title: "B", UnitPriceCents: 500, Quantity: 1},
	}}

	if err := repo.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := repo.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(out.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(out.Lines))
	}
	for i := range in.Lines {
		if out.Lines[i] != in.Lines[i] {
			t.Fatalf("line %d changed: %+v != %+v", i, out.Lines[i], in.Lines[i])
		}
	}
}

func TestLoadMalformedJSONReturnsError(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/state/cart.json", []byte("][garbage"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := NewFile(fs, "/state").Load(); err == nil {
		t.Fatalf("expected parse error for malformed state")
	}
}

func TestLoadInvalidLineReturnsError(t *testing.T) {
	fs := afero.NewMemMapFs()
	// Quantity zero violates the cart invariant even though the JSON parses.
	blob := `{"lines":[{"productId":"a","title":"A","unitPriceCents":100,"quantity":0}]}`
	if err := afero.WriteFile(fs, "/state/cart.json", []byte(blob), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := NewFile(fs, "/state").Load(); err == nil {
		t.Fatalf("expected error for invalid stored line")
	}
}
