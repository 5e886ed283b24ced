// Package cart owns the shopper's line items. Prices are frozen at
// add time, one line per product, and every mutation is persisted
// synchronously so the cart survives restarts.
package cart

import (
	"log"
	"sync"

	"handestiy-storefront/internal/domain"
	"handestiy-storefront/internal/repository/cartstate"
)

type Store struct {
	repo   cartstate.Repository
	logger *log.Logger

	mu   sync.Mutex
	cart domain.Cart
}

// NewStore restores a previously persisted cart. Missing or malformed
// stored state degrades to an empty cart; corruption is logged, never
// surfaced.
func NewStore(repo cartstate.Repository, logger *log.Logger) *Store {
	s := &Store{repo: repo, logger: logger}
	cart, err := repo.Load()
	if err != nil {
		logger.Printf("restore cart: starting empty: %v", err)
		cart = domain.Cart{}
	}
	s.cart = cart
	return s
}

// Add merges the product into the cart: an existing line accumulates
// quantity, a new line captures the effective price and first image.
// Quantities below 1 count as 1.
func (s *Store) Add(p domain.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart.Lines {
		if s.cart.Lines[i].ProductID == p.ID {
			s.cart.Lines[i].Quantity += qty
			s.persist()
			return
		}
	}
	s.cart.Lines = append(s.cart.Lines, domain.CartLine{
		ProductID:      p.ID,
		Title:          p.Title,
		UnitPriceCents: p.EffectivePriceCents(),
		Image:          p.FirstImage(),
		Quantity:       qty,
	})
	s.persist()
}

// Remove deletes the line for productID. Absent lines are a no-op.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart.Lines {
		if s.cart.Lines[i].ProductID == productID {
			s.cart.Lines = append(s.cart.Lines[:i], s.cart.Lines[i+1:]...)
			s.persist()
			return
		}
	}
}

// SetQuantity sets the line's quantity to max(1, q). Values below 1
// clamp up to 1, never to removal. Absent lines are a no-op.
func (s *Store) SetQuantity(productID string, q int) {
	if q < 1 {
		q = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart.Lines {
		if s.cart.Lines[i].ProductID == productID {
			s.cart.Lines[i].Quantity = q
			s.persist()
			return
		}
	}
}

// Clear empties the cart and persists the empty state.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Lines = nil
	s.persist()
}

// Lines returns a copy of the cart lines in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]domain.CartLine, len(s.cart.Lines))
	copy(lines, s.cart.Lines)
	return lines
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cart.Lines)
}

// SubtotalCents is recomputed on every read, never persisted.
func (s *Store) SubtotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.SubtotalCents()
}

// persist writes the full cart, best effort: a failed write loses at
// most the latest mutation and must not fail the mutation itself.
func (s *Store) persist() {
	if err := s.repo.Save(s.cart); err != nil {
		s.logger.Printf("persist cart: %v", err)
	}
}
