package cartstate

import "handestiy-storefront/internal/domain"

// Repository persists the shopper's cart across process restarts.
type Repository interface {
	// Load returns the stored cart, or an empty cart when nothing has
	// been stored yet. A malformed stored representation returns an
	// error; callers decide how to recover.
	Load() (domain.Cart, error)
	Save(cart domain.Cart) error
}
