package domain

import "time"

type Product struct {
	ID                 string    `json:"id"`
	Slug               string    `json:"slug"`
	Title              string    `json:"title"`
	Category           string    `json:"category"`
	PriceCents         int64     `json:"priceCents"`
	DiscountPriceCents *int64    `json:"discountPriceCents,omitempty"`
	Images             []string  `json:"images,omitempty"`
	Stock              int       `json:"stock"`
	ShortDescription   string    `json:"shortDescription,omitempty"`
	LongDescription    string    `json:"longDescription,omitempty"`
	Materials          string    `json:"materials,omitempty"`
	Dimensions         string    `json:"dimensions,omitempty"`
	Active             bool      `json:"active"`
	CreatedAt          time.Time `json:"createdAt"`
}

// EffectivePriceCents is the price a shopper pays right now: the
// discounted price when one is set, the list price otherwise.
func (p Product) EffectivePriceCents() int64 {
	if p.DiscountPriceCents != nil {
		return *p.DiscountPriceCents
	}
	return p.PriceCents
}

// FirstImage returns the primary catalog image, or "" when the product
// has none.
func (p Product) FirstImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// ProductDraft carries the fields an admin submits when creating a
// product.
type ProductDraft struct {
	Title              string   `json:"title"`
	Slug               string   `json:"slug"`
	Category           string   `json:"category"`
	PriceCents         int64    `json:"priceCents"`
	DiscountPriceCents *int64   `json:"discountPriceCents,omitempty"`
	Images             []string `json:"images,omitempty"`
	Stock              int      `json:"stock"`
	ShortDescription   string   `json:"shortDescription,omitempty"`
	LongDescription    string   `json:"longDescription,omitempty"`
	Materials          string   `json:"materials,omitempty"`
	Dimensions         string   `json:"dimensions,omitempty"`
	Active             bool     `json:"active"`
}
