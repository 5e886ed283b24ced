package domain

// CartLine is one product entry in the shopper's cart. UnitPriceCents
// is captured when the product is added and never recomputed from the
// catalog, so later price changes do not touch carts already holding
// the product.
type CartLine struct {
	ProductID      string `json:"productId"`
	Title          string `json:"title"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Image          string `json:"image,omitempty"`
	Quantity       int    `json:"quantity"`
}

func (l CartLine) TotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}

// Cart is an ordered collection of lines, at most one per product,
// insertion order preserved.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// SubtotalCents is derived on every call, never stored.
func (c Cart) SubtotalCents() int64 {
	var sum int64
	for _, l := range c.Lines {
		sum += l.TotalCents()
	}
	return sum
}
