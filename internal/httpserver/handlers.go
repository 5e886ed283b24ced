package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"handestiy-storefront/internal/domain"
)

type handlers struct {
	logger *log.Logger
	deps   Deps
}

// respondError maps the engine's error taxonomy onto facade statuses:
// validation 422, not-found 404, anything transport-shaped 502.
func (h *handlers) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cart is empty"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		h.logger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "backend unavailable"})
	}
}

// adminError additionally handles token rejection: the session is
// invalidated and the client is sent back to the login view.
func (h *handlers) adminError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrUnauthorized) {
		h.deps.Guard.Invalidate()
		c.Redirect(http.StatusSeeOther, loginPath)
		c.Abort()
		return
	}
	h.respondError(c, err)
}

type cartLineView struct {
	ProductID      string `json:"productId"`
	Title          string `json:"title"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Image          string `json:"image,omitempty"`
	Quantity       int    `json:"quantity"`
	TotalCents     int64  `json:"totalCents"`
}

type cartSummary struct {
	Lines         []cartLineView `json:"lines"`
	SubtotalCents int64          `json:"subtotalCents"`
	Count         int            `json:"count"`
}

func (h *handlers) currentCart() cartSummary {
	lines := h.deps.Cart.Lines()
	view := cartSummary{Lines: make([]cartLineView, 0, len(lines))}
	for _, l := range lines {
		view.Lines = append(view.Lines, cartLineView{
			ProductID:      l.ProductID,
			Title:          l.Title,
			UnitPriceCents: l.UnitPriceCents,
			Image:          l.Image,
			Quantity:       l.Quantity,
			TotalCents:     l.TotalCents(),
		})
		view.SubtotalCents += l.TotalCents()
	}
	view.Count = len(lines)
	return view
}
