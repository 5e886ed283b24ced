package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"handestiy-storefront/internal/domain"
)

// checkoutQuote prices the current cart for a shipping method without
// placing anything. Recomputed on every call so the quote is never
// stale against the cart.
func (h *handlers) checkoutQuote(c *gin.Context) {
	method := domain.ShippingMethod(c.Query("shipping_method"))
	if method == "" {
		method = domain.ShippingStandard
	}

	subtotal := h.deps.Cart.SubtotalCents()
	shipping := h.deps.Pricing.ShippingCostCents(method)
	c.JSON(http.StatusOK, gin.H{
		"subtotalCents":  subtotal,
		"shippingCents":  shipping,
		"totalCents":     subtotal + shipping,
		"shippingMethod": method,
	})
}

type placeOrderRequest struct {
	Customer       domain.Customer       `json:"customer"`
	ShippingMethod domain.ShippingMethod `json:"shipping_method"`
}

// placeOrder submits the cart as an order. An empty cart is rejected
// locally; a successful submission clears the cart and returns the
// order id for the confirmation view.
func (h *handlers) placeOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order request"})
		return
	}

	orderID, err := h.deps.Pricing.PlaceOrder(c.Request.Context(), req.Customer, req.ShippingMethod)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order_id": orderID})
}
