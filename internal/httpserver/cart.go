package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *handlers) cartView(c *gin.Context) {
	c.JSON(http.StatusOK, h.currentCart())
}

type cartAddRequest struct {
	Slug     string `json:"slug" binding:"required"`
	Quantity int    `json:"quantity"`
}

// cartAdd resolves the product from the catalog and merges it into the
// cart. The price captured here is the effective price at add time.
func (h *handlers) cartAdd(c *gin.Context) {
	var req cartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug required"})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	p, err := h.deps.Backend.GetProduct(c.Request.Context(), req.Slug)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.deps.Cart.Add(*p, req.Quantity)
	c.JSON(http.StatusOK, h.currentCart())
}

type cartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *handlers) cartSetQuantity(c *gin.Context) {
	var req cartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
		return
	}
	h.deps.Cart.SetQuantity(c.Param("productId"), req.Quantity)
	c.JSON(http.StatusOK, h.currentCart())
}

func (h *handlers) cartRemove(c *gin.Context) {
	h.deps.Cart.Remove(c.Param("productId"))
	c.JSON(http.StatusOK, h.currentCart())
}

func (h *handlers) cartClear(c *gin.Context) {
	h.deps.Cart.Clear()
	c.JSON(http.StatusOK, h.currentCart())
}
