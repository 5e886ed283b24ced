package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"handestiy-storefront/internal/backend"
	"handestiy-storefront/internal/domain"
	"handestiy-storefront/internal/service/catalog"
)

type adminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *handlers) adminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}

	err := h.deps.Guard.Login(c.Request.Context(), h.deps.Backend, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) adminLogout(c *gin.Context) {
	h.deps.Guard.Logout()
	c.Status(http.StatusNoContent)
}

// adminDashboard aggregates the order list into the stat cards the
// dashboard shows.
func (h *handlers) adminDashboard(c *gin.Context) {
	orders, err := h.deps.Backend.AdminOrders(c.Request.Context(), h.deps.Guard.Token())
	if err != nil {
		h.adminError(c, err)
		return
	}

	var totalSales int64
	for _, o := range orders {
		totalSales += o.TotalCents
	}
	c.JSON(http.StatusOK, gin.H{
		"totalSalesCents": totalSales,
		"orderCount":      len(orders),
		"orders":          orders,
	})
}

func (h *handlers) adminOrders(c *gin.Context) {
	orders, err := h.deps.Backend.AdminOrders(c.Request.Context(), h.deps.Guard.Token())
	if err != nil {
		h.adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// adminProducts lists the whole catalog for the management grid, one
// oversized page like the original admin screen.
func (h *handlers) adminProducts(c *gin.Context) {
	page, err := h.deps.Backend.ListProducts(c.Request.Context(), backend.Query{
		Category: catalog.CategoryAll,
		Sort:     string(catalog.SortNewest),
		Page:     1,
		PageSize: 1000,
	})
	if err != nil {
		h.adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": page.Items, "total": page.Total})
}

func (h *handlers) adminCreateProduct(c *gin.Context) {
	var draft domain.ProductDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product"})
		return
	}
	if draft.Title == "" || draft.PriceCents < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title required and price must be non-negative"})
		return
	}

	if err := h.deps.Backend.CreateProduct(c.Request.Context(), h.deps.Guard.Token(), draft); err != nil {
		h.adminError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

type orderStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required"`
}

func (h *handlers) adminOrderStatus(c *gin.Context) {
	var req orderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status required"})
		return
	}
	if !domain.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	err := h.deps.Backend.UpdateOrderStatus(c.Request.Context(), h.deps.Guard.Token(), c.Param("id"), req.Status)
	if err != nil {
		h.adminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
