package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"handestiy-storefront/internal/backend"
	"handestiy-storefront/internal/service/catalog"
)

// home serves the landing page data: new arrivals and best sellers,
// eight apiece.
func (h *handlers) home(c *gin.Context) {
	ctx := c.Request.Context()

	arrivals, err := h.deps.Backend.ListProducts(ctx, backend.Query{
		Category: catalog.CategoryAll,
		Sort:     string(catalog.SortNewest),
		Page:     1,
		PageSize: 8,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	best, err := h.deps.Backend.ListProducts(ctx, backend.Query{
		Category: catalog.CategoryAll,
		Sort:     string(catalog.SortPriceDesc),
		Page:     1,
		PageSize: 8,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"newArrivals": arrivals.Items,
		"bestSellers": best.Items,
		"categories":  catalog.Categories,
	})
}

// shop applies filter selections, fetches the matching catalog page
// and reconciles it into pagination state. The filter is updated
// before the fetch is issued, so no request ever uses a stale filter.
func (h *handlers) shop(c *gin.Context) {
	q := h.deps.Catalog

	if category, ok := c.GetQuery("category"); ok {
		q.SetCategory(category)
	}
	if sort, ok := c.GetQuery("sort"); ok {
		q.SetSort(catalog.Sort(sort))
	}
	if pageStr, ok := c.GetQuery("page"); ok {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			page = 1
		}
		q.SetPage(page)
	}

	req := q.Build()
	page, err := h.deps.Backend.ListProducts(c.Request.Context(), backend.Query{
		Category: req.Category,
		Sort:     string(req.Sort),
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	q.Apply(catalog.Result{Seq: req.Seq, Items: page.Items, Total: page.Total})

	c.JSON(http.StatusOK, gin.H{
		"items":      q.Items(),
		"total":      q.Total(),
		"page":       q.Page(),
		"pageCount":  q.PageCount(),
		"category":   q.Category(),
		"sort":       q.SortKey(),
		"categories": catalog.Categories,
	})
}

func (h *handlers) productDetail(c *gin.Context) {
	p, err := h.deps.Backend.GetProduct(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) orderConfirmation(c *gin.Context) {
	o, err := h.deps.Backend.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}
