package httpserver

import (
	"context"
	"errors"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"handestiy-storefront/internal/backend"
	"handestiy-storefront/internal/domain"
	"handestiy-storefront/internal/metrics"
	"handestiy-storefront/internal/service/cart"
	"handestiy-storefront/internal/service/catalog"
	"handestiy-storefront/internal/service/session"
)

// loginPath is where unauthenticated admin entries are redirected.
const loginPath = "/admin/login"

// Backend is the slice of the backend client the facade consumes.
type Backend interface {
	ListProducts(ctx context.Context, q backend.Query) (backend.ProductPage, error)
	GetProduct(ctx context.Context, slug string) (*domain.Product, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	Login(ctx context.Context, email, password string) (string, error)
	AdminOrders(ctx context.Context, token string) ([]domain.Order, error)
	CreateProduct(ctx context.Context, token string, draft domain.ProductDraft) error
	UpdateOrderStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) error
}

// Pricing is the slice of the pricing engine the facade consumes.
type Pricing interface {
	ShippingCostCents(method domain.ShippingMethod) int64
	TotalCents(subtotalCents int64, method domain.ShippingMethod) int64
	PlaceOrder(ctx context.Context, customer domain.Customer, method domain.ShippingMethod) (string, error)
}

// Deps carries the wired engine components into the router.
type Deps struct {
	Backend        Backend
	Cart           *cart.Store
	Catalog        *catalog.Query
	Pricing        Pricing
	Guard          *session.Guard
	Metrics        *metrics.ServerMetrics
	AllowedOrigins []string
}

func (d Deps) validate() error {
	if d.Backend == nil || d.Cart == nil || d.Catalog == nil || d.Pricing == nil || d.Guard == nil {
		return errors.New("httpserver: missing dependency")
	}
	return nil
}

// buildRouter wires routes for the storefront facade.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(deps.AllowedOrigins) == 1 && deps.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else if len(deps.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = deps.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	router.GET("/healthz", healthHandler)

	h := &handlers{logger: logger, deps: deps}

	api := router.Group("/api")
	{
		api.GET("/home", h.home)
		api.GET("/shop", h.shop)
		api.GET("/products/:slug", h.productDetail)

		api.GET("/cart", h.cartView)
		api.POST("/cart/items", h.cartAdd)
		api.PATCH("/cart/items/:productId", h.cartSetQuantity)
		api.DELETE("/cart/items/:productId", h.cartRemove)
		api.DELETE("/cart", h.cartClear)

		api.GET("/checkout/quote", h.checkoutQuote)
		api.POST("/checkout", h.placeOrder)
		api.GET("/orders/:id", h.orderConfirmation)

		api.POST("/admin/login", h.adminLogin)
		api.POST("/admin/logout", h.adminLogout)

		admin := api.Group("/admin", requireAdmin(deps.Guard))
		{
			admin.GET("/dashboard", h.adminDashboard)
			admin.GET("/orders", h.adminOrders)
			admin.GET("/products", h.adminProducts)
			admin.POST("/products", h.adminCreateProduct)
			admin.PATCH("/orders/:id/status", h.adminOrderStatus)
		}
	}

	return router, nil
}

func healthHandler(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

// requireAdmin gates admin views: an unauthenticated entry redirects
// to the login view before any protected handler runs. Evaluated on
// every entry, never cached.
func requireAdmin(guard *session.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !guard.Authenticated() {
			c.Redirect(303, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
