package httpserver

import (
	"log"
	"net/http"
	"time"

	"storefront-api/internal/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries everything the routes need.
type Deps struct {
	Catalog  catalogService
	Cart     cartService
	Users    userService
	Orders   orderService
	Shipping shippingService
	Limiter  *ratelimit.Limiter

	AssetBaseURL       string
	ExposeErrorDetails bool
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(metricsMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	f := failer{exposeDetails: deps.ExposeErrorDetails}
	h := &handlers{deps: deps, f: f, logger: logger}
	auth := authMiddleware(deps.Users, f)
	throttle := throttleMiddleware(deps.Limiter, f)

	router.GET("/ping", pingHandler)
	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	router.GET("/metrics", metricsHandler())

	router.GET("/banner", h.listBanners)

	product := router.Group("/product")
	{
		product.GET("", h.listProducts)
		product.GET("/:id", h.showProduct)
		product.GET("/:id/related", h.relatedProducts)
	}

	router.GET("/category/:slug/metadata", h.categoryMetadata)

	cart := router.Group("/cart")
	{
		cart.GET("/mount", h.mountCart)
		cart.GET("/shipping", h.shippingQuote)
		cart.POST("/finish", auth, h.finishCart)
	}

	user := router.Group("/user")
	{
		user.POST("/register", throttle, h.register)
		user.POST("/login", throttle, h.login)
		user.GET("/addresses", auth, h.listAddresses)
		user.POST("/addresses", auth, h.addAddress)
	}

	order := router.Group("/order", auth)
	{
		order.GET("", h.listOrders)
		order.GET("/:id", h.showOrder)
		order.GET("/:id/session", h.orderSession)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": true, "message": "route not found"})
	})

	return router
}
