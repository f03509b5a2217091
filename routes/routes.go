package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/freelance-api/config"
	"github.com/kendall-kelly/freelance-api/controllers"
	"github.com/kendall-kelly/freelance-api/middleware"
	"github.com/kendall-kelly/freelance-api/store"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Setup builds the application router. Forwarding headers are only honoured
// from cfg.TrustedProxies; with none configured the client IP is the peer address.
func Setup(cfg *config.Config, st *store.Store, log *zap.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	if cfg.RateLimitEnabled() {
		router.Use(middleware.RateLimit(middleware.NewClientLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ROUTE_NOT_FOUND",
				"message": "No such endpoint",
			},
		})
	})

	system := controllers.NewSystemController(st)
	router.GET("/health", system.HealthCheck)
	router.GET("/database/status", system.DatabaseStatus)

	users := controllers.NewUserController(st)
	userRoutes := router.Group("/users")
	{
		userRoutes.GET("", users.ListUsers)
		userRoutes.POST("", users.CreateUser)
		userRoutes.GET("/:id", users.GetUser)
		userRoutes.PUT("/:id", users.UpdateUser)
		userRoutes.DELETE("/:id", users.DeleteUser)
	}

	orders := controllers.NewOrderController(st)
	orderRoutes := router.Group("/orders")
	{
		orderRoutes.GET("", orders.ListOrders)
		orderRoutes.POST("", orders.CreateOrder)
		orderRoutes.GET("/:id", orders.GetOrder)
		orderRoutes.PUT("/:id", orders.UpdateOrder)
		orderRoutes.DELETE("/:id", orders.DeleteOrder)
	}

	offers := controllers.NewOfferController(st)
	offerRoutes := router.Group("/offers")
	{
		offerRoutes.GET("", offers.ListOffers)
		offerRoutes.POST("", offers.CreateOffer)
		offerRoutes.GET("/:id", offers.GetOffer)
		offerRoutes.PUT("/:id", offers.UpdateOffer)
		offerRoutes.DELETE("/:id", offers.DeleteOffer)
	}

	return router, nil
}
