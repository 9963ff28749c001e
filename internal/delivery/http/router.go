package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RouterConfig holds all dependencies for routing
type RouterConfig struct {
	AuthHandler   *AuthHandler
	LedgerHandler *LedgerHandler
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(e *echo.Echo, config *RouterConfig) {
	// Middleware
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "healthy",
			"service":   "tradeledger-api",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Ledger routes. The issued token is deliberately not enforced here,
	// matching the upstream surface.
	e.GET("/allHoldings", config.LedgerHandler.GetAllHoldings)
	e.GET("/allPositions", config.LedgerHandler.GetAllPositions)
	e.POST("/newOrder", config.LedgerHandler.NewOrder)
	e.GET("/allOrders", config.LedgerHandler.GetAllOrders)

	// Auth routes (public)
	auth := e.Group("/auth")
	{
		auth.POST("/signup", config.AuthHandler.Signup)
		auth.POST("/login", config.AuthHandler.Login)
	}
}
